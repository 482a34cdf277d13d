package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDSN_CodificaCaracteresEspeciales(t *testing.T) {
	cfg := DBConfig{
		Host:     "localhost",
		Port:     5432,
		User:     "postgres",
		Password: "p@ss:w/ord",
		DBName:   "almacen",
		SSLMode:  "disable",
	}
	dsn := cfg.DSN()
	assert.Contains(t, dsn, "p%40ss%3Aw%2Ford", "la contraseña debe ir URL-encoded")
	assert.Contains(t, dsn, "localhost:5432")
	assert.Contains(t, dsn, "/almacen")
	assert.Contains(t, dsn, "sslmode=disable")
}

func TestConnectionString_PrefiereDatabaseURL(t *testing.T) {
	cfg := DBConfig{
		DatabaseURL: "postgresql://u:p@db.example.com:6543/app?sslmode=require",
		Host:        "localhost",
		Port:        5432,
	}
	assert.Equal(t, cfg.DatabaseURL, cfg.ConnectionString())

	cfg.DatabaseURL = ""
	assert.Equal(t, cfg.DSN(), cfg.ConnectionString())
}

func TestHTTPAddr(t *testing.T) {
	cfg := HTTPConfig{Host: "0.0.0.0", Port: 8080}
	assert.Equal(t, "0.0.0.0:8080", cfg.Addr())
}
