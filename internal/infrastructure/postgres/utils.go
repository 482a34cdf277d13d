package postgres

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

// pgMessage extrae el mensaje reportado por el servidor si err proviene de
// PostgreSQL. Se usa para exponer tal cual los errores del procedimiento.
func pgMessage(err error) (string, bool) {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Message, true
	}
	return "", false
}
