package repository

import "context"

// WarehouseRepository puerto de lectura de bodegas.
type WarehouseRepository interface {
	Exists(ctx context.Context, id int) (bool, error)
}
