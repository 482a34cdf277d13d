package repository

import (
	"context"

	"github.com/jhoicas/almacen-api/internal/domain/entity"
)

// StockEntryRepository puerto de registros de ingreso a bodega
// (product_warehouse). Los registros solo se crean, nunca se actualizan.
type StockEntryRepository interface {
	// Create inserta el registro y devuelve el id generado por la base.
	Create(ctx context.Context, entry *entity.StockEntry) (int, error)
}
