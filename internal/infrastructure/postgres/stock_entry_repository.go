package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/almacen-api/internal/domain/entity"
	"github.com/jhoicas/almacen-api/internal/domain/repository"
)

var _ repository.StockEntryRepository = (*StockEntryRepo)(nil)

// StockEntryRepo implementación del puerto StockEntryRepository sobre
// PostgreSQL (usable con pool o tx).
type StockEntryRepo struct {
	q Querier
}

// NewStockEntryRepository construye el adaptador para product_warehouse.
func NewStockEntryRepository(q Querier) *StockEntryRepo {
	return &StockEntryRepo{q: q}
}

// Create inserta el registro de ingreso y devuelve el id generado.
func (r *StockEntryRepo) Create(ctx context.Context, entry *entity.StockEntry) (int, error) {
	query := `
		INSERT INTO product_warehouse (warehouse_id, product_id, order_id, amount, price, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id`
	var id int
	err := r.q.QueryRow(ctx, query,
		entry.WarehouseID, entry.ProductID, entry.OrderID,
		entry.Amount, entry.Price, entry.CreatedAt,
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("insert stock entry: %w", err)
	}
	entry.ID = id
	return id, nil
}
