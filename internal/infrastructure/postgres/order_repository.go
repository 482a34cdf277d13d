package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/almacen-api/internal/domain/entity"
	"github.com/jhoicas/almacen-api/internal/domain/repository"
)

var _ repository.OrderRepository = (*OrderRepo)(nil)

// OrderRepo implementación del puerto OrderRepository sobre PostgreSQL
// (usable con pool o tx).
type OrderRepo struct {
	q Querier
}

// NewOrderRepository construye el adaptador de persistencia para órdenes.
func NewOrderRepository(q Querier) *OrderRepo {
	return &OrderRepo{q: q}
}

// FindEligible busca una orden abierta con id y cantidad exactos, creada
// estrictamente antes de before. Devuelve nil si no hay orden elegible.
func (r *OrderRepo) FindEligible(ctx context.Context, orderID, amount int, before time.Time) (*entity.Order, error) {
	query := `
		SELECT id, product_id, amount, created_at, fulfilled_at
		FROM orders
		WHERE id = $1 AND amount = $2 AND fulfilled_at IS NULL AND created_at < $3`
	var o entity.Order
	err := r.q.QueryRow(ctx, query, orderID, amount, before).Scan(
		&o.ID, &o.ProductID, &o.Amount, &o.CreatedAt, &o.FulfilledAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("find eligible order: %w", err)
	}
	return &o, nil
}

// MarkFulfilled fija fulfilled_at de la orden.
func (r *OrderRepo) MarkFulfilled(ctx context.Context, orderID int, at time.Time) error {
	_, err := r.q.Exec(ctx,
		`UPDATE orders SET fulfilled_at = $2 WHERE id = $1`, orderID, at,
	)
	if err != nil {
		return fmt.Errorf("mark order fulfilled: %w", err)
	}
	return nil
}
