package repository

import (
	"context"
	"time"

	"github.com/jhoicas/almacen-api/internal/domain/entity"
)

// OrderRepository puerto de órdenes de compra.
type OrderRepository interface {
	// FindEligible busca una orden abierta (fulfilled_at IS NULL) con el id y
	// la cantidad indicados, creada estrictamente antes de before. Devuelve
	// nil si no hay orden elegible. No verifica el producto de la orden
	// contra el request; ese chequeo no existe en el sistema de origen.
	FindEligible(ctx context.Context, orderID, amount int, before time.Time) (*entity.Order, error)

	// MarkFulfilled fija fulfilled_at de la orden.
	MarkFulfilled(ctx context.Context, orderID int, at time.Time) error
}
