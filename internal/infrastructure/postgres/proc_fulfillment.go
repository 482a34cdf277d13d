package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jhoicas/almacen-api/internal/application/fulfillment"
	"github.com/jhoicas/almacen-api/internal/domain"
)

var _ fulfillment.Service = (*ProcFulfillment)(nil)

// ProcFulfillment backend alterno del flujo de cumplimiento: delega la regla
// completa al procedimiento add_product_to_warehouse del lado de la base.
// Los errores reportados por el servidor se exponen tal cual
// (inconsistencia conocida del sistema de origen: mezcla errores de cliente
// y de servidor en un mismo canal).
type ProcFulfillment struct {
	pool *pgxpool.Pool
}

// NewProcFulfillment construye el backend de procedimiento almacenado.
func NewProcFulfillment(pool *pgxpool.Pool) *ProcFulfillment {
	return &ProcFulfillment{pool: pool}
}

// FulfillOrder valida la cantidad (sin I/O) y ejecuta el procedimiento con
// los mismos cinco parámetros del flujo en proceso; devuelve el id generado.
func (s *ProcFulfillment) FulfillOrder(ctx context.Context, in fulfillment.Input) (int, error) {
	if in.Amount <= 0 {
		return 0, domain.ErrInvalidAmount
	}

	var id int
	err := s.pool.QueryRow(ctx,
		`SELECT add_product_to_warehouse($1, $2, $3, $4, $5)`,
		in.ProductID, in.WarehouseID, in.OrderID, in.Amount, in.CreatedAt,
	).Scan(&id)
	if err != nil {
		if msg, ok := pgMessage(err); ok {
			return 0, &domain.ProcedureError{Message: msg}
		}
		return 0, fmt.Errorf("exec add_product_to_warehouse: %w", err)
	}
	return id, nil
}
