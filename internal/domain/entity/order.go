package entity

import "time"

// Order representa una orden de compra. Una orden está abierta mientras
// FulfilledAt sea nil; el flujo de cumplimiento la muta exactamente una vez.
type Order struct {
	ID          int
	ProductID   int
	Amount      int
	CreatedAt   time.Time
	FulfilledAt *time.Time
}

// IsOpen indica si la orden aún no fue cumplida.
func (o *Order) IsOpen() bool {
	return o.FulfilledAt == nil
}
