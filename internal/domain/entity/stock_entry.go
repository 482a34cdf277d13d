package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// StockEntry registra el ingreso de un producto a una bodega en cumplimiento
// de una orden (tabla product_warehouse). Price es el total del ingreso:
// cantidad × precio del request, no el precio de lista del producto.
type StockEntry struct {
	ID          int
	WarehouseID int
	ProductID   int
	OrderID     int
	Amount      int
	Price       decimal.Decimal
	CreatedAt   time.Time
}
