package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// AddProductRequest entrada para registrar el ingreso de un producto a una
// bodega en cumplimiento de una orden. CreatedAt en formato ISO-8601.
type AddProductRequest struct {
	ProductID   int             `json:"idProduct"`
	WarehouseID int             `json:"idWarehouse"`
	Amount      int             `json:"amount"`
	CreatedAt   time.Time       `json:"createdAt"`
	Price       decimal.Decimal `json:"price"` // precio unitario del envío
	OrderID     int             `json:"idOrder"`
}

// AddProductResponse salida con el id del registro product_warehouse creado.
type AddProductResponse struct {
	ProductWarehouseID int `json:"idProductWarehouse"`
}

// ErrorResponse cuerpo de error HTTP para fallas internas.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}
