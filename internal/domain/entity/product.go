package entity

import "github.com/shopspring/decimal"

// Product representa un producto del catálogo. Para el flujo de cumplimiento
// es solo lectura; el precio almacenado no participa en el cálculo del total
// (el total usa el precio enviado en el request).
type Product struct {
	ID          int
	Name        string
	Description string
	Price       decimal.Decimal // precio de lista
}
