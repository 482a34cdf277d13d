package repository

import "context"

// ProductRepository puerto de lectura de productos. La verificación de
// existencia está parametrizada por entidad; nunca se construye SQL con
// nombres de tabla provenientes del caller.
type ProductRepository interface {
	Exists(ctx context.Context, id int) (bool, error)
}
