package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrInvalidAmount     = errors.New("la cantidad debe ser mayor que 0")
	ErrProductNotFound   = errors.New("producto no encontrado")
	ErrWarehouseNotFound = errors.New("bodega no encontrada")
	ErrOrderNotEligible  = errors.New("orden no encontrada o ya cumplida")
)

// ProcedureError error reportado por la base de datos al ejecutar el
// procedimiento almacenado. El mensaje se expone tal cual al cliente.
type ProcedureError struct {
	Message string
}

func (e *ProcedureError) Error() string {
	return e.Message
}
