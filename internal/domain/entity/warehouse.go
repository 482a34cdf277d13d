package entity

// Warehouse representa una bodega donde se almacena inventario. Solo lectura
// para el flujo de cumplimiento.
type Warehouse struct {
	ID      int
	Name    string
	Address string
}
