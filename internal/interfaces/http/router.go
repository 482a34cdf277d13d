package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/almacen-api/internal/application/fulfillment"
)

// RouterDeps dependencias para el router. Fulfillment es el backend elegido
// por configuración para /warehouse/add-product (tx o proc); Proc siempre es
// el backend de procedimiento almacenado.
type RouterDeps struct {
	Fulfillment fulfillment.Service
	Proc        fulfillment.Service
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	warehouse := app.Group("/warehouse")
	handler := NewWarehouseHandler(deps.Fulfillment, deps.Proc)
	warehouse.Post("/add-product", handler.AddProduct)
	warehouse.Post("/add-product-proc", handler.AddProductProc)
}
