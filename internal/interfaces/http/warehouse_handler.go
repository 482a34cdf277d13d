package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/almacen-api/internal/application/dto"
	"github.com/jhoicas/almacen-api/internal/application/fulfillment"
	"github.com/jhoicas/almacen-api/internal/domain"
)

// WarehouseHandler maneja las peticiones HTTP del flujo de cumplimiento.
// svc es el backend configurado para /warehouse/add-product; procSvc queda
// fijo al procedimiento almacenado para /warehouse/add-product-proc.
type WarehouseHandler struct {
	svc     fulfillment.Service
	procSvc fulfillment.Service
}

// NewWarehouseHandler construye el handler.
func NewWarehouseHandler(svc, procSvc fulfillment.Service) *WarehouseHandler {
	return &WarehouseHandler{svc: svc, procSvc: procSvc}
}

// AddProduct godoc
// @Summary      Registrar ingreso de producto a bodega (cumple una orden)
// @Tags         warehouse
// @Accept       json
// @Produce      json
// @Param        body  body  dto.AddProductRequest  true  "idProduct, idWarehouse, amount, createdAt, price, idOrder"
// @Success      200   {object}  dto.AddProductResponse
// @Failure      400   {string}  string  "Amount must be greater than 0."
// @Failure      404   {string}  string  "Product not found. / Warehouse not found. / Order not found or already fulfilled."
// @Router       /warehouse/add-product [post]
func (h *WarehouseHandler) AddProduct(c *fiber.Ctx) error {
	var in dto.AddProductRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).SendString("Invalid request body.")
	}

	newID, err := h.svc.FulfillOrder(c.Context(), toInput(in))
	if err != nil {
		return respondFulfillmentError(c, err)
	}
	return c.JSON(dto.AddProductResponse{ProductWarehouseID: newID})
}

// AddProductProc godoc
// @Summary      Registrar ingreso vía procedimiento almacenado
// @Tags         warehouse
// @Accept       json
// @Produce      json
// @Param        body  body  dto.AddProductRequest  true  "idProduct, idWarehouse, amount, createdAt, price, idOrder"
// @Success      200   {object}  dto.AddProductResponse
// @Failure      400   {string}  string  "mensaje de error de la base, tal cual"
// @Router       /warehouse/add-product-proc [post]
func (h *WarehouseHandler) AddProductProc(c *fiber.Ctx) error {
	var in dto.AddProductRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).SendString("Invalid request body.")
	}

	newID, err := h.procSvc.FulfillOrder(c.Context(), toInput(in))
	if err != nil {
		var procErr *domain.ProcedureError
		if errors.As(err, &procErr) {
			// Texto de la base expuesto tal cual (comportamiento del origen)
			return c.Status(fiber.StatusBadRequest).SendString(procErr.Message)
		}
		return respondFulfillmentError(c, err)
	}
	return c.JSON(dto.AddProductResponse{ProductWarehouseID: newID})
}

func toInput(in dto.AddProductRequest) fulfillment.Input {
	return fulfillment.Input{
		ProductID:   in.ProductID,
		WarehouseID: in.WarehouseID,
		OrderID:     in.OrderID,
		Amount:      in.Amount,
		Price:       in.Price,
		CreatedAt:   in.CreatedAt,
	}
}

// respondFulfillmentError mapea los errores de dominio del flujo a los
// estados y cuerpos exactos del contrato.
func respondFulfillmentError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, domain.ErrInvalidAmount):
		return c.Status(fiber.StatusBadRequest).SendString("Amount must be greater than 0.")
	case errors.Is(err, domain.ErrProductNotFound):
		return c.Status(fiber.StatusNotFound).SendString("Product not found.")
	case errors.Is(err, domain.ErrWarehouseNotFound):
		return c.Status(fiber.StatusNotFound).SendString("Warehouse not found.")
	case errors.Is(err, domain.ErrOrderNotEligible):
		return c.Status(fiber.StatusNotFound).SendString("Order not found or already fulfilled.")
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Code:    "INTERNAL",
			Message: err.Error(),
		})
	}
}
