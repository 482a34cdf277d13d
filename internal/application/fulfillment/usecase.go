package fulfillment

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/almacen-api/internal/domain"
	"github.com/jhoicas/almacen-api/internal/domain/entity"
	"github.com/jhoicas/almacen-api/internal/domain/repository"
)

// Input entrada del flujo de cumplimiento de orden.
type Input struct {
	ProductID   int
	WarehouseID int
	OrderID     int
	Amount      int
	Price       decimal.Decimal // precio unitario del request, no el de lista
	CreatedAt   time.Time
}

// Service cumple una orden registrando el ingreso a bodega y devuelve el id
// del registro creado. Dos implementaciones intercambiables: UseCase
// (transacción en proceso) y el procedimiento almacenado en postgres.
type Service interface {
	FulfillOrder(ctx context.Context, in Input) (int, error)
}

var _ Service = (*UseCase)(nil)

// UseCase flujo de cumplimiento en proceso: validación, chequeos de
// existencia en corto circuito y par update/insert dentro de una transacción.
type UseCase struct {
	txRunner      TxRunner
	productRepo   repository.ProductRepository
	warehouseRepo repository.WarehouseRepository
	orderRepo     repository.OrderRepository
}

// NewUseCase construye el caso de uso.
func NewUseCase(
	txRunner TxRunner,
	productRepo repository.ProductRepository,
	warehouseRepo repository.WarehouseRepository,
	orderRepo repository.OrderRepository,
) *UseCase {
	return &UseCase{
		txRunner:      txRunner,
		productRepo:   productRepo,
		warehouseRepo: warehouseRepo,
		orderRepo:     orderRepo,
	}
}

// FulfillOrder valida el request, verifica producto, bodega y orden elegible
// (cada chequeo corta el flujo con su error de dominio) y luego, en una sola
// transacción, fija fulfilled_at de la orden e inserta el registro
// product_warehouse con precio = cantidad × precio del request.
// Si cualquiera de los dos pasos falla se hace Rollback completo.
func (uc *UseCase) FulfillOrder(ctx context.Context, in Input) (int, error) {
	// Validación pura, sin I/O
	if in.Amount <= 0 {
		return 0, domain.ErrInvalidAmount
	}

	ok, err := uc.productRepo.Exists(ctx, in.ProductID)
	if err != nil {
		return 0, fmt.Errorf("check product: %w", err)
	}
	if !ok {
		return 0, domain.ErrProductNotFound
	}

	ok, err = uc.warehouseRepo.Exists(ctx, in.WarehouseID)
	if err != nil {
		return 0, fmt.Errorf("check warehouse: %w", err)
	}
	if !ok {
		return 0, domain.ErrWarehouseNotFound
	}

	// Elegibilidad: orden abierta, misma cantidad, creada antes del request.
	// No se compara el producto de la orden contra in.ProductID.
	order, err := uc.orderRepo.FindEligible(ctx, in.OrderID, in.Amount, in.CreatedAt)
	if err != nil {
		return 0, fmt.Errorf("check order: %w", err)
	}
	if order == nil {
		return 0, domain.ErrOrderNotEligible
	}

	total := in.Price.Mul(decimal.NewFromInt(int64(in.Amount)))
	callID := uuid.New().String()

	var newID int
	err = uc.txRunner.Run(ctx, func(
		orderRepo repository.OrderRepository,
		stockRepo repository.StockEntryRepository,
	) error {
		if err := orderRepo.MarkFulfilled(ctx, in.OrderID, in.CreatedAt); err != nil {
			return err
		}
		id, err := stockRepo.Create(ctx, &entity.StockEntry{
			WarehouseID: in.WarehouseID,
			ProductID:   in.ProductID,
			OrderID:     in.OrderID,
			Amount:      in.Amount,
			Price:       total,
			CreatedAt:   in.CreatedAt,
		})
		if err != nil {
			return err
		}
		newID = id
		return nil
	})
	if err != nil {
		log.Error().Err(err).Str("call_id", callID).Int("order_id", in.OrderID).
			Msg("transacción de cumplimiento revertida")
		return 0, fmt.Errorf("fulfill order: %w", err)
	}

	log.Info().Str("call_id", callID).
		Int("order_id", in.OrderID).
		Int("product_warehouse_id", newID).
		Str("total", total.String()).
		Msg("orden cumplida")
	return newID, nil
}
