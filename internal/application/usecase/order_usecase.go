package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/tu-usuario/resto-backoffice/internal/application/dto"
	"github.com/tu-usuario/resto-backoffice/internal/domain"
	"github.com/tu-usuario/resto-backoffice/internal/domain/entity"
	"github.com/tu-usuario/resto-backoffice/internal/domain/repository"
)

// OrderUseCase casos de uso del flujo de pedidos de compra.
// La transición a order-received es transaccional: actualiza el pedido, suma
// las cantidades al inventario, registra entradas order-received en el
// histórico (usuario "System") y sella la fecha de último pedido del proveedor.
type OrderUseCase struct {
	repo         repository.OrderRepository
	supplierRepo repository.SupplierRepository
	txRunner     TxRunner
	pdfGenerator OrderPDFGenerator
}

// NewOrderUseCase construye el caso de uso.
func NewOrderUseCase(
	repo repository.OrderRepository,
	supplierRepo repository.SupplierRepository,
	txRunner TxRunner,
	pdfGenerator OrderPDFGenerator,
) *OrderUseCase {
	return &OrderUseCase{
		repo:         repo,
		supplierRepo: supplierRepo,
		txRunner:     txRunner,
		pdfGenerator: pdfGenerator,
	}
}

// List devuelve todos los pedidos con sus líneas.
func (uc *OrderUseCase) List() ([]dto.OrderResponse, error) {
	list, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	out := make([]dto.OrderResponse, 0, len(list))
	for _, o := range list {
		out = append(out, *toOrderResponse(o))
	}
	return out, nil
}

// Create da de alta un pedido con código ORD-xxx secuencial.
// Status por defecto low-stock; TotalValue se recalcula si viene en cero.
func (uc *OrderUseCase) Create(in dto.CreateOrderRequest) (*dto.OrderResponse, error) {
	if in.Supplier == "" || len(in.Items) == 0 {
		return nil, domain.ErrInvalidInput
	}
	status := in.Status
	if status == "" {
		status = entity.OrderStatusLowStock
	}
	if !entity.ValidOrderStatus(status) {
		return nil, domain.ErrInvalidStatus
	}

	code, err := uc.repo.NextCode()
	if err != nil {
		return nil, err
	}
	now := time.Now()
	orderDate := in.OrderDate
	if orderDate == "" {
		orderDate = now.Format("2006-01-02")
	}

	items := make([]entity.OrderItem, 0, len(in.Items))
	for _, p := range in.Items {
		id := p.ID
		if id == "" {
			id = uuid.New().String()
		}
		items = append(items, entity.OrderItem{
			ID:       id,
			ItemName: p.ItemName,
			Quantity: p.Quantity,
			Unit:     p.Unit,
			Price:    p.Price,
		})
	}

	order := &entity.SupplierOrder{
		ID:           code,
		Supplier:     in.Supplier,
		Items:        items,
		Status:       status,
		OrderDate:    orderDate,
		ExpectedDate: in.ExpectedDate,
		TotalValue:   in.TotalValue,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if order.TotalValue.IsZero() {
		order.TotalValue = order.ComputedTotal()
	}
	if err := uc.repo.Create(order); err != nil {
		return nil, err
	}
	return toOrderResponse(order), nil
}

// UpdateStatus mueve un pedido a otro estado del flujo.
func (uc *OrderUseCase) UpdateStatus(ctx context.Context, id, status string) (*dto.OrderResponse, error) {
	if !entity.ValidOrderStatus(status) {
		return nil, domain.ErrInvalidStatus
	}
	order, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, nil
	}
	if order.Status == status {
		return toOrderResponse(order), nil
	}

	if status == entity.OrderStatusReceived {
		if err := uc.receiveOrder(ctx, order); err != nil {
			return nil, err
		}
	} else if err := uc.repo.UpdateStatus(id, status); err != nil {
		return nil, err
	}

	order.Status = status
	return toOrderResponse(order), nil
}

// receiveOrder ejecuta la recepción en una sola transacción.
// Las líneas cuyo nombre no resuelve a ningún artículo se ignoran (referencia
// desnormalizada por nombre; un rename las deja huérfanas).
func (uc *OrderUseCase) receiveOrder(ctx context.Context, order *entity.SupplierOrder) error {
	now := time.Now()
	today := now.Format("2006-01-02")

	return uc.txRunner.Run(ctx, func(
		orderRepo repository.OrderRepository,
		inventoryRepo repository.InventoryRepository,
		supplierRepo repository.SupplierRepository,
		changeLogRepo repository.ChangeLogRepository,
	) error {
		if err := orderRepo.UpdateStatus(order.ID, entity.OrderStatusReceived); err != nil {
			return err
		}
		for _, line := range order.Items {
			item, err := inventoryRepo.GetByName(line.ItemName)
			if err != nil {
				return err
			}
			if item == nil {
				continue
			}
			prev := item.Quantity
			item.Quantity = item.Quantity.Add(line.Quantity)
			item.LastUpdated = today
			item.UpdatedAt = now
			if err := inventoryRepo.Update(item); err != nil {
				return err
			}
			entry := &entity.ChangeLogEntry{
				ItemID:           item.ID,
				Timestamp:        now,
				User:             "System",
				Type:             entity.ChangeTypeOrderReceived,
				PreviousQuantity: prev,
				NewQuantity:      item.Quantity,
				OrderID:          order.ID,
				Supplier:         order.Supplier,
			}
			if err := changeLogRepo.Create(entry); err != nil {
				return err
			}
		}

		supplier, err := supplierRepo.GetByName(order.Supplier)
		if err != nil {
			return err
		}
		if supplier != nil {
			supplier.LastOrder = today
			supplier.UpdatedAt = now
			if err := supplierRepo.Update(supplier); err != nil {
				return err
			}
		}
		return nil
	})
}

// PDF genera la representación PDF de un pedido de compra.
func (uc *OrderUseCase) PDF(ctx context.Context, id string) ([]byte, error) {
	order, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, domain.ErrNotFound
	}
	supplier, err := uc.supplierRepo.GetByName(order.Supplier)
	if err != nil {
		return nil, err
	}
	return uc.pdfGenerator.GenerateOrderPDF(ctx, order, supplier)
}

func toOrderResponse(o *entity.SupplierOrder) *dto.OrderResponse {
	if o == nil {
		return nil
	}
	items := make([]dto.OrderItemPayload, 0, len(o.Items))
	for _, it := range o.Items {
		items = append(items, dto.OrderItemPayload{
			ID:       it.ID,
			ItemName: it.ItemName,
			Quantity: it.Quantity,
			Unit:     it.Unit,
			Price:    it.Price,
		})
	}
	return &dto.OrderResponse{
		ID:           o.ID,
		Supplier:     o.Supplier,
		Items:        items,
		Status:       o.Status,
		OrderDate:    o.OrderDate,
		ExpectedDate: o.ExpectedDate,
		TotalValue:   o.TotalValue,
	}
}
