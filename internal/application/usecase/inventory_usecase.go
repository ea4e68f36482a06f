package usecase

import (
	"time"

	"github.com/tu-usuario/resto-backoffice/internal/application/dto"
	"github.com/tu-usuario/resto-backoffice/internal/domain"
	"github.com/tu-usuario/resto-backoffice/internal/domain/entity"
	"github.com/tu-usuario/resto-backoffice/internal/domain/repository"
)

// InventoryUseCase casos de uso de inventario. Cada cambio de cantidad deja
// una entrada inventory-count en el histórico.
type InventoryUseCase struct {
	repo    repository.InventoryRepository
	logRepo repository.ChangeLogRepository
}

// NewInventoryUseCase construye el caso de uso.
func NewInventoryUseCase(repo repository.InventoryRepository, logRepo repository.ChangeLogRepository) *InventoryUseCase {
	return &InventoryUseCase{repo: repo, logRepo: logRepo}
}

// List devuelve la colección completa de artículos.
func (uc *InventoryUseCase) List() ([]dto.InventoryItemResponse, error) {
	list, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	return toInventoryResponses(list), nil
}

// ListLowStock devuelve los artículos con quantity < reorderLevel.
func (uc *InventoryUseCase) ListLowStock() ([]dto.InventoryItemResponse, error) {
	list, err := uc.repo.ListLowStock()
	if err != nil {
		return nil, err
	}
	return toInventoryResponses(list), nil
}

// Update aplica una actualización parcial. Si la cantidad cambia se registra
// un conteo manual en el histórico firmado por user y se refresca LastUpdated.
func (uc *InventoryUseCase) Update(id, user string, in dto.UpdateInventoryItemRequest) (*dto.InventoryItemResponse, error) {
	item, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, nil
	}

	if in.Name != nil {
		item.Name = *in.Name
	}
	if in.Category != nil {
		if *in.Category != entity.CategoryKitchen && *in.Category != entity.CategoryBar {
			return nil, domain.ErrInvalidInput
		}
		item.Category = *in.Category
	}
	if in.Unit != nil {
		item.Unit = *in.Unit
	}
	if in.ReorderLevel != nil {
		item.ReorderLevel = *in.ReorderLevel
	}
	if in.UnitCost != nil {
		item.UnitCost = *in.UnitCost
	}
	if in.Supplier != nil {
		item.Supplier = *in.Supplier
	}

	now := time.Now()
	if in.Quantity != nil && !in.Quantity.Equal(item.Quantity) {
		prev := item.Quantity
		item.Quantity = *in.Quantity
		item.LastUpdated = now.Format("2006-01-02")
		entry := &entity.ChangeLogEntry{
			ItemID:           item.ID,
			Timestamp:        now,
			User:             user,
			Type:             entity.ChangeTypeCount,
			PreviousQuantity: prev,
			NewQuantity:      item.Quantity,
		}
		if err := uc.logRepo.Create(entry); err != nil {
			return nil, err
		}
	}

	item.UpdatedAt = now
	if err := uc.repo.Update(item); err != nil {
		return nil, err
	}
	return toInventoryResponse(item), nil
}

func toInventoryResponse(it *entity.InventoryItem) *dto.InventoryItemResponse {
	if it == nil {
		return nil
	}
	return &dto.InventoryItemResponse{
		ID:           it.ID,
		Name:         it.Name,
		Category:     it.Category,
		Quantity:     it.Quantity,
		Unit:         it.Unit,
		ReorderLevel: it.ReorderLevel,
		UnitCost:     it.UnitCost,
		Supplier:     it.Supplier,
		LastUpdated:  it.LastUpdated,
	}
}

func toInventoryResponses(list []*entity.InventoryItem) []dto.InventoryItemResponse {
	out := make([]dto.InventoryItemResponse, 0, len(list))
	for _, it := range list {
		out = append(out, *toInventoryResponse(it))
	}
	return out
}
