package usecase

import (
	"github.com/tu-usuario/resto-backoffice/internal/application/dto"
	"github.com/tu-usuario/resto-backoffice/internal/domain/entity"
	"github.com/tu-usuario/resto-backoffice/internal/domain/repository"
)

// ChangeLogUseCase lectura del histórico de cambios (append-only; sin escritura directa).
type ChangeLogUseCase struct {
	repo repository.ChangeLogRepository
}

// NewChangeLogUseCase construye el caso de uso.
func NewChangeLogUseCase(repo repository.ChangeLogRepository) *ChangeLogUseCase {
	return &ChangeLogUseCase{repo: repo}
}

// List devuelve el histórico; si itemID no es vacío, solo las entradas de ese artículo.
func (uc *ChangeLogUseCase) List(itemID string) ([]dto.ChangeLogEntryResponse, error) {
	var (
		list []*entity.ChangeLogEntry
		err  error
	)
	if itemID != "" {
		list, err = uc.repo.ListByItem(itemID)
	} else {
		list, err = uc.repo.List()
	}
	if err != nil {
		return nil, err
	}
	out := make([]dto.ChangeLogEntryResponse, 0, len(list))
	for _, e := range list {
		out = append(out, dto.ChangeLogEntryResponse{
			ID:               e.ID,
			ItemID:           e.ItemID,
			Timestamp:        e.Timestamp,
			User:             e.User,
			Type:             e.Type,
			PreviousQuantity: e.PreviousQuantity,
			NewQuantity:      e.NewQuantity,
			OrderID:          e.OrderID,
			Supplier:         e.Supplier,
		})
	}
	return out, nil
}
