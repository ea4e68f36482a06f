package repository

import "github.com/tu-usuario/resto-backoffice/internal/domain/entity"

// ChangeLogRepository define el puerto de persistencia para el histórico de cambios.
// Solo hay append y lectura: las entradas nunca se mutan ni se borran.
type ChangeLogRepository interface {
	List() ([]*entity.ChangeLogEntry, error)
	ListByItem(itemID string) ([]*entity.ChangeLogEntry, error)
	Create(entry *entity.ChangeLogEntry) error
}
