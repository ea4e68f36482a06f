package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound      = errors.New("recurso no encontrado")
	ErrInvalidInput  = errors.New("entrada inválida")
	ErrDuplicate     = errors.New("recurso duplicado")
	ErrInvalidStatus = errors.New("estado de pedido inválido")
	ErrRowBusy       = errors.New("otra fila está en edición")
)
