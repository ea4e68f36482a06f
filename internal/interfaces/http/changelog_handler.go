package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/resto-backoffice/internal/application/dto"
	"github.com/tu-usuario/resto-backoffice/internal/application/usecase"
)

// ChangeLogHandler maneja las peticiones HTTP del histórico de cambios (solo lectura).
type ChangeLogHandler struct {
	uc *usecase.ChangeLogUseCase
}

// NewChangeLogHandler construye el handler.
func NewChangeLogHandler(uc *usecase.ChangeLogUseCase) *ChangeLogHandler {
	return &ChangeLogHandler{uc: uc}
}

// List godoc
// @Summary      Listar histórico de cambios
// @Tags         changelog
// @Produce      json
// @Param        item_id  query  string  false  "Filtrar por artículo"
// @Success      200  {array}  dto.ChangeLogEntryResponse
// @Router       /changelog [get]
func (h *ChangeLogHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.Query("item_id"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}
