package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/resto-backoffice/internal/application/dto"
	"github.com/tu-usuario/resto-backoffice/internal/application/usecase"
	"github.com/tu-usuario/resto-backoffice/internal/domain"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	InventoryUC *usecase.InventoryUseCase
	SupplierUC  *usecase.SupplierUseCase
	OrderUC     *usecase.OrderUseCase
	ChangeLogUC *usecase.ChangeLogUseCase
}

// Router registra las rutas del servicio de datos. Las rutas cuelgan de la
// raíz (sin prefijo /api): el dashboard las consume tal cual.
func Router(app *fiber.App, deps RouterDeps) {
	inventoryHandler := NewInventoryHandler(deps.InventoryUC)
	inventory := app.Group("/inventory")
	inventory.Get("/", inventoryHandler.List)
	inventory.Get("/low-stock", inventoryHandler.LowStock)
	inventory.Put("/:id", inventoryHandler.Update)

	orderHandler := NewOrderHandler(deps.OrderUC)
	orders := app.Group("/orders")
	orders.Get("/", orderHandler.List)
	orders.Post("/", orderHandler.Create)
	orders.Put("/:id", orderHandler.UpdateStatus)
	orders.Get("/:id/pdf", orderHandler.PDF)

	supplierHandler := NewSupplierHandler(deps.SupplierUC)
	suppliers := app.Group("/suppliers")
	suppliers.Get("/", supplierHandler.List)
	suppliers.Post("/", supplierHandler.Create)
	suppliers.Put("/:id", supplierHandler.Update)

	changeLogHandler := NewChangeLogHandler(deps.ChangeLogUC)
	app.Get("/changelog", changeLogHandler.List)
}

// errorJSON traduce errores de dominio a respuestas HTTP.
func errorJSON(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: err.Error()})
	case errors.Is(err, domain.ErrInvalidInput), errors.Is(err, domain.ErrInvalidStatus):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	case errors.Is(err, domain.ErrDuplicate):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "DUPLICATE", Message: err.Error()})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
}
