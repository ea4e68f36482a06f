package usecase_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/resto-backoffice/internal/application/dto"
	"github.com/tu-usuario/resto-backoffice/internal/application/usecase"
	"github.com/tu-usuario/resto-backoffice/internal/domain"
	"github.com/tu-usuario/resto-backoffice/internal/domain/entity"
)

func buildInventoryUC() (*usecase.InventoryUseCase, *memInventoryRepo, *memChangeLogRepo) {
	repo := &memInventoryRepo{items: []*entity.InventoryItem{
		{ID: "1", Name: "Olive Oil", Category: entity.CategoryKitchen,
			Quantity: d("12"), Unit: "L", ReorderLevel: d("5"), UnitCost: d("15.99"),
			Supplier: "Fresh Farms", LastUpdated: "2025-12-01"},
		{ID: "9", Name: "Whiskey Bourbon", Category: entity.CategoryBar,
			Quantity: d("3"), Unit: "bottles", ReorderLevel: d("5"), UnitCost: d("45"),
			Supplier: "Spirit Masters", LastUpdated: "2025-12-02"},
	}}
	logRepo := &memChangeLogRepo{}
	return usecase.NewInventoryUseCase(repo, logRepo), repo, logRepo
}

func TestInventoryListLowStock(t *testing.T) {
	uc, _, _ := buildInventoryUC()

	out, err := uc.ListLowStock()
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, "Whiskey Bourbon", out[0].Name, "solo quantity < reorderLevel es bajo stock")
}

// Un cambio de cantidad registra un conteo firmado por el usuario y
// refresca la fecha de último conteo.
func TestInventoryUpdate_CambioDeCantidad(t *testing.T) {
	uc, repo, logRepo := buildInventoryUC()
	qty := d("10")

	out, err := uc.Update("1", "John D.", dto.UpdateInventoryItemRequest{Quantity: &qty})
	require.NoError(t, err)
	assert.True(t, out.Quantity.Equal(d("10")))
	assert.Equal(t, time.Now().Format("2006-01-02"), out.LastUpdated)

	require.Len(t, logRepo.entries, 1)
	entry := logRepo.entries[0]
	assert.Equal(t, "John D.", entry.User)
	assert.Equal(t, entity.ChangeTypeCount, entry.Type)
	assert.True(t, entry.PreviousQuantity.Equal(d("12")))
	assert.True(t, entry.NewQuantity.Equal(d("10")))
	assert.Empty(t, entry.OrderID, "un conteo manual no referencia pedido")

	stored, _ := repo.GetByID("1")
	assert.True(t, stored.Quantity.Equal(d("10")))
}

// Actualizar sin tocar la cantidad (u otorgando la misma) no genera histórico.
func TestInventoryUpdate_SinCambioDeCantidad(t *testing.T) {
	uc, _, logRepo := buildInventoryUC()

	supplier := "Beverage Plus"
	_, err := uc.Update("1", "John D.", dto.UpdateInventoryItemRequest{Supplier: &supplier})
	require.NoError(t, err)

	misma := d("12")
	_, err = uc.Update("1", "John D.", dto.UpdateInventoryItemRequest{Quantity: &misma})
	require.NoError(t, err)

	assert.Empty(t, logRepo.entries, "solo los cambios reales de cantidad dejan rastro")
}

func TestInventoryUpdate_CategoriaInvalida(t *testing.T) {
	uc, _, _ := buildInventoryUC()

	cat := "almacén"
	_, err := uc.Update("1", "John D.", dto.UpdateInventoryItemRequest{Category: &cat})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestInventoryUpdate_Inexistente(t *testing.T) {
	uc, _, _ := buildInventoryUC()

	out, err := uc.Update("99", "John D.", dto.UpdateInventoryItemRequest{})
	require.NoError(t, err)
	assert.Nil(t, out)
}
