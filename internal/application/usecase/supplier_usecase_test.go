package usecase_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/resto-backoffice/internal/application/dto"
	"github.com/tu-usuario/resto-backoffice/internal/application/usecase"
	"github.com/tu-usuario/resto-backoffice/internal/domain"
	"github.com/tu-usuario/resto-backoffice/internal/domain/entity"
)

func buildSupplierUC() (*usecase.SupplierUseCase, *memSupplierRepo) {
	repo := &memSupplierRepo{suppliers: []*entity.Supplier{
		{ID: "SUP-001", Name: "Fresh Farms", Category: "Produce", Rating: 4.9},
	}}
	return usecase.NewSupplierUseCase(repo), repo
}

func TestSupplierCreate_CodigoSecuencial(t *testing.T) {
	uc, repo := buildSupplierUC()

	out, err := uc.Create(dto.CreateSupplierRequest{
		Name: "Ocean Catch", Contact: "Lisa White", Category: "Seafood", Rating: 4.5,
	})
	require.NoError(t, err)
	assert.Equal(t, "SUP-002", out.ID)
	assert.Len(t, repo.suppliers, 2)
}

func TestSupplierCreate_NombreObligatorio(t *testing.T) {
	uc, _ := buildSupplierUC()
	_, err := uc.Create(dto.CreateSupplierRequest{})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// El nombre es la referencia desnormalizada que usan inventario y pedidos;
// no puede duplicarse.
func TestSupplierCreate_NombreDuplicado(t *testing.T) {
	uc, _ := buildSupplierUC()
	_, err := uc.Create(dto.CreateSupplierRequest{Name: "Fresh Farms"})
	assert.ErrorIs(t, err, domain.ErrDuplicate)
}

func TestSupplierUpdate_Parcial(t *testing.T) {
	uc, repo := buildSupplierUC()

	rating := 4.2
	out, err := uc.Update("SUP-001", dto.UpdateSupplierRequest{Rating: &rating})
	require.NoError(t, err)
	assert.Equal(t, 4.2, out.Rating)
	assert.Equal(t, "Fresh Farms", out.Name, "los campos ausentes no cambian")

	stored, _ := repo.GetByID("SUP-001")
	assert.Equal(t, 4.2, stored.Rating)
}

func TestSupplierUpdate_Inexistente(t *testing.T) {
	uc, _ := buildSupplierUC()
	out, err := uc.Update("SUP-999", dto.UpdateSupplierRequest{})
	require.NoError(t, err)
	assert.Nil(t, out)
}
