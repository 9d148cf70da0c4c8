package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/salesify-dashboard/internal/application/dto"
	"github.com/tu-usuario/salesify-dashboard/internal/domain"
	"github.com/tu-usuario/salesify-dashboard/internal/domain/entity"
	"github.com/tu-usuario/salesify-dashboard/internal/domain/repository"
)

// fakeCompanyAPI implementación de repository.CompanyAPI controlada por el test.
type fakeCompanyAPI struct {
	addCalls    int
	deleteCalls int
	listCalls   int
	lastDeleted int64
	lastAdded   repository.AddEmployeeInput
}

func (f *fakeCompanyAPI) CompanyDashboard(context.Context, string) (*entity.CompanyOverview, error) {
	return &entity.CompanyOverview{CompanyName: "Acme"}, nil
}

func (f *fakeCompanyAPI) ListEmployees(context.Context, string) ([]entity.Employee, error) {
	f.listCalls++
	return []entity.Employee{{ID: 1, Username: "ana"}}, nil
}

func (f *fakeCompanyAPI) AddEmployee(_ context.Context, _ string, in repository.AddEmployeeInput) error {
	f.addCalls++
	f.lastAdded = in
	return nil
}

func (f *fakeCompanyAPI) DeleteEmployee(_ context.Context, _ string, id int64) error {
	f.deleteCalls++
	f.lastDeleted = id
	return nil
}

func TestAddEmployee_CamposVaciosRechazadosSinRed(t *testing.T) {
	cases := []dto.AddEmployeeRequest{
		{Username: "", Email: "a@b.com", Password: "x"},
		{Username: "ana", Email: "", Password: "x"},
		{Username: "ana", Email: "a@b.com", Password: ""},
	}
	for _, in := range cases {
		api := &fakeCompanyAPI{}
		uc := NewCompanyUseCase(api)
		err := uc.AddEmployee(context.Background(), "tok", in)
		assert.ErrorIs(t, err, domain.ErrInvalidInput, "formulario %+v", in)
		assert.Zero(t, api.addCalls)
	}
}

func TestAddEmployee_FormularioValido(t *testing.T) {
	api := &fakeCompanyAPI{}
	uc := NewCompanyUseCase(api)

	err := uc.AddEmployee(context.Background(), "tok", dto.AddEmployeeRequest{
		Username: "ana", Email: "ana@acme.com", Password: "secret",
	})
	require.NoError(t, err)
	assert.Equal(t, 1, api.addCalls)
	assert.Equal(t, "ana@acme.com", api.lastAdded.Email)
}

func TestDeleteEmployee_UnaSolaLlamadaSinReconsulta(t *testing.T) {
	api := &fakeCompanyAPI{}
	uc := NewCompanyUseCase(api)

	require.NoError(t, uc.DeleteEmployee(context.Background(), "tok", 42))
	assert.Equal(t, 1, api.deleteCalls)
	assert.Equal(t, int64(42), api.lastDeleted)
	assert.Zero(t, api.listCalls, "el borrado no re-consulta la lista; la vista edita localmente")
}
