package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/salesify-dashboard/internal/domain/entity"
)

// fakeAdminAPI implementación de repository.AdminAPI controlada por el test.
type fakeAdminAPI struct {
	page     *entity.CompanyPage
	lastPage int
}

func (f *fakeAdminAPI) PlatformOverview(context.Context, string) (*entity.PlatformOverview, error) {
	return &entity.PlatformOverview{TotalRegisteredCompanies: 3}, nil
}

func (f *fakeAdminAPI) Companies(_ context.Context, _ string, page int) (*entity.CompanyPage, error) {
	f.lastPage = page
	return f.page, nil
}

func (f *fakeAdminAPI) SuspendCompany(context.Context, string, int64) error { return nil }
func (f *fakeAdminAPI) RecoverCompany(context.Context, string, int64) error { return nil }
func (f *fakeAdminAPI) AuditLogs(context.Context, string) ([]entity.AuditLog, error) {
	return nil, nil
}

func sampleCompanies() []entity.Company {
	return []entity.Company{
		{ID: 1, Name: "Acme Retail", Status: entity.CompanyActive},
		{ID: 2, Name: "Globex", Status: entity.CompanySuspended},
		{ID: 3, Name: "ACME Logistics", Status: entity.CompanyActive},
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// FilterCompanies — filtro en memoria sobre la página traída
// ──────────────────────────────────────────────────────────────────────────────

func TestFilterCompanies_SubstringInsensibleAMayusculas(t *testing.T) {
	got := FilterCompanies(sampleCompanies(), "acme")
	require.Len(t, got, 2)
	assert.Equal(t, "Acme Retail", got[0].Name)
	assert.Equal(t, "ACME Logistics", got[1].Name)
}

func TestFilterCompanies_QueryVacioDevuelveTodo(t *testing.T) {
	companies := sampleCompanies()
	assert.Equal(t, companies, FilterCompanies(companies, ""))
	assert.Equal(t, companies, FilterCompanies(companies, "   "))
}

func TestFilterCompanies_SinCoincidencias(t *testing.T) {
	assert.Empty(t, FilterCompanies(sampleCompanies(), "umbrella"))
}

// ──────────────────────────────────────────────────────────────────────────────
// CompaniesPage — la paginación es la del servidor
// ──────────────────────────────────────────────────────────────────────────────

func TestCompaniesPage_FiltraSinRecalcularPaginacion(t *testing.T) {
	api := &fakeAdminAPI{page: &entity.CompanyPage{
		Companies:  sampleCompanies(),
		Pagination: entity.Pagination{CurrentPage: 2, TotalPages: 5, HasPrev: true, HasNext: true},
	}}
	uc := NewAdminUseCase(api)

	result, err := uc.CompaniesPage(context.Background(), "tok", 2, "globex")
	require.NoError(t, err)
	assert.Equal(t, 2, api.lastPage)
	require.Len(t, result.Companies, 1)
	assert.Equal(t, "Globex", result.Companies[0].Name)
	// El descriptor de página no se toca aunque el filtro deje una sola fila.
	assert.Equal(t, 5, result.Pagination.TotalPages)
	assert.True(t, result.Pagination.HasNext)
}
