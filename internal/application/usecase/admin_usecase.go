package usecase

import (
	"context"
	"strings"

	"golang.org/x/text/cases"

	"github.com/tu-usuario/salesify-dashboard/internal/domain/entity"
	"github.com/tu-usuario/salesify-dashboard/internal/domain/repository"
)

// AdminUseCase vistas y acciones del administrador de plataforma.
type AdminUseCase struct {
	api repository.AdminAPI
}

// NewAdminUseCase construye el caso de uso de admin.
func NewAdminUseCase(api repository.AdminAPI) *AdminUseCase {
	return &AdminUseCase{api: api}
}

// Overview devuelve las estadísticas de plataforma para las stat cards.
func (uc *AdminUseCase) Overview(ctx context.Context, token string) (*entity.PlatformOverview, error) {
	return uc.api.PlatformOverview(ctx, token)
}

// CompaniesPage trae la página pedida y aplica el filtro de texto sobre las
// filas de ESA página; la paginación sigue siendo la del servidor, sin
// recalcular.
func (uc *AdminUseCase) CompaniesPage(ctx context.Context, token string, page int, query string) (*entity.CompanyPage, error) {
	result, err := uc.api.Companies(ctx, token, page)
	if err != nil {
		return nil, err
	}
	result.Companies = FilterCompanies(result.Companies, query)
	return result, nil
}

// Suspend suspende la empresa. El caller re-consulta la página actual después
// de mutar (re-fetch completo, no parcheo de estado).
func (uc *AdminUseCase) Suspend(ctx context.Context, token string, id int64) error {
	return uc.api.SuspendCompany(ctx, token, id)
}

// Recover reactiva la empresa suspendida.
func (uc *AdminUseCase) Recover(ctx context.Context, token string, id int64) error {
	return uc.api.RecoverCompany(ctx, token, id)
}

// AuditLogs devuelve los últimos 15 eventos de plataforma.
func (uc *AdminUseCase) AuditLogs(ctx context.Context, token string) ([]entity.AuditLog, error) {
	return uc.api.AuditLogs(ctx, token)
}

// FilterCompanies filtro por substring del nombre, insensible a mayúsculas
// (case folding Unicode). Query vacío devuelve las filas tal cual.
func FilterCompanies(companies []entity.Company, query string) []entity.Company {
	query = strings.TrimSpace(query)
	if query == "" {
		return companies
	}
	fold := cases.Fold()
	needle := fold.String(query)
	filtered := make([]entity.Company, 0, len(companies))
	for _, c := range companies {
		if strings.Contains(fold.String(c.Name), needle) {
			filtered = append(filtered, c)
		}
	}
	return filtered
}
