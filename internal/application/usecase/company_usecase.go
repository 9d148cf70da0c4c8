package usecase

import (
	"context"
	"fmt"

	"github.com/tu-usuario/salesify-dashboard/internal/application/dto"
	"github.com/tu-usuario/salesify-dashboard/internal/domain"
	"github.com/tu-usuario/salesify-dashboard/internal/domain/entity"
	"github.com/tu-usuario/salesify-dashboard/internal/domain/repository"
)

// CompanyUseCase vistas y acciones del manager sobre su empresa.
type CompanyUseCase struct {
	api repository.CompanyAPI
}

// NewCompanyUseCase construye el caso de uso de company.
func NewCompanyUseCase(api repository.CompanyAPI) *CompanyUseCase {
	return &CompanyUseCase{api: api}
}

// Overview devuelve las estadísticas de la empresa del manager.
func (uc *CompanyUseCase) Overview(ctx context.Context, token string) (*entity.CompanyOverview, error) {
	return uc.api.CompanyDashboard(ctx, token)
}

// Employees lista los empleados de la empresa.
func (uc *CompanyUseCase) Employees(ctx context.Context, token string) ([]entity.Employee, error) {
	return uc.api.ListEmployees(ctx, token)
}

// AddEmployee valida el formulario y crea el empleado. Tras el alta el caller
// re-consulta la lista completa.
func (uc *CompanyUseCase) AddEmployee(ctx context.Context, token string, in dto.AddEmployeeRequest) error {
	if in.Username == "" || in.Email == "" || in.Password == "" {
		return fmt.Errorf("%w: username, email y password son requeridos", domain.ErrInvalidInput)
	}
	return uc.api.AddEmployee(ctx, token, repository.AddEmployeeInput{
		Username: in.Username,
		Email:    in.Email,
		Password: in.Password,
	})
}

// DeleteEmployee elimina el empleado. A diferencia del alta, la lista NO se
// re-consulta: la vista quita localmente la fila borrada, una petición menos.
func (uc *CompanyUseCase) DeleteEmployee(ctx context.Context, token string, id int64) error {
	return uc.api.DeleteEmployee(ctx, token, id)
}
