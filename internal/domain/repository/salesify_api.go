package repository

import (
	"context"

	"github.com/tu-usuario/salesify-dashboard/internal/domain/entity"
)

// Puertos de salida hacia el API remoto de Salesify (DIP): las interfaces viven
// en domain y la implementación HTTP en infrastructure/salesify. El token viaja
// por llamada porque la sesión es por petición, no por cliente.

// RegisterCompanyInput datos del registro de empresa + manager.
type RegisterCompanyInput struct {
	CompanyName string
	Industry    string
	ManagerName string
	Email       string
	Password    string
}

// AddEmployeeInput alta de empleado dentro de la empresa del manager.
type AddEmployeeInput struct {
	Username string
	Email    string
	Password string
}

// AuthAPI operaciones públicas de autenticación.
type AuthAPI interface {
	// Login devuelve el bearer token y el rol crudo tal como lo reporta el backend.
	Login(ctx context.Context, email, password string) (token, rawRole string, err error)
	RegisterCompany(ctx context.Context, in RegisterCompanyInput) error
	// VerifyOTP devuelve el mensaje de confirmación del backend.
	VerifyOTP(ctx context.Context, email, otp string) (string, error)
}

// AdminAPI operaciones de la vista de administrador.
type AdminAPI interface {
	PlatformOverview(ctx context.Context, token string) (*entity.PlatformOverview, error)
	Companies(ctx context.Context, token string, page int) (*entity.CompanyPage, error)
	SuspendCompany(ctx context.Context, token string, id int64) error
	RecoverCompany(ctx context.Context, token string, id int64) error
	AuditLogs(ctx context.Context, token string) ([]entity.AuditLog, error)
}

// CompanyAPI operaciones del manager sobre su empresa.
type CompanyAPI interface {
	CompanyDashboard(ctx context.Context, token string) (*entity.CompanyOverview, error)
	ListEmployees(ctx context.Context, token string) ([]entity.Employee, error)
	AddEmployee(ctx context.Context, token string, in AddEmployeeInput) error
	DeleteEmployee(ctx context.Context, token string, id int64) error
}

// EmployeeAPI operaciones del empleado: subida de archivos y gráficos.
type EmployeeAPI interface {
	UploadFile(ctx context.Context, token, filename string, content []byte) (*entity.UploadResult, error)
	MapColumns(ctx context.Context, token string, sub entity.MappingSubmission) (*entity.CleaningReport, error)
	AvailableCharts(ctx context.Context, token string) ([]string, error)
}
