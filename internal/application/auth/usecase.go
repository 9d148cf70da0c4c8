package auth

import (
	"context"
	"fmt"

	"github.com/tu-usuario/salesify-dashboard/internal/application/dto"
	"github.com/tu-usuario/salesify-dashboard/internal/domain"
	"github.com/tu-usuario/salesify-dashboard/internal/domain/entity"
	"github.com/tu-usuario/salesify-dashboard/internal/domain/repository"
)

// UseCase flujos de autenticación: login, registro de empresa y verificación OTP.
// No guarda estado; la sesión resultante la persiste la capa web en la cookie.
type UseCase struct {
	api repository.AuthAPI
}

// New construye el caso de uso de auth.
func New(api repository.AuthAPI) *UseCase {
	return &UseCase{api: api}
}

// Login autentica contra el API y normaliza el rol antes de construir la sesión.
// Un rol fuera de la enumeración cerrada rechaza el login (domain.ErrUnknownRole)
// en vez de guardarse tal cual: un rol que ningún guard reconoce solo produciría
// redirecciones a /unauthorized más adelante.
func (uc *UseCase) Login(ctx context.Context, email, password string) (entity.Session, error) {
	token, rawRole, err := uc.api.Login(ctx, email, password)
	if err != nil {
		return entity.Session{}, err
	}
	role, ok := entity.NormalizeRole(rawRole)
	if !ok {
		return entity.Session{}, fmt.Errorf("%w: %q", domain.ErrUnknownRole, rawRole)
	}
	return entity.Session{Token: token, Role: role}, nil
}

// RegisterCompany registra la empresa. El email queda pendiente de verificación;
// la capa web lo guarda en el slot transitorio y redirige a la entrada de OTP.
func (uc *UseCase) RegisterCompany(ctx context.Context, in dto.RegisterCompanyRequest) error {
	return uc.api.RegisterCompany(ctx, repository.RegisterCompanyInput{
		CompanyName: in.CompanyName,
		Industry:    in.Industry,
		ManagerName: in.ManagerName,
		Email:       in.Email,
		Password:    in.Password,
	})
}

// VerifyOTP valida las seis celdas en el borde: cada una debe ser exactamente un
// dígito 0-9. Entrada malformada se rechaza sin tocar la red. Devuelve el
// mensaje de confirmación del backend.
func (uc *UseCase) VerifyOTP(ctx context.Context, email string, digits []string) (string, error) {
	if email == "" {
		return "", fmt.Errorf("%w: no hay registro pendiente de verificación", domain.ErrInvalidInput)
	}
	if len(digits) != 6 {
		return "", fmt.Errorf("%w: se esperan 6 dígitos", domain.ErrInvalidInput)
	}
	code := ""
	for _, d := range digits {
		if len(d) != 1 || d[0] < '0' || d[0] > '9' {
			return "", fmt.Errorf("%w: el código OTP solo admite dígitos", domain.ErrInvalidInput)
		}
		code += d
	}
	return uc.api.VerifyOTP(ctx, email, code)
}
