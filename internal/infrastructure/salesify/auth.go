package salesify

import (
	"context"
	"net/http"

	"github.com/tu-usuario/salesify-dashboard/internal/domain/repository"
)

// ── Formas de cable del módulo de auth ────────────────────────────────────────

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginResponse struct {
	Token string `json:"token"`
	Role  string `json:"role"`
}

type registerCompanyRequest struct {
	CompanyName string `json:"company_name"`
	Industry    string `json:"industry"`
	ManagerName string `json:"manager_name"`
	Email       string `json:"email"`
	Password    string `json:"password"`
}

type verifyOTPRequest struct {
	Email string `json:"email"`
	OTP   string `json:"otp"`
}

type verifyOTPResponse struct {
	Message string `json:"message"`
}

// Login ejecuta POST /login y devuelve token y rol crudo (sin normalizar).
func (c *Client) Login(ctx context.Context, email, password string) (string, string, error) {
	var out loginResponse
	err := c.doJSON(ctx, http.MethodPost, "/login", "", loginRequest{Email: email, Password: password}, &out)
	if err != nil {
		return "", "", err
	}
	return out.Token, out.Role, nil
}

// RegisterCompany ejecuta POST /company/register-company.
func (c *Client) RegisterCompany(ctx context.Context, in repository.RegisterCompanyInput) error {
	body := registerCompanyRequest{
		CompanyName: in.CompanyName,
		Industry:    in.Industry,
		ManagerName: in.ManagerName,
		Email:       in.Email,
		Password:    in.Password,
	}
	return c.doJSON(ctx, http.MethodPost, "/company/register-company", "", body, nil)
}

// VerifyOTP ejecuta POST /company/verify-otp y devuelve el mensaje del backend.
func (c *Client) VerifyOTP(ctx context.Context, email, otp string) (string, error) {
	var out verifyOTPResponse
	err := c.doJSON(ctx, http.MethodPost, "/company/verify-otp", "", verifyOTPRequest{Email: email, OTP: otp}, &out)
	if err != nil {
		return "", err
	}
	return out.Message, nil
}
