package web

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/tu-usuario/salesify-dashboard/internal/application/auth"
	"github.com/tu-usuario/salesify-dashboard/internal/application/dto"
	"github.com/tu-usuario/salesify-dashboard/internal/domain"
)

// AuthHandler login, registro de empresa, verificación OTP y logout.
type AuthHandler struct {
	uc       *auth.UseCase
	sessions *SessionManager
}

// NewAuthHandler construye el handler de auth.
func NewAuthHandler(uc *auth.UseCase, sessions *SessionManager) *AuthHandler {
	return &AuthHandler{uc: uc, sessions: sessions}
}

type loginView struct {
	Email  string
	Error  string
	Notice string
}

type registerView struct {
	Form  dto.RegisterCompanyRequest
	Error string
}

type otpView struct {
	Email string
	Error string
}

// LoginPage GET /login.
func (h *AuthHandler) LoginPage(c *fiber.Ctx) error {
	view := loginView{}
	if c.Query("verified") != "" {
		view.Notice = "Account verified. Please log in."
	}
	return render(c, "login", view)
}

// Login POST /login: autentica, persiste la sesión (token + rol normalizado) y
// redirige al dashboard. El fallo re-renderiza el formulario con el mensaje;
// sin reintentos automáticos.
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var in dto.LoginRequest
	if err := c.BodyParser(&in); err != nil {
		return renderStatus(c, fiber.StatusBadRequest, "login", loginView{Error: "Invalid form submission."})
	}
	if in.Email == "" || in.Password == "" {
		return renderStatus(c, fiber.StatusBadRequest, "login", loginView{Email: in.Email, Error: "Email and password are required."})
	}

	session, err := h.uc.Login(c.Context(), in.Email, in.Password)
	if err != nil {
		view := loginView{Email: in.Email}
		switch {
		case errors.Is(err, domain.ErrSessionExpired):
			// Un 401 en /login son credenciales inválidas, no una sesión caída.
			view.Error = "Invalid email or password."
		case errors.Is(err, domain.ErrUnknownRole):
			view.Error = "Your account role is not supported by this dashboard."
		default:
			view.Error = displayError(err, "Login failed. Try again.")
		}
		return renderStatus(c, fiber.StatusUnauthorized, "login", view)
	}

	if err := h.sessions.Write(c, session); err != nil {
		return err
	}
	return c.Redirect("/dashboard", fiber.StatusSeeOther)
}

// RegisterPage GET /register.
func (h *AuthHandler) RegisterPage(c *fiber.Ctx) error {
	return render(c, "register", registerView{})
}

// Register POST /register: registra la empresa, guarda el email en el slot
// pendiente de verificación y redirige a la entrada de OTP.
func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var in dto.RegisterCompanyRequest
	if err := c.BodyParser(&in); err != nil {
		return renderStatus(c, fiber.StatusBadRequest, "register", registerView{Error: "Invalid form submission."})
	}
	if in.CompanyName == "" || in.Industry == "" || in.ManagerName == "" || in.Email == "" || in.Password == "" {
		return renderStatus(c, fiber.StatusBadRequest, "register", registerView{Form: in, Error: "All fields are required."})
	}

	if err := h.uc.RegisterCompany(c.Context(), in); err != nil {
		return renderStatus(c, fiber.StatusBadRequest, "register", registerView{
			Form:  in,
			Error: displayError(err, "Registration failed. Try again."),
		})
	}

	h.sessions.SetPendingEmail(c, in.Email)
	return c.Redirect("/verify-otp", fiber.StatusSeeOther)
}

// VerifyOTPPage GET /verify-otp. Sin slot pendiente no hay nada que verificar.
func (h *AuthHandler) VerifyOTPPage(c *fiber.Ctx) error {
	email := h.sessions.PendingEmail(c)
	if email == "" {
		return c.Redirect("/register", fiber.StatusSeeOther)
	}
	return render(c, "verify_otp", otpView{Email: email})
}

// VerifyOTP POST /verify-otp: concatena las seis celdas y verifica. En éxito
// limpia el slot pendiente y manda a /login; en fallo lo retiene para que el
// usuario reintente sin volver a registrarse.
func (h *AuthHandler) VerifyOTP(c *fiber.Ctx) error {
	email := h.sessions.PendingEmail(c)
	if email == "" {
		return c.Redirect("/register", fiber.StatusSeeOther)
	}

	var in dto.OTPRequest
	if err := c.BodyParser(&in); err != nil {
		return renderStatus(c, fiber.StatusBadRequest, "verify_otp", otpView{Email: email, Error: "Invalid form submission."})
	}

	if _, err := h.uc.VerifyOTP(c.Context(), email, in.Digits()); err != nil {
		view := otpView{Email: email}
		if errors.Is(err, domain.ErrInvalidInput) {
			view.Error = "The code must be 6 digits."
		} else {
			view.Error = displayError(err, "OTP verification failed.")
		}
		return renderStatus(c, fiber.StatusBadRequest, "verify_otp", view)
	}

	h.sessions.ClearPendingEmail(c)
	return c.Redirect("/login?verified=1", fiber.StatusSeeOther)
}

// Logout POST /logout.
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	h.sessions.Clear(c)
	return c.Redirect("/login", fiber.StatusSeeOther)
}

// Unauthorized GET /unauthorized.
func (h *AuthHandler) Unauthorized(c *fiber.Ctx) error {
	return renderStatus(c, fiber.StatusForbidden, "unauthorized", nil)
}
