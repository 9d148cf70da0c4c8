package web

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/tu-usuario/salesify-dashboard/internal/domain/entity"
	"github.com/tu-usuario/salesify-dashboard/pkg/config"
	"github.com/tu-usuario/salesify-dashboard/pkg/sessioncookie"
)

// Locals keys de la capa web.
const LocalSession = "session"

// pendingEmailCookie slot transitorio con el email pendiente de verificación OTP.
const pendingEmailCookie = "salesify_otp_email"

// pendingEmailTTL vida corta del slot: registrar → verificar es un tramo de minutos.
const pendingEmailTTL = 30 * time.Minute

// SessionManager único punto de lectura/escritura de la sesión del navegador.
// La sesión completa (token del API + rol normalizado) viaja firmada en una
// cookie HttpOnly; el gateway no guarda nada del lado del servidor.
type SessionManager struct {
	cfg config.SessionConfig
}

// NewSessionManager construye el manager con la configuración de cookie.
func NewSessionManager(cfg config.SessionConfig) *SessionManager {
	return &SessionManager{cfg: cfg}
}

// Read parsea la cookie de sesión. Cualquier cookie ausente, expirada o con
// firma inválida se trata como sesión ausente (ok=false); no hay estados
// intermedios.
func (m *SessionManager) Read(c *fiber.Ctx) (entity.Session, bool) {
	raw := c.Cookies(m.cfg.CookieName)
	if raw == "" {
		return entity.Session{}, false
	}
	token, role, err := sessioncookie.Parse(m.cfg.Secret, raw)
	if err != nil || token == "" {
		return entity.Session{}, false
	}
	return entity.Session{Token: token, Role: entity.Role(role)}, true
}

// Write firma y persiste la sesión en la cookie. Única vía de escritura.
func (m *SessionManager) Write(c *fiber.Ctx, s entity.Session) error {
	value, err := sessioncookie.Issue(m.cfg.Secret, m.cfg.Issuer, m.cfg.Expiration, s.Token, string(s.Role))
	if err != nil {
		return err
	}
	c.Cookie(&fiber.Cookie{
		Name:     m.cfg.CookieName,
		Value:    value,
		Expires:  time.Now().Add(time.Duration(m.cfg.Expiration) * time.Minute),
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteLaxMode,
		Path:     "/",
	})
	return nil
}

// Clear elimina la cookie de sesión (logout o 401 del API).
func (m *SessionManager) Clear(c *fiber.Ctx) {
	c.Cookie(&fiber.Cookie{
		Name:     m.cfg.CookieName,
		Value:    "",
		Expires:  time.Now().Add(-time.Hour),
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteLaxMode,
		Path:     "/",
	})
}

// PendingEmail email guardado tras el registro, a la espera del OTP.
func (m *SessionManager) PendingEmail(c *fiber.Ctx) string {
	return c.Cookies(pendingEmailCookie)
}

// SetPendingEmail guarda el slot transitorio tras un registro exitoso.
func (m *SessionManager) SetPendingEmail(c *fiber.Ctx, email string) {
	c.Cookie(&fiber.Cookie{
		Name:     pendingEmailCookie,
		Value:    email,
		Expires:  time.Now().Add(pendingEmailTTL),
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteLaxMode,
		Path:     "/",
	})
}

// ClearPendingEmail descarta el slot tras una verificación exitosa. En fallo se
// retiene para que el usuario reintente sin volver a registrarse.
func (m *SessionManager) ClearPendingEmail(c *fiber.Ctx) {
	c.Cookie(&fiber.Cookie{
		Name:     pendingEmailCookie,
		Value:    "",
		Expires:  time.Now().Add(-time.Hour),
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteLaxMode,
		Path:     "/",
	})
}

// GetSession devuelve la sesión dejada en Locals por RequireSession.
func GetSession(c *fiber.Ctx) entity.Session {
	v := c.Locals(LocalSession)
	if v == nil {
		return entity.Session{}
	}
	s, _ := v.(entity.Session)
	return s
}
