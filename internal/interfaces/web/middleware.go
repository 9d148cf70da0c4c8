package web

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/tu-usuario/salesify-dashboard/internal/domain/entity"
	"github.com/tu-usuario/salesify-dashboard/pkg/logger"
)

// RequireSession guard de autenticación: sin cookie válida redirige a /login;
// con cookie deja la sesión en c.Locals y continúa. Función pura del estado
// actual de la cookie, evaluada en cada petición (sin caché).
func RequireSession(sessions *SessionManager) fiber.Handler {
	return func(c *fiber.Ctx) error {
		s, ok := sessions.Read(c)
		if !ok {
			return c.Redirect("/login", fiber.StatusSeeOther)
		}
		c.Locals(LocalSession, s)
		return c.Next()
	}
}

// RequireRole guard de rol con allow-list. Debe usarse DESPUÉS de
// RequireSession. Rol fuera de la lista → redirección a /unauthorized.
func RequireRole(allowed ...entity.Role) fiber.Handler {
	return func(c *fiber.Ctx) error {
		role := GetSession(c).Role
		for _, a := range allowed {
			if role == a {
				return c.Next()
			}
		}
		return c.Redirect("/unauthorized", fiber.StatusSeeOther)
	}
}

// RequestLogger registra cada petición con método, ruta, status y duración.
func RequestLogger(log *logger.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()
		log.Info().
			Str("method", c.Method()).
			Str("path", c.Path()).
			Int("status", c.Response().StatusCode()).
			Dur("duration", time.Since(start)).
			Msg("petición")
		return err
	}
}
