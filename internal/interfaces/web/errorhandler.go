package web

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/tu-usuario/salesify-dashboard/internal/application/dto"
	"github.com/tu-usuario/salesify-dashboard/internal/domain"
	"github.com/tu-usuario/salesify-dashboard/pkg/logger"
)

// NewErrorHandler error handler de nivel de app. Aquí vive la única reacción al
// 401 del API remoto: limpiar AMBOS campos de la sesión (van juntos en la
// cookie) y redirigir a /login, sin importar qué llamada lo disparó. Los
// handlers solo propagan domain.ErrSessionExpired; nunca navegan por su cuenta.
func NewErrorHandler(sessions *SessionManager, log *logger.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		if errors.Is(err, domain.ErrSessionExpired) {
			log.Warn().Str("path", c.Path()).Msg("401 del API, cerrando sesión")
			sessions.Clear(c)
			if wantsJSON(c) {
				return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
					Code: "SESSION_EXPIRED", Message: "session expired, log in again",
				})
			}
			return c.Redirect("/login", fiber.StatusSeeOther)
		}

		code := fiber.StatusInternalServerError
		var fe *fiber.Error
		if errors.As(err, &fe) {
			code = fe.Code
		} else {
			log.Error().Err(err).Str("path", c.Path()).Msg("error no manejado")
		}

		if wantsJSON(c) {
			return c.Status(code).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
		}
		return renderStatus(c, code, "error", errorView{Status: code})
	}
}

// wantsJSON distingue las llamadas fetch de las navegaciones de página.
func wantsJSON(c *fiber.Ctx) bool {
	return strings.Contains(c.Get(fiber.HeaderAccept), fiber.MIMEApplicationJSON)
}

type errorView struct {
	Status int
}
