package web

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"

	"github.com/gofiber/fiber/v2"

	"github.com/tu-usuario/salesify-dashboard/internal/domain"
)

//go:embed templates/*.html
var templatesFS embed.FS

// views plantillas parseadas una sola vez al cargar el paquete. Cada archivo
// define plantillas con nombre; se renderiza por nombre.
var views = template.Must(template.New("").Funcs(template.FuncMap{
	"inc": func(n int) int { return n + 1 },
	"dec": func(n int) int { return n - 1 },
}).ParseFS(templatesFS, "templates/*.html"))

// render ejecuta la plantilla a un buffer primero: un fallo de render produce
// un 500 limpio en vez de HTML a medias.
func render(c *fiber.Ctx, name string, data any) error {
	return renderStatus(c, fiber.StatusOK, name, data)
}

func renderStatus(c *fiber.Ctx, status int, name string, data any) error {
	var buf bytes.Buffer
	if err := views.ExecuteTemplate(&buf, name, data); err != nil {
		return fmt.Errorf("render %s: %w", name, err)
	}
	c.Set(fiber.HeaderContentType, fiber.MIMETextHTMLCharsetUTF8)
	return c.Status(status).Send(buf.Bytes())
}

// displayError convierte un error de caso de uso en el texto que ve el usuario:
// mensajes del backend textuales, errores de validación local con su detalle y
// fallback genérico para fallos de transporte. ErrSessionExpired nunca llega
// aquí: los handlers lo propagan al error handler global.
func displayError(err error, fallback string) string {
	if apiErr, ok := domain.AsAPIError(err); ok && apiErr.Message != "" {
		return apiErr.Message
	}
	return fallback
}
