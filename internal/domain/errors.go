package domain

import (
	"errors"
	"fmt"
)

// Errores de dominio (sin dependencias externas).
var (
	// ErrSessionExpired señala un 401 del API remoto: el bearer token dejó de ser
	// válido. La reacción (limpiar cookie + redirigir a /login) vive en un único
	// handler de nivel superior; el cliente HTTP solo lo reporta.
	ErrSessionExpired = errors.New("sesión expirada o no autorizada")

	ErrUnknownRole  = errors.New("rol desconocido")
	ErrInvalidInput = errors.New("entrada inválida")
	ErrNotFound     = errors.New("recurso no encontrado")
)

// APIError error de negocio/validación reportado por el API remoto.
// Message llega del backend y se muestra textual al usuario.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("salesify api: %d: %s", e.Status, e.Message)
}

// AsAPIError devuelve el *APIError envuelto en err, si lo hay.
func AsAPIError(err error) (*APIError, bool) {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr, true
	}
	return nil, false
}
