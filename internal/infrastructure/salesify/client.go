package salesify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/tu-usuario/salesify-dashboard/internal/domain"
	"github.com/tu-usuario/salesify-dashboard/internal/domain/repository"
)

// Verificar en tiempo de compilación que Client implementa todos los puertos.
var (
	_ repository.AuthAPI     = (*Client)(nil)
	_ repository.AdminAPI    = (*Client)(nil)
	_ repository.CompanyAPI  = (*Client)(nil)
	_ repository.EmployeeAPI = (*Client)(nil)
)

// Client cliente HTTP del API remoto de Salesify. Usa net/http de la librería
// estándar; no requiere un cliente de terceros. Política transversal:
//
//   - Toda petición con token lleva "Authorization: Bearer <token>".
//   - Un 401 de cualquier endpoint se reporta como domain.ErrSessionExpired; la
//     navegación (limpiar cookie, redirigir a /login) NO ocurre aquí, ocurre en
//     el error handler del gateway. El transporte queda libre de navegación.
//   - Un cuerpo {error} o {message} en respuestas no-2xx se entrega textual
//     como *domain.APIError para mostrarse al usuario.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// New construye el cliente. baseURL es el origen fijo del backend
// (ej. http://127.0.0.1:5000); timeout aplica a cada petición saliente.
func New(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
	}
}

// errorBody forma de los errores que emite el backend: a veces {error},
// a veces {message}.
type errorBody struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

// doJSON ejecuta una petición con cuerpo/respuesta JSON. body y out pueden ser nil.
func (c *Client) doJSON(ctx context.Context, method, path, token string, body, out any) error {
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("salesify: serializar request: %w", err)
		}
		reader = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("salesify: construir request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	return c.send(req, token, path, out)
}

// send aplica el bearer token, ejecuta y decodifica. Compartido entre JSON y multipart.
func (c *Client) send(req *http.Request, token, path string, out any) error {
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("salesify: %s: %w", path, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("salesify: leer respuesta de %s: %w", path, err)
	}

	if resp.StatusCode == http.StatusUnauthorized {
		return fmt.Errorf("salesify: %s: %w", path, domain.ErrSessionExpired)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var eb errorBody
		_ = json.Unmarshal(raw, &eb)
		msg := eb.Error
		if msg == "" {
			msg = eb.Message
		}
		if msg == "" {
			msg = http.StatusText(resp.StatusCode)
		}
		return &domain.APIError{Status: resp.StatusCode, Message: msg}
	}

	if out == nil || len(raw) == 0 {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("salesify: decodificar respuesta de %s: %w", path, err)
	}
	return nil
}
