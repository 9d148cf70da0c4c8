package salesify

import (
	"bytes"
	"context"
	"fmt"
	"mime/multipart"
	"net/http"

	"github.com/tu-usuario/salesify-dashboard/internal/domain/entity"
)

// ── Formas de cable del módulo de employee ────────────────────────────────────

type wireCleaningReport struct {
	Message string `json:"message"`
}

// uploadResponse cubre las dos formas de respuesta de /employee/upload: reporte
// directo o solicitud de mapeo, distinguidas por la forma del cuerpo.
type uploadResponse struct {
	CleaningReport        *wireCleaningReport `json:"cleaning_report"`
	Message               string              `json:"message"`
	UploadedFileID        int64               `json:"uploaded_file_id"`
	DetectedColumns       []string            `json:"detected_columns"`
	RequiredColumns       []string            `json:"required_columns"`
	OptionalColumns       []string            `json:"optional_columns"`
	SystemOptionalMapping map[string]string   `json:"system_optional_mapping"`
}

type mapColumnsRequest struct {
	UploadedFileID        int64             `json:"uploaded_file_id"`
	RequiredMapping       map[string]string `json:"required_mapping"`
	OptionalMapping       map[string]string `json:"optional_mapping"`
	SystemOptionalMapping map[string]string `json:"system_optional_mapping"`
}

type mapColumnsResponse struct {
	CleaningReport wireCleaningReport `json:"cleaning_report"`
}

type availableChartsResponse struct {
	AvailableCharts []string `json:"available_charts"`
}

// UploadFile ejecuta POST /employee/upload con el archivo como multipart.
// El resultado distingue las dos salidas posibles del backend.
func (c *Client) UploadFile(ctx context.Context, token, filename string, content []byte) (*entity.UploadResult, error) {
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	part, err := mw.CreateFormFile("file", filename)
	if err != nil {
		return nil, fmt.Errorf("salesify: preparar multipart: %w", err)
	}
	if _, err := part.Write(content); err != nil {
		return nil, fmt.Errorf("salesify: escribir archivo en multipart: %w", err)
	}
	if err := mw.Close(); err != nil {
		return nil, fmt.Errorf("salesify: cerrar multipart: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/employee/upload", &buf)
	if err != nil {
		return nil, fmt.Errorf("salesify: construir request: %w", err)
	}
	req.Header.Set("Content-Type", mw.FormDataContentType())

	var out uploadResponse
	if err := c.send(req, token, "/employee/upload", &out); err != nil {
		return nil, err
	}

	if out.CleaningReport != nil {
		return &entity.UploadResult{
			CleaningReport: &entity.CleaningReport{Message: out.CleaningReport.Message},
		}, nil
	}
	if out.Message == entity.MappingRequiredMessage {
		return &entity.UploadResult{
			MappingRequest: &entity.MappingRequest{
				UploadedFileID:        out.UploadedFileID,
				DetectedColumns:       out.DetectedColumns,
				RequiredColumns:       out.RequiredColumns,
				OptionalColumns:       out.OptionalColumns,
				SystemOptionalMapping: out.SystemOptionalMapping,
			},
		}, nil
	}
	// El backend respondió 2xx con una forma que no reconocemos; mejor un error
	// explícito que un estado vacío.
	return nil, fmt.Errorf("salesify: respuesta de upload no reconocida (message=%q)", out.Message)
}

// MapColumns ejecuta POST /employee/map-columns con el mapeo acumulado.
func (c *Client) MapColumns(ctx context.Context, token string, sub entity.MappingSubmission) (*entity.CleaningReport, error) {
	body := mapColumnsRequest{
		UploadedFileID:        sub.UploadedFileID,
		RequiredMapping:       sub.RequiredMapping,
		OptionalMapping:       sub.OptionalMapping,
		SystemOptionalMapping: sub.SystemOptionalMapping,
	}
	var out mapColumnsResponse
	if err := c.doJSON(ctx, http.MethodPost, "/employee/map-columns", token, body, &out); err != nil {
		return nil, err
	}
	return &entity.CleaningReport{Message: out.CleaningReport.Message}, nil
}

// AvailableCharts ejecuta GET /employee/available-charts.
func (c *Client) AvailableCharts(ctx context.Context, token string) ([]string, error) {
	var out availableChartsResponse
	if err := c.doJSON(ctx, http.MethodGet, "/employee/available-charts", token, nil, &out); err != nil {
		return nil, err
	}
	return out.AvailableCharts, nil
}
