package web

import (
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/gofiber/fiber/v2"

	"github.com/tu-usuario/salesify-dashboard/internal/application/upload"
	"github.com/tu-usuario/salesify-dashboard/internal/domain"
	"github.com/tu-usuario/salesify-dashboard/internal/domain/entity"
)

// UploadHandler flujo de subida + mapeo de columnas del empleado. El gateway no
// guarda el flujo entre peticiones: el payload de mapeo viaja serializado en un
// campo oculto del formulario y la máquina de estados se reconstruye en cada
// POST.
type UploadHandler struct {
	workflow *upload.Workflow
}

// NewUploadHandler construye el handler de upload.
func NewUploadHandler(workflow *upload.Workflow) *UploadHandler {
	return &UploadHandler{workflow: workflow}
}

type uploadView struct {
	Preview      []string
	PreviewError string
	FileName     string
	Error        string
}

// mappingView estado que la plantilla de mapeo necesita: la solicitud del
// servidor, las selecciones acumuladas y el payload para la ida y vuelta.
type mappingView struct {
	Request  *entity.MappingRequest
	Required map[string]string
	Optional map[string]string
	Payload  string
	Error    string
}

type reportView struct {
	Report *entity.CleaningReport
	Charts []string
}

// UploadPage GET /upload.
func (h *UploadHandler) UploadPage(c *fiber.Ctx) error {
	return render(c, "upload", uploadView{})
}

// Preview POST /upload/preview: parsea localmente la fila de encabezados del
// archivo elegido y re-renderiza la página con el adelanto. Un fallo de
// preview no es fatal; la subida sigue disponible y el servidor decide.
func (h *UploadHandler) Preview(c *fiber.Ctx) error {
	filename, content, err := formFile(c)
	if err != nil {
		return renderStatus(c, fiber.StatusBadRequest, "upload", uploadView{Error: "Please select a CSV file."})
	}

	columns, err := upload.PreviewColumns(filename, content)
	if err != nil {
		view := uploadView{FileName: filename}
		if errors.Is(err, upload.ErrPreviewUnsupported) {
			view.PreviewError = "Preview is only available for .csv and .xlsx files."
		} else {
			view.PreviewError = "Could not read the file header."
		}
		return render(c, "upload", view)
	}
	return render(c, "upload", uploadView{FileName: filename, Preview: columns})
}

// Upload POST /upload: corre el flujo hasta Uploaded o MappingPending y
// renderiza el reporte o el formulario de mapeo según la fase resultante.
func (h *UploadHandler) Upload(c *fiber.Ctx) error {
	session := GetSession(c)

	filename, content, err := formFile(c)
	if err != nil {
		return renderStatus(c, fiber.StatusBadRequest, "upload", uploadView{Error: "Please select a CSV file."})
	}

	flow, err := h.workflow.Upload(c.Context(), session.Token, filename, content)
	if err != nil {
		if errors.Is(err, domain.ErrSessionExpired) {
			return err
		}
		return render(c, "upload", uploadView{FileName: filename, Error: displayError(err, "Upload failed.")})
	}

	switch flow.Phase() {
	case upload.PhaseUploaded:
		return h.renderReport(c, session, flow.Report())
	case upload.PhaseMappingPending:
		return h.renderMapping(c, flow, "")
	default:
		return fmt.Errorf("upload: fase inesperada %s tras subir", flow.Phase())
	}
}

// MapColumns POST /upload/map-columns: reconstruye la máquina en
// MappingPending desde el payload del formulario, aplica las selecciones y
// envía. El fallo re-renderiza el mapeo con las selecciones retenidas.
func (h *UploadHandler) MapColumns(c *fiber.Ctx) error {
	session := GetSession(c)

	request, err := decodeMappingPayload(c.FormValue("mapping_payload"))
	if err != nil {
		return renderStatus(c, fiber.StatusBadRequest, "upload", uploadView{Error: "The mapping form expired. Upload the file again."})
	}

	flow := upload.ResumeMapping(request)
	for _, col := range request.RequiredColumns {
		if err := flow.SetRequired(col, c.FormValue("required_"+col)); err != nil {
			return h.renderMapping(c, flow, "Invalid column selection.")
		}
	}
	for _, col := range request.OptionalColumns {
		if err := flow.SetOptional(col, c.FormValue("optional_"+col)); err != nil {
			return h.renderMapping(c, flow, "Invalid column selection.")
		}
	}

	if err := h.workflow.Submit(c.Context(), session.Token, flow); err != nil {
		if errors.Is(err, domain.ErrSessionExpired) {
			return err
		}
		if errors.Is(err, domain.ErrInvalidInput) {
			return h.renderMapping(c, flow, "Assign a detected column to every required column.")
		}
		return h.renderMapping(c, flow, displayError(err, "Mapping failed."))
	}

	return h.renderReport(c, session, flow.Report())
}

// renderReport éxito terminal: muestra el reporte y refresca la lista de
// gráficos disponibles (el hook de finalización del flujo).
func (h *UploadHandler) renderReport(c *fiber.Ctx, session entity.Session, report *entity.CleaningReport) error {
	charts, err := h.workflow.Charts(c.Context(), session.Token)
	if err != nil {
		if errors.Is(err, domain.ErrSessionExpired) {
			return err
		}
		// El reporte es lo importante; la lista de gráficos es best-effort aquí.
		charts = nil
	}
	return render(c, "report", reportView{Report: report, Charts: charts})
}

func (h *UploadHandler) renderMapping(c *fiber.Ctx, flow *upload.Flow, errMsg string) error {
	request := flow.Request()
	required := make(map[string]string, len(request.RequiredColumns))
	for _, col := range request.RequiredColumns {
		required[col] = flow.RequiredSelection(col)
	}
	optional := make(map[string]string, len(request.OptionalColumns))
	for _, col := range request.OptionalColumns {
		optional[col] = flow.OptionalSelection(col)
	}

	payload, err := encodeMappingPayload(request)
	if err != nil {
		return err
	}
	status := fiber.StatusOK
	if errMsg != "" {
		status = fiber.StatusBadRequest
	}
	return renderStatus(c, status, "mapping", mappingView{
		Request:  request,
		Required: required,
		Optional: optional,
		Payload:  payload,
		Error:    errMsg,
	})
}

// formFile lee el archivo del campo multipart "file".
func formFile(c *fiber.Ctx) (string, []byte, error) {
	fh, err := c.FormFile("file")
	if err != nil {
		return "", nil, err
	}
	f, err := fh.Open()
	if err != nil {
		return "", nil, err
	}
	defer f.Close()
	content, err := io.ReadAll(f)
	if err != nil {
		return "", nil, err
	}
	return fh.Filename, content, nil
}

// encodeMappingPayload serializa la solicitud de mapeo para el campo oculto.
func encodeMappingPayload(req *entity.MappingRequest) (string, error) {
	raw, err := json.Marshal(req)
	if err != nil {
		return "", fmt.Errorf("serializar payload de mapeo: %w", err)
	}
	return base64.URLEncoding.EncodeToString(raw), nil
}

func decodeMappingPayload(payload string) (*entity.MappingRequest, error) {
	if payload == "" {
		return nil, fmt.Errorf("payload de mapeo vacío")
	}
	raw, err := base64.URLEncoding.DecodeString(payload)
	if err != nil {
		return nil, fmt.Errorf("decodificar payload de mapeo: %w", err)
	}
	var req entity.MappingRequest
	if err := json.Unmarshal(raw, &req); err != nil {
		return nil, fmt.Errorf("deserializar payload de mapeo: %w", err)
	}
	return &req, nil
}
