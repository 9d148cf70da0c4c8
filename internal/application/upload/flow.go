package upload

import (
	"fmt"
	"sort"

	"github.com/tu-usuario/salesify-dashboard/internal/domain"
	"github.com/tu-usuario/salesify-dashboard/internal/domain/entity"
)

// Phase fase del flujo de subida + mapeo de columnas.
type Phase string

// Fases del flujo. Uploaded es terminal (con reporte); MappingPending espera
// que el usuario asigne columnas antes de reenviar.
const (
	PhaseIdle           Phase = "idle"
	PhaseFileSelected   Phase = "file_selected"
	PhaseUploaded       Phase = "uploaded"
	PhaseMappingPending Phase = "mapping_pending"
)

// Flow máquina de estados explícita del flujo de subida, independiente de la
// capa de render para poder probarla sin HTTP. Transiciones:
//
//	Idle ──SelectFile──▶ FileSelected ──ApplyUploadResult──▶ Uploaded (reporte directo)
//	                                   └──────────────────▶ MappingPending
//	MappingPending ──ApplySubmitResult ok──▶ Uploaded
//	MappingPending ──ApplySubmitResult err─▶ MappingPending (selecciones retenidas)
type Flow struct {
	phase    Phase
	fileName string
	report   *entity.CleaningReport
	request  *entity.MappingRequest
	required map[string]string
	optional map[string]string
}

// NewFlow crea el flujo en Idle.
func NewFlow() *Flow {
	return &Flow{phase: PhaseIdle}
}

// ResumeMapping reconstruye un flujo en MappingPending a partir del payload de
// mapeo que viajó en el formulario (el gateway no guarda el flujo entre
// peticiones; el estado hace ida y vuelta por el form).
func ResumeMapping(req *entity.MappingRequest) *Flow {
	return &Flow{
		phase:    PhaseMappingPending,
		request:  req,
		required: make(map[string]string),
		optional: make(map[string]string),
	}
}

// Phase fase actual.
func (f *Flow) Phase() Phase { return f.phase }

// FileName nombre del archivo elegido (vacío en Idle).
func (f *Flow) FileName() string { return f.fileName }

// Report reporte de limpieza; no-nil solo en Uploaded.
func (f *Flow) Report() *entity.CleaningReport { return f.report }

// Request solicitud de mapeo del servidor; no-nil solo en MappingPending.
func (f *Flow) Request() *entity.MappingRequest { return f.request }

// RequiredSelection selección actual para una columna requerida.
func (f *Flow) RequiredSelection(col string) string { return f.required[col] }

// OptionalSelection selección actual para una columna opcional ("" = omitir).
func (f *Flow) OptionalSelection(col string) string { return f.optional[col] }

// SelectFile transición Idle|FileSelected → FileSelected. Volver a elegir
// archivo antes de subir reemplaza la selección anterior.
func (f *Flow) SelectFile(name string) error {
	if f.phase != PhaseIdle && f.phase != PhaseFileSelected {
		return fmt.Errorf("upload: no se puede elegir archivo en fase %s", f.phase)
	}
	if name == "" {
		return fmt.Errorf("%w: ningún archivo seleccionado", domain.ErrInvalidInput)
	}
	f.fileName = name
	f.phase = PhaseFileSelected
	return nil
}

// ApplyUploadResult consume la respuesta de /employee/upload: reporte directo
// (terminal) o solicitud de mapeo.
func (f *Flow) ApplyUploadResult(res *entity.UploadResult) error {
	if f.phase != PhaseFileSelected {
		return fmt.Errorf("upload: resultado de subida en fase %s", f.phase)
	}
	switch {
	case res != nil && res.CleaningReport != nil:
		f.report = res.CleaningReport
		f.phase = PhaseUploaded
		return nil
	case res != nil && res.MappingRequest != nil:
		f.request = res.MappingRequest
		f.required = make(map[string]string)
		f.optional = make(map[string]string)
		f.phase = PhaseMappingPending
		return nil
	default:
		return fmt.Errorf("upload: resultado de subida vacío")
	}
}

// SetRequired asigna una columna detectada a un objetivo requerido.
func (f *Flow) SetRequired(target, detected string) error {
	if err := f.checkMapping(target, detected, f.request.RequiredColumns); err != nil {
		return err
	}
	if detected == "" {
		delete(f.required, target)
		return nil
	}
	f.required[target] = detected
	return nil
}

// SetOptional asigna una columna detectada a un objetivo opcional; detected
// vacío significa omitir la columna.
func (f *Flow) SetOptional(target, detected string) error {
	if err := f.checkMapping(target, detected, f.request.OptionalColumns); err != nil {
		return err
	}
	if detected == "" {
		delete(f.optional, target)
		return nil
	}
	f.optional[target] = detected
	return nil
}

func (f *Flow) checkMapping(target, detected string, targets []string) error {
	if f.phase != PhaseMappingPending {
		return fmt.Errorf("upload: asignación de columnas en fase %s", f.phase)
	}
	if !contains(targets, target) {
		return fmt.Errorf("%w: columna objetivo %q desconocida", domain.ErrInvalidInput, target)
	}
	if detected != "" && !contains(f.request.DetectedColumns, detected) {
		return fmt.Errorf("%w: columna detectada %q desconocida", domain.ErrInvalidInput, detected)
	}
	return nil
}

// MissingRequired columnas requeridas sin selección, en orden estable.
func (f *Flow) MissingRequired() []string {
	if f.phase != PhaseMappingPending {
		return nil
	}
	var missing []string
	for _, col := range f.request.RequiredColumns {
		if f.required[col] == "" {
			missing = append(missing, col)
		}
	}
	sort.Strings(missing)
	return missing
}

// Submission valida y arma el cuerpo de /employee/map-columns. Cada columna
// requerida debe tener selección; las opcionales sin selección se omiten.
func (f *Flow) Submission() (entity.MappingSubmission, error) {
	if f.phase != PhaseMappingPending {
		return entity.MappingSubmission{}, fmt.Errorf("upload: submission en fase %s", f.phase)
	}
	if missing := f.MissingRequired(); len(missing) > 0 {
		return entity.MappingSubmission{}, fmt.Errorf("%w: faltan columnas requeridas por asignar: %v", domain.ErrInvalidInput, missing)
	}
	required := make(map[string]string, len(f.required))
	for k, v := range f.required {
		required[k] = v
	}
	optional := make(map[string]string, len(f.optional))
	for k, v := range f.optional {
		optional[k] = v
	}
	return entity.MappingSubmission{
		UploadedFileID:        f.request.UploadedFileID,
		RequiredMapping:       required,
		OptionalMapping:       optional,
		SystemOptionalMapping: f.request.SystemOptionalMapping,
	}, nil
}

// ApplySubmitResult consume el resultado de /employee/map-columns. En fallo el
// flujo permanece en MappingPending con las selecciones retenidas para
// reintentar; en éxito pasa al estado terminal con reporte.
func (f *Flow) ApplySubmitResult(report *entity.CleaningReport, err error) error {
	if f.phase != PhaseMappingPending {
		return fmt.Errorf("upload: resultado de mapeo en fase %s", f.phase)
	}
	if err != nil {
		return err
	}
	f.report = report
	f.request = nil
	f.phase = PhaseUploaded
	return nil
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
