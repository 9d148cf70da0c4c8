package upload

import (
	"context"

	"github.com/tu-usuario/salesify-dashboard/internal/domain/repository"
)

// Workflow orquesta la máquina de estados contra el API de employee. Dentro de
// un flujo cada llamada de red se emite solo después de observar la respuesta
// de la anterior; no hay fan-out ni reintentos.
type Workflow struct {
	api repository.EmployeeAPI
}

// NewWorkflow construye el workflow de subida.
func NewWorkflow(api repository.EmployeeAPI) *Workflow {
	return &Workflow{api: api}
}

// Upload corre Idle → FileSelected → (Uploaded | MappingPending) con el archivo
// recibido y devuelve el flujo resultante para que la vista lo renderice.
func (w *Workflow) Upload(ctx context.Context, token, filename string, content []byte) (*Flow, error) {
	f := NewFlow()
	if err := f.SelectFile(filename); err != nil {
		return nil, err
	}
	res, err := w.api.UploadFile(ctx, token, filename, content)
	if err != nil {
		return nil, err
	}
	if err := f.ApplyUploadResult(res); err != nil {
		return nil, err
	}
	return f, nil
}

// Submit valida el mapeo acumulado y lo envía. El error (validación local o
// rechazo del servidor) deja el flujo en MappingPending con las selecciones
// retenidas; el éxito lo lleva al estado terminal con reporte.
func (w *Workflow) Submit(ctx context.Context, token string, f *Flow) error {
	sub, err := f.Submission()
	if err != nil {
		return err
	}
	report, err := w.api.MapColumns(ctx, token, sub)
	return f.ApplySubmitResult(report, err)
}

// Charts lista los gráficos disponibles para los datos subidos del empleado.
// Las vistas lo consultan tras cada éxito terminal del flujo (hook de refresco).
func (w *Workflow) Charts(ctx context.Context, token string) ([]string, error) {
	return w.api.AvailableCharts(ctx, token)
}
