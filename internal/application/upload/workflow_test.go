package upload

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/salesify-dashboard/internal/domain/entity"
)

// fakeEmployeeAPI implementación de repository.EmployeeAPI controlada por el test.
type fakeEmployeeAPI struct {
	uploadResult *entity.UploadResult
	uploadErr    error
	mapReport    *entity.CleaningReport
	mapErr       error
	charts       []string

	uploadCalls int
	mapCalls    int
	lastSub     entity.MappingSubmission
	lastToken   string
}

func (f *fakeEmployeeAPI) UploadFile(_ context.Context, token, _ string, _ []byte) (*entity.UploadResult, error) {
	f.uploadCalls++
	f.lastToken = token
	return f.uploadResult, f.uploadErr
}

func (f *fakeEmployeeAPI) MapColumns(_ context.Context, token string, sub entity.MappingSubmission) (*entity.CleaningReport, error) {
	f.mapCalls++
	f.lastToken = token
	f.lastSub = sub
	return f.mapReport, f.mapErr
}

func (f *fakeEmployeeAPI) AvailableCharts(_ context.Context, _ string) ([]string, error) {
	return f.charts, nil
}

func TestWorkflow_UploadConReporteDirecto(t *testing.T) {
	api := &fakeEmployeeAPI{
		uploadResult: &entity.UploadResult{CleaningReport: &entity.CleaningReport{Message: "ok"}},
	}
	w := NewWorkflow(api)

	f, err := w.Upload(context.Background(), "tok", "ventas.csv", []byte("a,b\n"))
	require.NoError(t, err)
	assert.Equal(t, PhaseUploaded, f.Phase())
	assert.Equal(t, 1, api.uploadCalls)
	assert.Equal(t, "tok", api.lastToken)
}

func TestWorkflow_UploadQuePideMapeo(t *testing.T) {
	api := &fakeEmployeeAPI{
		uploadResult: &entity.UploadResult{MappingRequest: mappingRequest()},
	}
	w := NewWorkflow(api)

	f, err := w.Upload(context.Background(), "tok", "ventas.csv", []byte("a,b\n"))
	require.NoError(t, err)
	assert.Equal(t, PhaseMappingPending, f.Phase())
}

func TestWorkflow_SubmitIncompletoNoLlamaAlAPI(t *testing.T) {
	api := &fakeEmployeeAPI{}
	w := NewWorkflow(api)
	f := ResumeMapping(mappingRequest())
	// date y amount sin asignar

	err := w.Submit(context.Background(), "tok", f)
	assert.Error(t, err)
	assert.Zero(t, api.mapCalls, "la validación local corta antes de la red")
	assert.Equal(t, PhaseMappingPending, f.Phase())
}

func TestWorkflow_SubmitExitoso(t *testing.T) {
	api := &fakeEmployeeAPI{mapReport: &entity.CleaningReport{Message: "done"}}
	w := NewWorkflow(api)
	f := ResumeMapping(mappingRequest())
	require.NoError(t, f.SetRequired("date", "Fecha"))
	require.NoError(t, f.SetRequired("amount", "Monto"))

	require.NoError(t, w.Submit(context.Background(), "tok", f))
	assert.Equal(t, PhaseUploaded, f.Phase())
	assert.Equal(t, 1, api.mapCalls)
	assert.Equal(t, int64(123), api.lastSub.UploadedFileID)
}

func TestWorkflow_SubmitRechazadoRetieneElFlujo(t *testing.T) {
	api := &fakeEmployeeAPI{mapErr: errors.New("mapeo inválido")}
	w := NewWorkflow(api)
	f := ResumeMapping(mappingRequest())
	require.NoError(t, f.SetRequired("date", "Fecha"))
	require.NoError(t, f.SetRequired("amount", "Monto"))

	err := w.Submit(context.Background(), "tok", f)
	assert.Error(t, err)
	assert.Equal(t, PhaseMappingPending, f.Phase())
	assert.Equal(t, "Fecha", f.RequiredSelection("date"), "las selecciones sobreviven al rechazo")
}
