package upload

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/salesify-dashboard/internal/domain"
	"github.com/tu-usuario/salesify-dashboard/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

func mappingRequest() *entity.MappingRequest {
	return &entity.MappingRequest{
		UploadedFileID:  123,
		DetectedColumns: []string{"Fecha", "Monto", "Vendedor", "Zona"},
		RequiredColumns: []string{"date", "amount"},
		OptionalColumns: []string{"region"},
		SystemOptionalMapping: map[string]string{
			"seller": "Vendedor",
		},
	}
}

func flowEnMapping(t *testing.T) *Flow {
	t.Helper()
	f := NewFlow()
	require.NoError(t, f.SelectFile("ventas.csv"))
	require.NoError(t, f.ApplyUploadResult(&entity.UploadResult{MappingRequest: mappingRequest()}))
	require.Equal(t, PhaseMappingPending, f.Phase())
	return f
}

// ──────────────────────────────────────────────────────────────────────────────
// Transiciones del flujo
// ──────────────────────────────────────────────────────────────────────────────

func TestFlow_ReporteDirecto(t *testing.T) {
	f := NewFlow()
	assert.Equal(t, PhaseIdle, f.Phase())

	require.NoError(t, f.SelectFile("ventas.csv"))
	assert.Equal(t, PhaseFileSelected, f.Phase())
	assert.Equal(t, "ventas.csv", f.FileName())

	report := &entity.CleaningReport{Message: "File processed: 120 rows cleaned"}
	require.NoError(t, f.ApplyUploadResult(&entity.UploadResult{CleaningReport: report}))

	assert.Equal(t, PhaseUploaded, f.Phase())
	assert.Equal(t, report, f.Report())
}

func TestFlow_ReelegirArchivoAntesDeSubir(t *testing.T) {
	f := NewFlow()
	require.NoError(t, f.SelectFile("v1.csv"))
	require.NoError(t, f.SelectFile("v2.csv"))
	assert.Equal(t, "v2.csv", f.FileName(), "la segunda selección reemplaza a la primera")
}

func TestFlow_SelectFileVacioRechazado(t *testing.T) {
	f := NewFlow()
	err := f.SelectFile("")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Equal(t, PhaseIdle, f.Phase())
}

func TestFlow_ResultadoVacioRechazado(t *testing.T) {
	f := NewFlow()
	require.NoError(t, f.SelectFile("ventas.csv"))
	assert.Error(t, f.ApplyUploadResult(&entity.UploadResult{}))
	assert.Error(t, f.ApplyUploadResult(nil))
}

func TestFlow_UploadedEsTerminal(t *testing.T) {
	f := NewFlow()
	require.NoError(t, f.SelectFile("ventas.csv"))
	require.NoError(t, f.ApplyUploadResult(&entity.UploadResult{
		CleaningReport: &entity.CleaningReport{Message: "ok"},
	}))

	assert.Error(t, f.SelectFile("otro.csv"), "no se elige archivo desde Uploaded")
	assert.Error(t, f.SetRequired("date", "Fecha"), "no se mapea desde Uploaded")
	_, err := f.Submission()
	assert.Error(t, err, "no hay submission desde Uploaded")
}

// ──────────────────────────────────────────────────────────────────────────────
// Mapeo de columnas
// ──────────────────────────────────────────────────────────────────────────────

func TestFlow_MapeoCompleto(t *testing.T) {
	f := flowEnMapping(t)

	require.NoError(t, f.SetRequired("date", "Fecha"))
	require.NoError(t, f.SetRequired("amount", "Monto"))
	require.NoError(t, f.SetOptional("region", "Zona"))
	assert.Empty(t, f.MissingRequired())

	sub, err := f.Submission()
	require.NoError(t, err)
	assert.Equal(t, int64(123), sub.UploadedFileID)
	assert.Equal(t, map[string]string{"date": "Fecha", "amount": "Monto"}, sub.RequiredMapping)
	assert.Equal(t, map[string]string{"region": "Zona"}, sub.OptionalMapping)
	assert.Equal(t, map[string]string{"seller": "Vendedor"}, sub.SystemOptionalMapping,
		"el mapeo automático del servidor se reenvía tal cual")
}

func TestFlow_RequeridasIncompletasBloqueanSubmission(t *testing.T) {
	f := flowEnMapping(t)
	require.NoError(t, f.SetRequired("date", "Fecha"))

	assert.Equal(t, []string{"amount"}, f.MissingRequired())

	_, err := f.Submission()
	assert.ErrorIs(t, err, domain.ErrInvalidInput,
		"submission con requeridas sin asignar debe rechazarse sin tocar la red")
}

func TestFlow_OpcionalOmitidaNoViaja(t *testing.T) {
	f := flowEnMapping(t)
	require.NoError(t, f.SetRequired("date", "Fecha"))
	require.NoError(t, f.SetRequired("amount", "Monto"))
	// region queda sin asignar (omitir)

	sub, err := f.Submission()
	require.NoError(t, err)
	assert.Empty(t, sub.OptionalMapping)
}

func TestFlow_SeleccionVaciaDesasigna(t *testing.T) {
	f := flowEnMapping(t)
	require.NoError(t, f.SetRequired("date", "Fecha"))
	require.NoError(t, f.SetRequired("date", ""))
	assert.Contains(t, f.MissingRequired(), "date")
}

func TestFlow_ColumnasDesconocidasRechazadas(t *testing.T) {
	f := flowEnMapping(t)
	assert.ErrorIs(t, f.SetRequired("inexistente", "Fecha"), domain.ErrInvalidInput)
	assert.ErrorIs(t, f.SetRequired("date", "ColumnaFantasma"), domain.ErrInvalidInput)
	assert.ErrorIs(t, f.SetOptional("date", "Fecha"), domain.ErrInvalidInput,
		"un objetivo requerido no es un objetivo opcional")
}

// ──────────────────────────────────────────────────────────────────────────────
// Resultado del envío del mapeo
// ──────────────────────────────────────────────────────────────────────────────

func TestFlow_FalloDeEnvioRetieneSelecciones(t *testing.T) {
	f := flowEnMapping(t)
	require.NoError(t, f.SetRequired("date", "Fecha"))
	require.NoError(t, f.SetRequired("amount", "Monto"))

	upstream := errors.New("backend rechazó el mapeo")
	err := f.ApplySubmitResult(nil, upstream)
	assert.ErrorIs(t, err, upstream)

	// El flujo sigue en MappingPending con todo lo seleccionado.
	assert.Equal(t, PhaseMappingPending, f.Phase())
	assert.Equal(t, "Fecha", f.RequiredSelection("date"))
	assert.Equal(t, "Monto", f.RequiredSelection("amount"))
	assert.NotNil(t, f.Request())
}

func TestFlow_EnvioExitosoTermina(t *testing.T) {
	f := flowEnMapping(t)
	require.NoError(t, f.SetRequired("date", "Fecha"))
	require.NoError(t, f.SetRequired("amount", "Monto"))

	report := &entity.CleaningReport{Message: "File processed"}
	require.NoError(t, f.ApplySubmitResult(report, nil))

	assert.Equal(t, PhaseUploaded, f.Phase())
	assert.Equal(t, report, f.Report())
	assert.Nil(t, f.Request())
}

// ──────────────────────────────────────────────────────────────────────────────
// ResumeMapping — reconstrucción desde el payload del formulario
// ──────────────────────────────────────────────────────────────────────────────

func TestResumeMapping_ArrancaEnMappingPending(t *testing.T) {
	f := ResumeMapping(mappingRequest())
	assert.Equal(t, PhaseMappingPending, f.Phase())
	require.NoError(t, f.SetRequired("date", "Fecha"))
	require.NoError(t, f.SetRequired("amount", "Monto"))
	_, err := f.Submission()
	assert.NoError(t, err)
}
