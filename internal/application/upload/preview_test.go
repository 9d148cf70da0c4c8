package upload

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestPreviewColumns_CSV(t *testing.T) {
	content := []byte("Fecha, Monto ,Vendedor\n2024-01-01,100,Ana\n")
	cols, err := PreviewColumns("ventas.csv", content)
	require.NoError(t, err)
	assert.Equal(t, []string{"Fecha", "Monto", "Vendedor"}, cols, "los encabezados van sin espacios alrededor")
}

func TestPreviewColumns_CSVVacio(t *testing.T) {
	_, err := PreviewColumns("vacio.csv", nil)
	assert.Error(t, err)
}

func TestPreviewColumns_XLSX(t *testing.T) {
	f := excelize.NewFile()
	require.NoError(t, f.SetSheetRow("Sheet1", "A1", &[]any{"Fecha", "Monto", "Zona"}))
	buf, err := f.WriteToBuffer()
	require.NoError(t, err)

	cols, err := PreviewColumns("ventas.xlsx", buf.Bytes())
	require.NoError(t, err)
	assert.Equal(t, []string{"Fecha", "Monto", "Zona"}, cols)
}

func TestPreviewColumns_ExtensionNoSoportada(t *testing.T) {
	_, err := PreviewColumns("ventas.pdf", []byte("%PDF"))
	assert.ErrorIs(t, err, ErrPreviewUnsupported)

	_, err = PreviewColumns("sin_extension", []byte("a,b,c"))
	assert.ErrorIs(t, err, ErrPreviewUnsupported)
}

func TestPreviewColumns_ExtensionEnMayusculas(t *testing.T) {
	cols, err := PreviewColumns("VENTAS.CSV", []byte("a,b\n1,2\n"))
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, cols)
}
