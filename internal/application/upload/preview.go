package upload

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"
)

// ErrPreviewUnsupported extensión sin soporte de vista previa local. La subida
// sigue siendo posible; el servidor es la autoridad sobre la detección.
var ErrPreviewUnsupported = errors.New("vista previa no disponible para este tipo de archivo")

// PreviewColumns parsea localmente la fila de encabezados del archivo elegido
// para mostrarla antes de subir: CSV con encoding/csv, XLSX con excelize.
// Es un adelanto informativo; las columnas detectadas "oficiales" las decide el
// backend al procesar la subida.
func PreviewColumns(filename string, content []byte) ([]string, error) {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".csv":
		return csvHeader(content)
	case ".xlsx":
		return xlsxHeader(content)
	default:
		return nil, fmt.Errorf("%w: %s", ErrPreviewUnsupported, filepath.Ext(filename))
	}
}

func csvHeader(content []byte) ([]string, error) {
	r := csv.NewReader(bytes.NewReader(content))
	r.FieldsPerRecord = -1
	header, err := r.Read()
	if err != nil {
		return nil, fmt.Errorf("leer encabezado CSV: %w", err)
	}
	return trimAll(header), nil
}

func xlsxHeader(content []byte) ([]string, error) {
	f, err := excelize.OpenReader(bytes.NewReader(content))
	if err != nil {
		return nil, fmt.Errorf("abrir XLSX: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("el XLSX no tiene hojas")
	}
	rows, err := f.Rows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("leer filas del XLSX: %w", err)
	}
	defer rows.Close()

	if !rows.Next() {
		return nil, fmt.Errorf("el XLSX está vacío")
	}
	header, err := rows.Columns()
	if err != nil {
		return nil, fmt.Errorf("leer encabezado del XLSX: %w", err)
	}
	return trimAll(header), nil
}

func trimAll(cells []string) []string {
	out := make([]string, 0, len(cells))
	for _, c := range cells {
		out = append(out, strings.TrimSpace(c))
	}
	return out
}
