package entity

// MappingRequiredMessage valor exacto de message con el que el API señala que el
// archivo subido necesita mapeo manual de columnas.
const MappingRequiredMessage = "Column mapping required"

// CleaningReport resumen opaco de la limpieza aplicada a un archivo subido.
// No se interpreta más allá del mensaje.
type CleaningReport struct {
	Message string
}

// MappingRequest payload con el que el API pide mapeo de columnas: columnas
// detectadas en el archivo, objetivos requeridos/opcionales y los mapeos que el
// sistema resolvió solo (se muestran de solo lectura).
type MappingRequest struct {
	UploadedFileID        int64
	DetectedColumns       []string
	RequiredColumns       []string
	OptionalColumns       []string
	SystemOptionalMapping map[string]string
}

// MappingSubmission cuerpo de POST /employee/map-columns.
type MappingSubmission struct {
	UploadedFileID        int64
	RequiredMapping       map[string]string
	OptionalMapping       map[string]string
	SystemOptionalMapping map[string]string
}

// UploadResult resultado de POST /employee/upload. Exactamente uno de los dos
// campos viene poblado: reporte directo (éxito terminal) o solicitud de mapeo.
type UploadResult struct {
	CleaningReport *CleaningReport
	MappingRequest *MappingRequest
}
