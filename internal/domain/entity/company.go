package entity

// Estados que reporta el API para una empresa.
const (
	CompanyActive    = "Active"
	CompanySuspended = "Suspended"
)

// Company proyección de solo lectura de una empresa registrada en la plataforma.
// El dueño del dato es el API remoto; el dashboard solo pagina y filtra.
type Company struct {
	ID       int64
	Name     string
	Industry string
	Status   string // CompanyActive | CompanySuspended
	Uploads  int
}

// Pagination descriptor de página tal como lo entrega el API.
type Pagination struct {
	CurrentPage int
	TotalPages  int
	HasPrev     bool
	HasNext     bool
}

// CompanyPage una página de empresas con su descriptor.
type CompanyPage struct {
	Companies  []Company
	Pagination Pagination
}

// PlatformOverview tarjetas del dashboard de admin (/admin/home).
type PlatformOverview struct {
	TotalRegisteredCompanies   int
	TotalActiveCompanies       int
	TotalSuspendedCompanies    int
	TotalUsersInSystem         int
	TotalFilesUploaded         int
	TotalCleanedFilesGenerated int
	TotalRowsStored            int
}

// CompanyOverview tarjetas del dashboard de manager (/company/dashboard).
type CompanyOverview struct {
	CompanyName        string
	TotalEmployees     int
	TotalFilesUploaded int
	TotalCleanedFiles  int
	TotalRowsStored    int
}
