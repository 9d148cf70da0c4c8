package entity

// AuditLog evento de plataforma, solo lectura (últimos 15).
type AuditLog struct {
	CreatedAt string
	EventType string // login_success, login_failed, ...
	Message   string
}
