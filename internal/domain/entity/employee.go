package entity

// Employee empleado dentro del alcance de la empresa del manager.
// CreatedAt se conserva como lo entrega el API (se muestra textual).
type Employee struct {
	ID        int64
	Username  string
	Email     string
	CreatedAt string
}
