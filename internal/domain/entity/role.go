package entity

import (
	"strings"

	"golang.org/x/text/cases"
)

// Role rol normalizado de la sesión. El backend devuelve strings libres
// ("Company Manager", "ADMIN", ...); aquí se cierran a una enumeración.
type Role string

// Roles válidos del dashboard.
const (
	RoleAdmin    Role = "admin"
	RoleManager  Role = "manager"
	RoleEmployee Role = "employee"
)

// roleTable mapeo total de rol crudo (case-folded) a rol normalizado.
// "company manager" es el alias histórico del backend para manager.
var roleTable = map[string]Role{
	"admin":           RoleAdmin,
	"manager":         RoleManager,
	"company manager": RoleManager,
	"employee":        RoleEmployee,
}

// NormalizeRole convierte el rol crudo del backend al rol cerrado del dashboard.
// Usa case folding Unicode, no solo ASCII lower. Un rol fuera de la tabla se
// rechaza (ok=false): el login falla en vez de guardar un rol que ningún guard
// reconocería.
func NormalizeRole(raw string) (Role, bool) {
	folded := cases.Fold().String(strings.TrimSpace(raw))
	role, ok := roleTable[folded]
	return role, ok
}

// Valid reporta si el rol pertenece a la enumeración cerrada.
func (r Role) Valid() bool {
	return r == RoleAdmin || r == RoleManager || r == RoleEmployee
}
