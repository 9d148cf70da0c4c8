package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// ──────────────────────────────────────────────────────────────────────────────
// Tests NormalizeRole — tabla de normalización cerrada
// ──────────────────────────────────────────────────────────────────────────────

func TestNormalizeRole_VariantesConocidas(t *testing.T) {
	cases := []struct {
		raw  string
		want Role
	}{
		{"admin", RoleAdmin},
		{"Admin", RoleAdmin},
		{"ADMIN", RoleAdmin},
		{"manager", RoleManager},
		{"Manager", RoleManager},
		{"company manager", RoleManager},
		{"Company Manager", RoleManager},
		{"COMPANY MANAGER", RoleManager},
		{"employee", RoleEmployee},
		{"Employee", RoleEmployee},
		{"  admin  ", RoleAdmin}, // espacios alrededor no cambian el rol
	}
	for _, tc := range cases {
		got, ok := NormalizeRole(tc.raw)
		assert.True(t, ok, "el rol %q debe normalizarse", tc.raw)
		assert.Equal(t, tc.want, got, "rol crudo %q", tc.raw)
	}
}

func TestNormalizeRole_RolDesconocidoRechazado(t *testing.T) {
	for _, raw := range []string{"", "superuser", "root", "company", "manage", "employe"} {
		_, ok := NormalizeRole(raw)
		assert.False(t, ok, "el rol %q no debe normalizarse", raw)
	}
}

func TestRole_Valid(t *testing.T) {
	assert.True(t, RoleAdmin.Valid())
	assert.True(t, RoleManager.Valid())
	assert.True(t, RoleEmployee.Valid())
	assert.False(t, Role("superuser").Valid())
	assert.False(t, Role("").Valid())
}
