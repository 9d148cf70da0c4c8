package entity

// Session estado de autenticación que el navegador sostiene entre peticiones:
// el bearer token del API (opaco) más el rol normalizado. No hay chequeo local
// de expiración del token; un token presente se asume válido hasta que el API
// responda 401.
type Session struct {
	Token string
	Role  Role
}

// Authenticated reporta si la sesión tiene token.
func (s Session) Authenticated() bool {
	return s.Token != ""
}
