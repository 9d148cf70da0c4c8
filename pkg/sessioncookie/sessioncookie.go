package sessioncookie

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Claims incluye los claims estándar JWT más el contenido de la sesión del dashboard:
// el bearer token emitido por el API de Salesify (opaco para nosotros) y el rol ya
// normalizado. La cookie no guarda expiración propia del token del API: su vencimiento
// se descubre de forma reactiva cuando el API responde 401.
type Claims struct {
	jwt.RegisteredClaims
	APIToken string `json:"api_token"`
	Role     string `json:"role"` // "admin" | "manager" | "employee"
}

// Issue firma el contenido de la sesión como JWT HS256 para transportarlo en la cookie.
// El jti (uuid) distingue cookies emitidas en logins distintos.
func Issue(secret, issuer string, expMinutes int, apiToken, role string) (string, error) {
	if secret == "" {
		return "", fmt.Errorf("sessioncookie: secret vacío")
	}
	now := time.Now()
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.New().String(),
			Issuer:    issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(time.Duration(expMinutes) * time.Minute)),
		},
		APIToken: apiToken,
		Role:     role,
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// Parse valida la firma de la cookie y devuelve el token del API y el rol.
// Retorna error si la cookie es inválida, expirada o tiene firma incorrecta;
// el caller la trata como sesión ausente.
func Parse(secret, cookieValue string) (apiToken, role string, err error) {
	if secret == "" {
		return "", "", fmt.Errorf("sessioncookie: secret vacío")
	}
	token, err := jwt.ParseWithClaims(cookieValue, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("método de firma inesperado: %v", t.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil {
		return "", "", err
	}
	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return "", "", fmt.Errorf("claims inválidos")
	}
	return claims.APIToken, claims.Role, nil
}
