// Package auth decides the role for a submitted credential. The gate is a
// pure check: credential in, role out. Sessions and tokens live elsewhere.
package auth

import (
	"crypto/subtle"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"cascosjhc/ledger/internal/domain"
)

const (
	PathEmployee = "employee"
	PathOwner    = "owner_attempt"
)

var (
	// ErrWrongPassword carries the user-facing denial message.
	ErrWrongPassword = errors.New("contraseña incorrecta")
	ErrUnknownPath   = errors.New("unknown access path")
)

type Gate struct {
	ownerSecret string
}

func NewGate(ownerSecret string) *Gate {
	return &Gate{ownerSecret: strings.TrimSpace(ownerSecret)}
}

// Authenticate maps an access path and credential to a role. The employee
// path always succeeds; the owner path requires the credential to match the
// configured owner secret. A denial mutates nothing: there is no lockout and
// no attempt counter at this layer.
func (g *Gate) Authenticate(path string, credential string) (domain.Role, error) {
	switch path {
	case PathEmployee:
		return domain.RoleEmployee, nil
	case PathOwner:
		if !g.verify(credential) {
			return "", ErrWrongPassword
		}
		return domain.RoleOwner, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownPath, path)
	}
}

// verify supports both a bcrypt-hashed owner secret and the legacy plain
// fixed string. Plain secrets are compared in constant time; storing a hash
// instead is the recommended deployment.
func (g *Gate) verify(credential string) bool {
	if g.ownerSecret == "" {
		return false
	}
	if isSecretHash(g.ownerSecret) {
		return bcrypt.CompareHashAndPassword([]byte(g.ownerSecret), []byte(credential)) == nil
	}
	return subtle.ConstantTimeCompare([]byte(g.ownerSecret), []byte(credential)) == 1
}

func isSecretHash(value string) bool {
	return strings.HasPrefix(value, "$2a$") || strings.HasPrefix(value, "$2b$") || strings.HasPrefix(value, "$2y$")
}
