package auth

import (
	"errors"
	"testing"

	"golang.org/x/crypto/bcrypt"

	"cascosjhc/ledger/internal/domain"
)

func TestEmployeePathAlwaysSucceeds(t *testing.T) {
	gate := NewGate("Cascos2026*")

	role, err := gate.Authenticate(PathEmployee, "")
	if err != nil {
		t.Fatalf("employee path must not fail: %v", err)
	}
	if role != domain.RoleEmployee {
		t.Fatalf("expected employee role, got %s", role)
	}
}

func TestOwnerPathWithCorrectSecret(t *testing.T) {
	gate := NewGate("Cascos2026*")

	role, err := gate.Authenticate(PathOwner, "Cascos2026*")
	if err != nil {
		t.Fatalf("expected owner login to succeed: %v", err)
	}
	if role != domain.RoleOwner {
		t.Fatalf("expected owner role, got %s", role)
	}
}

func TestOwnerPathDeniesWrongSecret(t *testing.T) {
	gate := NewGate("Cascos2026*")

	for _, attempt := range []string{"", "cascos2026*", "Cascos2026", "Cascos2026**"} {
		role, err := gate.Authenticate(PathOwner, attempt)
		if !errors.Is(err, ErrWrongPassword) {
			t.Fatalf("attempt %q: expected ErrWrongPassword, got %v", attempt, err)
		}
		if role != "" {
			t.Fatalf("attempt %q: denial must not yield a role, got %s", attempt, role)
		}
	}
}

func TestOwnerPathWithHashedSecret(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("Cascos2026*"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("bcrypt: %v", err)
	}
	gate := NewGate(string(hash))

	if _, err := gate.Authenticate(PathOwner, "Cascos2026*"); err != nil {
		t.Fatalf("expected hashed secret to verify: %v", err)
	}
	if _, err := gate.Authenticate(PathOwner, "wrong"); !errors.Is(err, ErrWrongPassword) {
		t.Fatalf("expected ErrWrongPassword for wrong credential, got %v", err)
	}
}

func TestEmptySecretDeniesOwnerPath(t *testing.T) {
	gate := NewGate("")
	if _, err := gate.Authenticate(PathOwner, ""); !errors.Is(err, ErrWrongPassword) {
		t.Fatalf("empty configured secret must deny, got %v", err)
	}
}

func TestUnknownPathRejected(t *testing.T) {
	gate := NewGate("Cascos2026*")
	if _, err := gate.Authenticate("root", "Cascos2026*"); !errors.Is(err, ErrUnknownPath) {
		t.Fatalf("expected ErrUnknownPath, got %v", err)
	}
}
