package main

import (
	"strings"
	"testing"

	"cascosjhc/ledger/internal/config"
)

func TestValidateSecurityConfig(t *testing.T) {
	good := config.Config{
		AuthSecret:    strings.Repeat("s", 32),
		OwnerPassword: "Cascos2026*",
	}
	if err := validateSecurityConfig(good); err != nil {
		t.Fatalf("expected valid config to pass, got %v", err)
	}

	short := good
	short.AuthSecret = "too-short"
	if err := validateSecurityConfig(short); err == nil {
		t.Fatalf("expected short auth secret to be rejected")
	}

	noPassword := good
	noPassword.OwnerPassword = ""
	if err := validateSecurityConfig(noPassword); err == nil {
		t.Fatalf("expected empty owner password to be rejected")
	}
}
