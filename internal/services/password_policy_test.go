package services

import (
	"errors"
	"strings"
	"testing"
)

func TestValidatePasswordStrength(t *testing.T) {
	valid := []string{"Abcdef12", "LongerPassw0rd", "xY9" + strings.Repeat("a", 10)}
	for _, password := range valid {
		if err := ValidatePasswordStrength(password); err != nil {
			t.Fatalf("expected %q to be accepted, got %v", password, err)
		}
	}

	invalid := []string{
		"Ab1",
		"alllowercase1",
		"ALLUPPERCASE1",
		"NoDigitsHere",
		"Ab1" + strings.Repeat("a", 70),
	}
	for _, password := range invalid {
		if err := ValidatePasswordStrength(password); !errors.Is(err, ErrWeakPassword) {
			t.Fatalf("expected ErrWeakPassword for %q, got %v", password, err)
		}
	}
}
