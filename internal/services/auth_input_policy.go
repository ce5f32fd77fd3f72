package services

import (
	"errors"
	"net/mail"
	"regexp"
	"strings"
)

var (
	ErrAuthCredentialsInvalid  = errors.New("auth credentials invalid")
	ErrAuthDisplayNameInvalid  = errors.New("auth display name invalid")
	ErrAuthRecoveryCodeInvalid = errors.New("auth recovery code invalid")
)

var (
	displayNamePattern      = regexp.MustCompile(`^[a-zA-Z0-9_]{3,30}$`)
	recoveryCodeFormatRegex = regexp.MustCompile(`^FOCUS-[A-Z0-9]{4}-[A-Z0-9]{4}-[A-Z0-9]{4}$`)
)

func NormalizeAuthEmail(raw string) string {
	email := strings.ToLower(strings.TrimSpace(raw))
	if email == "" {
		return ""
	}
	if _, err := mail.ParseAddress(email); err != nil {
		return ""
	}
	return email
}

func NormalizeCredentialsInput(emailRaw string, passwordRaw string) (string, string, error) {
	email := NormalizeAuthEmail(emailRaw)
	password := strings.TrimSpace(passwordRaw)
	if email == "" || password == "" {
		return "", "", ErrAuthCredentialsInvalid
	}
	return email, password, nil
}

// ValidateDisplayName enforces the handle format used in profile URLs:
// 3-30 word characters, no spaces.
func ValidateDisplayName(raw string) (string, error) {
	name := strings.TrimSpace(raw)
	if !displayNamePattern.MatchString(name) {
		return "", ErrAuthDisplayNameInvalid
	}
	return name, nil
}

func ValidateRecoveryCodeFormat(code string) error {
	if !recoveryCodeFormatRegex.MatchString(strings.TrimSpace(code)) {
		return ErrAuthRecoveryCodeInvalid
	}
	return nil
}
