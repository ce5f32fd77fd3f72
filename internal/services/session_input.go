package services

import (
	"errors"
	"strings"
	"time"

	"github.com/arodena/focusfeed/internal/models"
)

var (
	ErrSessionDurationInvalid = errors.New("session duration invalid")
	ErrSessionTaskInvalid     = errors.New("session task invalid")
	ErrSessionNotesTooLong    = errors.New("session notes too long")
	ErrSessionInFuture        = errors.New("session starts in the future")
)

// SessionInput is a logged pomodoro before persistence.
type SessionInput struct {
	StartedAt       time.Time
	DurationMinutes int
	Task            string
	Notes           string
}

// ValidateSessionInput normalizes and checks a session log against now.
// A small clock-skew allowance keeps client-stamped "just finished"
// sessions from being rejected.
func ValidateSessionInput(input SessionInput, now time.Time) (SessionInput, error) {
	if input.DurationMinutes < models.MinSessionMinutes || input.DurationMinutes > models.MaxSessionMinutes {
		return SessionInput{}, ErrSessionDurationInvalid
	}

	task := strings.TrimSpace(input.Task)
	if task == "" || len([]rune(task)) > models.MaxTaskLength {
		return SessionInput{}, ErrSessionTaskInvalid
	}

	notes := strings.TrimSpace(input.Notes)
	if len([]rune(notes)) > models.MaxNotesLength {
		return SessionInput{}, ErrSessionNotesTooLong
	}

	if input.StartedAt.After(now.Add(5 * time.Minute)) {
		return SessionInput{}, ErrSessionInFuture
	}

	input.Task = task
	input.Notes = notes
	return input, nil
}
