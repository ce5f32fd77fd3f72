package services

import (
	"errors"
	"time"

	"github.com/arodena/focusfeed/internal/models"
	"github.com/google/uuid"
)

var ErrSessionNotFound = errors.New("session not found")

const DefaultFeedSize = 50

type SessionRepository interface {
	Create(session *models.FocusSession) error
	FindByPublicID(publicID string) (models.FocusSession, bool, error)
	ListByUserRange(userID uint, from *time.Time, to *time.Time) ([]models.FocusSession, error)
	ListRecentByUser(userID uint, limit int) ([]models.FocusSession, error)
	ListRecentByUsers(userIDs []uint, limit int) ([]models.FocusSession, error)
	DeleteByIDAndUser(sessionID uint, userID uint) (bool, error)
}

type SessionService struct {
	sessions SessionRepository
}

func NewSessionService(sessions SessionRepository) *SessionService {
	return &SessionService{sessions: sessions}
}

// Log validates and persists a finished pomodoro for the user. Each session
// gets a random public ID used in share URLs so numeric row IDs never leak.
func (service *SessionService) Log(user *models.User, input SessionInput, now time.Time) (models.FocusSession, error) {
	validated, err := ValidateSessionInput(input, now)
	if err != nil {
		return models.FocusSession{}, err
	}

	session := models.FocusSession{
		PublicID:        uuid.NewString(),
		UserID:          user.ID,
		StartedAt:       validated.StartedAt,
		DurationMinutes: validated.DurationMinutes,
		Task:            validated.Task,
		Notes:           validated.Notes,
	}
	if err := service.sessions.Create(&session); err != nil {
		return models.FocusSession{}, err
	}
	return session, nil
}

func (service *SessionService) FindByPublicID(publicID string) (models.FocusSession, error) {
	session, found, err := service.sessions.FindByPublicID(publicID)
	if err != nil {
		return models.FocusSession{}, err
	}
	if !found {
		return models.FocusSession{}, ErrSessionNotFound
	}
	return session, nil
}

func (service *SessionService) ListForUser(userID uint, from *time.Time, to *time.Time) ([]models.FocusSession, error) {
	return service.sessions.ListByUserRange(userID, from, to)
}

func (service *SessionService) ListRecent(userID uint, limit int) ([]models.FocusSession, error) {
	if limit <= 0 {
		limit = DefaultFeedSize
	}
	return service.sessions.ListRecentByUser(userID, limit)
}

// Feed returns the newest sessions from the given authors.
func (service *SessionService) Feed(authorIDs []uint, limit int) ([]models.FocusSession, error) {
	if limit <= 0 {
		limit = DefaultFeedSize
	}
	return service.sessions.ListRecentByUsers(authorIDs, limit)
}

func (service *SessionService) Delete(user *models.User, sessionID uint) error {
	removed, err := service.sessions.DeleteByIDAndUser(sessionID, user.ID)
	if err != nil {
		return err
	}
	if !removed {
		return ErrSessionNotFound
	}
	return nil
}
