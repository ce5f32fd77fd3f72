package services

import (
	"errors"
	"strings"

	"github.com/arodena/focusfeed/internal/models"
)

var (
	ErrCommentBodyInvalid = errors.New("comment body invalid")
	ErrCommentNotFound    = errors.New("comment not found")
	ErrEngagementDenied   = errors.New("engagement denied")
)

type LikeStore interface {
	Exists(userID uint, sessionID uint) (bool, error)
	Create(like *models.Like) error
	Delete(userID uint, sessionID uint) (bool, error)
	CountBySession(sessionID uint) (int64, error)
}

type CommentStore interface {
	Create(comment *models.Comment) error
	FindByID(commentID uint) (models.Comment, bool, error)
	ListBySession(sessionID uint) ([]models.Comment, error)
	DeleteByID(commentID uint) error
}

type EngagementService struct {
	likes    LikeStore
	comments CommentStore
}

func NewEngagementService(likes LikeStore, comments CommentStore) *EngagementService {
	return &EngagementService{likes: likes, comments: comments}
}

// Like records a like; repeating one is a no-op rather than an error so
// double-taps stay idempotent.
func (service *EngagementService) Like(userID uint, sessionID uint) (bool, error) {
	exists, err := service.likes.Exists(userID, sessionID)
	if err != nil {
		return false, err
	}
	if exists {
		return false, nil
	}

	like := models.Like{UserID: userID, SessionID: sessionID}
	if err := service.likes.Create(&like); err != nil {
		return false, err
	}
	return true, nil
}

func (service *EngagementService) Unlike(userID uint, sessionID uint) (bool, error) {
	return service.likes.Delete(userID, sessionID)
}

func (service *EngagementService) LikeCount(sessionID uint) (int64, error) {
	return service.likes.CountBySession(sessionID)
}

func (service *EngagementService) AddComment(userID uint, sessionID uint, body string) (models.Comment, error) {
	trimmed := strings.TrimSpace(body)
	if trimmed == "" || len([]rune(trimmed)) > models.MaxCommentLength {
		return models.Comment{}, ErrCommentBodyInvalid
	}

	comment := models.Comment{
		SessionID: sessionID,
		UserID:    userID,
		Body:      trimmed,
	}
	if err := service.comments.Create(&comment); err != nil {
		return models.Comment{}, err
	}
	return comment, nil
}

func (service *EngagementService) ListComments(sessionID uint) ([]models.Comment, error) {
	return service.comments.ListBySession(sessionID)
}

// DeleteComment removes a comment when the actor is allowed to: the author,
// the session owner, or an admin.
func (service *EngagementService) DeleteComment(actor *models.User, commentID uint, sessionOwnerID uint) error {
	comment, found, err := service.comments.FindByID(commentID)
	if err != nil {
		return err
	}
	if !found {
		return ErrCommentNotFound
	}
	if !CanDeleteComment(actor, &comment, sessionOwnerID) {
		return ErrEngagementDenied
	}
	return service.comments.DeleteByID(commentID)
}
