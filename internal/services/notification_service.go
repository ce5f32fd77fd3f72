package services

import "github.com/arodena/focusfeed/internal/models"

type NotificationWriter interface {
	Create(notification *models.Notification) error
}

// NotificationService fans engagement events out to the affected user.
// Self-engagement (liking your own session) is silently skipped.
type NotificationService struct {
	notifications NotificationWriter
}

func NewNotificationService(notifications NotificationWriter) *NotificationService {
	return &NotificationService{notifications: notifications}
}

func (service *NotificationService) NotifyLike(sessionOwnerID uint, actorID uint, sessionID uint) error {
	return service.notify(sessionOwnerID, actorID, models.NotificationKindLike, &sessionID)
}

func (service *NotificationService) NotifyComment(sessionOwnerID uint, actorID uint, sessionID uint) error {
	return service.notify(sessionOwnerID, actorID, models.NotificationKindComment, &sessionID)
}

func (service *NotificationService) NotifyFollowRequest(followeeID uint, followerID uint) error {
	return service.notify(followeeID, followerID, models.NotificationKindFollowRequest, nil)
}

func (service *NotificationService) NotifyFollowAccepted(followerID uint, followeeID uint) error {
	return service.notify(followerID, followeeID, models.NotificationKindFollowAccepted, nil)
}

func (service *NotificationService) notify(userID uint, actorID uint, kind string, sessionID *uint) error {
	if userID == actorID {
		return nil
	}
	notification := models.Notification{
		UserID:    userID,
		ActorID:   actorID,
		Kind:      kind,
		SessionID: sessionID,
	}
	return service.notifications.Create(&notification)
}
