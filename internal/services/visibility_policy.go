package services

import "github.com/arodena/focusfeed/internal/models"

func IsAdminUser(user *models.User) bool {
	return user != nil && user.Role == models.RoleAdmin
}

// CanViewSessions decides whether viewer may read owner's session history.
// Owners always see themselves, admins see everyone, and a protected
// profile (require_follow_approval) is limited to accepted followers.
func CanViewSessions(viewer *models.User, owner *models.User, acceptedFollower bool) bool {
	if viewer == nil || owner == nil {
		return false
	}
	if viewer.ID == owner.ID || IsAdminUser(viewer) {
		return true
	}
	if !owner.RequireFollowApproval {
		return true
	}
	return acceptedFollower
}

// CanDeleteComment allows the comment author, the session owner, and admins.
func CanDeleteComment(actor *models.User, comment *models.Comment, sessionOwnerID uint) bool {
	if actor == nil || comment == nil {
		return false
	}
	if IsAdminUser(actor) {
		return true
	}
	return actor.ID == comment.UserID || actor.ID == sessionOwnerID
}
