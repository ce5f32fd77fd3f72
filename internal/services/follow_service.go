package services

import (
	"errors"

	"github.com/arodena/focusfeed/internal/models"
)

var (
	ErrSelfFollow         = errors.New("cannot follow yourself")
	ErrAlreadyFollowing   = errors.New("already following")
	ErrFollowNotFound     = errors.New("follow not found")
	ErrFollowNotPending   = errors.New("follow request not pending")
	ErrFollowNotAddressee = errors.New("follow request addressed to another user")
)

type FollowRepository interface {
	Find(followerID uint, followeeID uint) (models.Follow, bool, error)
	Create(follow *models.Follow) error
	Save(follow *models.Follow) error
	Delete(followerID uint, followeeID uint) (bool, error)
	ListAcceptedFolloweeIDs(followerID uint) ([]uint, error)
	ListFollowers(followeeID uint) ([]models.Follow, error)
	ListFollowing(followerID uint) ([]models.Follow, error)
	ListPendingRequests(followeeID uint) ([]models.Follow, error)
}

type FollowService struct {
	follows FollowRepository
}

func NewFollowService(follows FollowRepository) *FollowService {
	return &FollowService{follows: follows}
}

// Request creates a follow edge. Followees with approval required get a
// pending request; everyone else is followed immediately.
func (service *FollowService) Request(follower *models.User, followee *models.User) (models.Follow, error) {
	if follower.ID == followee.ID {
		return models.Follow{}, ErrSelfFollow
	}

	if existing, found, err := service.follows.Find(follower.ID, followee.ID); err != nil {
		return models.Follow{}, err
	} else if found {
		if existing.Status == models.FollowStatusAccepted {
			return models.Follow{}, ErrAlreadyFollowing
		}
		// A repeated request while pending is a no-op.
		return existing, nil
	}

	status := models.FollowStatusAccepted
	if followee.RequireFollowApproval {
		status = models.FollowStatusPending
	}
	follow := models.Follow{
		FollowerID: follower.ID,
		FolloweeID: followee.ID,
		Status:     status,
	}
	if err := service.follows.Create(&follow); err != nil {
		return models.Follow{}, err
	}
	return follow, nil
}

// Accept lets the followee approve a pending request.
func (service *FollowService) Accept(followee *models.User, followerID uint) (models.Follow, error) {
	follow, found, err := service.follows.Find(followerID, followee.ID)
	if err != nil {
		return models.Follow{}, err
	}
	if !found {
		return models.Follow{}, ErrFollowNotFound
	}
	if follow.FolloweeID != followee.ID {
		return models.Follow{}, ErrFollowNotAddressee
	}
	if follow.Status != models.FollowStatusPending {
		return models.Follow{}, ErrFollowNotPending
	}

	follow.Status = models.FollowStatusAccepted
	if err := service.follows.Save(&follow); err != nil {
		return models.Follow{}, err
	}
	return follow, nil
}

// Decline removes a pending request addressed to the followee.
func (service *FollowService) Decline(followee *models.User, followerID uint) error {
	follow, found, err := service.follows.Find(followerID, followee.ID)
	if err != nil {
		return err
	}
	if !found {
		return ErrFollowNotFound
	}
	if follow.Status != models.FollowStatusPending {
		return ErrFollowNotPending
	}

	removed, err := service.follows.Delete(followerID, followee.ID)
	if err != nil {
		return err
	}
	if !removed {
		return ErrFollowNotFound
	}
	return nil
}

// Unfollow removes any follow edge from follower to followee.
func (service *FollowService) Unfollow(follower *models.User, followeeID uint) error {
	removed, err := service.follows.Delete(follower.ID, followeeID)
	if err != nil {
		return err
	}
	if !removed {
		return ErrFollowNotFound
	}
	return nil
}

// IsAcceptedFollower reports whether follower has an accepted edge to owner.
func (service *FollowService) IsAcceptedFollower(followerID uint, ownerID uint) (bool, error) {
	follow, found, err := service.follows.Find(followerID, ownerID)
	if err != nil {
		return false, err
	}
	return found && follow.Status == models.FollowStatusAccepted, nil
}

func (service *FollowService) FeedAuthorIDs(follower *models.User) ([]uint, error) {
	ids, err := service.follows.ListAcceptedFolloweeIDs(follower.ID)
	if err != nil {
		return nil, err
	}
	// One's own sessions belong in the feed too.
	return append(ids, follower.ID), nil
}
