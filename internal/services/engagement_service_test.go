package services

import (
	"errors"
	"strings"
	"testing"

	"github.com/arodena/focusfeed/internal/models"
)

type stubLikeStore struct {
	likes     map[[2]uint]bool
	existsErr error
	createErr error
}

func newStubLikeStore() *stubLikeStore {
	return &stubLikeStore{likes: make(map[[2]uint]bool)}
}

func (stub *stubLikeStore) Exists(userID uint, sessionID uint) (bool, error) {
	if stub.existsErr != nil {
		return false, stub.existsErr
	}
	return stub.likes[[2]uint{userID, sessionID}], nil
}

func (stub *stubLikeStore) Create(like *models.Like) error {
	if stub.createErr != nil {
		return stub.createErr
	}
	stub.likes[[2]uint{like.UserID, like.SessionID}] = true
	return nil
}

func (stub *stubLikeStore) Delete(userID uint, sessionID uint) (bool, error) {
	key := [2]uint{userID, sessionID}
	if !stub.likes[key] {
		return false, nil
	}
	delete(stub.likes, key)
	return true, nil
}

func (stub *stubLikeStore) CountBySession(sessionID uint) (int64, error) {
	count := int64(0)
	for key := range stub.likes {
		if key[1] == sessionID {
			count++
		}
	}
	return count, nil
}

type stubCommentStore struct {
	comments  map[uint]models.Comment
	nextID    uint
	createErr error
}

func newStubCommentStore() *stubCommentStore {
	return &stubCommentStore{comments: make(map[uint]models.Comment), nextID: 1}
}

func (stub *stubCommentStore) Create(comment *models.Comment) error {
	if stub.createErr != nil {
		return stub.createErr
	}
	comment.ID = stub.nextID
	stub.nextID++
	stub.comments[comment.ID] = *comment
	return nil
}

func (stub *stubCommentStore) FindByID(commentID uint) (models.Comment, bool, error) {
	comment, found := stub.comments[commentID]
	return comment, found, nil
}

func (stub *stubCommentStore) ListBySession(sessionID uint) ([]models.Comment, error) {
	result := make([]models.Comment, 0)
	for _, comment := range stub.comments {
		if comment.SessionID == sessionID {
			result = append(result, comment)
		}
	}
	return result, nil
}

func (stub *stubCommentStore) DeleteByID(commentID uint) error {
	delete(stub.comments, commentID)
	return nil
}

func TestEngagementLikeIsIdempotent(t *testing.T) {
	likes := newStubLikeStore()
	service := NewEngagementService(likes, newStubCommentStore())

	created, err := service.Like(1, 10)
	if err != nil {
		t.Fatalf("Like() unexpected error: %v", err)
	}
	if !created {
		t.Fatalf("expected first like to be created")
	}

	created, err = service.Like(1, 10)
	if err != nil {
		t.Fatalf("repeat Like() unexpected error: %v", err)
	}
	if created {
		t.Fatalf("expected repeat like to be a no-op")
	}

	count, err := service.LikeCount(10)
	if err != nil {
		t.Fatalf("LikeCount() unexpected error: %v", err)
	}
	if count != 1 {
		t.Fatalf("expected like count 1, got %d", count)
	}
}

func TestEngagementUnlikeReportsRemoval(t *testing.T) {
	likes := newStubLikeStore()
	likes.likes[[2]uint{1, 10}] = true
	service := NewEngagementService(likes, newStubCommentStore())

	removed, err := service.Unlike(1, 10)
	if err != nil {
		t.Fatalf("Unlike() unexpected error: %v", err)
	}
	if !removed {
		t.Fatalf("expected unlike to remove the like")
	}

	removed, err = service.Unlike(1, 10)
	if err != nil {
		t.Fatalf("repeat Unlike() unexpected error: %v", err)
	}
	if removed {
		t.Fatalf("expected repeat unlike to report nothing removed")
	}
}

func TestEngagementAddCommentTrimsBody(t *testing.T) {
	service := NewEngagementService(newStubLikeStore(), newStubCommentStore())

	comment, err := service.AddComment(1, 10, "  nice focus!  ")
	if err != nil {
		t.Fatalf("AddComment() unexpected error: %v", err)
	}
	if comment.Body != "nice focus!" {
		t.Fatalf("expected trimmed body, got %q", comment.Body)
	}
	if comment.ID == 0 {
		t.Fatalf("expected stored comment to get an ID")
	}
}

func TestEngagementAddCommentRejectsEmptyAndOversized(t *testing.T) {
	service := NewEngagementService(newStubLikeStore(), newStubCommentStore())

	if _, err := service.AddComment(1, 10, "   "); !errors.Is(err, ErrCommentBodyInvalid) {
		t.Fatalf("expected ErrCommentBodyInvalid for blank body, got %v", err)
	}

	long := strings.Repeat("a", models.MaxCommentLength+1)
	if _, err := service.AddComment(1, 10, long); !errors.Is(err, ErrCommentBodyInvalid) {
		t.Fatalf("expected ErrCommentBodyInvalid for oversized body, got %v", err)
	}
}

func TestEngagementDeleteCommentEnforcesPolicy(t *testing.T) {
	comments := newStubCommentStore()
	comments.comments[5] = models.Comment{ID: 5, SessionID: 10, UserID: 1, Body: "hi"}
	service := NewEngagementService(newStubLikeStore(), comments)

	stranger := &models.User{ID: 3}
	if err := service.DeleteComment(stranger, 5, 2); !errors.Is(err, ErrEngagementDenied) {
		t.Fatalf("expected ErrEngagementDenied for stranger, got %v", err)
	}

	author := &models.User{ID: 1}
	if err := service.DeleteComment(author, 5, 2); err != nil {
		t.Fatalf("DeleteComment() unexpected error for author: %v", err)
	}
	if _, found := comments.comments[5]; found {
		t.Fatalf("expected comment removed")
	}
}

func TestEngagementDeleteCommentAllowsSessionOwnerAndAdmin(t *testing.T) {
	comments := newStubCommentStore()
	comments.comments[5] = models.Comment{ID: 5, SessionID: 10, UserID: 1}
	comments.comments[6] = models.Comment{ID: 6, SessionID: 10, UserID: 1}
	service := NewEngagementService(newStubLikeStore(), comments)

	owner := &models.User{ID: 2}
	if err := service.DeleteComment(owner, 5, 2); err != nil {
		t.Fatalf("DeleteComment() unexpected error for session owner: %v", err)
	}

	admin := &models.User{ID: 9, Role: models.RoleAdmin}
	if err := service.DeleteComment(admin, 6, 2); err != nil {
		t.Fatalf("DeleteComment() unexpected error for admin: %v", err)
	}
}

func TestEngagementDeleteCommentMissing(t *testing.T) {
	service := NewEngagementService(newStubLikeStore(), newStubCommentStore())

	if err := service.DeleteComment(&models.User{ID: 1}, 404, 1); !errors.Is(err, ErrCommentNotFound) {
		t.Fatalf("expected ErrCommentNotFound, got %v", err)
	}
}
