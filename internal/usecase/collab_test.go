package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/atelierworks/atelier/internal/domain"
	"github.com/atelierworks/atelier/schemas"
)

func TestCollabRequestStartsPending(t *testing.T) {
	store := newMemStore()
	seedProfile(t, store, testArtist)
	uc := NewCollabUsecase(store)

	request, err := uc.Request(context.Background(), testFollower, testArtist, schemas.CollabRequest{Message: "let's collab"})
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if request.Status != domain.CollabPending {
		t.Fatalf("expected pending, got %s", request.Status)
	}

	_, err = uc.Request(context.Background(), testFollower, testArtist, schemas.CollabRequest{Message: "again"})
	if !errors.Is(err, domain.ErrAlreadyExists) {
		t.Fatalf("expected AlreadyExists on re-request, got %v", err)
	}
}

func TestCollabRequestMessageTooLong(t *testing.T) {
	store := newMemStore()
	seedProfile(t, store, testArtist)
	uc := NewCollabUsecase(store)

	_, err := uc.Request(context.Background(), testFollower, testArtist, schemas.CollabRequest{
		Message: strings.Repeat("x", domain.MaxCollabMsgLength+1),
	})
	if !errors.Is(err, domain.ErrFieldTooLong) {
		t.Fatalf("expected FieldTooLong, got %v", err)
	}
}

func TestCollabResolveAcceptIsTerminal(t *testing.T) {
	store := newMemStore()
	seedProfile(t, store, testArtist)
	uc := NewCollabUsecase(store)

	if _, err := uc.Request(context.Background(), testFollower, testArtist, schemas.CollabRequest{Message: "m"}); err != nil {
		t.Fatalf("request failed: %v", err)
	}

	resolved, err := uc.Resolve(context.Background(), testArtist, testArtist, schemas.CollabResolve{
		Requester: testFollower,
		Status:    "accepted",
	})
	if err != nil {
		t.Fatalf("resolve failed: %v", err)
	}
	if resolved.Status != domain.CollabAccepted {
		t.Fatalf("expected accepted, got %s", resolved.Status)
	}

	_, err = uc.Resolve(context.Background(), testArtist, testArtist, schemas.CollabResolve{
		Requester: testFollower,
		Status:    "rejected",
	})
	if !errors.Is(err, domain.ErrInvalidTransition) {
		t.Fatalf("expected InvalidStateTransition on a resolved request, got %v", err)
	}
}

func TestCollabResolveNonOwner(t *testing.T) {
	store := newMemStore()
	seedProfile(t, store, testArtist)
	uc := NewCollabUsecase(store)

	if _, err := uc.Request(context.Background(), testFollower, testArtist, schemas.CollabRequest{Message: "m"}); err != nil {
		t.Fatalf("request failed: %v", err)
	}

	_, err := uc.Resolve(context.Background(), testTipper, testArtist, schemas.CollabResolve{
		Requester: testFollower,
		Status:    "accepted",
	})
	if !errors.Is(err, domain.ErrUnauthorized) {
		t.Fatalf("expected Unauthorized, got %v", err)
	}
	got, _ := store.GetCollab(context.Background(), testArtist, testFollower)
	if got.Status != domain.CollabPending {
		t.Fatalf("unauthorized attempt must not change state, got %s", got.Status)
	}
}

func TestCollabResolveRejectsPendingTarget(t *testing.T) {
	store := newMemStore()
	seedProfile(t, store, testArtist)
	uc := NewCollabUsecase(store)

	if _, err := uc.Request(context.Background(), testFollower, testArtist, schemas.CollabRequest{Message: "m"}); err != nil {
		t.Fatalf("request failed: %v", err)
	}

	_, err := uc.Resolve(context.Background(), testArtist, testArtist, schemas.CollabResolve{
		Requester: testFollower,
		Status:    "pending",
	})
	if !errors.Is(err, domain.ErrInvalidTransition) {
		t.Fatalf("expected InvalidStateTransition for pending target, got %v", err)
	}
}
