package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/atelierworks/atelier"
	"github.com/atelierworks/atelier/internal/domain"
	"github.com/atelierworks/atelier/schemas"
)

func seedProfile(t *testing.T, store *memStore, owner string) {
	t.Helper()
	uc := NewProfileUsecase(store, newFakeWallet())
	if _, err := uc.Create(context.Background(), owner, schemas.ProfileCreate{Name: "seed"}); err != nil {
		t.Fatalf("seed profile failed: %v", err)
	}
}

func TestFollowIncrementsOnce(t *testing.T) {
	store := newMemStore()
	seedProfile(t, store, testArtist)
	uc := NewSocialUsecase(store)

	account, err := uc.Follow(context.Background(), testFollower, testArtist)
	if err != nil {
		t.Fatalf("follow failed: %v", err)
	}
	if !account.IsFollowing {
		t.Fatalf("expected is_following=true")
	}
	if store.profiles[testArtist].FollowerCount != 1 {
		t.Fatalf("expected follower_count 1, got %d", store.profiles[testArtist].FollowerCount)
	}

	_, err = uc.Follow(context.Background(), testFollower, testArtist)
	if !errors.Is(err, domain.ErrAlreadyFollowing) {
		t.Fatalf("expected AlreadyFollowing, got %v", err)
	}
	if store.profiles[testArtist].FollowerCount != 1 {
		t.Fatalf("second follow must not change the count, got %d", store.profiles[testArtist].FollowerCount)
	}
}

func TestFollowUnknownArtist(t *testing.T) {
	store := newMemStore()
	uc := NewSocialUsecase(store)

	_, err := uc.Follow(context.Background(), testFollower, testArtist)
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected NotFound, got %v", err)
	}
}

func TestFollowRevivesLapsedAccount(t *testing.T) {
	store := newMemStore()
	seedProfile(t, store, testArtist)
	store.followers[testArtist+"/"+testFollower] = domain.FollowerAccount{
		Artist:   testArtist,
		Follower: testFollower,
	}
	uc := NewSocialUsecase(store)

	account, err := uc.Follow(context.Background(), testFollower, testArtist)
	if err != nil {
		t.Fatalf("re-follow failed: %v", err)
	}
	if !account.IsFollowing {
		t.Fatalf("expected account flipped to following")
	}
	if store.profiles[testArtist].FollowerCount != 1 {
		t.Fatalf("expected follower_count 1, got %d", store.profiles[testArtist].FollowerCount)
	}
}

func TestPostWorkSequencesIndex(t *testing.T) {
	store := newMemStore()
	seedProfile(t, store, testArtist)
	uc := NewSocialUsecase(store)

	first, err := uc.PostWork(context.Background(), testArtist, schemas.WorkPost{Title: "one"})
	if err != nil {
		t.Fatalf("post failed: %v", err)
	}
	second, err := uc.PostWork(context.Background(), testArtist, schemas.WorkPost{Title: "two"})
	if err != nil {
		t.Fatalf("post failed: %v", err)
	}

	if first.Index != 0 || second.Index != 1 {
		t.Fatalf("expected indices 0,1 got %d,%d", first.Index, second.Index)
	}
	if store.profiles[testArtist].WorkCount != 2 {
		t.Fatalf("expected work_count 2, got %d", store.profiles[testArtist].WorkCount)
	}
	if first.Likes != 0 || first.CommentCount != 0 {
		t.Fatalf("work counters must start at zero: %+v", first)
	}
}

func TestPostWorkRequiresProfile(t *testing.T) {
	store := newMemStore()
	uc := NewSocialUsecase(store)

	_, err := uc.PostWork(context.Background(), testArtist, schemas.WorkPost{Title: "t"})
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected NotFound, got %v", err)
	}
}

func TestPostWorkTitleTooLong(t *testing.T) {
	store := newMemStore()
	seedProfile(t, store, testArtist)
	uc := NewSocialUsecase(store)

	_, err := uc.PostWork(context.Background(), testArtist, schemas.WorkPost{
		Title: strings.Repeat("x", domain.MaxTitleLength+1),
	})
	if !errors.Is(err, domain.ErrFieldTooLong) {
		t.Fatalf("expected FieldTooLong, got %v", err)
	}
}

func postWork(t *testing.T, store *memStore, artist string) string {
	t.Helper()
	uc := NewSocialUsecase(store)
	work, err := uc.PostWork(context.Background(), artist, schemas.WorkPost{Title: "w"})
	if err != nil {
		t.Fatalf("post work failed: %v", err)
	}
	return atelier.WorkKey(work.Artist, work.Index)
}

func TestInteractLike(t *testing.T) {
	store := newMemStore()
	seedProfile(t, store, testArtist)
	workKey := postWork(t, store, testArtist)
	uc := NewSocialUsecase(store)

	_, err := uc.Interact(context.Background(), testFollower, workKey, schemas.WorkInteract{Kind: "like"})
	if err != nil {
		t.Fatalf("like failed: %v", err)
	}
	if store.works[workKey].Likes != 1 {
		t.Fatalf("expected likes 1, got %d", store.works[workKey].Likes)
	}
}

func TestInteractDuplicateRejectedRegardlessOfKind(t *testing.T) {
	store := newMemStore()
	seedProfile(t, store, testArtist)
	workKey := postWork(t, store, testArtist)
	uc := NewSocialUsecase(store)

	if _, err := uc.Interact(context.Background(), testFollower, workKey, schemas.WorkInteract{Kind: "like"}); err != nil {
		t.Fatalf("like failed: %v", err)
	}

	comment := "nice"
	_, err := uc.Interact(context.Background(), testFollower, workKey, schemas.WorkInteract{Kind: "comment", Comment: &comment})
	if !errors.Is(err, domain.ErrAlreadyExists) {
		t.Fatalf("expected AlreadyExists, got %v", err)
	}
	if store.works[workKey].Likes != 1 || store.works[workKey].CommentCount != 0 {
		t.Fatalf("counters must be untouched by the rejected attempt: %+v", store.works[workKey])
	}
}

func TestInteractComment(t *testing.T) {
	store := newMemStore()
	seedProfile(t, store, testArtist)
	workKey := postWork(t, store, testArtist)
	uc := NewSocialUsecase(store)

	comment := "great piece"
	interaction, err := uc.Interact(context.Background(), testFollower, workKey, schemas.WorkInteract{Kind: "comment", Comment: &comment})
	if err != nil {
		t.Fatalf("comment failed: %v", err)
	}
	if interaction.Comment == nil || *interaction.Comment != comment {
		t.Fatalf("comment text not stored: %+v", interaction)
	}
	if store.works[workKey].CommentCount != 1 {
		t.Fatalf("expected comment_count 1, got %d", store.works[workKey].CommentCount)
	}
}

func TestInteractKindCommentMismatch(t *testing.T) {
	store := newMemStore()
	seedProfile(t, store, testArtist)
	workKey := postWork(t, store, testArtist)
	uc := NewSocialUsecase(store)

	// comment text on a like
	text := "x"
	_, err := uc.Interact(context.Background(), testFollower, workKey, schemas.WorkInteract{Kind: "like", Comment: &text})
	if !errors.Is(err, domain.ErrInvalidInteraction) {
		t.Fatalf("expected InvalidInteraction, got %v", err)
	}

	// comment without text
	_, err = uc.Interact(context.Background(), testFollower, workKey, schemas.WorkInteract{Kind: "comment"})
	if !errors.Is(err, domain.ErrInvalidInteraction) {
		t.Fatalf("expected InvalidInteraction, got %v", err)
	}

	// unknown kind
	_, err = uc.Interact(context.Background(), testFollower, workKey, schemas.WorkInteract{Kind: "repost"})
	if !errors.Is(err, domain.ErrInvalidInteraction) {
		t.Fatalf("expected InvalidInteraction, got %v", err)
	}
}

func TestInteractCommentTooLong(t *testing.T) {
	store := newMemStore()
	seedProfile(t, store, testArtist)
	workKey := postWork(t, store, testArtist)
	uc := NewSocialUsecase(store)

	long := strings.Repeat("x", domain.MaxCommentLength+1)
	_, err := uc.Interact(context.Background(), testFollower, workKey, schemas.WorkInteract{Kind: "comment", Comment: &long})
	if !errors.Is(err, domain.ErrFieldTooLong) {
		t.Fatalf("expected FieldTooLong, got %v", err)
	}
}
