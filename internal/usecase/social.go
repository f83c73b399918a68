package usecase

import (
	"context"
	"errors"
	"time"

	"github.com/atelierworks/atelier"
	"github.com/atelierworks/atelier/internal/domain"
	"github.com/atelierworks/atelier/schemas"
)

type SocialUsecase struct {
	store Store
}

func NewSocialUsecase(store Store) *SocialUsecase {
	return &SocialUsecase{store: store}
}

// Follow creates the FollowerAccount for (artist, follower) and increments
// the profile's follower count by exactly one. A second follow fails with
// AlreadyFollowing and leaves the count untouched.
func (uc *SocialUsecase) Follow(ctx context.Context, follower string, artist string) (domain.FollowerAccount, error) {
	var account domain.FollowerAccount
	err := uc.store.Atomic(ctx, func(tx Store) error {
		profile, err := tx.GetProfile(ctx, artist)
		if err != nil {
			return err
		}

		existing, err := tx.GetFollower(ctx, artist, follower)
		switch {
		case err == nil:
			if existing.IsFollowing {
				return domain.AlreadyFollowingError{Artist: artist}
			}
			// A lapsed account flips back to following; the count was
			// decremented exactly once when it went false.
			existing.IsFollowing = true
			if err := tx.UpdateFollower(ctx, existing); err != nil {
				return err
			}
			account = existing
		case errors.Is(err, domain.ErrNotFound):
			account = domain.FollowerAccount{
				Artist:      artist,
				Follower:    follower,
				IsFollowing: true,
			}
			if err := tx.CreateFollower(ctx, account); err != nil {
				return err
			}
		default:
			return err
		}

		profile.FollowerCount, err = domain.CheckedAdd(profile.FollowerCount, 1, "follower_count")
		if err != nil {
			return err
		}
		return tx.UpdateProfile(ctx, profile)
	})
	if err != nil {
		return domain.FollowerAccount{}, err
	}
	return account, nil
}

// PostWork is owner-only. The new work takes the profile's current work
// count as its sequence index, then the count increments by one.
func (uc *SocialUsecase) PostWork(ctx context.Context, caller string, args schemas.WorkPost) (domain.Work, error) {
	if err := domain.ValidateWork(args.Title, args.Description, args.ContentURL); err != nil {
		return domain.Work{}, err
	}

	var work domain.Work
	err := uc.store.Atomic(ctx, func(tx Store) error {
		profile, err := tx.GetProfile(ctx, caller)
		if err != nil {
			return err
		}
		if profile.Owner != caller {
			return domain.UnauthorizedError{Operation: "work-post"}
		}

		work = domain.Work{
			Artist:      caller,
			Index:       profile.WorkCount,
			Title:       args.Title,
			Description: args.Description,
			ContentURL:  args.ContentURL,
			PostedAt:    time.Now().UTC(),
		}
		if err := tx.CreateWork(ctx, work); err != nil {
			return err
		}

		profile.WorkCount, err = domain.CheckedAdd(profile.WorkCount, 1, "work_count")
		if err != nil {
			return err
		}
		return tx.UpdateProfile(ctx, profile)
	})
	if err != nil {
		return domain.Work{}, err
	}
	return work, nil
}

// Interact creates the single Interaction record for (work, actor). A
// second attempt for the pair fails regardless of the kind requested.
func (uc *SocialUsecase) Interact(ctx context.Context, actor string, workKey string, args schemas.WorkInteract) (domain.Interaction, error) {
	kind, err := domain.ParseInteractionKind(args.Kind)
	if err != nil {
		return domain.Interaction{}, err
	}
	if err := domain.ValidateInteraction(kind, args.Comment); err != nil {
		return domain.Interaction{}, err
	}

	var interaction domain.Interaction
	err = uc.store.Atomic(ctx, func(tx Store) error {
		work, err := tx.GetWork(ctx, workKey)
		if err != nil {
			return err
		}

		if _, err := tx.GetInteraction(ctx, workKey, actor); err == nil {
			return domain.AlreadyExistsError{Resource: "interaction"}
		} else if !errors.Is(err, domain.ErrNotFound) {
			return err
		}

		interaction = domain.Interaction{
			WorkKey:   workKey,
			Actor:     actor,
			Kind:      kind,
			Comment:   args.Comment,
			CreatedAt: time.Now().UTC(),
		}
		if err := tx.CreateInteraction(ctx, interaction); err != nil {
			return err
		}

		switch kind {
		case domain.InteractionLike:
			work.Likes, err = domain.CheckedAdd(work.Likes, 1, "likes")
		case domain.InteractionComment:
			work.CommentCount, err = domain.CheckedAdd(work.CommentCount, 1, "comment_count")
		}
		if err != nil {
			return err
		}
		return tx.UpdateWork(ctx, work)
	})
	if err != nil {
		return domain.Interaction{}, err
	}
	return interaction, nil
}

// RecentWorks is the read-only listing for the feed surface.
func (uc *SocialUsecase) RecentWorks(ctx context.Context, artist string, limit int) ([]domain.Work, error) {
	if limit <= 0 || limit > 100 {
		limit = 100
	}
	return uc.store.RecentWorks(ctx, artist, limit)
}

// WorkKey derives the record key for (artist, index).
func (uc *SocialUsecase) WorkKey(artist string, index uint64) string {
	return atelier.WorkKey(artist, index)
}
