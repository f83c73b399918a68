package usecase

import (
	"context"
	"errors"
	"time"

	"github.com/atelierworks/atelier/internal/domain"
	"github.com/atelierworks/atelier/schemas"
)

type CollabUsecase struct {
	store Store
}

func NewCollabUsecase(store Store) *CollabUsecase {
	return &CollabUsecase{store: store}
}

// Request opens a collaboration request in Pending state. One request per
// (artist, requester) pair; re-requesting fails while any status persists.
func (uc *CollabUsecase) Request(ctx context.Context, requester string, artist string, args schemas.CollabRequest) (domain.CollabRequest, error) {
	if err := domain.ValidateCollabMessage(args.Message); err != nil {
		return domain.CollabRequest{}, err
	}

	request := domain.CollabRequest{
		Artist:    artist,
		Requester: requester,
		Message:   args.Message,
		Status:    domain.CollabPending,
		CreatedAt: time.Now().UTC(),
	}

	err := uc.store.Atomic(ctx, func(tx Store) error {
		if _, err := tx.GetProfile(ctx, artist); err != nil {
			return err
		}
		if _, err := tx.GetCollab(ctx, artist, requester); err == nil {
			return domain.AlreadyExistsError{Resource: "collab request"}
		} else if !errors.Is(err, domain.ErrNotFound) {
			return err
		}
		return tx.CreateCollab(ctx, request)
	})
	if err != nil {
		return domain.CollabRequest{}, err
	}
	return request, nil
}

// Resolve moves a Pending request to Accepted or Rejected. Both are
// terminal: any further transition, and any transition not starting from
// Pending, fails. Owner-only; the authorization check runs before any
// state change.
func (uc *CollabUsecase) Resolve(ctx context.Context, caller string, artist string, args schemas.CollabResolve) (domain.CollabRequest, error) {
	status, err := domain.ParseCollabStatus(args.Status)
	if err != nil {
		return domain.CollabRequest{}, err
	}
	if !status.Terminal() {
		return domain.CollabRequest{}, domain.InvalidTransitionError{Reason: "target status must be accepted or rejected"}
	}

	var resolved domain.CollabRequest
	err = uc.store.Atomic(ctx, func(tx Store) error {
		profile, err := tx.GetProfile(ctx, artist)
		if err != nil {
			return err
		}
		if profile.Owner != caller {
			return domain.UnauthorizedError{Operation: "collab-resolve"}
		}

		request, err := tx.GetCollab(ctx, artist, args.Requester)
		if err != nil {
			return err
		}
		if request.Status != domain.CollabPending {
			return domain.InvalidTransitionError{Reason: "request is already resolved"}
		}

		request.Status = status
		if err := tx.UpdateCollab(ctx, request); err != nil {
			return err
		}
		resolved = request
		return nil
	})
	if err != nil {
		return domain.CollabRequest{}, err
	}
	return resolved, nil
}
