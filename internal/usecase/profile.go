package usecase

import (
	"context"

	"github.com/atelierworks/atelier"
	"github.com/atelierworks/atelier/internal/domain"
	"github.com/atelierworks/atelier/schemas"
)

type ProfileUsecase struct {
	store  Store
	wallet WalletGateway
}

func NewProfileUsecase(store Store, wallet WalletGateway) *ProfileUsecase {
	return &ProfileUsecase{store: store, wallet: wallet}
}

// Create initializes an ArtistProfile and its empty TipsVault. Fails with
// AlreadyExists when a profile is already recorded for the owner.
func (uc *ProfileUsecase) Create(ctx context.Context, owner string, args schemas.ProfileCreate) (domain.ArtistProfile, error) {
	if err := domain.ValidateProfile(args.Name, args.Bio, args.Links); err != nil {
		return domain.ArtistProfile{}, err
	}

	profile := domain.ArtistProfile{
		Owner: owner,
		Name:  args.Name,
		Bio:   args.Bio,
		Links: args.Links,
	}

	err := uc.store.Atomic(ctx, func(tx Store) error {
		if err := tx.CreateProfile(ctx, profile); err != nil {
			return err
		}
		return tx.CreateVault(ctx, domain.TipsVault{Artist: owner})
	})
	if err != nil {
		return domain.ArtistProfile{}, err
	}

	return profile, nil
}

// Update applies partial-update semantics: a nil argument leaves the
// field unchanged, a present value replaces it.
func (uc *ProfileUsecase) Update(ctx context.Context, caller string, args schemas.ProfileUpdate) (domain.ArtistProfile, error) {
	if args.Name != nil {
		if err := domain.ValidateName(*args.Name); err != nil {
			return domain.ArtistProfile{}, err
		}
	}
	if args.Bio != nil {
		if err := domain.ValidateBio(*args.Bio); err != nil {
			return domain.ArtistProfile{}, err
		}
	}
	if args.Links != nil {
		if err := domain.ValidateLinks(*args.Links); err != nil {
			return domain.ArtistProfile{}, err
		}
	}

	var updated domain.ArtistProfile
	err := uc.store.Atomic(ctx, func(tx Store) error {
		profile, err := tx.GetProfile(ctx, caller)
		if err != nil {
			return err
		}
		if profile.Owner != caller {
			return domain.UnauthorizedError{Operation: "profile-update"}
		}

		if args.Name != nil {
			profile.Name = *args.Name
		}
		if args.Bio != nil {
			profile.Bio = *args.Bio
		}
		if args.Links != nil {
			profile.Links = *args.Links
		}

		if err := tx.UpdateProfile(ctx, profile); err != nil {
			return err
		}
		updated = profile
		return nil
	})
	if err != nil {
		return domain.ArtistProfile{}, err
	}
	return updated, nil
}

// Close deletes the profile and its vault, refunding any remaining vault
// balance to the owner's wallet.
func (uc *ProfileUsecase) Close(ctx context.Context, caller string) error {
	return uc.store.Atomic(ctx, func(tx Store) error {
		profile, err := tx.GetProfile(ctx, caller)
		if err != nil {
			return err
		}
		if profile.Owner != caller {
			return domain.UnauthorizedError{Operation: "profile-close"}
		}

		vault, err := tx.GetVault(ctx, caller)
		if err != nil {
			return err
		}

		if vault.Balance > 0 {
			if err := uc.wallet.Credit(ctx, caller, vault.Balance); err != nil {
				return err
			}
		}

		if err := tx.DeleteVault(ctx, caller); err != nil {
			return err
		}
		return tx.DeleteProfile(ctx, caller)
	})
}

// Key returns the profile record key for the owner.
func (uc *ProfileUsecase) Key(owner string) string {
	return atelier.ProfileKey(owner)
}
