package usecase

import (
	"context"

	"github.com/atelierworks/atelier/internal/domain"
)

// LedgerUsecase moves value between caller wallets and per-artist vaults.
// All balance arithmetic is checked; nothing wraps.
type LedgerUsecase struct {
	store  Store
	wallet WalletGateway
}

func NewLedgerUsecase(store Store, wallet WalletGateway) *LedgerUsecase {
	return &LedgerUsecase{store: store, wallet: wallet}
}

// Tip debits the tipper's wallet and credits the artist's vault by exactly
// amount. TotalTips is the cumulative gross counter and only ever grows.
func (uc *LedgerUsecase) Tip(ctx context.Context, tipper string, artist string, amount uint64) (domain.TipsVault, error) {
	if err := domain.ValidateAmount(amount); err != nil {
		return domain.TipsVault{}, err
	}

	var updated domain.TipsVault
	err := uc.store.Atomic(ctx, func(tx Store) error {
		profile, err := tx.GetProfile(ctx, artist)
		if err != nil {
			return err
		}
		vault, err := tx.GetVault(ctx, artist)
		if err != nil {
			return err
		}

		// Reject an unrepresentable tip before touching the wallet.
		newBalance, err := domain.CheckedAdd(vault.Balance, amount, "vault balance")
		if err != nil {
			return err
		}
		newTotal, err := domain.CheckedAdd(profile.TotalTips, amount, "total_tips")
		if err != nil {
			return err
		}

		if err := uc.wallet.Debit(ctx, tipper, amount); err != nil {
			return err
		}

		vault.Balance = newBalance
		profile.TotalTips = newTotal

		if err := tx.UpdateVault(ctx, vault); err != nil {
			return err
		}
		if err := tx.UpdateProfile(ctx, profile); err != nil {
			return err
		}
		updated = vault
		return nil
	})
	if err != nil {
		return domain.TipsVault{}, err
	}
	return updated, nil
}

// Withdraw is owner-only and fails when amount exceeds the vault balance.
// TotalTips is never decremented by a withdrawal.
func (uc *LedgerUsecase) Withdraw(ctx context.Context, caller string, amount uint64) (domain.TipsVault, error) {
	if err := domain.ValidateAmount(amount); err != nil {
		return domain.TipsVault{}, err
	}

	var updated domain.TipsVault
	err := uc.store.Atomic(ctx, func(tx Store) error {
		profile, err := tx.GetProfile(ctx, caller)
		if err != nil {
			return err
		}
		if profile.Owner != caller {
			return domain.UnauthorizedError{Operation: "withdraw"}
		}

		vault, err := tx.GetVault(ctx, caller)
		if err != nil {
			return err
		}
		if amount > vault.Balance {
			return domain.InsufficientFundsError{Source: "tips vault"}
		}

		vault.Balance, err = domain.CheckedSub(vault.Balance, amount, "vault balance")
		if err != nil {
			return err
		}

		if err := tx.UpdateVault(ctx, vault); err != nil {
			return err
		}
		if err := uc.wallet.Credit(ctx, caller, amount); err != nil {
			return err
		}
		updated = vault
		return nil
	})
	if err != nil {
		return domain.TipsVault{}, err
	}
	return updated, nil
}
