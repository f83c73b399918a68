package usecase

import (
	"context"

	"github.com/atelierworks/atelier"
	"github.com/atelierworks/atelier/internal/domain"
)

// Store is the record persistence port. Records are fetched and written
// by their deterministic key; create calls fail with AlreadyExists when a
// record is present for the key. Atomic runs fn against a transactional
// view: either every write inside fn is observed, or none are.
type Store interface {
	Atomic(ctx context.Context, fn func(tx Store) error) error

	GetProfile(ctx context.Context, owner string) (domain.ArtistProfile, error)
	CreateProfile(ctx context.Context, profile domain.ArtistProfile) error
	UpdateProfile(ctx context.Context, profile domain.ArtistProfile) error
	DeleteProfile(ctx context.Context, owner string) error

	GetVault(ctx context.Context, artist string) (domain.TipsVault, error)
	CreateVault(ctx context.Context, vault domain.TipsVault) error
	UpdateVault(ctx context.Context, vault domain.TipsVault) error
	DeleteVault(ctx context.Context, artist string) error

	GetFollower(ctx context.Context, artist string, follower string) (domain.FollowerAccount, error)
	CreateFollower(ctx context.Context, account domain.FollowerAccount) error
	UpdateFollower(ctx context.Context, account domain.FollowerAccount) error

	GetWork(ctx context.Context, key string) (domain.Work, error)
	CreateWork(ctx context.Context, work domain.Work) error
	UpdateWork(ctx context.Context, work domain.Work) error
	RecentWorks(ctx context.Context, artist string, limit int) ([]domain.Work, error)

	GetInteraction(ctx context.Context, workKey string, actor string) (domain.Interaction, error)
	CreateInteraction(ctx context.Context, interaction domain.Interaction) error

	GetCollab(ctx context.Context, artist string, requester string) (domain.CollabRequest, error)
	CreateCollab(ctx context.Context, request domain.CollabRequest) error
	UpdateCollab(ctx context.Context, request domain.CollabRequest) error

	// Resolve fetches any record by its at:// key, for the read surface.
	Resolve(ctx context.Context, key string) (any, error)

	// AppendCommit persists an applied signed instruction in the same
	// transaction as the mutation it carried.
	AppendCommit(ctx context.Context, id string, document string, proof string) error
}

// WalletGateway is the host transfer mechanism for external balances.
// Debit fails with InsufficientFunds when the holder cannot cover amount.
// Balance is a read-side hint; transfers stay authoritative.
type WalletGateway interface {
	Debit(ctx context.Context, holder string, amount uint64) error
	Credit(ctx context.Context, holder string, amount uint64) error
	Balance(ctx context.Context, holder string) (uint64, error)
}

// SignalBus publishes transition events for realtime subscribers.
type SignalBus interface {
	Publish(ctx context.Context, channel string, event atelier.Event) error
}
