package usecase

import (
	"context"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"time"

	"github.com/pkg/errors"
	"go.opentelemetry.io/otel"

	"github.com/atelierworks/atelier"
	"github.com/atelierworks/atelier/internal/domain"
	"github.com/atelierworks/atelier/schemas"
)

var tracer = otel.Tracer("dispatcher")

// Result is the outcome of an applied transition: the primary record key
// and its updated snapshot.
type Result struct {
	Schema string `json:"schema"`
	Key    string `json:"key"`
	Record any    `json:"record,omitempty"`
}

// Dispatcher routes a signed instruction to the correct
// validation -> authorization -> mutation sequence. The operation set is
// closed; unknown schemas are rejected.
type Dispatcher struct {
	store  Store
	wallet WalletGateway
	signal SignalBus
}

func NewDispatcher(store Store, wallet WalletGateway, signal SignalBus) *Dispatcher {
	return &Dispatcher{store: store, wallet: wallet, signal: signal}
}

// Dispatch verifies the instruction signature, applies the transition and
// the commit log entry in one transaction, then publishes the event.
func (d *Dispatcher) Dispatch(ctx context.Context, si atelier.SignedInstruction) (Result, error) {
	ctx, span := tracer.Start(ctx, "Dispatcher.Dispatch")
	defer span.End()

	var head atelier.Instruction[json.RawMessage]
	if err := json.Unmarshal([]byte(si.Instruction), &head); err != nil {
		return Result{}, errors.Wrap(err, "malformed instruction")
	}

	if err := verifyAuthor(si, head.Author); err != nil {
		span.RecordError(err)
		return Result{}, err
	}

	hash := atelier.GetHash([]byte(si.Instruction))
	commitID := hex.EncodeToString(hash[:])

	proof, err := json.Marshal(si.Proof)
	if err != nil {
		return Result{}, err
	}

	var result Result
	err = d.store.Atomic(ctx, func(tx Store) error {
		result, err = d.apply(ctx, tx, head)
		if err != nil {
			return err
		}
		return tx.AppendCommit(ctx, commitID, si.Instruction, string(proof))
	})
	if err != nil {
		span.RecordError(err)
		return Result{}, err
	}

	if d.signal != nil {
		event := atelier.Event{
			Schema:    head.Schema,
			Key:       result.Key,
			Author:    head.Author,
			Timestamp: time.Now().UTC(),
		}
		if err := d.signal.Publish(ctx, result.Key, event); err != nil {
			span.RecordError(errors.Wrap(err, "event publish failed"))
		}
	}

	return result, nil
}

// apply matches the closed operation set exhaustively.
func (d *Dispatcher) apply(ctx context.Context, tx Store, head atelier.Instruction[json.RawMessage]) (Result, error) {
	profiles := NewProfileUsecase(tx, d.wallet)
	social := NewSocialUsecase(tx)
	collabs := NewCollabUsecase(tx)
	ledger := NewLedgerUsecase(tx, d.wallet)

	// Profile-scoped operations default to the author's own records.
	target := head.Target
	if target == "" {
		target = head.Author
	}

	switch head.Schema {
	case schemas.ProfileCreateURL:
		args, err := decode[schemas.ProfileCreate](head.Value)
		if err != nil {
			return Result{}, err
		}
		profile, err := profiles.Create(ctx, head.Author, args)
		if err != nil {
			return Result{}, err
		}
		return Result{Schema: head.Schema, Key: atelier.ProfileKey(head.Author), Record: profile}, nil

	case schemas.ProfileUpdateURL:
		args, err := decode[schemas.ProfileUpdate](head.Value)
		if err != nil {
			return Result{}, err
		}
		profile, err := profiles.Update(ctx, head.Author, args)
		if err != nil {
			return Result{}, err
		}
		return Result{Schema: head.Schema, Key: atelier.ProfileKey(head.Author), Record: profile}, nil

	case schemas.ProfileCloseURL:
		if err := profiles.Close(ctx, head.Author); err != nil {
			return Result{}, err
		}
		return Result{Schema: head.Schema, Key: atelier.ProfileKey(head.Author)}, nil

	case schemas.FollowURL:
		account, err := social.Follow(ctx, head.Author, target)
		if err != nil {
			return Result{}, err
		}
		return Result{Schema: head.Schema, Key: atelier.FollowerKey(target, head.Author), Record: account}, nil

	case schemas.WorkPostURL:
		args, err := decode[schemas.WorkPost](head.Value)
		if err != nil {
			return Result{}, err
		}
		work, err := social.PostWork(ctx, head.Author, args)
		if err != nil {
			return Result{}, err
		}
		return Result{Schema: head.Schema, Key: atelier.WorkKey(work.Artist, work.Index), Record: work}, nil

	case schemas.WorkInteractURL:
		args, err := decode[schemas.WorkInteract](head.Value)
		if err != nil {
			return Result{}, err
		}
		interaction, err := social.Interact(ctx, head.Author, head.Target, args)
		if err != nil {
			return Result{}, err
		}
		return Result{Schema: head.Schema, Key: atelier.InteractionKey(head.Target, head.Author), Record: interaction}, nil

	case schemas.CollabRequestURL:
		args, err := decode[schemas.CollabRequest](head.Value)
		if err != nil {
			return Result{}, err
		}
		request, err := collabs.Request(ctx, head.Author, target, args)
		if err != nil {
			return Result{}, err
		}
		return Result{Schema: head.Schema, Key: atelier.CollabKey(target, head.Author), Record: request}, nil

	case schemas.CollabResolveURL:
		args, err := decode[schemas.CollabResolve](head.Value)
		if err != nil {
			return Result{}, err
		}
		request, err := collabs.Resolve(ctx, head.Author, target, args)
		if err != nil {
			return Result{}, err
		}
		return Result{Schema: head.Schema, Key: atelier.CollabKey(target, args.Requester), Record: request}, nil

	case schemas.TipURL:
		args, err := decode[schemas.Tip](head.Value)
		if err != nil {
			return Result{}, err
		}
		vault, err := ledger.Tip(ctx, head.Author, target, args.Amount)
		if err != nil {
			return Result{}, err
		}
		return Result{Schema: head.Schema, Key: atelier.VaultKey(target), Record: vault}, nil

	case schemas.WithdrawURL:
		args, err := decode[schemas.Withdraw](head.Value)
		if err != nil {
			return Result{}, err
		}
		vault, err := ledger.Withdraw(ctx, head.Author, args.Amount)
		if err != nil {
			return Result{}, err
		}
		return Result{Schema: head.Schema, Key: atelier.VaultKey(head.Author), Record: vault}, nil

	default:
		return Result{}, fmt.Errorf("unsupported schema: %s", head.Schema)
	}
}

func decode[T any](raw json.RawMessage) (T, error) {
	var value T
	if raw == nil {
		return value, nil
	}
	if err := json.Unmarshal(raw, &value); err != nil {
		return value, errors.Wrap(err, "malformed instruction value")
	}
	return value, nil
}

func verifyAuthor(si atelier.SignedInstruction, author string) error {
	if !atelier.IsArtID(author) {
		return domain.UnauthorizedError{Operation: "dispatch: invalid author identity"}
	}
	signature, err := hex.DecodeString(si.Proof.Signature)
	if err != nil {
		return domain.UnauthorizedError{Operation: "dispatch: malformed signature"}
	}
	if err := atelier.VerifySignature([]byte(si.Instruction), signature, author); err != nil {
		return domain.UnauthorizedError{Operation: "dispatch: signature mismatch"}
	}
	return nil
}
