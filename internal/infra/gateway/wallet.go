package gateway

import (
	"context"

	"github.com/pkg/errors"
	"go.opentelemetry.io/otel"

	"github.com/atelierworks/atelier/client"
)

var tracer = otel.Tracer("gateway")

// WalletGateway adapts the wallet service client to the ledger port.
type WalletGateway struct {
	client *client.Client
}

func NewWalletGateway(client *client.Client) *WalletGateway {
	return &WalletGateway{
		client: client,
	}
}

func (g *WalletGateway) Debit(ctx context.Context, holder string, amount uint64) error {
	ctx, span := tracer.Start(ctx, "Wallet.Gateway.Debit")
	defer span.End()

	err := g.client.Debit(ctx, holder, amount)
	if err != nil {
		span.RecordError(errors.Wrap(err, "wallet debit failed"))
		return err
	}
	return nil
}

func (g *WalletGateway) Credit(ctx context.Context, holder string, amount uint64) error {
	ctx, span := tracer.Start(ctx, "Wallet.Gateway.Credit")
	defer span.End()

	err := g.client.Credit(ctx, holder, amount)
	if err != nil {
		span.RecordError(errors.Wrap(err, "wallet credit failed"))
		return err
	}
	return nil
}

func (g *WalletGateway) Balance(ctx context.Context, holder string) (uint64, error) {
	ctx, span := tracer.Start(ctx, "Wallet.Gateway.Balance")
	defer span.End()

	balance, err := g.client.Balance(ctx, holder)
	if err != nil {
		span.RecordError(errors.Wrap(err, "wallet balance lookup failed"))
		return 0, err
	}
	return balance, nil
}
