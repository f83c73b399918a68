package service

import (
	"context"
	"fmt"

	"github.com/pkg/errors"
	"go.opentelemetry.io/otel"

	"github.com/atelierworks/atelier"
	"github.com/atelierworks/atelier/internal/domain"
	"github.com/atelierworks/atelier/jwt"
)

var tracer = otel.Tracer("auth")

type AuthService struct {
	config *domain.Config
}

func NewAuthService(
	config *domain.Config,
) *AuthService {
	return &AuthService{
		config: config,
	}
}

type AuthResult struct {
	ArtID string
}

func (s *AuthService) AuthJwt(ctx context.Context, token string) (*AuthResult, error) {
	ctx, span := tracer.Start(ctx, "Auth.Service.AuthJwt")
	defer span.End()

	header, claims, err := jwt.Validate(token)
	if err != nil {
		span.RecordError(errors.Wrap(err, "jwt validation failed"))
		return nil, err
	}

	if claims.Audience != s.config.FQDN {
		err := fmt.Errorf("jwt audience mismatch: expected %s, got %s", s.config.FQDN, claims.Audience)
		span.RecordError(err)
		return nil, err
	}

	if claims.Subject != "atelier" {
		err := fmt.Errorf("invalid subject")
		span.RecordError(err)
		return nil, err
	}

	keyID := header.KeyID
	if keyID == "" {
		keyID = claims.Issuer
	}

	if atelier.IsArtID(keyID) {
		return &AuthResult{ArtID: keyID}, nil
	} else if atelier.IsASID(keyID) {
		err := fmt.Errorf("service identities cannot act as artists")
		span.RecordError(err)
		return nil, err
	} else {
		span.RecordError(fmt.Errorf("invalid issuer"))
		return nil, fmt.Errorf("invalid issuer")
	}
}
