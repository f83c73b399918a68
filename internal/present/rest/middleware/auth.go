package middleware

import (
	"context"
	"fmt"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"

	"github.com/atelierworks/atelier/internal/domain"
	"github.com/atelierworks/atelier/internal/service"
)

var tracer = otel.Tracer("auth")

type AuthMiddleware struct {
	auth   *service.AuthService
	config domain.Config
}

func NewAuthMiddleware(
	auth *service.AuthService,
	config domain.Config,
) *AuthMiddleware {
	return &AuthMiddleware{
		auth:   auth,
		config: config,
	}
}

// IdentifyIdentity attaches the verified requester id to the request
// context when a valid bearer token is present. Requests without one
// pass through anonymously; the signature check on commits still holds.
func (s *AuthMiddleware) IdentifyIdentity(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx, span := tracer.Start(c.Request().Context(), "Auth.Middleware.IdentifyIdentity")
		defer span.End()

		authHeader := c.Request().Header.Get("authorization")

		if authHeader != "" {
			split := strings.Split(authHeader, " ")
			if len(split) != 2 {
				span.RecordError(fmt.Errorf("invalid authentication header"))
				goto skipCheckAuthorization
			}

			{
				authType, token := split[0], split[1]
				if authType != "Bearer" {
					span.RecordError(fmt.Errorf("only Bearer is acceptable"))
					goto skipCheckAuthorization
				}

				result, err := s.auth.AuthJwt(ctx, token)
				if err != nil {
					span.RecordError(errors.Wrap(err, "AuthMiddleware.IdentifyIdentity: s.auth.AuthJwt failed"))
					goto skipCheckAuthorization
				}

				ctx = context.WithValue(ctx, domain.RequesterIdCtxKey, result.ArtID)
				span.SetAttributes(attribute.String("RequesterId", result.ArtID))
			}
		}

	skipCheckAuthorization:
		c.SetRequest(c.Request().WithContext(ctx))
		return next(c)
	}
}
