package http

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"foodshare/internal/core/domain/model/kernel"

	"github.com/golang-jwt/jwt/v4"
	"github.com/labstack/echo/v4"
)

const actorKey = "foodshare.actor"

var errMissingBearer = errors.New("missing bearer token")

// IdentityClaims are issued by the external auth service.
type IdentityClaims struct {
	UserID string `json:"uid"`
	Role   string `json:"role"`
	jwt.RegisteredClaims
}

// ParseIdentityToken verifies an HS256 token and returns the actor it names.
func ParseIdentityToken(signingKey []byte, raw string) (kernel.Actor, error) {
	claims := &IdentityClaims{}
	_, err := jwt.ParseWithClaims(raw, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return signingKey, nil
	})
	if err != nil {
		return kernel.Actor{}, fmt.Errorf("invalid token: %w", err)
	}

	userID, err := kernel.UUIDFromString(claims.UserID)
	if err != nil {
		return kernel.Actor{}, fmt.Errorf("invalid uid claim: %w", err)
	}
	role, err := kernel.RoleFromString(claims.Role)
	if err != nil {
		return kernel.Actor{}, fmt.Errorf("invalid role claim: %w", err)
	}

	return kernel.NewActor(userID, role)
}

// IdentityMiddleware rejects requests without a valid bearer token with 401 and
// stores the authenticated actor on the echo context.
func IdentityMiddleware(signingKey []byte) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			actor, err := actorFromHeader(signingKey, ctx.Request().Header.Get(echo.HeaderAuthorization))
			if err != nil {
				return ctx.JSON(http.StatusUnauthorized, Error{
					Code:    http.StatusUnauthorized,
					Message: err.Error(),
				})
			}

			ctx.Set(actorKey, actor)
			return next(ctx)
		}
	}
}

func actorFromHeader(signingKey []byte, header string) (kernel.Actor, error) {
	raw, ok := strings.CutPrefix(header, "Bearer ")
	if !ok || strings.TrimSpace(raw) == "" {
		return kernel.Actor{}, errMissingBearer
	}
	return ParseIdentityToken(signingKey, strings.TrimSpace(raw))
}

// actorFrom returns the actor set by IdentityMiddleware. Handlers are only
// registered behind it, so a missing actor surfaces as an unconstructed one.
func actorFrom(ctx echo.Context) kernel.Actor {
	actor, _ := ctx.Get(actorKey).(kernel.Actor)
	return actor
}
