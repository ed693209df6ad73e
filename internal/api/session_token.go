package api

import (
	"errors"
	"fmt"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/terraincognita07/phased/internal/session"
)

var errInvalidSessionToken = errors.New("invalid session token")

// sessionClaims bind a bearer token to one unlock of one profile.
// The token ID must match the ID of the live session.
type sessionClaims struct {
	jwt.RegisteredClaims
}

func (handler *Handler) buildSessionToken(profileID string, unlocked session.Session) (string, error) {
	claims := sessionClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        unlocked.ID,
			Subject:   profileID,
			IssuedAt:  jwt.NewNumericDate(unlocked.UnlockedAt),
			ExpiresAt: jwt.NewNumericDate(unlocked.UnlockedAt.Add(sessionTokenMaxAge)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(handler.secretKey)
	if err != nil {
		return "", fmt.Errorf("sign session token: %w", err)
	}
	return signed, nil
}

func (handler *Handler) parseSessionToken(raw string) (*sessionClaims, error) {
	claims := &sessionClaims{}
	token, err := jwt.ParseWithClaims(raw, claims, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method")
		}
		return handler.secretKey, nil
	}, jwt.WithTimeFunc(handler.now), jwt.WithExpirationRequired(), jwt.WithIssuedAt())
	if err != nil || !token.Valid {
		return nil, errInvalidSessionToken
	}
	if claims.IssuedAt == nil || claims.Subject == "" || claims.ID == "" {
		return nil, errInvalidSessionToken
	}
	return claims, nil
}

func bearerToken(c *fiber.Ctx) string {
	header := strings.TrimSpace(c.Get(fiber.HeaderAuthorization))
	scheme, token, found := strings.Cut(header, " ")
	if !found || !strings.EqualFold(scheme, "Bearer") {
		return ""
	}
	return strings.TrimSpace(token)
}

// SessionRequired admits requests carrying a token for the :id profile while its session is live.
// Every admitted request slides the session expiry forward.
func (handler *Handler) SessionRequired(c *fiber.Ctx) error {
	profileID := c.Params("id")

	rawToken := bearerToken(c)
	if rawToken == "" {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}
	claims, err := handler.parseSessionToken(rawToken)
	if err != nil || claims.Subject != profileID {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	live, ok := handler.sessions.Get(profileID)
	if !ok || claims.ID != live.ID {
		return apiError(c, fiber.StatusUnauthorized, "session expired")
	}
	if !handler.sessions.Extend(profileID) {
		return apiError(c, fiber.StatusUnauthorized, "session expired")
	}

	c.Locals(contextProfileIDKey, profileID)
	return c.Next()
}
