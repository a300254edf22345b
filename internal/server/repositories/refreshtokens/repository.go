// Package refreshtokens persists the opaque refresh tokens issued at login.
// Tokens are single use: the user service deletes a token when it is
// exchanged for a new pair.
package refreshtokens

import (
	"context"
	"time"

	"github.com/dmitrijs2005/kouden/internal/server/models"
)

type Repository interface {
	Create(ctx context.Context, token *models.RefreshToken) error

	// Find returns common.ErrorNotFound when the token is absent.
	Find(ctx context.Context, token string) (*models.RefreshToken, error)

	// Delete is a no-op for unknown tokens.
	Delete(ctx context.Context, token string) error

	// DeleteExpired purges tokens of userID that expired before now and
	// reports how many were removed.
	DeleteExpired(ctx context.Context, userID string, now time.Time) (int64, error)
}
