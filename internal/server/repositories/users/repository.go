// Package users stores registered accounts: username, salt and the login
// verifier.
package users

import (
	"context"

	"github.com/dmitrijs2005/kouden/internal/server/models"
)

type Repository interface {
	Create(ctx context.Context, user *models.User) (*models.User, error)
	GetByUsername(ctx context.Context, username string) (*models.User, error)
}
