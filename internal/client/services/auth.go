// Package services contains the application services behind the kouden CLI.
// This file defines the authentication service: online and offline login,
// registration, liveness check and housekeeping of the local cache.
package services

import (
	"context"
	"crypto/subtle"
	"database/sql"
	"fmt"

	"github.com/dmitrijs2005/kouden/internal/client/client"
	"github.com/dmitrijs2005/kouden/internal/client/repositories/metadata"
	"github.com/dmitrijs2005/kouden/internal/client/repositories/snapshots"
	"github.com/dmitrijs2005/kouden/internal/common"
	"github.com/dmitrijs2005/kouden/internal/cryptox"
	"github.com/dmitrijs2005/kouden/internal/dbx"
)

// AuthService defines authentication operations for the CLI.
//
// Contract:
//   - OnlineLogin: authenticate against the server and persist offline auth data.
//   - OfflineLogin: verify credentials against locally cached data.
//   - Register: create a new user on the server.
//   - Ping: check server liveness.
//   - Logout: drop the session tokens held by the client.
//   - Close: release underlying client resources.
//   - ClearOfflineData: wipe the cached auth material and every snapshot.
type AuthService interface {
	OfflineLogin(ctx context.Context, username string, password []byte) error
	OnlineLogin(ctx context.Context, username string, password []byte) error
	Register(ctx context.Context, username string, password []byte) error
	Ping(ctx context.Context) error
	Logout(ctx context.Context)
	Close(ctx context.Context) error
	ClearOfflineData(ctx context.Context) error
}

type authService struct {
	client client.Client
	db     *sql.DB
}

// NewAuthService constructs an AuthService bound to the given API client and DB.
func NewAuthService(client client.Client, db *sql.DB) AuthService {
	return &authService{client: client, db: db}
}

func (a *authService) getMetadataRepo() metadata.Repository {
	return metadata.NewSQLiteRepository(a.db)
}

// getMeta reads a required key. A missing key means the user never logged in
// online on this machine.
func getMeta(ctx context.Context, repo metadata.Repository, key string) ([]byte, error) {
	v, err := repo.Get(ctx, key)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", key, err)
	}
	if v == nil {
		return nil, client.ErrLocalDataNotAvailable
	}
	return v, nil
}

// OfflineLogin derives a master key from the password and the locally stored
// salt and checks it against the cached verifier. Missing local data yields
// client.ErrLocalDataNotAvailable, a mismatch client.ErrUnauthorized.
func (a *authService) OfflineLogin(ctx context.Context, username string, password []byte) error {
	repo := a.getMetadataRepo()

	savedUsername, err := getMeta(ctx, repo, metadata.KeyUsername)
	if err != nil {
		return err
	}
	if string(savedUsername) != username {
		return client.ErrUnauthorized
	}

	savedSalt, err := getMeta(ctx, repo, metadata.KeySalt)
	if err != nil {
		return err
	}
	savedVerifier, err := getMeta(ctx, repo, metadata.KeyVerifier)
	if err != nil {
		return err
	}

	key := cryptox.DeriveMasterKey(password, savedSalt)
	defer common.WipeByteArray(key)

	if subtle.ConstantTimeCompare(savedVerifier, cryptox.MakeVerifier(key)) == 0 {
		return client.ErrUnauthorized
	}
	return nil
}

// OnlineLogin authenticates against the server and saves the offline login
// material (username, salt, verifier).
func (a *authService) OnlineLogin(ctx context.Context, userName string, password []byte) error {
	salt, err := a.client.GetSalt(ctx, userName)
	if err != nil {
		return fmt.Errorf("get salt error: %w", err)
	}

	key := cryptox.DeriveMasterKey(password, salt)
	defer common.WipeByteArray(key)
	verifier := cryptox.MakeVerifier(key)

	if err := a.client.Login(ctx, userName, verifier); err != nil {
		return fmt.Errorf("login error: %w", err)
	}

	if err := a.saveOfflineData(ctx, userName, salt, verifier); err != nil {
		return fmt.Errorf("offline data saving error: %w", err)
	}
	return nil
}

// saveOfflineData stores username, salt and verifier in one transaction.
// A different user logging in on this machine drops the previous user's
// cached ledgers.
func (a *authService) saveOfflineData(ctx context.Context, userName string, salt []byte, verifier []byte) error {
	return dbx.WithTx(ctx, a.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := metadata.NewSQLiteRepository(tx)

		prev, err := repo.Get(ctx, metadata.KeyUsername)
		if err != nil {
			return err
		}
		if prev != nil && string(prev) != userName {
			if err := repo.Clear(ctx); err != nil {
				return err
			}
			if err := snapshots.NewSQLiteRepository(tx).Clear(ctx); err != nil {
				return err
			}
		}

		if err := repo.Set(ctx, metadata.KeyUsername, []byte(userName)); err != nil {
			return err
		}
		if err := repo.Set(ctx, metadata.KeySalt, salt); err != nil {
			return err
		}
		return repo.Set(ctx, metadata.KeyVerifier, verifier)
	})
}

// Register creates a new account on the server. It generates a random salt,
// derives a master key from the password and sends salt and verifier.
func (a *authService) Register(ctx context.Context, username string, password []byte) error {
	salt := common.GenerateRandByteArray(cryptox.SaltLength)
	key := cryptox.DeriveMasterKey(password, salt)
	defer common.WipeByteArray(key)

	return a.client.Register(ctx, username, salt, cryptox.MakeVerifier(key))
}

func (a *authService) Ping(ctx context.Context) error {
	return a.client.Ping(ctx)
}

func (a *authService) Logout(ctx context.Context) {
	a.client.Logout()
}

func (a *authService) Close(ctx context.Context) error {
	return a.client.Close()
}

// ClearOfflineData wipes the cached auth material and all snapshots.
func (a *authService) ClearOfflineData(ctx context.Context) error {
	return dbx.WithTx(ctx, a.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		if err := metadata.NewSQLiteRepository(tx).Clear(ctx); err != nil {
			return err
		}
		return snapshots.NewSQLiteRepository(tx).Clear(ctx)
	})
}
