// Package session implements the session store: the current user identity,
// the registered-user table and the farm profile, all mirrored to the durable
// key-value storage. Every mutating operation writes to storage before
// returning.
//
// This reproduces the original demo's (weak) guarantees on purpose: passwords
// are stored in cleartext in the registered-user table, and a user record
// found in storage on startup authenticates the session without re-validating
// credentials.
package session

import (
	"context"
	"crypto/subtle"
	"database/sql"
	"encoding/json"
	"fmt"

	"farmstead/internal/dbx"
	"farmstead/internal/logging"
	"farmstead/internal/models"
	"farmstead/internal/repositories/kv"
)

// Storage keys. Each holds one serialized record or list.
const (
	keyUser            = "user"
	keyFarm            = "farm"
	keyRegisteredUsers = "registeredUsers"
)

// Store owns the session state. It is not safe for concurrent use; the
// application is single-session per storage scope.
type Store struct {
	db     *sql.DB
	logger logging.Logger

	user *models.User
	farm *models.FarmProfile
}

// NewStore returns a session store backed by the given database.
func NewStore(db *sql.DB, logger logging.Logger) *Store {
	return &Store{db: db, logger: logger.With("component", "session")}
}

func (s *Store) repo() kv.Repository {
	return kv.NewSQLiteRepository(s.db)
}

// CurrentUser returns the authenticated user, or nil.
func (s *Store) CurrentUser() *models.User {
	return s.user
}

// CurrentFarm returns the configured farm profile, or nil.
func (s *Store) CurrentFarm() *models.FarmProfile {
	return s.farm
}

// IsAuthenticated reports whether a current user is present.
func (s *Store) IsAuthenticated() bool {
	return s.user != nil
}

// Restore loads a previously persisted user and farm. A found user record
// authenticates the session as-is (trust-on-read); a missing or empty key
// leaves the session logged out.
func (s *Store) Restore(ctx context.Context) error {
	repo := s.repo()

	data, err := repo.Get(ctx, keyUser)
	if err != nil {
		return fmt.Errorf("failed to restore user: %w", err)
	}
	if data != nil {
		var user models.User
		if err := json.Unmarshal(data, &user); err != nil {
			return fmt.Errorf("failed to decode stored user: %w", err)
		}
		s.user = &user
		s.logger.Info(ctx, "session restored", "username", user.Username)
	}

	data, err = repo.Get(ctx, keyFarm)
	if err != nil {
		return fmt.Errorf("failed to restore farm: %w", err)
	}
	if data != nil {
		var farm models.FarmProfile
		if err := json.Unmarshal(data, &farm); err != nil {
			return fmt.Errorf("failed to decode stored farm: %w", err)
		}
		s.farm = &farm
	}

	return nil
}

func (s *Store) registeredUsers(ctx context.Context, repo kv.Repository) ([]models.UserAccount, error) {
	data, err := repo.Get(ctx, keyRegisteredUsers)
	if err != nil {
		return nil, fmt.Errorf("failed to load registered users: %w", err)
	}
	if data == nil {
		return nil, nil
	}
	var users []models.UserAccount
	if err := json.Unmarshal(data, &users); err != nil {
		return nil, fmt.Errorf("failed to decode registered users: %w", err)
	}
	return users, nil
}

// Login looks up the registered-user table by exact username and password
// match. On a hit the password-stripped user becomes the current user and is
// persisted; any miss returns ErrInvalidCredentials.
func (s *Store) Login(ctx context.Context, username, password string) error {
	repo := s.repo()

	users, err := s.registeredUsers(ctx, repo)
	if err != nil {
		return err
	}

	for _, u := range users {
		if u.Username == username && passwordsMatch(u.Password, password) {
			view := u.StripPassword()
			if err := s.persistUser(ctx, repo, view); err != nil {
				return err
			}
			s.user = &view
			s.logger.Info(ctx, "login successful", "username", username)
			return nil
		}
	}

	s.logger.Debug(ctx, "login rejected", "username", username)
	return ErrInvalidCredentials
}

// passwordsMatch compares the stored cleartext password with the candidate in
// constant time.
func passwordsMatch(stored, candidate string) bool {
	return subtle.ConstantTimeCompare([]byte(stored), []byte(candidate)) == 1
}

// Register appends the account to the registered-user table and makes it the
// current user. It fails with ErrUserExists when the username or email is
// already present (case-sensitive exact match). Both storage keys are written
// in one transaction.
func (s *Store) Register(ctx context.Context, account models.UserAccount) error {
	users, err := s.registeredUsers(ctx, s.repo())
	if err != nil {
		return err
	}

	for _, u := range users {
		if u.Username == account.Username || u.Email == account.Email {
			s.logger.Debug(ctx, "registration rejected", "username", account.Username)
			return ErrUserExists
		}
	}

	users = append(users, account)
	view := account.StripPassword()

	err = dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := kv.NewSQLiteRepository(tx)

		data, err := json.Marshal(users)
		if err != nil {
			return fmt.Errorf("failed to encode registered users: %w", err)
		}
		if err := repo.Set(ctx, keyRegisteredUsers, data); err != nil {
			return err
		}

		data, err = json.Marshal(view)
		if err != nil {
			return fmt.Errorf("failed to encode user: %w", err)
		}
		return repo.Set(ctx, keyUser, data)
	})
	if err != nil {
		return err
	}

	s.user = &view
	s.logger.Info(ctx, "registration successful", "username", account.Username)
	return nil
}

// SetupFarm overwrites the farm profile unconditionally and persists it.
// Repeated calls with the same input are idempotent.
func (s *Store) SetupFarm(ctx context.Context, farm models.FarmProfile) error {
	data, err := json.Marshal(farm)
	if err != nil {
		return fmt.Errorf("failed to encode farm: %w", err)
	}
	if err := s.repo().Set(ctx, keyFarm, data); err != nil {
		return err
	}

	s.farm = &farm
	s.logger.Info(ctx, "farm profile saved", "farmName", farm.FarmName)
	return nil
}

// Logout clears the current user and farm, in memory and in storage. The
// registered-user table is kept.
func (s *Store) Logout(ctx context.Context) error {
	err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := kv.NewSQLiteRepository(tx)
		if err := repo.Delete(ctx, keyUser); err != nil {
			return err
		}
		return repo.Delete(ctx, keyFarm)
	})
	if err != nil {
		return err
	}

	s.user = nil
	s.farm = nil
	s.logger.Info(ctx, "logged out")
	return nil
}

func (s *Store) persistUser(ctx context.Context, repo kv.Repository, user models.User) error {
	data, err := json.Marshal(user)
	if err != nil {
		return fmt.Errorf("failed to encode user: %w", err)
	}
	return repo.Set(ctx, keyUser, data)
}
