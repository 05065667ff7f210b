package store

import (
	"context" // Request-scoped cancellation
	"errors"  // Error matching
	"fmt"     // Error wrapping
	"math"    // Overflow bounds

	"gorm.io/gorm" // GORM ORM library

	"trivia_backend/internal/credential" // Credential sealing
	"trivia_backend/internal/domain"     // Account model
)

// GormStore keeps accounts in the accounts table
type GormStore struct {
	db     *gorm.DB          // Database handle
	scheme credential.Scheme // Credential sealing and matching
}

// Ensure GormStore implements the interface
var _ AccountStore = (*GormStore)(nil)

// NewGormStore creates a store over an open gorm connection
func NewGormStore(db *gorm.DB, scheme credential.Scheme) *GormStore {
	return &GormStore{db: db, scheme: scheme}
}

// Create inserts a new account and returns its id
func (s *GormStore) Create(ctx context.Context, username, cred string) (uint, error) {
	sealed, err := s.scheme.Seal(cred)
	if err != nil {
		return 0, fmt.Errorf("seal credential: %w", err)
	}
	account := domain.Account{
		Username:   username,            // Identity key
		Credential: sealed,              // Stored credential
		Wages:      domain.DefaultWages, // Starting balance
	}
	if err := s.db.WithContext(ctx).Create(&account).Error; err != nil {
		// The unique index is the source of truth; drivers that do not translate
		// the violation are caught by the existence check.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return 0, ErrDuplicateUsername
		}
		if found, _ := exists(s.db.WithContext(ctx), username); found {
			return 0, ErrDuplicateUsername
		}
		return 0, fmt.Errorf("create account: %w", err)
	}
	return account.ID, nil
}

// FindByUsername returns the account with exactly this username
func (s *GormStore) FindByUsername(ctx context.Context, username string) (*domain.Account, error) {
	var account domain.Account
	if err := s.db.WithContext(ctx).Where("username = ?", username).First(&account).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAccountNotFound
		}
		return nil, fmt.Errorf("find account: %w", err)
	}
	return &account, nil
}

// FindByCredentials returns the account when both username and credential match
func (s *GormStore) FindByCredentials(ctx context.Context, username, cred string) (*domain.Account, error) {
	account, err := s.FindByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	if !s.scheme.Match(account.Credential, cred) {
		return nil, ErrAccountNotFound
	}
	return account, nil
}

// ApplyWagesDelta adds delta to wages
func (s *GormStore) ApplyWagesDelta(ctx context.Context, username string, delta int64) (int64, error) {
	return s.add(ctx, username, domain.FieldWages, delta)
}

// IncrementCounter adds one to a counter
func (s *GormStore) IncrementCounter(ctx context.Context, username string, field domain.Field) (int64, error) {
	if !field.Counter() {
		return 0, fmt.Errorf("%w: %q", ErrUnknownField, field)
	}
	return s.add(ctx, username, field, 1)
}

// ReadField reads one numeric column
func (s *GormStore) ReadField(ctx context.Context, username string, field domain.Field) (int64, error) {
	if !field.Valid() {
		return 0, fmt.Errorf("%w: %q", ErrUnknownField, field)
	}
	value, err := readColumn(s.db.WithContext(ctx), username, field)
	if err != nil {
		if errors.Is(err, ErrAccountNotFound) {
			return 0, err
		}
		return 0, fmt.Errorf("read %s: %w", field, err)
	}
	return value, nil
}

// add applies `col = col + delta` and reads the column back inside the same
// transaction. The row stays locked by the UPDATE until commit, so the value
// returned is the one this delta produced. The WHERE bound keeps the sum inside
// int64; a matched username that fails the bound is ErrOutOfRange.
func (s *GormStore) add(ctx context.Context, username string, field domain.Field, delta int64) (int64, error) {
	var value int64
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		q := tx.Model(&domain.Account{}).Where("username = ?", username)
		switch {
		case delta > 0:
			q = q.Where(field.Column()+" <= ?", math.MaxInt64-delta)
		case delta < 0:
			q = q.Where(field.Column()+" >= ?", math.MinInt64-delta)
		}
		res := q.Update(field.Column(), gorm.Expr(field.Column()+" + ?", delta))
		if res.Error != nil {
			return res.Error // Return error to rollback
		}
		if res.RowsAffected == 0 {
			found, err := exists(tx, username)
			if err != nil {
				return err
			}
			if found {
				return ErrOutOfRange
			}
			return ErrAccountNotFound
		}
		v, err := readColumn(tx, username, field)
		if err != nil {
			return err // Return error to rollback
		}
		value = v
		return nil // Commit transaction
	})
	if err != nil {
		if errors.Is(err, ErrAccountNotFound) || errors.Is(err, ErrOutOfRange) {
			return 0, err
		}
		return 0, fmt.Errorf("update %s: %w", field, err)
	}
	return value, nil
}

// exists reports whether a row with this username is present
func exists(db *gorm.DB, username string) (bool, error) {
	var n int64
	if err := db.Model(&domain.Account{}).Where("username = ?", username).Count(&n).Error; err != nil {
		return false, err
	}
	return n > 0, nil
}

// readColumn plucks one column for a username, ErrAccountNotFound when no row matches
func readColumn(db *gorm.DB, username string, field domain.Field) (int64, error) {
	var values []int64
	err := db.Model(&domain.Account{}).
		Where("username = ?", username).
		Pluck(field.Column(), &values).Error
	if err != nil {
		return 0, err
	}
	if len(values) == 0 {
		return 0, ErrAccountNotFound
	}
	return values[0], nil
}
