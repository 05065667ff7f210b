package store

import (
	"context" // Request-scoped cancellation
	"errors"  // Sentinel errors

	"trivia_backend/internal/domain" // Account model
)

var (
	ErrAccountNotFound   = errors.New("account not found")       // Unknown username, or credential mismatch on lookup
	ErrDuplicateUsername = errors.New("username already exists") // Create on a taken username
	ErrUnknownField      = errors.New("unknown account field")   // Field outside the allowed set for the operation
	ErrOutOfRange        = errors.New("value out of range")      // Delta would overflow the 64-bit field
)

// AccountStore persists player accounts keyed by username. Mutations are
// atomic per account: concurrent deltas on the same username never lose an update.
type AccountStore interface {
	// Create inserts a new account with default wages and zero counters
	Create(ctx context.Context, username, credential string) (uint, error)
	// FindByUsername looks an account up by exact username
	FindByUsername(ctx context.Context, username string) (*domain.Account, error)
	// FindByCredentials returns ErrAccountNotFound for an unknown user and a wrong credential alike
	FindByCredentials(ctx context.Context, username, credential string) (*domain.Account, error)
	// ApplyWagesDelta adds delta to the balance and returns the resulting balance.
	// A delta that would overflow int64 fails with ErrOutOfRange and changes nothing.
	ApplyWagesDelta(ctx context.Context, username string, delta int64) (int64, error)
	// IncrementCounter adds one to a counter field and returns the resulting value
	IncrementCounter(ctx context.Context, username string, field domain.Field) (int64, error)
	// ReadField returns the current value of a numeric field
	ReadField(ctx context.Context, username string, field domain.Field) (int64, error)
}
