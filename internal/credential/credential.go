package credential

import (
	"crypto/subtle" // Constant-time comparison
	"errors"        // Error values
	"fmt"           // Error formatting

	"golang.org/x/crypto/bcrypt" // Password hashing
)

// Scheme seals credentials before they are stored and matches a presented
// credential against the stored form.
type Scheme interface {
	Seal(credential string) (string, error)
	Match(stored, presented string) bool
}

// Plain stores credentials as given and compares them for equality
type Plain struct{}

// Seal returns the credential unchanged
func (Plain) Seal(credential string) (string, error) {
	return credential, nil
}

// Match reports whether presented equals stored
func (Plain) Match(stored, presented string) bool {
	return subtle.ConstantTimeCompare([]byte(stored), []byte(presented)) == 1
}

// Bcrypt stores a bcrypt hash of the credential
type Bcrypt struct {
	Cost int // Hash cost, bcrypt.DefaultCost when zero
}

// Seal hashes the credential
func (b Bcrypt) Seal(credential string) (string, error) {
	cost := b.Cost
	if cost == 0 {
		cost = bcrypt.DefaultCost
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(credential), cost)
	if err != nil {
		return "", fmt.Errorf("bcrypt: %w", err)
	}
	return string(hash), nil
}

// Match compares presented against the stored hash
func (Bcrypt) Match(stored, presented string) bool {
	return bcrypt.CompareHashAndPassword([]byte(stored), []byte(presented)) == nil
}

// ErrUnknownScheme is returned by Parse for names it does not recognise
var ErrUnknownScheme = errors.New("unknown credential scheme")

// Parse maps a configuration value onto a Scheme. Empty selects Plain.
func Parse(name string) (Scheme, error) {
	switch name {
	case "", "plain":
		return Plain{}, nil
	case "bcrypt":
		return Bcrypt{}, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownScheme, name)
}
