package account

import (
	"context" // Request-scoped cancellation
	"errors"  // Sentinel matching
	"strings" // Input trimming

	"github.com/sirupsen/logrus" // Logrus for structured logging

	"trivia_backend/internal/apperr"  // Typed application errors
	"trivia_backend/internal/domain"  // Account model
	"trivia_backend/internal/metrics" // Prometheus counters
	"trivia_backend/internal/store"   // Account persistence
	"trivia_backend/internal/wager"   // Wager decision
)

// Config wires the service dependencies
type Config struct {
	Store store.AccountStore
}

// Service orchestrates account operations: validate input, resolve the
// account, apply one store operation.
type Service struct {
	store store.AccountStore
}

// NewService creates an account service
func NewService(c Config) *Service {
	return &Service{
		store: c.Store,
	}
}

// Register creates an account and returns the normalized username
func (s *Service) Register(ctx context.Context, username, credential string) (string, error) {
	username = strings.TrimSpace(username)
	credential = strings.TrimSpace(credential)
	if username == "" || credential == "" {
		metrics.Registrations.WithLabelValues(metrics.OutcomeRejected).Inc()
		return "", apperr.New(apperr.CodeInvalidArgument, apperr.WithMessage("username and password required"))
	}

	id, err := s.store.Create(ctx, username, credential)
	if err != nil {
		if errors.Is(err, store.ErrDuplicateUsername) {
			metrics.Registrations.WithLabelValues(metrics.OutcomeRejected).Inc()
			return "", apperr.New(apperr.CodeAlreadyExists, apperr.WithMessage("username already exists"), apperr.WithCause(err))
		}
		metrics.Registrations.WithLabelValues(metrics.OutcomeError).Inc()
		return "", s.internal("register", username, err)
	}

	metrics.Registrations.WithLabelValues(metrics.OutcomeOK).Inc()
	logrus.WithFields(logrus.Fields{
		"user_id":  id,
		"username": username,
	}).Info("account registered")
	return username, nil
}

// Login returns the account whose username and credential both match
func (s *Service) Login(ctx context.Context, username, credential string) (*domain.Account, error) {
	username = strings.TrimSpace(username)
	credential = strings.TrimSpace(credential)
	if username == "" || credential == "" {
		metrics.Logins.WithLabelValues(metrics.OutcomeRejected).Inc()
		return nil, apperr.New(apperr.CodeInvalidArgument, apperr.WithMessage("username and password required"))
	}

	account, err := s.store.FindByCredentials(ctx, username, credential)
	if err != nil {
		if errors.Is(err, store.ErrAccountNotFound) {
			metrics.Logins.WithLabelValues(metrics.OutcomeRejected).Inc()
			logrus.WithField("username", username).Warn("login rejected")
			return nil, apperr.New(apperr.CodeUnauthenticated, apperr.WithMessage("invalid credentials"), apperr.WithCause(err))
		}
		metrics.Logins.WithLabelValues(metrics.OutcomeError).Inc()
		return nil, s.internal("login", username, err)
	}

	metrics.Logins.WithLabelValues(metrics.OutcomeOK).Inc()
	logrus.WithFields(logrus.Fields{
		"user_id":  account.ID,
		"username": account.Username,
	}).Info("login ok")
	return account, nil
}

// Wages returns the current balance
func (s *Service) Wages(ctx context.Context, username string) (int64, error) {
	return s.read(ctx, username, domain.FieldWages)
}

// GamesPlayed returns the games played counter
func (s *Service) GamesPlayed(ctx context.Context, username string) (int64, error) {
	return s.read(ctx, username, domain.FieldGamesPlayed)
}

// CorrectAnswers returns the correct answers counter
func (s *Service) CorrectAnswers(ctx context.Context, username string) (int64, error) {
	return s.read(ctx, username, domain.FieldCorrectAnswers)
}

// IncorrectAnswers returns the incorrect answers counter
func (s *Service) IncorrectAnswers(ctx context.Context, username string) (int64, error) {
	return s.read(ctx, username, domain.FieldIncorrectAnswers)
}

// AdjustWages adds delta to the balance and returns the new balance and the delta applied
func (s *Service) AdjustWages(ctx context.Context, username string, delta int64) (int64, int64, error) {
	username, err := normalize(username)
	if err != nil {
		return 0, 0, err
	}

	wages, err := s.store.ApplyWagesDelta(ctx, username, delta)
	if err != nil {
		return 0, 0, s.storeError(domain.FieldWages, username, err)
	}

	metrics.AccountMutations.WithLabelValues(string(domain.FieldWages)).Inc()
	logrus.WithFields(logrus.Fields{
		"username": username,
		"delta":    delta,
		"wages":    wages,
	}).Info("wages adjusted")
	return wages, delta, nil
}

// IncrementGamesPlayed adds one to games played
func (s *Service) IncrementGamesPlayed(ctx context.Context, username string) (int64, error) {
	return s.increment(ctx, username, domain.FieldGamesPlayed)
}

// IncrementCorrectAnswers adds one to correct answers
func (s *Service) IncrementCorrectAnswers(ctx context.Context, username string) (int64, error) {
	return s.increment(ctx, username, domain.FieldCorrectAnswers)
}

// IncrementIncorrectAnswers adds one to incorrect answers
func (s *Service) IncrementIncorrectAnswers(ctx context.Context, username string) (int64, error) {
	return s.increment(ctx, username, domain.FieldIncorrectAnswers)
}

// CheckWager validates amount against a fresh read of the balance
func (s *Service) CheckWager(ctx context.Context, username string, amount int64) (wager.Verdict, error) {
	wages, err := s.read(ctx, username, domain.FieldWages)
	if err != nil {
		return wager.Verdict{}, err
	}

	verdict := wager.Validate(wages, amount)
	label := metrics.OutcomeOK
	if !verdict.Accepted {
		label = metrics.OutcomeRejected
	}
	metrics.WagerChecks.WithLabelValues(label).Inc()
	logrus.WithFields(logrus.Fields{
		"username":  strings.TrimSpace(username),
		"wages":     wages,
		"requested": amount,
		"accepted":  verdict.Accepted,
	}).Debug("wager checked")
	return verdict, nil
}

func (s *Service) read(ctx context.Context, username string, field domain.Field) (int64, error) {
	username, err := normalize(username)
	if err != nil {
		return 0, err
	}

	value, err := s.store.ReadField(ctx, username, field)
	if err != nil {
		return 0, s.storeError(field, username, err)
	}
	return value, nil
}

func (s *Service) increment(ctx context.Context, username string, field domain.Field) (int64, error) {
	username, err := normalize(username)
	if err != nil {
		return 0, err
	}

	value, err := s.store.IncrementCounter(ctx, username, field)
	if err != nil {
		return 0, s.storeError(field, username, err)
	}

	metrics.AccountMutations.WithLabelValues(string(field)).Inc()
	logrus.WithFields(logrus.Fields{
		"username": username,
		"field":    field,
		"value":    value,
	}).Info("counter incremented")
	return value, nil
}

// storeError maps store sentinels onto application errors
func (s *Service) storeError(field domain.Field, username string, err error) error {
	switch {
	case errors.Is(err, store.ErrAccountNotFound):
		return apperr.New(apperr.CodeNotFound, apperr.WithMessage("user not found"), apperr.WithCause(err))
	case errors.Is(err, store.ErrOutOfRange):
		return apperr.New(apperr.CodeInvalidArgument, apperr.WithMessagef("%s would overflow", field), apperr.WithCause(err))
	}
	return s.internal(string(field), username, err)
}

// internal logs an unexpected failure and hides its text from callers
func (s *Service) internal(op, username string, err error) error {
	logrus.WithFields(logrus.Fields{
		"op":       op,
		"username": username,
	}).WithError(err).Error("account operation failed")
	return apperr.Internal(err)
}

func normalize(username string) (string, error) {
	username = strings.TrimSpace(username)
	if username == "" {
		return "", apperr.New(apperr.CodeInvalidArgument, apperr.WithMessage("username required"))
	}
	return username, nil
}
