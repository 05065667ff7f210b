package store

import (
	"context" // Request-scoped cancellation
	"errors"  // Error matching
	"fmt"     // Key formatting, error wrapping
	"strconv" // Hash value parsing
	"strings" // Script error matching

	"github.com/redis/go-redis/v9" // Redis client

	"trivia_backend/internal/credential" // Credential sealing
	"trivia_backend/internal/domain"     // Account model
)

// createScript inserts the account hash unless it exists. Returns the new id,
// or 0 when the username is taken.
var createScript = redis.NewScript(`
if redis.call('EXISTS', KEYS[1]) == 1 then
	return 0
end
local id = redis.call('INCR', KEYS[2])
redis.call('HSET', KEYS[1],
	'id', id,
	'username', ARGV[1],
	'credential', ARGV[2],
	'wages', ARGV[3],
	'games_played', 0,
	'correct_answers', 0,
	'incorrect_answers', 0)
return id
`)

// addScript increments one hash field of an existing account and returns the
// new value as a string. Returns nil when the account does not exist and an
// OUT_OF_RANGE error when the sum leaves int64. Redis refuses an overflowing
// HINCRBY; servers that wrap instead are caught by the sign check and restored.
var addScript = redis.NewScript(`
if redis.call('EXISTS', KEYS[1]) == 0 then
	return false
end
local before = redis.call('HGET', KEYS[1], ARGV[1])
local res = redis.pcall('HINCRBY', KEYS[1], ARGV[1], ARGV[2])
if type(res) == 'table' and res.err then
	if string.find(res.err, 'overflow') then
		return {err = 'OUT_OF_RANGE ' .. res.err}
	end
	return res
end
local after = redis.call('HGET', KEYS[1], ARGV[1])
local delta = tonumber(ARGV[2])
if (delta > 0 and tonumber(after) < tonumber(before)) or (delta < 0 and tonumber(after) > tonumber(before)) then
	redis.call('HSET', KEYS[1], ARGV[1], before)
	return {err = 'OUT_OF_RANGE increment would overflow'}
end
return after
`)

// outOfRangePrefix marks the overflow error raised by addScript
const outOfRangePrefix = "OUT_OF_RANGE"

// RedisStore keeps each account as a Redis hash under <prefix>:account:<username>
type RedisStore struct {
	client redis.UniversalClient // Redis client
	prefix string                // Key namespace
	scheme credential.Scheme     // Credential sealing and matching
}

// Ensure RedisStore implements the interface
var _ AccountStore = (*RedisStore)(nil)

// NewRedisStore creates a store over an existing Redis client
func NewRedisStore(client redis.UniversalClient, prefix string, scheme credential.Scheme) *RedisStore {
	return &RedisStore{client: client, prefix: prefix, scheme: scheme}
}

// Create inserts a new account and returns its id
func (s *RedisStore) Create(ctx context.Context, username, cred string) (uint, error) {
	sealed, err := s.scheme.Seal(cred)
	if err != nil {
		return 0, fmt.Errorf("seal credential: %w", err)
	}
	id, err := createScript.Run(ctx, s.client,
		[]string{s.accountKey(username), s.seqKey()},
		username, sealed, domain.DefaultWages,
	).Int64()
	if err != nil {
		return 0, fmt.Errorf("create account: %w", err)
	}
	if id == 0 {
		return 0, ErrDuplicateUsername
	}
	return uint(id), nil
}

// FindByUsername returns the account with exactly this username
func (s *RedisStore) FindByUsername(ctx context.Context, username string) (*domain.Account, error) {
	fields, err := s.client.HGetAll(ctx, s.accountKey(username)).Result()
	if err != nil {
		return nil, fmt.Errorf("find account: %w", err)
	}
	if len(fields) == 0 {
		return nil, ErrAccountNotFound
	}
	return decodeAccount(fields)
}

// FindByCredentials returns the account when both username and credential match
func (s *RedisStore) FindByCredentials(ctx context.Context, username, cred string) (*domain.Account, error) {
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
func (s *RedisStore) ApplyWagesDelta(ctx context.Context, username string, delta int64) (int64, error) {
	return s.add(ctx, username, domain.FieldWages, delta)
}

// IncrementCounter adds one to a counter
func (s *RedisStore) IncrementCounter(ctx context.Context, username string, field domain.Field) (int64, error) {
	if !field.Counter() {
		return 0, fmt.Errorf("%w: %q", ErrUnknownField, field)
	}
	return s.add(ctx, username, field, 1)
}

// ReadField reads one numeric hash field
func (s *RedisStore) ReadField(ctx context.Context, username string, field domain.Field) (int64, error) {
	if !field.Valid() {
		return 0, fmt.Errorf("%w: %q", ErrUnknownField, field)
	}
	value, err := s.client.HGet(ctx, s.accountKey(username), field.Column()).Int64()
	if errors.Is(err, redis.Nil) {
		return 0, ErrAccountNotFound
	}
	if err != nil {
		return 0, fmt.Errorf("read %s: %w", field, err)
	}
	return value, nil
}

func (s *RedisStore) add(ctx context.Context, username string, field domain.Field, delta int64) (int64, error) {
	value, err := addScript.Run(ctx, s.client, []string{s.accountKey(username)}, field.Column(), delta).Int64()
	if errors.Is(err, redis.Nil) {
		return 0, ErrAccountNotFound
	}
	if err != nil {
		if strings.Contains(err.Error(), outOfRangePrefix) {
			return 0, ErrOutOfRange
		}
		return 0, fmt.Errorf("update %s: %w", field, err)
	}
	return value, nil
}

func (s *RedisStore) accountKey(username string) string {
	return fmt.Sprintf("%s:account:%s", s.prefix, username)
}

func (s *RedisStore) seqKey() string {
	return fmt.Sprintf("%s:seq:account", s.prefix)
}

// decodeAccount parses the hash written by createScript
func decodeAccount(fields map[string]string) (*domain.Account, error) {
	id, err := strconv.ParseUint(fields["id"], 10, 64)
	if err != nil {
		return nil, fmt.Errorf("decode account id: %w", err)
	}
	account := &domain.Account{
		ID:         uint(id),
		Username:   fields["username"],
		Credential: fields["credential"],
	}
	ints := map[domain.Field]*int64{
		domain.FieldWages:            &account.Wages,
		domain.FieldGamesPlayed:      &account.GamesPlayed,
		domain.FieldCorrectAnswers:   &account.CorrectAnswers,
		domain.FieldIncorrectAnswers: &account.IncorrectAnswers,
	}
	for f, dst := range ints {
		v, err := strconv.ParseInt(fields[f.Column()], 10, 64)
		if err != nil {
			return nil, fmt.Errorf("decode account %s: %w", f, err)
		}
		*dst = v
	}
	return account, nil
}
