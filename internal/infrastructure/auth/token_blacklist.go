package auth

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"sync"
	"time"

	"github.com/ledgerflow/backend/internal/infrastructure/config"
	"github.com/redis/go-redis/v9"
)

// TokenBlacklist revokes tokens before they expire. Single tokens are
// revoked by jti on logout; every token of a subject issued up to a point in
// time is revoked on password change.
type TokenBlacklist interface {
	AddToBlacklist(ctx context.Context, jti string, ttl time.Duration) error
	IsBlacklisted(ctx context.Context, jti string) (bool, error)
	AddUserTokensToBlacklist(ctx context.Context, subject string, ttl time.Duration) error
	IsUserTokenInvalidated(ctx context.Context, subject string, issuedAt time.Time) (bool, error)
	Close() error
}

const blacklistKeyPrefix = "ledgerflow:token:blacklist:"

// RedisTokenBlacklist keeps revocations in Redis so they survive restarts
// and are shared between instances.
type RedisTokenBlacklist struct {
	client *redis.Client
	now    func() time.Time
}

// NewRedisTokenBlacklist connects to Redis and verifies the connection
func NewRedisTokenBlacklist(ctx context.Context, cfg config.RedisConfig) (*RedisTokenBlacklist, error) {
	client := redis.NewClient(&redis.Options{
		Addr:         cfg.Addr(),
		Password:     cfg.Password,
		DB:           cfg.DB,
		PoolSize:     10,
		MinIdleConns: 2,
		MaxRetries:   3,
		DialTimeout:  5 * time.Second,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
	})

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("connect to redis for token blacklist: %w", err)
	}

	return NewRedisTokenBlacklistWithClient(client), nil
}

// NewRedisTokenBlacklistWithClient wraps an existing client
func NewRedisTokenBlacklistWithClient(client *redis.Client) *RedisTokenBlacklist {
	return &RedisTokenBlacklist{client: client, now: time.Now}
}

func jtiKey(jti string) string         { return blacklistKeyPrefix + "jti:" + jti }
func subjectKey(subject string) string { return blacklistKeyPrefix + "subject:" + subject }

// AddToBlacklist revokes one token until its natural expiry
func (b *RedisTokenBlacklist) AddToBlacklist(ctx context.Context, jti string, ttl time.Duration) error {
	if ttl <= 0 {
		return nil
	}
	if err := b.client.Set(ctx, jtiKey(jti), "1", ttl).Err(); err != nil {
		return fmt.Errorf("add token to blacklist: %w", err)
	}
	return nil
}

// IsBlacklisted reports whether a token was revoked
func (b *RedisTokenBlacklist) IsBlacklisted(ctx context.Context, jti string) (bool, error) {
	n, err := b.client.Exists(ctx, jtiKey(jti)).Result()
	if err != nil {
		return false, fmt.Errorf("check token blacklist: %w", err)
	}
	return n > 0, nil
}

// AddUserTokensToBlacklist records now as the subject's cut-off. The entry
// lives as long as the longest token that could predate it.
func (b *RedisTokenBlacklist) AddUserTokensToBlacklist(ctx context.Context, subject string, ttl time.Duration) error {
	cutoff := b.now().UnixMilli()
	if err := b.client.Set(ctx, subjectKey(subject), cutoff, ttl).Err(); err != nil {
		return fmt.Errorf("invalidate subject tokens: %w", err)
	}
	return nil
}

// IsUserTokenInvalidated reports whether a token was issued at or before the
// subject's cut-off
func (b *RedisTokenBlacklist) IsUserTokenInvalidated(ctx context.Context, subject string, issuedAt time.Time) (bool, error) {
	raw, err := b.client.Get(ctx, subjectKey(subject)).Result()
	if errors.Is(err, redis.Nil) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("check subject invalidation: %w", err)
	}

	cutoff, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return false, fmt.Errorf("parse invalidation timestamp %q: %w", raw, err)
	}
	return issuedAt.UnixMilli() <= cutoff, nil
}

// Close closes the Redis client
func (b *RedisTokenBlacklist) Close() error {
	return b.client.Close()
}

var _ TokenBlacklist = (*RedisTokenBlacklist)(nil)

// InMemoryTokenBlacklist keeps revocations in process memory. Revocations
// are lost on restart and not shared between instances.
type InMemoryTokenBlacklist struct {
	mu       sync.Mutex
	jtis     map[string]time.Time // jti -> entry expiry
	subjects map[string]cutoff
	now      func() time.Time
}

type cutoff struct {
	at      time.Time
	expires time.Time
}

// NewInMemoryTokenBlacklist creates an empty in-memory blacklist
func NewInMemoryTokenBlacklist() *InMemoryTokenBlacklist {
	return &InMemoryTokenBlacklist{
		jtis:     make(map[string]time.Time),
		subjects: make(map[string]cutoff),
		now:      time.Now,
	}
}

// AddToBlacklist revokes one token until its natural expiry
func (b *InMemoryTokenBlacklist) AddToBlacklist(_ context.Context, jti string, ttl time.Duration) error {
	if ttl <= 0 {
		return nil
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	b.jtis[jti] = b.now().Add(ttl)
	return nil
}

// IsBlacklisted reports whether a token was revoked, pruning stale entries
func (b *InMemoryTokenBlacklist) IsBlacklisted(_ context.Context, jti string) (bool, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	expires, ok := b.jtis[jti]
	if !ok {
		return false, nil
	}
	if b.now().After(expires) {
		delete(b.jtis, jti)
		return false, nil
	}
	return true, nil
}

// AddUserTokensToBlacklist records now as the subject's cut-off
func (b *InMemoryTokenBlacklist) AddUserTokensToBlacklist(_ context.Context, subject string, ttl time.Duration) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	now := b.now()
	b.subjects[subject] = cutoff{at: now, expires: now.Add(ttl)}
	return nil
}

// IsUserTokenInvalidated reports whether a token was issued at or before the
// subject's cut-off
func (b *InMemoryTokenBlacklist) IsUserTokenInvalidated(_ context.Context, subject string, issuedAt time.Time) (bool, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	c, ok := b.subjects[subject]
	if !ok {
		return false, nil
	}
	if b.now().After(c.expires) {
		delete(b.subjects, subject)
		return false, nil
	}
	return issuedAt.UnixMilli() <= c.at.UnixMilli(), nil
}

// Close is a no-op
func (b *InMemoryTokenBlacklist) Close() error { return nil }

var _ TokenBlacklist = (*InMemoryTokenBlacklist)(nil)
