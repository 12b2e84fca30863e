package cache

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

// TTL 상수 정의
const (
	TTLLocale  = 30 * time.Minute // 사용자 언어 설정 (DB가 원본)
	TTLDefault = 5 * time.Minute  // 기본값
)

// 캐시 키 접두사
const (
	PrefixLocale = "locale:"
)

// ErrMiss is returned when a key is absent
var ErrMiss = errors.New("cache miss")

// Service Redis 캐시 서비스 인터페이스.
// The database row stays authoritative; every getter may miss and callers
// must fall back to the repository.
type Service interface {
	GetLocale(ctx context.Context, username string) (string, error)
	SetLocale(ctx context.Context, username, language string) error
	InvalidateLocale(ctx context.Context, username string) error
}

type service struct {
	client *redis.Client
}

// NewService creates a redis-backed cache service
func NewService(client *redis.Client) Service {
	return &service{client: client}
}

// GetLocale returns the cached language code for a user
func (s *service) GetLocale(ctx context.Context, username string) (string, error) {
	val, err := s.client.Get(ctx, PrefixLocale+username).Result()
	if errors.Is(err, redis.Nil) {
		return "", ErrMiss
	}
	if err != nil {
		return "", err
	}
	return val, nil
}

// SetLocale caches the language code for a user
func (s *service) SetLocale(ctx context.Context, username, language string) error {
	return s.client.Set(ctx, PrefixLocale+username, language, TTLLocale).Err()
}

// InvalidateLocale drops the cached language code
func (s *service) InvalidateLocale(ctx context.Context, username string) error {
	return s.client.Del(ctx, PrefixLocale+username).Err()
}
