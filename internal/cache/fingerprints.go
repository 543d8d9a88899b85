// cache — fast-path кэш отпечатков URL поверх Redis.
//
// Кэш — только оптимизация горячего пути дедупликации: промах или ошибка
// кэша ничего не ломают, авторитетный ответ всегда даёт уникальное
// ограничение БД на articles.url_hash.
package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// FingerprintCache — минимальный контракт кэша отпечатков.
type FingerprintCache interface {
	// Lookup возвращает id статьи и признак наличия отпечатка в кэше.
	Lookup(ctx context.Context, hash string) (uuid.UUID, bool, error)
	// Remember сохраняет пару отпечаток -> id статьи с TTL.
	Remember(ctx context.Context, hash string, articleID uuid.UUID) error
	// Close закрывает клиент.
	Close() error
}

// RedisCache — реализация FingerprintCache поверх go-redis.
type RedisCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedis создаёт клиент и проверяет связность.
func NewRedis(ctx context.Context, addr, password string, db int, ttl time.Duration) (*RedisCache, error) {
	const op = "cache.NewRedis"

	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if ttl <= 0 {
		ttl = 24 * time.Hour
	}

	return &RedisCache{client: client, ttl: ttl}, nil
}

func key(hash string) string {
	return "fp:" + hash
}

// Lookup возвращает id статьи по отпечатку; (Nil, false, nil) при промахе.
func (c *RedisCache) Lookup(ctx context.Context, hash string) (uuid.UUID, bool, error) {
	const op = "cache.Lookup"

	val, err := c.client.Get(ctx, key(hash)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return uuid.Nil, false, nil
		}

		return uuid.Nil, false, fmt.Errorf("%s: %w", op, err)
	}

	id, err := uuid.Parse(val)
	if err != nil {
		// Битое значение в кэше — считаем промахом.
		return uuid.Nil, false, nil
	}

	return id, true, nil
}

// Remember сохраняет отпечаток с TTL.
func (c *RedisCache) Remember(ctx context.Context, hash string, articleID uuid.UUID) error {
	const op = "cache.Remember"

	if err := c.client.Set(ctx, key(hash), articleID.String(), c.ttl).Err(); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

// Close закрывает клиент Redis.
func (c *RedisCache) Close() error {
	return c.client.Close()
}

var _ FingerprintCache = (*RedisCache)(nil)
