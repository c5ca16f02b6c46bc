// Package redis persists the ledger document under a single key in Redis.
package redis

import (
	"context"
	"errors"
	"fmt"

	redislib "github.com/redis/go-redis/v9"

	"cascosjhc/ledger/internal/storage"
)

type Slot struct {
	client *redislib.Client
	key    string
}

func New(addr string, password string, db int, key string) *Slot {
	client := redislib.NewClient(&redislib.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})

	return &Slot{client: client, key: key}
}

func (s *Slot) Ping(ctx context.Context) error {
	return s.client.Ping(ctx).Err()
}

func (s *Slot) Load(ctx context.Context) ([]byte, error) {
	raw, err := s.client.Get(ctx, s.key).Bytes()
	if errors.Is(err, redislib.Nil) {
		return nil, fmt.Errorf("%s: %w", s.key, storage.ErrNoState)
	}
	if err != nil {
		return nil, err
	}
	return raw, nil
}

func (s *Slot) Save(ctx context.Context, doc []byte) error {
	// No TTL: the ledger document is permanent state, not a cache entry.
	return s.client.Set(ctx, s.key, doc, 0).Err()
}

func (s *Slot) Close() error {
	return s.client.Close()
}
