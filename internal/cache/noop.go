package cache

import (
	"context"
	"fmt"
	"time"
)

// NewNoop is used when no REDIS_ADDR is configured; every read misses.
func NewNoop(serviceName string) Cache {
	return noopCache{serviceName: serviceName}
}

type noopCache struct {
	serviceName string
}

func (n noopCache) Set(ctx context.Context, key string, value any, ttl time.Duration) error {
	return nil
}

func (n noopCache) Get(ctx context.Context, key string) (string, error) {
	return "", nil
}

func (n noopCache) GenerateKey(operation, key string) string {
	return fmt.Sprintf("%s:%s:%s", n.serviceName, operation, key)
}
