package baidu

import (
	"context"
	"sync"
	"time"

	"elderly/pkg/redis"
)

// TokenCache 访问令牌缓存
type TokenCache interface {
	Get(ctx context.Context) (string, bool, error)
	Set(ctx context.Context, token string, ttl time.Duration) error
	Delete(ctx context.Context) error
}

// RedisTokenCache 多实例共享的令牌缓存
type RedisTokenCache struct {
	rds *redis.RedisClient
	key string
}

// NewRedisTokenCache 键为 <prefix>:baidu:token
func NewRedisTokenCache(rds *redis.RedisClient) *RedisTokenCache {
	return &RedisTokenCache{rds: rds, key: rds.Key("baidu", "token")}
}

func (c *RedisTokenCache) Get(ctx context.Context) (string, bool, error) {
	return c.rds.Get(ctx, c.key)
}

func (c *RedisTokenCache) Set(ctx context.Context, token string, ttl time.Duration) error {
	return c.rds.Set(ctx, c.key, token, ttl)
}

func (c *RedisTokenCache) Delete(ctx context.Context) error {
	return c.rds.Del(ctx, c.key)
}

// MemoryTokenCache 单实例进程内缓存，未配置 Redis 时使用
type MemoryTokenCache struct {
	mu        sync.Mutex
	token     string
	expiresAt time.Time
	now       func() time.Time
}

// NewMemoryTokenCache 创建进程内缓存
func NewMemoryTokenCache() *MemoryTokenCache {
	return &MemoryTokenCache{now: time.Now}
}

func (c *MemoryTokenCache) Get(_ context.Context) (string, bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.token == "" || !c.now().Before(c.expiresAt) {
		return "", false, nil
	}
	return c.token, true, nil
}

func (c *MemoryTokenCache) Set(_ context.Context, token string, ttl time.Duration) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.token = token
	c.expiresAt = c.now().Add(ttl)
	return nil
}

func (c *MemoryTokenCache) Delete(_ context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.token = ""
	c.expiresAt = time.Time{}
	return nil
}
