/*
Package redis 提供 Redis 连接和操作的工具包

 1. 连接池管理
 2. 超时控制
 3. 并发安全
*/
package redis

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"elderly/pkg/logger"

	redis "github.com/redis/go-redis/v9"
)

// 关键配置常量
const (
	// DefaultPoolSize Redis 连接池大小
	DefaultPoolSize = 100
	// DefaultTimeout 默认操作超时时间
	DefaultTimeout = 5 * time.Second
	// DefaultMinIdleConns 最小空闲连接数
	DefaultMinIdleConns = 10
	// DefaultMaxRetries 最大重试次数
	DefaultMaxRetries = 3
	// DefaultIdleTimeout 空闲超时
	DefaultIdleTimeout = 5 * time.Minute
)

// RedisClient Redis 客户端封装
type RedisClient struct {
	Client  *redis.Client
	Context context.Context
	Prefix  string
}

// RedisConfig Redis 配置结构
type RedisConfig struct {
	Address      string
	Username     string
	Password     string
	DB           int
	Prefix       string
	PoolSize     int
	MinIdleConns int
	Timeout      time.Duration
}

var (
	once sync.Once
	// Redis 全局实例，未配置 Redis 时为 nil
	Redis *RedisClient
)

/* 🔄 连接管理相关方法 */

// ConnectRedis 初始化全局 Redis 连接
func ConnectRedis(address, username, password string, db int, prefix string) error {
	var err error
	once.Do(func() {
		var client *RedisClient
		client, err = NewClient(RedisConfig{
			Address:      address,
			Username:     username,
			Password:     password,
			DB:           db,
			Prefix:       prefix,
			PoolSize:     DefaultPoolSize,
			MinIdleConns: DefaultMinIdleConns,
			Timeout:      DefaultTimeout,
		})
		if err == nil {
			Redis = client
		}
	})
	return err
}

// NewClient 创建新的 Redis 客户端
func NewClient(config RedisConfig) (*RedisClient, error) {
	rds := &RedisClient{
		Context: context.Background(),
		Prefix:  config.Prefix,
	}

	rds.Client = redis.NewClient(&redis.Options{
		Addr:         config.Address,
		Username:     config.Username,
		Password:     config.Password,
		DB:           config.DB,
		PoolSize:     config.PoolSize,     // 连接池大小
		MinIdleConns: config.MinIdleConns, // 最小空闲连接数

		// 连接池配置
		PoolTimeout:     config.Timeout,
		ConnMaxIdleTime: DefaultIdleTimeout,
		ConnMaxLifetime: 24 * time.Hour,

		// 读写超时
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,

		// 重试策略
		MaxRetries:      DefaultMaxRetries,
		MinRetryBackoff: 8 * time.Millisecond,
		MaxRetryBackoff: 512 * time.Millisecond,
	})

	// 测试连接
	if err := rds.Ping(); err != nil {
		return nil, fmt.Errorf("redis 连接失败: %w", err)
	}

	return rds, nil
}

/* 🔍 健康检查方法 */

// Ping 测试 Redis 连接
func (rds *RedisClient) Ping() error {
	ctx, cancel := context.WithTimeout(rds.Context, DefaultTimeout)
	defer cancel()

	_, err := rds.Client.Ping(ctx).Result()
	return err
}

/* 📝 数据操作方法 */

// Key 拼接带前缀的键
func (rds *RedisClient) Key(parts ...string) string {
	key := rds.Prefix
	for _, p := range parts {
		if key == "" {
			key = p
			continue
		}
		key += ":" + p
	}
	return key
}

// Set 存储键值对
func (rds *RedisClient) Set(ctx context.Context, key string, value interface{}, expiration time.Duration) error {
	ctx, cancel := context.WithTimeout(ctx, DefaultTimeout)
	defer cancel()

	if err := rds.Client.Set(ctx, key, value, expiration).Err(); err != nil {
		logger.ErrorString("Redis", "Set", err.Error())
		return err
	}
	return nil
}

// Get 获取键值，键不存在时返回 ok=false
func (rds *RedisClient) Get(ctx context.Context, key string) (string, bool, error) {
	ctx, cancel := context.WithTimeout(ctx, DefaultTimeout)
	defer cancel()

	result, err := rds.Client.Get(ctx, key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", false, nil
		}
		logger.ErrorString("Redis", "Get", err.Error())
		return "", false, err
	}
	return result, true, nil
}

// Del 删除键
func (rds *RedisClient) Del(ctx context.Context, keys ...string) error {
	ctx, cancel := context.WithTimeout(ctx, DefaultTimeout)
	defer cancel()

	if err := rds.Client.Del(ctx, keys...).Err(); err != nil {
		logger.ErrorString("Redis", "Del", err.Error())
		return err
	}
	return nil
}
