package bootstrap

import (
	"fmt"

	"elderly/pkg/config"
	"elderly/pkg/logger"
	"elderly/pkg/redis"
)

// SetupRedis 初始化 Redis，未配置 host 时跳过，相关功能降级为进程内实现
func SetupRedis() {
	host := config.GetString("redis.host")
	if host == "" {
		logger.WarnString("Redis", "Setup", "未配置 REDIS_HOST，令牌缓存、语音缴费会话和限流使用进程内存储")
		return
	}

	err := redis.ConnectRedis(
		fmt.Sprintf("%v:%v", host, config.GetString("redis.port")),
		config.GetString("redis.username"),
		config.GetString("redis.password"),
		config.GetInt("redis.database"),
		config.GetString("redis.prefix"),
	)
	if err != nil {
		// 不阻断启动，按未配置处理
		logger.ErrorString("Redis", "Setup", err.Error())
		return
	}
	logger.InfoString("Redis", "Setup", "Redis 连接成功")
}
