package config

import (
	"elderly/pkg/config"
)

func init() {
	config.Add("redis", func() map[string]interface{} {
		return map[string]interface{}{
			// 为空时不启用 Redis，令牌缓存、语音缴费会话和分布式限流随之降级
			"host":     config.Env("REDIS_HOST", ""),
			"port":     config.Env("REDIS_PORT", "6379"),
			"username": config.Env("REDIS_USERNAME", ""),
			"password": config.Env("REDIS_PASSWORD", ""),

			// 业务类存储使用 1 号库（令牌缓存、会话、限流）
			"database": config.Env("REDIS_MAIN_DB", 1),

			// 键前缀
			"prefix": config.Env("REDIS_PREFIX", "elderly"),
		}
	})
}
