// Package config 站点配置信息
package config

import "elderly/pkg/config"

func init() {
	config.Add("app", func() map[string]interface{} {
		return map[string]interface{}{

			// 应用名称
			"name": config.Env("APP_NAME", "ElderlyAssistant"),

			// 当前环境，用以区分多环境，一般为 local, stage, production, testing
			"env": config.Env("APP_ENV", "production"),

			// 是否进入调试模式
			"debug": config.Env("APP_DEBUG", false),

			// 应用服务端口
			"port": config.Env("APP_PORT", "8080"),

			// 雪花算法节点编号，多实例部署时每个实例必须不同
			"node_id": config.Env("APP_NODE_ID", 1),

			// 设置时区，日志记录里会使用到
			"timezone": config.Env("TIMEZONE", "Asia/Shanghai"),

			// 手机号加密密钥（16、24 或 32 字节），生产环境必须配置
			"phone_key": config.Env("APP_PHONE_KEY", ""),

			// 全局限流，格式见 pkg/limiter
			"api_rate_limit": config.Env("API_RATE_LIMIT", "30000-H"),
		}
	})
}
