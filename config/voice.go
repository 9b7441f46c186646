package config

import "elderly/pkg/config"

func init() {
	config.Add("voice", func() map[string]interface{} {
		return map[string]interface{}{
			// 百度语音识别
			"app_id":     config.Env("BAIDU_VOICE_APP_ID", ""),
			"api_key":    config.Env("BAIDU_VOICE_API_KEY", ""),
			"secret_key": config.Env("BAIDU_VOICE_SECRET_KEY", ""),

			"token_url": config.Env("BAIDU_VOICE_TOKEN_URL", "https://aip.baidubce.com/oauth/2.0/token"),
			"asr_url":   config.Env("BAIDU_VOICE_ASR_URL", "https://vop.baidu.com/server_api"),
			"cuid":      config.Env("BAIDU_VOICE_CUID", "elderly_assistant"),

			// 识别请求超时（秒）
			"timeout": config.Env("BAIDU_VOICE_TIMEOUT", 30),

			// 是否缓存访问令牌，需要 Redis
			"token_cache": config.Env("VOICE_TOKEN_CACHE", true),

			// 识别失败时是否以文本形式返回错误（兼容旧版小程序）
			"legacy_errors": config.Env("VOICE_LEGACY_ERRORS", true),

			// 音频格式：fixed 固定 pcm，detect 按文件扩展名识别
			"format_mode": config.Env("VOICE_FORMAT_MODE", "fixed"),
		}
	})
}
