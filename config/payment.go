package config

import "elderly/pkg/config"

// PaymentConfig 支付配置
type PaymentConfig struct {
	Wechat WechatConfig
	Alipay AlipayConfig
}

// WechatConfig 微信支付配置
type WechatConfig struct {
	AppID      string
	MchID      string
	SerialNo   string
	PrivateKey string
	APIv3Key   string
	NotifyURL  string
}

// AlipayConfig 支付宝配置
type AlipayConfig struct {
	AppID        string
	PrivateKey   string
	PublicKey    string
	NotifyURL    string
	ReturnURL    string
	IsProduction bool
}

func init() {
	config.Add("payment", func() map[string]interface{} {
		return map[string]interface{}{
			// 语音缴费模式：mock 返回固定话术，dialog 启用多轮对话
			"voice_pay_mode": config.Env("PAYMENT_VOICE_PAY_MODE", "mock"),

			"wechat": map[string]interface{}{
				"app_id":      config.Env("WECHAT_PAY_APP_ID", ""),
				"mch_id":      config.Env("WECHAT_PAY_MCH_ID", ""),
				"serial_no":   config.Env("WECHAT_PAY_SERIAL_NO", ""),
				"private_key": config.Env("WECHAT_PAY_PRIVATE_KEY", ""),
				"api_v3_key":  config.Env("WECHAT_PAY_API_V3_KEY", ""),
				"notify_url":  config.Env("WECHAT_PAY_NOTIFY_URL", ""),
			},

			"alipay": map[string]interface{}{
				"app_id":        config.Env("ALIPAY_APP_ID", ""),
				"private_key":   config.Env("ALIPAY_PRIVATE_KEY", ""),
				"public_key":    config.Env("ALIPAY_PUBLIC_KEY", ""),
				"notify_url":    config.Env("ALIPAY_NOTIFY_URL", ""),
				"return_url":    config.Env("ALIPAY_RETURN_URL", ""),
				"is_production": config.Env("ALIPAY_IS_PRODUCTION", false),
			},
		}
	})
}

// LoadPaymentConfig 读取支付配置
func LoadPaymentConfig() PaymentConfig {
	return PaymentConfig{
		Wechat: WechatConfig{
			AppID:      config.GetString("payment.wechat.app_id"),
			MchID:      config.GetString("payment.wechat.mch_id"),
			SerialNo:   config.GetString("payment.wechat.serial_no"),
			PrivateKey: config.GetString("payment.wechat.private_key"),
			APIv3Key:   config.GetString("payment.wechat.api_v3_key"),
			NotifyURL:  config.GetString("payment.wechat.notify_url"),
		},
		Alipay: AlipayConfig{
			AppID:        config.GetString("payment.alipay.app_id"),
			PrivateKey:   config.GetString("payment.alipay.private_key"),
			PublicKey:    config.GetString("payment.alipay.public_key"),
			NotifyURL:    config.GetString("payment.alipay.notify_url"),
			ReturnURL:    config.GetString("payment.alipay.return_url"),
			IsProduction: config.GetBool("payment.alipay.is_production"),
		},
	}
}

// Initialize 触发本包的 init 方法加载
func Initialize() {}
