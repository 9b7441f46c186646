package bootstrap

import (
	"context"
	"crypto/rand"
	"errors"
	"time"

	"elderly/app/http/controllers/api/v1/payment"
	"elderly/app/http/controllers/api/v1/taxi"
	"elderly/app/http/controllers/api/v1/user"
	"elderly/app/http/controllers/api/v1/voice"
	userModel "elderly/app/models/user"
	"elderly/app/repositories"
	"elderly/app/services"
	btsConfig "elderly/config"
	"elderly/pkg/app"
	"elderly/pkg/baidu"
	"elderly/pkg/config"
	"elderly/pkg/logger"
	"elderly/pkg/payment/factory"
	"elderly/pkg/redis"
	"elderly/routes"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// SetupVoice 初始化百度语音识别客户端
func SetupVoice() *baidu.Client {
	cfg := baidu.Config{
		APIKey:       config.GetString("voice.api_key"),
		SecretKey:    config.GetString("voice.secret_key"),
		TokenURL:     config.GetString("voice.token_url"),
		ASRURL:       config.GetString("voice.asr_url"),
		CUID:         config.GetString("voice.cuid"),
		Timeout:      time.Duration(config.GetInt("voice.timeout")) * time.Second,
		LegacyErrors: config.GetBool("voice.legacy_errors"),
		FormatMode:   config.GetString("voice.format_mode"),
	}
	if cfg.APIKey == "" || cfg.SecretKey == "" {
		logger.WarnString("Voice", "Setup", "未配置 BAIDU_VOICE_API_KEY 或 BAIDU_VOICE_SECRET_KEY，语音识别将不可用")
	}

	var tokens baidu.TokenCache
	if config.GetBool("voice.token_cache") {
		if redis.Redis != nil {
			tokens = baidu.NewRedisTokenCache(redis.Redis)
		} else {
			tokens = baidu.NewMemoryTokenCache()
		}
	}

	logger.Info("Voice",
		zap.Bool("legacyErrors", cfg.LegacyErrors),
		zap.String("formatMode", cfg.FormatMode),
		zap.Bool("tokenCache", tokens != nil),
	)
	return baidu.NewClient(cfg, tokens)
}

// setupPhoneCipher 生产环境必须配置 APP_PHONE_KEY，其他环境缺省时使用进程内随机密钥
func setupPhoneCipher(key string, production bool) (*userModel.PhoneCipher, error) {
	if key != "" {
		return userModel.NewPhoneCipher([]byte(key))
	}
	if production {
		return nil, errors.New("生产环境未配置 APP_PHONE_KEY，无法加密手机号")
	}

	logger.WarnString("User", "Setup", "未配置 APP_PHONE_KEY，使用临时随机密钥，重启后已保存的手机号无法解密")
	random := make([]byte, 32)
	if _, err := rand.Read(random); err != nil {
		return nil, err
	}
	return userModel.NewPhoneCipher(random)
}

// SetupControllers 组装仓库、服务和控制器
func SetupControllers(ctx context.Context, db *gorm.DB) (*routes.Controllers, error) {
	cipher, err := setupPhoneCipher(config.GetString("app.phone_key"), app.IsProduction())
	if err != nil {
		return nil, err
	}

	voiceClient := SetupVoice()

	users := services.NewUserService(repositories.NewUserRepository(db), cipher)
	payments := services.NewPaymentService(
		repositories.NewPaymentRepository(db),
		factory.NewGateways(ctx, btsConfig.LoadPaymentConfig()),
	)

	var sessions services.SessionStore
	if redis.Redis != nil {
		sessions = services.NewRedisSessionStore(redis.Redis)
	}
	voicePay := services.NewVoicePayService(
		config.GetString("payment.voice_pay_mode"),
		payments,
		voiceClient,
		sessions,
		users,
	)
	logger.InfoString("VoicePay", "Setup", "语音缴费模式："+voicePay.Mode())

	return &routes.Controllers{
		Payment: payment.NewPaymentController(payments, voicePay),
		Voice:   voice.NewVoiceController(voiceClient),
		User:    user.NewUserController(users),
		Taxi:    taxi.NewTaxiController(services.NewTaxiService(repositories.NewTaxiOrderRepository(db))),
	}, nil
}
