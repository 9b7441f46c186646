package routes

import (
	"elderly/app/http/controllers/api/v1/payment"
	"elderly/app/http/controllers/api/v1/taxi"
	"elderly/app/http/controllers/api/v1/user"
	"elderly/app/http/controllers/api/v1/voice"
	"elderly/app/http/middlewares"
	"elderly/pkg/config"

	"github.com/gin-gonic/gin"
)

// 路由限流配置
const (
	// 🌍 全局限流默认值：每小时每IP 30000 请求，可通过 API_RATE_LIMIT 覆盖
	GlobalRateLimit = "30000-H"
	// 🎙️ 语音识别、语音缴费限流：每分钟每IP 60 请求，调用百度接口有配额
	VoiceRateLimit = "60-M"
	// 💰 发起支付限流：每分钟每IP 20 请求
	PrepayRateLimit = "20-M"
)

// Controllers 路由依赖的控制器
type Controllers struct {
	Payment *payment.PaymentController
	Voice   *voice.VoiceController
	User    *user.UserController
	Taxi    *taxi.TaxiController
}

// RegisterAPIRoutes 注册所有 API 路由
func RegisterAPIRoutes(r *gin.Engine, ctrl *Controllers) {
	api := r.Group("")

	api.Use(
		middlewares.SecurityHeaders(),
		middlewares.Cors(),
		middlewares.LimitIP(config.GetString("app.api_rate_limit", GlobalRateLimit)),
	)

	// 💧 生活缴费
	paymentRoutes := api.Group("/payment")
	{
		pc := ctrl.Payment

		// GET /payment/unpaid-items?user_id=
		paymentRoutes.GET("/unpaid-items", pc.UnpaidItems)
		// GET /payment/history?user_id=
		paymentRoutes.GET("/history", pc.History)
		// GET /payment/voice-summary?user_id=
		paymentRoutes.GET("/voice-summary", pc.VoiceSummary)

		// POST /payment/voice-pay
		paymentRoutes.POST("/voice-pay",
			middlewares.LimitPerRoute(VoiceRateLimit),
			pc.VoicePay,
		)

		// POST /payment/mark-paid?item_id=
		paymentRoutes.POST("/mark-paid", pc.MarkPaid)

		// POST /payment/prepay
		paymentRoutes.POST("/prepay",
			middlewares.LimitPerRoute(PrepayRateLimit),
			pc.Prepay,
		)

		// 缴费项目管理
		paymentRoutes.GET("/items/:item_id", pc.Show)
		paymentRoutes.POST("/items", pc.Store)
		paymentRoutes.PUT("/items/:item_id", pc.Update)
		paymentRoutes.DELETE("/items/:item_id", pc.Destroy)
	}

	// 🎙️ 语音识别
	voiceRoutes := api.Group("/voice")
	{
		// POST /voice/recognize  multipart: file
		voiceRoutes.POST("/recognize",
			middlewares.LimitPerRoute(VoiceRateLimit),
			ctrl.Voice.Recognize,
		)
	}

	// 👤 用户
	userRoutes := api.Group("/users")
	{
		userRoutes.GET("/:user_id", ctrl.User.Show)
		userRoutes.POST("", ctrl.User.Save)
	}

	// 🚕 打车
	taxiRoutes := api.Group("/taxi/orders")
	{
		tc := ctrl.Taxi

		taxiRoutes.POST("", tc.Store)
		taxiRoutes.GET("", tc.Index)
		taxiRoutes.GET("/:order_id", tc.Show)
		taxiRoutes.POST("/:order_id/cancel", tc.Cancel)
	}
}
