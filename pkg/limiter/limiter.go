// Package limiter 处理限流逻辑
package limiter

import (
	"fmt"
	"strings"

	"elderly/pkg/logger"
	"elderly/pkg/redis"

	"github.com/gin-gonic/gin"
	limiterlib "github.com/ulule/limiter/v3"
	sredis "github.com/ulule/limiter/v3/drivers/store/redis"
)

// Rate 定义限流速率
type Rate struct {
	Rate  float64 // 每秒请求数
	Limit int64   // 周期内请求上限
}

// ParseLimit 解析限流配置字符串
// 支持的格式: "5-S"、"10-M"、"1000-H"、"2000-D"
func ParseLimit(limit string) (*Rate, error) {
	r, err := limiterlib.NewRateFromFormatted(limit)
	if err != nil {
		return nil, fmt.Errorf("invalid limit format: %w", err)
	}
	return &Rate{
		Rate:  float64(r.Limit) / r.Period.Seconds(),
		Limit: r.Limit,
	}, nil
}

// GetKeyIP 获取 Limitor 的 Key，IP
func GetKeyIP(c *gin.Context) string {
	return c.ClientIP()
}

// GetKeyRouteWithIP Limitor 的 Key，路由+IP，针对单个路由做限流
func GetKeyRouteWithIP(c *gin.Context) string {
	return routeToKeyString(c.FullPath()) + c.ClientIP()
}

// Distributed 是否可以使用 Redis 做多实例共享的限流
func Distributed() bool {
	return redis.Redis != nil
}

// CheckRate 检测请求是否超额，计数存储在 Redis，formatted 格式同 ParseLimit
func CheckRate(c *gin.Context, key string, formatted string) (limiterlib.Context, error) {

	// 实例化依赖的 limiter 包的 limiter.Rate 对象
	var context limiterlib.Context
	rate, err := limiterlib.NewRateFromFormatted(formatted)
	if err != nil {
		logger.LogIf(err)
		return context, err
	}

	// 初始化存储，使用我们程序里共用的 redis.Redis 对象
	store, err := sredis.NewStoreWithOptions(redis.Redis.Client, limiterlib.StoreOptions{
		// 为 limiter 设置前缀，保持 redis 里数据的整洁
		Prefix: redis.Redis.Key("limiter"),
	})
	if err != nil {
		logger.LogIf(err)
		return context, err
	}

	// 使用上面的初始化的 limiter.Rate 对象和存储对象
	limiterObj := limiterlib.New(store, rate)

	// 获取限流的结果
	onceKey := "limiter-once:" + key
	if c.GetBool(onceKey) {
		// Peek() 取结果，不增加访问次数
		return limiterObj.Peek(c, key)
	}

	// 确保多个路由组里对同一个键限流时，只增加一次访问次数，不同键各自计数
	c.Set(onceKey, true)

	// Get() 取结果且增加访问次数
	return limiterObj.Get(c, key)
}

// routeToKeyString 辅助方法，将 URL 中的 / 格式为 -
func routeToKeyString(routeName string) string {
	routeName = strings.ReplaceAll(routeName, "/", "-")
	routeName = strings.ReplaceAll(routeName, ":", "_")
	return routeName
}
