package factory

import (
	"context"
	"fmt"

	"elderly/config"
	"elderly/pkg/logger"
	"elderly/pkg/payment/alipay"
	"elderly/pkg/payment/types"
	"elderly/pkg/payment/wechat"
)

// NewGateway 创建指定渠道
func NewGateway(ctx context.Context, provider types.Provider, cfg config.PaymentConfig) (types.Gateway, error) {
	switch provider {
	case types.ProviderWechat:
		return wechat.New(ctx, cfg.Wechat)
	case types.ProviderAlipay:
		return alipay.New(cfg.Alipay)
	default:
		return nil, fmt.Errorf("unsupported payment provider: %s", provider)
	}
}

// NewGateways 创建所有已配置的渠道，未配置或初始化失败的渠道跳过
func NewGateways(ctx context.Context, cfg config.PaymentConfig) map[types.Provider]types.Gateway {
	gateways := make(map[types.Provider]types.Gateway)
	for _, provider := range []types.Provider{types.ProviderWechat, types.ProviderAlipay} {
		gw, err := NewGateway(ctx, provider, cfg)
		if err != nil {
			logger.WarnString("Payment", string(provider), err.Error())
			continue
		}
		gateways[provider] = gw
	}
	return gateways
}
