package factory

import (
	"context"
	"testing"

	"elderly/config"
	"elderly/pkg/payment/types"

	"github.com/stretchr/testify/assert"
)

func TestNewGatewayRejectsUnknownProvider(t *testing.T) {
	_, err := NewGateway(context.Background(), types.Provider("unionpay"), config.PaymentConfig{})
	assert.Error(t, err)
}

func TestNewGatewaysSkipsUnconfigured(t *testing.T) {
	gateways := NewGateways(context.Background(), config.PaymentConfig{})
	assert.Empty(t, gateways)
}

func TestNewGatewayRejectsBadKey(t *testing.T) {
	_, err := NewGateway(context.Background(), types.ProviderAlipay, config.PaymentConfig{
		Alipay: config.AlipayConfig{AppID: "2021000000000000", PrivateKey: "not-a-key"},
	})
	assert.Error(t, err)
}
