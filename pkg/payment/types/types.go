// Package types 支付渠道公共类型
package types

import (
	"context"
	"time"
)

// Provider 支付提供商类型
type Provider string

const (
	ProviderWechat Provider = "wechat"
	ProviderAlipay Provider = "alipay"
)

// Valid 是否为支持的支付渠道
func (p Provider) Valid() bool {
	return p == ProviderWechat || p == ProviderAlipay
}

// DefaultExpire 预支付订单有效期
const DefaultExpire = 30 * time.Minute

// PrepayRequest 预下单参数
type PrepayRequest struct {
	OrderNo     string // 商户订单号
	Description string // 商品描述
	AmountFen   int64  // 金额（分）
	OpenID      string // 微信 JSAPI 支付必填
	ReturnURL   string // 支付宝支付完成后跳转地址，可选
}

// PrepayResult 预下单结果，小程序据此拉起支付
type PrepayResult struct {
	Provider   Provider  `json:"provider"`
	OrderNo    string    `json:"orderNo"`
	PrepayID   string    `json:"prepayId,omitempty"`
	AppID      string    `json:"appId,omitempty"`
	TimeStamp  string    `json:"timeStamp,omitempty"`
	NonceStr   string    `json:"nonceStr,omitempty"`
	PackageStr string    `json:"packageStr,omitempty"`
	SignType   string    `json:"signType,omitempty"`
	PaySign    string    `json:"paySign,omitempty"`
	PaymentURL string    `json:"paymentUrl,omitempty"`
	ExpireAt   time.Time `json:"expireAt"`
}

// Gateway 支付渠道
type Gateway interface {
	Provider() Provider
	Prepay(ctx context.Context, req *PrepayRequest) (*PrepayResult, error)
}
