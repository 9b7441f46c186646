// Package alipay 支付宝手机网站支付下单
package alipay

import (
	"context"
	"errors"
	"fmt"
	"time"

	"elderly/config"
	"elderly/pkg/logger"
	"elderly/pkg/payment/types"
	"elderly/pkg/payment/utils"

	"github.com/smartwalle/alipay/v3"
)

// Gateway 支付宝渠道
type Gateway struct {
	client    *alipay.Client
	notifyURL string
	returnURL string
}

// New 创建支付宝渠道
func New(cfg config.AlipayConfig) (*Gateway, error) {
	if cfg.AppID == "" {
		return nil, errors.New("alipay is not configured")
	}

	client, err := alipay.New(cfg.AppID, cfg.PrivateKey, cfg.IsProduction)
	if err != nil {
		return nil, fmt.Errorf("create alipay client error: %w", err)
	}

	if err := client.LoadAliPayPublicKey(cfg.PublicKey); err != nil {
		return nil, fmt.Errorf("load alipay public key error: %w", err)
	}

	return &Gateway{
		client:    client,
		notifyURL: cfg.NotifyURL,
		returnURL: cfg.ReturnURL,
	}, nil
}

// Provider 渠道标识
func (g *Gateway) Provider() types.Provider {
	return types.ProviderAlipay
}

// Prepay 生成手机网站支付链接
func (g *Gateway) Prepay(_ context.Context, req *types.PrepayRequest) (*types.PrepayResult, error) {
	if err := utils.ValidateAmount(req.AmountFen); err != nil {
		return nil, err
	}

	expireAt := time.Now().Add(types.DefaultExpire)

	returnURL := req.ReturnURL
	if returnURL == "" {
		returnURL = g.returnURL
	}

	trade := alipay.TradeWapPay{}
	trade.NotifyURL = g.notifyURL
	trade.ReturnURL = returnURL
	trade.Subject = req.Description
	trade.OutTradeNo = req.OrderNo
	trade.TotalAmount = utils.FenToYuan(req.AmountFen)
	trade.ProductCode = "QUICK_WAP_WAY"
	trade.TimeoutExpress = "30m"

	url, err := g.client.TradeWapPay(trade)
	if err != nil {
		return nil, fmt.Errorf("create alipay payment error: %w", err)
	}

	logger.InfoString("Payment", "AlipayPrepay", fmt.Sprintf("订单:%s 金额:%s元", req.OrderNo, trade.TotalAmount))

	return &types.PrepayResult{
		Provider:   types.ProviderAlipay,
		OrderNo:    req.OrderNo,
		PaymentURL: url.String(),
		ExpireAt:   expireAt,
	}, nil
}
