// Package wechat 微信支付 JSAPI 下单
package wechat

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"elderly/config"
	"elderly/pkg/logger"
	"elderly/pkg/payment/types"
	"elderly/pkg/payment/utils"

	"github.com/wechatpay-apiv3/wechatpay-go/core"
	"github.com/wechatpay-apiv3/wechatpay-go/core/option"
	"github.com/wechatpay-apiv3/wechatpay-go/services/payments/jsapi"
	wxutils "github.com/wechatpay-apiv3/wechatpay-go/utils"
)

// Gateway 微信支付渠道
type Gateway struct {
	client    *core.Client
	appID     string
	mchID     string
	notifyURL string
}

// New 创建微信支付渠道
func New(ctx context.Context, cfg config.WechatConfig) (*Gateway, error) {
	if cfg.AppID == "" || cfg.MchID == "" {
		return nil, errors.New("wechat pay is not configured")
	}

	// 1. 加载商户私钥
	mchPrivateKey, err := wxutils.LoadPrivateKey(cfg.PrivateKey)
	if err != nil {
		return nil, fmt.Errorf("load merchant private key error: %w", err)
	}

	// 2. 自动下载平台证书并验签
	opts := []core.ClientOption{
		option.WithWechatPayAutoAuthCipher(
			cfg.MchID,
			cfg.SerialNo,
			mchPrivateKey,
			cfg.APIv3Key,
		),
	}

	// 3. 创建客户端
	client, err := core.NewClient(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("create wechat pay client error: %w", err)
	}

	return &Gateway{
		client:    client,
		appID:     cfg.AppID,
		mchID:     cfg.MchID,
		notifyURL: cfg.NotifyURL,
	}, nil
}

// Provider 渠道标识
func (g *Gateway) Provider() types.Provider {
	return types.ProviderWechat
}

// Prepay JSAPI 预下单，返回小程序 wx.requestPayment 所需参数
func (g *Gateway) Prepay(ctx context.Context, req *types.PrepayRequest) (*types.PrepayResult, error) {
	if err := utils.ValidateAmount(req.AmountFen); err != nil {
		return nil, err
	}
	if req.OpenID == "" {
		return nil, errors.New("openid is required for jsapi payment")
	}

	expireAt := time.Now().Add(types.DefaultExpire)

	svc := jsapi.JsapiApiService{Client: g.client}
	resp, result, err := svc.PrepayWithRequestPayment(ctx, jsapi.PrepayRequest{
		Appid:       core.String(g.appID),
		Mchid:       core.String(g.mchID),
		Description: core.String(req.Description),
		OutTradeNo:  core.String(req.OrderNo),
		TimeExpire:  core.Time(expireAt),
		NotifyUrl:   core.String(g.notifyURL),
		Amount: &jsapi.Amount{
			Total:    core.Int64(req.AmountFen),
			Currency: core.String("CNY"),
		},
		Payer: &jsapi.Payer{
			Openid: core.String(req.OpenID),
		},
	})
	if err != nil {
		return nil, fmt.Errorf("create wechat payment error: %w", err)
	}
	if result != nil && result.Response.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("create wechat payment failed with status code: %d", result.Response.StatusCode)
	}

	logger.InfoString("Payment", "WechatPrepay", fmt.Sprintf("订单:%s 金额:%s元", req.OrderNo, utils.FenToYuan(req.AmountFen)))

	return &types.PrepayResult{
		Provider:   types.ProviderWechat,
		OrderNo:    req.OrderNo,
		PrepayID:   stringValue(resp.PrepayId),
		AppID:      stringValue(resp.Appid),
		TimeStamp:  stringValue(resp.TimeStamp),
		NonceStr:   stringValue(resp.NonceStr),
		PackageStr: stringValue(resp.Package),
		SignType:   stringValue(resp.SignType),
		PaySign:    stringValue(resp.PaySign),
		ExpireAt:   expireAt,
	}, nil
}

func stringValue(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
