// Package baidu 百度短语音识别标准版接口封装
package baidu

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"elderly/pkg/apperr"
	"elderly/pkg/logger"

	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"
)

// Client 语音识别客户端
type Client struct {
	cfg    Config
	http   *resty.Client
	tokens TokenCache
}

// NewClient 创建识别客户端，tokens 为 nil 时每次识别都重新获取令牌
func NewClient(cfg Config, tokens TokenCache) *Client {
	cfg.applyDefaults()

	// 识别接口不做自动重试
	client := resty.New().
		SetTimeout(cfg.Timeout).
		SetRetryCount(0)

	return &Client{
		cfg:    cfg,
		http:   client,
		tokens: tokens,
	}
}

// LegacyErrors 是否以文本形式返回识别错误
func (c *Client) LegacyErrors() bool {
	return c.cfg.LegacyErrors
}

// Recognize 识别音频并返回文本。
// 旧版模式下识别失败不会返回错误，而是返回以“识别失败：”或“识别异常：”开头的文本。
func (c *Client) Recognize(ctx context.Context, audio []byte, opts Options) (string, error) {
	text, err := c.Transcribe(ctx, audio, opts)
	if err == nil {
		return text, nil
	}
	if !c.cfg.LegacyErrors {
		return "", err
	}

	var perr *ProviderError
	if errors.As(err, &perr) {
		return FailedPrefix + perr.Message, nil
	}
	return ExceptionPrefix + err.Error(), nil
}

// Transcribe 调用识别接口，任何失败都以 ExternalServiceError 返回
func (c *Client) Transcribe(ctx context.Context, audio []byte, opts Options) (string, error) {
	token, err := c.accessToken(ctx)
	if err != nil {
		return "", err
	}

	devPID := opts.DevPID
	if devPID == 0 {
		devPID = c.cfg.DevPID
	}

	format := DefaultFormat
	if c.cfg.FormatMode == FormatDetect {
		format = FormatForFilename(opts.Filename)
	}

	req := asrRequest{
		Format:  format,
		Rate:    c.cfg.Rate,
		Channel: DefaultChannel,
		CUID:    c.cfg.CUID,
		Token:   token,
		Speech:  base64.StdEncoding.EncodeToString(audio),
		Len:     len(audio),
		DevPID:  devPID,
	}

	logger.Info("Voice", zap.String("action", "recognize"),
		zap.Int("size", len(audio)), zap.String("format", format), zap.Int("dev_pid", devPID))

	resp, err := c.http.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		Post(c.cfg.ASRURL)
	if err != nil {
		return "", apperr.Wrap(apperr.ExternalServiceError, err, "语音识别请求失败: "+err.Error())
	}

	logger.Debug("Voice", zap.Int("status", resp.StatusCode()), zap.String("body", resp.String()))

	var result asrResponse
	if err := json.Unmarshal(resp.Body(), &result); err != nil {
		return "", apperr.Wrap(apperr.ExternalServiceError, err,
			fmt.Sprintf("语音识别响应解析失败(HTTP %d)", resp.StatusCode()))
	}

	if result.ErrNo != 0 {
		logger.WarnString("Voice", "Recognize", fmt.Sprintf("err_no=%d err_msg=%s", result.ErrNo, result.ErrMsg))
		if result.ErrNo == errNoTokenInvalid && c.tokens != nil {
			// 令牌失效，下次请求重新获取
			if derr := c.tokens.Delete(ctx); derr != nil {
				logger.LogWarnIf(derr)
			}
		}
		return "", apperr.Wrap(apperr.ExternalServiceError,
			&ProviderError{Code: result.ErrNo, Message: result.ErrMsg}, result.ErrMsg)
	}

	if len(result.Result) == 0 {
		return "", nil
	}
	return result.Result[0], nil
}

// accessToken 获取访问令牌，优先使用缓存
func (c *Client) accessToken(ctx context.Context) (string, error) {
	if c.tokens != nil {
		token, ok, err := c.tokens.Get(ctx)
		if err != nil {
			logger.LogWarnIf(err)
		} else if ok {
			return token, nil
		}
	}

	resp, err := c.http.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"grant_type":    "client_credentials",
			"client_id":     c.cfg.APIKey,
			"client_secret": c.cfg.SecretKey,
		}).
		Post(c.cfg.TokenURL)
	if err != nil {
		return "", apperr.Wrap(apperr.ExternalServiceError, err, "获取访问令牌失败: "+err.Error())
	}

	var token tokenResponse
	if err := json.Unmarshal(resp.Body(), &token); err != nil {
		return "", apperr.Wrap(apperr.ExternalServiceError, err, "访问令牌响应解析失败")
	}
	if token.AccessToken == "" {
		msg := token.ErrorDescription
		if msg == "" {
			msg = fmt.Sprintf("HTTP %d", resp.StatusCode())
		}
		logger.ErrorString("Voice", "Token", msg)
		return "", apperr.New(apperr.ExternalServiceError, "获取访问令牌失败："+msg)
	}

	if c.tokens != nil {
		if err := c.tokens.Set(ctx, token.AccessToken, tokenTTL(token.ExpiresIn)); err != nil {
			logger.LogWarnIf(err)
		}
	}
	return token.AccessToken, nil
}

// tokenTTL 令牌缓存时间，比实际有效期提前一小时过期
func tokenTTL(expiresIn int64) time.Duration {
	if expiresIn <= 0 {
		return time.Hour
	}
	ttl := time.Duration(expiresIn)*time.Second - time.Hour
	if ttl <= 0 {
		ttl = time.Duration(expiresIn) * time.Second / 2
	}
	return ttl
}
