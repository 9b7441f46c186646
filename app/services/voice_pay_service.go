package services

import (
	"context"
	"encoding/base64"
	"fmt"
	"strings"

	"elderly/app/models/payment"
	"elderly/pkg/app"
	"elderly/pkg/baidu"
	"elderly/pkg/logger"
	"elderly/pkg/payment/types"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// 语音缴费模式
const (
	VoicePayModeMock   = "mock"
	VoicePayModeDialog = "dialog"
)

// 下一步动作
const (
	ActionContinue = "continue"
	ActionComplete = "complete"
	ActionError    = "error"
)

const mockGreeting = "您好，请问需要缴纳什么费用？"

// Transcriber 语音转文字
type Transcriber interface {
	Transcribe(ctx context.Context, audio []byte, opts baidu.Options) (string, error)
}

// DialectLookup 查询用户方言偏好，查不到返回空字符串
type DialectLookup interface {
	Dialect(ctx context.Context, userID string) string
}

// VoicePayRequest 语音缴费请求
type VoicePayRequest struct {
	UserID    string `json:"userId"`
	AudioData string `json:"audioData"` // base64 音频
	SessionID string `json:"sessionId"` // 首次为空，多轮对话传上次返回的值
	Text      string `json:"text"`      // 已在端上识别的文本，非空时跳过语音识别
	OpenID    string `json:"openId"`    // 微信支付 openid
}

// PaymentOrder 小程序拉起支付所需参数
type PaymentOrder struct {
	TimeStamp  string `json:"timeStamp"`
	NonceStr   string `json:"nonceStr"`
	PackageStr string `json:"packageStr"`
	PaySign    string `json:"paySign"`
}

// VoicePayResponse 语音缴费响应
type VoicePayResponse struct {
	SessionID    string        `json:"sessionId"`
	ReplyText    string        `json:"replyText"`
	NeedTTS      bool          `json:"needTts"`
	NextAction   string        `json:"nextAction,omitempty"`
	PaymentOrder *PaymentOrder `json:"paymentOrder"`
}

// VoicePayService 语音缴费
type VoicePayService struct {
	mode        string
	payments    *PaymentService
	transcriber Transcriber
	sessions    SessionStore
	dialects    DialectLookup

	now       func() int64
	sessionID func() string
}

// NewVoicePayService 创建语音缴费服务，dialog 模式需要 transcriber 和 sessions
func NewVoicePayService(mode string, payments *PaymentService, transcriber Transcriber, sessions SessionStore, dialects DialectLookup) *VoicePayService {
	if mode != VoicePayModeDialog {
		mode = VoicePayModeMock
	}
	if sessions == nil {
		sessions = NewMemorySessionStore()
	}
	return &VoicePayService{
		mode:        mode,
		payments:    payments,
		transcriber: transcriber,
		sessions:    sessions,
		dialects:    dialects,
		now:         app.NowMillis,
		sessionID:   func() string { return "VOICE_PAY_SESSION_" + uuid.NewString() },
	}
}

// Mode 当前模式
func (s *VoicePayService) Mode() string {
	return s.mode
}

// Process 处理一轮语音输入
func (s *VoicePayService) Process(ctx context.Context, req *VoicePayRequest) *VoicePayResponse {
	if s.mode == VoicePayModeMock {
		return &VoicePayResponse{
			SessionID: fmt.Sprintf("SESSION_%d", s.now()),
			ReplyText: mockGreeting,
			NeedTTS:   true,
		}
	}

	text, ok := s.recognize(ctx, req)
	if !ok {
		return reply(req.SessionID, "抱歉，没有听清您说的话，请再说一遍", ActionError)
	}
	logger.Info("VoicePay", zap.String("userId", req.UserID), zap.String("text", text))

	intent := ExtractPaymentIntent(text)
	if req.SessionID == "" {
		return s.handleNewSession(ctx, req, intent)
	}
	return s.handleExistingSession(ctx, req, intent)
}

func (s *VoicePayService) recognize(ctx context.Context, req *VoicePayRequest) (string, bool) {
	if text := strings.TrimSpace(req.Text); text != "" {
		return text, true
	}
	if s.transcriber == nil || req.AudioData == "" {
		return "", false
	}

	audio, err := base64.StdEncoding.DecodeString(req.AudioData)
	if err != nil {
		logger.LogWarnIf(err)
		return "", false
	}

	opts := baidu.Options{}
	if s.dialects != nil {
		opts.DevPID = baidu.DevPIDForDialect(s.dialects.Dialect(ctx, req.UserID))
	}

	text, err := s.transcriber.Transcribe(ctx, audio, opts)
	if err != nil || strings.TrimSpace(text) == "" {
		logger.LogWarnIf(err)
		return "", false
	}
	return text, true
}

// handleNewSession 首次交互
func (s *VoicePayService) handleNewSession(ctx context.Context, req *VoicePayRequest, intent PaymentIntent) *VoicePayResponse {
	if !intent.IsPayment {
		return reply("", "我可以帮您缴纳水费、电费、网费、话费。请问您要缴哪一项？", ActionContinue)
	}

	items, err := s.payments.UnpaidItems(ctx, req.UserID)
	if err != nil {
		logger.LogIf(err)
		return reply("", "抱歉，系统出现了一点问题，请稍后再试", ActionError)
	}
	if len(items) == 0 {
		return reply("", "您当前没有待缴费用", ActionComplete)
	}

	if intent.PaymentType == "" {
		var b strings.Builder
		for i, item := range items {
			fmt.Fprintf(&b, "%d. %s，金额%s元；", i+1, item.ItemType, item.Amount.String())
		}
		return reply("", fmt.Sprintf("您有%d项待缴费用：%s请说出要缴纳的费用类型", len(items), b.String()), ActionContinue)
	}

	var matched *payment.PaymentItem
	for i := range items {
		if items[i].ItemType == intent.PaymentType {
			matched = &items[i]
			break
		}
	}
	if matched == nil {
		return reply("", fmt.Sprintf("没有找到%s的待缴费用。您当前待缴：%s", intent.PaymentType, unpaidSummary(items)), ActionContinue)
	}

	now := s.now()
	session := &VoicePaySession{
		SessionID:   s.sessionID(),
		UserID:      req.UserID,
		PaymentType: matched.ItemType,
		ItemID:      matched.ItemID,
		Amount:      matched.Amount,
		Status:      SessionWaitingConfirm,
		CreateTime:  now,
		ExpireTime:  now + SessionTTL.Milliseconds(),
	}
	if err := s.sessions.Save(ctx, session, SessionTTL); err != nil {
		logger.LogIf(err)
		return reply("", "抱歉，系统出现了一点问题，请稍后再试", ActionError)
	}

	return reply(session.SessionID,
		fmt.Sprintf("您要缴纳%s，金额%s元。请说“确认”继续支付，或说“取消”放弃", matched.ItemType, matched.Amount.String()),
		ActionContinue)
}

// handleExistingSession 多轮对话：确认或取消
func (s *VoicePayService) handleExistingSession(ctx context.Context, req *VoicePayRequest, intent PaymentIntent) *VoicePayResponse {
	session, ok, err := s.sessions.Get(ctx, req.SessionID)
	if err != nil {
		logger.LogIf(err)
	}
	if !ok || session.UserID != req.UserID {
		return reply(req.SessionID, "会话已过期，请重新发起支付", ActionComplete)
	}

	if session.Status != SessionWaitingConfirm {
		return reply(req.SessionID, "当前会话状态异常，请重新发起", ActionComplete)
	}

	if !intent.IsConfirm {
		session.Status = SessionCanceled
		s.updateSession(ctx, session)
		return reply(req.SessionID, "已取消支付。如需帮助，请随时对我说话", ActionComplete)
	}

	result, err := s.payments.Prepay(ctx, session.ItemID, types.ProviderWechat, req.OpenID)
	if err != nil {
		logger.LogWarnIf(err)
		return reply(req.SessionID, fmt.Sprintf("支付发起失败：%s，请稍后重试", err.Error()), ActionError)
	}

	session.Status = SessionCompleted
	s.updateSession(ctx, session)

	logger.InfoString("VoicePay", "Prepay", fmt.Sprintf("userId=%s type=%s amount=%s", req.UserID, session.PaymentType, session.Amount))

	resp := reply(req.SessionID,
		fmt.Sprintf("已为您发起%s支付，金额%s元，请在微信中完成支付", session.PaymentType, session.Amount.String()),
		ActionComplete)
	resp.PaymentOrder = &PaymentOrder{
		TimeStamp:  result.TimeStamp,
		NonceStr:   result.NonceStr,
		PackageStr: result.PackageStr,
		PaySign:    result.PaySign,
	}
	return resp
}

func (s *VoicePayService) updateSession(ctx context.Context, session *VoicePaySession) {
	if err := s.sessions.Save(ctx, session, SessionTTL); err != nil {
		logger.LogWarnIf(err)
	}
}

func reply(sessionID, text, action string) *VoicePayResponse {
	return &VoicePayResponse{
		SessionID:  sessionID,
		ReplyText:  text,
		NeedTTS:    true,
		NextAction: action,
	}
}

// unpaidSummary 水费（120.5元）、电费（80元）
func unpaidSummary(items []payment.PaymentItem) string {
	parts := make([]string, 0, len(items))
	for _, item := range items {
		parts = append(parts, fmt.Sprintf("%s（%s元）", item.ItemType, item.Amount.String()))
	}
	return strings.Join(parts, "、")
}
