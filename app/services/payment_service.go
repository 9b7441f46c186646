// Package services 业务逻辑层，控制器只负责参数解析和响应输出
package services

import (
	"context"
	"fmt"
	"strings"

	"elderly/app/models/payment"
	"elderly/pkg/app"
	"elderly/pkg/apperr"
	"elderly/pkg/idgen"
	"elderly/pkg/logger"
	"elderly/pkg/payment/types"
	"elderly/pkg/payment/utils"
)

// 语音播报最多列出的条数
const summaryLimit = 3

// PaymentStore 缴费项目存储
type PaymentStore interface {
	ListByUser(ctx context.Context, userID string) ([]payment.PaymentItem, error)
	ListUnpaidByUser(ctx context.Context, userID string) ([]payment.PaymentItem, error)
	GetByID(ctx context.Context, itemID string) (*payment.PaymentItem, error)
	Insert(ctx context.Context, item *payment.PaymentItem) error
	UpdateByID(ctx context.Context, item *payment.PaymentItem) error
	DeleteByID(ctx context.Context, itemID string) (bool, error)
}

// PaymentService 生活缴费
type PaymentService struct {
	store    PaymentStore
	gateways map[types.Provider]types.Gateway

	now    func() int64
	nextID func() string
}

// NewPaymentService 创建缴费服务，gateways 可为空（不支持在线支付）
func NewPaymentService(store PaymentStore, gateways map[types.Provider]types.Gateway) *PaymentService {
	if gateways == nil {
		gateways = map[types.Provider]types.Gateway{}
	}
	return &PaymentService{
		store:    store,
		gateways: gateways,
		now:      app.NowMillis,
		nextID:   func() string { return idgen.WithPrefix(payment.ItemIDPrefix) },
	}
}

// ListUserItems 查询用户全部缴费项目，按创建时间倒序
func (s *PaymentService) ListUserItems(ctx context.Context, userID string) ([]payment.PaymentItem, error) {
	if strings.TrimSpace(userID) == "" {
		return nil, apperr.Invalid("用户ID不能为空")
	}

	items, err := s.store.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	logger.DebugString("Payment", "ListUserItems", fmt.Sprintf("userId=%s 查询到%d条缴费项目", userID, len(items)))
	return items, nil
}

// GetByID 查询单个缴费项目
func (s *PaymentService) GetByID(ctx context.Context, itemID string) (*payment.PaymentItem, error) {
	if strings.TrimSpace(itemID) == "" {
		return nil, apperr.Invalid("缴费项目ID不能为空")
	}
	return s.store.GetByID(ctx, itemID)
}

// Create 创建缴费项目，未指定 ID 和状态时自动生成
func (s *PaymentService) Create(ctx context.Context, item *payment.PaymentItem) error {
	if item.ItemID == "" {
		item.ItemID = s.nextID()
	}

	now := s.now()
	item.CreateTime = now
	item.UpdateTime = now

	if item.Status == "" {
		item.Status = payment.DeriveStatus(item.Amount)
	}

	return s.store.Insert(ctx, item)
}

// Update 全量更新缴费项目，未提供的创建时间和上次缴费时间沿用库中的值
func (s *PaymentService) Update(ctx context.Context, item *payment.PaymentItem) error {
	existing, err := s.GetByID(ctx, item.ItemID)
	if err != nil {
		return err
	}
	if item.CreateTime == 0 {
		item.CreateTime = existing.CreateTime
	}
	if item.LastPayTime == 0 {
		item.LastPayTime = existing.LastPayTime
	}
	item.UpdateTime = s.now()
	return s.store.UpdateByID(ctx, item)
}

// MarkPaid 标记为已缴清，原欠费金额不保留
func (s *PaymentService) MarkPaid(ctx context.Context, itemID string) (bool, error) {
	item, err := s.GetByID(ctx, itemID)
	if err != nil {
		return false, err
	}

	item.MarkSettled(s.now())

	if err := s.store.UpdateByID(ctx, item); err != nil {
		// 查询后被删除
		if apperr.Is(err, apperr.NotFound) {
			return false, nil
		}
		return false, err
	}

	logger.InfoString("Payment", "MarkPaid", "itemId="+itemID)
	return true, nil
}

// Delete 删除缴费项目
func (s *PaymentService) Delete(ctx context.Context, itemID string) (bool, error) {
	if strings.TrimSpace(itemID) == "" {
		return false, apperr.Invalid("缴费项目ID不能为空")
	}
	return s.store.DeleteByID(ctx, itemID)
}

// UnpaidItems 查询用户欠费项目
func (s *PaymentService) UnpaidItems(ctx context.Context, userID string) ([]payment.PaymentItem, error) {
	if strings.TrimSpace(userID) == "" {
		return nil, apperr.Invalid("用户ID不能为空")
	}
	return s.store.ListUnpaidByUser(ctx, userID)
}

// VoiceSummary 生成待缴费用的语音播报文本
func (s *PaymentService) VoiceSummary(ctx context.Context, userID string) (string, error) {
	items, err := s.UnpaidItems(ctx, userID)
	if err != nil {
		return "", err
	}

	if len(items) == 0 {
		return "您当前没有待缴费用，真棒！", nil
	}

	var b strings.Builder
	b.WriteString("您有以下待缴费用：")
	for i, item := range items {
		if i >= summaryLimit {
			break
		}
		fmt.Fprintf(&b, "%d. %s，金额%s元；", i+1, item.ItemType, item.Amount.String())
	}
	if len(items) > summaryLimit {
		fmt.Fprintf(&b, "还有%d条待缴费。", len(items)-summaryLimit)
	}
	b.WriteString("请问您要缴哪一项？")
	return b.String(), nil
}

// Prepay 为缴费项目发起在线支付
func (s *PaymentService) Prepay(ctx context.Context, itemID string, provider types.Provider, openID string) (*types.PrepayResult, error) {
	if !provider.Valid() {
		return nil, apperr.Invalid("不支持的支付方式：%s", provider)
	}

	item, err := s.GetByID(ctx, itemID)
	if err != nil {
		return nil, err
	}
	if item.IsSettled() || !item.Amount.IsPositive() {
		return nil, apperr.Invalid("该项目已缴清，无需支付")
	}

	gateway, ok := s.gateways[provider]
	if !ok {
		return nil, apperr.New(apperr.ExternalServiceError, "支付渠道未开通："+string(provider))
	}

	result, err := gateway.Prepay(ctx, &types.PrepayRequest{
		OrderNo:     utils.GenerateOrderNo(),
		Description: item.ItemType + "缴费",
		AmountFen:   item.AmountInFen(),
		OpenID:      openID,
	})
	if err != nil {
		return nil, apperr.Wrap(apperr.ExternalServiceError, err, err.Error())
	}

	logger.InfoString("Payment", "Prepay", fmt.Sprintf("itemId=%s provider=%s orderNo=%s", itemID, provider, result.OrderNo))
	return result, nil
}
