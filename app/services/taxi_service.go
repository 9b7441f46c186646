package services

import (
	"context"
	"strings"

	"elderly/app/models/taxi"
	"elderly/pkg/app"
	"elderly/pkg/apperr"
	"elderly/pkg/idgen"
	"elderly/pkg/logger"

	"go.uber.org/zap"
)

// 取消方
const (
	CancelByUser   = "user"
	CancelByDriver = "driver"
	CancelBySystem = "system"
)

// PayStatusUnpaid 订单未支付
const PayStatusUnpaid = "未支付"

// TaxiOrderStore 打车订单存储
type TaxiOrderStore interface {
	Create(ctx context.Context, order *taxi.TaxiOrder) error
	GetByID(ctx context.Context, orderID string) (*taxi.TaxiOrder, error)
	ListByUser(ctx context.Context, userID string) ([]taxi.TaxiOrder, error)
	UpdateStatus(ctx context.Context, order *taxi.TaxiOrder, expect taxi.Status) error
}

// TaxiService 打车订单
type TaxiService struct {
	store  TaxiOrderStore
	now    func() int64
	nextID func() string
}

// NewTaxiService 创建打车服务
func NewTaxiService(store TaxiOrderStore) *TaxiService {
	return &TaxiService{
		store:  store,
		now:    app.NowMillis,
		nextID: func() string { return idgen.WithPrefix(taxi.OrderIDPrefix) },
	}
}

// Create 创建待派单订单
func (s *TaxiService) Create(ctx context.Context, order *taxi.TaxiOrder) error {
	if strings.TrimSpace(order.UserID) == "" {
		return apperr.Invalid("用户ID不能为空")
	}
	if strings.TrimSpace(order.StartAddress) == "" || strings.TrimSpace(order.EndAddress) == "" {
		return apperr.Invalid("起点和终点不能为空")
	}

	order.OrderID = s.nextID()
	order.Status = taxi.StatusPendingDispatch
	order.CreateTime = s.now()
	if order.PayStatus == "" {
		order.PayStatus = PayStatusUnpaid
	}
	order.TotalFee = order.SumFee()

	if err := s.store.Create(ctx, order); err != nil {
		return err
	}
	logger.Info("Taxi", zap.String("action", "create"), zap.String("orderId", order.OrderID), zap.String("userId", order.UserID))
	return nil
}

// Get 查询订单
func (s *TaxiService) Get(ctx context.Context, orderID string) (*taxi.TaxiOrder, error) {
	if strings.TrimSpace(orderID) == "" {
		return nil, apperr.Invalid("订单ID不能为空")
	}
	return s.store.GetByID(ctx, orderID)
}

// ListByUser 查询用户订单，按创建时间倒序
func (s *TaxiService) ListByUser(ctx context.Context, userID string) ([]taxi.TaxiOrder, error) {
	if strings.TrimSpace(userID) == "" {
		return nil, apperr.Invalid("用户ID不能为空")
	}
	return s.store.ListByUser(ctx, userID)
}

// Cancel 取消订单，仅完成前可取消
func (s *TaxiService) Cancel(ctx context.Context, orderID, cancelor, reason string) (*taxi.TaxiOrder, error) {
	order, err := s.Get(ctx, orderID)
	if err != nil {
		return nil, err
	}

	prev := order.Status
	if !prev.Cancelable() {
		return nil, apperr.Invalid("当前订单状态不可取消：%s", prev)
	}

	if cancelor == "" {
		cancelor = CancelByUser
	}
	order.Status = taxi.StatusCanceled
	order.CancelTime = s.now()
	order.Cancelor = cancelor
	order.CancelReason = reason

	if err := s.store.UpdateStatus(ctx, order, prev); err != nil {
		return nil, err
	}
	logger.Info("Taxi", zap.String("action", "cancel"), zap.String("orderId", orderID), zap.String("cancelor", cancelor))
	return order, nil
}
