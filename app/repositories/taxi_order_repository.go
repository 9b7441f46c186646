package repositories

import (
	"context"

	"elderly/app/models/taxi"
	"elderly/pkg/apperr"
	"elderly/pkg/database"

	"gorm.io/gorm"
)

// TaxiOrderRepository 打车订单仓库
type TaxiOrderRepository struct {
	db *gorm.DB
}

// NewTaxiOrderRepository 创建仓库实例
func NewTaxiOrderRepository(db *gorm.DB) *TaxiOrderRepository {
	return &TaxiOrderRepository{db: db}
}

// Create 创建订单
func (r *TaxiOrderRepository) Create(ctx context.Context, order *taxi.TaxiOrder) error {
	if err := r.db.WithContext(ctx).Create(order).Error; err != nil {
		return apperr.Wrap(apperr.PersistenceError, err, "创建打车订单失败")
	}
	return nil
}

// GetByID 根据订单号获取订单
func (r *TaxiOrderRepository) GetByID(ctx context.Context, orderID string) (*taxi.TaxiOrder, error) {
	var order taxi.TaxiOrder
	err := r.db.WithContext(ctx).Where("order_id = ?", orderID).First(&order).Error
	if err != nil {
		if database.IsNotFound(err) {
			return nil, apperr.NotFoundf("订单不存在")
		}
		return nil, apperr.Wrap(apperr.PersistenceError, err, "查询打车订单失败")
	}
	return &order, nil
}

// ListByUser 获取用户订单，按创建时间倒序
func (r *TaxiOrderRepository) ListByUser(ctx context.Context, userID string) ([]taxi.TaxiOrder, error) {
	orders := make([]taxi.TaxiOrder, 0)
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("create_time DESC").
		Find(&orders).Error
	if err != nil {
		return nil, apperr.Wrap(apperr.PersistenceError, err, "查询打车订单失败")
	}
	return orders, nil
}

// UpdateStatus 仅当订单处于 expect 状态时更新，避免并发覆盖
func (r *TaxiOrderRepository) UpdateStatus(ctx context.Context, order *taxi.TaxiOrder, expect taxi.Status) error {
	result := r.db.WithContext(ctx).
		Model(&taxi.TaxiOrder{}).
		Where("order_id = ? AND status = ?", order.OrderID, expect).
		Select("*").
		Omit("order_id").
		Updates(order)
	if result.Error != nil {
		return apperr.Wrap(apperr.PersistenceError, result.Error, "更新打车订单失败")
	}
	if result.RowsAffected == 0 {
		return apperr.Invalid("订单状态已变更，请刷新后重试")
	}
	return nil
}
