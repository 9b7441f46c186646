package repositories

import (
	"context"

	"elderly/app/models/payment"
	"elderly/pkg/apperr"
	"elderly/pkg/database"

	"gorm.io/gorm"
)

// PaymentRepository 缴费项目仓库
type PaymentRepository struct {
	db *gorm.DB
}

// NewPaymentRepository 创建仓库实例
func NewPaymentRepository(db *gorm.DB) *PaymentRepository {
	return &PaymentRepository{
		db: db,
	}
}

// ListByUser 获取用户的缴费项目，按创建时间倒序，相同时间按ID升序
func (r *PaymentRepository) ListByUser(ctx context.Context, userID string) ([]payment.PaymentItem, error) {
	items := make([]payment.PaymentItem, 0)
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("create_time DESC").
		Order("config_id ASC").
		Find(&items).Error
	if err != nil {
		return nil, apperr.Wrap(apperr.PersistenceError, err, "查询缴费项目失败")
	}
	return items, nil
}

// ListUnpaidByUser 获取用户欠费的缴费项目
func (r *PaymentRepository) ListUnpaidByUser(ctx context.Context, userID string) ([]payment.PaymentItem, error) {
	items := make([]payment.PaymentItem, 0)
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND status = ?", userID, payment.StatusUnpaid).
		Order("create_time DESC").
		Order("config_id ASC").
		Find(&items).Error
	if err != nil {
		return nil, apperr.Wrap(apperr.PersistenceError, err, "查询待缴费项目失败")
	}
	return items, nil
}

// GetByID 根据ID获取缴费项目
func (r *PaymentRepository) GetByID(ctx context.Context, itemID string) (*payment.PaymentItem, error) {
	var item payment.PaymentItem
	err := r.db.WithContext(ctx).Where("config_id = ?", itemID).First(&item).Error
	if err != nil {
		if database.IsNotFound(err) {
			return nil, apperr.NotFoundf("缴费项目不存在")
		}
		return nil, apperr.Wrap(apperr.PersistenceError, err, "查询缴费项目失败")
	}
	return &item, nil
}

// Insert 创建缴费项目
func (r *PaymentRepository) Insert(ctx context.Context, item *payment.PaymentItem) error {
	result := r.db.WithContext(ctx).Create(item)
	if result.Error != nil {
		return apperr.Wrap(apperr.PersistenceError, result.Error, "创建缴费项目失败")
	}
	if result.RowsAffected == 0 {
		return apperr.New(apperr.PersistenceError, "创建缴费项目失败")
	}
	return nil
}

// UpdateByID 按ID全量更新缴费项目
func (r *PaymentRepository) UpdateByID(ctx context.Context, item *payment.PaymentItem) error {
	result := r.db.WithContext(ctx).
		Model(&payment.PaymentItem{}).
		Where("config_id = ?", item.ItemID).
		Select("*").
		Omit("config_id").
		Updates(item)
	if result.Error != nil {
		return apperr.Wrap(apperr.PersistenceError, result.Error, "更新缴费项目失败")
	}
	if result.RowsAffected == 0 {
		return apperr.NotFoundf("缴费项目不存在")
	}
	return nil
}

// DeleteByID 删除缴费项目，返回是否有记录被删除
func (r *PaymentRepository) DeleteByID(ctx context.Context, itemID string) (bool, error) {
	result := r.db.WithContext(ctx).Where("config_id = ?", itemID).Delete(&payment.PaymentItem{})
	if result.Error != nil {
		return false, apperr.Wrap(apperr.PersistenceError, result.Error, "删除缴费项目失败")
	}
	return result.RowsAffected > 0, nil
}
