package repositories

import (
	"context"

	"elderly/app/models/user"
	"elderly/pkg/apperr"
	"elderly/pkg/database"

	"gorm.io/gorm"
)

// UserRepository 用户仓库
type UserRepository struct {
	db *gorm.DB
}

// NewUserRepository 创建仓库实例
func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

// GetByID 根据用户ID获取用户
func (r *UserRepository) GetByID(ctx context.Context, userID string) (*user.UserBase, error) {
	var u user.UserBase
	err := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&u).Error
	if err != nil {
		if database.IsNotFound(err) {
			return nil, apperr.NotFoundf("用户不存在")
		}
		return nil, apperr.Wrap(apperr.PersistenceError, err, "查询用户失败")
	}
	return &u, nil
}

// Save 新增或更新用户
func (r *UserRepository) Save(ctx context.Context, u *user.UserBase) error {
	if err := r.db.WithContext(ctx).Save(u).Error; err != nil {
		return apperr.Wrap(apperr.PersistenceError, err, "保存用户失败")
	}
	return nil
}
