package services

import (
	"context"
	"strings"

	"elderly/app/models/user"
	"elderly/pkg/app"
	"elderly/pkg/apperr"
	"elderly/pkg/logger"
)

// UserStore 用户存储
type UserStore interface {
	GetByID(ctx context.Context, userID string) (*user.UserBase, error)
	Save(ctx context.Context, u *user.UserBase) error
}

// UserService 用户信息
type UserService struct {
	store  UserStore
	cipher *user.PhoneCipher
	now    func() int64
}

// NewUserService 创建用户服务
func NewUserService(store UserStore, cipher *user.PhoneCipher) *UserService {
	return &UserService{store: store, cipher: cipher, now: app.NowMillis}
}

// Get 查询用户，手机号脱敏后返回
func (s *UserService) Get(ctx context.Context, userID string) (*user.UserBase, error) {
	if strings.TrimSpace(userID) == "" {
		return nil, apperr.Invalid("用户ID不能为空")
	}
	u, err := s.store.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	s.maskPhone(u)
	return u, nil
}

// Save 新增或更新用户，手机号为明文，加密后存储
func (s *UserService) Save(ctx context.Context, u *user.UserBase) (*user.UserBase, error) {
	if strings.TrimSpace(u.UserID) == "" {
		return nil, apperr.Invalid("用户ID不能为空")
	}

	switch u.DialectType {
	case "":
		u.DialectType = user.DialectMandarin
	case user.DialectMandarin, user.DialectCantonese, user.DialectSichuan, user.DialectHenan:
	default:
		return nil, apperr.Invalid("不支持的方言类型：%s", u.DialectType)
	}

	if u.Phone != "" {
		if !user.IsValidPhone(u.Phone) {
			return nil, apperr.Invalid("手机号格式不正确")
		}
		encrypted, err := s.cipher.Encrypt(u.Phone)
		if err != nil {
			return nil, apperr.Wrap(apperr.PersistenceError, err, "手机号加密失败")
		}
		u.Phone = encrypted
	}

	now := s.now()
	u.CreateTime = now
	existing, err := s.store.GetByID(ctx, u.UserID)
	switch {
	case err == nil:
		u.CreateTime = existing.CreateTime
	case !apperr.Is(err, apperr.NotFound):
		return nil, err
	}
	u.UpdateTime = now

	if err := s.store.Save(ctx, u); err != nil {
		return nil, err
	}

	s.maskPhone(u)
	return u, nil
}

// Dialect 用户方言偏好，供语音识别选择语言模型
func (s *UserService) Dialect(ctx context.Context, userID string) string {
	u, err := s.store.GetByID(ctx, userID)
	if err != nil {
		return ""
	}
	return u.DialectType
}

// maskPhone 解密并脱敏
func (s *UserService) maskPhone(u *user.UserBase) {
	if u.Phone == "" {
		return
	}
	plain, err := s.cipher.Decrypt(u.Phone)
	if err != nil {
		logger.LogWarnIf(err)
		u.Phone = ""
		return
	}
	u.Phone = user.DesensitizePhone(plain)
}
