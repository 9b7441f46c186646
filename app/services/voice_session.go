package services

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"elderly/pkg/redis"

	"github.com/shopspring/decimal"
)

// 会话状态
const (
	SessionWaitingConfirm = "waiting_confirm"
	SessionCompleted      = "completed"
	SessionCanceled       = "canceled"
)

// SessionTTL 语音缴费会话有效期
const SessionTTL = 3 * time.Minute

// VoicePaySession 多轮对话会话
type VoicePaySession struct {
	SessionID   string          `json:"sessionId"`
	UserID      string          `json:"userId"`
	PaymentType string          `json:"paymentType"`
	ItemID      string          `json:"itemId"`
	Amount      decimal.Decimal `json:"amount"`
	Status      string          `json:"status"`
	CreateTime  int64           `json:"createTime"`
	ExpireTime  int64           `json:"expireTime"`
}

// SessionStore 会话存储
type SessionStore interface {
	Save(ctx context.Context, session *VoicePaySession, ttl time.Duration) error
	Get(ctx context.Context, sessionID string) (*VoicePaySession, bool, error)
}

// RedisSessionStore 会话存储在 Redis，多实例共享
type RedisSessionStore struct {
	rds *redis.RedisClient
}

// NewRedisSessionStore 键为 <prefix>:voice_pay:session:<id>
func NewRedisSessionStore(rds *redis.RedisClient) *RedisSessionStore {
	return &RedisSessionStore{rds: rds}
}

func (s *RedisSessionStore) key(id string) string {
	return s.rds.Key("voice_pay", "session", id)
}

func (s *RedisSessionStore) Save(ctx context.Context, session *VoicePaySession, ttl time.Duration) error {
	data, err := json.Marshal(session)
	if err != nil {
		return err
	}
	return s.rds.Set(ctx, s.key(session.SessionID), data, ttl)
}

func (s *RedisSessionStore) Get(ctx context.Context, sessionID string) (*VoicePaySession, bool, error) {
	data, ok, err := s.rds.Get(ctx, s.key(sessionID))
	if err != nil || !ok {
		return nil, false, err
	}
	var session VoicePaySession
	if err := json.Unmarshal([]byte(data), &session); err != nil {
		return nil, false, err
	}
	return &session, true, nil
}

type memorySession struct {
	session   VoicePaySession
	expiresAt time.Time
}

// MemorySessionStore 进程内会话存储，未配置 Redis 时使用
type MemorySessionStore struct {
	mu       sync.Mutex
	sessions map[string]memorySession
	now      func() time.Time
}

// NewMemorySessionStore 创建进程内会话存储
func NewMemorySessionStore() *MemorySessionStore {
	return &MemorySessionStore{
		sessions: make(map[string]memorySession),
		now:      time.Now,
	}
}

func (s *MemorySessionStore) Save(_ context.Context, session *VoicePaySession, ttl time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	// 顺带清理过期会话
	for id, m := range s.sessions {
		if !now.Before(m.expiresAt) {
			delete(s.sessions, id)
		}
	}
	s.sessions[session.SessionID] = memorySession{session: *session, expiresAt: now.Add(ttl)}
	return nil
}

func (s *MemorySessionStore) Get(_ context.Context, sessionID string) (*VoicePaySession, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	m, ok := s.sessions[sessionID]
	if !ok || !s.now().Before(m.expiresAt) {
		return nil, false, nil
	}
	session := m.session
	return &session, true, nil
}
