package services

import (
	"context"
	"sort"
	"sync"

	"elderly/app/models/payment"
	"elderly/app/models/taxi"
	"elderly/app/models/user"
	"elderly/pkg/apperr"
	"elderly/pkg/baidu"
	"elderly/pkg/payment/types"
)

type fakePaymentStore struct {
	mu        sync.Mutex
	items     map[string]payment.PaymentItem
	calls     int
	insertErr error
}

func newFakePaymentStore(items ...payment.PaymentItem) *fakePaymentStore {
	s := &fakePaymentStore{items: make(map[string]payment.PaymentItem)}
	for _, item := range items {
		s.items[item.ItemID] = item
	}
	return s
}

func (s *fakePaymentStore) list(userID string, unpaidOnly bool) []payment.PaymentItem {
	out := make([]payment.PaymentItem, 0)
	for _, item := range s.items {
		if item.UserID != userID {
			continue
		}
		if unpaidOnly && item.Status != payment.StatusUnpaid {
			continue
		}
		out = append(out, item)
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].CreateTime != out[j].CreateTime {
			return out[i].CreateTime > out[j].CreateTime
		}
		return out[i].ItemID < out[j].ItemID
	})
	return out
}

func (s *fakePaymentStore) ListByUser(_ context.Context, userID string) ([]payment.PaymentItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls++
	return s.list(userID, false), nil
}

func (s *fakePaymentStore) ListUnpaidByUser(_ context.Context, userID string) ([]payment.PaymentItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls++
	return s.list(userID, true), nil
}

func (s *fakePaymentStore) GetByID(_ context.Context, itemID string) (*payment.PaymentItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls++
	item, ok := s.items[itemID]
	if !ok {
		return nil, apperr.NotFoundf("缴费项目不存在")
	}
	return &item, nil
}

func (s *fakePaymentStore) Insert(_ context.Context, item *payment.PaymentItem) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls++
	if s.insertErr != nil {
		return s.insertErr
	}
	s.items[item.ItemID] = *item
	return nil
}

func (s *fakePaymentStore) UpdateByID(_ context.Context, item *payment.PaymentItem) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls++
	if _, ok := s.items[item.ItemID]; !ok {
		return apperr.NotFoundf("缴费项目不存在")
	}
	s.items[item.ItemID] = *item
	return nil
}

func (s *fakePaymentStore) DeleteByID(_ context.Context, itemID string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls++
	if _, ok := s.items[itemID]; !ok {
		return false, nil
	}
	delete(s.items, itemID)
	return true, nil
}

type fakeGateway struct {
	provider types.Provider
	last     *types.PrepayRequest
	err      error
}

func (g *fakeGateway) Provider() types.Provider { return g.provider }

func (g *fakeGateway) Prepay(_ context.Context, req *types.PrepayRequest) (*types.PrepayResult, error) {
	g.last = req
	if g.err != nil {
		return nil, g.err
	}
	return &types.PrepayResult{
		Provider:   g.provider,
		OrderNo:    req.OrderNo,
		TimeStamp:  "1700000000",
		NonceStr:   "nonce",
		PackageStr: "prepay_id=wx123",
		PaySign:    "sign",
	}, nil
}

type fakeTranscriber struct {
	text string
	err  error
	opts baidu.Options
}

func (f *fakeTranscriber) Transcribe(_ context.Context, _ []byte, opts baidu.Options) (string, error) {
	f.opts = opts
	return f.text, f.err
}

type fakeDialects map[string]string

func (f fakeDialects) Dialect(_ context.Context, userID string) string { return f[userID] }

type fakeTaxiStore struct {
	orders map[string]taxi.TaxiOrder
}

func newFakeTaxiStore() *fakeTaxiStore {
	return &fakeTaxiStore{orders: make(map[string]taxi.TaxiOrder)}
}

func (s *fakeTaxiStore) Create(_ context.Context, order *taxi.TaxiOrder) error {
	s.orders[order.OrderID] = *order
	return nil
}

func (s *fakeTaxiStore) GetByID(_ context.Context, orderID string) (*taxi.TaxiOrder, error) {
	o, ok := s.orders[orderID]
	if !ok {
		return nil, apperr.NotFoundf("订单不存在")
	}
	return &o, nil
}

func (s *fakeTaxiStore) ListByUser(_ context.Context, userID string) ([]taxi.TaxiOrder, error) {
	out := make([]taxi.TaxiOrder, 0)
	for _, o := range s.orders {
		if o.UserID == userID {
			out = append(out, o)
		}
	}
	return out, nil
}

func (s *fakeTaxiStore) UpdateStatus(_ context.Context, order *taxi.TaxiOrder, expect taxi.Status) error {
	cur, ok := s.orders[order.OrderID]
	if !ok || cur.Status != expect {
		return apperr.Invalid("订单状态已变更，请刷新后重试")
	}
	s.orders[order.OrderID] = *order
	return nil
}

type fakeUserStore struct {
	users map[string]user.UserBase
}

func newFakeUserStore() *fakeUserStore {
	return &fakeUserStore{users: make(map[string]user.UserBase)}
}

func (s *fakeUserStore) GetByID(_ context.Context, userID string) (*user.UserBase, error) {
	u, ok := s.users[userID]
	if !ok {
		return nil, apperr.NotFoundf("用户不存在")
	}
	return &u, nil
}

func (s *fakeUserStore) Save(_ context.Context, u *user.UserBase) error {
	s.users[u.UserID] = *u
	return nil
}
