package services

import (
	"context"
	"strings"
	"testing"

	"elderly/app/models/taxi"
	"elderly/pkg/apperr"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTaxiService() (*TaxiService, *fakeTaxiStore) {
	store := newFakeTaxiStore()
	svc := NewTaxiService(store)
	svc.now = func() int64 { return 42 }
	return svc, store
}

func TestTaxiCreate(t *testing.T) {
	svc, store := newTaxiService()
	order := &taxi.TaxiOrder{
		UserID:       "U1",
		StartAddress: "人民公园",
		EndAddress:   "市第一医院",
		BaseFee:      decimal.NewFromInt(10),
		DistanceFee:  decimal.NewFromInt(5),
		DiscountFee:  decimal.NewFromInt(3),
	}

	require.NoError(t, svc.Create(context.Background(), order))

	assert.True(t, strings.HasPrefix(order.OrderID, "TAXI_"))
	assert.Equal(t, taxi.StatusPendingDispatch, order.Status)
	assert.EqualValues(t, 42, order.CreateTime)
	assert.True(t, order.TotalFee.Equal(decimal.NewFromInt(12)))
	assert.Contains(t, store.orders, order.OrderID)
}

func TestTaxiCreateValidation(t *testing.T) {
	svc, _ := newTaxiService()
	err := svc.Create(context.Background(), &taxi.TaxiOrder{UserID: "U1", StartAddress: "A"})
	assert.True(t, apperr.Is(err, apperr.InvalidArgument))

	_, err = svc.ListByUser(context.Background(), "")
	assert.True(t, apperr.Is(err, apperr.InvalidArgument))
}

func TestTaxiCancel(t *testing.T) {
	svc, store := newTaxiService()
	store.orders["T1"] = taxi.TaxiOrder{OrderID: "T1", UserID: "U1", Status: taxi.StatusDriverAccepted}

	order, err := svc.Cancel(context.Background(), "T1", "", "不需要了")
	require.NoError(t, err)
	assert.Equal(t, taxi.StatusCanceled, order.Status)
	assert.Equal(t, CancelByUser, order.Cancelor)
	assert.Equal(t, "不需要了", order.CancelReason)
	assert.EqualValues(t, 42, store.orders["T1"].CancelTime)
}

func TestTaxiCancelRejectsFinishedOrders(t *testing.T) {
	svc, store := newTaxiService()
	store.orders["T1"] = taxi.TaxiOrder{OrderID: "T1", Status: taxi.StatusCompleted}
	store.orders["T2"] = taxi.TaxiOrder{OrderID: "T2", Status: taxi.StatusCanceled}

	for _, id := range []string{"T1", "T2"} {
		_, err := svc.Cancel(context.Background(), id, CancelByUser, "")
		assert.True(t, apperr.Is(err, apperr.InvalidArgument), id)
	}

	_, err := svc.Cancel(context.Background(), "missing", CancelByUser, "")
	assert.True(t, apperr.Is(err, apperr.NotFound))
}
