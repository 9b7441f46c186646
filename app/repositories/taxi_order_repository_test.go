package repositories

import (
	"context"
	"testing"

	"elderly/app/models/taxi"
	"elderly/app/models/user"
	"elderly/pkg/apperr"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTaxiOrderUpdateStatusGuard(t *testing.T) {
	repo := NewTaxiOrderRepository(newTestDB(t))
	ctx := context.Background()

	order := &taxi.TaxiOrder{OrderID: "TAXI_1", UserID: "U1", Status: taxi.StatusPendingDispatch, CreateTime: 1}
	require.NoError(t, repo.Create(ctx, order))

	order.Status = taxi.StatusCanceled
	order.CancelTime = 2
	require.NoError(t, repo.UpdateStatus(ctx, order, taxi.StatusPendingDispatch))

	// 状态已经不是待派单，再次按旧状态更新失败
	err := repo.UpdateStatus(ctx, order, taxi.StatusPendingDispatch)
	assert.True(t, apperr.Is(err, apperr.InvalidArgument))

	stored, err := repo.GetByID(ctx, "TAXI_1")
	require.NoError(t, err)
	assert.Equal(t, taxi.StatusCanceled, stored.Status)
	assert.Equal(t, int64(2), stored.CancelTime)

	orders, err := repo.ListByUser(ctx, "U1")
	require.NoError(t, err)
	assert.Len(t, orders, 1)

	_, err = repo.GetByID(ctx, "TAXI_404")
	assert.True(t, apperr.Is(err, apperr.NotFound))
}

func TestUserSaveAndGet(t *testing.T) {
	repo := NewUserRepository(newTestDB(t))
	ctx := context.Background()

	require.NoError(t, repo.Save(ctx, &user.UserBase{UserID: "U1", UserName: "张阿姨", UserAge: 72}))
	require.NoError(t, repo.Save(ctx, &user.UserBase{UserID: "U1", UserName: "张阿姨", UserAge: 73}))

	u, err := repo.GetByID(ctx, "U1")
	require.NoError(t, err)
	assert.Equal(t, 73, u.UserAge)

	_, err = repo.GetByID(ctx, "U2")
	assert.True(t, apperr.Is(err, apperr.NotFound))
}
