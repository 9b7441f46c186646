package limiter

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLimit(t *testing.T) {
	r, err := ParseLimit("5-S")
	require.NoError(t, err)
	assert.InDelta(t, 5, r.Rate, 0.0001)
	assert.EqualValues(t, 5, r.Limit)

	r, err = ParseLimit("3600-H")
	require.NoError(t, err)
	assert.InDelta(t, 1, r.Rate, 0.0001)

	_, err = ParseLimit("abc")
	assert.Error(t, err)
}

func TestRouteToKeyString(t *testing.T) {
	assert.Equal(t, "-payment-items-_item_id", routeToKeyString("/payment/items/:item_id"))
}
