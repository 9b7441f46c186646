package requests

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"elderly/pkg/apperr"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func jsonContext(body string) *gin.Context {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")
	return c
}

func TestValidatePaymentItem(t *testing.T) {
	req, err := ValidatePaymentItem(jsonContext(`{"userId":"U1","itemType":"水费","amount":88.5,"billMonth":"2024-05"}`))
	require.NoError(t, err)

	item := req.ToModel()
	assert.Equal(t, "U1", item.UserID)
	assert.Equal(t, "88.5", item.Amount.String())
}

func TestValidatePaymentItemErrors(t *testing.T) {
	cases := []struct {
		body string
		msg  string
	}{
		{`{"itemType":"水费"}`, "用户ID不能为空"},
		{`{"userId":"U1","itemType":"煤费"}`, "缴费类型必须是水费、电费、网费、话费、燃气费或物业费"},
		{`{"userId":"U1","itemType":"水费","amount":-1}`, "金额不能为负数"},
		{`{"userId":"U1","itemType":"水费","status":"未知"}`, "状态必须是欠费或已缴清"},
		{`not json`, "请求参数格式错误"},
	}
	for _, tc := range cases {
		_, err := ValidatePaymentItem(jsonContext(tc.body))
		require.Error(t, err, tc.body)
		assert.True(t, apperr.Is(err, apperr.InvalidArgument), tc.body)
		assert.Equal(t, tc.msg, err.Error(), tc.body)
	}
}

func TestValidatePrepay(t *testing.T) {
	_, err := ValidatePrepay(jsonContext(`{"item_id":"A","provider":"wechat"}`))
	assert.EqualError(t, err, "微信支付需要 openid")

	req, err := ValidatePrepay(jsonContext(`{"item_id":"A","provider":"alipay"}`))
	require.NoError(t, err)
	assert.Equal(t, "alipay", req.Provider)

	_, err = ValidatePrepay(jsonContext(`{"item_id":"A","provider":"cash"}`))
	assert.EqualError(t, err, "支付方式必须是 wechat 或 alipay")
}

func TestValidateUser(t *testing.T) {
	req, err := ValidateUser(jsonContext(`{"userId":"U1","phone":"13812345678","dialectType":"henan"}`))
	require.NoError(t, err)
	assert.Equal(t, "henan", req.ToModel().DialectType)

	_, err = ValidateUser(jsonContext(`{"userId":"U1","dialectType":"fr"}`))
	assert.True(t, apperr.Is(err, apperr.InvalidArgument))
}

func TestValidateTaxiOrder(t *testing.T) {
	req, err := ValidateTaxiOrder(jsonContext(`{"userId":"U1","startAddress":"A","endAddress":"B","startLongitude":116.397128}`))
	require.NoError(t, err)
	assert.Equal(t, "116.397128", req.ToModel().StartLongitude.String())

	_, err = ValidateTaxiOrder(jsonContext(`{"userId":"U1","startAddress":"A"}`))
	assert.EqualError(t, err, "终点不能为空")
}

func TestRequiredQuery(t *testing.T) {
	c := jsonContext("")
	c.Request = httptest.NewRequest(http.MethodGet, "/?user_id=%20", nil)

	_, err := RequiredQuery(c, "user_id", "用户ID不能为空")
	assert.True(t, apperr.Is(err, apperr.InvalidArgument))
}
