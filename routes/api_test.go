package routes

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"elderly/app/http/controllers/api/v1/payment"
	"elderly/app/http/controllers/api/v1/taxi"
	"elderly/app/http/controllers/api/v1/user"
	"elderly/app/http/controllers/api/v1/voice"
	userModel "elderly/app/models/user"
	"elderly/app/repositories"
	"elderly/app/services"
	"elderly/pkg/app"
	"elderly/pkg/apperr"
	"elderly/pkg/baidu"
	"elderly/pkg/database"
	"elderly/pkg/database/migrations"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRecognizer struct {
	text string
	err  error
	opts baidu.Options
}

func (f *fakeRecognizer) Recognize(_ context.Context, _ []byte, opts baidu.Options) (string, error) {
	f.opts = opts
	return f.text, f.err
}

type envelope struct {
	Code    int             `json:"code"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

type testServer struct {
	router     *gin.Engine
	recognizer *fakeRecognizer
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := database.OpenMemory(migrations.RegisterTables())
	require.NoError(t, err)

	cipher, err := userModel.NewPhoneCipher([]byte("0123456789abcdef0123456789abcdef"))
	require.NoError(t, err)

	users := services.NewUserService(repositories.NewUserRepository(db), cipher)
	payments := services.NewPaymentService(repositories.NewPaymentRepository(db), nil)
	voicePay := services.NewVoicePayService(services.VoicePayModeMock, payments, nil, nil, users)
	recognizer := &fakeRecognizer{text: "你好"}

	router := gin.New()
	RegisterAPIRoutes(router, &Controllers{
		Payment: payment.NewPaymentController(payments, voicePay),
		Voice:   voice.NewVoiceController(recognizer),
		User:    user.NewUserController(users),
		Taxi:    taxi.NewTaxiController(services.NewTaxiService(repositories.NewTaxiOrderRepository(db))),
	})
	return &testServer{router: router, recognizer: recognizer}
}

func (s *testServer) do(t *testing.T, method, path, body string) (*httptest.ResponseRecorder, envelope) {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)

	var env envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env), w.Body.String())
	return w, env
}

func TestUnpaidItemsEmpty(t *testing.T) {
	s := newTestServer(t)

	w, _ := s.do(t, http.MethodGet, "/payment/unpaid-items?user_id=U1", "")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"code":0,"message":"success","data":[]}`, w.Body.String())
}

func TestUnpaidItemsRequiresUserID(t *testing.T) {
	s := newTestServer(t)

	w, env := s.do(t, http.MethodGet, "/payment/unpaid-items", "")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 500, env.Code)
	assert.Equal(t, "用户ID不能为空", env.Message)
	assert.Equal(t, "null", string(env.Data))
}

func TestPaymentItemLifecycle(t *testing.T) {
	s := newTestServer(t)

	_, env := s.do(t, http.MethodPost, "/payment/items",
		`{"userId":"U1","itemType":"水费","account":"W-001","amount":120.5,"dueDate":"2024-06-30","billMonth":"2024-05"}`)
	require.Equal(t, 0, env.Code, env.Message)

	var created struct {
		ItemID string `json:"itemId"`
		Status string `json:"status"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &created))
	assert.True(t, strings.HasPrefix(created.ItemID, "PAY_ITEM_"))
	assert.Equal(t, "欠费", created.Status)

	_, env = s.do(t, http.MethodGet, "/payment/history?user_id=U1", "")
	require.Equal(t, 0, env.Code)
	var items []map[string]interface{}
	require.NoError(t, json.Unmarshal(env.Data, &items))
	require.Len(t, items, 1)
	assert.Equal(t, "W-001", items[0]["account"])

	_, env = s.do(t, http.MethodGet, "/payment/voice-summary?user_id=U1", "")
	require.Equal(t, 0, env.Code)
	assert.Contains(t, string(env.Data), "水费，金额120.5元")

	before := app.NowMillis()
	_, env = s.do(t, http.MethodPost, "/payment/mark-paid?item_id="+created.ItemID, "")
	assert.Equal(t, 0, env.Code)
	assert.Equal(t, "success", env.Message)

	_, env = s.do(t, http.MethodGet, "/payment/items/"+created.ItemID, "")
	require.Equal(t, 0, env.Code)
	var got map[string]interface{}
	require.NoError(t, json.Unmarshal(env.Data, &got))
	assert.Equal(t, "已缴清", got["status"])
	assert.GreaterOrEqual(t, int64(got["lastPayTime"].(float64)), before)

	_, env = s.do(t, http.MethodDelete, "/payment/items/"+created.ItemID, "")
	assert.Equal(t, 0, env.Code)

	_, env = s.do(t, http.MethodDelete, "/payment/items/"+created.ItemID, "")
	assert.Equal(t, 500, env.Code)
	assert.Equal(t, "删除失败", env.Message)
}

func TestUpdatePaymentItemKeepsTimes(t *testing.T) {
	s := newTestServer(t)

	_, env := s.do(t, http.MethodPost, "/payment/items",
		`{"itemId":"P1","userId":"U1","itemType":"网费","account":"N-9","amount":99,"billMonth":"2024-05"}`)
	require.Equal(t, 0, env.Code, env.Message)
	_, env = s.do(t, http.MethodPost, "/payment/mark-paid?item_id=P1", "")
	require.Equal(t, 0, env.Code, env.Message)

	_, env = s.do(t, http.MethodGet, "/payment/items/P1", "")
	require.Equal(t, 0, env.Code)
	var before map[string]interface{}
	require.NoError(t, json.Unmarshal(env.Data, &before))
	require.NotZero(t, before["createTime"])
	require.NotZero(t, before["lastPayTime"])

	before["remark"] = "已核对"
	body, err := json.Marshal(before)
	require.NoError(t, err)
	_, env = s.do(t, http.MethodPut, "/payment/items/P1", string(body))
	require.Equal(t, 0, env.Code, env.Message)

	_, env = s.do(t, http.MethodGet, "/payment/items/P1", "")
	require.Equal(t, 0, env.Code)
	var after map[string]interface{}
	require.NoError(t, json.Unmarshal(env.Data, &after))
	assert.Equal(t, "已核对", after["remark"])
	assert.Equal(t, before["createTime"], after["createTime"])
	assert.Equal(t, before["lastPayTime"], after["lastPayTime"])
	assert.Equal(t, "已缴清", after["status"])
}

func TestMarkPaidUnknownItem(t *testing.T) {
	s := newTestServer(t)

	_, env := s.do(t, http.MethodPost, "/payment/mark-paid?item_id=missing", "")

	assert.Equal(t, 500, env.Code)
	assert.Equal(t, "缴费项目不存在", env.Message)
}

func TestCreatePaymentItemValidation(t *testing.T) {
	s := newTestServer(t)

	_, env := s.do(t, http.MethodPost, "/payment/items", `{"userId":"U1","itemType":"煤费"}`)

	assert.Equal(t, 500, env.Code)
	assert.Equal(t, "缴费类型必须是水费、电费、网费、话费、燃气费或物业费", env.Message)
}

func TestPrepayWithoutGateway(t *testing.T) {
	s := newTestServer(t)

	_, env := s.do(t, http.MethodPost, "/payment/items", `{"itemId":"P1","userId":"U1","itemType":"电费","amount":80}`)
	require.Equal(t, 0, env.Code, env.Message)

	_, env = s.do(t, http.MethodPost, "/payment/prepay", `{"item_id":"P1","provider":"alipay"}`)

	assert.Equal(t, 500, env.Code)
	assert.Equal(t, "支付发起失败：支付渠道未开通：alipay", env.Message)
}

func TestVoicePayMock(t *testing.T) {
	s := newTestServer(t)

	_, env := s.do(t, http.MethodPost, "/payment/voice-pay", `{"userId":"U1","audioData":"","sessionId":""}`)
	require.Equal(t, 0, env.Code)

	var resp services.VoicePayResponse
	require.NoError(t, json.Unmarshal(env.Data, &resp))
	assert.True(t, strings.HasPrefix(resp.SessionID, "SESSION_"))
	assert.Equal(t, "您好，请问需要缴纳什么费用？", resp.ReplyText)
	assert.True(t, resp.NeedTTS)
}

func multipartRequest(t *testing.T, field, filename string, content []byte, extra map[string]string) *http.Request {
	t.Helper()
	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	if field != "" {
		fw, err := mw.CreateFormFile(field, filename)
		require.NoError(t, err)
		_, err = fw.Write(content)
		require.NoError(t, err)
	}
	for k, v := range extra {
		require.NoError(t, mw.WriteField(k, v))
	}
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/voice/recognize", &body)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	return req
}

func TestVoiceRecognize(t *testing.T) {
	s := newTestServer(t)

	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, multipartRequest(t, "file", "rec.mp3", []byte("audio"), map[string]string{"dialect": "sichuan"}))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"code":0,"message":"success","data":{"text":"你好"}}`, w.Body.String())
	assert.Equal(t, "rec.mp3", s.recognizer.opts.Filename)
	assert.Equal(t, baidu.DevPIDSichuan, s.recognizer.opts.DevPID)
}

func TestVoiceRecognizeMissingFile(t *testing.T) {
	s := newTestServer(t)

	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, multipartRequest(t, "", "", nil, map[string]string{"dialect": "zh"}))

	var env envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	assert.Equal(t, 500, env.Code)
	assert.Equal(t, "请上传音频文件", env.Message)
}

func TestVoiceRecognizeProviderError(t *testing.T) {
	s := newTestServer(t)
	s.recognizer.text = ""
	s.recognizer.err = apperr.Wrap(apperr.ExternalServiceError, errors.New("3301"), "no valid speech")

	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, multipartRequest(t, "file", "rec.pcm", []byte("audio"), nil))

	var env envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	assert.Equal(t, 500, env.Code)
	assert.Equal(t, "语音识别失败：no valid speech", env.Message)
}

func TestUserSaveAndShow(t *testing.T) {
	s := newTestServer(t)

	_, env := s.do(t, http.MethodPost, "/users", `{"userId":"U1","userName":"张三","phone":"13812345678","dialectType":"cantonese"}`)
	require.Equal(t, 0, env.Code, env.Message)
	assert.Contains(t, string(env.Data), `"phone":"138****5678"`)

	_, env = s.do(t, http.MethodGet, "/users/U1", "")
	require.Equal(t, 0, env.Code, env.Message)

	var u userModel.UserBase
	require.NoError(t, json.Unmarshal(env.Data, &u))
	assert.Equal(t, "张三", u.UserName)
	assert.Equal(t, "138****5678", u.Phone)
	assert.Equal(t, "cantonese", u.DialectType)

	_, env = s.do(t, http.MethodGet, "/users/U404", "")
	assert.Equal(t, 500, env.Code)
	assert.Equal(t, "用户不存在", env.Message)
}

func TestTaxiOrderLifecycle(t *testing.T) {
	s := newTestServer(t)

	_, env := s.do(t, http.MethodPost, "/taxi/orders",
		`{"userId":"U1","startAddress":"幸福小区","startLongitude":116.397128,"startLatitude":39.916527,"endAddress":"人民医院"}`)
	require.Equal(t, 0, env.Code, env.Message)

	var order struct {
		OrderID string `json:"orderId"`
		Status  int    `json:"status"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &order))
	assert.True(t, strings.HasPrefix(order.OrderID, "TAXI_"))
	assert.Equal(t, 0, order.Status)

	_, env = s.do(t, http.MethodGet, "/taxi/orders?user_id=U1", "")
	require.Equal(t, 0, env.Code)
	var orders []map[string]interface{}
	require.NoError(t, json.Unmarshal(env.Data, &orders))
	assert.Len(t, orders, 1)

	_, env = s.do(t, http.MethodPost, "/taxi/orders/"+order.OrderID+"/cancel", `{"cancelor":"user","reason":"不需要了"}`)
	require.Equal(t, 0, env.Code, env.Message)
	require.NoError(t, json.Unmarshal(env.Data, &order))
	assert.Equal(t, 5, order.Status)

	_, env = s.do(t, http.MethodPost, "/taxi/orders/"+order.OrderID+"/cancel", "")
	assert.Equal(t, 500, env.Code)
	assert.Equal(t, "当前订单状态不可取消：已取消", env.Message)
}
