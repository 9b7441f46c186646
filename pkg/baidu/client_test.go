package baidu

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"elderly/pkg/apperr"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeProvider struct {
	server      *httptest.Server
	tokenCalls  int32
	lastRequest asrRequest
	asrBody     string
	tokenBody   string
}

func newFakeProvider(t *testing.T, asrBody string) *fakeProvider {
	t.Helper()
	p := &fakeProvider{
		asrBody:   asrBody,
		tokenBody: `{"access_token":"tok-1","expires_in":2592000}`,
	}
	mux := http.NewServeMux()
	mux.HandleFunc("/token", func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&p.tokenCalls, 1)
		assert.Equal(t, "client_credentials", r.URL.Query().Get("grant_type"))
		assert.Equal(t, "ak", r.URL.Query().Get("client_id"))
		assert.Equal(t, "sk", r.URL.Query().Get("client_secret"))
		_, _ = w.Write([]byte(p.tokenBody))
	})
	mux.HandleFunc("/asr", func(w http.ResponseWriter, r *http.Request) {
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&p.lastRequest))
		_, _ = w.Write([]byte(p.asrBody))
	})
	p.server = httptest.NewServer(mux)
	t.Cleanup(p.server.Close)
	return p
}

func (p *fakeProvider) config(legacy bool) Config {
	return Config{
		APIKey:       "ak",
		SecretKey:    "sk",
		TokenURL:     p.server.URL + "/token",
		ASRURL:       p.server.URL + "/asr",
		Timeout:      2 * time.Second,
		LegacyErrors: legacy,
	}
}

func TestRecognizeReturnsFirstResult(t *testing.T) {
	p := newFakeProvider(t, `{"err_no":0,"result":["你好"]}`)
	client := NewClient(p.config(true), nil)

	text, err := client.Recognize(context.Background(), []byte("audio"), Options{})

	require.NoError(t, err)
	assert.Equal(t, "你好", text)
	assert.Equal(t, "pcm", p.lastRequest.Format)
	assert.Equal(t, 16000, p.lastRequest.Rate)
	assert.Equal(t, 1, p.lastRequest.Channel)
	assert.Equal(t, "elderly_assistant", p.lastRequest.CUID)
	assert.Equal(t, "tok-1", p.lastRequest.Token)
	assert.Equal(t, 5, p.lastRequest.Len)
	assert.Equal(t, 1537, p.lastRequest.DevPID)
	assert.Equal(t, base64.StdEncoding.EncodeToString([]byte("audio")), p.lastRequest.Speech)
}

func TestRecognizeLegacyProviderError(t *testing.T) {
	p := newFakeProvider(t, `{"err_no":3301,"err_msg":"no valid speech"}`)
	client := NewClient(p.config(true), nil)

	text, err := client.Recognize(context.Background(), []byte("audio"), Options{})

	require.NoError(t, err)
	assert.Equal(t, "识别失败：no valid speech", text)
}

func TestRecognizeLegacyTokenFailure(t *testing.T) {
	p := newFakeProvider(t, `{"err_no":0,"result":["你好"]}`)
	p.tokenBody = `{"error":"invalid_client","error_description":"unknown client id"}`
	client := NewClient(p.config(true), nil)

	text, err := client.Recognize(context.Background(), []byte("audio"), Options{})

	require.NoError(t, err)
	assert.Contains(t, text, "识别异常：")
	assert.Contains(t, text, "unknown client id")
}

func TestRecognizeStrictModeReturnsError(t *testing.T) {
	p := newFakeProvider(t, `{"err_no":3301,"err_msg":"no valid speech"}`)
	client := NewClient(p.config(false), nil)

	text, err := client.Recognize(context.Background(), []byte("audio"), Options{})

	require.Error(t, err)
	assert.Empty(t, text)
	assert.True(t, apperr.Is(err, apperr.ExternalServiceError))
	assert.Contains(t, err.Error(), "no valid speech")

	var perr *ProviderError
	require.ErrorAs(t, err, &perr)
	assert.Equal(t, 3301, perr.Code)
}

func TestRecognizeUnreachableProvider(t *testing.T) {
	p := newFakeProvider(t, "")
	cfg := p.config(false)
	p.server.Close()

	_, err := NewClient(cfg, nil).Recognize(context.Background(), []byte("audio"), Options{})

	require.Error(t, err)
	assert.True(t, apperr.Is(err, apperr.ExternalServiceError))
}

func TestTokenIsCached(t *testing.T) {
	p := newFakeProvider(t, `{"err_no":0,"result":["你好"]}`)
	client := NewClient(p.config(true), NewMemoryTokenCache())

	for i := 0; i < 3; i++ {
		_, err := client.Recognize(context.Background(), []byte("audio"), Options{})
		require.NoError(t, err)
	}
	assert.EqualValues(t, 1, atomic.LoadInt32(&p.tokenCalls))
}

func TestTokenWithoutCacheIsFetchedEveryTime(t *testing.T) {
	p := newFakeProvider(t, `{"err_no":0,"result":["你好"]}`)
	client := NewClient(p.config(true), nil)

	for i := 0; i < 2; i++ {
		_, err := client.Recognize(context.Background(), []byte("audio"), Options{})
		require.NoError(t, err)
	}
	assert.EqualValues(t, 2, atomic.LoadInt32(&p.tokenCalls))
}

func TestInvalidTokenClearsCache(t *testing.T) {
	p := newFakeProvider(t, `{"err_no":3302,"err_msg":"token invalid"}`)
	cache := NewMemoryTokenCache()
	client := NewClient(p.config(true), cache)

	text, err := client.Recognize(context.Background(), []byte("audio"), Options{})
	require.NoError(t, err)
	assert.Equal(t, "识别失败：token invalid", text)

	_, ok, err := cache.Get(context.Background())
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestDetectFormatAndDialect(t *testing.T) {
	p := newFakeProvider(t, `{"err_no":0,"result":["好"]}`)
	cfg := p.config(true)
	cfg.FormatMode = FormatDetect
	client := NewClient(cfg, nil)

	_, err := client.Recognize(context.Background(), []byte("a"), Options{Filename: "rec.AMR", DevPID: DevPIDForDialect("cantonese")})
	require.NoError(t, err)
	assert.Equal(t, "amr", p.lastRequest.Format)
	assert.Equal(t, 1637, p.lastRequest.DevPID)
}

func TestFormatForFilename(t *testing.T) {
	cases := map[string]string{
		"":          "wav",
		"a.mp3":     "mp3",
		"a.WAV":     "wav",
		"voice.pcm": "pcm",
		"x.amr":     "amr",
		"x.aac":     "mp3",
		"noext":     "mp3",
	}
	for name, want := range cases {
		assert.Equal(t, want, FormatForFilename(name), name)
	}
}

func TestDevPIDForDialect(t *testing.T) {
	assert.Equal(t, 1537, DevPIDForDialect("zh"))
	assert.Equal(t, 1537, DevPIDForDialect(""))
	assert.Equal(t, 1637, DevPIDForDialect("cantonese"))
	assert.Equal(t, 1837, DevPIDForDialect("sichuan"))
	assert.Equal(t, 1936, DevPIDForDialect("henan"))
}

func TestMemoryTokenCacheExpires(t *testing.T) {
	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	cache := NewMemoryTokenCache()
	cache.now = func() time.Time { return now }

	require.NoError(t, cache.Set(context.Background(), "t", time.Minute))
	token, ok, _ := cache.Get(context.Background())
	assert.True(t, ok)
	assert.Equal(t, "t", token)

	now = now.Add(2 * time.Minute)
	_, ok, _ = cache.Get(context.Background())
	assert.False(t, ok)
}

func TestTokenTTL(t *testing.T) {
	assert.Equal(t, 29*24*time.Hour+23*time.Hour, tokenTTL(2592000))
	assert.Equal(t, 15*time.Minute, tokenTTL(1800))
	assert.Equal(t, time.Hour, tokenTTL(0))
}
