package baidu

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"
)

// 默认参数
const (
	DefaultTokenURL = "https://aip.baidubce.com/oauth/2.0/token"
	DefaultASRURL   = "https://vop.baidu.com/server_api"
	DefaultCUID     = "elderly_assistant"
	DefaultRate     = 16000
	DefaultChannel  = 1
	DefaultFormat   = "pcm"
	DefaultTimeout  = 30 * time.Second

	// DevPIDMandarin 普通话（支持简单的英文识别）
	DevPIDMandarin = 1537
	// DevPIDCantonese 粤语
	DevPIDCantonese = 1637
	// DevPIDSichuan 四川话
	DevPIDSichuan = 1837
	// DevPIDHenan 河南话
	DevPIDHenan = 1936

	// errNoTokenInvalid 令牌无效或过期
	errNoTokenInvalid = 3302
)

// 音频格式模式
const (
	FormatFixed  = "fixed"  // 始终使用 pcm
	FormatDetect = "detect" // 按文件扩展名识别
)

// 旧版接口的失败文案前缀
const (
	FailedPrefix    = "识别失败："
	ExceptionPrefix = "识别异常："
)

// Config 语音识别配置
type Config struct {
	APIKey    string
	SecretKey string
	TokenURL  string
	ASRURL    string
	CUID      string
	DevPID    int
	Rate      int
	Timeout   time.Duration

	// LegacyErrors 为 true 时，识别失败以文本返回而不是错误
	LegacyErrors bool
	// FormatMode fixed 或 detect
	FormatMode string
}

func (c *Config) applyDefaults() {
	if c.TokenURL == "" {
		c.TokenURL = DefaultTokenURL
	}
	if c.ASRURL == "" {
		c.ASRURL = DefaultASRURL
	}
	if c.CUID == "" {
		c.CUID = DefaultCUID
	}
	if c.DevPID == 0 {
		c.DevPID = DevPIDMandarin
	}
	if c.Rate == 0 {
		c.Rate = DefaultRate
	}
	if c.Timeout <= 0 {
		c.Timeout = DefaultTimeout
	}
	if c.FormatMode == "" {
		c.FormatMode = FormatFixed
	}
}

// Options 单次识别参数
type Options struct {
	Filename string // 上传文件名，detect 模式下用于推断格式
	DevPID   int    // 语言模型，0 表示使用配置默认值
}

// tokenResponse 鉴权接口响应
type tokenResponse struct {
	AccessToken      string `json:"access_token"`
	ExpiresIn        int64  `json:"expires_in"`
	Error            string `json:"error"`
	ErrorDescription string `json:"error_description"`
}

// asrRequest 识别接口请求
type asrRequest struct {
	Format  string `json:"format"`
	Rate    int    `json:"rate"`
	Channel int    `json:"channel"`
	CUID    string `json:"cuid"`
	Token   string `json:"token"`
	Speech  string `json:"speech"`
	Len     int    `json:"len"`
	DevPID  int    `json:"dev_pid"`
}

// asrResponse 识别接口响应
type asrResponse struct {
	ErrNo    int      `json:"err_no"`
	ErrMsg   string   `json:"err_msg"`
	SN       string   `json:"sn"`
	CorpusNo string   `json:"corpus_no"`
	Result   []string `json:"result"`
}

// ProviderError 识别接口返回的非零错误码
type ProviderError struct {
	Code    int
	Message string
}

func (e *ProviderError) Error() string {
	return fmt.Sprintf("err_no=%d: %s", e.Code, e.Message)
}

// FormatForFilename 根据文件名推断音频格式
func FormatForFilename(filename string) string {
	if filename == "" {
		return "wav"
	}
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".mp3":
		return "mp3"
	case ".wav":
		return "wav"
	case ".pcm":
		return "pcm"
	case ".amr":
		return "amr"
	}
	// 微信小程序录音默认格式
	return "mp3"
}

// DevPIDForDialect 根据用户方言偏好选择语言模型
func DevPIDForDialect(dialect string) int {
	switch dialect {
	case "cantonese":
		return DevPIDCantonese
	case "sichuan":
		return DevPIDSichuan
	case "henan":
		return DevPIDHenan
	}
	return DevPIDMandarin
}
