package voice

import (
	"context"
	"io"

	"elderly/pkg/baidu"
	"elderly/pkg/logger"
	"elderly/pkg/response"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// 上传音频大小上限，百度短语音识别最长 60 秒
const maxAudioSize = 10 << 20

// Recognizer 语音识别
type Recognizer interface {
	Recognize(ctx context.Context, audio []byte, opts baidu.Options) (string, error)
}

// VoiceController 语音识别代理
type VoiceController struct {
	recognizer Recognizer
}

// NewVoiceController 创建语音控制器
func NewVoiceController(recognizer Recognizer) *VoiceController {
	return &VoiceController{recognizer: recognizer}
}

// Recognize 上传音频文件，返回识别文本
// POST /voice/recognize  multipart: file, dialect(可选)
func (vc *VoiceController) Recognize(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		response.Error(c, "请上传音频文件")
		return
	}
	if fileHeader.Size > maxAudioSize {
		response.Error(c, "音频文件过大")
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		response.Fail(c, err, "读取音频失败：")
		return
	}
	defer file.Close()

	audio, err := io.ReadAll(file)
	if err != nil {
		response.Fail(c, err, "读取音频失败：")
		return
	}

	opts := baidu.Options{
		Filename: fileHeader.Filename,
		DevPID:   baidu.DevPIDForDialect(c.PostForm("dialect")),
	}
	text, err := vc.recognizer.Recognize(c.Request.Context(), audio, opts)
	if err != nil {
		response.Fail(c, err, "语音识别失败：")
		return
	}

	logger.Debug("Voice", zap.String("filename", fileHeader.Filename), zap.Int("size", len(audio)), zap.String("text", text))
	response.Data(c, gin.H{"text": text})
}
