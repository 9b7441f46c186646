package payment

import (
	"elderly/app/requests"
	"elderly/app/services"
	"elderly/pkg/payment/types"
	"elderly/pkg/response"

	"github.com/gin-gonic/gin"
)

// PaymentController 生活缴费
type PaymentController struct {
	payments *services.PaymentService
	voicePay *services.VoicePayService
}

// NewPaymentController 创建缴费控制器
func NewPaymentController(payments *services.PaymentService, voicePay *services.VoicePayService) *PaymentController {
	return &PaymentController{
		payments: payments,
		voicePay: voicePay,
	}
}

// UnpaidItems 待缴费列表
// GET /payment/unpaid-items?user_id=
func (pc *PaymentController) UnpaidItems(c *gin.Context) {
	pc.listUserItems(c)
}

// History 缴费记录
// GET /payment/history?user_id=
func (pc *PaymentController) History(c *gin.Context) {
	pc.listUserItems(c)
}

// 两个接口目前返回相同数据，不按状态过滤
func (pc *PaymentController) listUserItems(c *gin.Context) {
	userID, err := requests.RequiredQuery(c, "user_id", "用户ID不能为空")
	if err != nil {
		response.Fail(c, err)
		return
	}

	items, err := pc.payments.ListUserItems(c.Request.Context(), userID)
	if err != nil {
		response.Fail(c, err)
		return
	}
	response.Data(c, items)
}

// VoicePay 语音缴费
// POST /payment/voice-pay
func (pc *PaymentController) VoicePay(c *gin.Context) {
	req := &services.VoicePayRequest{}
	if err := c.ShouldBindJSON(req); err != nil {
		response.Error(c, "请求参数格式错误")
		return
	}

	response.Data(c, pc.voicePay.Process(c.Request.Context(), req))
}

// MarkPaid 标记已缴费
// POST /payment/mark-paid?item_id=
func (pc *PaymentController) MarkPaid(c *gin.Context) {
	itemID, err := requests.RequiredQuery(c, "item_id", "缴费项目ID不能为空")
	if err != nil {
		response.Fail(c, err)
		return
	}

	ok, err := pc.payments.MarkPaid(c.Request.Context(), itemID)
	if err != nil {
		response.Fail(c, err)
		return
	}
	if !ok {
		response.Error(c, "标记失败")
		return
	}
	response.Success(c)
}

// Show 缴费项目详情
// GET /payment/items/:item_id
func (pc *PaymentController) Show(c *gin.Context) {
	item, err := pc.payments.GetByID(c.Request.Context(), c.Param("item_id"))
	if err != nil {
		response.Fail(c, err)
		return
	}
	response.Data(c, item)
}

// Store 新增缴费项目
// POST /payment/items
func (pc *PaymentController) Store(c *gin.Context) {
	req, err := requests.ValidatePaymentItem(c)
	if err != nil {
		response.Fail(c, err)
		return
	}

	item := req.ToModel()
	if err := pc.payments.Create(c.Request.Context(), item); err != nil {
		response.Fail(c, err)
		return
	}
	response.Data(c, item)
}

// Update 更新缴费项目，路径中的 ID 优先
// PUT /payment/items/:item_id
func (pc *PaymentController) Update(c *gin.Context) {
	req, err := requests.ValidatePaymentItem(c)
	if err != nil {
		response.Fail(c, err)
		return
	}

	item := req.ToModel()
	item.ItemID = c.Param("item_id")
	if err := pc.payments.Update(c.Request.Context(), item); err != nil {
		response.Fail(c, err)
		return
	}
	response.Data(c, item)
}

// Destroy 删除缴费项目
// DELETE /payment/items/:item_id
func (pc *PaymentController) Destroy(c *gin.Context) {
	ok, err := pc.payments.Delete(c.Request.Context(), c.Param("item_id"))
	if err != nil {
		response.Fail(c, err)
		return
	}
	if !ok {
		response.Error(c, "删除失败")
		return
	}
	response.Success(c)
}

// VoiceSummary 待缴费语音播报文本
// GET /payment/voice-summary?user_id=
func (pc *PaymentController) VoiceSummary(c *gin.Context) {
	userID, err := requests.RequiredQuery(c, "user_id", "用户ID不能为空")
	if err != nil {
		response.Fail(c, err)
		return
	}

	text, err := pc.payments.VoiceSummary(c.Request.Context(), userID)
	if err != nil {
		response.Fail(c, err)
		return
	}
	response.Data(c, gin.H{"text": text})
}

// Prepay 发起在线支付
// POST /payment/prepay
func (pc *PaymentController) Prepay(c *gin.Context) {
	req, err := requests.ValidatePrepay(c)
	if err != nil {
		response.Fail(c, err)
		return
	}

	result, err := pc.payments.Prepay(c.Request.Context(), req.ItemID, types.Provider(req.Provider), req.OpenID)
	if err != nil {
		response.Fail(c, err, "支付发起失败：")
		return
	}
	response.Data(c, result)
}
