package taxi

import (
	"elderly/app/requests"
	"elderly/app/services"
	"elderly/pkg/response"

	"github.com/gin-gonic/gin"
)

// TaxiController 打车订单
type TaxiController struct {
	orders *services.TaxiService
}

// NewTaxiController 创建打车控制器
func NewTaxiController(orders *services.TaxiService) *TaxiController {
	return &TaxiController{orders: orders}
}

// Store 下单
// POST /taxi/orders
func (tc *TaxiController) Store(c *gin.Context) {
	req, err := requests.ValidateTaxiOrder(c)
	if err != nil {
		response.Fail(c, err)
		return
	}

	order := req.ToModel()
	if err := tc.orders.Create(c.Request.Context(), order); err != nil {
		response.Fail(c, err)
		return
	}
	response.Data(c, order)
}

// Show 订单详情
// GET /taxi/orders/:order_id
func (tc *TaxiController) Show(c *gin.Context) {
	order, err := tc.orders.Get(c.Request.Context(), c.Param("order_id"))
	if err != nil {
		response.Fail(c, err)
		return
	}
	response.Data(c, order)
}

// Index 用户订单列表
// GET /taxi/orders?user_id=
func (tc *TaxiController) Index(c *gin.Context) {
	userID, err := requests.RequiredQuery(c, "user_id", "用户ID不能为空")
	if err != nil {
		response.Fail(c, err)
		return
	}

	orders, err := tc.orders.ListByUser(c.Request.Context(), userID)
	if err != nil {
		response.Fail(c, err)
		return
	}
	response.Data(c, orders)
}

// Cancel 取消订单
// POST /taxi/orders/:order_id/cancel
func (tc *TaxiController) Cancel(c *gin.Context) {
	req, err := requests.ValidateCancelTaxiOrder(c)
	if err != nil {
		response.Fail(c, err)
		return
	}

	order, err := tc.orders.Cancel(c.Request.Context(), c.Param("order_id"), req.Cancelor, req.Reason)
	if err != nil {
		response.Fail(c, err)
		return
	}
	response.Data(c, order)
}
