package requests

import (
	"encoding/json"

	"elderly/app/models/payment"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/thedevsaddam/govalidator"
)

// PaymentItemRequest 创建或更新缴费项目
type PaymentItemRequest struct {
	ItemID    string      `json:"itemId"`
	UserID    string      `json:"userId"`
	ItemType  string      `json:"itemType"`
	Account   string      `json:"account"`
	Amount    json.Number `json:"amount"`
	Status    string      `json:"status"`
	DueDate   string      `json:"dueDate"`
	BillMonth string      `json:"billMonth"`
	Remark    string      `json:"remark"`
}

// ToModel 转换为模型
func (r *PaymentItemRequest) ToModel() *payment.PaymentItem {
	amount, _ := parseDecimal(r.Amount)
	return &payment.PaymentItem{
		ItemID:    r.ItemID,
		UserID:    r.UserID,
		ItemType:  r.ItemType,
		Account:   r.Account,
		Amount:    amount,
		Status:    r.Status,
		DueDate:   r.DueDate,
		BillMonth: r.BillMonth,
		Remark:    r.Remark,
	}
}

// ValidatePaymentItem 校验缴费项目
func ValidatePaymentItem(c *gin.Context) (*PaymentItemRequest, error) {
	rules := govalidator.MapData{
		"userId":    []string{"required"},
		"itemType":  []string{"required", "in:水费,电费,网费,话费,燃气费,物业费"},
		"status":    []string{"in:欠费,已缴清"},
		"dueDate":   []string{"date"},
		"billMonth": []string{"regex:^\\d{4}-\\d{2}$"},
	}
	messages := govalidator.MapData{
		"userId": []string{
			"required:用户ID不能为空",
		},
		"itemType": []string{
			"required:缴费类型不能为空",
			"in:缴费类型必须是水费、电费、网费、话费、燃气费或物业费",
		},
		"status": []string{
			"in:状态必须是欠费或已缴清",
		},
		"dueDate": []string{
			"date:截止日期格式应为 yyyy-MM-dd",
		},
		"billMonth": []string{
			"regex:账单月份格式应为 yyyy-MM",
		},
	}

	req, err := ValidateRequest[PaymentItemRequest](c, rules, messages)
	if err != nil {
		return nil, err
	}
	amount, err := parseDecimal(req.Amount)
	if err != nil {
		return nil, invalid("金额格式不正确")
	}
	if amount.IsNegative() {
		return nil, invalid("金额不能为负数")
	}
	return req, nil
}

// PrepayRequest 发起在线支付
type PrepayRequest struct {
	ItemID   string `json:"item_id"`
	Provider string `json:"provider"`
	OpenID   string `json:"openid"`
}

// ValidatePrepay 校验在线支付请求
func ValidatePrepay(c *gin.Context) (*PrepayRequest, error) {
	rules := govalidator.MapData{
		"item_id":  []string{"required"},
		"provider": []string{"required", "in:wechat,alipay"},
	}
	messages := govalidator.MapData{
		"item_id": []string{
			"required:缴费项目ID不能为空",
		},
		"provider": []string{
			"required:支付方式不能为空",
			"in:支付方式必须是 wechat 或 alipay",
		},
	}
	req, err := ValidateRequest[PrepayRequest](c, rules, messages)
	if err != nil {
		return nil, err
	}
	if req.Provider == "wechat" && req.OpenID == "" {
		return nil, invalid("微信支付需要 openid")
	}
	return req, nil
}

// parseDecimal 空值视为 0
func parseDecimal(n json.Number) (decimal.Decimal, error) {
	if n == "" {
		return decimal.Zero, nil
	}
	return decimal.NewFromString(string(n))
}
