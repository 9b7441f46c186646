package requests

import (
	"encoding/json"

	"elderly/app/models/taxi"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/thedevsaddam/govalidator"
)

// TaxiOrderRequest 叫车请求
type TaxiOrderRequest struct {
	UserID         string      `json:"userId"`
	StartAddress   string      `json:"startAddress"`
	StartLongitude json.Number `json:"startLongitude"`
	StartLatitude  json.Number `json:"startLatitude"`
	EndAddress     string      `json:"endAddress"`
	EndLongitude   json.Number `json:"endLongitude"`
	EndLatitude    json.Number `json:"endLatitude"`
	StartTime      string      `json:"startTime"`
	Remark         string      `json:"remark"`
}

// ToModel 转换为模型
func (r *TaxiOrderRequest) ToModel() *taxi.TaxiOrder {
	return &taxi.TaxiOrder{
		UserID:         r.UserID,
		StartAddress:   r.StartAddress,
		StartLongitude: coord(r.StartLongitude),
		StartLatitude:  coord(r.StartLatitude),
		EndAddress:     r.EndAddress,
		EndLongitude:   coord(r.EndLongitude),
		EndLatitude:    coord(r.EndLatitude),
		StartTime:      r.StartTime,
		Remark:         r.Remark,
	}
}

// ValidateTaxiOrder 校验叫车请求
func ValidateTaxiOrder(c *gin.Context) (*TaxiOrderRequest, error) {
	rules := govalidator.MapData{
		"userId":       []string{"required"},
		"startAddress": []string{"required", "max:255"},
		"endAddress":   []string{"required", "max:255"},
		"remark":       []string{"max:255"},
	}
	messages := govalidator.MapData{
		"userId": []string{
			"required:用户ID不能为空",
		},
		"startAddress": []string{
			"required:起点不能为空",
			"max:起点地址过长",
		},
		"endAddress": []string{
			"required:终点不能为空",
			"max:终点地址过长",
		},
		"remark": []string{
			"max:备注过长",
		},
	}
	return ValidateRequest[TaxiOrderRequest](c, rules, messages)
}

// CancelTaxiOrderRequest 取消订单
type CancelTaxiOrderRequest struct {
	Cancelor string `json:"cancelor"`
	Reason   string `json:"reason"`
}

// ValidateCancelTaxiOrder 校验取消请求，请求体可为空
func ValidateCancelTaxiOrder(c *gin.Context) (*CancelTaxiOrderRequest, error) {
	req := &CancelTaxiOrderRequest{}
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(req); err != nil {
			return nil, invalid("请求参数格式错误")
		}
	}
	rules := govalidator.MapData{
		"cancelor": []string{"in:user,driver,system"},
		"reason":   []string{"max:255"},
	}
	messages := govalidator.MapData{
		"cancelor": []string{"in:取消方必须是 user、driver 或 system"},
		"reason":   []string{"max:取消原因过长"},
	}
	if err := ValidateStruct(req, rules, messages); err != nil {
		return nil, err
	}
	return req, nil
}

// coord 坐标解析失败按 0 处理，前端可能未授权定位
func coord(n json.Number) decimal.Decimal {
	d, err := parseDecimal(n)
	if err != nil {
		return decimal.Zero
	}
	return d
}
