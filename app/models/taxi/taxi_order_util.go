package taxi

import "github.com/shopspring/decimal"

// Status 订单状态
type Status int

const (
	StatusPendingDispatch Status = iota // 待派单
	StatusDispatched                    // 已派单
	StatusDriverAccepted                // 司机已接单
	StatusPickedUp                      // 已接驾
	StatusCompleted                     // 已完成
	StatusCanceled                      // 已取消
)

// OrderIDPrefix 订单号前缀
const OrderIDPrefix = "TAXI_"

var statusNames = map[Status]string{
	StatusPendingDispatch: "待派单",
	StatusDispatched:      "已派单",
	StatusDriverAccepted:  "司机已接单",
	StatusPickedUp:        "已接驾",
	StatusCompleted:       "已完成",
	StatusCanceled:        "已取消",
}

// String 状态中文名
func (s Status) String() string {
	if name, ok := statusNames[s]; ok {
		return name
	}
	return "未知状态"
}

// Cancelable 完成和已取消的订单不可再取消
func (s Status) Cancelable() bool {
	return s >= StatusPendingDispatch && s <= StatusPickedUp
}

// SumFee 计算总费用：起步价 + 里程费 + 时长费 + 附加费 - 优惠，不低于 0
func (o *TaxiOrder) SumFee() decimal.Decimal {
	total := o.BaseFee.Add(o.DistanceFee).Add(o.TimeFee).Add(o.ExtraFee).Sub(o.DiscountFee)
	if total.IsNegative() {
		return decimal.Zero
	}
	return total
}
