// Package taxi 打车订单模型
package taxi

import (
	"github.com/shopspring/decimal"
)

// TaxiOrder 打车订单
type TaxiOrder struct {
	OrderID        string          `gorm:"column:order_id;primaryKey;type:varchar(64)" json:"orderId"`
	UserID         string          `gorm:"column:user_id;type:varchar(64);index" json:"userId"`
	OutTradeNo     string          `gorm:"column:out_trade_no;type:varchar(64)" json:"outTradeNo"`     // 支付订单号
	StartAddress   string          `gorm:"column:start_address;type:varchar(255)" json:"startAddress"` // 起点地址
	StartLongitude decimal.Decimal `gorm:"column:start_longitude;type:decimal(10,6)" json:"startLongitude"`
	StartLatitude  decimal.Decimal `gorm:"column:start_latitude;type:decimal(10,6)" json:"startLatitude"`
	EndAddress     string          `gorm:"column:end_address;type:varchar(255)" json:"endAddress"` // 终点地址
	EndLongitude   decimal.Decimal `gorm:"column:end_longitude;type:decimal(10,6)" json:"endLongitude"`
	EndLatitude    decimal.Decimal `gorm:"column:end_latitude;type:decimal(10,6)" json:"endLatitude"`
	StartTime      string          `gorm:"column:start_time;type:varchar(32)" json:"startTime"` // 出发时间
	DriverID       string          `gorm:"column:driver_id;type:varchar(64)" json:"driverId"`
	DriverName     string          `gorm:"column:driver_name;type:varchar(50)" json:"driverName"`
	LicensePlate   string          `gorm:"column:license_plate;type:varchar(16)" json:"licensePlate"`
	DriverPhone    string          `gorm:"column:driver_phone;type:varchar(32)" json:"driverPhone"`
	Status         Status          `gorm:"column:status;index" json:"status"`
	Distance       decimal.Decimal `gorm:"column:distance;type:decimal(10,2)" json:"distance"` // 实际行驶距离(km)
	Duration       int             `gorm:"column:duration" json:"duration"`                    // 实际行驶时长(分钟)
	BaseFee        decimal.Decimal `gorm:"column:base_fee;type:decimal(10,2)" json:"baseFee"`
	DistanceFee    decimal.Decimal `gorm:"column:distance_fee;type:decimal(10,2)" json:"distanceFee"`
	TimeFee        decimal.Decimal `gorm:"column:time_fee;type:decimal(10,2)" json:"timeFee"`
	ExtraFee       decimal.Decimal `gorm:"column:extra_fee;type:decimal(10,2)" json:"extraFee"`
	DiscountFee    decimal.Decimal `gorm:"column:discount_fee;type:decimal(10,2)" json:"discountFee"`
	TotalFee       decimal.Decimal `gorm:"column:total_fee;type:decimal(10,2)" json:"totalFee"`
	PayStatus      string          `gorm:"column:pay_status;type:varchar(16)" json:"payStatus"`
	CreateTime     int64           `gorm:"column:create_time;index" json:"createTime"`
	DispatchTime   int64           `gorm:"column:dispatch_time" json:"dispatchTime"`
	AcceptTime     int64           `gorm:"column:accept_time" json:"acceptTime"`
	PickUpTime     int64           `gorm:"column:pick_up_time" json:"pickUpTime"`
	CompleteTime   int64           `gorm:"column:complete_time" json:"completeTime"`
	CancelTime     int64           `gorm:"column:cancel_time" json:"cancelTime"`
	Cancelor       string          `gorm:"column:cancelor;type:varchar(16)" json:"cancelor"`
	CancelReason   string          `gorm:"column:cancel_reason;type:varchar(255)" json:"cancelReason"`
	Remark         string          `gorm:"column:remark;type:varchar(255)" json:"remark"`
}

// TableName 指定表名
func (TaxiOrder) TableName() string {
	return "TAXI_ORDER"
}
