package migrations

import (
	"elderly/app/models/payment"
	"elderly/app/models/taxi"
	"elderly/app/models/user"
)

// RegisterTables 返回需要迁移的表的模型列表
func RegisterTables() []interface{} {
	return []interface{}{
		&payment.PaymentItem{},
		&taxi.TaxiOrder{},
		&user.UserBase{},
	}
}
