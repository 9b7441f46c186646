// Package payment 生活缴费项目模型
package payment

import (
	"github.com/shopspring/decimal"
)

// PaymentItem 缴费项目
type PaymentItem struct {
	ItemID      string          `gorm:"column:config_id;primaryKey;type:varchar(64)" json:"itemId"`
	UserID      string          `gorm:"column:user_id;type:varchar(64);index" json:"userId"`    // 用户ID
	ItemType    string          `gorm:"column:payment_type;type:varchar(32)" json:"itemType"`   // 缴费类型（水费/电费/网费/话费）
	Account     string          `gorm:"column:account_number;type:varchar(64)" json:"account"`  // 缴费账号（如水电表号）
	Amount      decimal.Decimal `gorm:"column:default_amount;type:decimal(10,2)" json:"amount"` // 待缴金额
	Status      string          `gorm:"column:status;type:varchar(16);index" json:"status"`     // 状态（欠费/已缴清）
	DueDate     string          `gorm:"column:due_date;type:varchar(10)" json:"dueDate"`        // 缴费截止日期（yyyy-MM-dd）
	BillMonth   string          `gorm:"column:bill_month;type:varchar(7)" json:"billMonth"`     // 账单所属月份（yyyy-MM）
	Remark      string          `gorm:"column:remark;type:varchar(255)" json:"remark"`          // 备注
	CreateTime  int64           `gorm:"column:create_time;index" json:"createTime"`             // 创建时间（毫秒）
	UpdateTime  int64           `gorm:"column:update_time" json:"updateTime"`                   // 更新时间（毫秒）
	LastPayTime int64           `gorm:"column:last_pay_time" json:"lastPayTime"`                // 上次缴费时间（毫秒）
}

// TableName 指定表名
func (PaymentItem) TableName() string {
	return "PAYMENT_CONFIG"
}
