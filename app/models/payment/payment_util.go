package payment

import (
	"github.com/shopspring/decimal"
)

func init() {
	// 金额按数字输出，与旧版接口保持一致
	decimal.MarshalJSONWithoutQuotes = true
}

// 缴费状态
const (
	StatusUnpaid  = "欠费"  // 欠费
	StatusSettled = "已缴清" // 已缴清
)

// ItemIDPrefix 缴费项目ID前缀
const ItemIDPrefix = "PAY_ITEM_"

// DeriveStatus 根据金额推导状态：大于 0 为欠费，否则为已缴清
func DeriveStatus(amount decimal.Decimal) string {
	if amount.GreaterThan(decimal.Zero) {
		return StatusUnpaid
	}
	return StatusSettled
}

// IsUnpaid 检查是否欠费
func (p *PaymentItem) IsUnpaid() bool {
	return p.Status == StatusUnpaid
}

// IsSettled 检查是否已缴清
func (p *PaymentItem) IsSettled() bool {
	return p.Status == StatusSettled
}

// AmountInFen 金额转换为分，支付渠道使用
func (p *PaymentItem) AmountInFen() int64 {
	return p.Amount.Mul(decimal.NewFromInt(100)).Round(0).IntPart()
}

// MarkSettled 标记为已缴清，欠费金额清零
func (p *PaymentItem) MarkSettled(now int64) {
	p.Status = StatusSettled
	p.Amount = decimal.Zero
	p.LastPayTime = now
	p.UpdateTime = now
}
