package utils

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"

	"elderly/pkg/idgen"

	"github.com/shopspring/decimal"
)

// OrderNoPrefix 支付订单号前缀
const OrderNoPrefix = "PAY"

// GenerateOrderNo 生成订单号，雪花算法保证多实例不重复
func GenerateOrderNo() string {
	return idgen.WithPrefix(OrderNoPrefix)
}

// GenerateNonceStr 生成随机字符串
func GenerateNonceStr() string {
	b := make([]byte, 16)
	if _, err := rand.Read(b); err != nil {
		return idgen.NextIDString()
	}
	return hex.EncodeToString(b)
}

// FenToYuan 分转元，保留两位小数
func FenToYuan(fen int64) string {
	return decimal.New(fen, -2).StringFixed(2)
}

// ValidateAmount 校验支付金额
func ValidateAmount(fen int64) error {
	if fen <= 0 {
		return fmt.Errorf("invalid amount: %d", fen)
	}
	return nil
}
