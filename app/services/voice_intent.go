package services

import (
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
)

// PaymentIntent 从识别文本中提取的缴费意图
type PaymentIntent struct {
	IsPayment    bool
	PaymentType  string
	Amount       decimal.Decimal
	IsConfirm    bool
	IsCancel     bool
	OriginalText string
}

var (
	paymentKeywords = []string{"缴费", "支付", "交费", "付款", "付费", "缴纳"}
	confirmKeywords = []string{"确认", "确定", "好的", "是的", "对", "没错", "支付"}
	// 否定优先于确认，“取消支付”“不对”不能触发支付
	cancelKeywords = []string{"取消", "不要", "不用", "不对", "不是", "不缴", "不交", "算了", "放弃", "别"}

	// 按顺序匹配，“水电”归为水费
	typeKeywords = []struct {
		Type     string
		Keywords []string
	}{
		{"水费", []string{"水费", "水电", "自来水"}},
		{"电费", []string{"电费", "水电", "电费账单"}},
		{"网费", []string{"网费", "宽带", "网络费", "上网费"}},
		{"话费", []string{"话费", "电话费", "手机费"}},
	}

	amountPattern = regexp.MustCompile(`(\d+\.?\d*)\s*元`)
)

// ExtractPaymentIntent 关键词匹配提取意图
func ExtractPaymentIntent(text string) PaymentIntent {
	intent := PaymentIntent{
		IsPayment:    containsAny(text, paymentKeywords),
		IsCancel:     containsAny(text, cancelKeywords),
		OriginalText: text,
	}
	intent.IsConfirm = !intent.IsCancel && containsAny(text, confirmKeywords)

	for _, t := range typeKeywords {
		if containsAny(text, t.Keywords) {
			intent.PaymentType = t.Type
			break
		}
	}

	if m := amountPattern.FindStringSubmatch(text); m != nil {
		if amount, err := decimal.NewFromString(m[1]); err == nil {
			intent.Amount = amount
		}
	}

	return intent
}

func containsAny(text string, keywords []string) bool {
	for _, k := range keywords {
		if strings.Contains(text, k) {
			return true
		}
	}
	return false
}
