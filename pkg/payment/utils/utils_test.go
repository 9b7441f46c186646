package utils

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerateOrderNoIsUnique(t *testing.T) {
	a, b := GenerateOrderNo(), GenerateOrderNo()
	assert.True(t, strings.HasPrefix(a, OrderNoPrefix))
	assert.NotEqual(t, a, b)
}

func TestGenerateNonceStr(t *testing.T) {
	assert.Len(t, GenerateNonceStr(), 32)
}

func TestFenToYuan(t *testing.T) {
	assert.Equal(t, "100.50", FenToYuan(10050))
	assert.Equal(t, "0.01", FenToYuan(1))
}

func TestValidateAmount(t *testing.T) {
	assert.NoError(t, ValidateAmount(1))
	assert.Error(t, ValidateAmount(0))
}
