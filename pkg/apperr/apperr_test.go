package apperr

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKindSurvivesWrapping(t *testing.T) {
	base := errors.New("connection reset")
	err := fmt.Errorf("query payment items: %w", Wrap(PersistenceError, base, "写入失败"))

	assert.True(t, Is(err, PersistenceError))
	assert.False(t, Is(err, NotFound))
	assert.ErrorIs(t, err, base)
	assert.Equal(t, "query payment items: 写入失败", err.Error())
}

func TestKindOfPlainError(t *testing.T) {
	assert.Equal(t, Kind(""), KindOf(errors.New("boom")))
	assert.Equal(t, Kind(""), KindOf(nil))
}

func TestMessageFallsBackToCause(t *testing.T) {
	err := Wrap(ExternalServiceError, errors.New("timeout"), "")
	assert.Equal(t, "timeout", err.Error())
	assert.Equal(t, InvalidArgument, Invalid("用户ID不能为空").Kind)
	assert.Equal(t, "缴费项目不存在", NotFoundf("缴费项目不存在").Error())
}
