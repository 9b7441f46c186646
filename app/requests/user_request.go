package requests

import (
	"elderly/app/models/user"
	"elderly/pkg/apperr"

	"github.com/gin-gonic/gin"
	"github.com/thedevsaddam/govalidator"
)

// UserRequest 新增或更新用户
type UserRequest struct {
	UserID      string `json:"userId"`
	UserName    string `json:"userName"`
	UserAge     int    `json:"userAge"`
	Phone       string `json:"phone"`
	DialectType string `json:"dialectType"`
	AvatarURL   string `json:"avatarUrl"`
}

// ToModel 转换为模型
func (r *UserRequest) ToModel() *user.UserBase {
	return &user.UserBase{
		UserID:      r.UserID,
		UserName:    r.UserName,
		UserAge:     r.UserAge,
		Phone:       r.Phone,
		DialectType: r.DialectType,
		AvatarURL:   r.AvatarURL,
	}
}

// ValidateUser 校验用户信息
func ValidateUser(c *gin.Context) (*UserRequest, error) {
	rules := govalidator.MapData{
		"userId":      []string{"required", "max:64"},
		"userName":    []string{"max:50"},
		"userAge":     []string{"numeric_between:0,150"},
		"phone":       []string{"digits:11"},
		"dialectType": []string{"in:zh,cantonese,sichuan,henan"},
		"avatarUrl":   []string{"url"},
	}
	messages := govalidator.MapData{
		"userId": []string{
			"required:用户ID不能为空",
			"max:用户ID长度不能超过 64 个字符",
		},
		"userName": []string{
			"max:姓名长度不能超过 50 个字符",
		},
		"userAge": []string{
			"numeric_between:年龄必须在 0 到 150 之间",
		},
		"phone": []string{
			"digits:手机号必须为 11 位数字",
		},
		"dialectType": []string{
			"in:方言类型必须是 zh、cantonese、sichuan 或 henan",
		},
		"avatarUrl": []string{
			"url:头像地址格式不正确",
		},
	}
	return ValidateRequest[UserRequest](c, rules, messages)
}

func invalid(msg string) error {
	return apperr.Invalid("%s", msg)
}
