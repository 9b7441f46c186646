package user

import (
	"elderly/app/requests"
	"elderly/app/services"
	"elderly/pkg/response"

	"github.com/gin-gonic/gin"
)

// UserController 用户信息
type UserController struct {
	users *services.UserService
}

// NewUserController 创建用户控制器
func NewUserController(users *services.UserService) *UserController {
	return &UserController{users: users}
}

// Show 用户详情，手机号脱敏
// GET /users/:user_id
func (uc *UserController) Show(c *gin.Context) {
	u, err := uc.users.Get(c.Request.Context(), c.Param("user_id"))
	if err != nil {
		response.Fail(c, err)
		return
	}
	response.Data(c, u)
}

// Save 新增或更新用户
// POST /users
func (uc *UserController) Save(c *gin.Context) {
	req, err := requests.ValidateUser(c)
	if err != nil {
		response.Fail(c, err)
		return
	}

	u, err := uc.users.Save(c.Request.Context(), req.ToModel())
	if err != nil {
		response.Fail(c, err)
		return
	}
	response.Data(c, u)
}
