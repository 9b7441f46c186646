// Package user 存放用户 Model 相关逻辑
package user

// UserBase 用户基础信息
type UserBase struct {
	UserID      string `gorm:"column:user_id;primaryKey;type:varchar(64)" json:"userId"`
	UserName    string `gorm:"column:user_name;type:varchar(50)" json:"userName"`       // 姓名
	UserAge     int    `gorm:"column:user_age" json:"userAge"`                          // 年龄
	Phone       string `gorm:"column:phone;type:varchar(255)" json:"phone"`             // 手机号（AES加密存储）
	DialectType string `gorm:"column:dialect_type;type:varchar(16)" json:"dialectType"` // 方言类型（zh/cantonese/sichuan/henan）
	AvatarURL   string `gorm:"column:avatar_url;type:varchar(512)" json:"avatarUrl"`    // 头像URL
	CreateTime  int64  `gorm:"column:create_time" json:"createTime"`                    // 注册时间（毫秒）
	UpdateTime  int64  `gorm:"column:update_time" json:"updateTime"`                    // 更新时间（毫秒）
}

// TableName 表名
func (UserBase) TableName() string {
	return "USER_BASE"
}
