package models

import (
	"time"
)

// LoginTimeLayout 登录时间以 UTC 文本保存，如 2024-05-01T10:00:00.000Z
const LoginTimeLayout = "2006-01-02T15:04:05.000Z07:00"

// User 后台管理员
type User struct {
	ID       uint   `json:"id" gorm:"primaryKey"`
	Username string `json:"username" gorm:"not null"`
	Password string `json:"-" gorm:"not null"` // bcrypt 哈希，永不输出

	// 以下两列由 MigrateUserColumns 追加，旧库中同样是 TEXT
	LastLoginTime *string `json:"last_login_time" gorm:"type:text"`
	LastLoginIP   *string `json:"last_login_ip" gorm:"column:last_login_ip;type:text"`
}

// TableName 设置表名
func (User) TableName() string {
	return "users"
}

// FormatLoginTime 按 LoginTimeLayout 格式化登录时间
func FormatLoginTime(t time.Time) string {
	return t.UTC().Format(LoginTimeLayout)
}
