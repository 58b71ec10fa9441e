package models

import "time"

// SentinelUsername 删除用户后接管其内容的占位账号
const SentinelUsername = "deleted"

type User struct {
	ID          uint64    `gorm:"column:id;primaryKey;autoIncrement:false" json:"id"`
	Username    string    `gorm:"column:username;type:varchar(40);uniqueIndex:uk_users_username;not null" json:"username"`
	Nickname    string    `gorm:"column:nickname;type:varchar(40);default:''" json:"nickname"`
	Email       string    `gorm:"column:email;type:varchar(120);not null" json:"email"`
	Password    string    `gorm:"column:password;type:varchar(80);not null" json:"-"`
	Gender      string    `gorm:"column:gender;type:char(1);default:'M'" json:"gender"` // M/F
	Address     string    `gorm:"column:address;type:varchar(100);default:''" json:"address"`
	Description string    `gorm:"column:description;type:varchar(400);default:''" json:"description"`
	Avatar      string    `gorm:"column:avatar;type:varchar(255);default:''" json:"avatar"`
	Confirmed   bool      `gorm:"column:confirmed;not null;default:false" json:"confirmed"`
	CreatedAt   time.Time `gorm:"column:created_at" json:"created_at"`
}

func (User) TableName() string {
	return "users"
}
