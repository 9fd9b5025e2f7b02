package models

import "time"

type UserRole string

const (
	UserRoleAdmin     UserRole = "admin"
	UserRoleModerator UserRole = "moderator"
	UserRoleUser      UserRole = "user"
)

type User struct {
	UID       uint      `gorm:"primaryKey;column:u_id"`
	Email     string    `gorm:"size:100;not null;unique" json:"Email"`
	Password  string    `gorm:"size:255;not null" json:"-"`
	FullName  *string   `gorm:"size:100"`
	City      *string   `gorm:"size:100"`
	CreatedAt time.Time `gorm:"column:create_at;autoCreateTime"`
	UpdatedAt time.Time `gorm:"column:update_at;autoUpdateTime"`
}

type UserRoleAssignment struct {
	UID       uint      `gorm:"primaryKey;column:u_id"`
	Role      string    `gorm:"primaryKey;size:20"`
	CreatedAt time.Time `gorm:"column:create_at;autoCreateTime"`
}

func (UserRoleAssignment) TableName() string {
	return "user_roles"
}
