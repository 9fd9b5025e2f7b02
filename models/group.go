package models

import "time"

type Group struct {
	GID         uint      `gorm:"primaryKey;column:g_id"`
	Name        string    `gorm:"size:100;not null"`
	Description *string   `gorm:"type:text"`
	LogoURL     *string   `gorm:"size:500"`
	CreatedBy   uint      `gorm:"not null"`
	CreatedAt   time.Time `gorm:"column:create_at;autoCreateTime"`
	UpdatedAt   time.Time `gorm:"column:update_at;autoUpdateTime"`
}

type GroupMember struct {
	GID       uint      `gorm:"primaryKey;column:g_id"`
	UID       uint      `gorm:"primaryKey;column:u_id"`
	Role      string    `gorm:"size:20;default:'member';not null"`
	CreatedAt time.Time `gorm:"column:create_at;autoCreateTime"`
}

type GroupMessage struct {
	MID       uint      `gorm:"primaryKey;column:m_id"`
	GID       uint      `gorm:"not null;index;column:g_id"`
	UID       uint      `gorm:"not null;column:u_id"`
	Content   string    `gorm:"type:text;not null"`
	CreatedAt time.Time `gorm:"column:create_at;autoCreateTime"`
}

type GroupPetition struct {
	GID       uint      `gorm:"primaryKey;column:g_id"`
	PID       uint      `gorm:"primaryKey;column:p_id"`
	CreatedAt time.Time `gorm:"column:create_at;autoCreateTime"`
}
