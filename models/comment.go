package models

import "time"

type PetitionComment struct {
	CID        uint      `gorm:"primaryKey;column:c_id"`
	PetitionID uint      `gorm:"not null;index"`
	UID        uint      `gorm:"not null;column:u_id"`
	Content    string    `gorm:"type:text;not null"`
	CreatedAt  time.Time `gorm:"column:create_at;autoCreateTime"`
	UpdatedAt  time.Time `gorm:"column:update_at;autoUpdateTime"`
}

type CommentLike struct {
	CID       uint      `gorm:"primaryKey;column:c_id"`
	UID       uint      `gorm:"primaryKey;column:u_id"`
	CreatedAt time.Time `gorm:"column:create_at;autoCreateTime"`
}
