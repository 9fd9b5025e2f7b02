package models

import "time"

type SavedPetition struct {
	UID       uint      `gorm:"primaryKey;column:u_id"`
	PID       uint      `gorm:"primaryKey;column:p_id"`
	CreatedAt time.Time `gorm:"column:create_at;autoCreateTime"`
}
