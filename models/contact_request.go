package models

import "time"

type ContactRequest struct {
	ID        uint      `gorm:"primaryKey"`
	Name      string    `gorm:"size:100;not null"`
	Email     string    `gorm:"size:100;not null"`
	Subject   string    `gorm:"size:200;not null"`
	Message   string    `gorm:"type:text;not null"`
	Processed bool      `gorm:"default:false;not null"`
	CreatedAt time.Time `gorm:"column:create_at;autoCreateTime"`
}
