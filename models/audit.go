package models

import "time"

type AuditLog struct {
	ID           uint   `gorm:"primaryKey"`
	UserID       uint   `gorm:"index"`
	Action       string `gorm:"size:50;not null"`
	ResourceType string `gorm:"size:50;not null"`
	ResourceID   string `gorm:"size:100"`
	OldData      []byte `gorm:"type:jsonb"`
	NewData      []byte `gorm:"type:jsonb"`
	IPAddress    string `gorm:"size:45"`
	UserAgent    string `gorm:"size:255"`
	Description  string `gorm:"size:255"`
	CreatedAt    time.Time
}
