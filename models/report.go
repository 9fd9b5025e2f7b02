package models

import "time"

type ReportTargetType string

const (
	ReportTargetPetition ReportTargetType = "petition"
	ReportTargetComment  ReportTargetType = "comment"
)

type Report struct {
	RID        uint      `gorm:"primaryKey;column:r_id"`
	ReporterID uint      `gorm:"not null"`
	TargetType string    `gorm:"size:20;not null"`
	TargetID   uint      `gorm:"not null"`
	Reason     string    `gorm:"size:100;not null"`
	Details    *string   `gorm:"type:text"`
	Status     string    `gorm:"size:20;default:'open';not null"`
	CreatedAt  time.Time `gorm:"column:create_at;autoCreateTime"`
}
