package models

import "time"

type VerificationStatus string

const (
	VerificationPending  VerificationStatus = "pending"
	VerificationVerified VerificationStatus = "verified"
)

type Signature struct {
	SID                uint      `gorm:"primaryKey;column:s_id"`
	PetitionID         uint      `gorm:"not null;uniqueIndex:idx_signatures_petition_email"`
	SignerName         string    `gorm:"size:200;not null"`
	SignerEmail        string    `gorm:"size:100;not null;uniqueIndex:idx_signatures_petition_email"`
	Comment            *string   `gorm:"type:text"`
	VerificationStatus string    `gorm:"size:20;default:'verified';not null"`
	VerificationToken  *string   `gorm:"size:64"`
	VerifiedAt         *time.Time
	IPAddress          *string   `gorm:"size:45"`
	CreatedAt          time.Time `gorm:"column:create_at;autoCreateTime"`
}
