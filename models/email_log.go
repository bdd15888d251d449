package models

import (
	"time"

	"github.com/google/uuid"
)

// EmailLog records every decision mail attempt, sent or failed.
type EmailLog struct {
	BaseModel
	PermitRequestID uuid.UUID  `gorm:"type:char(36);not null;column:permohonan_id" json:"permohonan_id"`
	EmailTujuan     string     `gorm:"not null;size:100;column:email_tujuan" json:"email_tujuan"`
	Subjek          string     `gorm:"not null;size:255;column:subjek" json:"subjek"`
	Isi             string     `gorm:"type:text;not null;column:isi" json:"isi"`
	Status          string     `gorm:"size:20;column:status" json:"status"` // pending|sent|failed
	Error           string     `gorm:"type:text;column:error" json:"error,omitempty"`
	SentAt          *time.Time `gorm:"column:sent_at" json:"sent_at,omitempty"`
}

func (EmailLog) TableName() string {
	return "email_logs"
}
