package models

import (
	"time"

	"github.com/google/uuid"
)

// Notification signals a newly arrived permit request to an admin. The read
// flag is the only mutable field.
type Notification struct {
	BaseModel
	AdminID         uuid.UUID     `gorm:"type:char(36);not null;column:admin_id" json:"admin_id"`
	Admin           Admin         `gorm:"foreignKey:AdminID" json:"-"`
	PermitRequestID uuid.UUID     `gorm:"type:char(36);not null;column:permohonan_id" json:"permohonan_id"`
	PermitRequest   PermitRequest `gorm:"foreignKey:PermitRequestID" json:"-"`
	Pesan           string        `gorm:"type:text;not null;column:pesan" json:"pesan"`
	Dibaca          bool          `gorm:"default:false;column:dibaca" json:"dibaca"`
	Tanggal         time.Time     `gorm:"not null;column:tanggal" json:"tanggal"`
}

func (Notification) TableName() string {
	return "notifikasi"
}
