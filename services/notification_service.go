package services

import (
	"fmt"
	"log"
	"time"

	"permit-service-api/config"
	"permit-service-api/models"
)

// NotifyNewRequest fans out an unread notification to every active admin
// when a request enters the queue.
func NotifyNewRequest(req *models.PermitRequest, applicant *models.Applicant, permitTypeName string) {
	var admins []models.Admin
	if err := config.DB.Where("is_active = ?", true).Find(&admins).Error; err != nil {
		log.Printf("Warning: failed to load admins for notification: %v", err)
		return
	}

	now := time.Now()
	for _, admin := range admins {
		notif := &models.Notification{
			AdminID:         admin.ID,
			PermitRequestID: req.ID,
			Pesan:           fmt.Sprintf("Permohonan baru dari %s - %s", applicant.NamaLengkap, permitTypeName),
			Dibaca:          false,
			Tanggal:         now,
		}
		if err := config.DB.Create(notif).Error; err != nil {
			log.Printf("Warning: failed to create notification for admin %s: %v", admin.Username, err)
		}
	}
}
