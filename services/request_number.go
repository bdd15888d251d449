package services

import (
	"fmt"
	"time"

	"permit-service-api/models"

	"gorm.io/gorm"
)

// GenerateRequestNumber produces the human-readable number shown to the
// applicant, e.g. REQ-20260901-0007. The sequence restarts daily.
func GenerateRequestNumber(db *gorm.DB, now time.Time) (string, error) {
	dayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	var count int64
	if err := db.Model(&models.PermitRequest{}).
		Where("tanggal_masuk >= ?", dayStart).
		Count(&count).Error; err != nil {
		return "", err
	}

	return fmt.Sprintf("REQ-%s-%04d", now.Format("20060102"), count+1), nil
}
