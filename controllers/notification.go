package controllers

import (
	"net/http"

	"permit-service-api/config"
	"permit-service-api/models"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

func GetNotifications(c *gin.Context) {
	adminID := c.MustGet("adminID").(uuid.UUID)

	query := config.DB.Where("admin_id = ?", adminID)
	if c.Query("unread_only") == "true" {
		query = query.Where("dibaca = ?", false)
	}

	var notifications []models.Notification
	if err := query.Order("tanggal DESC").Find(&notifications).Error; err != nil {
		respondError(c, http.StatusInternalServerError, "Gagal mengambil notifikasi", err)
		return
	}

	respondOK(c, http.StatusOK, "", notifications)
}

func CountUnreadNotifications(c *gin.Context) {
	adminID := c.MustGet("adminID").(uuid.UUID)

	var count int64
	if err := config.DB.Model(&models.Notification{}).
		Where("admin_id = ? AND dibaca = ?", adminID, false).
		Count(&count).Error; err != nil {
		respondError(c, http.StatusInternalServerError, "Gagal mengambil jumlah notifikasi", err)
		return
	}

	respondOK(c, http.StatusOK, "", map[string]int64{"count": count})
}

func MarkNotificationRead(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		respondError(c, http.StatusBadRequest, "ID tidak valid", nil)
		return
	}

	adminID := c.MustGet("adminID").(uuid.UUID)
	if err := config.DB.Model(&models.Notification{}).
		Where("id = ? AND admin_id = ?", id, adminID).
		Update("dibaca", true).Error; err != nil {
		respondError(c, http.StatusInternalServerError, "Gagal update notifikasi", err)
		return
	}

	respondOK(c, http.StatusOK, "Notifikasi ditandai sudah dibaca", nil)
}

func MarkAllNotificationsRead(c *gin.Context) {
	adminID := c.MustGet("adminID").(uuid.UUID)

	if err := config.DB.Model(&models.Notification{}).
		Where("admin_id = ? AND dibaca = ?", adminID, false).
		Update("dibaca", true).Error; err != nil {
		respondError(c, http.StatusInternalServerError, "Gagal update notifikasi", err)
		return
	}

	respondOK(c, http.StatusOK, "Semua notifikasi ditandai sudah dibaca", nil)
}
