package controllers

import (
	"net/http"

	"permit-service-api/config"
	"permit-service-api/models"

	"github.com/gin-gonic/gin"
)

type DashboardStatistics struct {
	TotalPermohonan     int64 `json:"total_permohonan"`
	PermohonanBaru      int64 `json:"permohonan_baru"`
	PermohonanDiproses  int64 `json:"permohonan_diproses"`
	PermohonanSelesai   int64 `json:"permohonan_selesai"`
	PermohonanDisetujui int64 `json:"permohonan_disetujui"`
	PermohonanDitolak   int64 `json:"permohonan_ditolak"`
}

// GetDashboardStatistics recomputes the summary counts; nothing here is
// stored.
func GetDashboardStatistics(c *gin.Context) {
	var stats DashboardStatistics

	counts := map[models.RequestStatus]*int64{
		models.StatusBaru:      &stats.PermohonanBaru,
		models.StatusDiproses:  &stats.PermohonanDiproses,
		models.StatusDisetujui: &stats.PermohonanDisetujui,
		models.StatusDitolak:   &stats.PermohonanDitolak,
	}

	if err := config.DB.Model(&models.PermitRequest{}).Count(&stats.TotalPermohonan).Error; err != nil {
		respondError(c, http.StatusInternalServerError, "Gagal mengambil statistik", err)
		return
	}

	for status, target := range counts {
		if err := config.DB.Model(&models.PermitRequest{}).
			Where("status = ?", status).Count(target).Error; err != nil {
			respondError(c, http.StatusInternalServerError, "Gagal mengambil statistik", err)
			return
		}
	}
	stats.PermohonanSelesai = stats.PermohonanDisetujui + stats.PermohonanDitolak

	respondOK(c, http.StatusOK, "", stats)
}

// GetRecentPermitRequests returns the five newest submissions for the
// dashboard.
func GetRecentPermitRequests(c *gin.Context) {
	var requests []models.PermitRequest
	if err := config.DB.Preload("Pemohon").Preload("PermitType").Preload("Berkas").
		Order("tanggal_masuk DESC").Limit(5).
		Find(&requests).Error; err != nil {
		respondError(c, http.StatusInternalServerError, "Gagal mengambil data", err)
		return
	}

	respondOK(c, http.StatusOK, "", requests)
}
