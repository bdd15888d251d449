package controllers

import (
	"net/http"
	"strings"

	"permit-service-api/config"
	"permit-service-api/models"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type CreatePermitTypeRequest struct {
	Nama        string   `json:"nama" binding:"required"`
	Deskripsi   string   `json:"deskripsi"`
	Persyaratan []string `json:"persyaratan"`
	Aktif       bool     `json:"aktif"`
}

type UpdatePermitTypeRequest struct {
	Nama        string   `json:"nama"`
	Deskripsi   string   `json:"deskripsi"`
	Persyaratan []string `json:"persyaratan"`
	Aktif       *bool    `json:"aktif"`
}

// GetPermitTypes lists the catalog. The public form passes aktif_only=true
// so deactivated types stay hidden without losing history.
func GetPermitTypes(c *gin.Context) {
	query := config.DB.Model(&models.PermitType{})
	if c.Query("aktif_only") == "true" {
		query = query.Where("aktif = ?", true)
	}

	var types []models.PermitType
	if err := query.Order("created_at ASC").Find(&types).Error; err != nil {
		respondError(c, http.StatusInternalServerError, "Gagal mengambil data", err)
		return
	}

	respondOK(c, http.StatusOK, "", types)
}

func GetPermitType(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		respondError(c, http.StatusBadRequest, "ID tidak valid", nil)
		return
	}

	var permitType models.PermitType
	if err := config.DB.Where("id = ?", id).First(&permitType).Error; err != nil {
		respondError(c, http.StatusNotFound, "Jenis perizinan tidak ditemukan", nil)
		return
	}

	respondOK(c, http.StatusOK, "", permitType)
}

func CreatePermitType(c *gin.Context) {
	var req CreatePermitTypeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "Data tidak valid", err)
		return
	}

	if strings.TrimSpace(req.Nama) == "" {
		respondError(c, http.StatusBadRequest, "Nama tidak boleh kosong", nil)
		return
	}

	permitType := models.PermitType{
		Nama:        strings.TrimSpace(req.Nama),
		Deskripsi:   req.Deskripsi,
		Persyaratan: req.Persyaratan,
		Aktif:       req.Aktif,
	}

	if err := config.DB.Create(&permitType).Error; err != nil {
		respondError(c, http.StatusInternalServerError, "Gagal membuat jenis perizinan", err)
		return
	}

	respondOK(c, http.StatusCreated, "Jenis perizinan berhasil dibuat", permitType)
}

func UpdatePermitType(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		respondError(c, http.StatusBadRequest, "ID tidak valid", nil)
		return
	}

	var req UpdatePermitTypeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "Data tidak valid", err)
		return
	}

	var permitType models.PermitType
	if err := config.DB.Where("id = ?", id).First(&permitType).Error; err != nil {
		respondError(c, http.StatusNotFound, "Jenis perizinan tidak ditemukan", nil)
		return
	}

	if strings.TrimSpace(req.Nama) != "" {
		permitType.Nama = strings.TrimSpace(req.Nama)
	}
	if req.Deskripsi != "" {
		permitType.Deskripsi = req.Deskripsi
	}
	if req.Persyaratan != nil {
		permitType.Persyaratan = req.Persyaratan
	}
	if req.Aktif != nil {
		permitType.Aktif = *req.Aktif
	}

	if err := config.DB.Save(&permitType).Error; err != nil {
		respondError(c, http.StatusInternalServerError, "Gagal update jenis perizinan", err)
		return
	}

	respondOK(c, http.StatusOK, "Jenis perizinan berhasil diupdate", permitType)
}

func DeletePermitType(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		respondError(c, http.StatusBadRequest, "ID tidak valid", nil)
		return
	}

	if err := config.DB.Delete(&models.PermitType{}, "id = ?", id).Error; err != nil {
		respondError(c, http.StatusInternalServerError, "Gagal menghapus jenis perizinan", err)
		return
	}

	respondOK(c, http.StatusOK, "Jenis perizinan berhasil dihapus", nil)
}
