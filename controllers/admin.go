package controllers

import (
	"net/http"

	"permit-service-api/config"
	"permit-service-api/models"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type CreateAdminRequest struct {
	Username    string `json:"username" binding:"required,min=3,max=50"`
	Password    string `json:"password" binding:"required,min=6"`
	Email       string `json:"email" binding:"required,email"`
	NamaLengkap string `json:"nama_lengkap" binding:"required"`
	Role        string `json:"role" binding:"required,oneof=super_admin admin"`
}

type UpdateAdminRequest struct {
	Username    string `json:"username" binding:"omitempty,min=3,max=50"`
	Email       string `json:"email" binding:"omitempty,email"`
	NamaLengkap string `json:"nama_lengkap"`
	Role        string `json:"role" binding:"omitempty,oneof=super_admin admin"`
	IsActive    *bool  `json:"is_active"`
}

type ResetPasswordRequest struct {
	NewPassword string `json:"new_password" binding:"required,min=6"`
}

func GetAdmins(c *gin.Context) {
	var admins []models.Admin
	if err := config.DB.Order("created_at ASC").Find(&admins).Error; err != nil {
		respondError(c, http.StatusInternalServerError, "Gagal mengambil data", err)
		return
	}

	respondOK(c, http.StatusOK, "", admins)
}

func GetAdmin(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		respondError(c, http.StatusBadRequest, "ID tidak valid", nil)
		return
	}

	var admin models.Admin
	if err := config.DB.Where("id = ?", id).First(&admin).Error; err != nil {
		respondError(c, http.StatusNotFound, "Admin tidak ditemukan", nil)
		return
	}

	respondOK(c, http.StatusOK, "", admin)
}

func CreateAdmin(c *gin.Context) {
	var req CreateAdminRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "Data tidak valid", err)
		return
	}

	hashed, err := HashPassword(req.Password)
	if err != nil {
		respondError(c, http.StatusInternalServerError, "Gagal membuat akun", err)
		return
	}

	admin := models.Admin{
		Username:    req.Username,
		Password:    hashed,
		Email:       req.Email,
		NamaLengkap: req.NamaLengkap,
		Role:        models.AdminRole(req.Role),
		IsActive:    true,
	}

	if err := config.DB.Create(&admin).Error; err != nil {
		respondError(c, http.StatusInternalServerError, "Gagal membuat akun", err)
		return
	}

	respondOK(c, http.StatusCreated, "Akun admin berhasil dibuat", adminInfo(&admin))
}

// UpdateAdmin edits an account. A super_admin cannot deactivate their own
// account.
func UpdateAdmin(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		respondError(c, http.StatusBadRequest, "ID tidak valid", nil)
		return
	}

	var req UpdateAdminRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "Data tidak valid", err)
		return
	}

	callerID := c.MustGet("adminID").(uuid.UUID)
	if id == callerID && req.IsActive != nil && !*req.IsActive {
		respondError(c, http.StatusForbidden, "Tidak dapat menonaktifkan akun sendiri", nil)
		return
	}

	var admin models.Admin
	if err := config.DB.Where("id = ?", id).First(&admin).Error; err != nil {
		respondError(c, http.StatusNotFound, "Admin tidak ditemukan", nil)
		return
	}

	if req.Username != "" {
		admin.Username = req.Username
	}
	if req.Email != "" {
		admin.Email = req.Email
	}
	if req.NamaLengkap != "" {
		admin.NamaLengkap = req.NamaLengkap
	}
	if req.Role != "" {
		admin.Role = models.AdminRole(req.Role)
	}
	if req.IsActive != nil {
		admin.IsActive = *req.IsActive
	}

	if err := config.DB.Save(&admin).Error; err != nil {
		respondError(c, http.StatusInternalServerError, "Gagal update akun", err)
		return
	}

	respondOK(c, http.StatusOK, "Akun admin berhasil diupdate", adminInfo(&admin))
}

// DeleteAdmin removes an account. Self-deletion is refused.
func DeleteAdmin(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		respondError(c, http.StatusBadRequest, "ID tidak valid", nil)
		return
	}

	callerID := c.MustGet("adminID").(uuid.UUID)
	if id == callerID {
		respondError(c, http.StatusForbidden, "Tidak dapat menghapus akun sendiri", nil)
		return
	}

	if err := config.DB.Delete(&models.Admin{}, "id = ?", id).Error; err != nil {
		respondError(c, http.StatusInternalServerError, "Gagal menghapus akun", err)
		return
	}

	respondOK(c, http.StatusOK, "Akun admin berhasil dihapus", nil)
}

func ResetAdminPassword(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		respondError(c, http.StatusBadRequest, "ID tidak valid", nil)
		return
	}

	var req ResetPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "Data tidak valid", err)
		return
	}

	var admin models.Admin
	if err := config.DB.Where("id = ?", id).First(&admin).Error; err != nil {
		respondError(c, http.StatusNotFound, "Admin tidak ditemukan", nil)
		return
	}

	hashed, err := HashPassword(req.NewPassword)
	if err != nil {
		respondError(c, http.StatusInternalServerError, "Gagal reset password", err)
		return
	}

	admin.Password = hashed
	if err := config.DB.Save(&admin).Error; err != nil {
		respondError(c, http.StatusInternalServerError, "Gagal reset password", err)
		return
	}

	respondOK(c, http.StatusOK, "Password berhasil direset", nil)
}
