package controllers

import (
	"fmt"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"permit-service-api/config"
	"permit-service-api/models"
	"permit-service-api/services"
	"permit-service-api/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const maxUploadSize = 10 << 20 // 10 MB per form

type UpdateStatusRequest struct {
	Status       string `json:"status" binding:"required,oneof=baru diproses disetujui ditolak"`
	CatatanAdmin string `json:"catatan_admin"`
}

type PermitRequestListResponse struct {
	Data       []models.PermitRequest `json:"data"`
	Total      int64                  `json:"total"`
	Page       int                    `json:"page"`
	PerPage    int                    `json:"per_page"`
	TotalPages int                    `json:"total_pages"`
}

func uploadPath() string {
	path := os.Getenv("UPLOAD_PATH")
	if path == "" {
		path = "./uploads"
	}
	return path
}

// saveUploadedFile stores one multipart file under an opaque generated name
// and returns its attachment record.
func saveUploadedFile(file *multipart.FileHeader) (*models.Attachment, error) {
	ext := filepath.Ext(file.Filename)
	storedName := fmt.Sprintf("%s_%d%s", uuid.New().String(), time.Now().Unix(), ext)
	storedPath := filepath.Join(uploadPath(), storedName)

	if err := os.MkdirAll(uploadPath(), os.ModePerm); err != nil {
		return nil, err
	}

	src, err := file.Open()
	if err != nil {
		return nil, err
	}
	defer src.Close()

	dst, err := os.Create(storedPath)
	if err != nil {
		return nil, err
	}
	defer dst.Close()

	if _, err := dst.ReadFrom(src); err != nil {
		return nil, err
	}

	return &models.Attachment{
		NamaFile: storedName,
		NamaAsli: file.Filename,
		Path:     storedPath,
		Ukuran:   file.Size,
		MimeType: file.Header.Get("Content-Type"),
	}, nil
}

// CreatePermitRequest handles the public submission form (multipart).
func CreatePermitRequest(c *gin.Context) {
	if err := c.Request.ParseMultipartForm(maxUploadSize); err != nil {
		respondError(c, http.StatusBadRequest, "Gagal parsing form data", err)
		return
	}

	namaLengkap := utils.SanitizeInput(c.PostForm("nama_lengkap"))
	nomorTelepon := utils.SanitizeInput(c.PostForm("nomor_telepon"))
	email := utils.SanitizeInput(c.PostForm("email"))
	alamat := utils.SanitizeInput(c.PostForm("alamat"))
	permitTypeIDRaw := c.PostForm("jenis_perizinan_id")
	catatan := utils.SanitizeInput(c.PostForm("catatan"))

	if namaLengkap == "" || email == "" || permitTypeIDRaw == "" {
		respondError(c, http.StatusBadRequest, "Data tidak lengkap", nil)
		return
	}
	if !utils.ValidateEmail(email) {
		respondError(c, http.StatusBadRequest, "Format email tidak valid", nil)
		return
	}

	permitTypeID, err := uuid.Parse(permitTypeIDRaw)
	if err != nil {
		respondError(c, http.StatusBadRequest, "Jenis perizinan ID tidak valid", nil)
		return
	}

	var permitType models.PermitType
	if err := config.DB.Where("id = ?", permitTypeID).First(&permitType).Error; err != nil {
		respondError(c, http.StatusNotFound, "Jenis perizinan tidak ditemukan", nil)
		return
	}

	var berkas []models.Attachment
	if form, _ := c.MultipartForm(); form != nil {
		for _, file := range form.File["berkas"] {
			attachment, err := saveUploadedFile(file)
			if err != nil {
				respondError(c, http.StatusInternalServerError, "Gagal menyimpan berkas", err)
				return
			}
			berkas = append(berkas, *attachment)
		}
	}

	applicant := models.Applicant{
		NamaLengkap:  namaLengkap,
		NomorTelepon: nomorTelepon,
		Email:        email,
		Alamat:       alamat,
	}
	if err := config.DB.Create(&applicant).Error; err != nil {
		respondError(c, http.StatusInternalServerError, "Gagal menyimpan data pemohon", err)
		return
	}

	now := time.Now()
	nomor, err := services.GenerateRequestNumber(config.DB, now)
	if err != nil {
		respondError(c, http.StatusInternalServerError, "Gagal membuat nomor permohonan", err)
		return
	}

	request := models.PermitRequest{
		NomorPermohonan: nomor,
		PemohonID:       applicant.ID,
		PermitTypeID:    permitTypeID,
		Catatan:         catatan,
		Status:          models.StatusBaru,
		TanggalMasuk:    now,
		Berkas:          berkas,
	}

	if err := config.DB.Create(&request).Error; err != nil {
		respondError(c, http.StatusInternalServerError, "Gagal menyimpan permohonan", err)
		return
	}

	go services.NotifyNewRequest(&request, &applicant, permitType.Nama)

	request.Pemohon = applicant
	request.PermitType = permitType
	respondOK(c, http.StatusCreated, "Permohonan berhasil diajukan", request)
}

// GetPermitRequests lists requests for the admin panel with pagination,
// status filter and applicant search.
func GetPermitRequests(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	if page < 1 {
		page = 1
	}
	perPage, _ := strconv.Atoi(c.DefaultQuery("per_page", "10"))
	if perPage < 1 {
		perPage = 10
	}
	if perPage > 100 {
		perPage = 100
	}

	query := config.DB.Model(&models.PermitRequest{}).
		Preload("Pemohon").Preload("PermitType").Preload("Berkas")

	if status := c.Query("status"); status != "" {
		query = query.Where("status = ?", status)
	}
	if search := c.Query("search"); search != "" {
		query = query.Joins("JOIN pemohon ON pemohon.id = permohonan.pemohon_id").
			Where("pemohon.nama_lengkap LIKE ? OR permohonan.nomor_permohonan LIKE ?",
				"%"+search+"%", "%"+search+"%")
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		respondError(c, http.StatusInternalServerError, "Gagal mengambil data", err)
		return
	}

	var requests []models.PermitRequest
	if err := query.Order("tanggal_masuk DESC").
		Offset((page - 1) * perPage).Limit(perPage).
		Find(&requests).Error; err != nil {
		respondError(c, http.StatusInternalServerError, "Gagal mengambil data", err)
		return
	}

	totalPages := int(total) / perPage
	if int(total)%perPage > 0 {
		totalPages++
	}

	respondOK(c, http.StatusOK, "", PermitRequestListResponse{
		Data:       requests,
		Total:      total,
		Page:       page,
		PerPage:    perPage,
		TotalPages: totalPages,
	})
}

func GetPermitRequest(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		respondError(c, http.StatusBadRequest, "ID tidak valid", nil)
		return
	}

	var request models.PermitRequest
	if err := config.DB.Preload("Pemohon").Preload("PermitType").Preload("Berkas").
		Where("id = ?", id).First(&request).Error; err != nil {
		respondError(c, http.StatusNotFound, "Permohonan tidak ditemukan", nil)
		return
	}

	respondOK(c, http.StatusOK, "", request)
}

func GetPermitRequestsByStatus(c *gin.Context) {
	status := models.RequestStatus(c.Param("status"))
	if !status.Valid() {
		respondError(c, http.StatusBadRequest, "Status tidak valid", nil)
		return
	}

	var requests []models.PermitRequest
	if err := config.DB.Preload("Pemohon").Preload("PermitType").Preload("Berkas").
		Where("status = ?", status).Order("tanggal_masuk DESC").
		Find(&requests).Error; err != nil {
		respondError(c, http.StatusInternalServerError, "Gagal mengambil data", err)
		return
	}

	respondOK(c, http.StatusOK, "", requests)
}

// UpdateRequestStatus advances a request through the lifecycle. Invalid
// transitions are rejected here, authoritatively, regardless of what the
// client checked.
func UpdateRequestStatus(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		respondError(c, http.StatusBadRequest, "ID tidak valid", nil)
		return
	}

	var req UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "Data tidak valid", err)
		return
	}

	var request models.PermitRequest
	if err := config.DB.Where("id = ?", id).First(&request).Error; err != nil {
		respondError(c, http.StatusNotFound, "Permohonan tidak ditemukan", nil)
		return
	}

	if err := services.Transition(&request, models.RequestStatus(req.Status), time.Now()); err != nil {
		respondError(c, http.StatusConflict, err.Error(), nil)
		return
	}

	adminID := c.MustGet("adminID").(uuid.UUID)
	request.CatatanAdmin = req.CatatanAdmin
	request.DikelolaOleh = &adminID

	if err := config.DB.Save(&request).Error; err != nil {
		respondError(c, http.StatusInternalServerError, "Gagal update status", err)
		return
	}

	respondOK(c, http.StatusOK, "Status berhasil diupdate", nil)
}

// SubmitDecision closes a request with an approve/reject outcome, the reply
// mail body, an optional internal note and an optional decision letter
// (multipart).
func SubmitDecision(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		respondError(c, http.StatusBadRequest, "ID tidak valid", nil)
		return
	}

	if err := c.Request.ParseMultipartForm(maxUploadSize); err != nil {
		respondError(c, http.StatusBadRequest, "Gagal parsing form data", err)
		return
	}

	balasan := c.PostForm("balasan_email")
	status := models.RequestStatus(c.PostForm("status"))
	catatanAdmin := c.PostForm("catatan_admin")

	if balasan == "" {
		respondError(c, http.StatusBadRequest, "Balasan email tidak boleh kosong", nil)
		return
	}
	if !status.Terminal() {
		respondError(c, http.StatusBadRequest, "Status harus disetujui atau ditolak", nil)
		return
	}

	var request models.PermitRequest
	if err := config.DB.Preload("Pemohon").Preload("PermitType").
		Where("id = ?", id).First(&request).Error; err != nil {
		respondError(c, http.StatusNotFound, "Permohonan tidak ditemukan", nil)
		return
	}

	if err := services.Transition(&request, status, time.Now()); err != nil {
		respondError(c, http.StatusConflict, err.Error(), nil)
		return
	}

	if form, _ := c.MultipartForm(); form != nil && len(form.File["lampiran"]) > 0 {
		attachment, err := saveUploadedFile(form.File["lampiran"][0])
		if err != nil {
			respondError(c, http.StatusInternalServerError, "Gagal menyimpan lampiran", err)
			return
		}
		attachment.PermitRequestID = request.ID
		if err := config.DB.Create(attachment).Error; err != nil {
			respondError(c, http.StatusInternalServerError, "Gagal menyimpan lampiran", err)
			return
		}
		request.LampiranSurat = attachment.NamaFile
	}

	adminID := c.MustGet("adminID").(uuid.UUID)
	request.BalasanEmail = balasan
	request.CatatanAdmin = catatanAdmin
	request.DikelolaOleh = &adminID

	if err := config.DB.Save(&request).Error; err != nil {
		respondError(c, http.StatusInternalServerError, "Gagal mengirim balasan", err)
		return
	}

	go services.SendDecisionMail(request.ID, request.Pemohon.Email, request.Pemohon.NamaLengkap,
		request.PermitType.Nama, status, balasan)

	respondOK(c, http.StatusOK, "Balasan berhasil dikirim ke email pemohon", nil)
}

// DownloadFile streams a stored attachment under its original display name.
func DownloadFile(c *gin.Context) {
	filename := c.Param("filename")
	originalName := c.Query("name")

	if filename == "" || filename != filepath.Base(filename) {
		respondError(c, http.StatusBadRequest, "Filename tidak valid", nil)
		return
	}

	filePath := filepath.Join(uploadPath(), filename)
	if _, err := os.Stat(filePath); os.IsNotExist(err) {
		respondError(c, http.StatusNotFound, "File tidak ditemukan", nil)
		return
	}

	downloadName := filename
	if originalName != "" {
		downloadName = originalName
	}

	c.Header("Content-Description", "File Transfer")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", downloadName))
	c.Header("Content-Type", "application/octet-stream")
	c.File(filePath)
}
