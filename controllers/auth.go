package controllers

import (
	"net/http"
	"os"
	"strconv"
	"time"

	"permit-service-api/config"
	"permit-service-api/middleware"
	"permit-service-api/models"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type AdminInfo struct {
	ID          uuid.UUID `json:"id"`
	Username    string    `json:"username"`
	Email       string    `json:"email"`
	NamaLengkap string    `json:"nama_lengkap"`
	Role        string    `json:"role"`
}

type LoginResponse struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
	Admin     AdminInfo `json:"admin"`
}

func adminInfo(admin *models.Admin) AdminInfo {
	return AdminInfo{
		ID:          admin.ID,
		Username:    admin.Username,
		Email:       admin.Email,
		NamaLengkap: admin.NamaLengkap,
		Role:        string(admin.Role),
	}
}

// Login handles admin authentication
func Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "Data tidak valid", err)
		return
	}

	var admin models.Admin
	if err := config.DB.Where("username = ?", req.Username).First(&admin).Error; err != nil {
		respondError(c, http.StatusUnauthorized, "Username atau password salah", nil)
		return
	}

	if !admin.IsActive {
		respondError(c, http.StatusUnauthorized, "Akun tidak aktif", nil)
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(admin.Password), []byte(req.Password)); err != nil {
		respondError(c, http.StatusUnauthorized, "Username atau password salah", nil)
		return
	}

	token, expiresAt, err := generateToken(&admin)
	if err != nil {
		respondError(c, http.StatusInternalServerError, "Gagal membuat token", err)
		return
	}

	respondOK(c, http.StatusOK, "Login berhasil", LoginResponse{
		Token:     token,
		ExpiresAt: expiresAt,
		Admin:     adminInfo(&admin),
	})
}

// GetProfile returns the calling admin's identity. The client also uses this
// endpoint as its session-validity probe.
func GetProfile(c *gin.Context) {
	adminID, _ := c.Get("adminID")

	var admin models.Admin
	if err := config.DB.Where("id = ?", adminID).First(&admin).Error; err != nil {
		respondError(c, http.StatusNotFound, "Admin tidak ditemukan", nil)
		return
	}

	respondOK(c, http.StatusOK, "", adminInfo(&admin))
}

// ChangePassword lets an admin change their own password
func ChangePassword(c *gin.Context) {
	type ChangePasswordRequest struct {
		OldPassword string `json:"old_password" binding:"required"`
		NewPassword string `json:"new_password" binding:"required,min=6"`
	}

	var req ChangePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "Data tidak valid", err)
		return
	}

	adminID, _ := c.Get("adminID")

	var admin models.Admin
	if err := config.DB.Where("id = ?", adminID).First(&admin).Error; err != nil {
		respondError(c, http.StatusNotFound, "Admin tidak ditemukan", nil)
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(admin.Password), []byte(req.OldPassword)); err != nil {
		respondError(c, http.StatusUnauthorized, "Password lama salah", nil)
		return
	}

	hashed, err := HashPassword(req.NewPassword)
	if err != nil {
		respondError(c, http.StatusInternalServerError, "Gagal menyimpan password", err)
		return
	}

	admin.Password = hashed
	if err := config.DB.Save(&admin).Error; err != nil {
		respondError(c, http.StatusInternalServerError, "Gagal menyimpan password", err)
		return
	}

	respondOK(c, http.StatusOK, "Password berhasil diubah", nil)
}

// generateToken creates the signed JWT for an admin session
func generateToken(admin *models.Admin) (string, time.Time, error) {
	expireHours, err := strconv.Atoi(os.Getenv("JWT_EXPIRE_HOURS"))
	if err != nil || expireHours <= 0 {
		expireHours = 24
	}

	expiresAt := time.Now().Add(time.Duration(expireHours) * time.Hour)

	claims := middleware.Claims{
		AdminID:  admin.ID.String(),
		Username: admin.Username,
		Role:     string(admin.Role),
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(os.Getenv("JWT_SECRET")))
	if err != nil {
		return "", time.Time{}, err
	}

	return tokenString, expiresAt, nil
}

// HashPassword hashes password using bcrypt
func HashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	return string(bytes), err
}

// CheckPasswordHash compares password with hash
func CheckPasswordHash(password, hash string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	return err == nil
}
