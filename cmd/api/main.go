package main

import (
	"log"
	"os"

	"permit-service-api/config"
	"permit-service-api/controllers"
	"permit-service-api/middleware"
	"permit-service-api/models"
	"permit-service-api/routes"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	// Load .env file
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	logFile, _ := config.InitLogging()
	if logFile != nil {
		defer logFile.Close()
	}

	// Initialize database
	config.InitDB()

	if err := config.DB.AutoMigrate(
		&models.Admin{},
		&models.PermitType{},
		&models.Applicant{},
		&models.PermitRequest{},
		&models.Attachment{},
		&models.Notification{},
		&models.EmailLog{},
	); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	seedDefaultSuperAdmin()
	seedDefaultPermitTypes()

	// Set Gin mode
	ginMode := os.Getenv("GIN_MODE")
	if ginMode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.LoggerWithWriter(config.LogWriter))
	router.Use(gin.Recovery())
	router.Use(middleware.CORSMiddleware())

	routes.SetupRoutes(router)

	// Create upload directory if not exists
	uploadPath := os.Getenv("UPLOAD_PATH")
	if uploadPath == "" {
		uploadPath = "./uploads"
	}
	if err := os.MkdirAll(uploadPath, os.ModePerm); err != nil {
		log.Printf("Warning: Failed to create upload directory: %v", err)
	}

	port := os.Getenv("SERVER_PORT")
	if port == "" {
		port = "8080"
	}

	log.Printf("Server starting on port %s", port)

	if err := router.Run(":" + port); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}

// seedDefaultSuperAdmin creates the initial super_admin account so the
// panel is reachable on a fresh database.
func seedDefaultSuperAdmin() {
	username := os.Getenv("ADMIN_USERNAME")
	if username == "" {
		username = "admin"
	}

	var existing models.Admin
	if err := config.DB.Where("username = ?", username).First(&existing).Error; err == nil {
		return
	}

	password := os.Getenv("ADMIN_PASSWORD")
	if password == "" {
		password = "admin123"
		log.Println("Warning: ADMIN_PASSWORD not set, using default credentials")
	}

	hashed, err := controllers.HashPassword(password)
	if err != nil {
		log.Printf("Warning: failed to hash default admin password: %v", err)
		return
	}

	admin := models.Admin{
		Username:    username,
		Password:    hashed,
		Email:       os.Getenv("ADMIN_EMAIL"),
		NamaLengkap: "Super Administrator",
		Role:        models.RoleSuperAdmin,
		IsActive:    true,
	}
	if err := config.DB.Create(&admin).Error; err != nil {
		log.Printf("Warning: failed to seed default admin: %v", err)
		return
	}
	log.Printf("Default super admin '%s' created", username)
}

func seedDefaultPermitTypes() {
	var count int64
	if err := config.DB.Model(&models.PermitType{}).Count(&count).Error; err != nil || count > 0 {
		return
	}

	defaults := []models.PermitType{
		{
			Nama:        "Izin Penelitian",
			Deskripsi:   "Permohonan izin untuk melakukan penelitian",
			Persyaratan: models.StringArray{"Surat pengantar institusi", "Proposal penelitian", "KTP/identitas"},
			Aktif:       true,
		},
		{
			Nama:        "Izin Magang",
			Deskripsi:   "Permohonan izin magang atau praktik kerja lapangan",
			Persyaratan: models.StringArray{"Surat pengantar kampus", "CV", "KTP/identitas"},
			Aktif:       true,
		},
		{
			Nama:        "Izin Kunjungan Lapangan",
			Deskripsi:   "Permohonan izin kunjungan atau studi banding",
			Persyaratan: models.StringArray{"Surat permohonan resmi", "Daftar peserta"},
			Aktif:       true,
		},
	}

	for _, permitType := range defaults {
		if err := config.DB.Create(&permitType).Error; err != nil {
			log.Printf("Warning: failed to seed permit type '%s': %v", permitType.Nama, err)
		}
	}
	log.Println("Default permit types created")
}
