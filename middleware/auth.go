package middleware

import (
	"net/http"
	"os"
	"strings"

	"permit-service-api/config"
	"permit-service-api/models"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

type Claims struct {
	AdminID  string `json:"admin_id"`
	Username string `json:"username"`
	Role     string `json:"role"`
	jwt.RegisteredClaims
}

func abortUnauthorized(c *gin.Context, message string) {
	c.JSON(http.StatusUnauthorized, gin.H{
		"success": false,
		"message": message,
	})
	c.Abort()
}

// AuthMiddleware validates the bearer token and loads the calling admin
// into the request context.
func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			abortUnauthorized(c, "Token tidak ditemukan")
			return
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader {
			abortUnauthorized(c, "Format token tidak valid")
			return
		}

		token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
			return []byte(os.Getenv("JWT_SECRET")), nil
		})
		if err != nil || !token.Valid {
			abortUnauthorized(c, "Token tidak valid atau sudah kadaluarsa")
			return
		}

		claims, ok := token.Claims.(*Claims)
		if !ok {
			abortUnauthorized(c, "Token tidak valid")
			return
		}

		adminID, err := uuid.Parse(claims.AdminID)
		if err != nil {
			abortUnauthorized(c, "Token tidak valid")
			return
		}

		// Check the account still exists and is active
		var admin models.Admin
		if err := config.DB.Where("id = ? AND is_active = ?", adminID, true).First(&admin).Error; err != nil {
			abortUnauthorized(c, "Akun tidak ditemukan atau tidak aktif")
			return
		}

		c.Set("adminID", adminID)
		c.Set("username", admin.Username)
		c.Set("role", string(admin.Role))

		c.Next()
	}
}

// RequireRole checks if the caller holds one of the allowed roles.
func RequireRole(roles ...models.AdminRole) gin.HandlerFunc {
	return func(c *gin.Context) {
		roleValue, exists := c.Get("role")
		if !exists {
			c.JSON(http.StatusForbidden, gin.H{
				"success": false,
				"message": "Akses ditolak: role tidak ditemukan",
			})
			c.Abort()
			return
		}

		callerRole := models.AdminRole(roleValue.(string))
		allowed := false
		for _, role := range roles {
			if callerRole == role {
				allowed = true
				break
			}
		}

		if !allowed {
			c.JSON(http.StatusForbidden, gin.H{
				"success": false,
				"message": "Akses ditolak: Anda tidak memiliki izin untuk mengakses fitur ini",
			})
			c.Abort()
			return
		}

		c.Next()
	}
}

// CORSMiddleware handles CORS
func CORSMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, Authorization, accept, origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, DELETE, PATCH")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	}
}
