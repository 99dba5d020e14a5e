package middleware

import (
	"errors"
	"net/http"
	"strings"

	"creativedesk-backend/models"
	"creativedesk-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"gorm.io/gorm"
)

// CurrentUserKey is the gin context key the authenticated user is stored under.
const CurrentUserKey = "currentUser"

// Protect verifies the request credential and attaches the resolved user to
// the context. The token is read from the "token" cookie first, then from the
// Authorization header.
func Protect(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var tokenString string

		if cookie, err := c.Cookie("token"); err == nil && cookie != "" {
			tokenString = cookie
		} else if header := c.GetHeader("Authorization"); strings.HasPrefix(header, "Bearer ") {
			tokenString = strings.TrimPrefix(header, "Bearer ")
		}

		if tokenString == "" {
			utils.RespondWithError(c, http.StatusUnauthorized, "Not authorized, no token provided")
			return
		}

		userID, err := utils.ParseToken(tokenString)
		if err != nil {
			if errors.Is(err, jwt.ErrTokenExpired) {
				utils.RespondWithError(c, http.StatusUnauthorized, "Token expired")
				return
			}
			utils.RespondWithError(c, http.StatusUnauthorized, "Invalid token")
			return
		}

		var user models.User
		if err := db.First(&user, "id = ?", userID).Error; err != nil {
			utils.RespondWithError(c, http.StatusUnauthorized, "User not found")
			return
		}

		c.Set(CurrentUserKey, user)
		c.Next()
	}
}

// AdminOnly permits continuation only for admin accounts. It must run after
// Protect.
func AdminOnly() gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := CurrentUser(c)
		if !ok || user.Role != models.RoleAdmin {
			utils.RespondWithError(c, http.StatusForbidden, "Not authorized as admin")
			return
		}
		c.Next()
	}
}

// CurrentUser returns the user attached by Protect.
func CurrentUser(c *gin.Context) (models.User, bool) {
	value, exists := c.Get(CurrentUserKey)
	if !exists {
		return models.User{}, false
	}
	user, ok := value.(models.User)
	return user, ok
}
