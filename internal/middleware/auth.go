// internal/middleware/auth.go
package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/flipbase/flipbase-backend/internal/models"
	"github.com/flipbase/flipbase-backend/internal/utils"
)

// TokenHeader is the custom header the dashboard sends the bearer
// token in.
const TokenHeader = "x-auth-token"

// AuthRequired validates the token and loads the acting user. The
// token only carries the user id; company and role always come from
// the database so tenant scoping cannot be forged with an old token.
func AuthRequired(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := c.GetHeader(TokenHeader)
		if token == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"msg": "No token, authorization denied"})
			c.Abort()
			return
		}

		claims, err := utils.ValidateJWT(token)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"msg": "Token is not valid"})
			c.Abort()
			return
		}

		userID, err := uuid.Parse(claims.UserID)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"msg": "Token is not valid"})
			c.Abort()
			return
		}

		var user models.User
		if err := db.First(&user, userID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusUnauthorized, gin.H{"msg": "Token is not valid"})
			} else {
				c.JSON(http.StatusInternalServerError, gin.H{"msg": "Server Error"})
			}
			c.Abort()
			return
		}

		c.Set("user_id", user.ID.String())
		c.Set("company", user.Company)
		c.Set("role", string(user.Role))
		c.Next()
	}
}

// AdminRequired re-fetches the acting user on every request instead of
// trusting anything cached in the context: a stale id yields 404, a
// non-admin role yields 403.
func AdminRequired(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userIDStr, exists := utils.GetUserIDFromContext(c)
		if !exists {
			c.JSON(http.StatusUnauthorized, gin.H{"msg": "Authorization required"})
			c.Abort()
			return
		}

		userID, err := uuid.Parse(userIDStr)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"msg": "Authorization required"})
			c.Abort()
			return
		}

		var user models.User
		if err := db.First(&user, userID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"msg": "Bruger ikke fundet"})
			} else {
				c.JSON(http.StatusInternalServerError, gin.H{"msg": "Serverfejl"})
			}
			c.Abort()
			return
		}

		if !user.IsAdmin() {
			c.JSON(http.StatusForbidden, gin.H{"msg": "Adgang nægtet. Admin-rettigheder påkrævet."})
			c.Abort()
			return
		}

		c.Next()
	}
}
