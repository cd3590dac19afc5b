package middleware

import (
	"net/http"
	"strings"

	"gidimart/pkg/utils"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	ctxUserID   = "user_id"
	ctxEmail    = "email"
	ctxUserType = "user_type"
)

// JWTAuthMiddleware rejects requests without a bearer token (401) or with an
// invalid or expired one (403).
func JWTAuthMiddleware(tokens *utils.TokenManager) gin.HandlerFunc {

	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			utils.RespondError(c, http.StatusUnauthorized, "Access token required")
			c.Abort()
			return
		}

		tokenString := strings.TrimSpace(strings.TrimPrefix(authHeader, "Bearer "))
		claims, err := tokens.ValidateToken(tokenString)
		if err != nil {
			utils.RespondError(c, http.StatusForbidden, "Invalid token")
			c.Abort()
			return
		}

		userID, _ := uuid.Parse(claims.UserID)
		c.Set(ctxUserID, userID)
		c.Set(ctxEmail, claims.Email)
		c.Set(ctxUserType, claims.UserType)
		utils.SetLogger(c, utils.Logger(c).With(zap.String("user_id", claims.UserID)))
		c.Next()
	}
}

// CurrentUserID returns the authenticated user set by JWTAuthMiddleware.
func CurrentUserID(c *gin.Context) (uuid.UUID, bool) {
	v, ok := c.Get(ctxUserID)
	if !ok {
		return uuid.Nil, false
	}
	id, ok := v.(uuid.UUID)
	return id, ok && id != uuid.Nil
}

func SetCurrentUser(c *gin.Context, userID uuid.UUID, email, userType string) {
	c.Set(ctxUserID, userID)
	c.Set(ctxEmail, email)
	c.Set(ctxUserType, userType)
}
