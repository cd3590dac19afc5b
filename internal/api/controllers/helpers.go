package controllers

import (
	"net/http"

	"gidimart/pkg/middleware"
	"gidimart/pkg/utils"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// currentUser reads the authenticated user id. It responds 401 and returns
// false when the route was mounted without JWTAuthMiddleware.
func currentUser(c *gin.Context) (uuid.UUID, bool) {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		utils.RespondError(c, http.StatusUnauthorized, "Access token required")
		return uuid.Nil, false
	}
	return userID, true
}

// pathID parses the :id parameter. Malformed ids are reported as notFound
// since no such resource can exist.
func pathID(c *gin.Context, notFound error) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.HandleServiceError(c, notFound)
		return uuid.Nil, false
	}
	return id, true
}
