package endpoints

import (
	"net/http"
	"strconv"
	"ustadgee/internal/api/handler/response"

	"github.com/gin-gonic/gin"
)

// parseUintParam reads a numeric path parameter and writes a 400 on
// failure, so handlers can just bail out.
func parseUintParam(c *gin.Context, name string) (uint, bool) {
	value, err := strconv.ParseUint(c.Param(name), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, response.APIError{Message: "Invalid " + name + " parameter"})
		return 0, false
	}
	return uint(value), true
}

// currentUserID reads the authenticated user set by the auth middleware.
func currentUserID(c *gin.Context) (uint, bool) {
	userID, exists := c.Get("userID")
	if !exists {
		c.JSON(http.StatusUnauthorized, response.APIError{Message: "User not authenticated"})
		return 0, false
	}
	return userID.(uint), true
}

func queryInt(c *gin.Context, name string, fallback int) int {
	value, err := strconv.Atoi(c.Query(name))
	if err != nil {
		return fallback
	}
	return value
}
