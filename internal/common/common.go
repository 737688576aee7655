package common

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"
)

const (
	// Context keys
	ContextUserIDKey        = "userID"        // Authenticated user id
	ContextUserRoleKey      = "userRole"      // Platform role loaded from the DB
	ContextAccountStatusKey = "accountStatus" // Account status loaded from the DB

	DefaultPageSize = 10
	MaxPageSize     = 100
)

// GetUserIDFromContext retrieves the authenticated user's ID from the Gin context.
func GetUserIDFromContext(c *gin.Context) (uint, error) {
	userIDInterface, exists := c.Get(ContextUserIDKey)
	if !exists {
		return 0, errors.New("user ID not found in context")
	}
	userID, ok := userIDInterface.(uint)
	if !ok {
		return 0, errors.New("user ID in context is not of type uint")
	}
	return userID, nil
}

// GetUserRoleFromContext returns the role the auth middleware stored, or "".
func GetUserRoleFromContext(c *gin.Context) string {
	return c.GetString(ContextUserRoleKey)
}

// ParseIDParam reads a positive numeric path parameter.
func ParseIDParam(c *gin.Context, name string) (uint, error) {
	id, err := strconv.ParseUint(c.Param(name), 10, 32)
	if err != nil || id == 0 {
		return 0, errors.New("invalid " + name)
	}
	return uint(id), nil
}

// Pagination reads page and limit query parameters with the usual bounds.
func Pagination(c *gin.Context) (page, limit int) {
	page, _ = strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ = strconv.Atoi(c.DefaultQuery("limit", strconv.Itoa(DefaultPageSize)))
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = DefaultPageSize
	}
	if limit > MaxPageSize {
		limit = MaxPageSize
	}
	return page, limit
}
