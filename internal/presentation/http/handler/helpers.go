package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// GetUserID extracts the authenticated user ID from the Gin context
func GetUserID(c *gin.Context) *uuid.UUID {
	userIDVal, exists := c.Get("user_id")
	if !exists {
		return nil
	}
	userID, ok := userIDVal.(uuid.UUID)
	if !ok {
		return nil
	}
	return &userID
}

// GetUserLogin extracts the authenticated user login from the Gin context
func GetUserLogin(c *gin.Context) string {
	login, exists := c.Get("user_login")
	if !exists {
		return ""
	}
	return login.(string)
}
