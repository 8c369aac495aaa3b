package utils

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

func PtrString(s string) *string { return &s }

func PtrFloat(f float64) *float64 { return &f }

func GetStringValue(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

// GetUserID reads the authenticated user id set by the auth middleware.
func GetUserID(c *gin.Context) *uuid.UUID {
	v, ok := c.Get("user_id")
	if !ok {
		return nil
	}
	id, ok := v.(uuid.UUID)
	if !ok {
		return nil
	}
	return &id
}

func GetUserRole(c *gin.Context) string {
	v, ok := c.Get("role")
	if !ok {
		return ""
	}
	role, _ := v.(string)
	return role
}
