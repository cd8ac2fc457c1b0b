package controllers

import (
	"net/http"

	"github.com/Anubhavy999/engineering-resource-mgmt/middleware"
	"github.com/Anubhavy999/engineering-resource-mgmt/models"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type NotificationController struct {
	DB *gorm.DB
}

func (nc *NotificationController) List(c *gin.Context) {
	var notifications []models.Notification
	if err := nc.DB.
		Where("user_id = ?", middleware.CurrentUserID(c)).
		Order("created_at DESC").
		Find(&notifications).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to fetch notifications."})
		return
	}
	c.JSON(http.StatusOK, notifications)
}

func (nc *NotificationController) MarkRead(c *gin.Context) {
	var input struct {
		ID uint `json:"id"`
	}
	if err := c.ShouldBindJSON(&input); err != nil || input.ID == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Notification id required."})
		return
	}

	if err := nc.DB.Model(&models.Notification{}).
		Where("id = ? AND user_id = ?", input.ID, middleware.CurrentUserID(c)).
		Update("read", true).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to mark notification as read."})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Notification marked as read."})
}

// ClearRead bulk-deletes the caller's read notifications.
func (nc *NotificationController) ClearRead(c *gin.Context) {
	if err := nc.DB.
		Where("user_id = ? AND read = ?", middleware.CurrentUserID(c), true).
		Delete(&models.Notification{}).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to clear read notifications."})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "All read notifications cleared."})
}
