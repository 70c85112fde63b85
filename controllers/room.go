package controllers

import (
	"net/http"
	"strings"

	"asset-management-api/config"
	"asset-management-api/models"

	"github.com/gin-gonic/gin"
)

type RoomRequest struct {
	Code        string  `json:"code" binding:"required"`
	Name        string  `json:"name" binding:"required"`
	Description *string `json:"description"`
}

// GetRooms lists all rooms.
func GetRooms(c *gin.Context) {
	var rooms []models.Room
	query := config.DB.Order("code ASC")
	if search := strings.TrimSpace(c.Query("search")); search != "" {
		like := "%" + search + "%"
		query = query.Where("code LIKE ? OR name LIKE ?", like, like)
	}
	if err := query.Find(&rooms).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to fetch rooms"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": rooms})
}

// GetRoom returns one room by id.
func GetRoom(c *gin.Context) {
	var room models.Room
	if err := config.DB.First(&room, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "Room not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": room})
}

// CreateRoom creates a single room.
func CreateRoom(c *gin.Context) {
	var req RoomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
		return
	}

	room := models.Room{
		Code:        strings.TrimSpace(req.Code),
		Name:        strings.TrimSpace(req.Name),
		Description: req.Description,
	}

	var count int64
	config.DB.Model(&models.Room{}).Where("code = ?", room.Code).Count(&count)
	if count > 0 {
		c.JSON(http.StatusConflict, gin.H{"success": false, "error": "Room code already exists"})
		return
	}

	if err := config.DB.Create(&room).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to create room"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"success": true, "data": room})
}

// UpdateRoom updates an existing room.
func UpdateRoom(c *gin.Context) {
	var room models.Room
	if err := config.DB.First(&room, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "Room not found"})
		return
	}

	var req RoomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
		return
	}

	room.Code = strings.TrimSpace(req.Code)
	room.Name = strings.TrimSpace(req.Name)
	room.Description = req.Description

	if err := config.DB.Save(&room).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to update room"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": room})
}

// DeleteRoom removes a room. Assets keep their row but lose the reference.
func DeleteRoom(c *gin.Context) {
	if err := config.DB.Model(&models.Asset{}).
		Where("room_id = ?", c.Param("id")).
		Update("room_id", nil).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to detach assets"})
		return
	}

	result := config.DB.Delete(&models.Room{}, c.Param("id"))
	if result.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to delete room"})
		return
	}
	if result.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "Room not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Room deleted"})
}
