package controllers

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"asset-management-api/config"
	"asset-management-api/models"

	"github.com/gin-gonic/gin"
)

type AssetRequest struct {
	Code         string     `json:"code" binding:"required"`
	Name         string     `json:"name" binding:"required"`
	Description  *string    `json:"description"`
	SerialNumber *string    `json:"serial_number"`
	CategoryID   *uint      `json:"category_id"`
	RoomID       *uint      `json:"room_id"`
	OwnerID      *uint      `json:"owner_id"`
	Status       string     `json:"status"`
	PurchaseAt   *time.Time `json:"purchase_at"`
	Value        *float64   `json:"value"`
	IsActive     *bool      `json:"is_active"`
}

// GetAssets lists assets with optional filters and pagination.
func GetAssets(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 20
	}

	query := config.DB.Model(&models.Asset{}).
		Preload("Category").Preload("Room").Preload("Owner")

	if search := strings.TrimSpace(c.Query("search")); search != "" {
		like := "%" + search + "%"
		query = query.Where("code LIKE ? OR name LIKE ? OR serial_number LIKE ?", like, like, like)
	}
	if categoryID := c.Query("category_id"); categoryID != "" {
		query = query.Where("category_id = ?", categoryID)
	}
	if roomID := c.Query("room_id"); roomID != "" {
		query = query.Where("room_id = ?", roomID)
	}
	if status := strings.TrimSpace(c.Query("status")); status != "" {
		query = query.Where("status = ?", strings.ToUpper(status))
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to count assets"})
		return
	}

	var assets []models.Asset
	if err := query.Order("created_at DESC").
		Offset((page - 1) * limit).Limit(limit).
		Find(&assets).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to fetch assets"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    assets,
		"pagination": gin.H{
			"page":  page,
			"limit": limit,
			"total": total,
		},
	})
}

// GetAsset returns one asset by id.
func GetAsset(c *gin.Context) {
	var asset models.Asset
	if err := config.DB.Preload("Category").Preload("Room").Preload("Owner").
		First(&asset, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "Asset not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": asset})
}

// CreateAsset creates a single asset.
func CreateAsset(c *gin.Context) {
	var req AssetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
		return
	}

	status := strings.ToUpper(strings.TrimSpace(req.Status))
	if status == "" {
		status = models.AssetStatusAvailable
	}

	asset := models.Asset{
		Code:         strings.TrimSpace(req.Code),
		Name:         strings.TrimSpace(req.Name),
		Description:  req.Description,
		SerialNumber: req.SerialNumber,
		CategoryID:   req.CategoryID,
		RoomID:       req.RoomID,
		OwnerID:      req.OwnerID,
		Status:       status,
		PurchaseAt:   req.PurchaseAt,
		Value:        req.Value,
		IsActive:     req.IsActive == nil || *req.IsActive,
	}
	if v, ok := c.Get("userID"); ok {
		if id, ok := v.(uint); ok {
			asset.CreatedBy = &id
		}
	}

	var count int64
	config.DB.Model(&models.Asset{}).Where("code = ?", asset.Code).Count(&count)
	if count > 0 {
		c.JSON(http.StatusConflict, gin.H{"success": false, "error": "Asset code already exists"})
		return
	}

	if err := config.DB.Create(&asset).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to create asset"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"success": true, "data": asset})
}

// UpdateAsset updates an existing asset.
func UpdateAsset(c *gin.Context) {
	var asset models.Asset
	if err := config.DB.First(&asset, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "Asset not found"})
		return
	}

	var req AssetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
		return
	}

	asset.Code = strings.TrimSpace(req.Code)
	asset.Name = strings.TrimSpace(req.Name)
	asset.Description = req.Description
	asset.SerialNumber = req.SerialNumber
	asset.CategoryID = req.CategoryID
	asset.RoomID = req.RoomID
	asset.OwnerID = req.OwnerID
	asset.PurchaseAt = req.PurchaseAt
	asset.Value = req.Value
	if req.Status != "" {
		asset.Status = strings.ToUpper(strings.TrimSpace(req.Status))
	}
	if req.IsActive != nil {
		asset.IsActive = *req.IsActive
	}

	if err := config.DB.Save(&asset).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to update asset"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": asset})
}

// DeleteAsset removes an asset.
func DeleteAsset(c *gin.Context) {
	result := config.DB.Delete(&models.Asset{}, c.Param("id"))
	if result.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to delete asset"})
		return
	}
	if result.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "Asset not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Asset deleted"})
}
