package controllers

import (
	"net/http"

	"asset-management-api/config"
	"asset-management-api/models"

	"github.com/gin-gonic/gin"
)

// GetDashboardStats returns record counts and the asset status breakdown.
func GetDashboardStats(c *gin.Context) {
	var assetCount, roomCount, categoryCount, userCount int64
	if err := config.DB.Model(&models.Asset{}).Count(&assetCount).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to load statistics"})
		return
	}
	config.DB.Model(&models.Room{}).Count(&roomCount)
	config.DB.Model(&models.Category{}).Count(&categoryCount)
	config.DB.Model(&models.User{}).Where("is_active = ?", true).Count(&userCount)

	var statusRows []struct {
		Status string `json:"status"`
		Count  int64  `json:"count"`
	}
	config.DB.Model(&models.Asset{}).
		Select("status, COUNT(*) AS count").
		Group("status").
		Scan(&statusRows)

	var recentImports []models.ExcelImport
	config.DB.Preload("User").Order("created_at DESC").Limit(5).Find(&recentImports)

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"stats": gin.H{
			"assets":         assetCount,
			"rooms":          roomCount,
			"categories":     categoryCount,
			"users":          userCount,
			"assetsByStatus": statusRows,
			"recentImports":  recentImports,
		},
	})
}
