package controllers

import (
	"net/http"
	"strings"

	"asset-management-api/config"
	"asset-management-api/models"

	"github.com/gin-gonic/gin"
)

type CategoryRequest struct {
	Name        string  `json:"name" binding:"required"`
	Description *string `json:"description"`
}

// GetCategories lists all categories.
func GetCategories(c *gin.Context) {
	var categories []models.Category
	query := config.DB.Order("name ASC")
	if search := strings.TrimSpace(c.Query("search")); search != "" {
		query = query.Where("name LIKE ?", "%"+search+"%")
	}
	if err := query.Find(&categories).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to fetch categories"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": categories})
}

// GetCategory returns one category by id.
func GetCategory(c *gin.Context) {
	var category models.Category
	if err := config.DB.First(&category, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "Category not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": category})
}

// CreateCategory creates a single category.
func CreateCategory(c *gin.Context) {
	var req CategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
		return
	}

	category := models.Category{
		Name:        strings.TrimSpace(req.Name),
		Description: req.Description,
	}

	var count int64
	config.DB.Model(&models.Category{}).Where("name = ?", category.Name).Count(&count)
	if count > 0 {
		c.JSON(http.StatusConflict, gin.H{"success": false, "error": "Category already exists"})
		return
	}

	if err := config.DB.Create(&category).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to create category"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"success": true, "data": category})
}

// UpdateCategory updates an existing category.
func UpdateCategory(c *gin.Context) {
	var category models.Category
	if err := config.DB.First(&category, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "Category not found"})
		return
	}

	var req CategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
		return
	}

	category.Name = strings.TrimSpace(req.Name)
	category.Description = req.Description

	if err := config.DB.Save(&category).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to update category"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": category})
}

// DeleteCategory removes a category. Assets keep their row but lose the reference.
func DeleteCategory(c *gin.Context) {
	if err := config.DB.Model(&models.Asset{}).
		Where("category_id = ?", c.Param("id")).
		Update("category_id", nil).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to detach assets"})
		return
	}

	result := config.DB.Delete(&models.Category{}, c.Param("id"))
	if result.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to delete category"})
		return
	}
	if result.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "Category not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Category deleted"})
}
