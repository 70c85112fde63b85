package controllers

import (
	"net/http"
	"strconv"
	"strings"

	"asset-management-api/config"
	"asset-management-api/models"
	"asset-management-api/utils"

	"github.com/gin-gonic/gin"
)

type UserRequest struct {
	Firstname string  `json:"firstname" binding:"required"`
	Lastname  string  `json:"lastname" binding:"required"`
	Email     string  `json:"email" binding:"required,email"`
	Username  *string `json:"username"`
	Password  string  `json:"password"`
	Phone     *string `json:"phone"`
	Role      string  `json:"role"`
	IsActive  *bool   `json:"is_active"`
}

// GetUsers lists user accounts with pagination.
func GetUsers(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 20
	}

	query := config.DB.Model(&models.User{})
	if search := strings.TrimSpace(c.Query("search")); search != "" {
		like := "%" + search + "%"
		query = query.Where("firstname LIKE ? OR lastname LIKE ? OR email LIKE ?", like, like, like)
	}
	if role := strings.ToUpper(strings.TrimSpace(c.Query("role"))); role != "" {
		query = query.Where("role = ?", role)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to count users"})
		return
	}

	var users []models.User
	if err := query.Order("created_at DESC").
		Offset((page - 1) * limit).Limit(limit).
		Find(&users).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to fetch users"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    users,
		"pagination": gin.H{
			"page":  page,
			"limit": limit,
			"total": total,
		},
	})
}

// GetUser returns one user by id.
func GetUser(c *gin.Context) {
	var user models.User
	if err := config.DB.First(&user, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "User not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": user})
}

// CreateUser creates a single user account.
func CreateUser(c *gin.Context) {
	var req UserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
		return
	}

	role := strings.ToUpper(strings.TrimSpace(req.Role))
	if role == "" {
		role = models.RoleOwner
	}
	if !models.ValidRole(role) {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Unknown role"})
		return
	}

	password := req.Password
	if password == "" {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Password is required"})
		return
	}
	hashed, err := utils.HashPassword(password)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to process password"})
		return
	}

	var count int64
	config.DB.Model(&models.User{}).Where("email = ?", strings.TrimSpace(req.Email)).Count(&count)
	if count > 0 {
		c.JSON(http.StatusConflict, gin.H{"success": false, "error": "Email already exists"})
		return
	}

	user := models.User{
		Firstname: strings.TrimSpace(req.Firstname),
		Lastname:  strings.TrimSpace(req.Lastname),
		Email:     strings.TrimSpace(req.Email),
		Username:  req.Username,
		Password:  hashed,
		Phone:     req.Phone,
		Role:      role,
		IsActive:  req.IsActive == nil || *req.IsActive,
	}

	if err := config.DB.Create(&user).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to create user"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"success": true, "data": user})
}

// UpdateUser updates an existing user account.
func UpdateUser(c *gin.Context) {
	var user models.User
	if err := config.DB.First(&user, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "User not found"})
		return
	}

	var req UserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
		return
	}

	if req.Role != "" {
		role := strings.ToUpper(strings.TrimSpace(req.Role))
		if !models.ValidRole(role) {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Unknown role"})
			return
		}
		user.Role = role
	}
	user.Firstname = strings.TrimSpace(req.Firstname)
	user.Lastname = strings.TrimSpace(req.Lastname)
	user.Email = strings.TrimSpace(req.Email)
	user.Username = req.Username
	user.Phone = req.Phone
	if req.IsActive != nil {
		user.IsActive = *req.IsActive
	}
	if req.Password != "" {
		hashed, err := utils.HashPassword(req.Password)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to process password"})
			return
		}
		user.Password = hashed
	}

	if err := config.DB.Save(&user).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to update user"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": user})
}

// DeleteUser deactivates a user account instead of removing the row,
// so import ledger entries keep their author.
func DeleteUser(c *gin.Context) {
	result := config.DB.Model(&models.User{}).
		Where("id = ?", c.Param("id")).
		Update("is_active", false)
	if result.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to deactivate user"})
		return
	}
	if result.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "User not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "User deactivated"})
}
