package controllers

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"asset-management-api/models"
	"asset-management-api/services"

	"github.com/gin-gonic/gin"
)

// GetImportHistory returns the import ledger, newest first, paginated.
func GetImportHistory(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))

	importType := strings.ToUpper(strings.TrimSpace(c.Query("type")))
	if importType != "" && !models.ValidImportType(importType) {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Unknown import type"})
		return
	}

	svc := services.NewImportRunService(nil, errorLogService)
	runs, total, err := svc.List(page, limit, importType)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to fetch import history"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    runs,
		"pagination": gin.H{
			"page":  page,
			"limit": limit,
			"total": total,
		},
	})
}

// GetImportDetail returns one ledger entry together with the text of
// its error log, when one was recorded.
func GetImportDetail(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Invalid import id"})
		return
	}

	svc := services.NewImportRunService(nil, errorLogService)
	run, errorLog, err := svc.Detail(uint(id))
	if err != nil {
		if errors.Is(err, services.ErrImportRunNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "Import run not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to fetch import run"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":  true,
		"data":     run,
		"errorLog": errorLog,
	})
}
