package controllers

import (
	"net/http"

	"asset-management-api/services"

	"github.com/gin-gonic/gin"
)

var (
	stagingService  = services.NewFileStagingService("uploads/staging")
	errorLogService = services.NewErrorLogService("uploads/error_logs")
)

// ImportAssets imports assets from an uploaded spreadsheet. A single
// bad reference (category, room or owner) anywhere in the file aborts
// the whole batch with nothing written.
func ImportAssets(c *gin.Context) {
	runImport(c, services.AssetImporter{}, services.PolicyTwoPhase)
}

// ImportRooms imports rooms; valid rows are kept even when other rows fail.
func ImportRooms(c *gin.Context) {
	runImport(c, services.RoomImporter{}, services.PolicySinglePhase)
}

// ImportCategories imports categories; valid rows are kept even when other rows fail.
func ImportCategories(c *gin.Context) {
	runImport(c, services.CategoryImporter{}, services.PolicySinglePhase)
}

// ImportUsers imports user accounts; valid rows are kept even when other rows fail.
func ImportUsers(c *gin.Context) {
	runImport(c, services.UserImporter{}, services.PolicySinglePhase)
}

// runImport is the shared upload flow: stage the file, read and
// sanitize its rows, then hand the batch to the import service under
// the given policy. Data-level failures still answer HTTP 200 with
// success=false; only infrastructure problems become 4xx/5xx.
func runImport(c *gin.Context, imp services.EntityImporter, policy services.ImportPolicy) {
	file, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "No file uploaded"})
		return
	}

	stagedPath, err := stagingService.Stage(file)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
		return
	}
	defer stagingService.Cleanup(stagedPath)

	raw, err := services.ReadSpreadsheetRows(stagedPath)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Failed to read uploaded file"})
		return
	}
	rows := services.SanitizeRows(raw)

	var importedBy *uint
	if v, ok := c.Get("userID"); ok {
		if id, ok := v.(uint); ok {
			importedBy = &id
		}
	}

	batch := services.NewBatchImportService(services.NewGormImportStore(nil), errorLogService, policy)
	result, err := batch.Run(c.Request.Context(), imp, rows, importedBy, file.Filename)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, result)
}
