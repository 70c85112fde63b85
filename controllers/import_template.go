package controllers

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/xuri/excelize/v2"
)

type importTemplate struct {
	headers []string
	example []any
}

var importTemplates = map[string]importTemplate{
	"asset": {
		headers: []string{"code", "name", "description", "serial_number", "categoryName", "roomCode", "ownerEmail", "status", "purchase_at", "value", "is_active"},
		example: []any{"A-0001", "Laptop Dell XPS 13", "Developer laptop", "SN-123456", "Electronics", "R101", "jane.doe@example.com", "AVAILABLE", "2024-01-15", 42000.50, "true"},
	},
	"room": {
		headers: []string{"code", "name", "description"},
		example: []any{"R101", "Server Room", "First floor, east wing"},
	},
	"category": {
		headers: []string{"name", "description"},
		example: []any{"Electronics", "Computers and peripherals"},
	},
	"user": {
		headers: []string{"firstname", "lastname", "email", "username", "phone", "role"},
		example: []any{"Jane", "Doe", "jane.doe@example.com", "jdoe", "0812345678", "OWNER"},
	},
}

// DownloadImportTemplate streams an XLSX template with the expected
// column headers and one example row for the requested entity type.
func DownloadImportTemplate(c *gin.Context) {
	kind := strings.ToLower(strings.TrimSpace(c.Param("type")))
	tpl, ok := importTemplates[kind]
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Unknown template type"})
		return
	}

	f := excelize.NewFile()
	defer f.Close()

	sheet := f.GetSheetName(0)

	headerRow := make([]any, len(tpl.headers))
	for i, h := range tpl.headers {
		headerRow[i] = h
	}
	if err := f.SetSheetRow(sheet, "A1", &headerRow); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to build template"})
		return
	}
	if err := f.SetSheetRow(sheet, "A2", &tpl.example); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to build template"})
		return
	}

	if styleID, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
	}); err == nil {
		endCol, _ := excelize.ColumnNumberToName(len(tpl.headers))
		f.SetCellStyle(sheet, "A1", endCol+"1", styleID)
	}

	filename := fmt.Sprintf("%s_import_template.xlsx", kind)
	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
	if err := f.Write(c.Writer); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to write template"})
	}
}
