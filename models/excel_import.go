package models

import (
	"time"
)

const (
	ImportTypeAsset    = "ASSET"
	ImportTypeRoom     = "ROOM"
	ImportTypeCategory = "CATEGORY"
	ImportTypeUser     = "USER"
)

// ExcelImport records one bulk upload run. Rows are never updated or
// deleted once written; successRows + failedRows always equals totalRows.
type ExcelImport struct {
	ID          uint      `gorm:"primaryKey;autoIncrement;column:id" json:"id"`
	Filename    string    `gorm:"column:filename;not null" json:"filename"`
	ImportType  string    `gorm:"column:import_type;type:varchar(16);not null" json:"import_type"`
	ImportedBy  *uint     `gorm:"column:imported_by" json:"imported_by,omitempty"`
	TotalRows   int       `gorm:"column:total_rows;not null;default:0" json:"total_rows"`
	SuccessRows int       `gorm:"column:success_rows;not null;default:0" json:"success_rows"`
	FailedRows  int       `gorm:"column:failed_rows;not null;default:0" json:"failed_rows"`
	ErrorLogURL *string   `gorm:"column:error_log_url" json:"error_log_url,omitempty"`
	CreatedAt   time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`

	// Relations
	User *User `gorm:"foreignKey:ImportedBy" json:"user,omitempty"`
}

func (ExcelImport) TableName() string {
	return "excel_imports"
}

// ValidImportType reports whether the value names one of the four
// importable entity kinds.
func ValidImportType(t string) bool {
	switch t {
	case ImportTypeAsset, ImportTypeRoom, ImportTypeCategory, ImportTypeUser:
		return true
	}
	return false
}
