package services

import (
	"errors"
	"log"

	"asset-management-api/config"
	"asset-management-api/models"

	"gorm.io/gorm"
)

var ErrImportRunNotFound = errors.New("import run not found")

// ImportRunService serves the read side of the import ledger: paginated
// history and single-run detail with the error log text inlined.
type ImportRunService struct {
	db   *gorm.DB
	logs *ErrorLogService
}

func NewImportRunService(db *gorm.DB, logs *ErrorLogService) *ImportRunService {
	if db == nil {
		db = config.DB
	}
	return &ImportRunService{db: db, logs: logs}
}

// List returns one page of import runs, newest first, optionally
// filtered by entity kind, along with the unpaginated total.
func (s *ImportRunService) List(page, limit int, importType string) ([]models.ExcelImport, int64, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}

	query := s.db.Model(&models.ExcelImport{})
	if importType != "" {
		query = query.Where("import_type = ?", importType)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var runs []models.ExcelImport
	err := query.
		Preload("User").
		Order("created_at DESC").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&runs).Error
	if err != nil {
		return nil, 0, err
	}
	return runs, total, nil
}

// Detail returns one run and the full text of its error log, when any.
func (s *ImportRunService) Detail(id uint) (*models.ExcelImport, string, error) {
	var run models.ExcelImport
	err := s.db.Preload("User").Where("id = ?", id).First(&run).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, "", ErrImportRunNotFound
	}
	if err != nil {
		return nil, "", err
	}

	errorLog := ""
	if run.ErrorLogURL != nil {
		errorLog, err = s.logs.Read(*run.ErrorLogURL)
		if err != nil {
			// History must stay readable even if the log file is gone.
			log.Printf("[IMPORT][WARN] failed to read error log %q: %v", *run.ErrorLogURL, err)
			errorLog = ""
		}
	}
	return &run, errorLog, nil
}
