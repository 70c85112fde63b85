package services

import (
	"context"
	"fmt"
	"log"

	"asset-management-api/models"
)

// BatchImportService runs one uploaded file through validation and
// persistence under the configured policy and records the run in the
// import ledger. Rows are processed strictly in file order; duplicate
// checks read state that earlier rows may have changed, so the loop is
// never parallelized.
type BatchImportService struct {
	store  ImportStore
	logs   *ErrorLogService
	policy ImportPolicy
}

func NewBatchImportService(store ImportStore, logs *ErrorLogService, policy ImportPolicy) *BatchImportService {
	return &BatchImportService{store: store, logs: logs, policy: policy}
}

// Run imports all rows of one file. The returned ImportResult always
// satisfies successRows + failedRows == totalRows and lists errors in
// ascending row order. A non-nil error means the final commit itself
// failed and nothing was written.
func (s *BatchImportService) Run(ctx context.Context, imp EntityImporter, rows []CandidateRow, importedBy *uint, filename string) (*ImportResult, error) {
	log.Printf("[IMPORT][START] type=%s file=%q rows=%d", imp.Kind(), filename, len(rows))

	if s.policy == PolicyTwoPhase {
		if errs := imp.PreValidate(ctx, s.store, rows); len(errs) > 0 {
			log.Printf("[IMPORT][ABORT] type=%s file=%q prevalidation_errors=%d", imp.Kind(), filename, len(errs))
			return &ImportResult{
				Success: false,
				Message: "Upload aborted: the file contains invalid data",
				Data: ImportSummary{
					TotalRows:   len(rows),
					SuccessRows: 0,
					FailedRows:  len(rows),
					Errors:      errs,
					ImportID:    nil,
				},
			}, nil
		}
		return s.runTwoPhase(ctx, imp, rows, importedBy, filename)
	}
	return s.runSinglePhase(ctx, imp, rows, importedBy, filename)
}

// runTwoPhase writes each valid row as soon as it is validated; the
// pre-validation pass has already vetoed files with bad references, so
// remaining failures are per-row data problems.
func (s *BatchImportService) runTwoPhase(ctx context.Context, imp EntityImporter, rows []CandidateRow, importedBy *uint, filename string) (*ImportResult, error) {
	var errs []string
	successCount := 0

	for _, row := range rows {
		outcome := imp.ProcessRow(ctx, s.store, row)
		if outcome.OK() {
			if err := imp.Persist(ctx, s.store, outcome.Entity); err != nil {
				errs = append(errs, fmt.Sprintf("Row %d: %s", row.Number, err))
				continue
			}
			successCount++
			continue
		}
		errs = append(errs, outcome.Failure)
	}

	logRef, err := s.logs.Write(errs)
	if err != nil {
		return nil, fmt.Errorf("failed to write error log: %w", err)
	}

	run := &models.ExcelImport{
		Filename:    filename,
		ImportType:  imp.Kind(),
		ImportedBy:  importedBy,
		TotalRows:   len(rows),
		SuccessRows: successCount,
		FailedRows:  len(rows) - successCount,
		ErrorLogURL: logRef,
	}
	if err := s.store.CreateImportRun(ctx, run); err != nil {
		return nil, fmt.Errorf("failed to record import run: %w", err)
	}

	return s.finish(imp.Kind(), filename, run, errs), nil
}

// runSinglePhase validates every row without writing, rejects in-batch
// duplicate keys, then commits all accepted rows, the error log and the
// ledger entry in one transaction.
func (s *BatchImportService) runSinglePhase(ctx context.Context, imp EntityImporter, rows []CandidateRow, importedBy *uint, filename string) (*ImportResult, error) {
	var errs []string
	var pending []RowOutcome
	seen := make(map[UniqueKey]bool)

	for _, row := range rows {
		outcome := imp.ProcessRow(ctx, s.store, row)
		if !outcome.OK() {
			errs = append(errs, outcome.Failure)
			continue
		}

		duplicate := false
		for _, key := range outcome.Keys {
			if seen[key] {
				errs = append(errs, fmt.Sprintf("Row %d: %s %q already exists", row.Number, key.Label, key.Value))
				duplicate = true
				break
			}
		}
		if duplicate {
			continue
		}
		for _, key := range outcome.Keys {
			seen[key] = true
		}
		pending = append(pending, outcome)
	}

	run := &models.ExcelImport{
		Filename:    filename,
		ImportType:  imp.Kind(),
		ImportedBy:  importedBy,
		TotalRows:   len(rows),
		SuccessRows: len(pending),
		FailedRows:  len(rows) - len(pending),
	}

	err := s.store.Transaction(ctx, func(tx ImportStore) error {
		for _, outcome := range pending {
			if err := imp.Persist(ctx, tx, outcome.Entity); err != nil {
				return err
			}
		}
		logRef, err := s.logs.Write(errs)
		if err != nil {
			return err
		}
		run.ErrorLogURL = logRef
		return tx.CreateImportRun(ctx, run)
	})
	if err != nil {
		log.Printf("[IMPORT][ERR] type=%s file=%q commit failed: %v", imp.Kind(), filename, err)
		return nil, fmt.Errorf("failed to save batch: %w", err)
	}

	return s.finish(imp.Kind(), filename, run, errs), nil
}

func (s *BatchImportService) finish(kind, filename string, run *models.ExcelImport, errs []string) *ImportResult {
	log.Printf("[IMPORT][DONE] type=%s file=%q total=%d success=%d failed=%d",
		kind, filename, run.TotalRows, run.SuccessRows, run.FailedRows)

	importID := fmt.Sprintf("%d", run.ID)
	if errs == nil {
		errs = []string{}
	}
	return &ImportResult{
		Success: true,
		Message: fmt.Sprintf("Import finished: %d succeeded, %d failed", run.SuccessRows, run.FailedRows),
		Data: ImportSummary{
			TotalRows:   run.TotalRows,
			SuccessRows: run.SuccessRows,
			FailedRows:  run.FailedRows,
			Errors:      errs,
			ImportID:    &importID,
		},
	}
}
