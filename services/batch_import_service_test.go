package services

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func testLogs(t *testing.T) *ErrorLogService {
	t.Helper()
	return NewErrorLogService(t.TempDir())
}

func TestTwoPhaseAbortsOnBadReference(t *testing.T) {
	store := newFakeStore()
	store.seedRoom(7, "R101", "Server Room")

	rows := []CandidateRow{
		assetRow(2, map[string]any{"code": "A1", "name": "Laptop", "categoryName": "Electronics"}),
		assetRow(3, map[string]any{"code": "A2", "name": "Monitor", "roomCode": "R101"}),
	}

	batch := NewBatchImportService(store, testLogs(t), PolicyTwoPhase)
	result, err := batch.Run(context.Background(), AssetImporter{}, rows, nil, "assets.xlsx")
	if err != nil {
		t.Fatal(err)
	}

	if result.Success {
		t.Error("a bad reference should fail the whole upload")
	}
	if result.Message != "Upload aborted: the file contains invalid data" {
		t.Errorf("message = %q", result.Message)
	}
	if result.Data.TotalRows != 2 || result.Data.SuccessRows != 0 || result.Data.FailedRows != 2 {
		t.Errorf("counts = %+v", result.Data)
	}
	if result.Data.ImportID != nil {
		t.Errorf("aborted upload should have no import id, got %v", *result.Data.ImportID)
	}
	if len(result.Data.Errors) != 1 || result.Data.Errors[0] != `Row 2: category "Electronics" not found` {
		t.Errorf("errors = %v", result.Data.Errors)
	}

	// Nothing may be written, not even the valid row or a ledger entry.
	if len(store.assets) != 0 || len(store.runs) != 0 {
		t.Errorf("aborted upload wrote %d assets, %d runs", len(store.assets), len(store.runs))
	}
}

func TestTwoPhaseImportsCleanFile(t *testing.T) {
	store := newFakeStore()
	store.seedCategory(1, "Electronics")
	userID := uint(9)

	rows := []CandidateRow{
		assetRow(2, map[string]any{"code": "A1", "name": "Laptop", "categoryName": "Electronics"}),
		assetRow(3, map[string]any{"code": "A2", "name": "Monitor"}),
	}

	batch := NewBatchImportService(store, testLogs(t), PolicyTwoPhase)
	result, err := batch.Run(context.Background(), AssetImporter{}, rows, &userID, "assets.xlsx")
	if err != nil {
		t.Fatal(err)
	}

	if !result.Success {
		t.Fatalf("expected success, got %q", result.Message)
	}
	if result.Data.SuccessRows != 2 || result.Data.FailedRows != 0 {
		t.Errorf("counts = %+v", result.Data)
	}
	if result.Data.ImportID == nil || *result.Data.ImportID != "1" {
		t.Errorf("import id = %v", result.Data.ImportID)
	}
	if len(result.Data.Errors) != 0 {
		t.Errorf("errors should be empty, got %v", result.Data.Errors)
	}
	if len(store.assets) != 2 {
		t.Fatalf("expected 2 assets, got %d", len(store.assets))
	}

	run := store.runs[0]
	if run.ImportType != "ASSET" || run.Filename != "assets.xlsx" {
		t.Errorf("run = %+v", run)
	}
	if run.ImportedBy == nil || *run.ImportedBy != 9 {
		t.Errorf("imported_by = %v", run.ImportedBy)
	}
	if run.ErrorLogURL != nil {
		t.Error("clean import should not write an error log")
	}
}

func TestTwoPhaseDuplicateCodeWithinFile(t *testing.T) {
	store := newFakeStore()

	rows := []CandidateRow{
		assetRow(2, map[string]any{"code": "A1", "name": "Laptop"}),
		assetRow(3, map[string]any{"code": "A1", "name": "Copy"}),
	}

	batch := NewBatchImportService(store, testLogs(t), PolicyTwoPhase)
	result, err := batch.Run(context.Background(), AssetImporter{}, rows, nil, "assets.xlsx")
	if err != nil {
		t.Fatal(err)
	}

	// Row 2 is persisted before row 3 is validated, so the duplicate is
	// caught against the store.
	if result.Data.SuccessRows != 1 || result.Data.FailedRows != 1 {
		t.Fatalf("counts = %+v", result.Data)
	}
	if result.Data.Errors[0] != `Row 3: asset code "A1" already exists` {
		t.Errorf("errors = %v", result.Data.Errors)
	}
}

func TestSinglePhasePartialSuccess(t *testing.T) {
	store := newFakeStore()
	store.seedRoom(1, "R101", "Server Room")

	rows := []CandidateRow{
		{Number: 2, Fields: map[string]any{"code": "R201", "name": "Lab"}},
		{Number: 3, Fields: map[string]any{"code": "R101", "name": "Clash"}},
		{Number: 4, Fields: map[string]any{"code": "", "name": "Anon"}},
		{Number: 5, Fields: map[string]any{"code": "R202", "name": "Storage"}},
	}

	logs := testLogs(t)
	batch := NewBatchImportService(store, logs, PolicySinglePhase)
	result, err := batch.Run(context.Background(), RoomImporter{}, rows, nil, "rooms.csv")
	if err != nil {
		t.Fatal(err)
	}

	if !result.Success {
		t.Fatalf("partial success should still succeed: %q", result.Message)
	}
	if result.Message != "Import finished: 2 succeeded, 2 failed" {
		t.Errorf("message = %q", result.Message)
	}
	if result.Data.TotalRows != 4 || result.Data.SuccessRows != 2 || result.Data.FailedRows != 2 {
		t.Errorf("counts = %+v", result.Data)
	}

	want := []string{
		`Row 3: room code "R101" already exists`,
		"Row 4: room code and name are required",
	}
	if len(result.Data.Errors) != 2 || result.Data.Errors[0] != want[0] || result.Data.Errors[1] != want[1] {
		t.Errorf("errors = %v", result.Data.Errors)
	}

	// Only the two valid rooms were added on top of the seeded one.
	if len(store.rooms) != 3 {
		t.Errorf("rooms = %d", len(store.rooms))
	}

	run := store.runs[0]
	if run.ErrorLogURL == nil {
		t.Fatal("failed rows should produce an error log")
	}
	text, err := logs.Read(*run.ErrorLogURL)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(text, want[0]) || !strings.Contains(text, want[1]) {
		t.Errorf("error log text = %q", text)
	}
}

func TestSinglePhaseInBatchDuplicate(t *testing.T) {
	store := newFakeStore()

	rows := []CandidateRow{
		{Number: 2, Fields: map[string]any{"name": "Electronics"}},
		{Number: 3, Fields: map[string]any{"name": "Electronics"}},
		{Number: 4, Fields: map[string]any{"name": "Furniture"}},
	}

	batch := NewBatchImportService(store, testLogs(t), PolicySinglePhase)
	result, err := batch.Run(context.Background(), CategoryImporter{}, rows, nil, "categories.csv")
	if err != nil {
		t.Fatal(err)
	}

	if result.Data.SuccessRows != 2 || result.Data.FailedRows != 1 {
		t.Fatalf("counts = %+v", result.Data)
	}
	if result.Data.Errors[0] != `Row 3: category "Electronics" already exists` {
		t.Errorf("errors = %v", result.Data.Errors)
	}
	if len(store.categories) != 2 {
		t.Errorf("categories = %d", len(store.categories))
	}
}

func TestSinglePhaseCommitFailureWritesNothing(t *testing.T) {
	store := newFakeStore()
	store.txErr = errors.New("deadlock")

	rows := []CandidateRow{
		{Number: 2, Fields: map[string]any{"code": "R201", "name": "Lab"}},
	}

	batch := NewBatchImportService(store, testLogs(t), PolicySinglePhase)
	result, err := batch.Run(context.Background(), RoomImporter{}, rows, nil, "rooms.csv")
	if result != nil {
		t.Errorf("failed commit should not produce a result, got %+v", result)
	}
	if err == nil || !strings.Contains(err.Error(), "failed to save batch") {
		t.Fatalf("err = %v", err)
	}
	if len(store.rooms) != 0 || len(store.runs) != 0 {
		t.Error("failed commit must leave the store untouched")
	}
}

func TestErrorsStayInRowOrder(t *testing.T) {
	store := newFakeStore()

	var rows []CandidateRow
	for n := 2; n <= 6; n++ {
		rows = append(rows, CandidateRow{Number: n, Fields: map[string]any{"name": ""}})
	}

	batch := NewBatchImportService(store, testLogs(t), PolicySinglePhase)
	result, err := batch.Run(context.Background(), CategoryImporter{}, rows, nil, "categories.csv")
	if err != nil {
		t.Fatal(err)
	}

	if len(result.Data.Errors) != 5 {
		t.Fatalf("errors = %v", result.Data.Errors)
	}
	for i, msg := range result.Data.Errors {
		wantPrefix := "Row " + string(rune('0'+i+2)) + ":"
		if !strings.HasPrefix(msg, wantPrefix) {
			t.Errorf("errors[%d] = %q, want prefix %q", i, msg, wantPrefix)
		}
	}
}

func TestErrorLogFileLayout(t *testing.T) {
	dir := t.TempDir()
	logs := NewErrorLogService(dir)

	name, err := logs.Write([]string{"Row 2: bad", "Row 3: worse"})
	if err != nil {
		t.Fatal(err)
	}
	if name == nil || !strings.HasPrefix(*name, "errors_") || !strings.HasSuffix(*name, ".txt") {
		t.Fatalf("name = %v", name)
	}

	data, err := os.ReadFile(filepath.Join(dir, *name))
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "Row 2: bad\nRow 3: worse" {
		t.Errorf("content = %q", data)
	}

	if name, err := logs.Write(nil); err != nil || name != nil {
		t.Errorf("empty error list should write nothing, got (%v, %v)", name, err)
	}

	if _, err := logs.Read("../etc/passwd"); err == nil {
		t.Error("path traversal should be rejected")
	}
}
