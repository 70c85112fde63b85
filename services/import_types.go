package services

import (
	"context"
	"errors"
	"fmt"

	"asset-management-api/models"
)

var (
	ErrUnsupportedFileType = errors.New("only .xlsx, .xls and .csv files are supported")
	ErrFileTooLarge        = errors.New("file size must not exceed 10MB")
)

// CandidateRow is one sanitized spreadsheet row pending validation.
// Number is the 1-based source row; the header occupies row 1, so the
// first data row is 2. Field values are string, float64, bool or nil.
type CandidateRow struct {
	Number int
	Fields map[string]any
}

// UniqueKey is a business key an imported record claims, used to catch
// duplicates within one batch before anything is written.
type UniqueKey struct {
	Label string
	Value string
}

// RowOutcome is the result of validating one CandidateRow. Exactly one
// of Entity (success) or Failure (a "Row {n}: {reason}" message) is set.
type RowOutcome struct {
	Row     int
	Entity  any
	Keys    []UniqueKey
	Failure string
}

func (o RowOutcome) OK() bool {
	return o.Failure == ""
}

func failRow(row int, format string, args ...any) RowOutcome {
	return RowOutcome{Row: row, Failure: fmt.Sprintf("Row %d: ", row) + fmt.Sprintf(format, args...)}
}

// ImportStore is the persistence surface the import pipeline needs.
// Lookups return (nil, nil) on a miss; only infrastructure problems
// surface as errors. One gorm-backed instance serves the process;
// tests substitute an in-memory fake.
type ImportStore interface {
	CategoryByID(ctx context.Context, id uint) (*models.Category, error)
	CategoryByName(ctx context.Context, name string) (*models.Category, error)
	RoomByID(ctx context.Context, id uint) (*models.Room, error)
	RoomByCode(ctx context.Context, code string) (*models.Room, error)
	UserByID(ctx context.Context, id uint) (*models.User, error)
	UserByEmail(ctx context.Context, email string) (*models.User, error)
	UserByName(ctx context.Context, firstname, lastname string) (*models.User, error)

	AssetCodeExists(ctx context.Context, code string) (bool, error)
	AssetSerialExists(ctx context.Context, serial string) (bool, error)
	RoomCodeExists(ctx context.Context, code string) (bool, error)
	CategoryNameExists(ctx context.Context, name string) (bool, error)
	UserEmailExists(ctx context.Context, email string) (bool, error)
	UserUsernameExists(ctx context.Context, username string) (bool, error)

	CreateAsset(ctx context.Context, asset *models.Asset) error
	CreateRoom(ctx context.Context, room *models.Room) error
	CreateCategory(ctx context.Context, category *models.Category) error
	CreateUser(ctx context.Context, user *models.User) error
	CreateImportRun(ctx context.Context, run *models.ExcelImport) error

	Transaction(ctx context.Context, fn func(ImportStore) error) error
}

// EntityImporter validates and persists rows of one entity kind.
// ProcessRow never writes; Persist performs the insert so the batch
// orchestrator controls when writes happen under each policy.
type EntityImporter interface {
	Kind() string
	PreValidate(ctx context.Context, store ImportStore, rows []CandidateRow) []string
	ProcessRow(ctx context.Context, store ImportStore, row CandidateRow) RowOutcome
	Persist(ctx context.Context, store ImportStore, entity any) error
}

// ImportPolicy selects the batch consistency model.
type ImportPolicy int

const (
	// PolicyTwoPhase pre-validates every row's references first and
	// aborts the whole batch with zero writes on any error; otherwise
	// rows are validated and written one at a time.
	PolicyTwoPhase ImportPolicy = iota

	// PolicySinglePhase validates row by row, allows partial success,
	// and commits all accepted rows together with the ledger entry in
	// one transaction at the end.
	PolicySinglePhase
)

// ImportSummary is the data payload of an import response.
type ImportSummary struct {
	TotalRows   int      `json:"totalRows"`
	SuccessRows int      `json:"successRows"`
	FailedRows  int      `json:"failedRows"`
	Errors      []string `json:"errors"`
	ImportID    *string  `json:"importId"`
}

// ImportResult is the full response body for an upload. Data-level
// failures still travel over HTTP 200; Success reports them.
type ImportResult struct {
	Success bool          `json:"success"`
	Message string        `json:"message"`
	Data    ImportSummary `json:"data"`
}
