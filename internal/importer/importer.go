// Package importer runs MARC file import jobs: it streams an uploaded file
// through the decoder, turns records into catalog rows one batch at a time
// and tracks the job's status.
package importer

import (
	"errors"
	"fmt"
	"time"
)

type Status string

const (
	StatusPending  Status = "PENDING"
	StatusParsing  Status = "PARSING"
	StatusComplete Status = "COMPLETE"
	StatusFailed   Status = "FAILED"
)

// Behavior is a job's choice for copies whose barcode is missing or taken.
type Behavior string

const (
	BehaviorCreateNew Behavior = "CREATE_NEW"
	BehaviorSkip      Behavior = "SKIP"
)

// Policy is the copy acceptance policy chosen when the job was created.
type Policy struct {
	DuplicateBarcode Behavior `json:"duplicateBarcodeBehavior"`
	NoBarcode        Behavior `json:"noBarcodeBehavior"`
}

// Job is a row of marc_file_import.
type Job struct {
	ID        string    `json:"id"`
	LibraryID string    `json:"libraryId"`
	Name      string    `json:"name"`
	FileKey   string    `json:"fileKey"`
	Status    Status    `json:"status"`
	Policy    Policy    `json:"policy"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

var (
	// ErrJobAlreadyClaimed means the job was not PENDING, so another worker
	// owns it or it has already run.
	ErrJobAlreadyClaimed = errors.New("import job is not pending")
	ErrJobNotFound       = errors.New("import job not found")
)

// BatchCommitError reports a batch whose transaction failed. Nothing from
// the batch was written.
type BatchCommitError struct {
	Batch   int
	Records int
	Err     error
}

func (e *BatchCommitError) Error() string {
	return fmt.Sprintf("commit batch %d (%d records): %v", e.Batch, e.Records, e.Err)
}

func (e *BatchCommitError) Unwrap() error {
	return e.Err
}
