package importer

import (
	"context"
	"io"

	"marcingest/internal/queue"
)

//go:generate mockgen -destination=mocks/mock_ports.go -package=mocks marcingest/internal/importer EmbeddingPublisher,ObjectStore,Repository

// Repository persists import jobs and their audit rows.
type Repository interface {
	// ClaimJob moves a PENDING job to PARSING. It returns ErrJobAlreadyClaimed
	// when the job is missing, belongs to another library or is not PENDING.
	ClaimJob(ctx context.Context, importID, libraryID string) (*Job, error)
	UpdateStatus(ctx context.Context, importID, libraryID string, status Status) error
	GetJob(ctx context.Context, importID string) (*Job, error)
	// CommitBatch writes every row of a batch in one transaction.
	CommitBatch(ctx context.Context, ins *BatchInserts) error
}

// ObjectStore opens uploaded MARC files.
type ObjectStore interface {
	Open(ctx context.Context, bucket, key string) (io.ReadCloser, error)
}

// EmbeddingPublisher enqueues embedding work for newly created books.
type EmbeddingPublisher interface {
	PublishEmbedding(ctx context.Context, msg queue.EmbeddingMessage) error
}
