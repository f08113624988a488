package importer

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"marcingest/internal/catalog"
	"marcingest/internal/extract"
	"marcingest/internal/logging"
	"marcingest/internal/marc"
	"marcingest/internal/queue"
	"marcingest/internal/tracing"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

var tr = otel.Tracer("importer")

const DefaultBatchSize = 500

type Config struct {
	BatchSize     int
	ReadChunkSize int
}

// Stats summarises a finished run.
type Stats struct {
	Records int
	Failed  int
	Batches int
	Books   int
	Copies  int
}

type Service struct {
	repo        Repository
	catalogRepo catalog.Repository
	store       ObjectStore
	publisher   EmbeddingPublisher
	cfg         Config
}

func NewService(repo Repository, catalogRepo catalog.Repository, store ObjectStore, publisher EmbeddingPublisher, cfg Config) *Service {
	if cfg.BatchSize <= 0 {
		cfg.BatchSize = DefaultBatchSize
	}
	if cfg.ReadChunkSize <= 0 {
		cfg.ReadChunkSize = marc.DefaultChunkSize
	}
	return &Service{
		repo:        repo,
		catalogRepo: catalogRepo,
		store:       store,
		publisher:   publisher,
		cfg:         cfg,
	}
}

// Process runs one import job to completion. A job that cannot be claimed is
// skipped without error. On failure the job is marked FAILED, no embedding
// work is published and the error is returned.
func (s *Service) Process(ctx context.Context, msg queue.JobMessage) error {
	ctx, span := tr.Start(ctx, "process", trace.WithAttributes(
		attribute.String("import.id", msg.ImportID),
		attribute.String("import.library_id", msg.LibraryID),
	))
	defer span.End()

	logger := logging.WithFields(ctx, "import_id", msg.ImportID, "library_id", msg.LibraryID)

	job, err := s.repo.ClaimJob(ctx, msg.ImportID, msg.LibraryID)
	if errors.Is(err, ErrJobAlreadyClaimed) {
		logger.Info("import job not pending, skipping")
		return nil
	}
	if err != nil {
		return tracing.Error(span, fmt.Errorf("claim job: %w: %w", queue.ErrRedeliver, err))
	}
	logger.Info("import started", "file_key", msg.FileKey)

	embeddings, stats, runErr := s.run(ctx, job, msg, logger)

	status := StatusComplete
	if runErr != nil {
		status = StatusFailed
	}
	// The status must land even when ctx was cancelled mid-run.
	if err := s.repo.UpdateStatus(context.WithoutCancel(ctx), job.ID, job.LibraryID, status); err != nil {
		logger.Error("update import status failed", "status", status, "error", err)
		if runErr == nil {
			return tracing.Error(span, fmt.Errorf("update status: %w", err))
		}
	}

	if runErr != nil {
		logger.Error("import failed", "error", runErr, "batches", stats.Batches)
		return tracing.Error(span, runErr)
	}

	for _, m := range embeddings {
		if err := s.publisher.PublishEmbedding(ctx, m); err != nil {
			logger.Error("publish embedding job failed", "books", len(m.BookIDs), "error", err)
		}
	}

	span.SetAttributes(
		attribute.Int("import.records", stats.Records),
		attribute.Int("import.books", stats.Books),
	)
	logger.Info("import complete",
		"records", stats.Records,
		"failed", stats.Failed,
		"batches", stats.Batches,
		"books", stats.Books,
		"copies", stats.Copies,
	)
	return nil
}

func (s *Service) run(ctx context.Context, job *Job, msg queue.JobMessage, logger *slog.Logger) ([]queue.EmbeddingMessage, Stats, error) {
	var stats Stats

	m, err := s.newMaterializer(ctx, job)
	if err != nil {
		return nil, stats, err
	}

	body, err := s.store.Open(ctx, msg.BucketName, msg.FileKey)
	if err != nil {
		return nil, stats, fmt.Errorf("open %s/%s: %w", msg.BucketName, msg.FileKey, err)
	}
	defer body.Close()

	var embeddings []queue.EmbeddingMessage
	window := make([]extract.ProcessedData, 0, s.cfg.BatchSize)

	flush := func() error {
		if len(window) == 0 {
			return nil
		}
		stats.Batches++
		bookIDs, err := s.commit(ctx, m, window, stats.Batches, &stats)
		if err != nil {
			return err
		}
		logger.Debug("batch committed", "batch", stats.Batches, "records", len(window), "books", len(bookIDs))
		if len(bookIDs) > 0 {
			embeddings = append(embeddings, queue.EmbeddingMessage{BookIDs: bookIDs})
		}
		window = window[:0]
		return nil
	}

	for res, err := range marc.Records(body, s.cfg.ReadChunkSize) {
		if err != nil {
			return nil, stats, fmt.Errorf("read %s: %w", msg.FileKey, err)
		}

		data := extract.Process(res)
		stats.Records++
		if data.Parsed == nil {
			stats.Failed++
			logger.Warn("malformed record",
				"offset", res.Offset,
				"error", data.Err,
				"raw", logging.Preview(res.Raw, 48),
			)
		}

		window = append(window, data)
		if len(window) == s.cfg.BatchSize {
			if err := flush(); err != nil {
				return nil, stats, err
			}
		}
	}
	if err := flush(); err != nil {
		return nil, stats, err
	}

	return embeddings, stats, nil
}

func (s *Service) newMaterializer(ctx context.Context, job *Job) (*Materializer, error) {
	barcodes, err := s.catalogRepo.ListBarcodes(ctx, job.LibraryID)
	if err != nil {
		return nil, fmt.Errorf("seed barcodes: %w", err)
	}
	editions, err := s.catalogRepo.ListEditionISBNs(ctx, job.LibraryID)
	if err != nil {
		return nil, fmt.Errorf("seed editions: %w", err)
	}

	return &Materializer{
		ImportID:  job.ID,
		LibraryID: job.LibraryID,
		Policy:    job.Policy,
		Barcodes:  NewBarcodeAllocator(barcodes),
		Editions:  NewEditionResolver(editions),
	}, nil
}

func (s *Service) commit(ctx context.Context, m *Materializer, window []extract.ProcessedData, batch int, stats *Stats) ([]string, error) {
	ctx, span := tr.Start(ctx, "commit_batch", trace.WithAttributes(
		attribute.Int("import.batch", batch),
		attribute.Int("import.batch_records", len(window)),
	))
	defer span.End()

	ins, err := m.Materialize(window)
	if err != nil {
		return nil, tracing.Error(span, fmt.Errorf("materialize batch %d: %w", batch, err))
	}
	if err := s.repo.CommitBatch(ctx, ins); err != nil {
		return nil, tracing.Error(span, &BatchCommitError{Batch: batch, Records: len(window), Err: err})
	}

	stats.Books += len(ins.AddedBookIDs)
	stats.Copies += len(ins.Catalog.Copies)
	return ins.AddedBookIDs, nil
}

// Status returns the persisted state of a job.
func (s *Service) Status(ctx context.Context, importID string) (*Job, error) {
	return s.repo.GetJob(ctx, importID)
}
