// Package app wires configuration into the import service and its adapters.
package app

import (
	"context"
	"fmt"

	"marcingest/internal/catalog"
	"marcingest/internal/config"
	"marcingest/internal/importer"
	"marcingest/internal/platform/awsclient"
	"marcingest/internal/platform/database"
	"marcingest/internal/queue"
	"marcingest/internal/storage"

	"github.com/jackc/pgx/v5/pgxpool"
)

// JobPublisher enqueues import job messages.
type JobPublisher interface {
	PublishJob(ctx context.Context, msg queue.JobMessage) error
}

type App struct {
	Config *config.Config
	DB     *pgxpool.Pool
	AWS    *awsclient.Clients

	Jobs       *importer.PostgresRepo
	Catalog    *catalog.PostgresRepo
	Store      storage.Store
	Embeddings importer.EmbeddingPublisher
	JobQueue   JobPublisher
	Importer   *importer.Service
}

func New(ctx context.Context, cfg *config.Config) (*App, error) {
	db, err := database.Open(ctx, cfg.Database)
	if err != nil {
		return nil, err
	}

	a := &App{
		Config:  cfg,
		DB:      db,
		Jobs:    importer.NewPostgresRepo(db),
		Catalog: catalog.NewPostgresRepo(db),
	}

	a.AWS, err = awsclient.New(ctx, awsclient.Config{
		Region:      cfg.AWS.Region,
		EndpointURL: cfg.AWS.EndpointURL,
	})
	if err != nil {
		db.Close()
		return nil, err
	}

	switch cfg.Storage.Driver {
	case "fs":
		a.Store = storage.NewFSStore(cfg.Storage.FSRoot)
	case "s3":
		a.Store = storage.NewS3Store(a.AWS.S3)
	default:
		db.Close()
		return nil, fmt.Errorf("unknown storage driver %q", cfg.Storage.Driver)
	}

	logPublisher := queue.NewLogPublisher(nil)
	a.Embeddings = logPublisher
	if cfg.Queue.EmbeddingQueueURL != "" {
		a.Embeddings = queue.NewSQSPublisher(a.AWS.SQS, cfg.Queue.EmbeddingQueueURL)
	}
	a.JobQueue = logPublisher
	if cfg.Queue.MarcQueueURL != "" {
		a.JobQueue = queue.NewSQSPublisher(a.AWS.SQS, cfg.Queue.MarcQueueURL)
	}

	a.Importer = importer.NewService(a.Jobs, a.Catalog, a.Store, a.Embeddings, importer.Config{
		BatchSize:     cfg.Import.BatchSize,
		ReadChunkSize: cfg.Import.ReadChunkSize,
	})
	return a, nil
}

// Consumer builds the SQS consumer for job messages. It returns nil when no
// queue is configured.
func (a *App) Consumer() *queue.Consumer {
	q := a.Config.Queue
	if q.MarcQueueURL == "" {
		return nil
	}
	return queue.NewConsumer(a.AWS.SQS, a.Importer, queue.ConsumerConfig{
		QueueURL:          q.MarcQueueURL,
		WaitTime:          q.WaitTime,
		MaxMessages:       int32(q.MaxMessages),
		VisibilityTimeout: q.VisibilityTimeout,
		ErrorBackoff:      q.ErrorBackoff,
	})
}

func (a *App) Close() {
	a.DB.Close()
}
