package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path"

	"marcingest/internal/app"
	"marcingest/internal/config"
	"marcingest/internal/importer"
	"marcingest/internal/logging"
	"marcingest/internal/queue"

	"github.com/google/uuid"
)

type options struct {
	libraryID        string
	bucket           string
	fileKey          string
	name             string
	noBarcode        string
	duplicateBarcode string
	enqueue          bool
}

func main() {
	var opts options
	flag.StringVar(&opts.libraryID, "library", "", "Library the import belongs to (required)")
	flag.StringVar(&opts.bucket, "bucket", "uploads", "Bucket holding the MARC file")
	flag.StringVar(&opts.fileKey, "key", "", "Object key of the MARC file (required)")
	flag.StringVar(&opts.name, "name", "", "Display name, defaults to the key's base name")
	flag.StringVar(&opts.noBarcode, "no-barcode", string(importer.BehaviorCreateNew), "CREATE_NEW or SKIP for copies without a barcode")
	flag.StringVar(&opts.duplicateBarcode, "duplicate-barcode", string(importer.BehaviorCreateNew), "CREATE_NEW or SKIP for copies whose barcode is taken")
	flag.BoolVar(&opts.enqueue, "enqueue", true, "Publish the job message after creating the job")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	logging.Setup(cfg.Logging.Level, cfg.Logging.Format)

	if err := run(context.Background(), cfg, opts); err != nil {
		slog.Error("seed failed", "error", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg *config.Config, opts options) error {
	job, err := newJob(opts)
	if err != nil {
		return err
	}

	a, err := app.New(ctx, cfg)
	if err != nil {
		return err
	}
	defer a.Close()

	if err := a.Jobs.CreateJob(ctx, job); err != nil {
		return err
	}
	slog.Info("import job created", "import_id", job.ID, "library_id", job.LibraryID, "file_key", job.FileKey)

	if !opts.enqueue {
		return nil
	}
	msg := queue.JobMessage{
		BucketName: opts.bucket,
		FileKey:    job.FileKey,
		ImportID:   job.ID,
		LibraryID:  job.LibraryID,
	}
	if err := a.JobQueue.PublishJob(ctx, msg); err != nil {
		return fmt.Errorf("enqueue job %s: %w", job.ID, err)
	}
	slog.Info("import job enqueued", "import_id", job.ID)
	return nil
}

func newJob(opts options) (*importer.Job, error) {
	if opts.libraryID == "" || opts.fileKey == "" {
		return nil, fmt.Errorf("-library and -key are required")
	}
	policy := importer.Policy{
		DuplicateBarcode: importer.Behavior(opts.duplicateBarcode),
		NoBarcode:        importer.Behavior(opts.noBarcode),
	}
	for _, b := range []importer.Behavior{policy.DuplicateBarcode, policy.NoBarcode} {
		if b != importer.BehaviorCreateNew && b != importer.BehaviorSkip {
			return nil, fmt.Errorf("unknown barcode behavior %q", b)
		}
	}

	name := opts.name
	if name == "" {
		name = path.Base(opts.fileKey)
	}
	return &importer.Job{
		ID:        uuid.NewString(),
		LibraryID: opts.libraryID,
		Name:      name,
		FileKey:   opts.fileKey,
		Policy:    policy,
	}, nil
}
