package importcmd

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path"

	"marcingest/internal/app"
	"marcingest/internal/config"
	"marcingest/internal/importer"
	"marcingest/internal/queue"
	"marcingest/internal/tracing"

	"github.com/google/uuid"
	"github.com/spf13/pflag"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
)

var tr = otel.Tracer("command.import")

func NewImportCommand() *ImportCommand {
	return &ImportCommand{out: os.Stdout}
}

// ImportCommand runs an import job in-process, creating the job first unless
// --import names an existing PENDING one.
type ImportCommand struct {
	out io.Writer

	libraryID        string
	importID         string
	bucket           string
	fileKey          string
	name             string
	noBarcode        string
	duplicateBarcode string
}

func (c *ImportCommand) Synopsis() string {
	return "run a MARC import job against the configured database and object store"
}

func (c *ImportCommand) Flags() *pflag.FlagSet {
	flags := pflag.NewFlagSet("import", pflag.ContinueOnError)
	flags.StringVar(&c.libraryID, "library", "", "library to import into (required)")
	flags.StringVar(&c.importID, "import", "", "run this existing PENDING job instead of creating one")
	flags.StringVar(&c.bucket, "bucket", "uploads", "bucket holding the MARC file")
	flags.StringVar(&c.fileKey, "key", "", "object key of the MARC file (required)")
	flags.StringVar(&c.name, "name", "", "job name, defaults to the key's base name")
	flags.StringVar(&c.noBarcode, "no-barcode", string(importer.BehaviorCreateNew), "CREATE_NEW or SKIP")
	flags.StringVar(&c.duplicateBarcode, "duplicate-barcode", string(importer.BehaviorCreateNew), "CREATE_NEW or SKIP")
	return flags
}

func (c *ImportCommand) Execute(ctx context.Context, args []string) error {
	if c.libraryID == "" || c.fileKey == "" {
		return fmt.Errorf("--library and --key are required")
	}

	cfg, err := config.Load()
	if err != nil {
		return err
	}

	shutdown, err := tracing.Setup(ctx, tracing.Config{
		Enabled:     cfg.Tracing.Enabled,
		Endpoint:    cfg.Tracing.Endpoint,
		Insecure:    cfg.Tracing.Insecure,
		ServiceName: cfg.Tracing.ServiceName,
	})
	if err != nil {
		return err
	}
	defer shutdown(context.WithoutCancel(ctx))

	ctx, span := tr.Start(ctx, "execute")
	defer span.End()

	a, err := app.New(ctx, cfg)
	if err != nil {
		return tracing.Error(span, err)
	}
	defer a.Close()

	if c.importID == "" {
		job := &importer.Job{
			ID:        uuid.NewString(),
			LibraryID: c.libraryID,
			Name:      c.name,
			FileKey:   c.fileKey,
			Policy: importer.Policy{
				DuplicateBarcode: importer.Behavior(c.duplicateBarcode),
				NoBarcode:        importer.Behavior(c.noBarcode),
			},
		}
		if job.Name == "" {
			job.Name = path.Base(c.fileKey)
		}
		if err := a.Jobs.CreateJob(ctx, job); err != nil {
			return tracing.Error(span, err)
		}
		c.importID = job.ID
	}
	span.SetAttributes(attribute.String("import.id", c.importID))

	msg := queue.JobMessage{
		BucketName: c.bucket,
		FileKey:    c.fileKey,
		ImportID:   c.importID,
		LibraryID:  c.libraryID,
	}
	if err := a.Importer.Process(ctx, msg); err != nil {
		return tracing.Error(span, err)
	}

	job, err := a.Importer.Status(ctx, c.importID)
	if err != nil {
		return tracing.Error(span, err)
	}

	enc := json.NewEncoder(c.out)
	enc.SetIndent("", "  ")
	return enc.Encode(job)
}
