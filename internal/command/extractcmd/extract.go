package extractcmd

import (
	"context"
	"encoding/json"
	"io"
	"os"

	"marcingest/internal/extract"
	"marcingest/internal/marc"
	"marcingest/internal/tracing"

	"github.com/spf13/pflag"
	"go.opentelemetry.io/otel"
)

var tr = otel.Tracer("command.extract")

func NewExtractCommand() *ExtractCommand {
	return &ExtractCommand{out: os.Stdout}
}

type ExtractCommand struct {
	out    io.Writer
	indent bool
}

type line struct {
	Offset int64                    `json:"offset"`
	Book   *extract.ProcessedRecord `json:"book,omitempty"`
	Error  string                   `json:"error,omitempty"`
}

func (c *ExtractCommand) Synopsis() string {
	return "print the catalog attributes extracted from each record of an ISO2709 file"
}

func (c *ExtractCommand) Flags() *pflag.FlagSet {
	flags := pflag.NewFlagSet("extract", pflag.ContinueOnError)
	flags.BoolVar(&c.indent, "indent", false, "indent the JSON output")
	return flags
}

func (c *ExtractCommand) Execute(ctx context.Context, args []string) error {
	ctx, span := tr.Start(ctx, "execute")
	defer span.End()

	if len(args) != 1 {
		return tracing.Errorf(span, "this command takes exactly 1 argument: a path to a MARC file")
	}

	file, err := os.Open(args[0])
	if err != nil {
		return tracing.Error(span, err)
	}
	defer file.Close()

	enc := json.NewEncoder(c.out)
	if c.indent {
		enc.SetIndent("", "  ")
	}

	for res, err := range marc.Records(file, marc.DefaultChunkSize) {
		if err != nil {
			return tracing.Error(span, err)
		}
		if ctx.Err() != nil {
			return tracing.Error(span, ctx.Err())
		}

		data := extract.Process(res)
		out := line{Offset: res.Offset, Book: data.Parsed}
		if data.Err != nil {
			out.Error = data.Err.Error()
		}
		if err := enc.Encode(out); err != nil {
			return tracing.Error(span, err)
		}
	}

	return nil
}
