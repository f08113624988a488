package decode

import (
	"context"
	"encoding/json"
	"io"
	"os"

	"marcingest/internal/marc"
	"marcingest/internal/tracing"

	"github.com/spf13/pflag"
	"go.opentelemetry.io/otel"
)

var tr = otel.Tracer("command.decode")

func NewDecodeCommand() *DecodeCommand {
	return &DecodeCommand{out: os.Stdout}
}

type DecodeCommand struct {
	out        io.Writer
	errorsOnly bool
	chunkSize  int
}

// line is one row of output; exactly one of Record and Error is set.
type line struct {
	Offset int64        `json:"offset"`
	Record *marc.Record `json:"record,omitempty"`
	Error  string       `json:"error,omitempty"`
	Raw    string       `json:"raw,omitempty"`
}

func (c *DecodeCommand) Synopsis() string {
	return "decode an ISO2709 file and print each record as JSON"
}

func (c *DecodeCommand) Flags() *pflag.FlagSet {
	flags := pflag.NewFlagSet("decode", pflag.ContinueOnError)
	flags.BoolVar(&c.errorsOnly, "errors-only", false, "only print records that failed to decode")
	flags.IntVar(&c.chunkSize, "chunk-size", marc.DefaultChunkSize, "bytes read per chunk")
	return flags
}

func (c *DecodeCommand) Execute(ctx context.Context, args []string) error {
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
	for res, err := range marc.Records(file, c.chunkSize) {
		if err != nil {
			return tracing.Error(span, err)
		}
		if ctx.Err() != nil {
			return tracing.Error(span, ctx.Err())
		}

		out := line{Offset: res.Offset, Record: res.Record}
		if res.Err != nil {
			out.Error = res.Err.Error()
			out.Raw = res.Raw
		} else if c.errorsOnly {
			continue
		}
		if err := enc.Encode(out); err != nil {
			return tracing.Error(span, err)
		}
	}

	return nil
}
