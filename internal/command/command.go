// Package command adapts marcctl subcommands to hashicorp/cli.
package command

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"marcingest/internal/config"
	"marcingest/internal/logging"

	"github.com/hashicorp/cli"
	"github.com/spf13/pflag"
)

type Command interface {
	Synopsis() string
	Flags() *pflag.FlagSet
	Execute(ctx context.Context, args []string) error
}

func NewCommand(c Command) cli.CommandFactory {
	return func() (cli.Command, error) {
		return &adapter{cmd: c, stderr: os.Stderr}, nil
	}
}

type adapter struct {
	cmd    Command
	stderr io.Writer
}

func (a *adapter) Synopsis() string {
	return a.cmd.Synopsis()
}

func (a *adapter) Help() string {
	var b bytes.Buffer
	b.WriteString(a.cmd.Synopsis())
	b.WriteString("\n\nOptions:\n\n")
	flags := a.cmd.Flags()
	flags.SetOutput(&b)
	flags.PrintDefaults()
	return strings.TrimRight(b.String(), "\n")
}

func (a *adapter) Run(args []string) int {
	flags := a.cmd.Flags()
	flags.SetOutput(a.stderr)
	if err := flags.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return cli.RunResultHelp
		}
		fmt.Fprintln(a.stderr, err)
		return 1
	}

	config.LoadEnvFiles()
	logging.Setup(os.Getenv("LOG_LEVEL"), os.Getenv("LOG_FORMAT"))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := a.cmd.Execute(ctx, flags.Args()); err != nil {
		fmt.Fprintln(a.stderr, err)
		return 1
	}
	return 0
}
