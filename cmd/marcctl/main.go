package main

import (
	"fmt"
	"os"

	"marcingest/internal/command"
	"marcingest/internal/command/decode"
	"marcingest/internal/command/extractcmd"
	"marcingest/internal/command/importcmd"

	"github.com/hashicorp/cli"
)

func main() {

	commands := map[string]cli.CommandFactory{
		"decode":  command.NewCommand(decode.NewDecodeCommand()),
		"extract": command.NewCommand(extractcmd.NewExtractCommand()),
		"import":  command.NewCommand(importcmd.NewImportCommand()),
	}

	cli := &cli.CLI{
		Name:         "marcctl",
		Args:         os.Args[1:],
		Commands:     commands,
		Autocomplete: true,
	}

	exitCode, err := cli.Run()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error executing CLI: %s\n", err.Error())
	}

	os.Exit(exitCode)
}
