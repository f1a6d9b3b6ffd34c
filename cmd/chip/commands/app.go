package commands

import (
	"github.com/urfave/cli/v3"
)

// NewApp creates the chip CLI app.
func NewApp() *cli.Command {
	return &cli.Command{
		Name:                  "chip",
		Usage:                 "Inspect and manage chip stores",
		EnableShellCompletion: true,
		Commands: []*cli.Command{
			NewSetCommand(),
			NewGetCommand(),
			NewDeleteCommand(),
			NewDumpCommand(),
			NewInspectCommand(),
			NewVersionCommand(),
		},
	}
}
