package commands

import (
	"context"
	"io"
	"os"

	"github.com/chaisql/chip"
	"github.com/chaisql/chip/cmd/chip/storeutil"
	"github.com/cockroachdb/errors"
	"github.com/urfave/cli/v3"
)

// NewDumpCommand returns a cli.Command for "chip dump".
func NewDumpCommand() *cli.Command {
	cmd := cli.Command{
		Name:      "dump",
		Usage:     "Dump a store as tab separated key and JSON lines.",
		UsageText: `chip dump [options] dbpath`,
		Description: `The dump command prints every entry of a store in ascending key order.

By default, the content of the store is sent to the standard output:

$ chip dump my.db
greeting	"hello"
user	{"name":"Ava","age":3}

The dump command can also write directly into a file:

$ chip dump -f dump.txt my.db`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "file",
				Aliases: []string{"f"},
				Usage:   "name of the file to output to. Defaults to STDOUT.",
			},
		},
	}

	cmd.Action = func(ctx context.Context, cmd *cli.Command) error {
		f := cmd.String("file")
		dbPath := cmd.Args().First()
		if dbPath == "" {
			return errors.New(cmd.UsageText)
		}

		s, err := chip.Open(dbPath)
		if err != nil {
			return err
		}
		defer s.Close()

		var w io.Writer = os.Stdout

		if f != "" {
			file, err := os.Create(f)
			if err != nil {
				return err
			}
			defer file.Close()

			w = file
		}

		return storeutil.Dump(s, w)
	}

	return &cmd
}
