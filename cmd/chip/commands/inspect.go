package commands

import (
	"context"
	"encoding/hex"
	"io"
	"os"

	"github.com/chaisql/chip/cmd/chip/storeutil"
	"github.com/cockroachdb/errors"
	"github.com/urfave/cli/v3"
)

// NewInspectCommand returns a cli.Command for "chip inspect".
func NewInspectCommand() *cli.Command {
	cmd := cli.Command{
		Name:      "inspect",
		Usage:     "Decode a binary value and print it as JSON.",
		UsageText: `chip inspect [options] [hex]`,
		Description: `The inspect command decodes a binary value and prints it as JSON.

$ chip inspect 02010603
[true]

Raw binary can be read from a file or from the standard input instead:

$ chip inspect -f value.bin
$ chip get -x my.db user | xxd -r -p | chip inspect`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "file",
				Aliases: []string{"f"},
				Usage:   "read the raw binary value from a file instead of a hex argument.",
			},
		},
	}

	cmd.Action = func(ctx context.Context, cmd *cli.Command) error {
		var data []byte
		var err error

		switch f := cmd.String("file"); {
		case f != "":
			data, err = os.ReadFile(f)
		case cmd.Args().First() != "":
			data, err = hex.DecodeString(cmd.Args().First())
		case storeutil.CanReadFromStandardInput():
			data, err = io.ReadAll(os.Stdin)
		default:
			return errors.New(cmd.UsageText)
		}
		if err != nil {
			return err
		}

		return storeutil.Inspect(data, os.Stdout)
	}

	return &cmd
}
