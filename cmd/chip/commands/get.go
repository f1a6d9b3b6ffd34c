package commands

import (
	"context"
	"fmt"
	"os"

	"github.com/chaisql/chip"
	"github.com/cockroachdb/errors"
	"github.com/urfave/cli/v3"
)

// NewGetCommand returns a cli.Command for "chip get".
func NewGetCommand() *cli.Command {
	cmd := cli.Command{
		Name:      "get",
		Usage:     "Print the value stored under a key.",
		UsageText: `chip get [options] dbpath key`,
		Description: `The get command prints the value stored under a key as JSON.

$ chip get my.db user
{"name":"Ava","age":3}

With -x the binary encoding is printed in hexadecimal instead:

$ chip get -x my.db user`,
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:    "hex",
				Aliases: []string{"x"},
				Usage:   "print the binary encoding in hexadecimal instead of JSON.",
			},
		},
	}

	cmd.Action = func(ctx context.Context, cmd *cli.Command) error {
		dbPath := cmd.Args().Get(0)
		key := cmd.Args().Get(1)
		if dbPath == "" || key == "" {
			return errors.New(cmd.UsageText)
		}

		s, err := chip.Open(dbPath)
		if err != nil {
			return err
		}
		defer s.Close()

		v, err := s.Get(key)
		if err != nil {
			return err
		}

		if cmd.Bool("hex") {
			enc, err := chip.Encode(v)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintf(os.Stdout, "% x\n", enc)
			return err
		}

		_, err = fmt.Fprintln(os.Stdout, v)
		return err
	}

	return &cmd
}
