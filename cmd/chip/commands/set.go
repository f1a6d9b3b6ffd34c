package commands

import (
	"context"

	"github.com/chaisql/chip"
	"github.com/cockroachdb/errors"
	"github.com/urfave/cli/v3"
)

// NewSetCommand returns a cli.Command for "chip set".
func NewSetCommand() *cli.Command {
	cmd := cli.Command{
		Name:      "set",
		Usage:     "Store a JSON value under a key.",
		UsageText: `chip set dbpath key json`,
		Description: `The set command converts a JSON value to the binary format and stores it under the given key.

$ chip set my.db user '{"name":"Ava","age":3}'`,
	}

	cmd.Action = func(ctx context.Context, cmd *cli.Command) error {
		dbPath := cmd.Args().Get(0)
		key := cmd.Args().Get(1)
		doc := cmd.Args().Get(2)
		if dbPath == "" || key == "" || doc == "" {
			return errors.New(cmd.UsageText)
		}

		v, err := chip.FromJSON([]byte(doc))
		if err != nil {
			return err
		}

		s, err := chip.Open(dbPath)
		if err != nil {
			return err
		}
		defer s.Close()

		return s.Put(key, v)
	}

	return &cmd
}
