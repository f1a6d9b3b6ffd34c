package commands

import (
	"context"

	"github.com/chaisql/chip"
	"github.com/cockroachdb/errors"
	"github.com/urfave/cli/v3"
)

// NewDeleteCommand returns a cli.Command for "chip delete".
func NewDeleteCommand() *cli.Command {
	cmd := cli.Command{
		Name:      "delete",
		Usage:     "Remove the value stored under a key.",
		UsageText: `chip delete dbpath key`,
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

		return s.Delete(key)
	}

	return &cmd
}
