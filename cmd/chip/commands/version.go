package commands

import (
	"context"
	"fmt"
	"runtime/debug"

	"github.com/urfave/cli/v3"
)

// NewVersionCommand returns a cli.Command for "chip version".
func NewVersionCommand() *cli.Command {
	return &cli.Command{
		Name:  "version",
		Usage: "Shows chip and chip CLI version",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			var cliVersion, chipVersion string
			info, ok := debug.ReadBuildInfo()

			if !ok {
				fmt.Println(`version not available in GOPATH mode; use "go get" with Go modules enabled`)
				return nil
			}

			cliVersion = info.Main.Version
			for _, mod := range info.Deps {
				if mod.Path != "github.com/chaisql/chip" {
					continue
				}
				// if a replace directive is set, chip is in development mode
				if mod.Replace != nil {
					chipVersion = "(devel)"
					break
				}
				chipVersion = mod.Version
				break
			}
			fmt.Printf("chip %v\nchip CLI %v\n", chipVersion, cliVersion)
			return nil
		},
	}
}
