package main

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/allisson/checkdigit/cmd/app/commands"
	"github.com/allisson/checkdigit/internal/app"
	"github.com/allisson/checkdigit/internal/config"
)

// singleNumber returns the only positional argument.
func singleNumber(cmd *cli.Command) (string, error) {
	if cmd.Args().Len() != 1 {
		return "", fmt.Errorf("expected exactly one number, got %d", cmd.Args().Len())
	}
	return cmd.Args().First(), nil
}

func getModuloCommands() []*cli.Command {
	return []*cli.Command{
		{
			Name:      "modulo10",
			Usage:     "Compute a raw modulo-10 check digit",
			ArgsUsage: "NUMBER",
			Action: func(ctx context.Context, cmd *cli.Command) error {
				number, err := singleNumber(cmd)
				if err != nil {
					return err
				}

				container := app.NewContainer(config.Load())
				return commands.RunModulo10(container.Logger(), commands.DefaultIO().Writer, number)
			},
		},
		{
			Name:      "modulo11",
			Usage:     "Compute raw modulo-11 check digits with explicit parameters",
			ArgsUsage: "NUMBER",
			Flags: []cli.Flag{
				&cli.IntFlag{
					Name:    "digits",
					Aliases: []string{"d"},
					Value:   1,
					Usage:   "Number of check digits to compute",
				},
				&cli.IntFlag{
					Name:    "limit",
					Aliases: []string{"l"},
					Value:   9,
					Usage:   "Largest weight before cycling back to 2",
				},
				&cli.BoolFlag{
					Name:  "times-ten",
					Value: true,
					Usage: "Multiply the weighted sum by 10 before taking the remainder",
				},
				&cli.StringFlag{
					Name:    "substitute",
					Aliases: []string{"s"},
					Value:   "0",
					Usage:   "Character emitted when the remainder is 10",
				},
			},
			Action: func(ctx context.Context, cmd *cli.Command) error {
				number, err := singleNumber(cmd)
				if err != nil {
					return err
				}

				container := app.NewContainer(config.Load())
				return commands.RunModulo11(
					container.Logger(),
					commands.DefaultIO().Writer,
					number,
					int(cmd.Int("digits")),
					int(cmd.Int("limit")),
					cmd.Bool("times-ten"),
					cmd.String("substitute"),
				)
			},
		},
	}
}
