package main

import (
	"context"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/allisson/checkdigit/cmd/app/commands"
	"github.com/allisson/checkdigit/internal/app"
	"github.com/allisson/checkdigit/internal/checkdigit/usecase"
	"github.com/allisson/checkdigit/internal/config"
)

func typeFlag() cli.Flag {
	return &cli.StringFlag{
		Name:     "type",
		Aliases:  []string{"t"},
		Required: true,
		Usage:    "Document type (run 'checkdigit types' for the list)",
	}
}

func formatFlag() cli.Flag {
	return &cli.StringFlag{
		Name:    "format",
		Aliases: []string{"f"},
		Value:   "text",
		Usage:   "Output format: 'text' or 'json'",
	}
}

// withUseCase builds the container, runs fn with the check digit use case, and writes
// collected metrics to stderr afterwards when metrics are enabled.
func withUseCase(
	ctx context.Context,
	fn func(container *app.Container, checkDigitUseCase usecase.CheckDigitUseCase) error,
) error {
	cfg := config.Load()
	container := app.NewContainer(cfg)
	defer func() { _ = container.Shutdown(ctx) }()

	checkDigitUseCase, err := container.CheckDigitUseCase()
	if err != nil {
		return err
	}

	runErr := fn(container, checkDigitUseCase)

	if cfg.MetricsEnabled {
		provider, err := container.MetricsProvider()
		if err != nil {
			return err
		}
		if err := provider.WriteTo(os.Stderr); err != nil {
			return err
		}
	}

	return runErr
}

func getCheckDigitCommands() []*cli.Command {
	return []*cli.Command{
		{
			Name:      "compute",
			Usage:     "Compute the check digits of one or more numbers",
			ArgsUsage: "NUMBER...",
			Flags:     []cli.Flag{typeFlag(), formatFlag()},
			Action: func(ctx context.Context, cmd *cli.Command) error {
				return withUseCase(ctx, func(container *app.Container, uc usecase.CheckDigitUseCase) error {
					return commands.RunCompute(
						ctx,
						uc,
						container.Logger(),
						commands.DefaultIO().Writer,
						cmd.String("type"),
						cmd.Args().Slice(),
						cmd.String("format"),
					)
				})
			},
		},
		{
			Name:      "verify",
			Usage:     "Verify numbers that end with their check digits",
			ArgsUsage: "FULLNUMBER...",
			Flags:     []cli.Flag{typeFlag(), formatFlag()},
			Action: func(ctx context.Context, cmd *cli.Command) error {
				return withUseCase(ctx, func(container *app.Container, uc usecase.CheckDigitUseCase) error {
					return commands.RunVerify(
						ctx,
						uc,
						container.Logger(),
						commands.DefaultIO().Writer,
						cmd.String("type"),
						cmd.Args().Slice(),
						cmd.String("format"),
					)
				})
			},
		},
		{
			Name:  "generate",
			Usage: "Generate random numbers with valid check digits",
			Flags: []cli.Flag{
				typeFlag(),
				&cli.IntFlag{
					Name:    "length",
					Aliases: []string{"l"},
					Value:   0,
					Usage:   "Base number length (required for variable-length types)",
				},
				&cli.IntFlag{
					Name:    "count",
					Aliases: []string{"c"},
					Value:   1,
					Usage:   "How many numbers to generate",
				},
				formatFlag(),
			},
			Action: func(ctx context.Context, cmd *cli.Command) error {
				return withUseCase(ctx, func(container *app.Container, uc usecase.CheckDigitUseCase) error {
					return commands.RunGenerate(
						ctx,
						uc,
						container.Logger(),
						commands.DefaultIO().Writer,
						cmd.String("type"),
						int(cmd.Int("length")),
						int(cmd.Int("count")),
						cmd.String("format"),
					)
				})
			},
		},
		{
			Name:  "batch",
			Usage: "Compute check digits for numbers read from stdin, one per line",
			Flags: []cli.Flag{typeFlag(), formatFlag()},
			Action: func(ctx context.Context, cmd *cli.Command) error {
				return withUseCase(ctx, func(container *app.Container, uc usecase.CheckDigitUseCase) error {
					return commands.RunBatch(
						ctx,
						uc,
						container.Logger(),
						commands.DefaultIO(),
						cmd.String("type"),
						cmd.String("format"),
					)
				})
			},
		},
		{
			Name:  "types",
			Usage: "List supported document types",
			Flags: []cli.Flag{formatFlag()},
			Action: func(ctx context.Context, cmd *cli.Command) error {
				return commands.RunListTypes(commands.DefaultIO().Writer, cmd.String("format"))
			},
		},
	}
}
