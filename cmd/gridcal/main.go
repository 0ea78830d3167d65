package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/specialistvlad/gridcal/internal/app"
	"github.com/specialistvlad/gridcal/internal/apperr"
	"github.com/specialistvlad/gridcal/internal/cli"
)

// main is the entrypoint for the gridcal application.
func main() {
	// Use a minimal logger until the run's own logger is configured.
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelWarn,
	})))

	if err := run(os.Stdin, os.Stdout, os.Stderr, os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, apperr.Format(err))
		os.Exit(exitCode(err))
	}
}

// run encapsulates the main application logic for easier testing and error handling.
func run(in io.Reader, outW, errW io.Writer, args []string) error {
	config, shouldExit, err := cli.Parse(args, in, outW)
	if err != nil {
		return err
	}
	if shouldExit {
		return nil
	}

	a, err := app.NewApp(outW, errW, config)
	if err != nil {
		return err
	}
	return a.Run(context.Background())
}

// exitCode maps an error onto the process exit status: 2 for bad arguments,
// 1 for everything else.
func exitCode(err error) int {
	switch apperr.KindOf(err) {
	case apperr.MissingArgument, apperr.TooManyArguments, apperr.ArgumentParse:
		return 2
	default:
		return 1
	}
}
