// Command fretdrill quizzes the player on the notes of a fretboard.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog/log"

	"github.com/RMahshie/fretdrill/internal/cli"
	"github.com/RMahshie/fretdrill/internal/config"
	"github.com/RMahshie/fretdrill/internal/logging"
	"github.com/RMahshie/fretdrill/internal/quiz"
	"github.com/RMahshie/fretdrill/pkg/fretboard"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := run(ctx, os.Args[1:], os.Stdin, os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

func run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	logging.Setup(stderr, "warn")

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 1
	}
	logging.Setup(stderr, cfg.Quiz.LogLevel)

	settings, err := cli.ParseArgs(args, cli.Settings{
		Strings:   cfg.Quiz.Tuning,
		FretCount: cfg.Quiz.Frets,
	})
	if err != nil {
		fmt.Fprintf(stderr, "%v\n\n%s\n", err, cli.Usage)
		return 2
	}

	fb := fretboard.New(settings.Strings, settings.FretCount, fretboard.NewSource(cfg.Quiz.Seed))
	log.Info().
		Int("strings", len(settings.Strings)).
		Int("frets", settings.FretCount).
		Msg("Starting quiz")

	if err := quiz.NewSession(fb, stdin, stdout).Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		log.Error().Err(err).Msg("Quiz ended")
		return 1
	}
	return 0
}
