package quiz

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/rs/zerolog/log"

	"github.com/RMahshie/fretdrill/pkg/fretboard"
)

// Session runs the interactive drill: ask, read, check, repeat.
type Session struct {
	fb        *fretboard.Fretboard
	in        io.Reader
	out       io.Writer
	correct   *color.Color
	incorrect *color.Color
}

// NewSession creates a session reading answers from in and writing prompts
// and feedback to out.
func NewSession(fb *fretboard.Fretboard, in io.Reader, out io.Writer) *Session {
	return &Session{
		fb:        fb,
		in:        in,
		out:       out,
		correct:   color.New(color.FgGreen),
		incorrect: color.New(color.FgRed),
	}
}

type line struct {
	text string
	err  error
}

// Run asks questions until the player types exit, input ends, or ctx is
// cancelled. A wrong answer repeats the same question. Reaching the end of
// input is not an error; cancellation returns ctx.Err().
func (s *Session) Run(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	lines := scanLines(ctx, s.in)

	for {
		q := NewQuestion(s.fb)
		log.Debug().
			Int("string_index", q.StringIndex).
			Str("string", q.Open.String()).
			Int("fret", q.Fret).
			Msg("New question")

		if _, err := fmt.Fprintln(s.out, q.Prompt()); err != nil {
			return fmt.Errorf("failed to write prompt: %w", err)
		}

		done, err := s.answer(ctx, q, lines)
		if err != nil || done {
			return err
		}
	}
}

// answer reads lines until q is answered correctly. It returns done when the
// session should stop.
func (s *Session) answer(ctx context.Context, q Question, lines <-chan line) (bool, error) {
	for {
		var l line
		var ok bool
		select {
		case <-ctx.Done():
			return true, ctx.Err()
		case l, ok = <-lines:
		}

		if !ok {
			log.Debug().Msg("Input closed, ending session")
			return true, nil
		}
		if l.err != nil {
			return true, fmt.Errorf("failed to read answer: %w", l.err)
		}

		in, err := ParseInput(l.text)
		if err != nil {
			if _, werr := fmt.Fprintln(s.out, err); werr != nil {
				return true, fmt.Errorf("failed to write feedback: %w", werr)
			}
			continue
		}
		if in.Exit {
			return true, nil
		}

		if q.Correct(in.Note) {
			log.Debug().Str("answer", in.Note.String()).Msg("Correct answer")
			if _, err := s.correct.Fprintln(s.out, "Correct!"); err != nil {
				return true, fmt.Errorf("failed to write feedback: %w", err)
			}
			return false, nil
		}

		log.Debug().
			Str("answer", in.Note.String()).
			Str("expected", q.Expected.String()).
			Msg("Incorrect answer")
		if _, err := s.incorrect.Fprintln(s.out, "Incorrect!"); err != nil {
			return true, fmt.Errorf("failed to write feedback: %w", err)
		}
	}
}

// scanLines reads r on its own goroutine so a blocked read never holds up
// cancellation. Lines have no length limit. The channel is closed at end of
// input. A goroutine blocked in Read outlives Run until r returns, which for
// stdin means until input closes or the process exits.
func scanLines(ctx context.Context, r io.Reader) <-chan line {
	ch := make(chan line)
	go func() {
		defer close(ch)
		br := bufio.NewReader(r)
		for {
			text, err := br.ReadString('\n')
			if text != "" {
				select {
				case ch <- line{text: strings.TrimRight(text, "\r\n")}:
				case <-ctx.Done():
					return
				}
			}
			if err == nil {
				continue
			}
			if !errors.Is(err, io.EOF) {
				select {
				case ch <- line{err: err}:
				case <-ctx.Done():
				}
			}
			return
		}
	}()
	return ch
}
