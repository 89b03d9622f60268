// Package cli parses the fretdrill command line.
package cli

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/RMahshie/fretdrill/pkg/note"
)

var (
	ErrNoFretCount          = errors.New("--frets or -f was passed without a fret count after")
	ErrInvalidFretCount     = errors.New("failed to parse number given to --frets or -f")
	ErrNonPositiveFretCount = errors.New("--frets or -f needs a fret count of at least 1")
	ErrInvalidNote          = errors.New("failed to parse note given to --tuning or -t")
	ErrNoNotes              = errors.New("--tuning or -t was passed without any notes")
	ErrInvalidArgument      = errors.New("invalid argument")
)

// Settings is the validated fretboard shape: at least one string and at
// least one fret position.
type Settings struct {
	Strings   []note.PitchClass
	FretCount int
}

// Usage describes the accepted flags.
const Usage = `usage: fretdrill [--frets|-f COUNT] [--tuning|-t NOTE...]

  --frets, -f COUNT    number of fret positions including the open string (default 22)
  --tuning, -t NOTE... open string notes from low to high (default E A D G B E)

Answer each question with a note name such as C, F# or Bb. Type exit to quit.`

// ParseArgs applies args (without the program name) on top of defaults.
// A tuning flag consumes every following token up to the next one that
// starts with '-'.
func ParseArgs(args []string, defaults Settings) (Settings, error) {
	settings := Settings{
		Strings:   append([]note.PitchClass(nil), defaults.Strings...),
		FretCount: defaults.FretCount,
	}

	for i := 0; i < len(args); i++ {
		arg := args[i]
		switch arg {
		case "--frets", "-f":
			if i+1 >= len(args) {
				return Settings{}, ErrNoFretCount
			}
			i++
			count, err := strconv.Atoi(args[i])
			if err != nil {
				return Settings{}, fmt.Errorf("%w: (%s)", ErrInvalidFretCount, args[i])
			}
			if count < 1 {
				return Settings{}, fmt.Errorf("%w, got %d", ErrNonPositiveFretCount, count)
			}
			settings.FretCount = count

		case "--tuning", "-t":
			var tuning []note.PitchClass
			for i+1 < len(args) && !strings.HasPrefix(args[i+1], "-") {
				i++
				pc, err := note.Parse(args[i])
				if err != nil {
					return Settings{}, fmt.Errorf("%w: (%s)", ErrInvalidNote, args[i])
				}
				tuning = append(tuning, pc)
			}
			if len(tuning) == 0 {
				return Settings{}, ErrNoNotes
			}
			settings.Strings = tuning

		default:
			return Settings{}, fmt.Errorf("%w: (%s)", ErrInvalidArgument, arg)
		}
	}

	return settings, nil
}
