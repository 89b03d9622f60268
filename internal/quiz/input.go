package quiz

import (
	"errors"
	"strings"

	"github.com/RMahshie/fretdrill/pkg/note"
)

// ExitCommand ends a session. It is matched case-sensitively.
const ExitCommand = "exit"

var ErrInvalidInput = errors.New("invalid input, accepted inputs: exit or a note name")

// Input is one parsed line from the player: either a note or the exit
// command.
type Input struct {
	Exit bool
	Note note.PitchClass
}

// ParseInput trims surrounding whitespace and interprets the line.
func ParseInput(line string) (Input, error) {
	line = strings.TrimSpace(line)
	if line == ExitCommand {
		return Input{Exit: true}, nil
	}

	pc, err := note.Parse(line)
	if err != nil {
		return Input{}, ErrInvalidInput
	}
	return Input{Note: pc}, nil
}
