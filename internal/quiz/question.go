package quiz

import (
	"fmt"

	"github.com/RMahshie/fretdrill/pkg/fretboard"
	"github.com/RMahshie/fretdrill/pkg/note"
)

// Question asks for the note at one fret of one string.
type Question struct {
	StringIndex int
	Open        note.PitchClass
	Fret        int
	Expected    note.PitchClass
}

// NewQuestion draws a random position from fb.
func NewQuestion(fb *fretboard.Fretboard) Question {
	pos := fb.RandomPosition()
	return Question{
		StringIndex: pos.StringIndex,
		Open:        pos.Open,
		Fret:        pos.Fret,
		Expected:    pos.Note(),
	}
}

// Prompt renders the question as shown to the player.
func (q Question) Prompt() string {
	return fmt.Sprintf("What is the note at the %d%s fret of the %s string?",
		q.Fret, OrdinalSuffix(q.Fret), q.Open)
}

// Correct reports whether answer names the expected pitch class.
func (q Question) Correct(answer note.PitchClass) bool {
	return answer == q.Expected
}

// OrdinalSuffix returns the English ordinal suffix for n: st, nd, rd or th.
func OrdinalSuffix(n int) string {
	if n < 0 {
		n = -n
	}
	switch n % 100 {
	case 11, 12, 13:
		return "th"
	}
	switch n % 10 {
	case 1:
		return "st"
	case 2:
		return "nd"
	case 3:
		return "rd"
	default:
		return "th"
	}
}
