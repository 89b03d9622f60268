// Package note models the twelve equal-tempered pitch classes.
package note

import (
	"errors"
	"fmt"
)

// PitchClass is one of the twelve pitch classes, C = 0 through B = 11.
type PitchClass int

const (
	C PitchClass = iota
	CSharp
	D
	DSharp
	E
	F
	FSharp
	G
	GSharp
	A
	ASharp
	B
)

// Count is the number of pitch classes in an octave.
const Count = 12

var (
	ErrOutOfRange      = errors.New("invalid note index, valid inputs are in the range 0..11")
	ErrInvalidNoteText = errors.New("invalid note input, recognized inputs are: C, D, E, F, G, A, B with any number of # or b as modifiers")
)

var names = [Count]string{"C", "C#", "D", "D#", "E", "F", "F#", "G", "G#", "A", "A#", "B"}

var letters = map[rune]PitchClass{
	'c': C, 'd': D, 'e': E, 'f': F, 'g': G, 'a': A, 'b': B,
	'C': C, 'D': D, 'E': E, 'F': F, 'G': G, 'A': A, 'B': B,
}

// FromIndex converts i to a PitchClass. It does not wrap: anything outside
// 0..11 is ErrOutOfRange.
func FromIndex(i int) (PitchClass, error) {
	if i < 0 || i >= Count {
		return 0, fmt.Errorf("%w: %d", ErrOutOfRange, i)
	}
	return PitchClass(i), nil
}

// Parse reads a letter name followed by any number of '#' (sharp) or 'b'
// (flat) modifiers. The first character is always the letter, so "bb" is
// B flat. The result wraps around the octave: "Cb" is B and "B#" is C.
func Parse(s string) (PitchClass, error) {
	if s == "" {
		return 0, fmt.Errorf("%w: empty input", ErrInvalidNoteText)
	}

	runes := []rune(s)
	pc, ok := letters[runes[0]]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrInvalidNoteText, s)
	}

	offset := 0
	for _, r := range runes[1:] {
		switch r {
		case '#':
			offset++
		case 'b':
			offset--
		default:
			return 0, fmt.Errorf("%w: %q", ErrInvalidNoteText, s)
		}
	}

	return pc.Add(offset), nil
}

// MustParse is like Parse but panics on error. Use it for constants.
func MustParse(s string) PitchClass {
	pc, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return pc
}

// All returns the twelve pitch classes in ascending order from C.
func All() []PitchClass {
	all := make([]PitchClass, Count)
	for i := range all {
		all[i] = PitchClass(i)
	}
	return all
}

// Index returns the semitone index in [0,11].
func (p PitchClass) Index() int {
	return int(p)
}

// Add transposes p up by semitones. Negative values transpose down.
func (p PitchClass) Add(semitones int) PitchClass {
	return PitchClass(mod(int(p)+mod(semitones)))
}

// Sub transposes p down by semitones.
func (p PitchClass) Sub(semitones int) PitchClass {
	return PitchClass(mod(int(p) - mod(semitones)))
}

// String returns the sharp spelling, never a flat.
func (p PitchClass) String() string {
	if p < 0 || p >= Count {
		return fmt.Sprintf("PitchClass(%d)", int(p))
	}
	return names[p]
}

// mod reduces v into [0,11]. Reducing before any addition keeps the
// intermediate values small, so extreme ints cannot overflow.
func mod(v int) int {
	v %= Count
	if v < 0 {
		v += Count
	}
	return v
}
