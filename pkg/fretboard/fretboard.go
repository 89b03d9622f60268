// Package fretboard samples random positions on a linear string/fret model.
package fretboard

import (
	"math/rand/v2"

	"github.com/RMahshie/fretdrill/pkg/note"
)

// DefaultFretCount is the number of fret positions on a standard guitar neck
// counting the open string as fret 0.
const DefaultFretCount = 22

// Standard returns the standard guitar tuning, low string first.
func Standard() []note.PitchClass {
	return []note.PitchClass{note.E, note.A, note.D, note.G, note.B, note.E}
}

// Fretboard holds the open-string tuning and the number of fret positions.
// Callers must supply at least one string and a fret count of at least 1.
type Fretboard struct {
	strings   []note.PitchClass
	fretCount int
	src       rand.Source
}

// Position is a string and fret on the board.
type Position struct {
	StringIndex int
	Open        note.PitchClass
	Fret        int
}

// Note returns the pitch class sounded at the position.
func (p Position) Note() note.PitchClass {
	return p.Open.Add(p.Fret)
}

// New creates a Fretboard drawing randomness from src. The tuning slice is
// copied.
func New(strings []note.PitchClass, fretCount int, src rand.Source) *Fretboard {
	s := make([]note.PitchClass, len(strings))
	copy(s, strings)
	return &Fretboard{
		strings:   s,
		fretCount: fretCount,
		src:       src,
	}
}

// NewSource returns a PCG source. A zero seed picks a random one.
func NewSource(seed uint64) rand.Source {
	if seed == 0 {
		return rand.NewPCG(rand.Uint64(), rand.Uint64())
	}
	return rand.NewPCG(seed, seed)
}

// RandomString picks a string and returns its index and open pitch class.
//
// The index is a 64-bit draw reduced modulo the string count, which is only
// approximately uniform when the count is not a power of two.
func (f *Fretboard) RandomString() (int, note.PitchClass) {
	i := int(f.src.Uint64() % uint64(len(f.strings)))
	return i, f.strings[i]
}

// RandomFret picks a fret in [0, FretCount()).
func (f *Fretboard) RandomFret() int {
	return int(f.src.Uint64() % uint64(f.fretCount))
}

// RandomPosition picks a string and then a fret.
func (f *Fretboard) RandomPosition() Position {
	i, open := f.RandomString()
	return Position{
		StringIndex: i,
		Open:        open,
		Fret:        f.RandomFret(),
	}
}

// Strings returns a copy of the tuning.
func (f *Fretboard) Strings() []note.PitchClass {
	s := make([]note.PitchClass, len(f.strings))
	copy(s, f.strings)
	return s
}

func (f *Fretboard) FretCount() int {
	return f.fretCount
}
