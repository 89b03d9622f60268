package quiz

import (
	"bytes"
	"context"
	"errors"
	"io"
	"strings"
	"testing"
	"testing/iotest"
	"time"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/RMahshie/fretdrill/pkg/note"
)

func init() {
	color.NoColor = true
}

const aThirdFret = "What is the note at the 3rd fret of the A string?\n"

func TestSession_Transcript(t *testing.T) {
	// every draw is 3: string 0 (A), fret 3, answer C
	fb := newBoard([]note.PitchClass{note.A}, 22, 3)
	in := strings.NewReader("H\nD\n  C  \nB#\nexit\n")
	var out bytes.Buffer

	err := NewSession(fb, in, &out).Run(context.Background())
	require.NoError(t, err)

	want := aThirdFret +
		"invalid input, accepted inputs: exit or a note name\n" +
		"Incorrect!\n" +
		"Correct!\n" +
		aThirdFret +
		"Correct!\n" +
		aThirdFret
	assert.Equal(t, want, out.String())
}

func TestSession_WrongAnswerRepeatsQuestion(t *testing.T) {
	src := &sequenceSource{values: []uint64{4, 2, 1, 3}}
	fb := newBoardWithSource([]note.PitchClass{note.E, note.A, note.D, note.G, note.B, note.E}, 22, src)
	in := strings.NewReader("C\nD\nC#\nexit\n")
	var out bytes.Buffer

	err := NewSession(fb, in, &out).Run(context.Background())
	require.NoError(t, err)

	want := "What is the note at the 2nd fret of the B string?\n" +
		"Incorrect!\n" +
		"Incorrect!\n" +
		"Correct!\n" +
		aThirdFret
	assert.Equal(t, want, out.String())
	assert.Equal(t, 4, src.next, "a wrong answer must not draw a new question")
}

func TestSession_EndOfInput(t *testing.T) {
	fb := newBoard([]note.PitchClass{note.A}, 22, 3)
	var out bytes.Buffer

	err := NewSession(fb, strings.NewReader("D"), &out).Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, aThirdFret+"Incorrect!\n", out.String())
}

func TestSession_ReadError(t *testing.T) {
	fb := newBoard([]note.PitchClass{note.A}, 22, 3)
	boom := errors.New("boom")

	err := NewSession(fb, iotest.ErrReader(boom), io.Discard).Run(context.Background())
	assert.ErrorIs(t, err, boom)
}

func TestSession_CancelWhileWaiting(t *testing.T) {
	fb := newBoard([]note.PitchClass{note.A}, 22, 3)
	pr, pw := io.Pipe()
	defer pw.Close()

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- NewSession(fb, pr, io.Discard).Run(ctx)
	}()

	cancel()

	select {
	case err := <-done:
		assert.ErrorIs(t, err, context.Canceled)
	case <-time.After(5 * time.Second):
		t.Fatal("session did not stop after cancellation")
	}
}

func TestSession_ExitIsCaseSensitive(t *testing.T) {
	fb := newBoard([]note.PitchClass{note.A}, 22, 3)
	var out bytes.Buffer

	err := NewSession(fb, strings.NewReader("EXIT\nexit\n"), &out).Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, aThirdFret+"invalid input, accepted inputs: exit or a note name\n", out.String())
}

func TestSession_LongLineIsInvalidInput(t *testing.T) {
	fb := newBoard([]note.PitchClass{note.A}, 22, 3)
	in := strings.NewReader(strings.Repeat("x", 70000) + "\nC\nexit\n")
	var out bytes.Buffer

	err := NewSession(fb, in, &out).Run(context.Background())
	require.NoError(t, err)

	want := aThirdFret +
		"invalid input, accepted inputs: exit or a note name\n" +
		"Correct!\n" +
		aThirdFret
	assert.Equal(t, want, out.String())
}

func TestSession_CarriageReturnLines(t *testing.T) {
	fb := newBoard([]note.PitchClass{note.A}, 22, 3)
	var out bytes.Buffer

	err := NewSession(fb, strings.NewReader("C\r\nexit\r\n"), &out).Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, aThirdFret+"Correct!\n"+aThirdFret, out.String())
}

// failingWriter accepts ok writes and then fails.
type failingWriter struct {
	ok  int
	err error
}

func (w *failingWriter) Write(p []byte) (int, error) {
	if w.ok == 0 {
		return 0, w.err
	}
	w.ok--
	return len(p), nil
}

func TestSession_WriteErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{name: "invalid input message", input: "H\n"},
		{name: "correct feedback", input: "C\n"},
		{name: "incorrect feedback", input: "D\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fb := newBoard([]note.PitchClass{note.A}, 22, 3)
			boom := errors.New("disk full")
			w := &failingWriter{ok: 1, err: boom}

			err := NewSession(fb, strings.NewReader(tt.input), w).Run(context.Background())
			assert.ErrorIs(t, err, boom)
		})
	}
}

func TestSession_PromptWriteError(t *testing.T) {
	fb := newBoard([]note.PitchClass{note.A}, 22, 3)
	boom := errors.New("closed")

	err := NewSession(fb, strings.NewReader("C\n"), &failingWriter{err: boom}).Run(context.Background())
	assert.ErrorIs(t, err, boom)
}
