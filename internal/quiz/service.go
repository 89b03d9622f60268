package quiz

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/rs/zerolog/log"

	"github.com/RMahshie/fretdrill/pkg/fretboard"
	"github.com/RMahshie/fretdrill/pkg/note"
)

var ErrFretOutOfRange = errors.New("fret is outside the fretboard")

// Service hands out questions and checks answers without keeping any
// per-question state, so callers pass the question back with the answer.
type Service interface {
	NewQuestion(ctx context.Context) Question
	Check(ctx context.Context, open string, fret int, answer string) (Result, error)
	Tuning() []note.PitchClass
	FretCount() int
}

// Result is the outcome of checking one answer.
type Result struct {
	Correct  bool
	Expected note.PitchClass
	Answer   note.PitchClass
}

type quizService struct {
	mu sync.Mutex // guards fb's random source
	fb *fretboard.Fretboard
}

// NewService wraps fb for use from concurrent requests.
func NewService(fb *fretboard.Fretboard) Service {
	return &quizService{fb: fb}
}

func (s *quizService) NewQuestion(ctx context.Context) Question {
	s.mu.Lock()
	q := NewQuestion(s.fb)
	s.mu.Unlock()

	log.Debug().
		Str("string", q.Open.String()).
		Int("fret", q.Fret).
		Msg("Question drawn")
	return q
}

func (s *quizService) Check(ctx context.Context, open string, fret int, answer string) (Result, error) {
	openPC, err := note.Parse(open)
	if err != nil {
		return Result{}, fmt.Errorf("string: %w", err)
	}
	if fret < 0 || fret >= s.fb.FretCount() {
		return Result{}, fmt.Errorf("%w: %d not in 0..%d", ErrFretOutOfRange, fret, s.fb.FretCount()-1)
	}
	answerPC, err := note.Parse(answer)
	if err != nil {
		return Result{}, fmt.Errorf("answer: %w", err)
	}

	q := Question{Open: openPC, Fret: fret, Expected: openPC.Add(fret)}
	result := Result{
		Correct:  q.Correct(answerPC),
		Expected: q.Expected,
		Answer:   answerPC,
	}

	log.Debug().
		Str("string", openPC.String()).
		Int("fret", fret).
		Str("answer", answerPC.String()).
		Bool("correct", result.Correct).
		Msg("Answer checked")
	return result, nil
}

func (s *quizService) Tuning() []note.PitchClass {
	return s.fb.Strings()
}

func (s *quizService) FretCount() int {
	return s.fb.FretCount()
}
