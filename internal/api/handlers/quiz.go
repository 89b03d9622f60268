package handlers

import (
	"context"
	"errors"

	"github.com/danielgtaylor/huma/v2"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/RMahshie/fretdrill/internal/quiz"
	"github.com/RMahshie/fretdrill/pkg/models"
	"github.com/RMahshie/fretdrill/pkg/note"
)

// QuizHandler handles quiz-related HTTP requests
type QuizHandler struct {
	svc quiz.Service
}

// NewQuizHandler creates a new quiz handler
func NewQuizHandler(svc quiz.Service) *QuizHandler {
	return &QuizHandler{svc: svc}
}

// GetQuestion draws a random string and fret
func (h *QuizHandler) GetQuestion(ctx context.Context, _ *struct{}) (*models.GetQuestionResponse, error) {
	q := h.svc.NewQuestion(ctx)
	questionID := uuid.New()

	log.Info().
		Str("questionID", questionID.String()).
		Str("string", q.Open.String()).
		Int("fret", q.Fret).
		Msg("Question drawn")

	return &models.GetQuestionResponse{
		Body: models.GetQuestionResponseBody{
			ID:          questionID.String(),
			String:      q.Open.String(),
			StringIndex: q.StringIndex,
			Fret:        q.Fret,
			Prompt:      q.Prompt(),
		},
	}, nil
}

// CheckAnswer compares an answer with the note at the given position
func (h *QuizHandler) CheckAnswer(ctx context.Context, req *models.CheckAnswerRequest) (*models.CheckAnswerResponse, error) {
	if req.Body.QuestionID != "" {
		if _, err := uuid.Parse(req.Body.QuestionID); err != nil {
			return nil, huma.Error400BadRequest("Invalid question ID", err)
		}
	}

	result, err := h.svc.Check(ctx, req.Body.String, req.Body.Fret, req.Body.Answer)
	if err != nil {
		switch {
		case errors.Is(err, note.ErrInvalidNoteText):
			return nil, huma.Error400BadRequest("Invalid note. Use a letter A-G followed by any number of # or b.", err)
		case errors.Is(err, quiz.ErrFretOutOfRange):
			return nil, huma.Error400BadRequest("Fret is not on this fretboard.", err)
		default:
			return nil, huma.Error500InternalServerError("Failed to check answer", err)
		}
	}

	log.Info().
		Str("questionID", req.Body.QuestionID).
		Str("expected", result.Expected.String()).
		Str("answer", result.Answer.String()).
		Bool("correct", result.Correct).
		Msg("Answer checked")

	return &models.CheckAnswerResponse{
		Body: models.CheckAnswerResponseBody{
			Correct:  result.Correct,
			Expected: result.Expected.String(),
			Answer:   result.Answer.String(),
		},
	}, nil
}

// ParseNote converts note text to its canonical pitch class
func (h *QuizHandler) ParseNote(ctx context.Context, req *models.ParseNoteRequest) (*models.ParseNoteResponse, error) {
	pc, err := note.Parse(req.Text)
	if err != nil {
		return nil, huma.Error400BadRequest("Invalid note. Use a letter A-G followed by any number of # or b.", err)
	}

	return &models.ParseNoteResponse{
		Body: models.ParseNoteResponseBody{
			Name:  pc.String(),
			Index: pc.Index(),
		},
	}, nil
}

// GetFretboard describes the tuning and fret count questions are drawn from
func (h *QuizHandler) GetFretboard(ctx context.Context, _ *struct{}) (*models.GetFretboardResponse, error) {
	tuning := h.svc.Tuning()
	names := make([]string, len(tuning))
	for i, pc := range tuning {
		names[i] = pc.String()
	}

	return &models.GetFretboardResponse{
		Body: models.GetFretboardResponseBody{
			Strings:   names,
			FretCount: h.svc.FretCount(),
		},
	}, nil
}
