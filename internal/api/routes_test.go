package api

import (
	"encoding/json"
	"net/http"
	"net/url"
	"testing"

	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/RMahshie/fretdrill/internal/quiz"
	"github.com/RMahshie/fretdrill/pkg/fretboard"
	"github.com/RMahshie/fretdrill/pkg/models"
)

func newTestAPI(t *testing.T) humatest.TestAPI {
	_, api := humatest.New(t)
	svc := quiz.NewService(fretboard.New(fretboard.Standard(), fretboard.DefaultFretCount, fretboard.NewSource(42)))
	RegisterRoutes(api, svc)
	return api
}

func TestRoutes_GetQuestion(t *testing.T) {
	api := newTestAPI(t)

	resp := api.Get("/api/questions")
	require.Equal(t, http.StatusOK, resp.Code)

	var body models.GetQuestionResponseBody
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &body))
	assert.NotEmpty(t, body.ID)
	assert.GreaterOrEqual(t, body.Fret, 0)
	assert.Less(t, body.Fret, fretboard.DefaultFretCount)
	assert.Contains(t, body.Prompt, body.String+" string?")
}

func TestRoutes_CheckAnswer(t *testing.T) {
	api := newTestAPI(t)

	tests := []struct {
		name        string
		body        map[string]any
		wantStatus  int
		wantCorrect bool
	}{
		{
			name:        "correct",
			body:        map[string]any{"string": "A", "fret": 3, "answer": "C"},
			wantStatus:  http.StatusOK,
			wantCorrect: true,
		},
		{
			name:        "incorrect",
			body:        map[string]any{"string": "E", "fret": 5, "answer": "G"},
			wantStatus:  http.StatusOK,
			wantCorrect: false,
		},
		{
			name:        "unknown question ID is only correlated",
			body:        map[string]any{"question_id": "6f1c1c4e-3b7a-4f7e-9a53-0d2b8f1e4c11", "string": "A", "fret": 3, "answer": "C"},
			wantStatus:  http.StatusOK,
			wantCorrect: true,
		},
		{
			name:       "malformed question ID",
			body:       map[string]any{"question_id": "q-1", "string": "A", "fret": 3, "answer": "C"},
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "invalid answer",
			body:       map[string]any{"string": "A", "fret": 3, "answer": "H"},
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "fret off the board",
			body:       map[string]any{"string": "A", "fret": 40, "answer": "C"},
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "missing answer",
			body:       map[string]any{"string": "A", "fret": 3},
			wantStatus: http.StatusUnprocessableEntity,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := api.Post("/api/answers", tt.body)
			require.Equal(t, tt.wantStatus, resp.Code, resp.Body.String())

			if tt.wantStatus == http.StatusOK {
				var body models.CheckAnswerResponseBody
				require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &body))
				assert.Equal(t, tt.wantCorrect, body.Correct)
			}
		})
	}
}

func TestRoutes_ParseNote(t *testing.T) {
	api := newTestAPI(t)

	resp := api.Get("/api/notes?text=" + url.QueryEscape("E#"))
	require.Equal(t, http.StatusOK, resp.Code)

	var body models.ParseNoteResponseBody
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &body))
	assert.Equal(t, "F", body.Name)
	assert.Equal(t, 5, body.Index)

	resp = api.Get("/api/notes?text=X")
	assert.Equal(t, http.StatusBadRequest, resp.Code)
}

func TestRoutes_GetFretboard(t *testing.T) {
	api := newTestAPI(t)

	resp := api.Get("/api/fretboard")
	require.Equal(t, http.StatusOK, resp.Code)

	var body models.GetFretboardResponseBody
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &body))
	assert.Equal(t, []string{"E", "A", "D", "G", "B", "E"}, body.Strings)
	assert.Equal(t, fretboard.DefaultFretCount, body.FretCount)
}
