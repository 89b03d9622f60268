package api

import (
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/RMahshie/fretdrill/internal/api/handlers"
	"github.com/RMahshie/fretdrill/internal/quiz"
)

// RegisterRoutes sets up all API routes
func RegisterRoutes(api huma.API, quizSvc quiz.Service) {
	// Initialize handlers
	quizHandler := handlers.NewQuizHandler(quizSvc)

	// Register quiz routes
	huma.Register(api, huma.Operation{
		OperationID: "getQuestion",
		Method:      http.MethodGet,
		Path:        "/api/questions",
		Summary:     "Draw a question",
		Description: "Draws a random string and fret from the configured fretboard",
		Tags:        []string{"Quiz"},
	}, quizHandler.GetQuestion)

	huma.Register(api, huma.Operation{
		OperationID: "checkAnswer",
		Method:      http.MethodPost,
		Path:        "/api/answers",
		Summary:     "Check an answer",
		Description: "Checks whether the answer names the note at the given string and fret",
		Tags:        []string{"Quiz"},
	}, quizHandler.CheckAnswer)

	huma.Register(api, huma.Operation{
		OperationID: "parseNote",
		Method:      http.MethodGet,
		Path:        "/api/notes",
		Summary:     "Parse a note",
		Description: "Converts note text such as Db or E## to its canonical pitch class",
		Tags:        []string{"Notes"},
	}, quizHandler.ParseNote)

	huma.Register(api, huma.Operation{
		OperationID: "getFretboard",
		Method:      http.MethodGet,
		Path:        "/api/fretboard",
		Summary:     "Describe the fretboard",
		Description: "Returns the tuning and fret count questions are drawn from",
		Tags:        []string{"Quiz"},
	}, quizHandler.GetFretboard)
}
