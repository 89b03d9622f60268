package models

// GetQuestionResponseBody is the body of the random question response
type GetQuestionResponseBody struct {
	ID          string `json:"id" doc:"Correlation ID for logs, echoed back when answering. The server keeps no question state."`
	String      string `json:"string" example:"A" doc:"Open string note"`
	StringIndex int    `json:"string_index" minimum:"0" doc:"String position, 0 is the lowest string"`
	Fret        int    `json:"fret" minimum:"0" doc:"Fret number, 0 is the open string"`
	Prompt      string `json:"prompt" doc:"Question text"`
}

// GetQuestionResponse represents a randomly drawn question
type GetQuestionResponse struct {
	Body GetQuestionResponseBody
}

// CheckAnswerRequestBody is the body of an answer submission
type CheckAnswerRequestBody struct {
	QuestionID string `json:"question_id,omitempty" doc:"Optional correlation ID from getQuestion, only checked to be a UUID and logged. The answer is checked against string and fret."`
	String     string `json:"string" minLength:"1" maxLength:"16" example:"A" doc:"Open string note of the question"`
	Fret       int    `json:"fret" minimum:"0" example:"3" doc:"Fret number of the question"`
	Answer     string `json:"answer" minLength:"1" maxLength:"16" example:"C" doc:"Answer such as C, F# or Bb"`
}

// CheckAnswerRequest represents a request to check an answer
type CheckAnswerRequest struct {
	Body CheckAnswerRequestBody
}

// CheckAnswerResponseBody is the body of the answer check response
type CheckAnswerResponseBody struct {
	Correct  bool   `json:"correct" doc:"Whether the answer names the right note"`
	Expected string `json:"expected" example:"C" doc:"The note at the position, sharp spelling"`
	Answer   string `json:"answer" example:"C" doc:"The submitted answer, sharp spelling"`
}

// CheckAnswerResponse represents the result of an answer check
type CheckAnswerResponse struct {
	Body CheckAnswerResponseBody
}

// ParseNoteRequest represents a request to parse note text
type ParseNoteRequest struct {
	Text string `query:"text" minLength:"1" maxLength:"16" required:"true" example:"Db" doc:"Note text: letter plus # or b modifiers"`
}

// ParseNoteResponseBody is the body of the parse note response
type ParseNoteResponseBody struct {
	Name  string `json:"name" example:"C#" doc:"Canonical sharp spelling"`
	Index int    `json:"index" minimum:"0" maximum:"11" doc:"Semitones above C"`
}

// ParseNoteResponse represents a parsed pitch class
type ParseNoteResponse struct {
	Body ParseNoteResponseBody
}

// GetFretboardResponseBody is the body of the fretboard response
type GetFretboardResponseBody struct {
	Strings   []string `json:"strings" doc:"Open string notes, lowest string first"`
	FretCount int      `json:"fret_count" minimum:"1" doc:"Number of fret positions including the open string"`
}

// GetFretboardResponse describes the fretboard questions are drawn from
type GetFretboardResponse struct {
	Body GetFretboardResponseBody
}
