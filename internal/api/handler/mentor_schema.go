package handler

import "github.com/mentorconnect/mentorship-api/internal/core/ports"

type logSessionRequest struct {
	MenteeID        string `json:"mentee_id"        validate:"required"`
	Date            string `json:"date"             validate:"required"`
	FluencyScore    int    `json:"fluency_score"    validate:"required,gte=1,lte=10"`
	ConfidenceScore int    `json:"confidence_score" validate:"required,gte=1,lte=10"`
	Notes           string `json:"notes"            validate:"required,max=2000"`
	NextSteps       string `json:"next_steps"       validate:"required,max=2000"`
}

type createTodoRequest struct {
	MenteeID    string `json:"mentee_id"   validate:"required"`
	Title       string `json:"title"       validate:"required,max=200"`
	Description string `json:"description" validate:"required,max=2000"`
	DueDate     string `json:"due_date"    validate:"required"`
}

type meetLinkRequest struct {
	MeetLink string `json:"meet_link" validate:"max=500"`
}

type meetLinkResponse struct {
	MeetLink string `json:"meet_link"`
}

type sessionResponse struct {
	ID              string `json:"id"`
	MentorName      string `json:"mentor_name"`
	MenteeName      string `json:"mentee_name"`
	Date            string `json:"date"`
	FluencyScore    int    `json:"fluency_score"`
	ConfidenceScore int    `json:"confidence_score"`
	Notes           string `json:"notes"`
	NextSteps       string `json:"next_steps"`
}

type todoResponse struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	DueDate     string `json:"due_date"`
	Completed   bool   `json:"completed"`
	MenteeID    string `json:"mentee_id"`
}

func toSessionResponse(s *ports.SessionResult) sessionResponse {
	return sessionResponse{
		ID:              s.ID,
		MentorName:      s.MentorName,
		MenteeName:      s.MenteeName,
		Date:            s.Date.UTC().Format(dateLayout),
		FluencyScore:    s.FluencyScore,
		ConfidenceScore: s.ConfidenceScore,
		Notes:           s.Notes,
		NextSteps:       s.NextSteps,
	}
}

func toSessionResponses(results []ports.SessionResult) []sessionResponse {
	resp := make([]sessionResponse, 0, len(results))
	for i := range results {
		resp = append(resp, toSessionResponse(&results[i]))
	}
	return resp
}
