package handler

// errorResponse is the standard error envelope returned on all 4xx/5xx responses.
type errorResponse struct {
	Error string `json:"error"`
}

type createUserRequest struct {
	Name     string `json:"name"     validate:"required,max=100"`
	Role     string `json:"role"     validate:"required,oneof=mentor mentee"`
	Password string `json:"password" validate:"required,min=6,max=200"`
}

type mapMentorRequest struct {
	MentorID string `json:"mentor_id" validate:"required"`
	MenteeID string `json:"mentee_id" validate:"required"`
}

type mapMentorResponse struct {
	Message  string `json:"message"`
	MentorID string `json:"mentor_id"`
	MenteeID string `json:"mentee_id"`
}

type resourceResponse struct {
	ID         string `json:"id"`
	Title      string `json:"title"`
	URL        string `json:"url"`
	UploadedAt string `json:"uploaded_at"`
}
