package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/mentorconnect/mentorship-api/internal/api/metrics"
	"github.com/mentorconnect/mentorship-api/internal/core/domain"
	"github.com/mentorconnect/mentorship-api/internal/core/ports"
)

// MentorHandler handles the mentor surface. Every path-scoped route checks
// that the path id equals the authenticated caller's id.
type MentorHandler struct {
	users       ports.UserService
	assignments ports.AssignmentService
	sessions    ports.SessionService
	todos       ports.TodoService
}

func NewMentorHandler(users ports.UserService, assignments ports.AssignmentService, sessions ports.SessionService, todos ports.TodoService) *MentorHandler {
	return &MentorHandler{users: users, assignments: assignments, sessions: sessions, todos: todos}
}

// Mentees handles GET /mentor/:id/mentees.
func (h *MentorHandler) Mentees(c echo.Context) error {
	mentorID, err := requireOwnPath(c, "mentor")
	if err != nil {
		return err
	}

	mentees, err := h.assignments.MenteesOf(c.Request().Context(), mentorID)
	if err != nil {
		return err
	}

	resp := make([]userResponse, 0, len(mentees))
	for i := range mentees {
		resp = append(resp, toUserResponse(&mentees[i]))
	}
	return c.JSON(http.StatusOK, resp)
}

// SetMeetLink handles PUT /mentor/:id/meet-link.
//
// @Summary      Update the mentor's meeting link
// @Tags         mentor
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string           true  "Mentor id (must equal caller)"
// @Param        body  body      meetLinkRequest  true  "Meet link, empty or http(s)"
// @Success      200   {object}  meetLinkResponse
// @Failure      400   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Router       /mentor/{id}/meet-link [put]
func (h *MentorHandler) SetMeetLink(c echo.Context) error {
	mentorID, err := requireOwnPath(c, "mentor")
	if err != nil {
		return err
	}

	var req meetLinkRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	link, err := h.users.SetMeetLink(c.Request().Context(), mentorID, req.MeetLink)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, meetLinkResponse{MeetLink: link})
}

// GetMeetLink handles GET /mentor/:id/meet-link.
func (h *MentorHandler) GetMeetLink(c echo.Context) error {
	mentorID, err := requireOwnPath(c, "mentor")
	if err != nil {
		return err
	}

	link, err := h.users.GetMeetLink(c.Request().Context(), mentorID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, meetLinkResponse{MeetLink: link})
}

// LogSession handles POST /mentor/sessions. The acting mentor is always the
// authenticated caller; the mentee must be currently assigned to them.
//
// @Summary      Log a mentoring session
// @Tags         mentor
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      logSessionRequest  true  "Session details"
// @Success      201   {object}  sessionResponse
// @Failure      400   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /mentor/sessions [post]
func (h *MentorHandler) LogSession(c echo.Context) error {
	mentorID, _, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	var req logSessionRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	date, err := parseDate(req.Date)
	if err != nil {
		return err
	}

	result, err := h.sessions.Log(c.Request().Context(), ports.LogSessionInput{
		MentorID:        mentorID,
		MenteeID:        req.MenteeID,
		Date:            date,
		FluencyScore:    req.FluencyScore,
		ConfidenceScore: req.ConfidenceScore,
		Notes:           req.Notes,
		NextSteps:       req.NextSteps,
	})
	if err != nil {
		return err
	}

	metrics.SessionsLoggedTotal.Inc()
	return c.JSON(http.StatusCreated, toSessionResponse(result))
}

// AssignTodo handles POST /mentor/todos.
func (h *MentorHandler) AssignTodo(c echo.Context) error {
	mentorID, _, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	var req createTodoRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	dueDate, err := parseDate(req.DueDate)
	if err != nil {
		return err
	}

	todo, err := h.todos.Create(c.Request().Context(), ports.CreateTodoInput{
		MentorID:    mentorID,
		MenteeID:    req.MenteeID,
		Title:       req.Title,
		Description: req.Description,
		DueDate:     dueDate,
	})
	if err != nil {
		return err
	}

	metrics.TodosCreatedTotal.Inc()
	return c.JSON(http.StatusCreated, toTodoResponse(todo))
}

func toTodoResponse(t *domain.Todo) todoResponse {
	return todoResponse{
		ID:          t.ID,
		Title:       t.Title,
		Description: t.Description,
		DueDate:     t.DueDate.UTC().Format(dateLayout),
		Completed:   t.Completed,
		MenteeID:    t.MenteeID,
	}
}
