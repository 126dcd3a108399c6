package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/mentorconnect/mentorship-api/internal/api/metrics"
	"github.com/mentorconnect/mentorship-api/internal/core/ports"
)

// MenteeHandler handles the mentee surface.
type MenteeHandler struct {
	assignments ports.AssignmentService
	todos       ports.TodoService
	resources   ports.ResourceService
}

func NewMenteeHandler(assignments ports.AssignmentService, todos ports.TodoService, resources ports.ResourceService) *MenteeHandler {
	return &MenteeHandler{assignments: assignments, todos: todos, resources: resources}
}

type mentorForMenteeResponse struct {
	MentorName string `json:"mentor_name"`
	MeetLink   string `json:"meet_link"`
}

// Mentor handles GET /mentee/:id/mentor. Returns null when unassigned.
func (h *MenteeHandler) Mentor(c echo.Context) error {
	menteeID, err := requireOwnPath(c, "mentee")
	if err != nil {
		return err
	}

	mentor, err := h.assignments.MentorOf(c.Request().Context(), menteeID)
	if err != nil {
		return err
	}
	if mentor == nil {
		return c.JSON(http.StatusOK, (*mentorForMenteeResponse)(nil))
	}

	return c.JSON(http.StatusOK, mentorForMenteeResponse{
		MentorName: mentor.Name,
		MeetLink:   mentor.MeetLink,
	})
}

// Todos handles GET /mentee/:id/todos — due date ascending.
func (h *MenteeHandler) Todos(c echo.Context) error {
	menteeID, err := requireOwnPath(c, "mentee")
	if err != nil {
		return err
	}

	todos, err := h.todos.ListForMentee(c.Request().Context(), menteeID)
	if err != nil {
		return err
	}

	resp := make([]todoResponse, 0, len(todos))
	for i := range todos {
		resp = append(resp, toTodoResponse(&todos[i]))
	}
	return c.JSON(http.StatusOK, resp)
}

// ToggleTodo handles PATCH /mentee/todos/:id/toggle. Only the owning mentee
// may flip the completed flag.
//
// @Summary      Toggle a to-do's completed flag
// @Tags         mentee
// @Produce      json
// @Security     BearerAuth
// @Param        id  path      string  true  "Todo id"
// @Success      200  {object}  todoResponse
// @Failure      403  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /mentee/todos/{id}/toggle [patch]
func (h *MenteeHandler) ToggleTodo(c echo.Context) error {
	callerID, _, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	todo, err := h.todos.Toggle(c.Request().Context(), c.Param("id"), callerID)
	if err != nil {
		return err
	}

	metrics.TodosToggledTotal.WithLabelValues(strconv.FormatBool(todo.Completed)).Inc()
	return c.JSON(http.StatusOK, toTodoResponse(todo))
}

// Resources handles GET /mentee/resources — newest first.
func (h *MenteeHandler) Resources(c echo.Context) error {
	resources, err := h.resources.List(c.Request().Context())
	if err != nil {
		return err
	}

	resp := make([]resourceResponse, 0, len(resources))
	for i := range resources {
		resp = append(resp, toResourceResponse(&resources[i]))
	}
	return c.JSON(http.StatusOK, resp)
}
