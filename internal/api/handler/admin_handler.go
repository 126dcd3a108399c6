package handler

import (
	"io"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/mentorconnect/mentorship-api/internal/api/metrics"
	"github.com/mentorconnect/mentorship-api/internal/core/domain"
	"github.com/mentorconnect/mentorship-api/internal/core/ports"
)

const maxUploadBytes = 20 << 20

// AdminHandler handles the admin-only surface: user management, mentor
// mapping, resource uploads, and the global session list.
type AdminHandler struct {
	users       ports.UserService
	assignments ports.AssignmentService
	sessions    ports.SessionService
	resources   ports.ResourceService
}

func NewAdminHandler(users ports.UserService, assignments ports.AssignmentService, sessions ports.SessionService, resources ports.ResourceService) *AdminHandler {
	return &AdminHandler{users: users, assignments: assignments, sessions: sessions, resources: resources}
}

// CreateUser handles POST /admin/users.
//
// @Summary      Create a mentor or mentee account
// @Tags         admin
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createUserRequest  true  "New user details"
// @Success      201   {object}  userResponse
// @Failure      400   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Router       /admin/users [post]
func (h *AdminHandler) CreateUser(c echo.Context) error {
	var req createUserRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	user, err := h.users.Create(c.Request().Context(), ports.CreateUserInput{
		Name:     req.Name,
		Role:     req.Role,
		Password: req.Password,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, toUserResponse(user))
}

// ListMentors handles GET /admin/mentors.
func (h *AdminHandler) ListMentors(c echo.Context) error {
	return h.listByRole(c, domain.RoleMentor)
}

// ListMentees handles GET /admin/mentees.
func (h *AdminHandler) ListMentees(c echo.Context) error {
	return h.listByRole(c, domain.RoleMentee)
}

func (h *AdminHandler) listByRole(c echo.Context, role string) error {
	users, err := h.users.ListByRole(c.Request().Context(), role)
	if err != nil {
		return err
	}

	resp := make([]userResponse, 0, len(users))
	for i := range users {
		resp = append(resp, toUserResponse(&users[i]))
	}
	return c.JSON(http.StatusOK, resp)
}

// MapMentor handles POST /admin/map-mentor.
//
// @Summary      Assign a mentor to a mentee
// @Tags         admin
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      mapMentorRequest  true  "Mentor and mentee ids"
// @Success      200   {object}  mapMentorResponse
// @Failure      404   {object}  errorResponse
// @Router       /admin/map-mentor [post]
func (h *AdminHandler) MapMentor(c echo.Context) error {
	var req mapMentorRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	assignment, err := h.assignments.Assign(c.Request().Context(), req.MentorID, req.MenteeID)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, mapMentorResponse{
		Message:  "mentor mapped to mentee successfully",
		MentorID: assignment.MentorID,
		MenteeID: assignment.MenteeID,
	})
}

// ListMappings handles GET /admin/mappings.
func (h *AdminHandler) ListMappings(c echo.Context) error {
	mappings, err := h.assignments.ListMappings(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, mappings)
}

// ListSessions handles GET /admin/sessions — all records, newest first.
func (h *AdminHandler) ListSessions(c echo.Context) error {
	sessions, err := h.sessions.ListAll(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toSessionResponses(sessions))
}

// UploadResource handles POST /admin/resources — multipart title + PDF file.
//
// @Summary      Upload a PDF resource
// @Tags         admin
// @Accept       multipart/form-data
// @Produce      json
// @Security     BearerAuth
// @Param        title  formData  string  true  "Resource title"
// @Param        file   formData  file    true  "PDF file"
// @Success      201    {object}  resourceResponse
// @Failure      400    {object}  errorResponse
// @Router       /admin/resources [post]
func (h *AdminHandler) UploadResource(c echo.Context) error {
	title := c.FormValue("title")

	fileHeader, err := c.FormFile("file")
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "file is required")
	}
	if fileHeader.Size > maxUploadBytes {
		return echo.NewHTTPError(http.StatusBadRequest, "file too large")
	}

	file, err := fileHeader.Open()
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "cannot read file")
	}
	defer file.Close()

	data, err := io.ReadAll(io.LimitReader(file, maxUploadBytes))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "cannot read file")
	}

	resource, err := h.resources.Upload(c.Request().Context(), ports.UploadResourceInput{
		Title:       title,
		Filename:    fileHeader.Filename,
		ContentType: fileHeader.Header.Get("Content-Type"),
		Data:        data,
	})
	if err != nil {
		return err
	}

	metrics.ResourcesUploadedTotal.Inc()
	return c.JSON(http.StatusCreated, toResourceResponse(resource))
}

func toResourceResponse(r *domain.Resource) resourceResponse {
	return resourceResponse{
		ID:         r.ID,
		Title:      r.Title,
		URL:        r.URL,
		UploadedAt: r.UploadedAt.UTC().Format(dateLayout),
	}
}
