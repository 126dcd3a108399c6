package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/mentorconnect/mentorship-api/internal/api/metrics"
	"github.com/mentorconnect/mentorship-api/internal/core/domain"
	"github.com/mentorconnect/mentorship-api/internal/core/ports"
)

// AuthHandler handles login.
type AuthHandler struct {
	authService ports.AuthService
}

func NewAuthHandler(authService ports.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

type loginRequest struct {
	Name     string `json:"name"     validate:"required,max=100"`
	Role     string `json:"role"     validate:"required,oneof=admin mentor mentee"`
	Password string `json:"password" validate:"required,max=200"`
}

type userResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Role string `json:"role"`
}

type loginResponse struct {
	Token string       `json:"token"`
	User  userResponse `json:"user"`
}

// Login authenticates a (name, role, password) triple and returns a bearer token.
//
// @Summary      Login
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Login credentials"
// @Success      200   {object}  loginResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Router       /auth/login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	token, user, err := h.authService.Login(c.Request().Context(), req.Name, req.Role, req.Password)
	if err != nil {
		metrics.LoginsTotal.WithLabelValues(req.Role, "failure").Inc()
		return err
	}

	metrics.LoginsTotal.WithLabelValues(user.Role, "success").Inc()
	return c.JSON(http.StatusOK, loginResponse{
		Token: token,
		User:  toUserResponse(user),
	})
}

func toUserResponse(u *domain.User) userResponse {
	return userResponse{ID: u.ID, Name: u.Name, Role: u.Role}
}
