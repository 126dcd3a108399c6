package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
)

const dateLayout = "2006-01-02"

// ctxIdentity extracts the caller identity injected by the Auth middleware
// and performs a fast-fail check before any service call: both values must be
// present, proving the middleware ran.
func ctxIdentity(c echo.Context) (userID, role string, err error) {
	userID, _ = c.Get("user_id").(string)
	role, _ = c.Get("role").(string)
	if userID == "" || role == "" {
		return "", "", echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}
	return userID, role, nil
}

// requireOwnPath enforces the ownership scope rule: the id in the request
// path must equal the authenticated caller's id.
func requireOwnPath(c echo.Context, scope string) (string, error) {
	userID, _, err := ctxIdentity(c)
	if err != nil {
		return "", err
	}
	if c.Param("id") != userID {
		return "", echo.NewHTTPError(http.StatusForbidden, "forbidden "+scope+" scope")
	}
	return userID, nil
}

// parseDate parses a YYYY-MM-DD request field.
func parseDate(value string) (time.Time, error) {
	t, err := time.Parse(dateLayout, value)
	if err != nil {
		return time.Time{}, echo.NewHTTPError(http.StatusBadRequest, "invalid date, expected YYYY-MM-DD")
	}
	return t, nil
}
