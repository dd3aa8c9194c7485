package handler

import (
	"errors"

	"github.com/labstack/echo/v4"

	"github.com/bloggie/bloggie-web/internal/core/domain"
)

// genericErrorMessage is shown when the failure was transport-level and no
// server message exists. Network and server rejections are deliberately
// not distinguished beyond this.
const genericErrorMessage = "Something went wrong. Please try again later."

// ctxToken returns the API token injected by the route guard.
func ctxToken(c echo.Context) string {
	token, _ := c.Get("token").(string)
	return token
}

// ctxUsername returns the username claim injected by the route guard.
func ctxUsername(c echo.Context) string {
	username, _ := c.Get("username").(string)
	return username
}

// userMessage converts any workflow error into the message shown to the
// user: the upstream's own message for rejected requests, the generic
// fallback for everything else.
func userMessage(err error) string {
	var reqErr *domain.RequestError
	if errors.As(err, &reqErr) {
		return reqErr.Message
	}
	return genericErrorMessage
}

// errorStatus picks the response status for a failed submission
// re-render: the upstream's status when known, 502 for transport errors.
func errorStatus(err error) int {
	var reqErr *domain.RequestError
	if errors.As(err, &reqErr) && reqErr.StatusCode >= 400 {
		return reqErr.StatusCode
	}
	return 502
}
