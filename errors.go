package cmmcassess

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

//
// renders every error as {"error": "<message>"}.
// internal errors are logged and replaced with a generic message
// so nothing about the request leaks back to the client.
//
func (s *AssessmentService) errorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	code := http.StatusInternalServerError
	msg := "Internal server error"

	var he *echo.HTTPError
	if errors.As(err, &he) {
		code = he.Code
		if code < http.StatusInternalServerError {
			msg = fmt.Sprint(he.Message)
		}
	}
	if code == http.StatusNotFound {
		msg = "Not found"
	}
	if code >= http.StatusInternalServerError {
		s.e.Logger.Error(err)
	}

	if c.Request().Method == http.MethodHead {
		err = c.NoContent(code)
	} else {
		err = c.JSON(code, map[string]string{"error": msg})
	}
	if err != nil {
		s.e.Logger.Error(err)
	}
}
