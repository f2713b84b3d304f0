package handler

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	"foodimages/internal/domain/dto"
	"foodimages/internal/presentation"
	"foodimages/pkg/logger"
)

// ErrorHandler renders errors that escape handlers and middleware as
// {"error": ...}. Server errors never expose their cause.
func ErrorHandler(log *logger.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		code := http.StatusInternalServerError
		msg := presentation.MsgInternalError

		var he *echo.HTTPError
		if errors.As(err, &he) {
			code = he.Code
			if code < http.StatusInternalServerError {
				msg = fmt.Sprint(he.Message)
			}
		}

		if code >= http.StatusInternalServerError {
			log.Error("unhandled error",
				"method", c.Request().Method,
				"path", c.Request().URL.Path,
				"request_id", c.Response().Header().Get(echo.HeaderXRequestID),
				"err", err)
		}

		if c.Request().Method == http.MethodHead {
			err = c.NoContent(code)
		} else {
			err = c.JSON(code, dto.Error{Error: msg})
		}
		if err != nil {
			log.Error("can't write error response", "err", err)
		}
	}
}
