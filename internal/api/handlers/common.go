package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yoockh/devconnect/internal/api/middleware"
	"github.com/yoockh/devconnect/internal/utils"
	"github.com/yoockh/devconnect/internal/validation"
)

// MsgServerError is the only body clients see for unexpected failures.
const MsgServerError = "Server Error"

type ErrorsResponse struct {
	Errors []utils.FieldError `json:"errors"`
}

type MessageResponse struct {
	Msg string `json:"msg"`
}

// writeError maps err to the response shape of its class. Internal errors are
// attached to the gin context for the request logger and never echoed.
func writeError(c *gin.Context, err error) {
	writeErrorStatus(c, 0, err)
}

// writeErrorStatus is writeError with a route specific status for client errors.
func writeErrorStatus(c *gin.Context, status int, err error) {
	var ae *utils.AppError
	if !errors.As(err, &ae) || ae.Code == utils.CodeInternal {
		_ = c.Error(err)
		c.String(http.StatusInternalServerError, MsgServerError)
		return
	}

	if status == 0 {
		status = utils.HTTPStatus(err)
	}

	switch ae.Code {
	case utils.CodeInvalidArgument, utils.CodeConflict:
		fields := ae.Fields
		if len(fields) == 0 {
			fields = []utils.FieldError{{Msg: ae.Message}}
		}
		c.JSON(status, ErrorsResponse{Errors: fields})
	case utils.CodeUnauthorized:
		if status == http.StatusBadRequest {
			c.JSON(status, ErrorsResponse{Errors: []utils.FieldError{{Msg: ae.Message}}})
			return
		}
		c.JSON(status, MessageResponse{Msg: ae.Message})
	default:
		c.JSON(status, MessageResponse{Msg: ae.Message})
	}
}

// bindJSON decodes the body into dst and reports field level problems.
func bindJSON[T validation.Messenger](c *gin.Context, op string, dst *T) bool {
	if err := c.ShouldBindJSON(dst); err != nil {
		if fields := validation.FieldErrors(err, (*dst).Messages()); len(fields) > 0 {
			writeError(c, utils.Invalid(op, fields...))
			return false
		}
		writeError(c, utils.E(utils.CodeInvalidArgument, op, "Invalid request body", err))
		return false
	}
	return true
}

func requireUserID(c *gin.Context) (string, bool) {
	if id := middleware.UserID(c); id != "" {
		return id, true
	}

	writeError(c, utils.E(utils.CodeUnauthorized, "Auth", "No token, authorization denied", nil))
	return "", false
}
