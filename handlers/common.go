package handlers

import (
	"errors"
	"net/http"

	"sevgi/invite"
	"sevgi/utils"

	"github.com/gin-gonic/gin"
)

type Response struct {
	Error string `json:"error"`
}

var (
	// Predefined errors
	OKResponse       = Response{}
	InternalResponse = Response{"Internal Server Error"}
)

// Invites is set once at startup, before the router starts serving
var Invites *invite.Service

func statusFor(err error) int {
	switch {
	case errors.Is(err, invite.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, invite.ErrAlreadyFinished), errors.Is(err, invite.ErrConflict):
		return http.StatusConflict
	case errors.Is(err, invite.ErrInvalidInput), errors.Is(err, invite.ErrInvalidStatus):
		return http.StatusBadRequest
	case errors.Is(err, invite.ErrTokenGenerationFailed):
		return http.StatusServiceUnavailable
	}
	return http.StatusInternalServerError
}

// respondError writes the error response for err. Internal errors are logged
// and replaced with a generic message.
func respondError(c *gin.Context, err error) {
	status := statusFor(err)
	if status == http.StatusInternalServerError {
		utils.Logger.WithError(err).WithField("path", c.FullPath()).Error("request failed")
		c.JSON(status, InternalResponse)
		return
	}
	c.JSON(status, Response{err.Error()})
}

func Robots(c *gin.Context) {
	c.String(http.StatusOK, "User-agent: *\nDisallow: /\n")
}
