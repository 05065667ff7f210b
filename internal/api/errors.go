package api

import (
	"github.com/gin-gonic/gin" // Gin web framework

	"trivia_backend/internal/apperr" // Typed application errors
)

// ErrorResponse is the generic error body
type ErrorResponse struct {
	Error string `json:"error"` // Caller-safe message
}

// writeError maps err onto its HTTP status and writes the generic error body.
// The full error is attached to the gin context for the access log.
func writeError(c *gin.Context, err error) {
	e := apperr.Convert(err)
	_ = c.Error(err)
	c.JSON(e.HTTPStatusCode(), ErrorResponse{Error: e.Message})
}

// badRequest writes a 400 with msg
func badRequest(c *gin.Context, msg string) {
	writeError(c, apperr.New(apperr.CodeInvalidArgument, apperr.WithMessage(msg)))
}
