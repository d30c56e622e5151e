// Package handlers provides HTTP handler implementations for the public API.
//
// This file defines the response utilities shared across endpoints. Two
// response surfaces exist side by side:
//
//   - Mutation endpoints return the pipeline's own result shape: a terminal
//     303 redirect on success, or the {errors, message} state on failure
//     (and the delete confirmation). renderResult maps the tagged
//     services.Result onto HTTP so callers branch on status, never on "did
//     the function return".
//   - Everything else (reads, routing fallbacks, rate limiting) uses the
//     ErrorResponse envelope with a stable machine-readable code.
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/shadewithin/go-invoice-backend/internal/http/middleware"
	"github.com/shadewithin/go-invoice-backend/internal/services"
)

// ErrorResponse is the standard error envelope for non-pipeline failures.
type ErrorResponse struct {
	// Correlates server logs and client errors
	RequestID string `json:"request_id,omitempty" example:"123e4567-e89b-12d3-a456-426614174000"`
	// Stable, machine-readable code (see errors.go constants)
	Code string `json:"code" example:"not_found"`
	// Human-readable message (safe to show to users)
	Message string `json:"message" example:"resource not found"`
}

// fail aborts the request with a structured error envelope. Server errors
// (>= 500) are logged with the request-scoped logger.
func fail(c *gin.Context, status int, code, msg string) {
	resp := ErrorResponse{
		RequestID: c.Writer.Header().Get("X-Request-ID"),
		Code:      code,
		Message:   msg,
	}

	if status >= http.StatusInternalServerError {
		lg := middleware.LoggerFrom(c)
		lg.Error().
			Int("status", status).
			Str("code", code).
			Str("message", msg).
			Msg("api error")
	}

	c.AbortWithStatusJSON(status, resp)
}

// Fail is the exported variant of fail() for router-level fallbacks.
func Fail(c *gin.Context, status int, code, msg string) { fail(c, status, code, msg) }

// ok writes a success JSON response.
func ok(c *gin.Context, status int, body any) {
	c.JSON(status, body)
}

// renderResult maps a tagged mutation result onto HTTP:
//
//   - terminal redirect        → 303 See Other with Location
//   - failure with field errors → 422 with the {errors, message} state
//   - failure without field errors (gateway fault) → 500 with the state
//   - non-terminal success (delete confirmation)   → 200 with the state
func renderResult(c *gin.Context, res services.Result) {
	switch {
	case res.Terminal():
		c.Redirect(http.StatusSeeOther, res.RedirectTo)
	case !res.Failed:
		ok(c, http.StatusOK, res.State)
	case len(res.State.Errors) > 0:
		c.AbortWithStatusJSON(http.StatusUnprocessableEntity, res.State)
	default:
		middleware.LoggerFrom(c).Error().
			Str("message", res.State.Message).
			Msg("mutation failed")
		c.AbortWithStatusJSON(http.StatusInternalServerError, res.State)
	}
}
