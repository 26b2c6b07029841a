package httperr

import (
	"log/slog"
	"net/http"

	"gym-reservation-engine/internal/pkg/errs"

	"github.com/gin-gonic/gin"
)

type Response struct {
	Status int `json:"-"`
	Error  struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
	Detail any `json:"detail,omitempty"`
}

// preserves original error for future monitoring
func AbortWithError(c *gin.Context, status int, err error, code, msg string, detail any) {
	if err == nil {
		panic("AbortWithError: err cannot be nil")
	}

	resp := Response{Status: status}
	resp.Error.Code = code
	resp.Error.Message = msg
	resp.Detail = detail

	_ = c.Error(gin.Error{
		Err:  err,
		Type: gin.ErrorTypePublic,
		Meta: resp,
	})
	c.AbortWithStatusJSON(status, resp)
}

type mapping struct {
	target error
	status int
	code   string
}

// Order matters only for errors carrying several marks.
var mappings = []mapping{
	{errs.ErrValidation, http.StatusBadRequest, "validation_error"},
	{errs.ErrNotFound, http.StatusNotFound, "not_found"},
	{errs.ErrOrderNotFound, http.StatusNotFound, "order_not_found"},
	{errs.ErrUnavailable, http.StatusConflict, "unavailable"},
	{errs.ErrConflict, http.StatusConflict, "conflict"},
	{errs.ErrAlreadyCancelled, http.StatusConflict, "already_cancelled"},
	{errs.ErrInvalidTransition, http.StatusConflict, "invalid_transition"},
	{errs.ErrInsufficientBalance, http.StatusPaymentRequired, "insufficient_balance"},
}

// Abort maps an engine error to a response. Business errors carry their message;
// anything else is logged with its stack and reported as a generic 500.
func Abort(c *gin.Context, err error) {
	for _, m := range mappings {
		if errs.Is(err, m.target) {
			AbortWithError(c, m.status, err, m.code, err.Error(), nil)
			return
		}
	}

	slog.ErrorContext(c.Request.Context(), "request failed",
		slog.String("path", c.Request.URL.Path),
		slog.String("error", err.Error()),
		slog.Any("stack", errs.ExtractStackLines(err, 12)))
	AbortWithError(c, http.StatusInternalServerError, err, "internal_error", "Internal server error", nil)
}

// BadRequest reports a request that failed binding.
func BadRequest(c *gin.Context, err error) {
	AbortWithError(c, http.StatusBadRequest, err, "invalid_request", "Invalid request format", err.Error())
}
