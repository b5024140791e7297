package httperr

import (
	"log/slog"
	"net/http"

	"salon-queue/internal/pkg/errs"

	"github.com/gin-gonic/gin"
)

type Response struct {
	Status int `json:"-"`
	Error  struct {
		Message string `json:"message"`
		Code    string `json:"code,omitempty"`
		Kind    string `json:"kind,omitempty"`
	} `json:"error"`
	Detail any `json:"detail,omitempty"`
}

// preserves original error for future monitoring
func AbortWithError(c *gin.Context, status int, err error, msg string, detail any) {
	if err == nil {
		panic("AbortWithError: err cannot be nil")
	}

	resp := Response{Status: status}
	resp.Error.Message = msg
	resp.Detail = detail
	abort(c, err, resp)
}

// Abort classifies err and writes the matching status with its code and kind.
func Abort(c *gin.Context, err error) {
	if err == nil {
		panic("Abort: err cannot be nil")
	}

	resp := Response{Status: http.StatusInternalServerError}
	d, ok := errs.Classify(err)
	if !ok || d.Kind() == errs.KindInternal {
		resp.Error.Message = "Internal server error"
		resp.Error.Code = "INTERNAL"
		resp.Error.Kind = string(errs.KindInternal)
		slog.Error("request failed", "path", c.FullPath(), "error", err)
		abort(c, err, resp)
		return
	}

	resp.Status = StatusOf(d)
	resp.Error.Message = d.Error()
	resp.Error.Code = d.Code()
	resp.Error.Kind = string(d.Kind())
	if d.Kind() == errs.KindInvariantViolation {
		slog.Error("invariant violated",
			"path", c.FullPath(),
			"code", d.Code(),
			"error", err,
			"stack", errs.ExtractStackLines(err, 8))
	}
	abort(c, err, resp)
}

func StatusOf(d *errs.Error) int {
	if d == errs.ErrExpiredBooking {
		return http.StatusGone
	}
	switch d.Kind() {
	case errs.KindValidation:
		return http.StatusUnprocessableEntity
	case errs.KindConflict, errs.KindStateConflict:
		return http.StatusConflict
	case errs.KindUnavailable:
		return http.StatusLocked
	case errs.KindNotFound:
		return http.StatusNotFound
	case errs.KindForbidden:
		return http.StatusForbidden
	default:
		return http.StatusInternalServerError
	}
}

func abort(c *gin.Context, err error, resp Response) {
	_ = c.Error(gin.Error{
		Err:  err,
		Type: gin.ErrorTypePublic,
		Meta: resp,
	})
	c.AbortWithStatusJSON(resp.Status, resp)
}
