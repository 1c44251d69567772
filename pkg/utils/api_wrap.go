package utils

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

type APIResponse struct {
	Status  string      `json:"status"`
	Code    int         `json:"code"`
	Message string      `json:"message,omitempty"`
	TraceID string      `json:"trace_id,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

func traceID(c *gin.Context) string {
	if v, ok := c.Get("trace_id"); ok {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}

func RespondSuccess(c *gin.Context, data interface{}, message string) {
	c.JSON(http.StatusOK, APIResponse{
		Status:  "success",
		Code:    http.StatusOK,
		Message: message,
		TraceID: traceID(c),
		Data:    data,
	})
}

func RespondError(c *gin.Context, code int, message string) {
	c.JSON(code, APIResponse{
		Status:  "error",
		Code:    code,
		Message: message,
		TraceID: traceID(c),
	})
}

// HandleServiceError maps service sentinel errors onto HTTP responses. Store
// and provider failures are logged with route context and surfaced as generic
// messages so callers can retry safely.
func HandleServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrUserNotFound),
		errors.Is(err, ErrProductNotFound),
		errors.Is(err, ErrCategoryNotFound),
		errors.Is(err, ErrBookingNotFound):
		RespondError(c, http.StatusNotFound, err.Error())
	case errors.Is(err, ErrForbidden):
		RespondError(c, http.StatusForbidden, "forbidden access")
	case errors.Is(err, ErrUpstreamFailure):
		log.Error().Err(err).Str("route", c.FullPath()).Str("trace_id", traceID(c)).Msg("payment provider call failed")
		RespondError(c, http.StatusBadGateway, "payment provider unavailable")
	case errors.Is(err, ErrTokenSigning):
		log.Error().Err(err).Str("route", c.FullPath()).Str("trace_id", traceID(c)).Msg("token signing failed")
		RespondError(c, http.StatusInternalServerError, "internal server error")
	case errors.Is(err, ErrDatabaseError):
		log.Error().Err(err).Str("route", c.FullPath()).Str("trace_id", traceID(c)).Msg("database error")
		RespondError(c, http.StatusInternalServerError, "internal server error")
	default:
		log.Error().Err(err).Str("route", c.FullPath()).Str("trace_id", traceID(c)).Msg("unhandled service error")
		RespondError(c, http.StatusInternalServerError, "internal server error")
	}
}
