package handlers

import (
	"errors"
	"net/http"

	"faqdesk/internal/repository"
	"faqdesk/internal/service"
	"faqdesk/internal/translator"

	"github.com/gin-gonic/gin"
)

const (
	errFAQNotFound        = "FAQ not found"
	errUsernameTaken      = "Username already exists"
	errInvalidCredentials = "Invalid username or password"
	errUpstream           = "translation provider unavailable"
	errInternal           = "internal error"
	errInvalidBodyPref    = "invalid body: "
)

// Centralized error logging and response.
func (h *Handler) logAndJSONError(c *gin.Context, httpCode int, userMsg, logKey string, err error, kv ...interface{}) {
	if h.log != nil && err != nil {
		fields := append([]interface{}{"err", err}, kv...)
		h.log.Errorw(logKey, fields...)
	}
	c.JSON(httpCode, gin.H{"error": userMsg})
}

// respondError maps domain errors onto status codes; unknown errors become 500.
func (h *Handler) respondError(c *gin.Context, logKey string, err error, kv ...interface{}) {
	var (
		code int
		msg  string
	)
	switch {
	case errors.Is(err, repository.ErrFAQNotFound):
		code, msg = http.StatusNotFound, errFAQNotFound
	case errors.Is(err, repository.ErrUsernameTaken):
		code, msg = http.StatusBadRequest, errUsernameTaken
	case errors.Is(err, service.ErrInvalidCredentials):
		code, msg = http.StatusUnauthorized, errInvalidCredentials
	case errors.Is(err, service.ErrEmptyPassword), errors.Is(err, service.ErrInvalidFAQ):
		code, msg = http.StatusBadRequest, err.Error()
	case errors.Is(err, translator.ErrUpstream):
		h.logAndJSONError(c, http.StatusBadGateway, errUpstream, logKey, err, kv...)
		return
	default:
		h.logAndJSONError(c, http.StatusInternalServerError, errInternal, logKey, err, kv...)
		return
	}

	if h.log != nil {
		fields := append([]interface{}{"err", err}, kv...)
		h.log.Infow(logKey, fields...)
	}
	c.JSON(code, gin.H{"error": msg})
}

// bindJSONOrBadRequest tries to bind the request body into dst and writes a 400 JSON on failure.
// Returns false if the request was already handled (aborted), true otherwise.
func (h *Handler) bindJSONOrBadRequest(c *gin.Context, dst any) bool {
	if err := c.ShouldBindJSON(dst); err != nil {
		if h.log != nil {
			h.log.Infow("bad_request_body", "path", c.FullPath(), "err", err)
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": errInvalidBodyPref + err.Error()})
		return false
	}
	return true
}
