package httperr

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

type HTTPError struct {
	Code    string `json:"error_code"`
	Message string `json:"message"`
}

func Write(c *gin.Context, status int, code, message string) {
	c.JSON(status, HTTPError{
		Code:    code,
		Message: message,
	})
}

func BadRequest(c *gin.Context, code, message string) {
	Write(c, http.StatusBadRequest, code, message)
}

func NotFound(c *gin.Context, code, message string) {
	Write(c, http.StatusNotFound, code, message)
}

func Conflict(c *gin.Context, code, message string) {
	Write(c, http.StatusConflict, code, message)
}

func Internal(c *gin.Context, code, message string) {
	Write(c, http.StatusInternalServerError, code, message)
}

func Unauthorized(c *gin.Context, code, message string) {
	Write(c, http.StatusUnauthorized, code, message)
}

// FromError writes err as a response. Business errors keep their code,
// everything else is reported as internal with fallbackCode.
func FromError(c *gin.Context, err error, fallbackCode string) {
	be, ok := AsBusiness(err)
	if !ok {
		_ = c.Error(err)
		Internal(c, fallbackCode, "Unexpected error.")
		return
	}

	msg := be.Message
	if msg == "" {
		msg = be.Code
	}

	Write(c, StatusFor(be.Code), be.Code, msg)
}

// StatusFor maps a business code to its HTTP status.
func StatusFor(code string) int {
	switch {
	case strings.HasSuffix(code, "_not_found"):
		return http.StatusNotFound
	case strings.HasPrefix(code, "overlapping_"), strings.HasPrefix(code, "duplicate_"):
		return http.StatusConflict
	default:
		return http.StatusBadRequest
	}
}
