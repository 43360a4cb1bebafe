package httperr

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

const (
	CodeRequestFailed = "request_failed"
	CodeUnauthorized  = "unauthorized"
	CodeInvalidInput  = "invalid_request"

	// ContextErrorCode holds the error_code of the response, for logging.
	ContextErrorCode = "error_code"
)

type HTTPError struct {
	Message string `json:"error"`
	Code    string `json:"error_code"`
	Details any    `json:"details,omitempty"`
}

// Mapping describes how a business code is rendered.
type Mapping struct {
	Status  int
	Message string
}

func Write(c *gin.Context, status int, code, message string) {
	c.Set(ContextErrorCode, code)
	c.JSON(status, HTTPError{
		Code:    code,
		Message: message,
	})
}

func BadRequest(c *gin.Context, code, message string) {
	Write(c, http.StatusBadRequest, code, message)
}

func Unauthorized(c *gin.Context) {
	c.Set(ContextErrorCode, CodeUnauthorized)
	c.AbortWithStatusJSON(http.StatusUnauthorized, HTTPError{
		Code:    CodeUnauthorized,
		Message: "Unauthorized",
	})
}

func TooManyRequests(c *gin.Context) {
	c.Set(ContextErrorCode, "rate_limited")
	c.AbortWithStatusJSON(http.StatusTooManyRequests, HTTPError{
		Code:    "rate_limited",
		Message: "Too many requests",
	})
}

func Invalid(c *gin.Context, details any) {
	c.Set(ContextErrorCode, CodeInvalidInput)
	c.JSON(http.StatusBadRequest, HTTPError{
		Code:    CodeInvalidInput,
		Message: "Invalid request body",
		Details: details,
	})
}

// Respond renders err through known. Errors without a mapping never reach
// the client: they are attached to the gin context for the access log and
// answered with a generic 400.
func Respond(c *gin.Context, err error, known map[string]Mapping) {
	if code := CodeOf(err); code != "" {
		if m, ok := known[code]; ok {
			Write(c, m.Status, code, m.Message)
			return
		}
	}
	_ = c.Error(err)
	BadRequest(c, CodeRequestFailed, "Request could not be processed")
}
