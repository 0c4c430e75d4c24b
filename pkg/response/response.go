package response

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"school-assistant/pkg/log"
)

// Resp is the standard JSON response body. RequestID is set on failures so
// a caller can quote it when reporting a problem.
type Resp struct {
	ErrorCode int    `json:"error_code"`
	Message   string `json:"message"`
	RequestID string `json:"request_id,omitempty"`
	Data      any    `json:"data,omitempty"`
	Errors    any    `json:"errors,omitempty"`
}

// NewOKResp returns a new OK response with the given data.
func NewOKResp(data any) Resp {
	return Resp{
		ErrorCode: 0,
		Message:   MessageSuccess,
		Data:      data,
	}
}

// OK sends 200 JSON with data.
func OK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, NewOKResp(data))
}

// Error sends 400 with the error text as message.
func Error(c *gin.Context, err error, data map[string]any) {
	if data == nil {
		data = make(map[string]any)
	}

	c.JSON(http.StatusBadRequest, Resp{
		ErrorCode: 1,
		Message:   err.Error(),
		RequestID: requestID(c),
		Data:      data,
	})
}

// InternalError sends 500 without exposing err.
func InternalError(c *gin.Context, err error) {
	c.JSON(http.StatusInternalServerError, Resp{
		ErrorCode: InternalServerErrorCode,
		Message:   DefaultErrorMessage,
		RequestID: requestID(c),
	})
}

// Unavailable sends 503 with data describing what is down.
func Unavailable(c *gin.Context, data any) {
	c.JSON(http.StatusServiceUnavailable, Resp{
		ErrorCode: ServiceUnavailableCode,
		Message:   "Service unavailable",
		RequestID: requestID(c),
		Data:      data,
	})
}

// Unauthorized sends 401 response.
func Unauthorized(c *gin.Context) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, Resp{
		ErrorCode: UnauthorizedCode,
		Message:   "Unauthorized",
		RequestID: requestID(c),
	})
}

// TooManyRequests aborts with 429.
func TooManyRequests(c *gin.Context) {
	c.AbortWithStatusJSON(http.StatusTooManyRequests, Resp{
		ErrorCode: TooManyRequestsCode,
		Message:   "Too many requests, slow down",
		RequestID: requestID(c),
	})
}

func requestID(c *gin.Context) string {
	if c.Request == nil {
		return ""
	}
	return log.RequestID(c.Request.Context())
}
