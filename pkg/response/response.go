package response

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	pkgErrors "notes-client/pkg/errors"
)

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

// Error sends an error response. An *errors.HTTPError picks the status code;
// any other error is treated as a bad request.
func Error(c *gin.Context, err error) {
	var httpErr *pkgErrors.HTTPError
	if errors.As(err, &httpErr) {
		c.JSON(httpErr.StatusCode(), Resp{
			ErrorCode: httpErr.StatusCode(),
			Message:   httpErr.Message,
		})
		return
	}

	c.JSON(http.StatusBadRequest, Resp{
		ErrorCode: 1,
		Message:   err.Error(),
	})
}

// ErrorWithData sends an error response carrying an extra payload, e.g. the
// view state left in place after a failed mutation.
func ErrorWithData(c *gin.Context, err error, data any) {
	status := http.StatusBadRequest
	code := 1
	msg := err.Error()

	var httpErr *pkgErrors.HTTPError
	if errors.As(err, &httpErr) {
		status = httpErr.StatusCode()
		code = status
		msg = httpErr.Message
	}

	c.JSON(status, Resp{
		ErrorCode: code,
		Message:   msg,
		Data:      data,
	})
}

// TooManyRequests aborts the chain with a 429 response.
func TooManyRequests(c *gin.Context) {
	err := pkgErrors.ErrTooManyRequests
	c.AbortWithStatusJSON(err.StatusCode(), Resp{
		ErrorCode: err.StatusCode(),
		Message:   err.Message,
	})
}
