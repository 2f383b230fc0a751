package response

import (
	"fmt"
	"net/http"

	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Err is the error body of every failed request: {"error": "..."}.
type Err struct {
	Err            error  `json:"-"`
	HTTPStatusCode int    `json:"-"`
	Message        string `json:"error" example:"stand with id=S-SP-9 not found"`
}

func (e *Err) Error() string {
	return e.Message
}

// RenderErr aborts the request with e. Server errors are logged with the
// request id; their cause is not sent to the client.
func RenderErr(ctx *gin.Context, e *Err) {
	if e.HTTPStatusCode >= http.StatusInternalServerError {
		zap.L().Error("request failed",
			zap.String("request_id", requestid.Get(ctx)),
			zap.String("method", ctx.Request.Method),
			zap.String("route", ctx.FullPath()),
			zap.Error(e.Err),
		)
	}

	ctx.AbortWithStatusJSON(e.HTTPStatusCode, e)
}

func ErrBadRequest(err error) *Err {
	return &Err{
		Err:            err,
		HTTPStatusCode: http.StatusBadRequest,
		Message:        err.Error(),
	}
}

func ErrNotFound(resource, key string, value any) *Err {
	err := fmt.Errorf("%v with %v=%v not found", resource, key, value)

	return &Err{
		Err:            err,
		HTTPStatusCode: http.StatusNotFound,
		Message:        err.Error(),
	}
}

func ErrConflict(err error) *Err {
	return &Err{
		Err:            err,
		HTTPStatusCode: http.StatusConflict,
		Message:        err.Error(),
	}
}

func ErrInternalServerError(err error) *Err {
	return &Err{
		Err:            err,
		HTTPStatusCode: http.StatusInternalServerError,
		Message:        http.StatusText(http.StatusInternalServerError),
	}
}
