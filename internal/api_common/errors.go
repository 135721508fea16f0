package api_common

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
)

// HttpStatusError lets inner code choose the HTTP status of a failure. The internal error stays in logs and debug
// output; only the response message is returned to callers.
type HttpStatusError struct {
	Status      int
	ResponseMsg string
	InternalErr error
}

func (e *HttpStatusError) Error() string {
	if e.InternalErr != nil {
		return e.InternalErr.Error()
	}

	if e.ResponseMsg != "" {
		return e.ResponseMsg
	}

	if e.Status != 0 {
		return fmt.Sprintf("HTTP %d: %s", e.Status, http.StatusText(e.Status))
	}

	return "unknown error"
}

func (e *HttpStatusError) Unwrap() error {
	return e.InternalErr
}

func (e *HttpStatusError) ResponseMsgOrDefault() string {
	if e.ResponseMsg != "" {
		return e.ResponseMsg
	}

	return http.StatusText(e.Status)
}

// ErrorResponse is the JSON body of every error returned by the API.
type ErrorResponse struct {
	Error      string `json:"error"`
	StackTrace string `json:"stack_trace,omitempty"`
}

func (e *HttpStatusError) toErrorResponse(cfg Debuggable) *ErrorResponse {
	resp := &ErrorResponse{
		Error: e.ResponseMsgOrDefault(),
	}

	if cfg != nil && cfg.IsDebugMode() && e.InternalErr != nil {
		resp.StackTrace = fmt.Sprintf("%+v", e.InternalErr)
	}

	return resp
}

func (e *HttpStatusError) WriteGinResponse(cfg Debuggable, gctx *gin.Context) {
	if e.InternalErr != nil {
		AddGinDebugHeaderError(cfg, gctx, e.InternalErr)
	}

	gctx.PureJSON(e.Status, e.toErrorResponse(cfg))
}

// AsHttpStatusError wraps err in a status error, carrying over the status of any status error inside it. Errors
// without one become a 500.
func AsHttpStatusError(err error) *HttpStatusError {
	return NewHttpStatusErrorBuilder().
		WithInternalErr(err).
		BuildStatusError()
}

type HttpStatusErrorBuilder interface {
	// WithStatus sets the http status of the error to a specific value
	WithStatus(status int) HttpStatusErrorBuilder

	WithStatusNotFound() HttpStatusErrorBuilder
	WithStatusBadRequest() HttpStatusErrorBuilder
	WithStatusInternalServerError() HttpStatusErrorBuilder

	// DefaultStatus sets the http status of error if it has not already been set to a value other than 500
	DefaultStatus(status int) HttpStatusErrorBuilder

	DefaultStatusNotFound() HttpStatusErrorBuilder
	DefaultStatusBadRequest() HttpStatusErrorBuilder

	WithResponseMsg(msg string) HttpStatusErrorBuilder
	WithResponseMsgf(format string, args ...interface{}) HttpStatusErrorBuilder
	DefaultResponseMsg(msg string) HttpStatusErrorBuilder
	WithInternalErr(err error) HttpStatusErrorBuilder
	WithWrappedInternalErrf(err error, msg string, args ...interface{}) HttpStatusErrorBuilder
	BuildStatusError() *HttpStatusError
	Build() error
}

type httpStatusErrorBuilder struct {
	err *HttpStatusError
}

func NewHttpStatusErrorBuilder() HttpStatusErrorBuilder {
	return &httpStatusErrorBuilder{
		err: &HttpStatusError{
			Status: http.StatusInternalServerError,
		},
	}
}

func (b *httpStatusErrorBuilder) WithStatus(status int) HttpStatusErrorBuilder {
	b.err.Status = status
	return b
}

func (b *httpStatusErrorBuilder) WithStatusNotFound() HttpStatusErrorBuilder {
	return b.WithStatus(http.StatusNotFound)
}

func (b *httpStatusErrorBuilder) WithStatusBadRequest() HttpStatusErrorBuilder {
	return b.WithStatus(http.StatusBadRequest)
}

func (b *httpStatusErrorBuilder) WithStatusInternalServerError() HttpStatusErrorBuilder {
	return b.WithStatus(http.StatusInternalServerError)
}

func (b *httpStatusErrorBuilder) DefaultStatus(status int) HttpStatusErrorBuilder {
	if b.err.Status == 0 || b.err.Status == http.StatusInternalServerError {
		b.err.Status = status
	}

	return b
}

func (b *httpStatusErrorBuilder) DefaultStatusNotFound() HttpStatusErrorBuilder {
	return b.DefaultStatus(http.StatusNotFound)
}

func (b *httpStatusErrorBuilder) DefaultStatusBadRequest() HttpStatusErrorBuilder {
	return b.DefaultStatus(http.StatusBadRequest)
}

func (b *httpStatusErrorBuilder) WithResponseMsg(msg string) HttpStatusErrorBuilder {
	b.err.ResponseMsg = msg
	return b
}

func (b *httpStatusErrorBuilder) WithResponseMsgf(format string, args ...interface{}) HttpStatusErrorBuilder {
	return b.WithResponseMsg(fmt.Sprintf(format, args...))
}

func (b *httpStatusErrorBuilder) DefaultResponseMsg(msg string) HttpStatusErrorBuilder {
	if b.err.ResponseMsg == "" {
		b.err.ResponseMsg = msg
	}
	return b
}

// WithInternalErr records err. If err wraps a status error, its status and response message carry over.
func (b *httpStatusErrorBuilder) WithInternalErr(err error) HttpStatusErrorBuilder {
	var statusErr *HttpStatusError
	if errors.As(err, &statusErr) {
		b.err.ResponseMsg = statusErr.ResponseMsg
		b.err.Status = statusErr.Status
	}

	b.err.InternalErr = err
	return b
}

func (b *httpStatusErrorBuilder) WithWrappedInternalErrf(err error, msg string, args ...interface{}) HttpStatusErrorBuilder {
	b.WithInternalErr(err)
	b.err.InternalErr = errors.Wrapf(b.err.InternalErr, msg, args...)
	return b
}

func (b *httpStatusErrorBuilder) BuildStatusError() *HttpStatusError {
	return b.err
}

func (b *httpStatusErrorBuilder) Build() error {
	return b.BuildStatusError()
}

// HttpStatusErrorContains reports whether err is a status error mentioning s in its response message or internal
// error. Intended for tests.
func HttpStatusErrorContains(err error, s string) bool {
	var he *HttpStatusError
	if errors.As(err, &he) {
		if strings.Contains(he.ResponseMsg, s) {
			return true
		}

		if he.InternalErr != nil && strings.Contains(he.InternalErr.Error(), s) {
			return true
		}
	}

	return false
}

// HttpStatusErrorIsStatusCode reports whether err is a status error with the given status. Intended for tests.
func HttpStatusErrorIsStatusCode(err error, statusCode int) bool {
	var he *HttpStatusError
	return errors.As(err, &he) && he.Status == statusCode
}
