package messages

import (
	"github.com/creachadair/mds/value"
	"github.com/danderson/sdlrpc"
)

var (
	respSuccess    = sdlrpc.BoolField("success")
	respResultCode = sdlrpc.EnumField[Result]("resultCode")
	respInfo       = sdlrpc.StringField("info")
)

// Response holds the parameters common to all responses.
type Response struct{ *sdlrpc.Message }

// NewResponse returns a response to the fn request with the given
// correlation ID.
func NewResponse(fn sdlrpc.FunctionID, correlationID int32) Response {
	return Response{sdlrpc.NewResponse(fn, correlationID)}
}

// AsResponse returns m as a Response, if m is a response.
func AsResponse(m *sdlrpc.Message) (Response, bool) {
	if m.Kind() != sdlrpc.Response {
		return Response{}, false
	}
	return Response{m}, true
}

// Success reports whether the request succeeded.
func (r Response) Success() value.Maybe[bool] { return respSuccess.Get(r) }
func (r Response) SetSuccess(v bool)          { respSuccess.Set(r, v) }

// ResultCode is the detailed outcome of the request.
func (r Response) ResultCode() value.Maybe[Result] { return respResultCode.Get(r) }
func (r Response) SetResultCode(v Result)          { respResultCode.Set(r, v) }

// Info is a human-readable description of the result.
func (r Response) Info() value.Maybe[string] { return respInfo.Get(r) }
func (r Response) SetInfo(v string)          { respInfo.Set(r, v) }

// SetResult sets the success flag and result code together. Success
// is true exactly when code is ResultSuccess.
func (r Response) SetResult(code Result) {
	r.SetSuccess(code == ResultSuccess)
	r.SetResultCode(code)
}
