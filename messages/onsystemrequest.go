package messages

import (
	"github.com/creachadair/mds/value"
	"github.com/danderson/sdlrpc"
)

var (
	osrRequestType    = sdlrpc.EnumField[RequestType]("requestType")
	osrRequestSubType = sdlrpc.StringField("requestSubType")
	osrURL            = sdlrpc.StringField("url")
	osrTimeout        = sdlrpc.IntField("timeout")
	osrFileType       = sdlrpc.EnumField[FileType]("fileType")
	osrOffset         = sdlrpc.IntField("offset")
	osrLength         = sdlrpc.IntField("length")
)

// OnSystemRequest asks the mobile application to relay data between
// the head unit and a remote service. The application usually answers
// with a SystemRequest of the same request type.
type OnSystemRequest struct{ *sdlrpc.Message }

// NewOnSystemRequest returns an OnSystemRequest notification of the
// given request type.
func NewOnSystemRequest(typ RequestType) OnSystemRequest {
	ret := OnSystemRequest{sdlrpc.NewNotification(sdlrpc.OnSystemRequest)}
	ret.SetRequestType(typ)
	return ret
}

// AsOnSystemRequest returns m as an OnSystemRequest, if m is an
// OnSystemRequest notification.
func AsOnSystemRequest(m *sdlrpc.Message) (OnSystemRequest, bool) {
	if m.Function() != sdlrpc.OnSystemRequest || m.Kind() != sdlrpc.Notification {
		return OnSystemRequest{}, false
	}
	return OnSystemRequest{m}, true
}

func (n OnSystemRequest) RequestType() value.Maybe[RequestType] { return osrRequestType.Get(n) }
func (n OnSystemRequest) SetRequestType(v RequestType)          { osrRequestType.Set(n, v) }

func (n OnSystemRequest) RequestSubType() value.Maybe[string] { return osrRequestSubType.Get(n) }
func (n OnSystemRequest) SetRequestSubType(v string)          { osrRequestSubType.Set(n, v) }

// URL is where the application should send the request's data.
func (n OnSystemRequest) URL() value.Maybe[string] { return osrURL.Get(n) }
func (n OnSystemRequest) SetURL(v string)          { osrURL.Set(n, v) }

// Timeout is how long the application should wait for the remote
// service, in seconds.
func (n OnSystemRequest) Timeout() value.Maybe[int64] { return osrTimeout.Get(n) }
func (n OnSystemRequest) SetTimeout(v int64)          { osrTimeout.Set(n, v) }

func (n OnSystemRequest) FileType() value.Maybe[FileType] { return osrFileType.Get(n) }
func (n OnSystemRequest) SetFileType(v FileType)          { osrFileType.Set(n, v) }

// Offset and Length locate a chunk of a larger file, for transfers
// split over several notifications.
func (n OnSystemRequest) Offset() value.Maybe[int64] { return osrOffset.Get(n) }
func (n OnSystemRequest) SetOffset(v int64)          { osrOffset.Set(n, v) }

func (n OnSystemRequest) Length() value.Maybe[int64] { return osrLength.Get(n) }
func (n OnSystemRequest) SetLength(v int64)          { osrLength.Set(n, v) }
