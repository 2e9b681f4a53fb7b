package messages

import (
	"github.com/creachadair/mds/value"
	"github.com/danderson/sdlrpc"
)

var (
	srFileName       = sdlrpc.StringField("fileName")
	srRequestType    = sdlrpc.EnumField[RequestType]("requestType")
	srRequestSubType = sdlrpc.StringField("requestSubType")
	srData           = sdlrpc.ListField("data", sdlrpc.StringCodec)
	srLegacyData     = sdlrpc.ListField("legacyData", sdlrpc.StringCodec)
)

// SystemRequest sends data from the mobile application to the head
// unit on behalf of a remote service, for example a policy table
// update or an authentication exchange.
type SystemRequest struct{ *sdlrpc.Message }

// NewSystemRequest returns an empty SystemRequest. The request type
// must be set before the request can be sent.
func NewSystemRequest() SystemRequest {
	return SystemRequest{sdlrpc.NewRequest(sdlrpc.SystemRequest)}
}

// NewSystemRequestWithType returns a SystemRequest of the given
// request type.
func NewSystemRequestWithType(typ RequestType) SystemRequest {
	ret := NewSystemRequest()
	ret.SetRequestType(typ)
	return ret
}

// NewLegacySystemRequest returns an empty SystemRequest for head units
// that predate SystemRequest. The message is sent as an
// EncodedSyncPData request, with the same parameters.
func NewLegacySystemRequest() SystemRequest {
	return SystemRequest{sdlrpc.NewRequest(sdlrpc.EncodedSyncPData)}
}

// AsSystemRequest returns m as a SystemRequest, if m is a
// SystemRequest or EncodedSyncPData request.
func AsSystemRequest(m *sdlrpc.Message) (SystemRequest, bool) {
	if m.Kind() != sdlrpc.Request {
		return SystemRequest{}, false
	}
	switch m.Function() {
	case sdlrpc.SystemRequest, sdlrpc.EncodedSyncPData:
		return SystemRequest{m}, true
	default:
		return SystemRequest{}, false
	}
}

// Legacy reports whether r is sent as EncodedSyncPData.
func (r SystemRequest) Legacy() bool {
	return r.Function() == sdlrpc.EncodedSyncPData
}

// FileName is the name of the file that the head unit should store
// the data in, if any.
func (r SystemRequest) FileName() value.Maybe[string] { return srFileName.Get(r) }
func (r SystemRequest) SetFileName(v string)          { srFileName.Set(r, v) }

func (r SystemRequest) RequestType() value.Maybe[RequestType] { return srRequestType.Get(r) }
func (r SystemRequest) SetRequestType(v RequestType)          { srRequestType.Set(r, v) }

// RequestSubType further qualifies a PROPRIETARY or OEM_SPECIFIC
// request type.
func (r SystemRequest) RequestSubType() value.Maybe[string] { return srRequestSubType.Get(r) }
func (r SystemRequest) SetRequestSubType(v string)          { srRequestSubType.Set(r, v) }

// Data is the request's payload, as a list of strings.
func (r SystemRequest) Data() value.Maybe[[]string] { return srData.Get(r) }
func (r SystemRequest) SetData(v []string)          { srData.Set(r, v) }

// LegacyData is the same parameter as Data.
//
// Deprecated: use Data.
func (r SystemRequest) LegacyData() value.Maybe[[]string] { return srLegacyData.Get(r) }

// SetLegacyData sets the same parameter as SetData.
//
// Deprecated: use SetData.
func (r SystemRequest) SetLegacyData(v []string) { srLegacyData.Set(r, v) }
