package sdlrpc

import (
	"fmt"
	"math"

	"github.com/danderson/sdlrpc/wire"
)

// Keys of the inner envelope object. The outer object has a single
// member, whose key is the message kind.
const (
	envelopeName          = "name"
	envelopeCorrelationID = "correlationID"
	envelopeParameters    = "parameters"
)

// Envelope returns the wire mapping of m:
//
//	{"request": {"name": "GetVehicleData", "correlationID": 7, "parameters": {...}}}
//
// The returned mapping holds m's parameters directly rather than a
// copy, and must not be changed.
func (m *Message) Envelope() *Params {
	inner := NewParams()
	inner.Set(envelopeName, String(m.fn.String()))
	if id, ok := m.corr.GetOK(); ok {
		inner.Set(envelopeCorrelationID, Int(int64(id)))
	}
	inner.Set(envelopeParameters, Struct(m.params))

	ret := NewParams()
	ret.Set(m.kind.String(), Struct(inner))
	return ret
}

// MarshalJSON encodes m's wire envelope, without validating it. Use
// [Marshal] to validate and seal a message before encoding it.
func (m *Message) MarshalJSON() ([]byte, error) {
	if err := m.checkEncodable(); err != nil {
		return nil, err
	}
	var e wire.Encoder
	if err := encodeParams(&e, m.Envelope()); err != nil {
		return nil, fmt.Errorf("encoding %s %s: %w", m.fn, m.kind, err)
	}
	return e.Out, nil
}

func (m *Message) checkEncodable() error {
	if !m.fn.Known() {
		return fmt.Errorf("encoding message: %w %d", ErrUnknownFunction, int32(m.fn))
	}
	if _, ok := messageKindToStr[m.kind]; !ok {
		return fmt.Errorf("encoding %s: invalid message kind %d", m.fn, m.kind)
	}
	if m.kind != Notification && !m.corr.Present() {
		return fmt.Errorf("encoding %s %s: %w", m.fn, m.kind, ErrMissingCorrelation)
	}
	return nil
}

// Marshal seals m and returns its JSON wire encoding. If m does not
// pass validation, Marshal returns the [*ValidationError] and leaves m
// unsealed.
//
// A message that was sealed without validation, such as one returned
// by [Decode], is validated on every call to Marshal.
func Marshal(m *Message) ([]byte, error) {
	if err := m.checkEncodable(); err != nil {
		return nil, err
	}
	if m.Sealed() && !m.checked {
		if err := m.Validate(); err != nil {
			return nil, err
		}
	} else if err := m.Seal(); err != nil {
		return nil, err
	}
	return m.MarshalJSON()
}

// Decode parses the JSON wire encoding of a message. The returned
// message is sealed.
//
// Decode does not validate the message's parameters. Unknown
// parameters, and known parameters with unexpected values, are kept
// as they are for typed accessors and [Params.Keys] to inspect.
func Decode(bs []byte) (*Message, error) {
	d := wire.NewBytesDecoder(bs)
	if _, err := d.Expect(wire.ObjectStart); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformedEnvelope, err)
	}
	env, err := decodeParams(d)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformedEnvelope, err)
	}
	if err := d.End(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformedEnvelope, err)
	}
	return parseEnvelope(env, false)
}

// ParseEnvelope returns the message described by the wire mapping
// env, in the format produced by [Message.Envelope]. The returned
// message is sealed, and holds a copy of env's parameters.
//
// Members of the inner envelope other than name, correlationID and
// parameters are ignored, as is a correlationID on a notification.
func ParseEnvelope(env *Params) (*Message, error) {
	return parseEnvelope(env, true)
}

func parseEnvelope(env *Params, clone bool) (*Message, error) {
	if env.Len() != 1 {
		return nil, fmt.Errorf("%w: got %d top-level members, want 1", ErrMalformedEnvelope, env.Len())
	}
	kindName := env.keys[0]
	kind, err := ParseMessageKind(kindName)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformedEnvelope, err)
	}
	inner, ok := env.Get(kindName, KindStruct).GetOK()
	if !ok {
		return nil, fmt.Errorf("%w: %s is not an object", ErrMalformedEnvelope, kindName)
	}
	fields, _ := inner.AsStruct()

	nameVal, ok := fields.Get(envelopeName, KindString).GetOK()
	if !ok {
		return nil, fmt.Errorf("%w: missing function name", ErrMalformedEnvelope)
	}
	name, _ := nameVal.AsString()
	fn, err := ParseFunctionID(name)
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", kind, err)
	}

	ret := &Message{fn: fn, kind: kind}
	if kind != Notification {
		raw, ok := fields.Lookup(envelopeCorrelationID)
		if !ok {
			return nil, fmt.Errorf("%w: %s %s has no correlation ID", ErrMalformedEnvelope, fn, kind)
		}
		id, ok := raw.AsInt()
		if !ok {
			return nil, fmt.Errorf("%w: %s %s correlation ID %s is not an integer", ErrMalformedEnvelope, fn, kind, raw)
		}
		if id < math.MinInt32 || id > math.MaxInt32 {
			return nil, fmt.Errorf("%w: %s %s correlation ID %d out of range", ErrMalformedEnvelope, fn, kind, id)
		}
		if err := ret.SetCorrelationID(int32(id)); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrMalformedEnvelope, err)
		}
	}

	params := NewParams()
	if raw, ok := fields.Lookup(envelopeParameters); ok {
		p, ok := raw.AsStruct()
		if !ok {
			return nil, fmt.Errorf("%w: %s %s parameters are not an object", ErrMalformedEnvelope, fn, kind)
		}
		if clone {
			p = p.Clone()
		}
		params = p
	}
	params.seal()
	ret.params = params
	return ret, nil
}
