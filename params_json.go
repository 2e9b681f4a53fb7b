package sdlrpc

import (
	"fmt"

	"github.com/danderson/sdlrpc/wire"
)

// MarshalJSON encodes p as a JSON object, with members in insertion
// order.
func (p *Params) MarshalJSON() ([]byte, error) {
	var e wire.Encoder
	if err := encodeParams(&e, p); err != nil {
		return nil, err
	}
	return e.Out, nil
}

func encodeParams(e *wire.Encoder, p *Params) error {
	return e.Object(func() error {
		for k, v := range p.All() {
			if err := e.Key(k); err != nil {
				return err
			}
			if err := encodeValue(e, v); err != nil {
				return fmt.Errorf("encoding %q: %w", k, err)
			}
		}
		return nil
	})
}

func encodeValue(e *wire.Encoder, v Value) error {
	switch v.kind {
	case KindInvalid:
		e.Null()
	case KindBool:
		e.Bool(v.b)
	case KindInt:
		e.Int(v.i)
	case KindFloat:
		return e.Float(v.f)
	case KindString:
		e.String(v.s)
	case KindStruct:
		return encodeParams(e, v.p)
	case KindList:
		return e.Array(func() error {
			for i, el := range v.l {
				if err := encodeValue(e, el); err != nil {
					return fmt.Errorf("element %d: %w", i, err)
				}
			}
			return nil
		})
	default:
		return fmt.Errorf("unknown value kind %v", v.kind)
	}
	return nil
}

// UnmarshalJSON replaces the contents of p with the members of the
// JSON object bs, in document order.
//
// Null members are absent. Null list elements are dropped. Numbers
// without a fractional part or exponent that fit in an int64 decode
// as integers, all others as floats. If a key appears more than once,
// the last value wins and the key keeps its first position.
//
// UnmarshalJSON panics if p is sealed.
func (p *Params) UnmarshalJSON(bs []byte) error {
	d := wire.NewBytesDecoder(bs)
	if _, err := d.Expect(wire.ObjectStart); err != nil {
		return fmt.Errorf("decoding parameters: %w", err)
	}
	ret, err := decodeParams(d)
	if err != nil {
		return fmt.Errorf("decoding parameters: %w", err)
	}
	if err := d.End(); err != nil {
		return fmt.Errorf("decoding parameters: %w", err)
	}
	p.mutate()
	p.keys, p.vals = ret.keys, ret.vals
	return nil
}

// decodeParams reads the body of an object whose opening brace has
// been consumed.
func decodeParams(d *wire.Decoder) (*Params, error) {
	ret := NewParams()
	err := d.ObjectBody(func(key string) error {
		v, err := decodeValue(d)
		if err != nil {
			return fmt.Errorf("decoding %q: %w", key, err)
		}
		ret.Set(key, v)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return ret, nil
}

func decodeValue(d *wire.Decoder) (Value, error) {
	tok, err := d.Token()
	if err != nil {
		return Value{}, err
	}
	switch tok.Kind {
	case wire.Null:
		return Value{}, nil
	case wire.Bool:
		return Bool(tok.Bool), nil
	case wire.Number:
		if i, ok := tok.Int(); ok {
			return Int(i), nil
		}
		f, err := tok.Float()
		if err != nil {
			return Value{}, err
		}
		return Float(f), nil
	case wire.String:
		return String(tok.Text), nil
	case wire.ObjectStart:
		p, err := decodeParams(d)
		if err != nil {
			return Value{}, err
		}
		return Struct(p), nil
	case wire.ArrayStart:
		var l []Value
		_, err := d.ArrayBody(func(idx int) error {
			v, err := decodeValue(d)
			if err != nil {
				return fmt.Errorf("element %d: %w", idx, err)
			}
			l = append(l, v)
			return nil
		})
		if err != nil {
			return Value{}, err
		}
		return List(l...), nil
	default:
		return Value{}, fmt.Errorf("unexpected %s", tok.Kind)
	}
}
