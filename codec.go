package sdlrpc

// A Codec converts between a parameter [Value] and a Go type T.
type Codec[T any] struct {
	// Decode returns v as a T. ok is false if v cannot be read as a T.
	Decode func(v Value) (ret T, ok bool)
	// Encode returns the Value representation of t.
	Encode func(t T) Value
}

var (
	// BoolCodec reads and writes booleans.
	BoolCodec = Codec[bool]{
		Decode: Value.AsBool,
		Encode: Bool,
	}

	// IntCodec reads and writes integers.
	IntCodec = Codec[int64]{
		Decode: Value.AsInt,
		Encode: Int,
	}

	// FloatCodec reads and writes floats. It also reads integers,
	// widened to float64.
	FloatCodec = Codec[float64]{
		Decode: Value.AsFloat,
		Encode: Float,
	}

	// StringCodec reads and writes strings.
	StringCodec = Codec[string]{
		Decode: Value.AsString,
		Encode: String,
	}
)

// EnumCodec returns a Codec for the enum type E.
//
// Tokens are stored as strings, and matched exactly against E's valid
// tokens when read. Tokens that E does not know, for example ones
// introduced by a newer protocol version, read as absent.
func EnumCodec[E Enum]() Codec[E] {
	return Codec[E]{
		Decode: func(v Value) (E, bool) {
			s, ok := v.AsString()
			if !ok || !E(s).Valid() {
				var zero E
				return zero, false
			}
			return E(s), true
		},
		Encode: func(e E) Value {
			return String(string(e))
		},
	}
}

// A Structure is a typed view over a nested parameter store, usually
// a struct type holding the store in an unexported field:
//
//	type Image struct{ p *sdlrpc.Params }
//
//	func (i Image) Params() *sdlrpc.Params { return i.p }
//
// Nested structures have no legacy parameter names. The zero value of
// such a type holds no store, and its setters panic.
type Structure interface {
	Holder
}

// StructCodec returns a Codec for the structure type T.
//
// wrap constructs a T over a nested store. T's own accessors then read
// and write the nested store directly, so structures nest to any
// depth. Encoding a T stores its underlying Params, which from then
// on belongs to the containing store.
func StructCodec[T Structure](wrap func(*Params) T) Codec[T] {
	return Codec[T]{
		Decode: func(v Value) (T, bool) {
			p, ok := v.AsStruct()
			if !ok {
				var zero T
				return zero, false
			}
			return wrap(p), true
		},
		Encode: func(t T) Value {
			return Struct(t.Params())
		},
	}
}

// ListCodec returns a Codec for lists whose elements use elem.
//
// Elements that elem cannot decode are dropped, and the remaining
// elements are returned in order. A list in which no element decodes
// reads as an empty, present list. A value that is not a list does
// not decode, a single element is not promoted to a list.
func ListCodec[T any](elem Codec[T]) Codec[[]T] {
	return Codec[[]T]{
		Decode: func(v Value) ([]T, bool) {
			l, ok := v.AsList()
			if !ok {
				return nil, false
			}
			ret := make([]T, 0, len(l))
			for _, e := range l {
				if t, ok := elem.Decode(e); ok {
					ret = append(ret, t)
				}
			}
			return ret, true
		},
		Encode: func(ts []T) Value {
			l := make([]Value, len(ts))
			for i, t := range ts {
				l[i] = elem.Encode(t)
			}
			return List(l...)
		},
	}
}
