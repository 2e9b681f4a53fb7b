package sdlrpc

import "github.com/creachadair/mds/value"

// A Holder is anything that owns a parameter store. [*Message] and
// [*Params] are Holders, as are message types that embed a *Message
// and structure types.
type Holder interface {
	// Params returns the holder's parameter store.
	Params() *Params
}

// An Aliaser is a Holder with legacy parameter names.
type Aliaser interface {
	Holder
	// CanonicalKey returns the key under which the parameter named
	// key is stored. For a legacy name, that is the name of its
	// replacement, for all other names it is key itself.
	CanonicalKey(key string) string
}

// canonical returns the key under which h stores the parameter named
// key.
func canonical(h Holder, key string) string {
	if a, ok := h.(Aliaser); ok {
		return a.CanonicalKey(key)
	}
	return key
}

// A Field is a typed accessor for one parameter.
//
// All Field operations on an [Aliaser] resolve the field's key through
// its alias table first, so a Field declared with a legacy name reads and
// writes the same slot as one declared with the canonical name.
type Field[T any] struct {
	Key   string
	Codec Codec[T]
}

// NewField returns a Field for key, using codec.
func NewField[T any](key string, codec Codec[T]) Field[T] {
	return Field[T]{key, codec}
}

// BoolField returns a boolean Field for key.
func BoolField(key string) Field[bool] { return Field[bool]{key, BoolCodec} }

// IntField returns an integer Field for key.
func IntField(key string) Field[int64] { return Field[int64]{key, IntCodec} }

// FloatField returns a float Field for key.
func FloatField(key string) Field[float64] { return Field[float64]{key, FloatCodec} }

// StringField returns a string Field for key.
func StringField(key string) Field[string] { return Field[string]{key, StringCodec} }

// EnumField returns a Field for key that holds a token of the enum E.
func EnumField[E Enum](key string) Field[E] { return Field[E]{key, EnumCodec[E]()} }

// StructField returns a Field for key that holds a nested structure,
// viewed as a T constructed by wrap.
func StructField[T Structure](key string, wrap func(*Params) T) Field[T] {
	return Field[T]{key, StructCodec(wrap)}
}

// ListField returns a Field for key that holds a list of elements
// using elem.
func ListField[T any](key string, elem Codec[T]) Field[[]T] {
	return Field[[]T]{key, ListCodec(elem)}
}

// Get returns the field's value in h. The result is absent if the
// parameter is not set, or if its value cannot be read as a T.
func (f Field[T]) Get(h Holder) value.Maybe[T] {
	v, ok := h.Params().Lookup(canonical(h, f.Key))
	if !ok {
		return value.Absent[T]()
	}
	if t, ok := f.Codec.Decode(v); ok {
		return value.Just(t)
	}
	return value.Absent[T]()
}

// Set stores t as the field's value in h.
func (f Field[T]) Set(h Holder, t T) {
	h.Params().Set(canonical(h, f.Key), f.Codec.Encode(t))
}

// SetMaybe stores the value of m in h if present, or clears the field
// if m is absent.
func (f Field[T]) SetMaybe(h Holder, m value.Maybe[T]) {
	if t, ok := m.GetOK(); ok {
		f.Set(h, t)
	} else {
		f.Clear(h)
	}
}

// Clear removes the field from h.
func (f Field[T]) Clear(h Holder) {
	h.Params().Delete(canonical(h, f.Key))
}

// Present reports whether h holds any value for the field, whether or
// not that value can be read as a T.
func (f Field[T]) Present(h Holder) bool {
	return h.Params().Has(canonical(h, f.Key))
}
