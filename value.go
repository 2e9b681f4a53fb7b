package sdlrpc

import (
	"encoding/json"
	"fmt"
	"math"
	"reflect"
	"slices"
	"strconv"
	"strings"
)

// A Value is a parameter value.
//
// The zero Value is "no value". Storing the zero Value under a key
// removes the key.
type Value struct {
	kind Kind
	b    bool
	i    int64
	f    float64
	s    string
	p    *Params
	l    []Value
}

// Bool returns a boolean Value.
func Bool(b bool) Value { return Value{kind: KindBool, b: b} }

// Int returns an integer Value.
func Int(i int64) Value { return Value{kind: KindInt, i: i} }

// Float returns a floating point Value.
func Float(f float64) Value { return Value{kind: KindFloat, f: f} }

// String returns a string Value. Enum tokens are stored as strings.
func String(s string) Value { return Value{kind: KindString, s: s} }

// Struct returns a Value holding the nested structure p. The Value
// takes ownership of p: once stored, p must only be changed through
// the store that contains it. Struct(nil) is the zero Value.
func Struct(p *Params) Value {
	if p == nil {
		return Value{}
	}
	return Value{kind: KindStruct, p: p}
}

// List returns a list Value holding vs. Zero Values in vs are
// discarded, lists cannot hold "no value".
func List(vs ...Value) Value {
	l := make([]Value, 0, len(vs))
	for _, v := range vs {
		if !v.IsZero() {
			l = append(l, v)
		}
	}
	return Value{kind: KindList, l: l}
}

// Kind returns the kind of v. The zero Value has kind KindInvalid.
func (v Value) Kind() Kind { return v.kind }

// IsZero reports whether v is "no value".
func (v Value) IsZero() bool { return v.kind == KindInvalid }

// AsBool returns v's boolean value, if v is a boolean.
func (v Value) AsBool() (bool, bool) {
	return v.b, v.kind == KindBool
}

// AsInt returns v's integer value, if v is an integer.
func (v Value) AsInt() (int64, bool) {
	return v.i, v.kind == KindInt
}

// AsFloat returns v's value as a float64, if v is a float or an
// integer. Integer to float is the only implicit widening performed
// by coercion.
func (v Value) AsFloat() (float64, bool) {
	switch v.kind {
	case KindFloat:
		return v.f, true
	case KindInt:
		return float64(v.i), true
	default:
		return 0, false
	}
}

// AsString returns v's string value, if v is a string.
func (v Value) AsString() (string, bool) {
	return v.s, v.kind == KindString
}

// AsStruct returns v's nested structure, if v is a structure.
func (v Value) AsStruct() (*Params, bool) {
	return v.p, v.kind == KindStruct
}

// AsList returns v's elements, if v is a list. The returned slice
// must not be modified.
func (v Value) AsList() ([]Value, bool) {
	return v.l, v.kind == KindList
}

// coerce returns v reinterpreted as kind k, if possible.
func (v Value) coerce(k Kind) (Value, bool) {
	switch k {
	case KindBool, KindInt, KindString, KindStruct, KindList:
		return v, v.kind == k
	case KindEnum:
		return v, v.kind == KindString
	case KindFloat:
		f, ok := v.AsFloat()
		if !ok {
			return Value{}, false
		}
		return Float(f), true
	default:
		return Value{}, false
	}
}

// Clone returns a deep copy of v.
func (v Value) Clone() Value {
	switch v.kind {
	case KindStruct:
		return Struct(v.p.Clone())
	case KindList:
		l := make([]Value, len(v.l))
		for i, e := range v.l {
			l[i] = e.Clone()
		}
		return Value{kind: KindList, l: l}
	default:
		return v
	}
}

// Equal reports whether v and o hold the same value. Structures
// compare equal if they hold the same keys and values, regardless of
// key order.
func (v Value) Equal(o Value) bool {
	if v.kind != o.kind {
		return false
	}
	switch v.kind {
	case KindInvalid:
		return true
	case KindBool:
		return v.b == o.b
	case KindInt:
		return v.i == o.i
	case KindFloat:
		return v.f == o.f
	case KindString:
		return v.s == o.s
	case KindStruct:
		return v.p.Equal(o.p)
	case KindList:
		return slices.EqualFunc(v.l, o.l, Value.Equal)
	default:
		panic(fmt.Sprintf("unknown value kind %v", v.kind))
	}
}

// Interface returns v as a plain Go value: nil, bool, int64, float64,
// string, map[string]any or []any. Structures lose their key order.
func (v Value) Interface() any {
	switch v.kind {
	case KindInvalid:
		return nil
	case KindBool:
		return v.b
	case KindInt:
		return v.i
	case KindFloat:
		return v.f
	case KindString:
		return v.s
	case KindStruct:
		ret := make(map[string]any, v.p.Len())
		for k, e := range v.p.All() {
			ret[k] = e.Interface()
		}
		return ret
	case KindList:
		ret := make([]any, len(v.l))
		for i, e := range v.l {
			ret[i] = e.Interface()
		}
		return ret
	default:
		panic(fmt.Sprintf("unknown value kind %v", v.kind))
	}
}

func (v Value) String() string {
	var ret strings.Builder
	v.format(&ret)
	return ret.String()
}

func (v Value) format(w *strings.Builder) {
	switch v.kind {
	case KindInvalid:
		w.WriteString("<no value>")
	case KindBool:
		w.WriteString(strconv.FormatBool(v.b))
	case KindInt:
		w.WriteString(strconv.FormatInt(v.i, 10))
	case KindFloat:
		w.WriteString(strconv.FormatFloat(v.f, 'g', -1, 64))
	case KindString:
		w.WriteString(strconv.Quote(v.s))
	case KindStruct:
		v.p.format(w)
	case KindList:
		w.WriteByte('[')
		for i, e := range v.l {
			if i > 0 {
				w.WriteString(", ")
			}
			e.format(w)
		}
		w.WriteByte(']')
	default:
		panic(fmt.Sprintf("unknown value kind %v", v.kind))
	}
}

// ValueOf returns the Value representation of the Go value x.
//
// ValueOf accepts nil, Value, *Params, booleans, integers, floats,
// strings (including named string types such as enums),
// json.Number, maps with string keys, and slices or arrays of any of
// those. Map keys are stored in sorted order, since Go maps carry no
// order of their own.
//
// Other types, and unsigned integers that overflow int64, return a
// [TypeError].
func ValueOf(x any) (Value, error) {
	switch v := x.(type) {
	case nil:
		return Value{}, nil
	case Value:
		return v, nil
	case *Params:
		return Struct(v), nil
	case json.Number:
		if i, err := v.Int64(); err == nil {
			return Int(i), nil
		}
		f, err := v.Float64()
		if err != nil {
			return Value{}, typeErr(x, "invalid number %q", v)
		}
		return Float(f), nil
	}

	rv := reflect.ValueOf(x)
	switch rv.Kind() {
	case reflect.Bool:
		return Bool(rv.Bool()), nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return Int(rv.Int()), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		u := rv.Uint()
		if u > math.MaxInt64 {
			return Value{}, typeErr(x, "value %d overflows int64", u)
		}
		return Int(int64(u)), nil
	case reflect.Float32, reflect.Float64:
		return Float(rv.Float()), nil
	case reflect.String:
		return String(rv.String()), nil
	case reflect.Pointer:
		if rv.IsNil() {
			return Value{}, nil
		}
		return ValueOf(rv.Elem().Interface())
	case reflect.Slice, reflect.Array:
		if rv.Kind() == reflect.Slice && rv.IsNil() {
			return Value{}, nil
		}
		l := make([]Value, 0, rv.Len())
		for i := range rv.Len() {
			e, err := ValueOf(rv.Index(i).Interface())
			if err != nil {
				return Value{}, fmt.Errorf("list element %d: %w", i, err)
			}
			if !e.IsZero() {
				l = append(l, e)
			}
		}
		return Value{kind: KindList, l: l}, nil
	case reflect.Map:
		if rv.Type().Key().Kind() != reflect.String {
			return Value{}, typeErr(x, "map keys must be strings")
		}
		if rv.IsNil() {
			return Value{}, nil
		}
		keys := rv.MapKeys()
		slices.SortFunc(keys, func(a, b reflect.Value) int {
			return strings.Compare(a.String(), b.String())
		})
		p := NewParams()
		for _, k := range keys {
			e, err := ValueOf(rv.MapIndex(k).Interface())
			if err != nil {
				return Value{}, fmt.Errorf("key %q: %w", k.String(), err)
			}
			p.Set(k.String(), e)
		}
		return Struct(p), nil
	default:
		return Value{}, typeErr(x, "unsupported kind %s", rv.Kind())
	}
}
