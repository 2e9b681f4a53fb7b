package sdlrpc

import (
	"fmt"
	"iter"
	"slices"
	"strconv"
	"strings"
	"sync/atomic"

	"github.com/creachadair/mds/value"
)

// stamps hands out mutation stamps. Every change to any Params takes
// a fresh stamp, so the largest stamp in a tree of nested stores
// changes whenever anything in the tree changes.
var stamps atomic.Uint64

// Params is an ordered mapping of parameter names to values. It is
// the single source of truth for the data of a message or nested
// structure.
//
// Params preserves insertion order, so that re-encoding a message is
// deterministic. Order carries no meaning for lookups.
//
// The zero Params is an empty store ready to use. Params is not safe
// for concurrent mutation. A sealed Params (see [Message.Seal]) is
// immutable, and safe for concurrent reads.
type Params struct {
	keys   []string
	vals   map[string]Value
	sealed bool
	stamp  uint64
}

// NewParams returns an empty Params.
func NewParams() *Params {
	return &Params{}
}

// Params returns p. It lets a bare *Params act as a [Holder].
func (p *Params) Params() *Params { return p }

func (p *Params) mutate() {
	if p.sealed {
		panic("sdlrpc: mutation of sealed Params")
	}
	p.stamp = stamps.Add(1)
}

// Set stores v under key. If key is already present, its value is
// replaced and it keeps its position in the key order. Setting the
// zero Value removes key.
//
// Set panics if p is sealed, or if p is nil. A nil Params is what a
// zero structure view holds, views must be made with their New or
// Wrap function.
func (p *Params) Set(key string, v Value) {
	if p == nil {
		panic(fmt.Sprintf("sdlrpc: Set(%q) on nil Params", key))
	}
	if v.IsZero() {
		p.Delete(key)
		return
	}
	p.mutate()
	if p.vals == nil {
		p.vals = map[string]Value{}
	}
	if _, ok := p.vals[key]; !ok {
		p.keys = append(p.keys, key)
	}
	p.vals[key] = v
}

// Delete removes key, and reports whether it was present.
//
// Delete panics if p is sealed.
func (p *Params) Delete(key string) bool {
	if _, ok := p.Lookup(key); !ok {
		return false
	}
	p.mutate()
	delete(p.vals, key)
	if i := slices.Index(p.keys, key); i >= 0 {
		p.keys = slices.Delete(p.keys, i, i+1)
	}
	return true
}

// Lookup returns the raw value stored under key.
func (p *Params) Lookup(key string) (Value, bool) {
	if p == nil {
		return Value{}, false
	}
	v, ok := p.vals[key]
	return v, ok
}

// Has reports whether key is present.
func (p *Params) Has(key string) bool {
	_, ok := p.Lookup(key)
	return ok
}

// Get returns the value stored under key, reinterpreted as kind k.
//
// Get never fails: the result is absent if key is not present, or if
// its value cannot be read as k. Reading an unrelated field of a
// malformed or newer message must not break the caller.
//
// Get with KindEnum accepts any string: it does not know which enum
// the parameter belongs to. Token membership is checked by
// [EnumCodec], and so by [EnumField], and by [Message.Validate].
func (p *Params) Get(key string, k Kind) value.Maybe[Value] {
	v, ok := p.Lookup(key)
	if !ok {
		return value.Absent[Value]()
	}
	if ret, ok := v.coerce(k); ok {
		return value.Just(ret)
	}
	return value.Absent[Value]()
}

// GetRequired is like Get, for a parameter the caller considers
// mandatory. It returns the zero Value when the parameter is absent
// or unreadable, rather than reporting an error: missing required
// parameters are reported by [Message.Validate] when the message is
// sent, and by [Message.Require] on demand.
func (p *Params) GetRequired(key string, k Kind) Value {
	v, _ := p.Get(key, k).GetOK()
	return v
}

// Keys returns all present keys in insertion order, including keys
// that no accessor knows about.
func (p *Params) Keys() []string {
	if p == nil {
		return nil
	}
	return slices.Clone(p.keys)
}

// Len returns the number of present keys.
func (p *Params) Len() int {
	if p == nil {
		return 0
	}
	return len(p.keys)
}

// All returns an iterator over keys and values in insertion order.
func (p *Params) All() iter.Seq2[string, Value] {
	return func(yield func(string, Value) bool) {
		if p == nil {
			return
		}
		for _, k := range p.keys {
			if !yield(k, p.vals[k]) {
				return
			}
		}
	}
}

// Clone returns a deep copy of p. The copy is not sealed.
func (p *Params) Clone() *Params {
	ret := &Params{}
	if p == nil || len(p.keys) == 0 {
		return ret
	}
	ret.keys = slices.Clone(p.keys)
	ret.vals = make(map[string]Value, len(p.vals))
	for k, v := range p.vals {
		ret.vals[k] = v.Clone()
	}
	ret.stamp = stamps.Add(1)
	return ret
}

// Equal reports whether p and o hold the same keys and values. Key
// order is not significant.
func (p *Params) Equal(o *Params) bool {
	if p.Len() != o.Len() {
		return false
	}
	for k, v := range p.All() {
		ov, ok := o.Lookup(k)
		if !ok || !v.Equal(ov) {
			return false
		}
	}
	return true
}

// Sealed reports whether p is sealed.
func (p *Params) Sealed() bool {
	return p != nil && p.sealed
}

// seal makes p and every nested structure in it immutable.
func (p *Params) seal() {
	p.sealed = true
	for _, v := range p.vals {
		sealValue(v)
	}
}

func sealValue(v Value) {
	switch v.kind {
	case KindStruct:
		v.p.seal()
	case KindList:
		for _, e := range v.l {
			sealValue(e)
		}
	}
}

// version returns the latest mutation stamp in p and its nested
// structures.
func (p *Params) version() uint64 {
	ret := p.stamp
	for _, v := range p.vals {
		ret = max(ret, valueVersion(v))
	}
	return ret
}

func valueVersion(v Value) uint64 {
	switch v.kind {
	case KindStruct:
		return v.p.version()
	case KindList:
		var ret uint64
		for _, e := range v.l {
			ret = max(ret, valueVersion(e))
		}
		return ret
	default:
		return 0
	}
}

func (p *Params) String() string {
	var ret strings.Builder
	p.format(&ret)
	return ret.String()
}

func (p *Params) format(w *strings.Builder) {
	w.WriteByte('{')
	i := 0
	for k, v := range p.All() {
		if i > 0 {
			w.WriteString(", ")
		}
		i++
		w.WriteString(strconv.Quote(k))
		w.WriteString(": ")
		v.format(w)
	}
	w.WriteByte('}')
}

// FromMap returns a Params holding the entries of m, in sorted key
// order. The values of m are converted with [ValueOf].
func FromMap(m map[string]any) (*Params, error) {
	v, err := ValueOf(m)
	if err != nil {
		return nil, err
	}
	if p, ok := v.AsStruct(); ok {
		return p, nil
	}
	return NewParams(), nil
}
