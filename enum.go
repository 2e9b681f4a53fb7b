package sdlrpc

import (
	"fmt"
	"maps"
	"slices"

	"github.com/creachadair/mds/mapset"
)

// Enum is the constraint satisfied by enum types. An enum is a string
// type whose Valid method reports whether a token is one of the
// enum's known values.
type Enum interface {
	~string
	Valid() bool
}

// RegisterEnum registers the valid tokens of an enum under name, and
// returns them as a set. The name is what [FieldSpec.Enum] refers to.
//
// The usual way to use RegisterEnum is to back an enum type's Valid
// method:
//
//	type Color string
//
//	var colors = sdlrpc.RegisterEnum("Color", Red, Green, Blue)
//
//	func (c Color) Valid() bool { return colors.Has(c) }
//
// RegisterEnum panics if name is already registered.
func RegisterEnum[E ~string](name string, tokens ...E) mapset.Set[E] {
	strs := mapset.New[string]()
	for _, t := range tokens {
		strs.Add(string(t))
	}
	registryMu.Lock()
	defer registryMu.Unlock()
	if _, ok := enums[name]; ok {
		panic(fmt.Errorf("duplicate enum registration for %s", name))
	}
	enums[name] = strs
	return mapset.New(tokens...)
}

// EnumTokens returns the sorted tokens of the enum registered under
// name.
func EnumTokens(name string) ([]string, bool) {
	registryMu.RLock()
	defer registryMu.RUnlock()
	toks, ok := enums[name]
	if !ok {
		return nil, false
	}
	return slices.Sorted(maps.Keys(toks)), true
}

func enumHas(name, token string) (known, valid bool) {
	registryMu.RLock()
	defer registryMu.RUnlock()
	toks, ok := enums[name]
	if !ok {
		return false, false
	}
	return true, toks.Has(token)
}
