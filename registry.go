package sdlrpc

import (
	"cmp"
	"errors"
	"fmt"
	"maps"
	"slices"
	"sync"

	"github.com/creachadair/mds/mapset"
)

var (
	registryMu sync.RWMutex
	functions  = map[functionKey]*FunctionSpec{}
	structs    = map[string]*StructSpec{}
	enums      = map[string]mapset.Set[string]{}
	// aliases maps deprecated keys to canonical keys, per function.
	// A function's requests and responses share one alias table.
	aliases = map[FunctionID]map[string]string{}
)

type functionKey struct {
	Function FunctionID
	Kind     MessageKind
}

// FieldSpec describes one parameter of a message or structure.
type FieldSpec struct {
	// Key is the parameter's canonical key.
	Key string `toml:"key"`
	// Kind is the kind of the parameter's value, or of its elements
	// if Array is set. It cannot be KindList.
	Kind Kind `toml:"kind"`
	// Array is whether the parameter is a list of Kind.
	Array bool `toml:"array"`
	// Required is whether the parameter must be present in an
	// outgoing message.
	Required bool `toml:"required"`
	// Enum is the registered enum that KindEnum values must belong
	// to.
	Enum string `toml:"enum"`
	// Struct is the registered StructSpec that KindStruct values
	// must conform to. If empty, the structure's contents are not
	// checked.
	Struct string `toml:"struct"`
	// MaxLength is the maximum length of string values, in
	// characters. Zero means no limit.
	MaxLength int `toml:"maxLength"`
	// MinValue and MaxValue bound numeric values, if set.
	MinValue *float64 `toml:"minValue"`
	MaxValue *float64 `toml:"maxValue"`
	// MinSize and MaxSize bound the number of elements of an Array
	// parameter. Zero means no limit.
	MinSize int `toml:"minSize"`
	MaxSize int `toml:"maxSize"`
	// Subscribable is whether the parameter can be subscribed to for
	// periodic updates.
	Subscribable bool `toml:"subscribable"`
	// Since is the protocol version that introduced the parameter.
	Since string `toml:"since"`
	// Description is a human-readable description of the parameter.
	Description string `toml:"description"`
}

// TypeString returns the parameter's type, e.g. "string", "[]float"
// or "enum RequestType".
func (f FieldSpec) TypeString() string {
	ret := f.Kind.String()
	switch f.Kind {
	case KindEnum:
		ret += " " + f.Enum
	case KindStruct:
		if f.Struct != "" {
			ret += " " + f.Struct
		}
	}
	if f.Array {
		ret = "[]" + ret
	}
	return ret
}

// StructSpec describes the parameters of a nested structure.
type StructSpec struct {
	Name   string      `toml:"name"`
	Params []FieldSpec `toml:"param"`
}

// FunctionSpec describes the parameters of one kind of message for
// one function.
type FunctionSpec struct {
	Function FunctionID  `toml:"name"`
	Kind     MessageKind `toml:"kind"`
	Params   []FieldSpec `toml:"param"`
	// Aliases maps deprecated parameter names to their canonical
	// keys.
	Aliases map[string]string `toml:"aliases"`
}

// Param returns the FieldSpec for the canonical key.
func (s FunctionSpec) Param(key string) (FieldSpec, bool) {
	for _, p := range s.Params {
		if p.Key == key {
			return p, true
		}
	}
	return FieldSpec{}, false
}

// RegisterFunction registers spec as the parameter description of its
// function and kind.
//
// RegisterFunction panics if the function and kind already have a
// registered spec, or if spec is malformed.
func RegisterFunction(spec FunctionSpec) {
	if err := register(registryFile{Functions: []FunctionSpec{spec}}); err != nil {
		panic(err)
	}
}

// RegisterStruct registers spec as the parameter description of the
// named structure.
//
// RegisterStruct panics if the name is already registered, or if spec
// is malformed.
func RegisterStruct(spec StructSpec) {
	if err := register(registryFile{Structs: []StructSpec{spec}}); err != nil {
		panic(err)
	}
}

// register checks and commits a batch of definitions. Either all of
// them are registered, or none are.
func register(defs registryFile) error {
	registryMu.Lock()
	defer registryMu.Unlock()

	newEnums := map[string]mapset.Set[string]{}
	for _, e := range defs.Enums {
		if e.Name == "" {
			return errors.New("enum definition without a name")
		}
		if enums[e.Name] != nil || newEnums[e.Name] != nil {
			return fmt.Errorf("duplicate enum registration for %s", e.Name)
		}
		if len(e.Tokens) == 0 {
			return fmt.Errorf("enum %s has no tokens", e.Name)
		}
		newEnums[e.Name] = mapset.New(e.Tokens...)
	}
	known := knownNames{
		enum: func(name string) bool {
			return enums[name] != nil || newEnums[name] != nil
		},
	}

	newStructs := map[string]*StructSpec{}
	for _, s := range defs.Structs {
		if s.Name == "" {
			return errors.New("struct definition without a name")
		}
		if structs[s.Name] != nil || newStructs[s.Name] != nil {
			return fmt.Errorf("duplicate struct registration for %s", s.Name)
		}
		newStructs[s.Name] = &StructSpec{
			Name:   s.Name,
			Params: slices.Clone(s.Params),
		}
	}
	known.structure = func(name string) bool {
		return structs[name] != nil || newStructs[name] != nil
	}
	for _, s := range newStructs {
		if err := checkFieldSpecs(s.Params, known); err != nil {
			return fmt.Errorf("struct %s: %w", s.Name, err)
		}
	}

	newFuncs := map[functionKey]*FunctionSpec{}
	newAliases := map[FunctionID]map[string]string{}
	for _, f := range defs.Functions {
		k := functionKey{f.Function, f.Kind}
		if !f.Function.Known() {
			return fmt.Errorf("%w %d", ErrUnknownFunction, f.Function)
		}
		if _, ok := messageKindToStr[f.Kind]; !ok {
			return fmt.Errorf("%s: invalid message kind %d", f.Function, f.Kind)
		}
		if functions[k] != nil || newFuncs[k] != nil {
			return fmt.Errorf("duplicate registration for %s %s", f.Function, f.Kind)
		}
		if err := checkFieldSpecs(f.Params, known); err != nil {
			return fmt.Errorf("%s %s: %w", f.Function, f.Kind, err)
		}
		spec := &FunctionSpec{
			Function: f.Function,
			Kind:     f.Kind,
			Params:   slices.Clone(f.Params),
			Aliases:  maps.Clone(f.Aliases),
		}
		newFuncs[k] = spec

		table := newAliases[f.Function]
		if table == nil {
			table = maps.Clone(aliases[f.Function])
			if table == nil {
				table = map[string]string{}
			}
			newAliases[f.Function] = table
		}
		for _, old := range slices.Sorted(maps.Keys(f.Aliases)) {
			canonical := f.Aliases[old]
			if prev, ok := table[old]; ok && prev != canonical {
				return fmt.Errorf("%s: alias %q already resolves to %q, cannot resolve to %q", f.Function, old, prev, canonical)
			}
			table[old] = canonical
		}
	}

	// Alias tables are checked as a whole, since a function's
	// request and response may register aliases separately.
	for fn, table := range newAliases {
		isCanonical := func(key string) bool {
			for _, kind := range []MessageKind{Request, Response, Notification} {
				k := functionKey{fn, kind}
				spec := newFuncs[k]
				if spec == nil {
					spec = functions[k]
				}
				if spec == nil {
					continue
				}
				if _, ok := spec.Param(key); ok {
					return true
				}
			}
			return false
		}
		for old, canonical := range table {
			if old == canonical {
				return fmt.Errorf("%s: alias %q resolves to itself", fn, old)
			}
			if _, ok := table[canonical]; ok {
				return fmt.Errorf("%s: alias %q resolves to %q, which is itself an alias", fn, old, canonical)
			}
			if isCanonical(old) {
				return fmt.Errorf("%s: alias %q is also a canonical parameter key", fn, old)
			}
		}
	}

	maps.Copy(enums, newEnums)
	maps.Copy(structs, newStructs)
	maps.Copy(functions, newFuncs)
	maps.Copy(aliases, newAliases)
	return nil
}

// knownNames reports whether enum and structure names are defined,
// either already registered or part of the batch being registered.
type knownNames struct {
	enum      func(string) bool
	structure func(string) bool
}

// checkFieldSpecs reports problems with a list of FieldSpecs. The
// registry lock must be held.
func checkFieldSpecs(fs []FieldSpec, known knownNames) error {
	seen := mapset.New[string]()
	for _, f := range fs {
		if f.Key == "" {
			return errors.New("parameter without a key")
		}
		if seen.Has(f.Key) {
			return fmt.Errorf("duplicate parameter %q", f.Key)
		}
		seen.Add(f.Key)

		switch f.Kind {
		case KindInvalid:
			return fmt.Errorf("parameter %q has no kind", f.Key)
		case KindList:
			return fmt.Errorf("parameter %q: use array = true instead of kind list", f.Key)
		}
		if (f.Kind == KindEnum) != (f.Enum != "") {
			return fmt.Errorf("parameter %q: enum must be set for, and only for, kind enum", f.Key)
		}
		if f.Enum != "" && !known.enum(f.Enum) {
			return fmt.Errorf("parameter %q: unknown enum %q", f.Key, f.Enum)
		}
		if f.Struct != "" {
			if f.Kind != KindStruct {
				return fmt.Errorf("parameter %q: struct set on kind %s", f.Key, f.Kind)
			}
			if !known.structure(f.Struct) {
				return fmt.Errorf("parameter %q: unknown struct %q", f.Key, f.Struct)
			}
		}
		if f.MaxLength < 0 || f.MinSize < 0 || f.MaxSize < 0 {
			return fmt.Errorf("parameter %q: negative limit", f.Key)
		}
		if f.MaxLength != 0 && f.Kind != KindString && f.Kind != KindEnum {
			return fmt.Errorf("parameter %q: maxLength set on kind %s", f.Key, f.Kind)
		}
		if (f.MinValue != nil || f.MaxValue != nil) && f.Kind != KindInt && f.Kind != KindFloat {
			return fmt.Errorf("parameter %q: value bounds set on kind %s", f.Key, f.Kind)
		}
		if f.MinValue != nil && f.MaxValue != nil && *f.MinValue > *f.MaxValue {
			return fmt.Errorf("parameter %q: minValue greater than maxValue", f.Key)
		}
		if (f.MinSize != 0 || f.MaxSize != 0) && !f.Array {
			return fmt.Errorf("parameter %q: size bounds set on a non-array", f.Key)
		}
		if f.MaxSize != 0 && f.MinSize > f.MaxSize {
			return fmt.Errorf("parameter %q: minSize greater than maxSize", f.Key)
		}
	}
	return nil
}

// LookupFunction returns the registered FunctionSpec for fn and kind.
// The returned spec shares memory with the registry and must not be
// modified.
func LookupFunction(fn FunctionID, kind MessageKind) (FunctionSpec, bool) {
	registryMu.RLock()
	defer registryMu.RUnlock()
	spec := functions[functionKey{fn, kind}]
	if spec == nil {
		return FunctionSpec{}, false
	}
	return *spec, true
}

// LookupStruct returns the registered StructSpec with the given name.
// The returned spec shares memory with the registry and must not be
// modified.
func LookupStruct(name string) (StructSpec, bool) {
	registryMu.RLock()
	defer registryMu.RUnlock()
	spec := structs[name]
	if spec == nil {
		return StructSpec{}, false
	}
	return *spec, true
}

// Functions returns all registered FunctionSpecs, ordered by function
// and kind.
func Functions() []FunctionSpec {
	registryMu.RLock()
	defer registryMu.RUnlock()
	ret := make([]FunctionSpec, 0, len(functions))
	for _, spec := range functions {
		ret = append(ret, *spec)
	}
	slices.SortFunc(ret, func(a, b FunctionSpec) int {
		if c := cmp.Compare(a.Function, b.Function); c != 0 {
			return c
		}
		return cmp.Compare(a.Kind, b.Kind)
	})
	return ret
}

// Aliases returns a copy of the alias table of fn, mapping deprecated
// keys to canonical keys.
func Aliases(fn FunctionID) map[string]string {
	registryMu.RLock()
	defer registryMu.RUnlock()
	return maps.Clone(aliases[fn])
}

func canonicalKey(fn FunctionID, key string) string {
	registryMu.RLock()
	defer registryMu.RUnlock()
	if canonical, ok := aliases[fn][key]; ok {
		return canonical
	}
	return key
}
