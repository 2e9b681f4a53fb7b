package sdlrpc

import (
	"fmt"

	"github.com/creachadair/mds/mapset"
)

// A Kind is the type of a parameter value.
type Kind uint8

const (
	KindInvalid Kind = iota
	KindBool
	KindInt
	KindFloat
	KindString
	// KindEnum is a string restricted to a set of tokens. Stored
	// values never have KindEnum, enum tokens are stored as
	// KindString. KindEnum only appears in [FieldSpec]s and as a
	// coercion target.
	KindEnum
	KindStruct
	KindList
)

var (
	// kindToStr maps kinds to their name in registry definitions.
	kindToStr = map[Kind]string{
		KindBool:   "bool",
		KindInt:    "int",
		KindFloat:  "float",
		KindString: "string",
		KindEnum:   "enum",
		KindStruct: "struct",
		KindList:   "list",
	}

	// strToKind is the inverse of kindToStr.
	strToKind = map[string]Kind{
		"bool":   KindBool,
		"int":    KindInt,
		"float":  KindFloat,
		"string": KindString,
		"enum":   KindEnum,
		"struct": KindStruct,
		"list":   KindList,
	}

	// scalarKinds is the set of kinds that hold a single primitive.
	scalarKinds = mapset.New(
		KindBool,
		KindInt,
		KindFloat,
		KindString,
		KindEnum,
	)
)

func (k Kind) String() string {
	if s, ok := kindToStr[k]; ok {
		return s
	}
	return fmt.Sprintf("Kind(%d)", k)
}

// IsScalar reports whether k holds a single primitive value, as
// opposed to a structure or list.
func (k Kind) IsScalar() bool {
	return scalarKinds.Has(k)
}

// ParseKind returns the Kind with the given name.
func ParseKind(s string) (Kind, error) {
	if k, ok := strToKind[s]; ok {
		return k, nil
	}
	return KindInvalid, fmt.Errorf("unknown parameter kind %q", s)
}

func (k Kind) MarshalText() ([]byte, error) {
	s, ok := kindToStr[k]
	if !ok {
		return nil, fmt.Errorf("cannot marshal invalid kind %d", k)
	}
	return []byte(s), nil
}

func (k *Kind) UnmarshalText(bs []byte) error {
	v, err := ParseKind(string(bs))
	if err != nil {
		return err
	}
	*k = v
	return nil
}
