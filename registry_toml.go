package sdlrpc

import (
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"
)

// registryFile is the TOML layout of registry data.
type registryFile struct {
	Enums     []enumDef      `toml:"enum"`
	Structs   []StructSpec   `toml:"struct"`
	Functions []FunctionSpec `toml:"function"`
}

type enumDef struct {
	Name   string   `toml:"name"`
	Tokens []string `toml:"tokens"`
}

// LoadRegistry registers the enums, structures and function
// parameters described by the TOML document data. For example:
//
//	[[enum]]
//	name = "Color"
//	tokens = ["RED", "GREEN"]
//
//	[[function]]
//	name = "Show"
//	kind = "request"
//	aliases = { mainField = "mainField1" }
//
//	  [[function.param]]
//	  key = "mainField1"
//	  kind = "string"
//	  maxLength = 500
//
// Definitions may refer to each other, and to anything registered
// earlier in the process. LoadRegistry returns an error, and registers
// nothing, if data is malformed or conflicts with earlier
// registrations.
func LoadRegistry(data []byte) error {
	var f registryFile
	md, err := toml.Decode(string(data), &f)
	if err != nil {
		return fmt.Errorf("parsing registry: %w", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, 0, len(undecoded))
		for _, k := range undecoded {
			keys = append(keys, k.String())
		}
		return fmt.Errorf("parsing registry: unknown keys %s", strings.Join(keys, ", "))
	}

	if err := register(f); err != nil {
		return fmt.Errorf("loading registry: %w", err)
	}
	return nil
}

// MustLoadRegistry is like LoadRegistry, but panics on error. It is
// meant for registry data embedded in the program.
func MustLoadRegistry(data []byte) {
	if err := LoadRegistry(data); err != nil {
		panic(err)
	}
}
