package messages

import (
	_ "embed"

	"github.com/danderson/sdlrpc"
)

//go:embed registry.toml
var registryData []byte

func init() {
	sdlrpc.MustLoadRegistry(registryData)
}
