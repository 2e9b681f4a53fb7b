// Package wire provides low-level helpers to encode and decode the
// JSON form of RPC messages.
//
// The provided encoder and decoder are very low level, and do not
// encode any RPC semantics. Unlike encoding/json, they preserve the
// order of object members in both directions, which is what lets a
// re-encoded message come out byte for byte the same as it went in.
//
// You should not need to use this package directly. The sdlrpc
// package uses it to implement json.Marshaler and json.Unmarshaler
// for its parameter store.
package wire
