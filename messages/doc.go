// Package messages provides typed views of SmartDeviceLink RPC
// messages.
//
// Each message type wraps an [sdlrpc.Message] and reads and writes its
// parameters through typed accessors. Importing the package registers
// the parameter definitions of its message types, so that messages
// built with it can be validated and sealed.
//
// Accessors return value.Maybe results. A parameter that is absent,
// or holds a value of the wrong type, reads as absent.
package messages
