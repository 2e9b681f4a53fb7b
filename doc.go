// Package sdlrpc implements the parameter marshalling core of
// SmartDeviceLink RPC messages.
//
// Every RPC message exchanged between a mobile application and a
// vehicle head unit is a [Message]: a function identifier, a message
// kind (request, response or notification), a correlation ID for
// requests and responses, and an ordered mapping of parameter names to
// loosely typed values, the [Params].
//
// # Values
//
// A parameter [Value] is one of a fixed set of kinds: boolean,
// integer, float, string, nested structure or list. Enum tokens are
// stored as strings. The zero Value is "no value": storing it removes
// the parameter, and absent parameters read as the zero Value.
//
// # Typed access
//
// Concrete message types read and write their parameters through
// [Field] accessors, which pair a parameter key with a [Codec]. Typed
// reads never fail. A parameter that is absent, or whose value cannot
// be read as the field's type, reads as an absent [value.Maybe]. The
// coercion rules are:
//
//   - booleans, integers and strings are read only from values of the
//     same kind.
//   - floats are read from floats, or from integers widened to
//     float64. This is the only implicit conversion.
//   - enums are read from strings that are one of the enum's tokens,
//     matched case-sensitively. Tokens the enum does not know, for
//     example ones introduced by a newer head unit, read as absent but
//     remain in the Params.
//   - structures are read from nested Params, wrapped in the
//     structure's own accessor type. Structures nest to any depth.
//   - lists are read from lists, with each element coerced by the
//     element type's rules. Elements that cannot be read are dropped.
//     A single value is never promoted to a list.
//
// Unknown parameters are never an error. They are kept in the Params
// in their original position, and re-encoded verbatim.
//
// # Aliases
//
// Some parameters were renamed over the life of the protocol. Each
// function has a table of deprecated names and the canonical names
// that replaced them. Field accessors resolve names through the table
// of the message's function before touching the Params, so reading or
// writing either spelling affects the same single stored value, under
// the canonical key.
//
// # Validation
//
// The parameters of each function and message kind are described by a
// registered [FunctionSpec], usually loaded from TOML data with
// [LoadRegistry]. A FunctionSpec lists each parameter's kind, whether
// it is required, and its constraints.
//
// Outgoing messages go through three states. While Building, the
// Params accept any writes, conformant or not. [Message.Validate]
// checks the Params against the message's FunctionSpec, and moves the
// message to Validated if it passes. Any later change moves it back to
// Building. [Message.Seal] validates the message if needed and makes
// it immutable. Incoming messages, from [Decode] or [ParseEnvelope],
// are sealed from the start and never validated.
//
// # Wire format
//
// [Marshal] and [Decode] convert messages to and from their JSON wire
// envelope:
//
//	{"request": {"name": "GetVehicleData", "correlationID": 7, "parameters": {"speed": true}}}
//
// The order of parameters is preserved in both directions.
package sdlrpc
