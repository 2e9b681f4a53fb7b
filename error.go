package sdlrpc

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrUnknownFunction is returned when a function name or
	// numeric ID is not part of the function enumeration.
	ErrUnknownFunction = errors.New("unknown RPC function")
	// ErrMalformedEnvelope is returned when a decoded wire mapping
	// does not have the shape of a message envelope.
	ErrMalformedEnvelope = errors.New("malformed message envelope")
	// ErrNoCorrelation is returned when setting a correlation ID on
	// a notification.
	ErrNoCorrelation = errors.New("notifications do not carry a correlation ID")
	// ErrCorrelationAssigned is returned when changing the
	// correlation ID of a request that already has one.
	ErrCorrelationAssigned = errors.New("request correlation ID already assigned")
	// ErrMissingCorrelation is returned when encoding a request or
	// response that has no correlation ID.
	ErrMissingCorrelation = errors.New("request or response has no correlation ID")
	// ErrSealed is returned when an operation needs to change a
	// sealed message.
	ErrSealed = errors.New("message is sealed")
)

// TypeError is the error returned when a Go value cannot be
// represented as a parameter [Value].
type TypeError struct {
	// Type is the name of the type that caused the error.
	Type string
	// Reason is an explanation of why the type isn't representable.
	Reason error
}

func (e TypeError) Error() string {
	return fmt.Sprintf("cannot represent %s as a parameter value: %s", e.Type, e.Reason)
}

func (e TypeError) Unwrap() error {
	return e.Reason
}

func typeErr(v any, reason string, args ...any) error {
	return TypeError{fmt.Sprintf("%T", v), fmt.Errorf(reason, args...)}
}

// MissingFieldError reports a required parameter that is absent, or
// present with a value that cannot be read as the parameter's kind.
type MissingFieldError struct {
	Function FunctionID
	Kind     MessageKind
	// Key is the canonical key of the parameter. Parameters of nested
	// structures are named by their dotted path, e.g. "gps.speed".
	Key string
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("%s %s: missing required parameter %q", e.Function, e.Kind, e.Key)
}

// ConstraintError reports a parameter whose value violates one of its
// FieldSpec constraints.
type ConstraintError struct {
	Function FunctionID
	Kind     MessageKind
	// Key is the canonical key of the parameter, in the same format
	// as [MissingFieldError.Key].
	Key string
	// Constraint names the violated constraint, e.g. "maxLength".
	Constraint string
	// Detail describes the violation.
	Detail string
}

func (e *ConstraintError) Error() string {
	return fmt.Sprintf("%s %s: parameter %q violates %s: %s", e.Function, e.Kind, e.Key, e.Constraint, e.Detail)
}

// ValidationError is the error returned when a message fails
// validation. It wraps one [*MissingFieldError] or [*ConstraintError]
// per problem found.
type ValidationError struct {
	Function FunctionID
	Kind     MessageKind
	Problems []error
}

func (e *ValidationError) Error() string {
	var ret strings.Builder
	fmt.Fprintf(&ret, "invalid %s %s: ", e.Function, e.Kind)
	for i, p := range e.Problems {
		if i > 0 {
			ret.WriteString("; ")
		}
		// Problems already name the message, strip the prefix.
		msg := p.Error()
		if _, rest, ok := strings.Cut(msg, ": "); ok {
			msg = rest
		}
		ret.WriteString(msg)
	}
	return ret.String()
}

func (e *ValidationError) Unwrap() []error {
	return e.Problems
}
