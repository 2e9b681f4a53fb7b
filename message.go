package sdlrpc

import (
	"fmt"
	"strings"

	"github.com/creachadair/mds/value"
)

// MessageKind is the kind of an RPC message.
type MessageKind uint8

const (
	Request MessageKind = iota + 1
	Response
	Notification
)

var (
	messageKindToStr = map[MessageKind]string{
		Request:      "request",
		Response:     "response",
		Notification: "notification",
	}
	strToMessageKind = map[string]MessageKind{
		"request":      Request,
		"response":     Response,
		"notification": Notification,
	}
)

func (k MessageKind) String() string {
	if s, ok := messageKindToStr[k]; ok {
		return s
	}
	return fmt.Sprintf("MessageKind(%d)", k)
}

// ParseMessageKind returns the MessageKind with the given wire name.
func ParseMessageKind(s string) (MessageKind, error) {
	if k, ok := strToMessageKind[s]; ok {
		return k, nil
	}
	return 0, fmt.Errorf("unknown message kind %q", s)
}

func (k MessageKind) MarshalText() ([]byte, error) {
	s, ok := messageKindToStr[k]
	if !ok {
		return nil, fmt.Errorf("cannot marshal invalid message kind %d", k)
	}
	return []byte(s), nil
}

func (k *MessageKind) UnmarshalText(bs []byte) error {
	v, err := ParseMessageKind(string(bs))
	if err != nil {
		return err
	}
	*k = v
	return nil
}

// State is the lifecycle state of a message.
type State uint8

const (
	// Building messages can be changed freely.
	Building State = iota
	// Validated messages passed validation, and have not changed
	// since.
	Validated
	// Sealed messages are immutable. Outgoing messages become sealed
	// when they pass validation in [Message.Seal], incoming messages
	// are sealed from the start.
	Sealed
)

func (s State) String() string {
	switch s {
	case Building:
		return "building"
	case Validated:
		return "validated"
	case Sealed:
		return "sealed"
	default:
		return fmt.Sprintf("State(%d)", s)
	}
}

// Message is one RPC message: a function identifier, a message kind,
// an optional correlation ID, and the parameters.
//
// A Message is not safe for concurrent mutation. Once sealed, it is
// immutable and can be read concurrently.
type Message struct {
	fn     FunctionID
	kind   MessageKind
	corr   value.Maybe[int32]
	params *Params

	// validated is whether the last call to Validate succeeded, and
	// validatedAt is the version of params at that time.
	validated   bool
	validatedAt uint64
	// checked is whether the message was sealed by a successful
	// validation. Incoming messages are sealed without one.
	checked bool
}

// NewMessage returns an outgoing message of the given function and
// kind, holding params. If params is nil, the message starts with no
// parameters. The message takes ownership of params.
func NewMessage(fn FunctionID, kind MessageKind, params *Params) *Message {
	if params == nil {
		params = NewParams()
	}
	return &Message{
		fn:     fn,
		kind:   kind,
		params: params,
	}
}

// NewRequest returns an empty outgoing request for fn. The
// correlation ID is assigned later with [Message.SetCorrelationID],
// usually by the layer that sends the request.
func NewRequest(fn FunctionID) *Message {
	return NewMessage(fn, Request, nil)
}

// NewResponse returns an empty outgoing response for fn, answering
// the request with the given correlation ID.
func NewResponse(fn FunctionID, correlationID int32) *Message {
	ret := NewMessage(fn, Response, nil)
	ret.corr = value.Just(correlationID)
	return ret
}

// NewNotification returns an empty outgoing notification for fn.
func NewNotification(fn FunctionID) *Message {
	return NewMessage(fn, Notification, nil)
}

// Function returns the message's function identifier.
func (m *Message) Function() FunctionID { return m.fn }

// Kind returns the message's kind.
func (m *Message) Kind() MessageKind { return m.kind }

// CorrelationID returns the message's correlation ID, if it has one.
func (m *Message) CorrelationID() value.Maybe[int32] { return m.corr }

// SetCorrelationID sets the message's correlation ID.
//
// Notifications have no correlation ID. A request's correlation ID
// cannot change once assigned, setting it again to the same value is
// allowed.
func (m *Message) SetCorrelationID(id int32) error {
	if m.Sealed() {
		return ErrSealed
	}
	switch m.kind {
	case Notification:
		return ErrNoCorrelation
	case Request:
		if cur, ok := m.corr.GetOK(); ok && cur != id {
			return fmt.Errorf("%w: have %d, got %d", ErrCorrelationAssigned, cur, id)
		}
	}
	m.corr = value.Just(id)
	return nil
}

// Params returns the message's parameter store.
func (m *Message) Params() *Params { return m.params }

// CanonicalKey resolves key through the alias table of the message's
// function.
func (m *Message) CanonicalKey(key string) string {
	return canonicalKey(m.fn, key)
}

// Spec returns the registered FunctionSpec for the message's function
// and kind.
func (m *Message) Spec() (FunctionSpec, bool) {
	return LookupFunction(m.fn, m.kind)
}

// Get returns the parameter named key, read as kind k. key may be a
// deprecated alias. See [Params.Get].
func (m *Message) Get(key string, k Kind) value.Maybe[Value] {
	return m.params.Get(m.CanonicalKey(key), k)
}

// Set stores v under the canonical key for key. Setting the zero
// Value removes the parameter.
func (m *Message) Set(key string, v Value) {
	m.params.Set(m.CanonicalKey(key), v)
}

// Clear removes the parameter named key, and reports whether it was
// present. key may be a deprecated alias.
func (m *Message) Clear(key string) bool {
	return m.params.Delete(m.CanonicalKey(key))
}

// Sealed reports whether the message is sealed.
func (m *Message) Sealed() bool {
	return m.params.Sealed()
}

// State returns the message's lifecycle state.
func (m *Message) State() State {
	switch {
	case m.Sealed():
		return Sealed
	case m.validated && m.params.version() == m.validatedAt:
		return Validated
	default:
		return Building
	}
}

// Validate checks the message's parameters against the registered
// FieldSpecs for its function and kind. It returns a
// [*ValidationError] listing every missing required parameter and
// every violated constraint.
//
// Parameters that have no FieldSpec are never a problem. A message
// whose function and kind have no registered spec is always valid.
//
// On success, the message moves to the Validated state until it is
// next changed. Validating a sealed message changes nothing, and is
// safe to do concurrently.
func (m *Message) Validate() error {
	spec, ok := m.Spec()
	if !ok {
		m.markValidated()
		return nil
	}
	if problems := spec.check(m.params); len(problems) > 0 {
		if !m.Sealed() {
			m.validated = false
		}
		return &ValidationError{
			Function: m.fn,
			Kind:     m.kind,
			Problems: problems,
		}
	}
	m.markValidated()
	return nil
}

func (m *Message) markValidated() {
	if m.Sealed() {
		return
	}
	m.validated = true
	m.validatedAt = m.params.version()
}

// Seal validates the message and, if it is valid, makes it
// immutable. Changing a sealed message's parameters panics.
//
// Sealing an already sealed message does nothing, even if it was
// sealed without validation, as incoming messages are.
func (m *Message) Seal() error {
	if m.Sealed() {
		return nil
	}
	if m.State() != Validated {
		if err := m.Validate(); err != nil {
			return err
		}
	}
	m.checked = true
	m.params.seal()
	return nil
}

// Require returns the parameter named key, read as kind k. If the
// parameter is absent or cannot be read as k, Require returns a
// [*MissingFieldError].
//
// As with [Params.Get], KindEnum accepts any string token.
//
// Require is for the layer that dispatches incoming messages, which
// decides which parameters it cannot do without. Typed accessors
// never fail this way.
func (m *Message) Require(key string, k Kind) (Value, error) {
	canonical := m.CanonicalKey(key)
	if v, ok := m.params.Get(canonical, k).GetOK(); ok {
		return v, nil
	}
	return Value{}, &MissingFieldError{
		Function: m.fn,
		Kind:     m.kind,
		Key:      canonical,
	}
}

// Clone returns an outgoing copy of m in the Building state, with a
// deep copy of the parameters.
func (m *Message) Clone() *Message {
	return &Message{
		fn:     m.fn,
		kind:   m.kind,
		corr:   m.corr,
		params: m.params.Clone(),
	}
}

func (m *Message) String() string {
	var ret strings.Builder
	fmt.Fprintf(&ret, "%s %s", m.fn, m.kind)
	if id, ok := m.corr.GetOK(); ok {
		fmt.Fprintf(&ret, " #%d", id)
	}
	ret.WriteByte(' ')
	m.params.format(&ret)
	return ret.String()
}
