package wire

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// MaxDepth is the maximum nesting of objects and arrays that a
// [Decoder] accepts.
const MaxDepth = 64

// ErrTooDeep is returned when the input nests objects and arrays
// deeper than [MaxDepth].
var ErrTooDeep = errors.New("wire: document nested too deeply")

// A TokenKind is the kind of a JSON token.
type TokenKind byte

const (
	Null TokenKind = iota
	Bool
	Number
	String
	ObjectStart
	ObjectEnd
	ArrayStart
	ArrayEnd
)

func (k TokenKind) String() string {
	switch k {
	case Null:
		return "null"
	case Bool:
		return "bool"
	case Number:
		return "number"
	case String:
		return "string"
	case ObjectStart:
		return "'{'"
	case ObjectEnd:
		return "'}'"
	case ArrayStart:
		return "'['"
	case ArrayEnd:
		return "']'"
	default:
		return fmt.Sprintf("TokenKind(%d)", k)
	}
}

// A Token is one lexical element of a JSON document.
type Token struct {
	Kind TokenKind
	// Bool is the value of a Bool token.
	Bool bool
	// Text is the value of a String token, or the literal text of a
	// Number token.
	Text string
}

// Int returns the value of a Number token as an integer. ok is false
// if the number has a fractional part or exponent, or does not fit
// in an int64.
func (t Token) Int() (i int64, ok bool) {
	if t.Kind != Number || strings.ContainsAny(t.Text, ".eE") {
		return 0, false
	}
	i, err := strconv.ParseInt(t.Text, 10, 64)
	if err != nil {
		return 0, false
	}
	return i, true
}

// Float returns the value of a Number token as a float64.
func (t Token) Float() (float64, error) {
	if t.Kind != Number {
		return 0, fmt.Errorf("token is %s, not number", t.Kind)
	}
	return strconv.ParseFloat(t.Text, 64)
}

// A Decoder reads a JSON document token by token.
type Decoder struct {
	dec   *json.Decoder
	depth int
}

// NewDecoder returns a Decoder that reads from r.
func NewDecoder(r io.Reader) *Decoder {
	dec := json.NewDecoder(r)
	dec.UseNumber()
	return &Decoder{dec: dec}
}

// NewBytesDecoder returns a Decoder that reads bs.
func NewBytesDecoder(bs []byte) *Decoder {
	return NewDecoder(bytes.NewReader(bs))
}

// Token reads the next token.
func (d *Decoder) Token() (Token, error) {
	tok, err := d.dec.Token()
	if err != nil {
		return Token{}, err
	}
	switch v := tok.(type) {
	case nil:
		return Token{Kind: Null}, nil
	case bool:
		return Token{Kind: Bool, Bool: v}, nil
	case json.Number:
		return Token{Kind: Number, Text: string(v)}, nil
	case string:
		return Token{Kind: String, Text: v}, nil
	case json.Delim:
		switch v {
		case '{', '[':
			d.depth++
			if d.depth > MaxDepth {
				return Token{}, ErrTooDeep
			}
			if v == '{' {
				return Token{Kind: ObjectStart}, nil
			}
			return Token{Kind: ArrayStart}, nil
		case '}':
			d.depth--
			return Token{Kind: ObjectEnd}, nil
		case ']':
			d.depth--
			return Token{Kind: ArrayEnd}, nil
		}
	}
	return Token{}, fmt.Errorf("unexpected JSON token %v (%T)", tok, tok)
}

// More reports whether the current object or array has more members
// or elements.
func (d *Decoder) More() bool {
	return d.dec.More()
}

// Expect reads the next token and returns an error if it is not of
// kind want.
func (d *Decoder) Expect(want TokenKind) (Token, error) {
	tok, err := d.Token()
	if err != nil {
		return Token{}, err
	}
	if tok.Kind != want {
		return Token{}, fmt.Errorf("got %s, want %s", tok.Kind, want)
	}
	return tok, nil
}

// ObjectBody reads the members of an object whose opening brace has
// already been read, through the closing brace.
//
// readMember is called for each member with the member's key, and
// must consume exactly one value from the decoder.
func (d *Decoder) ObjectBody(readMember func(key string) error) error {
	for d.More() {
		key, err := d.Expect(String)
		if err != nil {
			return fmt.Errorf("reading object key: %w", err)
		}
		if err := readMember(key.Text); err != nil {
			return err
		}
	}
	if _, err := d.Expect(ObjectEnd); err != nil {
		return err
	}
	return nil
}

// ArrayBody reads the elements of an array whose opening bracket has
// already been read, through the closing bracket.
//
// readElement is called for each element with the element's index,
// and must consume exactly one value from the decoder. ArrayBody
// returns the number of elements read.
func (d *Decoder) ArrayBody(readElement func(idx int) error) (int, error) {
	idx := 0
	for d.More() {
		if err := readElement(idx); err != nil {
			return idx, err
		}
		idx++
	}
	if _, err := d.Expect(ArrayEnd); err != nil {
		return idx, err
	}
	return idx, nil
}

// Skip reads and discards the value that starts with tok.
func (d *Decoder) Skip(tok Token) error {
	switch tok.Kind {
	case ObjectStart:
		return d.ObjectBody(func(string) error {
			t, err := d.Token()
			if err != nil {
				return err
			}
			return d.Skip(t)
		})
	case ArrayStart:
		_, err := d.ArrayBody(func(int) error {
			t, err := d.Token()
			if err != nil {
				return err
			}
			return d.Skip(t)
		})
		return err
	case ObjectEnd, ArrayEnd:
		return fmt.Errorf("unexpected %s", tok.Kind)
	default:
		return nil
	}
}

// End returns an error if the input contains anything other than
// whitespace after the document that was read.
func (d *Decoder) End() error {
	_, err := d.dec.Token()
	if errors.Is(err, io.EOF) {
		return nil
	}
	if err != nil {
		return err
	}
	return errors.New("trailing data after JSON document")
}
