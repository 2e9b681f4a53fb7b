package wire

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"unicode/utf8"
)

// An Encoder writes a JSON document to a byte slice.
//
// Methods insert member and element separators as needed, except for
// [Encoder.Write] which outputs bytes verbatim.
type Encoder struct {
	// Out is the encoded output.
	Out []byte

	// stack tracks the open objects and arrays, innermost last.
	stack []level
}

type level struct {
	// n is the number of members or elements written so far.
	n int
	// afterKey is set between an object key and its value.
	afterKey bool
}

// Write writes bs as-is to the output. It is the caller's
// responsibility to ensure the result is valid JSON.
func (e *Encoder) Write(bs []byte) {
	e.Out = append(e.Out, bs...)
}

// sep writes the separator that must precede the next value.
func (e *Encoder) sep() {
	if len(e.stack) == 0 {
		return
	}
	top := &e.stack[len(e.stack)-1]
	if top.afterKey {
		top.afterKey = false
		return
	}
	if top.n > 0 {
		e.Out = append(e.Out, ',')
	}
	top.n++
}

// Null writes a JSON null.
func (e *Encoder) Null() {
	e.sep()
	e.Out = append(e.Out, "null"...)
}

// Bool writes a JSON boolean.
func (e *Encoder) Bool(b bool) {
	e.sep()
	e.Out = strconv.AppendBool(e.Out, b)
}

// Int writes an integer.
func (e *Encoder) Int(i int64) {
	e.sep()
	e.Out = strconv.AppendInt(e.Out, i, 10)
}

// Float writes a floating point number. The output always contains a
// decimal point or exponent, so that the value decodes back as a
// float rather than an integer.
//
// JSON cannot represent NaN or infinities, Float returns an error for
// them.
func (e *Encoder) Float(f float64) error {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return fmt.Errorf("cannot encode non-finite float %v", f)
	}
	e.sep()
	start := len(e.Out)
	e.Out = strconv.AppendFloat(e.Out, f, 'g', -1, 64)
	for _, c := range e.Out[start:] {
		if c == '.' || c == 'e' {
			return nil
		}
	}
	e.Out = append(e.Out, ".0"...)
	return nil
}

// String writes a JSON string.
func (e *Encoder) String(s string) {
	e.sep()
	e.Out = appendQuoted(e.Out, s)
}

// Key writes an object member name. The next value written is the
// member's value.
func (e *Encoder) Key(k string) error {
	if len(e.stack) == 0 {
		return errors.New("object key written outside of an object")
	}
	top := &e.stack[len(e.stack)-1]
	if top.afterKey {
		return fmt.Errorf("object key %q written while previous key has no value", k)
	}
	if top.n > 0 {
		e.Out = append(e.Out, ',')
	}
	top.n++
	e.Out = appendQuoted(e.Out, k)
	e.Out = append(e.Out, ':')
	top.afterKey = true
	return nil
}

// Object writes a JSON object to the output.
//
// Object members must be added within the provided members function,
// by calling [Encoder.Key] followed by exactly one value.
func (e *Encoder) Object(members func() error) error {
	e.sep()
	e.Out = append(e.Out, '{')
	e.stack = append(e.stack, level{})
	err := members()
	if e.stack[len(e.stack)-1].afterKey && err == nil {
		err = errors.New("object key written without a value")
	}
	e.stack = e.stack[:len(e.stack)-1]
	e.Out = append(e.Out, '}')
	return err
}

// Array writes a JSON array to the output.
//
// Array elements must be added within the provided elements
// function.
func (e *Encoder) Array(elements func() error) error {
	e.sep()
	e.Out = append(e.Out, '[')
	e.stack = append(e.stack, level{})
	err := elements()
	e.stack = e.stack[:len(e.stack)-1]
	e.Out = append(e.Out, ']')
	return err
}

const hex = "0123456789abcdef"

// appendQuoted appends the JSON string encoding of s to bs. Invalid
// UTF-8 is replaced with U+FFFD.
func appendQuoted(bs []byte, s string) []byte {
	bs = append(bs, '"')
	for i := 0; i < len(s); {
		c := s[i]
		if c < utf8.RuneSelf {
			switch {
			case c == '"' || c == '\\':
				bs = append(bs, '\\', c)
			case c == '\n':
				bs = append(bs, '\\', 'n')
			case c == '\r':
				bs = append(bs, '\\', 'r')
			case c == '\t':
				bs = append(bs, '\\', 't')
			case c < 0x20:
				bs = append(bs, '\\', 'u', '0', '0', hex[c>>4], hex[c&0xf])
			default:
				bs = append(bs, c)
			}
			i++
			continue
		}
		r, size := utf8.DecodeRuneInString(s[i:])
		switch {
		case r == utf8.RuneError && size == 1:
			bs = append(bs, `\ufffd`...)
		case r == '\u2028' || r == '\u2029':
			// Valid JSON, but not valid JavaScript.
			bs = append(bs, '\\', 'u', '2', '0', '2', hex[r&0xf])
		default:
			bs = append(bs, s[i:i+size]...)
		}
		i += size
	}
	return append(bs, '"')
}
