package sdlrpc

import (
	"fmt"
	"strconv"
	"unicode/utf8"
)

// check returns every problem with p according to s.
func (s FunctionSpec) check(p *Params) []error {
	c := checker{fn: s.Function, kind: s.Kind}
	c.params("", s.Params, p)
	return c.problems
}

// checker accumulates the validation problems of one message.
type checker struct {
	fn       FunctionID
	kind     MessageKind
	problems []error
}

func (c *checker) missing(path string) {
	c.problems = append(c.problems, &MissingFieldError{
		Function: c.fn,
		Kind:     c.kind,
		Key:      path,
	})
}

func (c *checker) violation(path, constraint, detail string, args ...any) {
	c.problems = append(c.problems, &ConstraintError{
		Function:   c.fn,
		Kind:       c.kind,
		Key:        path,
		Constraint: constraint,
		Detail:     fmt.Sprintf(detail, args...),
	})
}

// params checks the parameters of p described by fields. prefix is
// the path of p within the message, empty for the top level.
func (c *checker) params(prefix string, fields []FieldSpec, p *Params) {
	for _, f := range fields {
		path := prefix + f.Key
		v, ok := p.Lookup(f.Key)
		if !ok {
			if f.Required {
				c.missing(path)
			}
			continue
		}

		if !f.Array {
			if _, ok := v.coerce(f.Kind); !ok && f.Required {
				// Unreadable is as good as absent for a
				// required parameter.
				c.missing(path)
				continue
			}
			c.value(path, f, v)
			continue
		}

		l, ok := v.AsList()
		if !ok {
			if f.Required {
				c.missing(path)
			} else {
				c.violation(path, "kind", "got %s, want list of %s", v.Kind(), f.Kind)
			}
			continue
		}
		if f.MinSize > 0 && len(l) < f.MinSize {
			c.violation(path, "minSize", "%d elements, want at least %d", len(l), f.MinSize)
		}
		if f.MaxSize > 0 && len(l) > f.MaxSize {
			c.violation(path, "maxSize", "%d elements, want at most %d", len(l), f.MaxSize)
		}
		for i, e := range l {
			c.value(path+"["+strconv.Itoa(i)+"]", f, e)
		}
	}
}

// value checks the single value v against the per-value constraints
// of f.
func (c *checker) value(path string, f FieldSpec, v Value) {
	cv, ok := v.coerce(f.Kind)
	if !ok {
		c.violation(path, "kind", "got %s, want %s", v.Kind(), f.Kind)
		return
	}

	switch f.Kind {
	case KindString, KindEnum:
		s, _ := cv.AsString()
		if f.MaxLength > 0 {
			if n := utf8.RuneCountInString(s); n > f.MaxLength {
				c.violation(path, "maxLength", "%d characters, want at most %d", n, f.MaxLength)
			}
		}
		if f.Kind == KindEnum {
			if _, valid := enumHas(f.Enum, s); !valid {
				c.violation(path, "enum", "%q is not a %s", s, f.Enum)
			}
		}
	case KindInt, KindFloat:
		n, _ := cv.AsFloat()
		if f.MinValue != nil && n < *f.MinValue {
			c.violation(path, "minValue", "%v is less than %v", cv, *f.MinValue)
		}
		if f.MaxValue != nil && n > *f.MaxValue {
			c.violation(path, "maxValue", "%v is greater than %v", cv, *f.MaxValue)
		}
	case KindStruct:
		if f.Struct == "" {
			return
		}
		spec, ok := LookupStruct(f.Struct)
		if !ok {
			return
		}
		nested, _ := cv.AsStruct()
		c.params(path+".", spec.Params, nested)
	case KindBool:
	}
}
