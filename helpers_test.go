package sdlrpc

import (
	"errors"
	"fmt"
	"slices"
	"strings"
)

// textAlignment is an enum type, registered with the test registry.
type textAlignment string

var alignments = RegisterEnum[textAlignment]("TextAlignment", "LEFT_ALIGNED", "RIGHT_ALIGNED", "CENTERED")

func (a textAlignment) Valid() bool { return alignments.Has(a) }

// image is a nested structure type.
type image struct{ p *Params }

func (i image) Params() *Params { return i.p }

func newImage(value, imageType string) image {
	ret := image{NewParams()}
	imageValue.Set(ret, value)
	imageKind.Set(ret, imageType)
	return ret
}

var (
	imageValue = StringField("value")
	imageKind  = StringField("imageType")
)

// Typed fields of the test Show request.
var (
	showMainField1   = StringField("mainField1")
	showMainField    = StringField("mainField") // deprecated spelling
	showAlignment    = EnumField[textAlignment]("alignment")
	showGraphic      = StructField("graphic", func(p *Params) image { return image{p} })
	showPresets      = ListField("customPresets", StringCodec)
	showSecondary    = ListField("secondaryGraphics", StructCodec(func(p *Params) image { return image{p} }))
	sendLocationLat  = FloatField("latitudeDegrees")
	alertDuration    = IntField("duration")
	alertProgressBar = BoolField("progressIndicator")
)

// testRegistry describes a few functions that the tests use. The
// message types of the messages package are not part of the root
// package tests.
const testRegistry = `
[[struct]]
name = "Image"

  [[struct.param]]
  key = "value"
  kind = "string"
  required = true
  maxLength = 65535

  [[struct.param]]
  key = "imageType"
  kind = "string"
  required = true

[[function]]
name = "Show"
kind = "request"
aliases = { mainField = "mainField1" }

  [[function.param]]
  key = "mainField1"
  kind = "string"
  maxLength = 500

  [[function.param]]
  key = "alignment"
  kind = "enum"
  enum = "TextAlignment"

  [[function.param]]
  key = "graphic"
  kind = "struct"
  struct = "Image"

  [[function.param]]
  key = "secondaryGraphics"
  kind = "struct"
  struct = "Image"
  array = true

  [[function.param]]
  key = "customPresets"
  kind = "string"
  array = true
  minSize = 1
  maxSize = 3
  maxLength = 10

[[function]]
name = "Alert"
kind = "request"

  [[function.param]]
  key = "alertText1"
  kind = "string"
  required = true
  maxLength = 500

  [[function.param]]
  key = "duration"
  kind = "int"
  minValue = 3000.0
  maxValue = 10000.0

  [[function.param]]
  key = "progressIndicator"
  kind = "bool"

[[function]]
name = "Alert"
kind = "response"

  [[function.param]]
  key = "success"
  kind = "bool"
  required = true

[[function]]
name = "SendLocation"
kind = "request"

  [[function.param]]
  key = "latitudeDegrees"
  kind = "float"
  required = true
  minValue = -90.0
  maxValue = 90.0

  [[function.param]]
  key = "longitudeDegrees"
  kind = "float"
  required = true
  minValue = -180.0
  maxValue = 180.0
`

func init() {
	MustLoadRegistry([]byte(testRegistry))
}

// mustParams returns a Params built from kvs, a list of alternating
// keys and values. Values are converted with ValueOf.
func mustParams(kvs ...any) *Params {
	if len(kvs)%2 != 0 {
		panic("odd number of arguments to mustParams")
	}
	ret := NewParams()
	for i := 0; i < len(kvs); i += 2 {
		v, err := ValueOf(kvs[i+1])
		if err != nil {
			panic(err)
		}
		ret.Set(kvs[i].(string), v)
	}
	return ret
}

// problemStrings summarizes the problems of a ValidationError, for
// comparison in tests. Each problem is rendered as "missing KEY" or
// "CONSTRAINT KEY".
func problemStrings(err error) []string {
	if err == nil {
		return nil
	}
	var verr *ValidationError
	if !errors.As(err, &verr) {
		return []string{"not a ValidationError: " + err.Error()}
	}
	var ret []string
	for _, p := range verr.Problems {
		var (
			missing    *MissingFieldError
			constraint *ConstraintError
		)
		switch {
		case errors.As(p, &missing):
			ret = append(ret, "missing "+missing.Key)
		case errors.As(p, &constraint):
			ret = append(ret, fmt.Sprintf("%s %s", constraint.Constraint, constraint.Key))
		default:
			ret = append(ret, "unknown problem: "+p.Error())
		}
	}
	slices.Sort(ret)
	return ret
}

// mustPanic calls fn and returns the panic message. It returns the
// empty string if fn doesn't panic.
func mustPanic(fn func()) (msg string) {
	defer func() {
		if r := recover(); r != nil {
			msg = strings.TrimSpace(fmt.Sprint(r))
			if msg == "" {
				msg = "panic"
			}
		}
	}()
	fn()
	return ""
}
