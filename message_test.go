package sdlrpc

import (
	"errors"
	"sync"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name string
		fn   FunctionID
		kind MessageKind
		in   *Params
		want []string
	}{
		{
			name: "valid",
			fn:   Alert,
			kind: Request,
			in:   mustParams("alertText1", "hi", "duration", 5000, "progressIndicator", true),
		},
		{
			name: "missing required",
			fn:   Alert,
			kind: Request,
			in:   mustParams("duration", 5000),
			want: []string{"missing alertText1"},
		},
		{
			name: "required of wrong kind is missing",
			fn:   Alert,
			kind: Request,
			in:   mustParams("alertText1", 12),
			want: []string{"missing alertText1"},
		},
		{
			name: "optional of wrong kind",
			fn:   Alert,
			kind: Request,
			in:   mustParams("alertText1", "hi", "progressIndicator", "yes"),
			want: []string{"kind progressIndicator"},
		},
		{
			name: "numeric bounds",
			fn:   Alert,
			kind: Request,
			in:   mustParams("alertText1", "hi", "duration", 100),
			want: []string{"minValue duration"},
		},
		{
			name: "float bounds with int widening",
			fn:   SendLocation,
			kind: Request,
			in:   mustParams("latitudeDegrees", 91, "longitudeDegrees", -180.5),
			want: []string{"maxValue latitudeDegrees", "minValue longitudeDegrees"},
		},
		{
			name: "float bounds inclusive",
			fn:   SendLocation,
			kind: Request,
			in:   mustParams("latitudeDegrees", 90, "longitudeDegrees", -180.0),
		},
		{
			name: "string length counts characters",
			fn:   Show,
			kind: Request,
			in:   mustParams("customPresets", []string{"éééééééééé", "abcdefghijk"}),
			want: []string{"maxLength customPresets[1]"},
		},
		{
			name: "array size",
			fn:   Show,
			kind: Request,
			in:   mustParams("customPresets", []string{"a", "b", "c", "d"}),
			want: []string{"maxSize customPresets"},
		},
		{
			name: "empty array",
			fn:   Show,
			kind: Request,
			in:   mustParams("customPresets", List()),
			want: []string{"minSize customPresets"},
		},
		{
			name: "array of wrong kind",
			fn:   Show,
			kind: Request,
			in:   mustParams("customPresets", "a"),
			want: []string{"kind customPresets"},
		},
		{
			name: "array element of wrong kind",
			fn:   Show,
			kind: Request,
			in:   mustParams("customPresets", []any{"a", 2}),
			want: []string{"kind customPresets[1]"},
		},
		{
			name: "unknown enum token",
			fn:   Show,
			kind: Request,
			in:   mustParams("alignment", "JUSTIFIED"),
			want: []string{"enum alignment"},
		},
		{
			name: "known enum token",
			fn:   Show,
			kind: Request,
			in:   mustParams("alignment", "LEFT_ALIGNED"),
		},
		{
			name: "nested structure",
			fn:   Show,
			kind: Request,
			in:   mustParams("graphic", mustParams("value", "icon.png")),
			want: []string{"missing graphic.imageType"},
		},
		{
			name: "list of structures",
			fn:   Show,
			kind: Request,
			in: mustParams("secondaryGraphics", []*Params{
				mustParams("value", "a.png", "imageType", "STATIC"),
				mustParams("imageType", 4),
			}),
			want: []string{"missing secondaryGraphics[1].imageType", "missing secondaryGraphics[1].value"},
		},
		{
			name: "unknown keys are fine",
			fn:   Alert,
			kind: Response,
			in:   mustParams("success", true, "futureParam", mustParams("x", 1)),
		},
		{
			name: "several problems",
			fn:   SendLocation,
			kind: Request,
			in:   mustParams("latitudeDegrees", "north"),
			want: []string{"missing latitudeDegrees", "missing longitudeDegrees"},
		},
		{
			name: "no registered spec",
			fn:   Speak,
			kind: Request,
			in:   mustParams("anything", "goes"),
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			m := NewMessage(tc.fn, tc.kind, tc.in)
			err := m.Validate()
			if diff := cmp.Diff(problemStrings(err), tc.want); diff != "" {
				t.Errorf("Validate() wrong problems (-got+want):\n%s", diff)
			}
			wantState := Validated
			if len(tc.want) > 0 {
				wantState = Building
			}
			if got := m.State(); got != wantState {
				t.Errorf("State() = %v, want %v", got, wantState)
			}
		})
	}
}

func TestValidationErrorTypes(t *testing.T) {
	m := NewMessage(Alert, Request, mustParams("duration", 1))
	err := m.Validate()

	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("Validate() error is %T, want *ValidationError", err)
	}
	if verr.Function != Alert || verr.Kind != Request || len(verr.Problems) != 2 {
		t.Errorf("ValidationError = %+v, want Alert request with 2 problems", verr)
	}

	var missing *MissingFieldError
	if !errors.As(err, &missing) {
		t.Fatal("ValidationError does not unwrap to MissingFieldError")
	}
	if missing.Key != "alertText1" || missing.Function != Alert {
		t.Errorf("MissingFieldError = %+v, want Alert alertText1", missing)
	}

	var constraint *ConstraintError
	if !errors.As(err, &constraint) {
		t.Fatal("ValidationError does not unwrap to ConstraintError")
	}
	if constraint.Key != "duration" || constraint.Constraint != "minValue" {
		t.Errorf("ConstraintError = %+v, want duration minValue", constraint)
	}

	want := `invalid Alert request: missing required parameter "alertText1"; parameter "duration" violates minValue: 1 is less than 3000`
	if got := err.Error(); got != want {
		t.Errorf("Error() =\n  %s\nwant\n  %s", got, want)
	}
}

func TestMessageStates(t *testing.T) {
	m := NewRequest(Alert)
	if got := m.State(); got != Building {
		t.Fatalf("new message state = %v, want building", got)
	}
	if err := m.Validate(); err == nil {
		t.Fatal("Validate() of empty Alert succeeded")
	}

	m.Params().Set("alertText1", String("hi"))
	if err := m.Validate(); err != nil {
		t.Fatalf("Validate() got err: %v", err)
	}
	if got := m.State(); got != Validated {
		t.Fatalf("state after Validate = %v, want validated", got)
	}

	// Any change goes back to building, even a valid one.
	m.Params().Set("progressIndicator", Bool(true))
	if got := m.State(); got != Building {
		t.Errorf("state after change = %v, want building", got)
	}

	if err := m.Seal(); err != nil {
		t.Fatalf("Seal() got err: %v", err)
	}
	if got := m.State(); got != Sealed {
		t.Errorf("state after Seal = %v, want sealed", got)
	}
	if err := m.Seal(); err != nil {
		t.Errorf("second Seal() got err: %v", err)
	}
	if msg := mustPanic(func() { alertDuration.Set(m, 5000) }); msg == "" {
		t.Error("typed write to sealed message did not panic")
	}
	if got, ok := alertProgressBar.Get(m).GetOK(); !ok || !got {
		t.Errorf("progressIndicator on sealed message = %v, %v, want true", got, ok)
	}
}

func TestMessageNestedChangeInvalidates(t *testing.T) {
	m := NewRequest(Show)
	showGraphic.Set(m, newImage("icon.png", "STATIC"))
	if err := m.Validate(); err != nil {
		t.Fatalf("Validate() got err: %v", err)
	}
	imageKind.Clear(showGraphic.Get(m).Get())
	if got := m.State(); got != Building {
		t.Errorf("state after nested change = %v, want building", got)
	}
	if err := m.Seal(); err == nil {
		t.Error("Seal() of message with invalid nested structure succeeded")
	}
	if m.Sealed() {
		t.Error("failed Seal() sealed the message")
	}
}

func TestMessageCorrelationID(t *testing.T) {
	req := NewRequest(Alert)
	if req.CorrelationID().Present() {
		t.Error("new request has a correlation ID")
	}
	if err := req.SetCorrelationID(7); err != nil {
		t.Fatalf("SetCorrelationID(7) got err: %v", err)
	}
	if err := req.SetCorrelationID(7); err != nil {
		t.Errorf("SetCorrelationID(7) again got err: %v", err)
	}
	if err := req.SetCorrelationID(8); !errors.Is(err, ErrCorrelationAssigned) {
		t.Errorf("SetCorrelationID(8) err = %v, want ErrCorrelationAssigned", err)
	}
	if got := req.CorrelationID().Get(); got != 7 {
		t.Errorf("CorrelationID() = %d, want 7", got)
	}

	resp := NewResponse(Alert, 7)
	if got, ok := resp.CorrelationID().GetOK(); !ok || got != 7 {
		t.Errorf("response CorrelationID() = %d, %v, want 7", got, ok)
	}
	if err := resp.SetCorrelationID(9); err != nil {
		t.Errorf("response SetCorrelationID(9) got err: %v", err)
	}

	n := NewNotification(OnSystemRequest)
	if err := n.SetCorrelationID(1); !errors.Is(err, ErrNoCorrelation) {
		t.Errorf("notification SetCorrelationID err = %v, want ErrNoCorrelation", err)
	}

	sealed := NewRequest(Speak)
	if err := sealed.Seal(); err != nil {
		t.Fatal(err)
	}
	if err := sealed.SetCorrelationID(1); !errors.Is(err, ErrSealed) {
		t.Errorf("sealed SetCorrelationID err = %v, want ErrSealed", err)
	}
}

func TestMessageRequire(t *testing.T) {
	m := NewMessage(Show, Request, mustParams("mainField1", "hi", "alignment", 3))

	v, err := m.Require("mainField", KindString)
	if err != nil {
		t.Fatalf("Require(mainField) got err: %v", err)
	}
	if !v.Equal(String("hi")) {
		t.Errorf("Require(mainField) = %v, want hi", v)
	}

	for _, key := range []string{"alignment", "graphic"} {
		_, err := m.Require(key, KindString)
		var missing *MissingFieldError
		if !errors.As(err, &missing) {
			t.Errorf("Require(%q) err = %v, want MissingFieldError", key, err)
			continue
		}
		if missing.Key != key || missing.Function != Show || missing.Kind != Request {
			t.Errorf("Require(%q) error = %+v, want Show request %s", key, missing, key)
		}
	}
}

func TestMessageClone(t *testing.T) {
	m := NewMessage(Alert, Request, mustParams("alertText1", "hi"))
	if err := m.SetCorrelationID(3); err != nil {
		t.Fatal(err)
	}
	if err := m.Seal(); err != nil {
		t.Fatal(err)
	}

	c := m.Clone()
	if c.State() != Building {
		t.Errorf("clone state = %v, want building", c.State())
	}
	if c.CorrelationID().Get() != 3 || c.Function() != Alert || c.Kind() != Request {
		t.Errorf("clone = %v, want Alert request #3", c)
	}
	c.Params().Set("alertText1", String("changed"))
	if got := m.Params().GetRequired("alertText1", KindString); !got.Equal(String("hi")) {
		t.Errorf("original alertText1 = %v after changing clone, want hi", got)
	}
}

func TestMessageString(t *testing.T) {
	m := NewResponse(Alert, 12)
	m.Params().Set("success", Bool(true))
	want := `Alert response #12 {"success": true}`
	if got := m.String(); got != want {
		t.Errorf("String() = %s, want %s", got, want)
	}
}

func TestMessageKindText(t *testing.T) {
	for k, s := range messageKindToStr {
		if got := strToMessageKind[s]; got != k {
			t.Errorf("strToMessageKind[%q] = %v, want %v", s, got, k)
		}
		var back MessageKind
		if err := back.UnmarshalText([]byte(s)); err != nil || back != k {
			t.Errorf("UnmarshalText(%q) = %v, %v, want %v", s, back, err, k)
		}
	}
	if _, err := ParseMessageKind("Request"); err == nil {
		t.Error(`ParseMessageKind("Request") succeeded, want case-sensitive match`)
	}
	if _, err := MessageKind(9).MarshalText(); err == nil {
		t.Error("MarshalText of invalid kind succeeded")
	}
}

func TestMessageAliasAccess(t *testing.T) {
	m := NewRequest(Show)
	m.Set("mainField", String("a"))
	if got := m.Get("mainField1", KindString).Get(); !got.Equal(String("a")) {
		t.Errorf("mainField1 = %v, want a", got)
	}
	if diff := cmp.Diff(m.Params().Keys(), []string{"mainField1"}); diff != "" {
		t.Errorf("wrong keys (-got+want):\n%s", diff)
	}
	m.Set("mainField1", Value{})
	if m.Get("mainField", KindString).Present() {
		t.Error("mainField present after setting no value")
	}
	m.Set("mainField1", String("b"))
	if !m.Clear("mainField") {
		t.Error("Clear(mainField) reported absent")
	}
	if m.Params().Len() != 0 {
		t.Errorf("params = %v after Clear, want empty", m.Params())
	}
}

func TestValidateSealedConcurrent(t *testing.T) {
	m, err := Decode([]byte(`{"request":{"name":"Alert","correlationID":3,"parameters":{"duration":1}}}`))
	if err != nil {
		t.Fatalf("Decode got err: %v", err)
	}

	var wg sync.WaitGroup
	errs := make([]error, 8)
	for i := range errs {
		wg.Add(1)
		go func() {
			defer wg.Done()
			errs[i] = m.Validate()
			if st := m.State(); st != Sealed {
				t.Errorf("State() = %v, want %v", st, Sealed)
			}
		}()
	}
	wg.Wait()

	want := []string{"minValue duration", "missing alertText1"}
	for i, err := range errs {
		if diff := cmp.Diff(problemStrings(err), want); diff != "" {
			t.Errorf("Validate #%d wrong problems (-got+want):\n%s", i, diff)
		}
	}
}
