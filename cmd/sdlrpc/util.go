package main

import (
	"bytes"
	"fmt"
	"io"
	"log/slog"
	"maps"
	"os"
	"slices"
	"strings"
	"sync"

	"github.com/creachadair/command"
	"github.com/danderson/sdlrpc"
)

type indenter struct {
	prefix     string
	indentNext bool
}

func (i *indenter) v(v any) {
	fmt.Fprintf(i, "%v\n", v)
}

func (i *indenter) s(msg string) {
	io.WriteString(i, msg+"\n")
}

func (i *indenter) f(msg string, args ...any) {
	fmt.Fprintf(i, msg+"\n", args...)
}

func (i *indenter) Write(bs []byte) (int, error) {
	ret := 0
	for len(bs) > 0 {
		if i.indentNext {
			i.indentNext = false
			if _, err := io.WriteString(os.Stdout, i.prefix); err != nil {
				return ret, err
			}
		}

		wr := bs
		if idx := bytes.IndexByte(bs, '\n'); idx >= 0 {
			i.indentNext = true
			wr, bs = bs[:idx+1], bs[idx+1:]
		} else {
			bs = nil
		}

		n, err := os.Stdout.Write(wr)
		ret += n
		if err != nil {
			return ret, err
		}
	}
	return ret, nil
}

func (i *indenter) indent(n int) {
	i.prefix = strings.Repeat("  ", n)
}

func growTo(s []string, n int) []string {
	for len(s) < n {
		s = append(s, "")
	}
	return s
}

func sortedKeys[V any](m map[string]V) []string {
	return slices.Sorted(maps.Keys(m))
}

var setup = sync.OnceValue(func() error {
	if globalArgs.Verbose {
		h := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})
		slog.SetDefault(slog.New(h))
	}
	if globalArgs.Registry == "" {
		return nil
	}
	bs, err := os.ReadFile(globalArgs.Registry)
	if err != nil {
		return err
	}
	if err := sdlrpc.LoadRegistry(bs); err != nil {
		return fmt.Errorf("%s: %w", globalArgs.Registry, err)
	}
	slog.Debug("loaded registry", "file", globalArgs.Registry)
	return nil
})

// readMessage decodes the wire message in the file named by the first
// argument, or stdin.
func readMessage(env *command.Env) (*sdlrpc.Message, error) {
	if err := setup(); err != nil {
		return nil, err
	}
	var (
		bs   []byte
		err  error
		name = "stdin"
	)
	switch len(env.Args) {
	case 0:
		bs, err = io.ReadAll(os.Stdin)
	case 1:
		name = env.Args[0]
		bs, err = os.ReadFile(name)
	default:
		return nil, env.Usagef("at most one file argument is allowed.")
	}
	if err != nil {
		return nil, err
	}
	slog.Debug("read message", "source", name, "bytes", len(bs))

	msg, err := sdlrpc.Decode(bs)
	if err != nil {
		return nil, fmt.Errorf("decoding %s: %w", name, err)
	}
	slog.Debug("decoded message", "function", msg.Function(), "kind", msg.Kind(), "params", msg.Params().Len())
	return msg, nil
}

// describeField returns a one-line description of f.
func describeField(f sdlrpc.FieldSpec) string {
	var ret strings.Builder
	fmt.Fprintf(&ret, "%s %s", f.Key, f.TypeString())
	var attrs []string
	if f.Required {
		attrs = append(attrs, "required")
	}
	if f.MaxLength > 0 {
		attrs = append(attrs, fmt.Sprintf("maxLength=%d", f.MaxLength))
	}
	if f.MinValue != nil {
		attrs = append(attrs, fmt.Sprintf("minValue=%v", *f.MinValue))
	}
	if f.MaxValue != nil {
		attrs = append(attrs, fmt.Sprintf("maxValue=%v", *f.MaxValue))
	}
	if f.MinSize > 0 {
		attrs = append(attrs, fmt.Sprintf("minSize=%d", f.MinSize))
	}
	if f.MaxSize > 0 {
		attrs = append(attrs, fmt.Sprintf("maxSize=%d", f.MaxSize))
	}
	if f.Subscribable {
		attrs = append(attrs, "subscribable")
	}
	if f.Since != "" {
		attrs = append(attrs, "since "+f.Since)
	}
	if len(attrs) > 0 {
		fmt.Fprintf(&ret, " (%s)", strings.Join(attrs, ", "))
	}
	return ret.String()
}
