package main

import (
	"cmp"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"regexp"
	"slices"
	"syscall"

	"github.com/creachadair/command"
	"github.com/creachadair/flax"
	"github.com/creachadair/mds/heapq"
	"github.com/creachadair/mds/slice"
	"github.com/danderson/sdlrpc"
	_ "github.com/danderson/sdlrpc/messages"
	"github.com/kr/pretty"
)

var globalArgs struct {
	Registry string `flag:"registry,Load additional function definitions from this TOML file"`
	Verbose  bool   `flag:"verbose,Log decoding and validation steps to stderr"`
}

var formatArgs struct {
	NoValidate bool `flag:"no-validate,Re-encode without validating"`
}

func main() {
	root := &command.C{
		Name:     "sdlrpc",
		Usage:    "command args...",
		Help:     "Inspect RPC definitions and wire messages.",
		SetFlags: command.Flags(flax.MustBind, &globalArgs),
		Commands: []*command.C{
			{
				Name:  "list",
				Usage: "list args...",
				Commands: []*command.C{
					{
						Name:  "functions",
						Usage: "list functions [regexp]",
						Help: `List registered functions.

Functions are listed in order of their numeric ID, with the message
kinds that have parameter definitions. If a regexp is given, only
functions whose name matches are listed.`,
						Run: runListFunctions,
					},
					{
						Name:  "params",
						Usage: "list params function [kind]",
						Help: `List a function's parameters.

With no kind, the parameters of every registered kind of the function
are listed.`,
						Run: runListParams,
					},
					{
						Name:  "aliases",
						Usage: "list aliases function",
						Help:  "List a function's legacy parameter names.",
						Run:   command.Adapt(runListAliases),
					},
					{
						Name:  "enum",
						Usage: "list enum name",
						Help:  "List the tokens of a registered enum.",
						Run:   command.Adapt(runListEnum),
					},
				},
			},
			{
				Name:  "decode",
				Usage: "decode [file]",
				Help: `Decode a wire message and describe it.

The message is read from file, or from stdin if no file is given.
Parameters that the function does not define are marked as unknown.`,
				Run: runDecode,
			},
			{
				Name:  "validate",
				Usage: "validate [file]",
				Help: `Validate a wire message against its function's parameter definitions.

The message is read from file, or from stdin if no file is given.
Every missing required parameter and every violated constraint is
reported.`,
				Run: runValidate,
			},
			{
				Name:  "format",
				Usage: "format [file]",
				Help: `Re-encode a wire message.

The message is read from file, or from stdin if no file is given, and
written to stdout in canonical form. Parameter order is preserved.`,
				SetFlags: command.Flags(flax.MustBind, &formatArgs),
				Run:      runFormat,
			},
			command.HelpCommand(nil),
			command.VersionCommand(),
		},
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()
	env := root.NewEnv(nil).SetContext(ctx)
	command.RunOrFail(env, os.Args[1:])
}

func runListFunctions(env *command.Env) error {
	if err := setup(); err != nil {
		return err
	}
	args := growTo(env.Args, 1)
	f, err := regexp.Compile(args[0])
	if err != nil {
		return err
	}

	kinds := map[sdlrpc.FunctionID][]sdlrpc.MessageKind{}
	for _, spec := range sdlrpc.Functions() {
		kinds[spec.Function] = append(kinds[spec.Function], spec.Kind)
	}
	fns := heapq.New(func(a, b sdlrpc.FunctionID) int { return cmp.Compare(a, b) })
	for fn := range kinds {
		fns.Add(fn)
	}
	var ordered []sdlrpc.FunctionID
	for !fns.IsEmpty() {
		fn, _ := fns.Pop()
		ordered = append(ordered, fn)
	}

	match := func(fn sdlrpc.FunctionID) bool { return f.MatchString(fn.String()) }
	for fn := range slice.Select(ordered, match) {
		fmt.Printf("%-30s %6d  %v\n", fn, int32(fn), kinds[fn])
	}
	return nil
}

func runListParams(env *command.Env) error {
	if err := setup(); err != nil {
		return err
	}
	if len(env.Args) < 1 || len(env.Args) > 2 {
		return env.Usagef("params requires a function name and an optional kind.")
	}
	fn, err := sdlrpc.ParseFunctionID(env.Args[0])
	if err != nil {
		return err
	}
	var kinds []sdlrpc.MessageKind
	if len(env.Args) == 2 {
		k, err := sdlrpc.ParseMessageKind(env.Args[1])
		if err != nil {
			return err
		}
		kinds = append(kinds, k)
	} else {
		kinds = append(kinds, sdlrpc.Request, sdlrpc.Response, sdlrpc.Notification)
	}

	var out indenter
	found := false
	for _, k := range kinds {
		spec, ok := sdlrpc.LookupFunction(fn, k)
		if !ok {
			continue
		}
		if found {
			out.s("")
		}
		found = true
		out.indent(0)
		out.f("%s %s", fn, k)
		out.indent(1)
		printFieldSpecs(&out, spec.Params)
	}
	if !found {
		return fmt.Errorf("no parameter definitions for %s", fn)
	}
	return nil
}

func runListAliases(env *command.Env, function string) error {
	if err := setup(); err != nil {
		return err
	}
	fn, err := sdlrpc.ParseFunctionID(function)
	if err != nil {
		return err
	}
	as := sdlrpc.Aliases(fn)
	for _, old := range sortedKeys(as) {
		fmt.Printf("%s -> %s\n", old, as[old])
	}
	return nil
}

func runListEnum(env *command.Env, name string) error {
	if err := setup(); err != nil {
		return err
	}
	toks, ok := sdlrpc.EnumTokens(name)
	if !ok {
		return fmt.Errorf("unknown enum %q", name)
	}
	for _, t := range toks {
		fmt.Println(t)
	}
	return nil
}

func runDecode(env *command.Env) error {
	msg, err := readMessage(env)
	if err != nil {
		return err
	}

	var out indenter
	out.v(msg.Function())
	out.indent(1)
	out.f("kind: %s", msg.Kind())
	if id, ok := msg.CorrelationID().GetOK(); ok {
		out.f("correlationID: %d", id)
	}
	var fields []sdlrpc.FieldSpec
	if spec, ok := msg.Spec(); ok {
		fields = spec.Params
	} else {
		out.s("(no parameter definitions)")
	}
	printParams(&out, 1, fields, msg.Params())
	return nil
}

func runValidate(env *command.Env) error {
	msg, err := readMessage(env)
	if err != nil {
		return err
	}
	err = msg.Validate()
	var verr *sdlrpc.ValidationError
	if errors.As(err, &verr) {
		fmt.Printf("%s %s: %d problems\n", msg.Function(), msg.Kind(), len(verr.Problems))
		for _, p := range verr.Problems {
			fmt.Printf("  %v\n", p)
		}
		return errors.New("validation failed")
	} else if err != nil {
		return err
	}
	fmt.Printf("%s %s: ok\n", msg.Function(), msg.Kind())
	return nil
}

func runFormat(env *command.Env) error {
	msg, err := readMessage(env)
	if err != nil {
		return err
	}
	var bs []byte
	if formatArgs.NoValidate {
		bs, err = msg.MarshalJSON()
	} else {
		bs, err = sdlrpc.Marshal(msg)
	}
	if err != nil {
		return err
	}
	fmt.Println(string(bs))
	return nil
}

// printFieldSpecs writes one line per parameter definition, recursing
// into structure definitions.
func printFieldSpecs(out *indenter, fs []sdlrpc.FieldSpec) {
	for _, f := range fs {
		out.s(describeField(f))
		if f.Kind != sdlrpc.KindStruct || f.Struct == "" {
			continue
		}
		if st, ok := sdlrpc.LookupStruct(f.Struct); ok {
			prefix := out.prefix
			out.prefix += "  "
			printFieldSpecs(out, st.Params)
			out.prefix = prefix
		}
	}
}

// printParams writes the parameters of p, annotated with their
// definitions from fields.
func printParams(out *indenter, depth int, fields []sdlrpc.FieldSpec, p *sdlrpc.Params) {
	for k, v := range p.All() {
		out.indent(depth)
		idx := slices.IndexFunc(fields, func(f sdlrpc.FieldSpec) bool { return f.Key == k })
		if idx < 0 {
			slog.Debug("unknown parameter", "key", k, "kind", v.Kind())
			out.f("%s (unknown): %# v", k, pretty.Formatter(v.Interface()))
			continue
		}
		f := fields[idx]
		nested, isStruct := v.AsStruct()
		if !isStruct || f.Struct == "" {
			out.f("%s (%s): %# v", k, f.TypeString(), pretty.Formatter(v.Interface()))
			continue
		}
		out.f("%s (%s):", k, f.TypeString())
		st, _ := sdlrpc.LookupStruct(f.Struct)
		printParams(out, depth+1, st.Params, nested)
	}
}
