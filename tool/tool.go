// Package tool adapts ordinary Go functions into tool endpoints for a
// serverless host's tool-calling trigger. A tool's schema (name,
// description, parameters) is derived once from the function's signature
// plus registration metadata; at invocation time the adapter parses the
// host's context payload, binds and coerces arguments, calls the function,
// and returns its result as text or a structured error.
package tool

import (
	"context"
	"encoding/json"
	"fmt"
	"reflect"
	"regexp"
	"runtime"
	"strings"
	"unicode"
)

var (
	contextType   = reflect.TypeOf(Context(nil))
	goContextType = reflect.TypeOf((*context.Context)(nil)).Elem()
	errorType     = reflect.TypeOf((*error)(nil)).Elem()
)

// slotKind says how a single function parameter is filled at invocation.
type slotKind int

const (
	slotArgument    slotKind = iota // bound from context arguments
	slotToolContext                 // receives the full parsed Context
	slotGoContext                   // receives the invocation's context.Context
)

type slot struct {
	kind  slotKind
	param int // index into Schema.Parameters when kind is slotArgument
	typ   reflect.Type
	def   *reflect.Value // converted default; nil when the parameter is required
}

// Tool wraps a function together with its derived schema. Build one with
// New; the schema is fixed for the lifetime of the Tool.
type Tool struct {
	schema       Schema
	fn           reflect.Value
	slots        []slot
	returnsError bool
}

// Option configures tool construction.
type Option func(*options)

type paramMeta struct {
	name        string
	description string
}

type options struct {
	name        string
	description string
	params      []paramMeta
	defaults    map[string]any
}

// WithName overrides the tool name derived from the function identifier.
// Anonymous functions have no usable identifier and must be named this way.
func WithName(name string) Option {
	return func(o *options) { o.name = name }
}

// WithDescription sets the tool's documentation. The schema keeps exactly
// the first non-empty line.
func WithDescription(doc string) Option {
	return func(o *options) { o.description = doc }
}

// WithParam declares the name and description of the next schema-visible
// parameter, in the function's declaration order. Reserved context
// parameters are skipped and need no declaration.
func WithParam(name, description string) Option {
	return func(o *options) {
		o.params = append(o.params, paramMeta{name: name, description: description})
	}
}

// WithDefault registers a default value for the named parameter, making it
// optional. The value must be convertible to the parameter's Go type.
func WithDefault(name string, value any) Option {
	return func(o *options) {
		if o.defaults == nil {
			o.defaults = make(map[string]any)
		}
		o.defaults[name] = value
	}
}

// New builds a Tool from fn and registration metadata. Building inspects
// the signature only; fn is never invoked.
func New(fn any, opts ...Option) (*Tool, error) {
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	v := reflect.ValueOf(fn)
	if !v.IsValid() || v.Kind() != reflect.Func {
		return nil, fmt.Errorf("tool: fn must be a function, got %T", fn)
	}
	t := v.Type()
	if t.IsVariadic() {
		return nil, fmt.Errorf("tool: variadic functions are not supported")
	}

	name := o.name
	if name == "" {
		name = deriveName(v)
	}
	if name == "" {
		return nil, fmt.Errorf("tool: anonymous function requires WithName")
	}

	tool := &Tool{
		schema: Schema{
			Name:        name,
			Description: firstLine(o.description),
		},
		fn: v,
	}

	argIndex := 0
	for i := 0; i < t.NumIn(); i++ {
		in := t.In(i)
		switch {
		case in == contextType:
			tool.slots = append(tool.slots, slot{kind: slotToolContext, typ: in})
		case in == goContextType:
			tool.slots = append(tool.slots, slot{kind: slotGoContext, typ: in})
		default:
			meta := paramMeta{name: fmt.Sprintf("arg%d", argIndex+1)}
			if argIndex < len(o.params) {
				meta = o.params[argIndex]
			}

			if hasParameter(tool.schema.Parameters, meta.name) {
				return nil, fmt.Errorf("tool %s: duplicate parameter %q", name, meta.name)
			}

			s := slot{kind: slotArgument, param: argIndex, typ: in}
			parameter := Parameter{
				Name:        meta.name,
				Kind:        kindOf(in),
				Description: meta.description,
				Required:    true,
			}

			if value, ok := o.defaults[meta.name]; ok {
				def, err := convertDefault(value, in)
				if err != nil {
					return nil, fmt.Errorf("tool %s: invalid default for parameter %q: %w", name, meta.name, err)
				}
				s.def = &def
				parameter.Required = false
			}

			tool.schema.Parameters = append(tool.schema.Parameters, parameter)
			tool.slots = append(tool.slots, s)
			argIndex++
		}
	}

	if len(o.params) > argIndex {
		return nil, fmt.Errorf("tool %s: %d parameters declared, function takes %d", name, len(o.params), argIndex)
	}
	for defName := range o.defaults {
		if !hasParameter(tool.schema.Parameters, defName) {
			return nil, fmt.Errorf("tool %s: default for undeclared parameter %q", name, defName)
		}
	}

	switch t.NumOut() {
	case 0:
	case 1:
		tool.returnsError = t.Out(0) == errorType
	case 2:
		if t.Out(1) != errorType {
			return nil, fmt.Errorf("tool %s: second return value must be error, got %s", name, t.Out(1))
		}
		tool.returnsError = true
	default:
		return nil, fmt.Errorf("tool %s: function may return at most a value and an error", name)
	}

	return tool, nil
}

// Name returns the tool's name.
func (t *Tool) Name() string {
	return t.schema.Name
}

// Schema returns a copy of the tool's schema.
func (t *Tool) Schema() Schema {
	s := t.schema
	s.Parameters = append([]Parameter(nil), t.schema.Parameters...)
	return s
}

func hasParameter(parameters []Parameter, name string) bool {
	for _, p := range parameters {
		if p.Name == name {
			return true
		}
	}
	return false
}

// convertDefault normalizes a registered default through its JSON form so
// it takes the same conversion path as a raw argument value.
func convertDefault(value any, typ reflect.Type) (reflect.Value, error) {
	data, err := json.Marshal(value)
	if err != nil {
		return reflect.Value{}, err
	}
	var raw any
	if err := json.Unmarshal(data, &raw); err != nil {
		return reflect.Value{}, err
	}
	return convertValue(raw, typ)
}

var anonymousFunc = regexp.MustCompile(`^func\d+(\.\d+)*$`)

// deriveName extracts the function's identifier from its runtime symbol
// and converts it to snake_case. Returns "" when the function has no
// usable identifier (closures, method values of anonymous types).
func deriveName(v reflect.Value) string {
	f := runtime.FuncForPC(v.Pointer())
	if f == nil {
		return ""
	}

	name := f.Name()
	if i := strings.LastIndex(name, "/"); i >= 0 {
		name = name[i+1:]
	}
	if i := strings.LastIndex(name, "."); i >= 0 {
		name = name[i+1:]
	}
	name = strings.TrimSuffix(name, "-fm")

	if name == "" || anonymousFunc.MatchString(name) {
		return ""
	}
	return snakeCase(name)
}

// snakeCase converts an identifier like addNumbers or ParseHTTPHeader to
// add_numbers / parse_http_header.
func snakeCase(s string) string {
	var b strings.Builder
	runes := []rune(s)
	for i, r := range runes {
		if unicode.IsUpper(r) {
			prevLower := i > 0 && unicode.IsLower(runes[i-1])
			nextLower := i+1 < len(runes) && unicode.IsLower(runes[i+1])
			if i > 0 && (prevLower || nextLower) {
				b.WriteByte('_')
			}
			b.WriteRune(unicode.ToLower(r))
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

// firstLine returns the first non-empty line of doc, trimmed.
func firstLine(doc string) string {
	for _, line := range strings.Split(doc, "\n") {
		if line = strings.TrimSpace(line); line != "" {
			return line
		}
	}
	return ""
}
