package tool

// Context is the parsed invocation payload delivered by the host trigger.
// It carries an "arguments" object mapping parameter names to raw values,
// plus any metadata fields the host passes through untouched.
//
// A function parameter declared with this exact type is the reserved
// full-context slot: it is excluded from the generated schema and receives
// the unmodified Context at invocation time.
type Context map[string]any

// Arguments returns the "arguments" object from the context, reporting
// whether it was present and well-formed.
func (c Context) Arguments() (map[string]any, bool) {
	args, ok := c["arguments"].(map[string]any)
	return args, ok
}
