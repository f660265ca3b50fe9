package tool

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"reflect"
	"strconv"
	"strings"
)

// Handle adapts one invocation: it parses the host's context payload, binds
// and coerces arguments against the schema, calls the wrapped function, and
// serializes its result. Every failure is reported as a structured *Error;
// nothing is retried and nothing escapes as a fault.
func (t *Tool) Handle(ctx context.Context, payload []byte) (string, *Error) {
	if ctx == nil {
		ctx = context.Background()
	}

	var tctx Context
	if err := json.Unmarshal(payload, &tctx); err != nil {
		return "", Errorf(ErrInvalidContext, "invalid context payload: %v", err)
	}
	if tctx == nil {
		return "", NewError(ErrInvalidContext, "context payload is null")
	}
	args, ok := tctx.Arguments()
	if !ok {
		return "", NewError(ErrInvalidContext, `context is missing an "arguments" object`)
	}

	in := make([]reflect.Value, len(t.slots))
	for i, s := range t.slots {
		switch s.kind {
		case slotGoContext:
			in[i] = reflect.ValueOf(ctx)
		case slotToolContext:
			in[i] = reflect.ValueOf(tctx)
		default:
			p := t.schema.Parameters[s.param]
			raw, present := args[p.Name]
			if !present {
				if s.def != nil {
					in[i] = *s.def
					continue
				}
				return "", Errorf(ErrMissingParameter, "missing required parameter %q for tool %q", p.Name, t.schema.Name)
			}
			v, err := convertValue(raw, s.typ)
			if err != nil {
				return "", Errorf(ErrTypeError, "parameter %q: %v", p.Name, err)
			}
			in[i] = v
		}
	}

	result, terr := t.call(in)
	if terr != nil {
		return "", terr
	}
	return serialize(result)
}

// call invokes the function, translating panics and error returns into
// runtime errors.
func (t *Tool) call(in []reflect.Value) (result reflect.Value, terr *Error) {
	defer func() {
		if r := recover(); r != nil {
			result = reflect.Value{}
			terr = Errorf(ErrRuntimeError, "tool %q panicked: %v", t.schema.Name, r)
		}
	}()

	out := t.fn.Call(in)
	if t.returnsError {
		if errValue := out[len(out)-1]; !errValue.IsNil() {
			return reflect.Value{}, Errorf(ErrRuntimeError, "tool %q: %v", t.schema.Name, errValue.Interface())
		}
		out = out[:len(out)-1]
	}
	if len(out) == 0 {
		return reflect.Value{}, nil
	}
	return out[0], nil
}

// convertValue coerces a raw JSON-decoded argument to the function's
// parameter type.
func convertValue(raw any, typ reflect.Type) (reflect.Value, error) {
	v := reflect.New(typ).Elem()

	switch typ.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		n, err := toInt64(raw)
		if err != nil {
			return reflect.Value{}, err
		}
		if v.OverflowInt(n) {
			return reflect.Value{}, fmt.Errorf("%d overflows %s", n, typ)
		}
		v.SetInt(n)

	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		n, err := toInt64(raw)
		if err != nil {
			return reflect.Value{}, err
		}
		if n < 0 {
			return reflect.Value{}, fmt.Errorf("negative value %d for %s", n, typ)
		}
		if v.OverflowUint(uint64(n)) {
			return reflect.Value{}, fmt.Errorf("%d overflows %s", n, typ)
		}
		v.SetUint(uint64(n))

	case reflect.Float32, reflect.Float64:
		f, err := toFloat64(raw)
		if err != nil {
			return reflect.Value{}, err
		}
		if v.OverflowFloat(f) {
			return reflect.Value{}, fmt.Errorf("%g overflows %s", f, typ)
		}
		v.SetFloat(f)

	case reflect.Bool:
		b, err := toBool(raw)
		if err != nil {
			return reflect.Value{}, err
		}
		v.SetBool(b)

	case reflect.String:
		s, err := toString(raw)
		if err != nil {
			return reflect.Value{}, err
		}
		v.SetString(s)

	default:
		// Unrecognized parameter types round-trip through JSON.
		data, err := json.Marshal(raw)
		if err != nil {
			return reflect.Value{}, err
		}
		ptr := reflect.New(typ)
		if err := json.Unmarshal(data, ptr.Interface()); err != nil {
			return reflect.Value{}, fmt.Errorf("cannot convert %T to %s: %v", raw, typ, err)
		}
		v = ptr.Elem()
	}

	return v, nil
}

func toInt64(raw any) (int64, error) {
	switch x := raw.(type) {
	case float64:
		if x != math.Trunc(x) {
			return 0, fmt.Errorf("%v is not an integer", x)
		}
		return int64(x), nil
	case string:
		n, err := strconv.ParseInt(strings.TrimSpace(x), 10, 64)
		if err != nil {
			return 0, fmt.Errorf("cannot convert %q to integer", x)
		}
		return n, nil
	default:
		return 0, fmt.Errorf("cannot convert %T to integer", raw)
	}
}

func toFloat64(raw any) (float64, error) {
	switch x := raw.(type) {
	case float64:
		return x, nil
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(x), 64)
		if err != nil {
			return 0, fmt.Errorf("cannot convert %q to number", x)
		}
		return f, nil
	default:
		return 0, fmt.Errorf("cannot convert %T to number", raw)
	}
}

func toBool(raw any) (bool, error) {
	switch x := raw.(type) {
	case bool:
		return x, nil
	case string:
		b, err := strconv.ParseBool(strings.TrimSpace(x))
		if err != nil {
			return false, fmt.Errorf("cannot convert %q to boolean", x)
		}
		return b, nil
	default:
		return false, fmt.Errorf("cannot convert %T to boolean", raw)
	}
}

func toString(raw any) (string, error) {
	switch x := raw.(type) {
	case string:
		return x, nil
	case float64:
		return strconv.FormatFloat(x, 'f', -1, 64), nil
	case bool:
		return strconv.FormatBool(x), nil
	case nil:
		return "", fmt.Errorf("cannot convert null to string")
	default:
		data, err := json.Marshal(raw)
		if err != nil {
			return "", fmt.Errorf("cannot convert %T to string", raw)
		}
		return string(data), nil
	}
}

// serialize renders the function's return value as the response payload.
// Strings pass through untouched; everything else takes its best textual
// representation. A panic here (a typed-nil Stringer, for one) is reported
// like any other failure rather than escaping to the host.
func serialize(v reflect.Value) (result string, terr *Error) {
	defer func() {
		if r := recover(); r != nil {
			result = ""
			terr = Errorf(ErrRuntimeError, "cannot serialize result: panic: %v", r)
		}
	}()

	if !v.IsValid() {
		return "", nil
	}
	if v.Kind() == reflect.String {
		return v.String(), nil
	}

	switch x := v.Interface().(type) {
	case []byte:
		return string(x), nil
	case fmt.Stringer:
		return x.String(), nil
	}

	data, err := json.Marshal(v.Interface())
	if err != nil {
		return "", Errorf(ErrRuntimeError, "cannot serialize result: %v", err)
	}
	return string(data), nil
}
