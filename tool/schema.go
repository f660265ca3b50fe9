package tool

import (
	"encoding/json"
	"reflect"

	"github.com/google/jsonschema-go/jsonschema"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// Kind is the schema-level type of a parameter.
type Kind string

const (
	KindInteger Kind = "integer"
	KindString  Kind = "string"
	KindNumber  Kind = "number"
	KindBoolean Kind = "boolean"
)

// Parameter describes a single schema-visible parameter of a tool.
type Parameter struct {
	Name        string `json:"name"`
	Kind        Kind   `json:"kind"`
	Description string `json:"description,omitempty"`
	Required    bool   `json:"required"`
}

// Schema is the declarative description of a tool, derived once from the
// function's signature and registration metadata. It is immutable after
// construction.
type Schema struct {
	Name        string      `json:"name"`
	Description string      `json:"description,omitempty"`
	Parameters  []Parameter `json:"parameters"`
}

// kindOf maps a Go type to its schema kind. The mapping is total:
// unrecognized types fall back to string.
func kindOf(t reflect.Type) Kind {
	switch t.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return KindInteger
	case reflect.Float32, reflect.Float64:
		return KindNumber
	case reflect.Bool:
		return KindBoolean
	case reflect.String:
		return KindString
	default:
		return KindString
	}
}

// JSONSchema returns the schema's parameters as a JSON Schema object, for
// hosts that validate or present tools with standard schemas.
func (s Schema) JSONSchema() *jsonschema.Schema {
	properties := make(map[string]*jsonschema.Schema, len(s.Parameters))
	var required []string
	for _, p := range s.Parameters {
		properties[p.Name] = &jsonschema.Schema{
			Type:        string(p.Kind),
			Description: p.Description,
		}
		if p.Required {
			required = append(required, p.Name)
		}
	}
	return &jsonschema.Schema{
		Type:       "object",
		Properties: properties,
		Required:   required,
	}
}

// MCPTool returns the schema as a Model Context Protocol tool descriptor.
// Only the descriptor types are used here; speaking the protocol is the
// host's business.
func (s Schema) MCPTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        s.Name,
		Description: s.Description,
		InputSchema: s.JSONSchema(),
	}
}

// toolProperty is the per-parameter entry of the trigger registration
// metadata, in the wire shape the host's tool trigger expects.
type toolProperty struct {
	PropertyName string `json:"propertyName"`
	PropertyType string `json:"propertyType"`
	Description  string `json:"description"`
	Required     bool   `json:"required"`
}

// ToolProperties returns the parameter list serialized as the toolProperties
// JSON handed to the host's trigger registration call.
func (s Schema) ToolProperties() (string, error) {
	properties := make([]toolProperty, 0, len(s.Parameters))
	for _, p := range s.Parameters {
		properties = append(properties, toolProperty{
			PropertyName: p.Name,
			PropertyType: string(p.Kind),
			Description:  p.Description,
			Required:     p.Required,
		})
	}

	data, err := json.Marshal(properties)
	if err != nil {
		return "", err
	}
	return string(data), nil
}
