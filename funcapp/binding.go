package funcapp

import (
	"fmt"

	"github.com/loopwork-ai/mcpfunc/tool"
)

// TriggerType is the host's trigger type for tool invocations.
const TriggerType = "mcpToolTrigger"

// ArgName is the handler argument the host fills with the serialized
// invocation context.
const ArgName = "context"

// Binding is the trigger registration metadata for one tool, in the shape
// the host's registration call consumes.
type Binding struct {
	ArgName        string `json:"argName"`
	Type           string `json:"type"`
	ToolName       string `json:"toolName"`
	Description    string `json:"description,omitempty"`
	ToolProperties string `json:"toolProperties"`
}

// NewBinding derives the trigger binding for a tool.
func NewBinding(t *tool.Tool) (Binding, error) {
	schema := t.Schema()
	properties, err := schema.ToolProperties()
	if err != nil {
		return Binding{}, fmt.Errorf("funcapp: tool %q: %w", schema.Name, err)
	}
	return Binding{
		ArgName:        ArgName,
		Type:           TriggerType,
		ToolName:       schema.Name,
		Description:    schema.Description,
		ToolProperties: properties,
	}, nil
}
