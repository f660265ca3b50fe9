package funcapp

import (
	"encoding/json"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/loopwork-ai/mcpfunc/tool"
)

func addNumbers(number1, number2 int) string {
	return strconv.Itoa(number1 + number2)
}

func newTestApp(t *testing.T) *App {
	t.Helper()
	app := New()
	_, err := app.MCPTool(addNumbers,
		tool.WithDescription("Add two integers."),
		tool.WithParam("number1", "The first integer to add"),
		tool.WithParam("number2", "The second integer to add"),
	)
	require.NoError(t, err)
	return app
}

func TestApp_MCPTool(t *testing.T) {
	app := newTestApp(t)

	tools := app.Tools()
	require.Len(t, tools, 1)
	assert.Equal(t, "add_numbers", tools[0].Name())

	registered, ok := app.Tool("add_numbers")
	require.True(t, ok)
	assert.Equal(t, tools[0], registered)

	_, ok = app.Tool("unknown")
	assert.False(t, ok)
}

func TestApp_DuplicateRegistration(t *testing.T) {
	app := newTestApp(t)

	_, err := app.MCPTool(addNumbers)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already registered")
}

func TestApp_InvalidTool(t *testing.T) {
	app := New()
	_, err := app.MCPTool(42)
	assert.Error(t, err)
	assert.Empty(t, app.Tools())
}

func TestApp_Bindings(t *testing.T) {
	app := newTestApp(t)

	bindings, err := app.Bindings()
	require.NoError(t, err)
	require.Len(t, bindings, 1)

	binding := bindings[0]
	assert.Equal(t, "context", binding.ArgName)
	assert.Equal(t, "mcpToolTrigger", binding.Type)
	assert.Equal(t, "add_numbers", binding.ToolName)
	assert.Equal(t, "Add two integers.", binding.Description)

	var properties []map[string]any
	require.NoError(t, json.Unmarshal([]byte(binding.ToolProperties), &properties))
	require.Len(t, properties, 2)
	assert.Equal(t, "number1", properties[0]["propertyName"])
	assert.Equal(t, "integer", properties[0]["propertyType"])
	assert.Equal(t, true, properties[0]["required"])
}

func TestApp_RegistrationOrder(t *testing.T) {
	app := New()

	for _, name := range []string{"c_tool", "a_tool", "b_tool"} {
		_, err := app.MCPTool(func(value string) string { return value },
			tool.WithName(name),
			tool.WithParam("value", ""),
		)
		require.NoError(t, err)
	}

	var names []string
	for _, registered := range app.Tools() {
		names = append(names, registered.Name())
	}
	assert.Equal(t, []string{"c_tool", "a_tool", "b_tool"}, names)
}
