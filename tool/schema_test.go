package tool

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testSchema() Schema {
	return Schema{
		Name:        "add_numbers",
		Description: "Add two integers.",
		Parameters: []Parameter{
			{Name: "number1", Kind: KindInteger, Description: "The first integer to add", Required: true},
			{Name: "number2", Kind: KindInteger, Description: "The second integer to add", Required: false},
		},
	}
}

func TestSchema_JSONSchema(t *testing.T) {
	js := testSchema().JSONSchema()

	assert.Equal(t, "object", js.Type)
	require.Len(t, js.Properties, 2)

	number1 := js.Properties["number1"]
	require.NotNil(t, number1)
	assert.Equal(t, "integer", number1.Type)
	assert.Equal(t, "The first integer to add", number1.Description)

	assert.Equal(t, []string{"number1"}, js.Required)
}

func TestSchema_MCPTool(t *testing.T) {
	descriptor := testSchema().MCPTool()

	assert.Equal(t, "add_numbers", descriptor.Name)
	assert.Equal(t, "Add two integers.", descriptor.Description)
	require.NotNil(t, descriptor.InputSchema)
	assert.Equal(t, "object", descriptor.InputSchema.Type)
}

func TestSchema_ToolProperties(t *testing.T) {
	properties, err := testSchema().ToolProperties()
	require.NoError(t, err)

	assert.JSONEq(t, `[
		{
			"propertyName": "number1",
			"propertyType": "integer",
			"description": "The first integer to add",
			"required": true
		},
		{
			"propertyName": "number2",
			"propertyType": "integer",
			"description": "The second integer to add",
			"required": false
		}
	]`, properties)
}

func TestSchema_ToolPropertiesEmpty(t *testing.T) {
	properties, err := Schema{Name: "bare"}.ToolProperties()
	require.NoError(t, err)
	assert.Equal(t, "[]", properties)
}
