package tool

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestError_Error(t *testing.T) {
	err := NewError(ErrInvalidContext, "context payload is null")
	assert.Equal(t, "invalid_context: context payload is null", err.Error())
}

func TestError_Errorf(t *testing.T) {
	err := Errorf(ErrMissingParameter, "missing required parameter %q", "number2")
	assert.Equal(t, ErrMissingParameter, err.Kind)
	assert.Equal(t, `missing required parameter "number2"`, err.Message)
}

func TestError_JSONShape(t *testing.T) {
	data, err := json.Marshal(NewError(ErrTypeError, "cannot convert"))
	require.NoError(t, err)
	assert.JSONEq(t, `{"kind": "type_error", "message": "cannot convert"}`, string(data))
}
