package dto

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOptional_UnmarshalDistinguishesAbsentNullAndValue(t *testing.T) {
	var req TaskUpdateRequest
	require.NoError(t, json.Unmarshal([]byte(`{"name":"Fix","assigneeId":null}`), &req))

	assert.True(t, req.Name.Present())
	assert.Equal(t, "Fix", req.Name.Value)

	assert.True(t, req.AssigneeID.Set)
	assert.True(t, req.AssigneeID.Null)
	assert.False(t, req.AssigneeID.Present())

	assert.False(t, req.Description.Set)
	assert.False(t, req.LabelIDs.Set)
}

func TestOptional_EmptySliceIsPresent(t *testing.T) {
	var req TaskUpdateRequest
	require.NoError(t, json.Unmarshal([]byte(`{"labelsIds":[]}`), &req))

	assert.True(t, req.LabelIDs.Present())
	assert.Empty(t, req.LabelIDs.Value)
}

func TestOptional_InvalidValue(t *testing.T) {
	var req TaskUpdateRequest
	assert.Error(t, json.Unmarshal([]byte(`{"index":"first"}`), &req))
}

func TestOptional_Marshal(t *testing.T) {
	data, err := json.Marshal(struct {
		A Optional[int] `json:"a"`
		B Optional[int] `json:"b"`
	}{A: Some(3), B: Null[int]()})
	require.NoError(t, err)
	assert.JSONEq(t, `{"a":3,"b":null}`, string(data))
}
