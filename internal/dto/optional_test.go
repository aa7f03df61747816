package dto

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestOptional_AbsentField(t *testing.T) {
	var req struct {
		Name Optional[string] `json:"name"`
	}

	require.NoError(t, json.Unmarshal([]byte(`{}`), &req))
	require.False(t, req.Name.Present)

	_, ok := req.Name.Get()
	require.False(t, ok)
}

func TestOptional_NullField(t *testing.T) {
	var req struct {
		Name Optional[string] `json:"name"`
	}

	require.NoError(t, json.Unmarshal([]byte(`{"name": null}`), &req))
	require.True(t, req.Name.Present)
	require.Nil(t, req.Name.Value)

	_, ok := req.Name.Get()
	require.False(t, ok)
}

func TestOptional_ValueField(t *testing.T) {
	var req struct {
		Name Optional[string] `json:"name"`
	}

	require.NoError(t, json.Unmarshal([]byte(`{"name": "draft"}`), &req))
	require.True(t, req.Name.Present)

	v, ok := req.Name.Get()
	require.True(t, ok)
	require.Equal(t, "draft", v)
}

func TestOptional_SliceField(t *testing.T) {
	var req struct {
		IDs Optional[[]uint64] `json:"ids"`
	}

	require.NoError(t, json.Unmarshal([]byte(`{"ids": [3, 5]}`), &req))
	v, ok := req.IDs.Get()
	require.True(t, ok)
	require.Equal(t, []uint64{3, 5}, v)

	// An empty array is present with a value, unlike null.
	req.IDs = Optional[[]uint64]{}
	require.NoError(t, json.Unmarshal([]byte(`{"ids": []}`), &req))
	v, ok = req.IDs.Get()
	require.True(t, ok)
	require.Empty(t, v)
}

func TestOptional_TypeMismatch(t *testing.T) {
	var req struct {
		Index Optional[int] `json:"index"`
	}

	require.Error(t, json.Unmarshal([]byte(`{"index": "seven"}`), &req))
}
