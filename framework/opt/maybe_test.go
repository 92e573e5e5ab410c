package opt

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestMaybeBasics(t *testing.T) {
	assert.False(t, None[int]().IsDefined())
	assert.Equal(t, 0, None[int]().Value())
	assert.Equal(t, 3, None[int]().OrElse(3))

	assert.True(t, Some(2).IsDefined())
	assert.Equal(t, 2, Some(2).Value())
	assert.Equal(t, 2, Some(2).OrElse(3))
}

func TestMaybeString(t *testing.T) {
	assert.Equal(t, "[none]", None[string]().String())
	assert.Equal(t, "x", Some("x").String())
}

func TestMaybeJSON(t *testing.T) {
	data, err := json.Marshal(Some(1.5))
	require.NoError(t, err)
	assert.Equal(t, "1.5", string(data))

	data, err = json.Marshal(None[float64]())
	require.NoError(t, err)
	assert.Equal(t, "null", string(data))

	var m Maybe[float64]
	require.NoError(t, json.Unmarshal([]byte("0.25"), &m))
	assert.Equal(t, Some(0.25), m)

	require.NoError(t, json.Unmarshal([]byte("null"), &m))
	assert.False(t, m.IsDefined())
}

func TestMaybeYAML(t *testing.T) {
	var withValue struct {
		Tolerance Maybe[float64] `yaml:"tolerance"`
	}
	require.NoError(t, yaml.Unmarshal([]byte("tolerance: 0.01"), &withValue))
	assert.Equal(t, Some(0.01), withValue.Tolerance)

	var withNull struct {
		Tolerance Maybe[float64] `yaml:"tolerance"`
	}
	require.NoError(t, yaml.Unmarshal([]byte("tolerance: null"), &withNull))
	assert.False(t, withNull.Tolerance.IsDefined())

	var absent struct {
		Tolerance Maybe[float64] `yaml:"tolerance"`
	}
	require.NoError(t, yaml.Unmarshal([]byte("{}"), &absent))
	assert.False(t, absent.Tolerance.IsDefined())
}
