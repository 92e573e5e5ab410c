package mockcalc

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultDirection(t *testing.T) {
	assert.Equal(t, DirRight, DefaultDirection(VisConfig{Type: VisSankey}))
	assert.Equal(t, DirDown, DefaultDirection(VisConfig{Type: VisBoxLine}))
}

func TestNewVisualizerStartsAtDefault(t *testing.T) {
	assert.Equal(t, DirRight, NewVisualizer(VisConfig{Type: VisSankey}).Direction())
	assert.Equal(t, DirDown, NewVisualizer(VisConfig{Type: VisBoxLine}).Direction())
}

func TestSetDirection(t *testing.T) {
	vis := NewVisualizer(VisConfig{Type: VisSankey})

	for _, dir := range []Direction{DirLeft, DirDown, DirRight} {
		require.NoError(t, vis.SetDirection(dir))
		assert.Equal(t, dir, vis.Direction())
	}
}

func TestSetDirectionRejectsUnknownValues(t *testing.T) {
	vis := NewVisualizer(VisConfig{Type: VisSankey})

	err := vis.SetDirection("diagonal")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `unrecognized direction "diagonal"`)
	assert.Equal(t, DirRight, vis.Direction(), "state must be unchanged after a rejected selection")
}
