package calctests

import (
	"github.com/factoriolab/calc-test-harness/framework/caltest"
	"github.com/factoriolab/calc-test-harness/mockcalc"
)

func doVisualizerTests(t *caltest.T) {
	t.Run("default direction", func(t *caltest.T) {
		t.Run("sankey flows right", func(t *caltest.T) {
			cfg := mockcalc.VisConfig{Type: mockcalc.VisSankey}
			t.AssertEquals(mockcalc.DefaultDirection(cfg), mockcalc.DirRight)
			t.AssertEquals(mockcalc.NewVisualizer(cfg).Direction(), mockcalc.DirRight)
		})
		t.Run("boxline flows down", func(t *caltest.T) {
			cfg := mockcalc.VisConfig{Type: mockcalc.VisBoxLine}
			t.AssertEquals(mockcalc.DefaultDirection(cfg), mockcalc.DirDown)
			t.AssertEquals(mockcalc.NewVisualizer(cfg).Direction(), mockcalc.DirDown)
		})
	})

	t.Run("selecting each recognized direction", func(t *caltest.T) {
		vis := mockcalc.NewVisualizer(mockcalc.VisConfig{Type: mockcalc.VisSankey})
		acceptedMessage := "direction %q must be accepted"
		for _, dir := range []mockcalc.Direction{mockcalc.DirLeft, mockcalc.DirDown, mockcalc.DirRight} {
			t.AssertHolds(vis.SetDirection(dir) == nil, acceptedMessage, dir)
			t.AssertEquals(vis.Direction(), dir)
		}
	})

	t.Run("unrecognized direction is rejected", func(t *caltest.T) {
		vis := mockcalc.NewVisualizer(mockcalc.VisConfig{Type: mockcalc.VisSankey})
		err := vis.SetDirection("up")
		t.AssertHolds(err != nil, `"up" is not a rendering direction`)
		t.AssertEquals(vis.Direction(), mockcalc.DirRight, "a rejected selection must not change the state")
	})
}
