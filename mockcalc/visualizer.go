package mockcalc

import "fmt"

// Direction is a visualizer rendering direction.
type Direction string

const (
	DirRight Direction = "right"
	DirLeft  Direction = "left"
	DirDown  Direction = "down"
)

// VisType identifies which visualizer the application is configured to render.
type VisType string

const (
	VisSankey  VisType = "sankey"
	VisBoxLine VisType = "boxline"
)

// VisConfig is the visualizer configuration. It is passed explicitly wherever it is
// needed; there is no ambient global configuration.
type VisConfig struct {
	Type VisType
}

// DefaultDirection returns the rendering direction a freshly configured visualizer
// starts with. Sankey diagrams flow left-to-right; box-line layouts flow downward.
func DefaultDirection(cfg VisConfig) Direction {
	if cfg.Type == VisBoxLine {
		return DirDown
	}
	return DirRight
}

// Visualizer holds the direction-selection state for one visualizer instance.
type Visualizer struct {
	cfg       VisConfig
	direction Direction
}

func NewVisualizer(cfg VisConfig) *Visualizer {
	return &Visualizer{cfg: cfg, direction: DefaultDirection(cfg)}
}

func (v *Visualizer) Type() VisType {
	return v.cfg.Type
}

func (v *Visualizer) Direction() Direction {
	return v.direction
}

// SetDirection selects a rendering direction. Only right, left, and down are
// recognized.
func (v *Visualizer) SetDirection(d Direction) error {
	switch d {
	case DirRight, DirLeft, DirDown:
		v.direction = d
		return nil
	default:
		return fmt.Errorf("unrecognized direction %q", d)
	}
}
