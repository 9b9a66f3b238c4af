package core

// Size describes the dimensions of a demo canvas in cells.
type Size struct {
	W int
	H int
}

// Demo is the minimal contract a sampler demonstration must implement. Step
// deposits one batch of samples onto the canvas; Cells exposes the canvas
// values for rendering.
type Demo interface {
	Name() string
	Size() Size
	Reset(seed int64)
	Step()
	Cells() []uint8
}

// Factory constructs a Demo using an optional configuration map.
type Factory func(cfg map[string]string) Demo

var demos = map[string]Factory{}

// Register adds a demo factory under the provided name.
func Register(name string, f Factory) {
	if name == "" || f == nil {
		return
	}
	demos[name] = f
}

// Demos exposes the registry of available demo factories.
func Demos() map[string]Factory {
	return demos
}
