package block

// Shape describes the fixed terminal layout of a kind.
type Shape struct {
	Size    Vec2
	Inputs  int
	Outputs int
}

// shapes maps each configured kind to its layout. Node kinds have no entry
// until their terminal layout is decided.
var shapes = map[Kind]Shape{
	ModelProcess: {Size: Vec2{X: 100, Y: 80}, Inputs: 1, Outputs: 1},
	ModelSumming: {Size: Vec2{X: 80, Y: 80}, Inputs: 2, Outputs: 1},
	ModelInput:   {Size: Vec2{X: 100, Y: 80}, Inputs: 0, Outputs: 1},
	ModelOutput:  {Size: Vec2{X: 100, Y: 80}, Inputs: 1, Outputs: 0},
}

// ShapeOf returns the layout for kind, if one is defined.
func ShapeOf(kind Kind) (Shape, bool) {
	s, ok := shapes[kind]
	return s, ok
}
