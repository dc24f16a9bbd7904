// Package block defines the positioned graph nodes of a Lazo diagram and
// their input/output terminals.
package block

import (
	"errors"
	"fmt"
)

// Block is a positioned unit of a diagram.
//
// For model kinds Function holds the transfer expression. For node kinds it
// holds the path of the source file the node executes.
type Block struct {
	ID       string     `json:"id" yaml:"id"`
	Kind     Kind       `json:"kind" yaml:"kind"`
	Function string     `json:"function,omitempty" yaml:"function,omitempty"`
	Size     Vec2       `json:"size" yaml:"size"`
	Pos      Vec2       `json:"pos" yaml:"pos"`
	Flipped  bool       `json:"flipped" yaml:"flipped"`
	Inputs   []Terminal `json:"inputs" yaml:"inputs"`
	Outputs  []Terminal `json:"outputs" yaml:"outputs"`
}

// New creates a block and lays out its terminals.
func New(id string, kind Kind, function string, size, pos Vec2, flipped bool) *Block {
	b := &Block{
		ID:       id,
		Kind:     kind,
		Function: function,
		Size:     size,
		Pos:      pos,
		Flipped:  flipped,
	}
	b.Config()
	return b
}

// Config rebuilds the terminal lists from the block kind.
// Kinds without a shape end up with no terminals and keep their size.
func (b *Block) Config() {
	shape, ok := ShapeOf(b.Kind)
	b.Inputs = make([]Terminal, 0, shape.Inputs)
	b.Outputs = make([]Terminal, 0, shape.Outputs)
	if !ok {
		return
	}

	b.Size = shape.Size
	for i := 0; i < shape.Inputs; i++ {
		b.Inputs = append(b.Inputs, NewTerminal(InputID(b.ID, i), TerminalInput, DefaultSign, DefaultTerminalSize))
	}
	for i := 0; i < shape.Outputs; i++ {
		b.Outputs = append(b.Outputs, NewTerminal(OutputID(b.ID, i), TerminalOutput, DefaultSign, DefaultTerminalSize))
	}
}

// SetKind changes the kind and reconfigures the terminals.
func (b *Block) SetKind(kind Kind) {
	b.Kind = kind
	b.Config()
}

// Flip toggles the orientation.
func (b *Block) Flip() {
	b.Flipped = !b.Flipped
}

// MoveTo places the block at pos.
func (b *Block) MoveTo(pos Vec2) {
	b.Pos = pos
}

// Terminal finds a terminal by id among inputs and outputs.
func (b *Block) Terminal(id string) (Terminal, bool) {
	for _, t := range b.Inputs {
		if t.ID == id {
			return t, true
		}
	}
	for _, t := range b.Outputs {
		if t.ID == id {
			return t, true
		}
	}
	return Terminal{}, false
}

// Validate checks that the block can be stored.
func (b *Block) Validate() error {
	if b.ID == "" {
		return errors.New("block id is required")
	}
	if !b.Kind.Valid() {
		return fmt.Errorf("block %s: %w: %d", b.ID, ErrUnknownKind, uint8(b.Kind))
	}
	return nil
}
