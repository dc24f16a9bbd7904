package block

import "fmt"

// TerminalKind tells whether a terminal receives or emits a signal.
type TerminalKind string

// Terminal kinds.
const (
	TerminalInput  TerminalKind = "input"
	TerminalOutput TerminalKind = "output"
)

// Default terminal attributes.
const (
	DefaultSign float32 = 1.0
)

// DefaultTerminalSize is the drawn size of every terminal.
var DefaultTerminalSize = Vec2{X: 10, Y: 10}

// Terminal is a named connection point on a block.
type Terminal struct {
	ID   string       `json:"id" yaml:"id"`
	Kind TerminalKind `json:"kind" yaml:"kind"`
	Sign float32      `json:"sign" yaml:"sign"`
	Size Vec2         `json:"size" yaml:"size"`
}

// NewTerminal creates a terminal.
func NewTerminal(id string, kind TerminalKind, sign float32, size Vec2) Terminal {
	return Terminal{ID: id, Kind: kind, Sign: sign, Size: size}
}

// InputID returns the id of the i-th input terminal of a block.
func InputID(blockID string, i int) string {
	return fmt.Sprintf("%s_in_%d", blockID, i)
}

// OutputID returns the id of the i-th output terminal of a block.
func OutputID(blockID string, i int) string {
	return fmt.Sprintf("%s_out_%d", blockID, i)
}
