package block

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownKind is returned when a kind name cannot be parsed.
var ErrUnknownKind = errors.New("unknown block kind")

// Family is the top-level variant of a block kind.
type Family string

// Block families.
const (
	FamilyModel Family = "model"
	FamilyNode  Family = "node"
)

// Kind tags a block with its family and sub-kind.
type Kind uint8

// Model kinds describe signal-flow diagram elements. Node kinds describe
// executable units whose terminal layout is not defined yet.
const (
	KindUnknown Kind = iota
	ModelProcess
	ModelSumming
	ModelInput
	ModelOutput
	NodeRust
	NodePython
	NodeInput
	NodeOutput
)

var kindNames = map[Kind]string{
	ModelProcess: "model/process",
	ModelSumming: "model/summing",
	ModelInput:   "model/input",
	ModelOutput:  "model/output",
	NodeRust:     "node/rust",
	NodePython:   "node/python",
	NodeInput:    "node/input",
	NodeOutput:   "node/output",
}

// Kinds returns every known kind in declaration order.
func Kinds() []Kind {
	return []Kind{
		ModelProcess, ModelSumming, ModelInput, ModelOutput,
		NodeRust, NodePython, NodeInput, NodeOutput,
	}
}

// String returns the "family/sub" name of the kind.
func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("kind(%d)", uint8(k))
}

// Family reports which variant the kind belongs to.
func (k Kind) Family() Family {
	switch k {
	case ModelProcess, ModelSumming, ModelInput, ModelOutput:
		return FamilyModel
	case NodeRust, NodePython, NodeInput, NodeOutput:
		return FamilyNode
	default:
		return ""
	}
}

// Sub returns the sub-kind part of the name, e.g. "summing".
func (k Kind) Sub() string {
	_, sub, _ := strings.Cut(k.String(), "/")
	return sub
}

// Valid reports whether k is one of the declared kinds.
func (k Kind) Valid() bool {
	_, ok := kindNames[k]
	return ok
}

// ParseKind parses "model/summing" style names. A bare sub-kind is accepted
// when it is unambiguous ("process", "summing", "rust", "python").
func ParseKind(s string) (Kind, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	var match Kind
	for _, k := range Kinds() {
		if kindNames[k] == name {
			return k, nil
		}
		if k.Sub() == name {
			if match != KindUnknown {
				return KindUnknown, fmt.Errorf("%w: %q is ambiguous, use model/%s or node/%s", ErrUnknownKind, s, name, name)
			}
			match = k
		}
	}
	if match == KindUnknown {
		return KindUnknown, fmt.Errorf("%w: %q", ErrUnknownKind, s)
	}
	return match, nil
}

// MarshalText implements encoding.TextMarshaler.
func (k Kind) MarshalText() ([]byte, error) {
	if !k.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownKind, uint8(k))
	}
	return []byte(k.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (k *Kind) UnmarshalText(text []byte) error {
	parsed, err := ParseKind(string(text))
	if err != nil {
		return err
	}
	*k = parsed
	return nil
}
