package diagram

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/qorex-scitech/lazo/internal/block"
	"github.com/qorex-scitech/lazo/internal/project"
	"gopkg.in/yaml.v3"
)

// Export formats.
const (
	FormatYAML = "yaml"
	FormatJSON = "json"
)

// Document is the exported form of a project diagram.
type Document struct {
	Project project.Descriptor `json:"project" yaml:"project"`
	Blocks  []*block.Block     `json:"blocks" yaml:"blocks"`
}

// Export writes doc to w as YAML or JSON.
func Export(w io.Writer, doc Document, format string) error {
	if doc.Blocks == nil {
		doc.Blocks = []*block.Block{}
	}

	switch format {
	case FormatYAML, "yml", "":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(doc); err != nil {
			return fmt.Errorf("failed to encode yaml: %w", err)
		}
		return enc.Close()
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(doc); err != nil {
			return fmt.Errorf("failed to encode json: %w", err)
		}
		return nil
	default:
		return fmt.Errorf("unsupported export format %q (want yaml or json)", format)
	}
}
