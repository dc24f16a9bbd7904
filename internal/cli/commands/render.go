package commands

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/qorex-scitech/lazo/internal/block"
	"gopkg.in/yaml.v3"
)

func newTable(w io.Writer) table.Writer {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleLight)
	return t
}

func formatVec(v block.Vec2) string {
	return fmt.Sprintf("%gx%g", v.X, v.Y)
}

func formatPos(v block.Vec2) string {
	return fmt.Sprintf("(%g, %g)", v.X, v.Y)
}

// renderStructured writes v as JSON or YAML. It reports false for the
// table format so the caller renders a table instead.
func renderStructured(w io.Writer, v any, format string) (bool, error) {
	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return true, enc.Encode(v)
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return true, err
		}
		return true, enc.Close()
	default:
		return false, nil
	}
}

func renderBlocks(w io.Writer, blocks []*block.Block, format string) error {
	if blocks == nil {
		blocks = []*block.Block{}
	}
	if done, err := renderStructured(w, blocks, format); done {
		return err
	}

	if len(blocks) == 0 {
		_, _ = fmt.Fprintln(w, "(0 blocks)")
		return nil
	}

	t := newTable(w)
	t.AppendHeader(table.Row{"ID", "Kind", "Function", "Pos", "Size", "Flipped", "In", "Out"})
	for _, b := range blocks {
		t.AppendRow(table.Row{
			b.ID, b.Kind.String(), b.Function, formatPos(b.Pos), formatVec(b.Size),
			strconv.FormatBool(b.Flipped), len(b.Inputs), len(b.Outputs),
		})
	}
	t.Render()
	return nil
}

func renderBlock(w io.Writer, b *block.Block, format string) error {
	if done, err := renderStructured(w, b, format); done {
		return err
	}

	_, _ = fmt.Fprintf(w, "Block:    %s\n", b.ID)
	_, _ = fmt.Fprintf(w, "Kind:     %s\n", b.Kind)
	if b.Function != "" {
		_, _ = fmt.Fprintf(w, "Function: %s\n", b.Function)
	}
	_, _ = fmt.Fprintf(w, "Pos:      %s\n", formatPos(b.Pos))
	_, _ = fmt.Fprintf(w, "Size:     %s\n", formatVec(b.Size))
	_, _ = fmt.Fprintf(w, "Flipped:  %t\n", b.Flipped)

	terminals := append(append([]block.Terminal{}, b.Inputs...), b.Outputs...)
	if len(terminals) == 0 {
		_, _ = fmt.Fprintln(w, "Terminals: none")
		return nil
	}

	t := newTable(w)
	t.AppendHeader(table.Row{"Terminal", "Kind", "Sign", "Size"})
	for _, term := range terminals {
		t.AppendRow(table.Row{term.ID, string(term.Kind), term.Sign, formatVec(term.Size)})
	}
	t.Render()
	return nil
}

type kindRow struct {
	Kind    string `json:"kind" yaml:"kind"`
	Family  string `json:"family" yaml:"family"`
	Size    string `json:"size,omitempty" yaml:"size,omitempty"`
	Inputs  int    `json:"inputs" yaml:"inputs"`
	Outputs int    `json:"outputs" yaml:"outputs"`
	Defined bool   `json:"defined" yaml:"defined"`
}

func renderKinds(w io.Writer, format string) error {
	rows := make([]kindRow, 0, len(block.Kinds()))
	for _, k := range block.Kinds() {
		row := kindRow{Kind: k.String(), Family: string(k.Family())}
		if shape, ok := block.ShapeOf(k); ok {
			row.Size = formatVec(shape.Size)
			row.Inputs = shape.Inputs
			row.Outputs = shape.Outputs
			row.Defined = true
		}
		rows = append(rows, row)
	}
	if done, err := renderStructured(w, rows, format); done {
		return err
	}

	t := newTable(w)
	t.AppendHeader(table.Row{"Kind", "Family", "Size", "Inputs", "Outputs"})
	for _, r := range rows {
		if !r.Defined {
			t.AppendRow(table.Row{r.Kind, r.Family, "-", "-", "-"})
			continue
		}
		t.AppendRow(table.Row{r.Kind, r.Family, r.Size, r.Inputs, r.Outputs})
	}
	t.Render()
	return nil
}
