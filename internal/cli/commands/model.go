package commands

import (
	"fmt"
	"os"

	"github.com/qorex-scitech/lazo/internal/diagram"
	"github.com/spf13/cobra"
)

// NewInfoCommand creates the info command.
func NewInfoCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "info",
		Short: "Show the linked project",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmdCtx, s, cleanup, err := requireProject(cmd)
			if err != nil {
				return err
			}
			defer cleanup()

			blocks, err := s.List(cmd.Context())
			if err != nil {
				return err
			}

			w := cmdCtx.Out
			_, _ = fmt.Fprintf(w, "Project: %s\n", s.ProjectName())
			_, _ = fmt.Fprintf(w, "Version: %s\n", s.Descriptor.Version)
			_, _ = fmt.Fprintf(w, "Path:    %s\n", s.Path)
			_, _ = fmt.Fprintf(w, "Diagram: %s\n", diagram.PathFor(s.Path))
			_, _ = fmt.Fprintf(w, "Blocks:  %d\n", len(blocks))
			return nil
		},
	}
}

// NewKindsCommand creates the kinds command.
func NewKindsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "kinds",
		Short: "List block kinds and their terminal layout",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmdCtx := NewCommandContext(cmd)
			return renderKinds(cmdCtx.Out, cmdCtx.Cfg.OutputFormat)
		},
	}
}

// NewExportCommand creates the export command.
func NewExportCommand() *cobra.Command {
	var (
		format string
		file   string
	)

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export the diagram as YAML or JSON",
		Example: `  lazo-model export
  lazo-model export --format json --file diagram.json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmdCtx, s, cleanup, err := requireProject(cmd)
			if err != nil {
				return err
			}
			defer cleanup()

			doc, err := s.Document(cmd.Context())
			if err != nil {
				return err
			}

			if file == "" {
				return diagram.Export(cmdCtx.Out, doc, format)
			}

			f, err := os.Create(file)
			if err != nil {
				return fmt.Errorf("failed to create %s: %w", file, err)
			}
			if err := diagram.Export(f, doc, format); err != nil {
				_ = f.Close()
				return err
			}
			if err := f.Close(); err != nil {
				return err
			}
			cmdCtx.Logger.Info("diagram exported", "file", file, "blocks", len(doc.Blocks))
			return nil
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", diagram.FormatYAML, "Export format: yaml, json")
	cmd.Flags().StringVar(&file, "file", "", "Write to file instead of stdout")

	return cmd
}
