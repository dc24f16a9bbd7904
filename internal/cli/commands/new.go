package commands

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/qorex-scitech/lazo/internal/cli/config"
	"github.com/qorex-scitech/lazo/internal/launch"
	"github.com/qorex-scitech/lazo/internal/project"
	"github.com/spf13/cobra"
)

// CreateResult reports what CreateAndLaunch did.
type CreateResult struct {
	Dir     string
	Created bool
	Session *launch.Session
}

// Summary is a one-line description of the result.
func (r *CreateResult) Summary() string {
	verb := "Reusing"
	if r.Created {
		verb = "Created"
	}
	s := fmt.Sprintf("%s project %s", verb, r.Dir)
	switch {
	case r.Session == nil:
	case r.Session.Mode == launch.Attached:
		s += fmt.Sprintf(", %s exited", r.Session.Binary)
	default:
		s += fmt.Sprintf(" and launched %s (pid %d)", r.Session.Binary, r.Session.Pid)
	}
	return s
}

// CreateRequest describes a project to create and the module to open it in.
type CreateRequest struct {
	Module launch.Module
	Name   string
	Base   string
	Mode   launch.Mode
	// NoLaunch only creates the project.
	NoLaunch bool
}

// LaunchMode returns Attached when the launcher runs in a terminal, so the
// satellite takes it over, and Detached otherwise.
func LaunchMode() launch.Mode {
	if IsTerminal() {
		return launch.Attached
	}
	return launch.Detached
}

// CreateAndLaunch creates <base>/<name> when missing and, unless NoLaunch
// is set, launches the module on it. A launch failure is returned with the
// result, since the project itself was created.
func CreateAndLaunch(ctx context.Context, cfg *config.Config, logger *slog.Logger, l *launch.Launcher, req CreateRequest) (*CreateResult, error) {
	dir, created, err := project.Create(req.Base, req.Name, cfg.DefaultVersion)
	if err != nil {
		return nil, err
	}
	if created {
		logger.Info("project created", "dir", dir)
	} else {
		logger.Info("project exists, reusing", "dir", dir)
	}

	res := &CreateResult{Dir: dir, Created: created}
	if req.NoLaunch {
		return res, nil
	}

	s, err := l.Launch(ctx, req.Module, dir, req.Mode)
	res.Session = s
	return res, err
}

// NewNewCommand creates the new command.
func NewNewCommand() *cobra.Command {
	var (
		moduleName string
		base       string
		noLaunch   bool
	)

	cmd := &cobra.Command{
		Use:   "new <name>",
		Short: "Create a project and open it in a module",
		Long: `Create a new Lazo project and launch the node runtime or the model editor on it.

This creates:
  - <base>/<name>/ directory
  - <base>/<name>/project.toml descriptor

An existing project directory is reused without touching its descriptor.
In a terminal the module takes over the terminal until it exits. Otherwise
it is started in the background, the node runtime in its run mode.`,
		Example: `  # Create a project in the current directory and open the model editor
  lazo new plant --module model

  # Create under another folder without launching anything
  lazo new rig --module node --base ~/lazo --no-launch`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cmdCtx := NewCommandContext(cmd)

			m, err := launch.ParseModule(moduleName)
			if err != nil {
				return err
			}
			if base == "" {
				if base, err = os.Getwd(); err != nil {
					return fmt.Errorf("failed to resolve working directory: %w", err)
				}
			}

			l := launch.New(cmdCtx.Cfg.BinDir, cmdCtx.Logger)
			res, err := CreateAndLaunch(cmd.Context(), cmdCtx.Cfg, cmdCtx.Logger, l, CreateRequest{
				Module:   m,
				Name:     args[0],
				Base:     base,
				Mode:     LaunchMode(),
				NoLaunch: noLaunch,
			})
			if res != nil {
				_, _ = fmt.Fprintln(cmdCtx.Out, res.Summary())
			}
			return err
		},
	}

	cmd.Flags().StringVarP(&moduleName, "module", "m", string(launch.ModuleModel), "Module to launch (node|model)")
	cmd.Flags().StringVarP(&base, "base", "b", "", "Base folder for the project (default: current directory)")
	cmd.Flags().BoolVar(&noLaunch, "no-launch", false, "Only create the project")

	_ = cmd.RegisterFlagCompletionFunc("module", func(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
		return []string{string(launch.ModuleNode), string(launch.ModuleModel)}, cobra.ShellCompDirectiveNoFileComp
	})

	return cmd
}

// NewOpenCommand creates the open command.
func NewOpenCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "open <node|model> [directory]",
		Short: "Launch a module on an existing project",
		Example: `  lazo open node ./plant
  lazo open model`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cmdCtx := NewCommandContext(cmd)

			m, err := launch.ParseModule(args[0])
			if err != nil {
				return err
			}
			dir := "."
			if len(args) > 1 {
				dir = args[1]
			}

			if _, err := project.ReadDescriptor(dir); err != nil {
				cmdCtx.Logger.Warn("opening directory without a readable descriptor", "dir", dir, "error", err)
			}

			s, err := launch.New(cmdCtx.Cfg.BinDir, cmdCtx.Logger).Launch(cmd.Context(), m, dir, LaunchMode())
			if err != nil {
				return err
			}
			if s.Mode == launch.Detached {
				_, _ = fmt.Fprintf(cmdCtx.Out, "Launched %s (pid %d) on %s\n", s.Binary, s.Pid, dir)
			}
			return nil
		},
	}
	return cmd
}
