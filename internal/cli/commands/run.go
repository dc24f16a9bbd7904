package commands

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/qorex-scitech/lazo/internal/node"
	"github.com/qorex-scitech/lazo/internal/project"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

// NewStatusCommand creates the node status command.
func NewStatusCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show the linked project and runtime status",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmdCtx := NewCommandContext(cmd)
			s := node.Open(ProjectPath(cmd), cmdCtx.Logger)

			version := s.Descriptor().Version
			if version == "" {
				version = "-"
			}
			_, _ = fmt.Fprintf(cmdCtx.Out, "LINKED PROJECT: %s\n", s.ProjectName())
			_, _ = fmt.Fprintf(cmdCtx.Out, "VERSION:        %s\n", version)
			_, _ = fmt.Fprintf(cmdCtx.Out, "STATUS:         %s\n", s.Runtime.Status())
			return nil
		},
	}
}

// RunOptions holds options for the node run command.
type RunOptions struct {
	Watch     bool
	Heartbeat time.Duration
}

// NewRunCommand creates the node run command.
func NewRunCommand() *cobra.Command {
	opts := &RunOptions{}

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run the node runtime in the foreground",
		Long: `Switch the runtime to LIVE and keep it running until interrupted.

With --watch the project descriptor is watched and the linked project name
follows renames. The uptime is logged every --heartbeat.`,
		Example: `  lazo-node run --project-path ./rig
  lazo-node run --heartbeat 5s --watch=false`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runNode(cmd, opts)
		},
	}

	cmd.Flags().BoolVar(&opts.Watch, "watch", true, "Follow changes to project.toml")
	cmd.Flags().DurationVar(&opts.Heartbeat, "heartbeat", 30*time.Second, "Interval between uptime log records")

	return cmd
}

func runNode(cmd *cobra.Command, opts *RunOptions) error {
	cmdCtx := NewCommandContext(cmd)
	logger := cmdCtx.Logger
	path := ProjectPath(cmd)

	if opts.Heartbeat <= 0 {
		return fmt.Errorf("heartbeat must be positive, got %s", opts.Heartbeat)
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	s := node.Open(path, logger)
	s.Runtime.Start()
	_, _ = fmt.Fprintf(cmdCtx.Out, "%s: %s\n", s.ProjectName(), s.Runtime.Status())
	logger.Info("runtime live", "project", s.ProjectName(), "path", path)

	g, gctx := errgroup.WithContext(ctx)

	if opts.Watch {
		g.Go(func() error {
			return project.Watch(gctx, path, func(d project.Descriptor, err error) {
				if err != nil {
					logger.Warn("descriptor unreadable", "error", err)
					return
				}
				if d.DisplayName() != s.ProjectName() {
					logger.Info("linked project renamed", "from", s.ProjectName(), "to", d.DisplayName())
				}
				s.Update(d)
			})
		})
	}

	g.Go(func() error {
		return heartbeat(gctx, s, opts.Heartbeat, logger)
	})

	err := g.Wait()
	s.Runtime.Stop()
	_, _ = fmt.Fprintf(cmdCtx.Out, "%s: %s\n", s.ProjectName(), s.Runtime.Status())
	logger.Info("runtime stopped", "project", s.ProjectName())
	return err
}

func heartbeat(ctx context.Context, s *node.Session, every time.Duration, logger *slog.Logger) error {
	ticker := time.NewTicker(every)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			logger.Info("heartbeat",
				"project", s.ProjectName(),
				"status", s.Runtime.Status(),
				"uptime", node.FormatUptime(s.Runtime.Uptime()))
		}
	}
}
