package launch

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"

	"github.com/google/uuid"
	"github.com/qorex-scitech/lazo/internal/project"
)

// DefaultBinDir is where the suite binaries are built by default.
const DefaultBinDir = "bin"

// Process is a started child that can be waited on.
type Process interface {
	Pid() int
	Wait() error
}

// Mode selects how a satellite is started.
type Mode int

const (
	// Detached starts the satellite in the background without a terminal.
	// The node runtime is started with its run command so it stays live.
	Detached Mode = iota
	// Attached hands the launcher's terminal to the satellite and waits for
	// it to exit.
	Attached
)

// String returns "detached" or "attached".
func (m Mode) String() string {
	if m == Attached {
		return "attached"
	}
	return "detached"
}

// Spec is a process to start.
type Spec struct {
	Path string
	Args []string
	// Attach connects the child to the launcher's stdin, stdout and stderr.
	Attach bool
}

// Starter starts an executable without waiting for it.
type Starter interface {
	Start(spec Spec) (Process, error)
}

// Session describes one launched satellite.
type Session struct {
	ID         string
	Module     Module
	Binary     string
	ProjectDir string
	Mode       Mode
	Pid        int
}

// Launcher spawns satellites on a project directory.
type Launcher struct {
	binDir  string
	goos    string
	starter Starter
	logger  *slog.Logger
}

// Option configures a Launcher.
type Option func(*Launcher)

// WithStarter replaces the process starter.
func WithStarter(s Starter) Option {
	return func(l *Launcher) { l.starter = s }
}

// WithGOOS overrides the target OS used for binary names.
func WithGOOS(goos string) Option {
	return func(l *Launcher) { l.goos = goos }
}

// New creates a Launcher looking for binaries in binDir.
func New(binDir string, logger *slog.Logger, opts ...Option) *Launcher {
	if binDir == "" {
		binDir = DefaultBinDir
	}
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	l := &Launcher{
		binDir:  binDir,
		goos:    runtime.GOOS,
		starter: execStarter{},
		logger:  logger,
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// BinaryPath returns the executable path for m.
func (l *Launcher) BinaryPath(m Module) string {
	return filepath.Join(l.binDir, m.Binary(l.goos))
}

// Args returns the satellite arguments for dir. A detached node runtime
// gets the run command, since without a terminal it would only print its
// status and exit.
func (l *Launcher) Args(m Module, projectDir string, mode Mode) []string {
	args := []string{project.PathFlag, projectDir}
	if mode == Detached && m == ModuleNode {
		args = append(args, "run")
	}
	return args
}

// Command returns the attached satellite command for dir without starting
// it, for callers that manage the terminal handoff themselves.
func (l *Launcher) Command(m Module, projectDir string) *exec.Cmd {
	return exec.Command(l.BinaryPath(m), l.Args(m, projectDir, Attached)...)
}

// Launch starts the module on projectDir. A detached child is reaped in the
// background and its exit is only logged. An attached child owns the
// terminal and Launch returns once it exits.
func (l *Launcher) Launch(ctx context.Context, m Module, projectDir string, mode Mode) (*Session, error) {
	if _, err := ParseModule(string(m)); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s := &Session{
		ID:         uuid.NewString(),
		Module:     m,
		Binary:     l.BinaryPath(m),
		ProjectDir: projectDir,
		Mode:       mode,
	}
	logger := l.logger.With("session", s.ID, "module", string(m), "mode", mode.String())

	if mode == Detached && m == ModuleModel {
		logger.Warn("model editor started without a terminal, it will print the project info and exit")
	}

	proc, err := l.starter.Start(Spec{
		Path:   s.Binary,
		Args:   l.Args(m, projectDir, mode),
		Attach: mode == Attached,
	})
	if err != nil {
		logger.Warn("launch failed", "binary", s.Binary, "error", err)
		return nil, fmt.Errorf("failed to start %s: %w", s.Binary, err)
	}
	s.Pid = proc.Pid()
	logger.Info("launched", "binary", s.Binary, "pid", s.Pid, "project", projectDir)

	if mode == Attached {
		if err := proc.Wait(); err != nil {
			return s, fmt.Errorf("%s exited: %w", s.Binary, err)
		}
		logger.Debug("satellite exited", "pid", s.Pid)
		return s, nil
	}

	go func() {
		if err := proc.Wait(); err != nil {
			logger.Debug("satellite exited", "pid", s.Pid, "error", err)
			return
		}
		logger.Debug("satellite exited", "pid", s.Pid)
	}()

	return s, nil
}

// execStarter starts real processes. The child is not bound to any context
// so it outlives the launcher.
type execStarter struct{}

func (execStarter) Start(spec Spec) (Process, error) {
	cmd := exec.Command(spec.Path, spec.Args...)
	if spec.Attach {
		cmd.Stdin, cmd.Stdout, cmd.Stderr = os.Stdin, os.Stdout, os.Stderr
	}
	if err := cmd.Start(); err != nil {
		return nil, err
	}
	return execProcess{cmd}, nil
}

type execProcess struct {
	cmd *exec.Cmd
}

func (p execProcess) Pid() int    { return p.cmd.Process.Pid }
func (p execProcess) Wait() error { return p.cmd.Wait() }
