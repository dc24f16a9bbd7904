package node

import (
	"errors"
	"log/slog"
	"sync"

	"github.com/qorex-scitech/lazo/internal/project"
)

// Session is a node runtime bound to a project directory.
type Session struct {
	Path    string
	Runtime *Runtime

	mu         sync.RWMutex
	descriptor project.Descriptor
	logger     *slog.Logger
}

// Open links a runtime to the project at path. A missing descriptor is not
// an error for the node runtime: the project just stays unnamed.
func Open(path string, logger *slog.Logger) *Session {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	s := &Session{
		Path:    path,
		Runtime: NewRuntime(),
		logger:  logger,
	}
	s.Sync()
	return s
}

// Sync re-reads the descriptor. Read failures leave the current name.
func (s *Session) Sync() {
	d, err := project.ReadDescriptor(s.Path)
	if err != nil {
		if errors.Is(err, project.ErrDescriptorNotFound) {
			s.logger.Debug("no descriptor, project stays unnamed", "path", s.Path)
		} else {
			s.logger.Warn("failed to read descriptor", "path", s.Path, "error", err)
		}
		return
	}
	s.Update(d)
}

// Update replaces the linked descriptor.
func (s *Session) Update(d project.Descriptor) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.descriptor = d
}

// ProjectName returns the display name of the linked project.
func (s *Session) ProjectName() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.descriptor.DisplayName()
}

// Descriptor returns the linked descriptor.
func (s *Session) Descriptor() project.Descriptor {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.descriptor
}
