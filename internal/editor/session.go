// Package editor implements the model editor session: the linked project
// and the block operations performed on its diagram.
package editor

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"
	"github.com/qorex-scitech/lazo/internal/block"
	"github.com/qorex-scitech/lazo/internal/diagram"
	"github.com/qorex-scitech/lazo/internal/project"
)

// MissingDescriptorMessage is shown in place of the canvas when the project
// has no descriptor.
const MissingDescriptorMessage = "CRITICAL: project.toml not found in the specified path."

// ErrNoProject is returned by block operations on a session without a
// descriptor.
var ErrNoProject = errors.New(MissingDescriptorMessage)

// Session is an open model editor.
type Session struct {
	Path       string
	Descriptor project.Descriptor
	// Err is set when the project could not be loaded. The session is still
	// usable for display.
	Err error

	store  *diagram.Store
	logger *slog.Logger
}

// Open loads the project at path. A missing descriptor does not fail Open:
// it is recorded in Session.Err so the editor can show MissingDescriptorMessage.
func Open(ctx context.Context, path string, logger *slog.Logger) (*Session, error) {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	s := &Session{Path: path, logger: logger}

	d, err := project.ReadDescriptor(path)
	if errors.Is(err, project.ErrDescriptorNotFound) {
		logger.Error("descriptor missing", "path", path)
		s.Err = err
		return s, nil
	}
	if err != nil {
		return nil, err
	}
	s.Descriptor = d

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	store, err := diagram.OpenProject(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open diagram: %w", err)
	}
	s.store = store
	logger.Debug("diagram opened", "path", store.Path(), "project", d.DisplayName())
	return s, nil
}

// Close releases the diagram store.
func (s *Session) Close() error {
	if s.store == nil {
		return nil
	}
	return s.store.Close()
}

// ProjectName returns the display name of the project.
func (s *Session) ProjectName() string {
	return s.Descriptor.DisplayName()
}

// Message returns the text shown in place of the canvas, or "" when the
// project loaded.
func (s *Session) Message() string {
	if errors.Is(s.Err, project.ErrDescriptorNotFound) {
		return MissingDescriptorMessage
	}
	if s.Err != nil {
		return s.Err.Error()
	}
	return ""
}

func (s *Session) ready() error {
	if s.store == nil {
		return ErrNoProject
	}
	return nil
}

// AddRequest describes a block to add.
type AddRequest struct {
	ID       string
	Kind     block.Kind
	Function string
	Size     block.Vec2
	Pos      block.Vec2
	Flipped  bool
}

// Add creates a block. A missing id is generated from the kind.
func (s *Session) Add(ctx context.Context, req AddRequest) (*block.Block, error) {
	if err := s.ready(); err != nil {
		return nil, err
	}
	id := req.ID
	if id == "" {
		id = generateID(req.Kind)
	}
	if _, err := s.store.GetBlock(ctx, id); err == nil {
		return nil, fmt.Errorf("block %s already exists", id)
	} else if !errors.Is(err, diagram.ErrBlockNotFound) {
		return nil, err
	}

	b := block.New(id, req.Kind, req.Function, req.Size, req.Pos, req.Flipped)
	if err := s.store.SaveBlock(ctx, b); err != nil {
		return nil, err
	}
	s.logger.Info("block added", "id", b.ID, "kind", b.Kind.String())
	return b, nil
}

// Get loads one block.
func (s *Session) Get(ctx context.Context, id string) (*block.Block, error) {
	if err := s.ready(); err != nil {
		return nil, err
	}
	return s.store.GetBlock(ctx, id)
}

// List returns all blocks in creation order. A session without a project
// has no blocks.
func (s *Session) List(ctx context.Context) ([]*block.Block, error) {
	if s.store == nil {
		return nil, nil
	}
	return s.store.ListBlocks(ctx)
}

// Remove deletes a block.
func (s *Session) Remove(ctx context.Context, id string) error {
	if err := s.ready(); err != nil {
		return err
	}
	if err := s.store.DeleteBlock(ctx, id); err != nil {
		return err
	}
	s.logger.Info("block removed", "id", id)
	return nil
}

// Flip toggles a block's orientation.
func (s *Session) Flip(ctx context.Context, id string) (*block.Block, error) {
	return s.update(ctx, id, func(b *block.Block) { b.Flip() })
}

// Move places a block at pos.
func (s *Session) Move(ctx context.Context, id string, pos block.Vec2) (*block.Block, error) {
	return s.update(ctx, id, func(b *block.Block) { b.MoveTo(pos) })
}

// Nudge moves a block by delta from its current position.
func (s *Session) Nudge(ctx context.Context, id string, delta block.Vec2) (*block.Block, error) {
	return s.update(ctx, id, func(b *block.Block) { b.MoveTo(b.Pos.Add(delta)) })
}

// SetKind changes a block's kind and rebuilds its terminals.
func (s *Session) SetKind(ctx context.Context, id string, kind block.Kind) (*block.Block, error) {
	return s.update(ctx, id, func(b *block.Block) { b.SetKind(kind) })
}

func (s *Session) update(ctx context.Context, id string, fn func(*block.Block)) (*block.Block, error) {
	if err := s.ready(); err != nil {
		return nil, err
	}
	b, err := s.store.GetBlock(ctx, id)
	if err != nil {
		return nil, err
	}
	fn(b)
	if err := s.store.SaveBlock(ctx, b); err != nil {
		return nil, err
	}
	return b, nil
}

// Document returns the exportable diagram.
func (s *Session) Document(ctx context.Context) (diagram.Document, error) {
	if err := s.ready(); err != nil {
		return diagram.Document{}, err
	}
	blocks, err := s.store.ListBlocks(ctx)
	if err != nil {
		return diagram.Document{}, err
	}
	return diagram.Document{Project: s.Descriptor, Blocks: blocks}, nil
}

func generateID(kind block.Kind) string {
	prefix := kind.Sub()
	if prefix == "" {
		prefix = "block"
	}
	return prefix + "_" + strings.SplitN(uuid.NewString(), "-", 2)[0]
}
