package editor

import (
	"context"
	"strings"
	"testing"

	"github.com/qorex-scitech/lazo/internal/block"
	"github.com/qorex-scitech/lazo/internal/diagram"
	"github.com/qorex-scitech/lazo/internal/project"
	"github.com/qorex-scitech/lazo/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestSession(t *testing.T) *Session {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, project.WriteDescriptor(dir, project.Descriptor{Name: "Demo"}))

	s, err := Open(context.Background(), dir, testutil.NewProjectLogger(t, dir))
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func TestOpen_MissingDescriptor(t *testing.T) {
	s, err := Open(context.Background(), t.TempDir(), testutil.NewTestLogger(t))
	require.NoError(t, err)
	defer s.Close()

	assert.ErrorIs(t, s.Err, project.ErrDescriptorNotFound)
	assert.Equal(t, MissingDescriptorMessage, s.Message())
	assert.Equal(t, project.UnnamedProject, s.ProjectName())

	_, err = s.Add(context.Background(), AddRequest{Kind: block.ModelProcess})
	assert.ErrorIs(t, err, ErrNoProject)

	blocks, err := s.List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, blocks)
}

func TestOpen_LoadsName(t *testing.T) {
	s := openTestSession(t)

	assert.NoError(t, s.Err)
	assert.Empty(t, s.Message())
	assert.Equal(t, "Demo", s.ProjectName())
	assert.FileExists(t, diagram.PathFor(s.Path))
}

func TestSession_AddAndList(t *testing.T) {
	s := openTestSession(t)
	ctx := context.Background()

	b, err := s.Add(ctx, AddRequest{ID: "sum", Kind: block.ModelSumming, Pos: block.Vec2{X: 10, Y: 20}})
	require.NoError(t, err)
	assert.Len(t, b.Inputs, 2)

	_, err = s.Add(ctx, AddRequest{ID: "sum", Kind: block.ModelProcess})
	assert.Error(t, err, "duplicate ids are rejected")

	auto, err := s.Add(ctx, AddRequest{Kind: block.ModelOutput})
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(auto.ID, "output_"), auto.ID)
	assert.Equal(t, auto.ID+"_in_0", auto.Inputs[0].ID)

	blocks, err := s.List(ctx)
	require.NoError(t, err)
	require.Len(t, blocks, 2)
	assert.Equal(t, "sum", blocks[0].ID)
}

func TestSession_Updates(t *testing.T) {
	s := openTestSession(t)
	ctx := context.Background()

	_, err := s.Add(ctx, AddRequest{ID: "p", Kind: block.ModelProcess})
	require.NoError(t, err)

	b, err := s.Flip(ctx, "p")
	require.NoError(t, err)
	assert.True(t, b.Flipped)

	b, err = s.Move(ctx, "p", block.Vec2{X: 3, Y: 4})
	require.NoError(t, err)
	assert.Equal(t, block.Vec2{X: 3, Y: 4}, b.Pos)

	b, err = s.Nudge(ctx, "p", block.Vec2{X: -1, Y: 10})
	require.NoError(t, err)
	assert.Equal(t, block.Vec2{X: 2, Y: 14}, b.Pos)

	b, err = s.SetKind(ctx, "p", block.ModelSumming)
	require.NoError(t, err)
	assert.Len(t, b.Inputs, 2)

	stored, err := s.Get(ctx, "p")
	require.NoError(t, err)
	assert.Equal(t, b, stored)

	require.NoError(t, s.Remove(ctx, "p"))
	_, err = s.Flip(ctx, "p")
	assert.ErrorIs(t, err, diagram.ErrBlockNotFound)
}

func TestSession_Document(t *testing.T) {
	s := openTestSession(t)
	ctx := context.Background()

	_, err := s.Add(ctx, AddRequest{ID: "in", Kind: block.ModelInput})
	require.NoError(t, err)

	doc, err := s.Document(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Demo", doc.Project.Name)
	require.Len(t, doc.Blocks, 1)
}
