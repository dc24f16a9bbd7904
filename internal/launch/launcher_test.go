package launch

import (
	"context"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/qorex-scitech/lazo/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeProcess struct {
	pid  int
	done chan struct{}
}

func (p *fakeProcess) Pid() int { return p.pid }
func (p *fakeProcess) Wait() error {
	<-p.done
	return nil
}

type fakeStarter struct {
	mu    sync.Mutex
	spec  Spec
	proc  *fakeProcess
	err   error
	calls int
}

func (s *fakeStarter) Start(spec Spec) (Process, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls++
	s.spec = spec
	if s.err != nil {
		return nil, s.err
	}
	return s.proc, nil
}

func TestModule_Binary(t *testing.T) {
	assert.Equal(t, "lazo-node", ModuleNode.Binary("linux"))
	assert.Equal(t, "lazo-model", ModuleModel.Binary("darwin"))
	assert.Equal(t, "lazo-model.exe", ModuleModel.Binary("windows"))
	assert.Equal(t, "NODE", ModuleNode.Label())
}

func TestParseModule(t *testing.T) {
	m, err := ParseModule(" MODEL ")
	require.NoError(t, err)
	assert.Equal(t, ModuleModel, m)

	_, err = ParseModule("editor")
	assert.ErrorIs(t, err, ErrUnknownModule)
}

func TestLauncher_Launch(t *testing.T) {
	proc := &fakeProcess{pid: 4242, done: make(chan struct{})}
	defer close(proc.done)
	starter := &fakeStarter{proc: proc}

	l := New("out", testutil.NewTestLogger(t), WithStarter(starter), WithGOOS("linux"))
	s, err := l.Launch(context.Background(), ModuleModel, "/projects/Demo", Detached)
	require.NoError(t, err)

	assert.Equal(t, filepath.Join("out", "lazo-model"), starter.spec.Path)
	assert.Equal(t, []string{"--project-path", "/projects/Demo"}, starter.spec.Args)
	assert.False(t, starter.spec.Attach)
	assert.Equal(t, 4242, s.Pid)
	assert.NotEmpty(t, s.ID)
	assert.Equal(t, ModuleModel, s.Module)
	assert.Equal(t, Detached, s.Mode)
}

func TestLauncher_LaunchModes(t *testing.T) {
	tests := []struct {
		name       string
		module     Module
		mode       Mode
		wantArgs   []string
		wantAttach bool
	}{
		{
			name:     "detached node stays live",
			module:   ModuleNode,
			mode:     Detached,
			wantArgs: []string{"--project-path", "/p", "run"},
		},
		{
			name:       "attached node opens its screen",
			module:     ModuleNode,
			mode:       Attached,
			wantArgs:   []string{"--project-path", "/p"},
			wantAttach: true,
		},
		{
			name:       "attached model",
			module:     ModuleModel,
			mode:       Attached,
			wantArgs:   []string{"--project-path", "/p"},
			wantAttach: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			proc := &fakeProcess{pid: 9, done: make(chan struct{})}
			close(proc.done)
			starter := &fakeStarter{proc: proc}

			l := New("bin", testutil.NewTestLogger(t), WithStarter(starter), WithGOOS("linux"))
			s, err := l.Launch(context.Background(), tt.module, "/p", tt.mode)
			require.NoError(t, err)

			assert.Equal(t, tt.wantArgs, starter.spec.Args)
			assert.Equal(t, tt.wantAttach, starter.spec.Attach)
			assert.Equal(t, tt.mode, s.Mode)
		})
	}
}

func TestLauncher_AttachedWaitsForExit(t *testing.T) {
	proc := &fakeProcess{pid: 3, done: make(chan struct{})}
	starter := &fakeStarter{proc: proc}
	l := New("bin", testutil.NewTestLogger(t), WithStarter(starter))

	returned := make(chan struct{})
	go func() {
		defer close(returned)
		_, _ = l.Launch(context.Background(), ModuleModel, "/p", Attached)
	}()

	select {
	case <-returned:
		t.Fatal("attached launch returned before the satellite exited")
	case <-time.After(20 * time.Millisecond):
	}

	close(proc.done)
	select {
	case <-returned:
	case <-time.After(time.Second):
		t.Fatal("attached launch did not return after exit")
	}
}

func TestLauncher_Command(t *testing.T) {
	l := New("bin", nil, WithGOOS("linux"))

	cmd := l.Command(ModuleNode, "/projects/Rig")
	assert.Equal(t, filepath.Join("bin", "lazo-node"), cmd.Path)
	assert.Equal(t, []string{filepath.Join("bin", "lazo-node"), "--project-path", "/projects/Rig"}, cmd.Args)
}

func TestLauncher_LaunchWindowsSuffix(t *testing.T) {
	proc := &fakeProcess{pid: 1, done: make(chan struct{})}
	close(proc.done)
	starter := &fakeStarter{proc: proc}

	l := New("", nil, WithStarter(starter), WithGOOS("windows"))
	_, err := l.Launch(context.Background(), ModuleModel, "p", Detached)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(DefaultBinDir, "lazo-model.exe"), starter.spec.Path)
}

func TestLauncher_LaunchUnknownModule(t *testing.T) {
	starter := &fakeStarter{}
	l := New("bin", nil, WithStarter(starter))

	_, err := l.Launch(context.Background(), Module("editor"), ".", Detached)
	assert.ErrorIs(t, err, ErrUnknownModule)
	assert.Zero(t, starter.calls)
}

func TestLauncher_LaunchMissingBinary(t *testing.T) {
	l := New(t.TempDir(), testutil.NewTestLogger(t))

	_, err := l.Launch(context.Background(), ModuleModel, ".", Detached)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "lazo-model")
}
