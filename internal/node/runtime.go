// Package node holds the state of the node runtime: the linked project and
// whether execution is live.
package node

import (
	"fmt"
	"sync"
	"time"
)

// Status labels.
const (
	StatusLive    = "LIVE"
	StatusStandby = "STANDBY"
)

// Runtime tracks the running flag and uptime. It is safe for concurrent use.
type Runtime struct {
	mu        sync.Mutex
	running   bool
	startedAt time.Time
	now       func() time.Time
}

// NewRuntime returns a runtime in standby.
func NewRuntime() *Runtime {
	return &Runtime{now: time.Now}
}

// Start switches to live. Starting a live runtime keeps its start time.
func (r *Runtime) Start() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.start()
}

func (r *Runtime) start() {
	if r.running {
		return
	}
	r.running = true
	r.startedAt = r.now()
}

// Stop switches to standby.
func (r *Runtime) Stop() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.stop()
}

func (r *Runtime) stop() {
	r.running = false
	r.startedAt = time.Time{}
}

// Toggle flips the running state and returns the new value.
func (r *Runtime) Toggle() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.running {
		r.stop()
	} else {
		r.start()
	}
	return r.running
}

// Running reports whether the runtime is live.
func (r *Runtime) Running() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.running
}

// Status returns StatusLive or StatusStandby.
func (r *Runtime) Status() string {
	if r.Running() {
		return StatusLive
	}
	return StatusStandby
}

// Uptime is the time since the last Start, or zero in standby.
func (r *Runtime) Uptime() time.Duration {
	r.mu.Lock()
	defer r.mu.Unlock()
	if !r.running {
		return 0
	}
	return r.now().Sub(r.startedAt)
}

// FormatUptime renders d as HH:MM:SS.
func FormatUptime(d time.Duration) string {
	d = d.Round(time.Second)
	h := d / time.Hour
	d -= h * time.Hour
	m := d / time.Minute
	d -= m * time.Minute
	s := d / time.Second
	return fmt.Sprintf("%02d:%02d:%02d", h, m, s)
}
