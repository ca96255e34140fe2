// Package supervisor ensures a long-lived dashboard process exists inside a
// named terminal-multiplexer session, creating the session or injecting a
// restart command into it. It is deliberately best-effort: apart from the
// working-directory check, none of the session operations are verified, there
// are no retries and no health checks. Callers that want a monitored process
// should reach for a real process supervisor instead.
package supervisor

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Multiplexer is the session interface the supervisor drives. The production
// implementation shells out to tmux; tests substitute a fake.
type Multiplexer interface {
	SessionExists(name string) bool
	CreateDetached(name, dir, command string) error
	SendCommand(name, command string) error
}

// Config fixes the four inputs of a supervisor run. None of them come from
// flags or the environment.
type Config struct {
	SessionName string
	Interpreter string // optional; empty when EntryPoint is directly executable
	EntryPoint  string // path to the dashboard entry point
	Port        int
}

// LaunchCommand is the shell command that (re)starts the dashboard bound to
// the configured port.
func (c Config) LaunchCommand() string {
	parts := make([]string, 0, 3)
	if c.Interpreter != "" {
		parts = append(parts, c.Interpreter)
	}
	parts = append(parts, c.EntryPoint, fmt.Sprintf("--port=%d", c.Port))
	return strings.Join(parts, " ")
}

// Outcome reports which branch EnsureRunning took.
type Outcome int

const (
	OutcomeNone Outcome = iota
	OutcomeCreated
	OutcomeRestarted
)

func (o Outcome) String() string {
	switch o {
	case OutcomeCreated:
		return "created new session and started the dashboard"
	case OutcomeRestarted:
		return "sent restart command to the existing session"
	default:
		return "no action taken"
	}
}

type Supervisor struct {
	cfg Config
	mux Multiplexer
}

func New(cfg Config, mux Multiplexer) *Supervisor {
	return &Supervisor{cfg: cfg, mux: mux}
}

// EnsureRunning guarantees a session with the configured name exists and has
// been told to run the dashboard. The only fatal condition is a bad working
// directory; session operations are fire-and-forget and their failures are
// intentionally not surfaced (the session tool is trusted to behave).
func (s *Supervisor) EnsureRunning() (Outcome, error) {
	dir := filepath.Dir(s.cfg.EntryPoint)
	if err := os.Chdir(dir); err != nil {
		return OutcomeNone, fmt.Errorf("cannot change to dashboard directory %s: %w", dir, err)
	}

	command := s.cfg.LaunchCommand()

	if s.mux.SessionExists(s.cfg.SessionName) {
		_ = s.mux.SendCommand(s.cfg.SessionName, command)
		return OutcomeRestarted, nil
	}

	_ = s.mux.CreateDetached(s.cfg.SessionName, dir, command)
	return OutcomeCreated, nil
}
