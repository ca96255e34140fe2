package supervisor

import (
	"os/exec"
)

// TmuxMultiplexer drives tmux through its CLI. No timeouts are applied; the
// fire-and-forget semantics of the supervisor extend to the tmux calls
// themselves.
type TmuxMultiplexer struct {
	Bin string // path to the tmux binary
}

func NewTmux(bin string) *TmuxMultiplexer {
	if bin == "" {
		bin = "tmux"
	}
	return &TmuxMultiplexer{Bin: bin}
}

// SessionExists probes for the named session. tmux exits non-zero when the
// session is missing, which is indistinguishable here from tmux being broken;
// that ambiguity is accepted.
func (t *TmuxMultiplexer) SessionExists(name string) bool {
	return exec.Command(t.Bin, "has-session", "-t", name).Run() == nil
}

// CreateDetached starts a new detached session running command in dir.
func (t *TmuxMultiplexer) CreateDetached(name, dir, command string) error {
	return exec.Command(t.Bin, "new-session", "-d", "-s", name, "-c", dir, command).Run()
}

// SendCommand types command into the session's input stream followed by
// Enter. Nothing observes whether the injected command succeeded.
func (t *TmuxMultiplexer) SendCommand(name, command string) error {
	return exec.Command(t.Bin, "send-keys", "-t", name, command, "C-m").Run()
}
