// fplsession makes sure the dashboard is running inside a persistent tmux
// session, creating the session on first use and sending a restart command on
// subsequent runs. It takes no arguments and reads no environment; the
// configuration below is fixed on purpose.
package main

import (
	"os"

	"github.com/charmbracelet/log"
	"github.com/yucath/fpl-minileague-dashboard/supervisor"
)

var config = supervisor.Config{
	SessionName: "fpl-dashboard",
	EntryPoint:  "/opt/fpl-dashboard/fpl-minileague-dashboard",
	Port:        8501,
}

func main() {
	s := supervisor.New(config, supervisor.NewTmux("tmux"))

	outcome, err := s.EnsureRunning()
	if err != nil {
		log.Error("dashboard directory is not usable", "err", err)
		os.Exit(1)
	}

	log.Info(outcome.String(), "session", config.SessionName, "port", config.Port)
}
