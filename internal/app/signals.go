package app

import (
	"os"
	"syscall"
)

// shutdownSignals are the signals that trigger graceful shutdown of
// long-running commands.
var shutdownSignals = []os.Signal{os.Interrupt, syscall.SIGTERM}
