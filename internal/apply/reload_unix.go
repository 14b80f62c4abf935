//go:build unix

package apply

import (
	"fmt"
	"syscall"

	"github.com/mitchellh/go-ps"
)

// reloadKitty sends SIGUSR1 to all running kitty processes so they
// re-read their configuration.
func (a *Applier) reloadKitty() error {
	pids, err := findProcessByName("kitty")
	if err != nil {
		return fmt.Errorf("failed to find kitty processes: %w", err)
	}

	if len(pids) == 0 {
		return fmt.Errorf("no running kitty instances found")
	}

	for _, pid := range pids {
		if err := syscall.Kill(pid, syscall.SIGUSR1); err != nil {
			return fmt.Errorf("failed to send reload signal to kitty (PID %d): %w", pid, err)
		}
		a.log.Debug("reloaded kitty", "pid", pid)
	}

	return nil
}

// findProcessByName finds all processes with the given executable name.
func findProcessByName(name string) ([]int, error) {
	processes, err := ps.Processes()
	if err != nil {
		return nil, fmt.Errorf("failed to get process list: %w", err)
	}

	var pids []int
	for _, p := range processes {
		if p.Executable() == name {
			pids = append(pids, p.Pid())
		}
	}

	return pids, nil
}
