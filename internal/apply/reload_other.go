//go:build !unix

package apply

import "fmt"

// reloadKitty is unsupported outside Unix-like systems; kitty reload
// relies on SIGUSR1.
func (a *Applier) reloadKitty() error {
	return fmt.Errorf("terminal reload is not supported on this platform")
}
