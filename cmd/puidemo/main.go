// Command puidemo shows a menu bar with submenus, ranged values, toggles
// and an about box, in a terminal or a devdraw window.
package main

import (
	"fmt"
	"os"

	"github.com/mjl-/pui/logger"
)

func main() {
	exitCode := 0
	if err := Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		exitCode = 1
	}

	logger.Sync()
	if exitCode != 0 {
		os.Exit(exitCode)
	}
}
