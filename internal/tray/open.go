package tray

import (
	"fmt"
	"os/exec"
	"runtime"
)

// openFile opens path with the desktop's default application
func openFile(path string) error {
	var cmd *exec.Cmd
	switch runtime.GOOS {
	case "darwin":
		cmd = exec.Command("open", path)
	case "windows":
		cmd = exec.Command("cmd", "/C", "start", "", path)
	default:
		cmd = exec.Command("xdg-open", path)
	}

	if err := cmd.Start(); err != nil {
		return fmt.Errorf("open %s: %w", path, err)
	}
	// Reap the launcher without blocking the caller
	go func() { _ = cmd.Wait() }()
	return nil
}
