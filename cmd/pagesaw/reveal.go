package main

import (
	"os/exec"
	"runtime"
)

// reveal opens path in the platform file manager. Presentation-layer
// glue only; engines never call this.
func reveal(path string) error {
	switch runtime.GOOS {
	case "darwin":
		return exec.Command("open", path).Start()
	case "windows":
		return exec.Command("explorer", path).Start()
	default:
		return exec.Command("xdg-open", path).Start()
	}
}
