// Package browser opens URLs in the system default browser.
package browser

import (
	"os/exec"
	"runtime"
)

// Open launches the default browser for the URL. Fire-and-forget;
// unsupported platforms are a no-op.
func Open(url string) {
	if cmd := command(runtime.GOOS, url); cmd != nil {
		_ = cmd.Start()
	}
}

// command returns the platform launcher invocation, nil when the
// platform has none.
func command(goos, url string) *exec.Cmd {
	switch goos {
	case "darwin":
		return exec.Command("open", url)
	case "linux":
		return exec.Command("xdg-open", url)
	case "windows":
		return exec.Command("rundll32", "url.dll,FileProtocolHandler", url)
	}
	return nil
}
