package ui

import (
	"fmt"
	"os"
	"os/exec"
	"runtime"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

// BrowserEnv overrides the command used to open result URLs
const BrowserEnv = "DOCSEARCH_BROWSER"

// Opener opens a result URL
type Opener interface {
	Open(url string) error
}

// OpenerFunc adapts a function to Opener
type OpenerFunc func(url string) error

func (f OpenerFunc) Open(url string) error { return f(url) }

// BrowserOpener opens URLs with the platform's default browser
type BrowserOpener struct {
	goos string
}

// NewBrowserOpener creates an opener for the running platform
func NewBrowserOpener() *BrowserOpener {
	return &BrowserOpener{goos: runtime.GOOS}
}

// Open starts the browser and returns without waiting for it
func (o *BrowserOpener) Open(url string) error {
	name, args := browserCommand(o.goos, os.Getenv(BrowserEnv), url)
	if _, err := exec.LookPath(name); err != nil {
		return fmt.Errorf("%s not found in PATH: %w", name, err)
	}
	cmd := exec.Command(name, args...)
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("open %s: %w", url, err)
	}
	// Reap the child; the browser outlives us
	go func() { _ = cmd.Wait() }()
	return nil
}

// browserCommand returns the program and arguments that open url
func browserCommand(goos, override, url string) (string, []string) {
	if fields := strings.Fields(override); len(fields) > 0 {
		return fields[0], append(fields[1:], url)
	}
	switch goos {
	case "darwin":
		return "open", []string{url}
	case "windows":
		return "rundll32", []string{"url.dll,FileProtocolHandler", url}
	default:
		return "xdg-open", []string{url}
	}
}

// openURL returns a command that opens url with opener
func openURL(opener Opener, url string) tea.Cmd {
	return func() tea.Msg {
		return navigatedMsg{url: url, err: opener.Open(url)}
	}
}
