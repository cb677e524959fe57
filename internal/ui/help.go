package ui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/noborus/ov/oviewer"
)

// HelpRenderer handles help content rendering
type HelpRenderer struct {
	keys keyMap
}

// NewHelpRenderer creates a new help renderer
func NewHelpRenderer(keys keyMap) *HelpRenderer {
	return &HelpRenderer{keys: keys}
}

// RenderHelpContent generates help content with colors for the pager and
// the inline popup
func (r *HelpRenderer) RenderHelpContent(minQueryLength, maxResults int, debounce time.Duration) string {
	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("99")).
		MarginBottom(1)

	sectionStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("39")).
		MarginTop(1)

	keyStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("220"))

	descStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("252"))

	line := func(k, desc string) string {
		return fmt.Sprintf("  %s  %s\n", keyStyle.Render(fmt.Sprintf("%-14s", k)), descStyle.Render(desc))
	}

	var help strings.Builder

	help.WriteString(titleStyle.Render("docsearch Help"))
	help.WriteString("\n")

	help.WriteString(sectionStyle.Render("Search box"))
	help.WriteString("\n")
	help.WriteString(line(r.keys.toggleLabel(), "Open or close the search box"))
	help.WriteString(line("/", "Open the search box"))
	help.WriteString(line("Esc", "Close and clear the search"))
	help.WriteString(line("Enter", "Open the first result in the browser"))
	help.WriteString(line("Click outside", "Close the search box"))
	help.WriteString("\n")

	help.WriteString(sectionStyle.Render("Matching"))
	help.WriteString("\n")
	help.WriteString(descStyle.Render(fmt.Sprintf("  Queries shorter than %d characters show nothing.", minQueryLength)))
	help.WriteString("\n")
	help.WriteString(descStyle.Render(fmt.Sprintf("  Results update %s after you stop typing, at most %d are shown.", debounce, maxResults)))
	help.WriteString("\n")
	help.WriteString(descStyle.Render("  Title, description, summary and path are searched, case-insensitively."))
	help.WriteString("\n\n")

	help.WriteString(sectionStyle.Render("Other"))
	help.WriteString("\n")
	help.WriteString(line("ctrl+r", "Reload the search index"))
	help.WriteString(line("?", "Toggle this help"))
	help.WriteString(strings.TrimSuffix(line("q, ctrl+c", "Quit"), "\n"))

	return help.String()
}

// HelpOps handles help operations
type HelpOps struct {
	program *tea.Program // reference to Bubble Tea program for terminal management
}

// NewHelpOps creates a new help operations instance
func NewHelpOps(program *tea.Program) *HelpOps {
	return &HelpOps{
		program: program,
	}
}

// ShowHelpInPager shows help content using ov pager
func (h *HelpOps) ShowHelpInPager(helpContent string) error {
	if h.program == nil {
		return fmt.Errorf("program not set")
	}

	// Release terminal control to run ov
	if err := h.program.ReleaseTerminal(); err != nil {
		return err
	}

	// Ensure terminal is restored even if ov fails
	defer func() {
		// Small delay to ensure ov has fully exited before restoring terminal
		time.Sleep(100 * time.Millisecond)
		_ = h.program.RestoreTerminal()
	}()

	root, err := oviewer.NewRoot(strings.NewReader(helpContent))
	if err != nil {
		return err
	}

	// Don't write on exit, it would mess with our screen
	config := oviewer.NewConfig()
	config.IsWriteOriginal = false
	root.SetConfig(config)

	return root.Run()
}
