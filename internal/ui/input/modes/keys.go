package modes

import "strings"

// ShortcutKeys returns the key strings that toggle the search box for a
// shortcut letter. alt stands in for Cmd, which terminals do not report.
func ShortcutKeys(shortcut string) []string {
	shortcut = strings.ToLower(strings.TrimSpace(shortcut))
	if shortcut == "" {
		shortcut = "k"
	}
	return []string{"ctrl+" + shortcut, "alt+" + shortcut}
}

func isShortcut(key string, shortcuts []string) bool {
	for _, s := range shortcuts {
		if key == s {
			return true
		}
	}
	return false
}
