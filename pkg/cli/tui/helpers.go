package tui

import (
	"fmt"
	"strings"
)

// styleLogLine colors a run log line by its marker. Lines without a known
// marker are returned unchanged.
func styleLogLine(line string) string {
	trimmed := strings.TrimRight(line, "\n")
	switch {
	case strings.HasPrefix(trimmed, "[ERROR]"):
		return errorStyle.Render(trimmed)
	case strings.Contains(trimmed, "✅"):
		return successStyle.Render(trimmed)
	case strings.Contains(trimmed, "⚠️"):
		return warningStyle.Render(trimmed)
	case strings.HasPrefix(trimmed, "🎉"):
		return boldStyle.Render(trimmed)
	case strings.HasPrefix(trimmed, "---"):
		return mutedStyle.Render(trimmed)
	default:
		return trimmed
	}
}

// styleLog applies styleLogLine to every line of a log chunk
func styleLog(chunk string) []string {
	var out []string
	for _, line := range strings.Split(strings.TrimRight(chunk, "\n"), "\n") {
		out = append(out, styleLogLine(line))
	}
	return out
}

// truncateURL truncates a URL to at most maxLen runes
func truncateURL(url string, maxLen int) string {
	runes := []rune(url)
	if len(runes) <= maxLen {
		return url
	}
	if maxLen <= 3 {
		return string(runes[:maxLen])
	}
	return string(runes[:maxLen-3]) + "..."
}

// renderCounts renders the running success/failure tally
func renderCounts(success, failed, total int) string {
	return fmt.Sprintf("%s  %s  %s",
		successStyle.Render(fmt.Sprintf("✓ %d", success)),
		errorStyle.Render(fmt.Sprintf("✗ %d", failed)),
		mutedStyle.Render(fmt.Sprintf("of %d", total)),
	)
}

// handleQuitKeys checks if a key should quit the current view
func handleQuitKeys(key string) bool {
	switch key {
	case "ctrl+c", "q", "esc":
		return true
	}
	return false
}
