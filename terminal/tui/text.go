package tui

import "github.com/mattn/go-runewidth"

// RuneLen returns display width of s in terminal columns
func RuneLen(s string) int {
	return runewidth.StringWidth(s)
}

// Truncate truncates string with … suffix if its display width exceeds maxLen
func Truncate(s string, maxLen int) string {
	if maxLen <= 0 {
		return ""
	}
	if RuneLen(s) <= maxLen {
		return s
	}
	if maxLen <= 1 {
		return "…"
	}
	return runewidth.Truncate(s, maxLen, "…")
}

// PadRight pads string with spaces to display width
func PadRight(s string, width int) string {
	return runewidth.FillRight(s, width)
}
