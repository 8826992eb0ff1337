package tui

import (
	"fmt"

	"github.com/akyairhashvil/fourbyfour/internal/config"
	"github.com/charmbracelet/x/ansi"
)

// FormatClock renders seconds as m:ss.
func FormatClock(seconds int) string {
	if seconds < 0 {
		seconds = 0
	}
	return fmt.Sprintf("%d:%02d", seconds/60, seconds%60)
}

// FormatFlashRate renders a 0-100 percentage without decimals.
func FormatFlashRate(rate float64) string {
	return fmt.Sprintf("%.0f%%", rate)
}

// FormatFlashCount formats flashed problems for display.
func FormatFlashCount(flashed, total int) string {
	if total == 0 {
		return "No problems"
	}
	return fmt.Sprintf("%d/%d flashed", flashed, total)
}

func truncateText(text string, max int) string {
	if max <= 0 {
		return ""
	}
	if ansi.StringWidth(text) <= max {
		return text
	}
	return ansi.Truncate(text, max, config.TruncationSuffix)
}

func padRight(text string, width int) string {
	if w := ansi.StringWidth(text); w < width {
		return text + fmt.Sprintf("%*s", width-w, "")
	}
	return text
}
