package output

import (
	"fmt"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
)

// ScoreBar renders a visual progress bar for a 0-100 score.
// Example: "████████░░ 80/100"
func ScoreBar(score float64, width int) string {
	if width <= 0 {
		width = 20
	}
	filled := int((score / 100.0) * float64(width))
	if filled > width {
		filled = width
	}
	if filled < 0 {
		filled = 0
	}

	bar := strings.Repeat("█", filled) + strings.Repeat("░", width-filled)

	var style func(...string) string
	switch {
	case score >= 70:
		style = StyleSuccess.Render
	case score >= 40:
		style = StyleWarning.Render
	default:
		style = StyleError.Render
	}

	return fmt.Sprintf("%s %s", style(bar), StyleMuted.Render(fmt.Sprintf("%.0f/100", score)))
}

// WeekBits renders a trailing-week completion vector, oldest day first.
// Example: "●●○●●○●"
func WeekBits(bits []bool) string {
	var sb strings.Builder
	for _, done := range bits {
		if done {
			sb.WriteString(StyleSuccess.Render("●"))
		} else {
			sb.WriteString(StyleMuted.Render("○"))
		}
	}
	return sb.String()
}

// Streak renders a streak count with a flame marker when it is alive.
func Streak(current int) string {
	if current == 0 {
		return StyleMuted.Render("0")
	}
	return StyleSuccess.Render(fmt.Sprintf("%d 🔥", current))
}

// RelTime renders a timestamp as a relative phrase ("3 days ago").
func RelTime(t time.Time) string {
	if t.IsZero() {
		return StyleMuted.Render("never")
	}
	return humanize.Time(t)
}
