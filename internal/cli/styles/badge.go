package styles

import (
	"fmt"
	"time"
)

// CountBadge renders "n things", using the singular for one.
func (t *Theme) CountBadge(n int, singular, plural string) string {
	if n == 1 {
		return t.BadgeMuted.Render("1 " + singular)
	}
	return t.BadgeMuted.Render(fmt.Sprintf("%d %s", n, plural))
}

// TimeBadge renders a relative time badge.
func (t *Theme) TimeBadge(tm time.Time) string {
	return t.BadgeMuted.Render(RelativeTime(tm))
}

// AccentBadge renders a badge with accent color.
func (t *Theme) AccentBadge(text string) string {
	return t.Badge.Render(text)
}

// MutedBadge renders a badge with muted colors.
func (t *Theme) MutedBadge(text string) string {
	return t.BadgeMuted.Render(text)
}

// RelativeTime formats a time as a human-readable relative string.
func RelativeTime(tm time.Time) string {
	diff := time.Since(tm)

	unit := func(n int, suffix string) string {
		return fmt.Sprintf("%d%s ago", n, suffix)
	}

	switch {
	case diff < time.Minute:
		return "just now"
	case diff < time.Hour:
		return unit(int(diff.Minutes()), "m")
	case diff < 24*time.Hour:
		return unit(int(diff.Hours()), "h")
	case diff < 7*24*time.Hour:
		return unit(int(diff.Hours()/24), "d")
	case diff < 30*24*time.Hour:
		return unit(int(diff.Hours()/(24*7)), "w")
	case diff < 365*24*time.Hour:
		return unit(int(diff.Hours()/(24*30)), "mo")
	default:
		return unit(int(diff.Hours()/(24*365)), "y")
	}
}
