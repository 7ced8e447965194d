package timezone

import (
	"fmt"
	"time"
)

type formatOptions struct {
	mode        EmptyNameMode
	placeholder string
}

// FormatOffset renders an offset as a signed "HH:MM". Seconds are truncated,
// the sign is always explicit and the minutes are never negative. The sign
// follows the total offset, so -30 minutes renders "-00:30" rather than the
// "+00:30" that signing the truncated hours would give.
func FormatOffset(offset time.Duration) string {
	minutes := int(offset / time.Minute)
	sign := '+'
	if minutes < 0 {
		sign = '-'
		minutes = -minutes
	}
	return fmt.Sprintf("%c%02d:%02d", sign, minutes/60, minutes%60)
}

func formatZone(offset time.Duration, name string, named bool, opts formatOptions) string {
	if !named {
		name = ""
		if opts.mode != EmptyNameBlank {
			name = opts.placeholder
		}
	}
	return FormatOffset(offset) + " (" + name + ")"
}
