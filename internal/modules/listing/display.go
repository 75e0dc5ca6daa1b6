package listing

import (
	"fmt"
	"time"
)

const neutralColor = "#6b7280"

// StatusColor maps a listing status to its badge color. Unknown values
// fall back to a neutral grey instead of failing.
func StatusColor(status Status) string {
	switch status {
	case StatusAvailable:
		return "#10b981"
	case StatusClaimed:
		return "#f59e0b"
	case StatusExpired:
		return "#ef4444"
	default:
		return neutralColor
	}
}

// FreshnessColor maps a freshness category to its badge color.
func FreshnessColor(freshness Freshness) string {
	switch freshness {
	case FreshnessFresh:
		return "#10b981"
	case FreshnessFrozen:
		return "#3b82f6"
	case FreshnessPreserved:
		return "#f59e0b"
	default:
		return neutralColor
	}
}

// DietaryLabel maps a dietary category to its display label. Unknown
// values pass through unchanged.
func DietaryLabel(dietary Dietary) string {
	switch dietary {
	case DietaryVegan:
		return "Vegan"
	case DietaryVegetarian:
		return "Vegetarian"
	case DietaryMixed:
		return "Mixed"
	default:
		return string(dietary)
	}
}

// RelativeAge renders how long ago a listing was posted. The current
// time is an explicit parameter so the function stays pure.
func RelativeAge(posted, now time.Time) string {
	hours := int(now.Sub(posted).Hours())
	switch {
	case hours < 1:
		return "Just posted"
	case hours < 24:
		return fmt.Sprintf("%d hour%s ago", hours, plural(hours))
	default:
		days := hours / 24
		return fmt.Sprintf("%d day%s ago", days, plural(days))
	}
}

func plural(n int) string {
	if n > 1 {
		return "s"
	}
	return ""
}
