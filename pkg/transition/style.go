// Package transition builds declarative transition animations between
// container states: a named style plus a duration expand into a composite
// description of per-view frame and opacity changes, and every forward
// description has an exact structural reverse.
package transition

import (
	"fmt"
	"time"
)

// DefaultDuration is the sentinel duration meaning "use the style's
// configured default".
const DefaultDuration time.Duration = -1

// Style names a fixed rule mapping appearing/disappearing roles to
// displacement vectors and opacity curves.
type Style int

const (
	// StyleNone displays the new content without any animation.
	StyleNone Style = iota
	// StyleCrossDissolve fades the new content in while fading the old out.
	StyleCrossDissolve
	// StyleCoverFromBottom slides the new content in over the old, upward.
	StyleCoverFromBottom
	// StyleCoverFromTop slides the new content in over the old, downward.
	StyleCoverFromTop
	// StyleCoverFromLeft slides the new content in over the old, rightward.
	StyleCoverFromLeft
	// StyleCoverFromRight slides the new content in over the old, leftward.
	StyleCoverFromRight
	// StylePushFromBottom slides the new content in while pushing the old
	// out the top, both moving upward.
	StylePushFromBottom
	// StylePushFromTop slides the new content in while pushing the old
	// out the bottom, both moving downward.
	StylePushFromTop
	// StylePushFromLeft slides the new content in while pushing the old
	// out the right edge, both moving rightward.
	StylePushFromLeft
	// StylePushFromRight slides the new content in while pushing the old
	// out the left edge, both moving leftward.
	StylePushFromRight
	// StyleEmergeFromCenter grows the new content from the center of the
	// common frame.
	StyleEmergeFromCenter
)

func (s Style) String() string {
	switch s {
	case StyleNone:
		return "none"
	case StyleCrossDissolve:
		return "cross-dissolve"
	case StyleCoverFromBottom:
		return "cover-from-bottom"
	case StyleCoverFromTop:
		return "cover-from-top"
	case StyleCoverFromLeft:
		return "cover-from-left"
	case StyleCoverFromRight:
		return "cover-from-right"
	case StylePushFromBottom:
		return "push-from-bottom"
	case StylePushFromTop:
		return "push-from-top"
	case StylePushFromLeft:
		return "push-from-left"
	case StylePushFromRight:
		return "push-from-right"
	case StyleEmergeFromCenter:
		return "emerge-from-center"
	default:
		return fmt.Sprintf("Style(%d)", int(s))
	}
}

// ParseStyle resolves a style name as used in configuration files.
func ParseStyle(name string) (Style, bool) {
	for s := StyleNone; s <= StyleEmergeFromCenter; s++ {
		if s.String() == name {
			return s, true
		}
	}
	return StyleNone, false
}

// knownStyle reports whether s is part of the enumeration.
// Factories degrade unknown styles to a no-op rather than failing.
func knownStyle(s Style) bool {
	return s >= StyleNone && s <= StyleEmergeFromCenter
}

// styleCurve returns the timing curve a style animates with.
func styleCurve(s Style) CurveName {
	switch s {
	case StyleNone:
		return CurveLinear
	case StyleCrossDissolve:
		return CurveEaseInOut
	default:
		return CurveEaseOut
	}
}
