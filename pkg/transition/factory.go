package transition

import (
	"time"

	"github.com/go-vessel/vessel/pkg/errors"
	"github.com/go-vessel/vessel/pkg/geometry"
)

// Participant is the factory's view of one animation participant: a stable
// identity plus the shown state its view currently occupies. The factory
// never touches views directly, which keeps it a pure function from
// declarative parameters to a description.
type Participant struct {
	// ID is the stable identity of the content handle.
	ID string
	// Shown is the participant's current on-screen state.
	Shown State
}

// BuildForward builds the forward animation for a transition: the appearing
// participant is brought into its shown state inside commonFrame using the
// given style, while every disappearing participant is driven into the
// hidden state the style prescribes, all over one shared duration.
//
// Unrecognized styles degrade to a no-op animation (reported, not failed):
// display cosmetics must never abort a container operation. A negative
// duration selects the style's configured default.
func BuildForward(style Style, duration time.Duration, appearing Participant, disappearing []Participant, commonFrame geometry.Rect) Animation {
	if !knownStyle(style) {
		errors.Report(errors.Newf("transition.BuildForward", errors.KindStyle,
			"unrecognized style %d, using no-op steps", int(style)))
	}
	if duration < 0 {
		duration = CurrentDefaults().DurationFor(style)
	}

	anim := Animation{
		Style:    style,
		Duration: duration,
		Curve:    CurrentDefaults().CurveFor(style),
		Steps:    make([]Step, 0, 1+len(disappearing)),
	}

	anim.Steps = append(anim.Steps, appearingStep(style, appearing, commonFrame))
	for _, p := range disappearing {
		anim.Steps = append(anim.Steps, disappearingStep(style, p, commonFrame))
	}
	return anim
}

// appearingStep maps the appearing role to its motion for the given style.
func appearingStep(style Style, p Participant, commonFrame geometry.Rect) Step {
	start := p.Shown

	switch style {
	case StyleCrossDissolve:
		start.Alpha = 0
	case StyleCoverFromBottom, StyleCoverFromTop, StyleCoverFromLeft, StyleCoverFromRight,
		StylePushFromBottom, StylePushFromTop, StylePushFromLeft, StylePushFromRight:
		start.Frame = p.Shown.Frame.TranslateBy(entryOffset(style, commonFrame))
	case StyleEmergeFromCenter:
		center := commonFrame.Center()
		start.Frame = geometry.RectFromLTWH(center.X, center.Y, 0, 0)
	}
	// StyleNone and unknown styles keep start == shown: a no-op step.

	return Step{Participant: p.ID, Start: start, End: p.Shown}
}

// disappearingStep maps a disappearing role to its motion for the given
// style. Cover and emerge styles leave the old content in place beneath the
// new view; its hidden state is its shown state.
func disappearingStep(style Style, p Participant, commonFrame geometry.Rect) Step {
	end := p.Shown

	switch style {
	case StyleCrossDissolve:
		end.Alpha = 0
	case StylePushFromBottom, StylePushFromTop, StylePushFromLeft, StylePushFromRight:
		// Pushed content exits the opposite edge, moving with the
		// appearing content.
		end.Frame = p.Shown.Frame.TranslateBy(entryOffset(style, commonFrame).Negate())
	}

	return Step{Participant: p.ID, Start: p.Shown, End: end}
}

// entryOffset returns the displacement from a participant's shown frame to
// its offscreen starting position, sized to the common frame.
func entryOffset(style Style, commonFrame geometry.Rect) geometry.Offset {
	switch style {
	case StyleCoverFromBottom, StylePushFromBottom:
		return geometry.Offset{Y: commonFrame.Height()}
	case StyleCoverFromTop, StylePushFromTop:
		return geometry.Offset{Y: -commonFrame.Height()}
	case StyleCoverFromLeft, StylePushFromLeft:
		return geometry.Offset{X: -commonFrame.Width()}
	case StyleCoverFromRight, StylePushFromRight:
		return geometry.Offset{X: commonFrame.Width()}
	default:
		return geometry.Offset{}
	}
}
