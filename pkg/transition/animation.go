package transition

import (
	"time"

	"github.com/go-vessel/vessel/pkg/geometry"
)

// State is the display state of one participant at one end of a step:
// an absolute frame plus an opacity. Animations encode absolute geometry,
// not relative rules, which is why cached animations must be rebuilt after
// a layout change.
type State struct {
	Frame geometry.Rect
	Alpha float64
}

// Equal reports whether two states match within geometric tolerance.
func (s State) Equal(other State) bool {
	return s.Frame.Equal(other.Frame) && geometry.FloatEqual(s.Alpha, other.Alpha)
}

// Lerp interpolates between two states at progress t.
func (s State) Lerp(to State, t float64) State {
	return State{
		Frame: geometry.LerpRect(s.Frame, to.Frame, t),
		Alpha: geometry.LerpFloat64(s.Alpha, to.Alpha, t),
	}
}

// Step describes the motion of a single participant across the whole
// animation: from Start to End over the animation's shared duration.
type Step struct {
	// Participant is the stable identity of the content handle whose view
	// this step drives.
	Participant string
	// Start is the participant's state when the animation begins.
	Start State
	// End is the participant's state when the animation finishes.
	End State
}

// Inverted returns the step with start and end states swapped.
func (s Step) Inverted() Step {
	return Step{Participant: s.Participant, Start: s.End, End: s.Start}
}

// IsNoop reports whether the step leaves its participant unchanged.
func (s Step) IsNoop() bool {
	return s.Start.Equal(s.End)
}

// Animation is a composite transition description: an ordered set of
// per-participant steps sharing one duration and one timing curve.
//
// An Animation is a pure description. It does not hold views and does not
// drive time; an external player interpolates and applies the states.
type Animation struct {
	// Style is the transition style the animation was built from.
	Style Style
	// Duration is the shared length of every step.
	Duration time.Duration
	// Curve names the shared timing curve.
	Curve CurveName
	// Steps lists the per-participant motions, appearing participant first.
	Steps []Step
}

// Invert produces the structurally reversed animation: same participants,
// duration, and curve, with each step's start and end states swapped.
// Invert is an exact involution: Invert(Invert(a)) equals a.
func (a Animation) Invert() Animation {
	steps := make([]Step, len(a.Steps))
	for i, step := range a.Steps {
		steps[i] = step.Inverted()
	}
	return Animation{
		Style:    a.Style,
		Duration: a.Duration,
		Curve:    a.Curve,
		Steps:    steps,
	}
}

// StateAt returns the interpolated state of a participant at eased
// progress t in [0, 1]. The second return is false if the participant has
// no step in this animation.
func (a Animation) StateAt(participant string, t float64) (State, bool) {
	for _, step := range a.Steps {
		if step.Participant == participant {
			return step.Start.Lerp(step.End, t), true
		}
	}
	return State{}, false
}

// Participants returns the participant identities in step order.
func (a Animation) Participants() []string {
	out := make([]string, len(a.Steps))
	for i, step := range a.Steps {
		out[i] = step.Participant
	}
	return out
}

// Equal reports whether two animations are structurally identical:
// same style, duration, curve, and pairwise equal steps.
func (a Animation) Equal(other Animation) bool {
	if a.Style != other.Style || a.Duration != other.Duration || a.Curve != other.Curve {
		return false
	}
	if len(a.Steps) != len(other.Steps) {
		return false
	}
	for i := range a.Steps {
		if a.Steps[i].Participant != other.Steps[i].Participant {
			return false
		}
		if !a.Steps[i].Start.Equal(other.Steps[i].Start) {
			return false
		}
		if !a.Steps[i].End.Equal(other.Steps[i].End) {
			return false
		}
	}
	return true
}
