package interaction

import "time"

// Opacity levels for the highlight border material.
const (
	RestOpacity  = 0.3
	HoverOpacity = 1.0
)

// tween is a linear transition of one scalar toward a target value. The
// logical hover transition is instantaneous; the opacity catches up over
// the duration.
type tween struct {
	from     float64
	target   float64
	startAt  time.Time
	duration time.Duration
}

func (t tween) valueAt(now time.Time) (float64, bool) {
	if t.duration <= 0 {
		return t.target, true
	}
	elapsed := now.Sub(t.startAt)
	if elapsed >= t.duration {
		return t.target, true
	}
	if elapsed <= 0 {
		return t.from, false
	}
	frac := float64(elapsed) / float64(t.duration)
	return t.from + (t.target-t.from)*frac, false
}

// Timeline tracks highlight opacity per zone index and the in-flight tweens
// retargeting them. Starting a new tween for a zone replaces any active one,
// picking up from the current interpolated value.
type Timeline struct {
	values   map[int]float64
	active   map[int]tween
	duration time.Duration
}

// NewTimeline builds a timeline whose tweens all share the given duration.
func NewTimeline(duration time.Duration) *Timeline {
	return &Timeline{
		values:   make(map[int]float64),
		active:   make(map[int]tween),
		duration: duration,
	}
}

// To retargets the zone's opacity, replacing any running tween.
func (tl *Timeline) To(zoneIdx int, target float64, now time.Time) {
	tl.Advance(now)
	tl.active[zoneIdx] = tween{
		from:     tl.Value(zoneIdx),
		target:   target,
		startAt:  now,
		duration: tl.duration,
	}
}

// Advance samples every running tween at now, settling the finished ones.
func (tl *Timeline) Advance(now time.Time) {
	for idx, t := range tl.active {
		value, done := t.valueAt(now)
		tl.values[idx] = value
		if done {
			delete(tl.active, idx)
		}
	}
}

// Value returns the current opacity for the zone (rest level by default).
func (tl *Timeline) Value(zoneIdx int) float64 {
	if v, ok := tl.values[zoneIdx]; ok {
		return v
	}
	return RestOpacity
}

// Reset drops every value and running tween. Zone indices only mean anything
// relative to one zone list, so a swapped list starts from rest opacity.
func (tl *Timeline) Reset() {
	tl.values = make(map[int]float64)
	tl.active = make(map[int]tween)
}

// Busy reports whether any tween is still running.
func (tl *Timeline) Busy() bool {
	return len(tl.active) > 0
}
