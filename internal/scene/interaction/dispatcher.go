package interaction

import (
	"time"

	"github.com/warehublabs/warehub-backend/internal/scene"
)

// Cursor is the pointer cursor the view should show.
type Cursor string

const (
	CursorDefault Cursor = "default"
	CursorPointer Cursor = "pointer"
)

// EventKind discriminates dispatcher events.
type EventKind string

const (
	// EventHoverEnter fires once when the pointer ray starts hitting a zone.
	EventHoverEnter EventKind = "hover_enter"
	// EventHoverExit fires once when the pointer ray stops hitting a zone.
	EventHoverExit EventKind = "hover_exit"
	// EventClick fires on release when the press/release pair stayed within
	// the drag threshold and the release ray hits a zone.
	EventClick EventKind = "click"
	// EventClickOutside fires on release when the press/release pair stayed
	// within the drag threshold but the release ray hits no zone. The view
	// closes any open overlay on it; a camera pan emits nothing at all.
	EventClickOutside EventKind = "click_outside"
)

// Event is one discrete interaction transition.
type Event struct {
	Kind EventKind
	Zone scene.HitZone
	// ZoneIdx is the zone's index in the dispatcher's zone list.
	ZoneIdx int
}

// DefaultDragThresholdPx separates a click from a camera pan.
const DefaultDragThresholdPx = 5.0

// Dispatcher runs the per-frame pointer interaction state machine for one
// scene: hover enter/exit transitions against the zone list, cursor state,
// click-versus-drag discrimination on press/release, and the highlight
// opacity timeline.
type Dispatcher struct {
	zones    []scene.HitZone
	timeline *Timeline

	hovered   int // index into zones, -1 when nothing is hovered
	threshold float64

	pressed  bool
	pressPos Vec2
	dragged  bool
}

// Options tunes a dispatcher. Zero values fall back to the frontend defaults.
type Options struct {
	DragThresholdPx float64
	HoverTweenTime  time.Duration
}

// NewDispatcher builds a dispatcher over the given zones.
func NewDispatcher(zones []scene.HitZone, opts Options) *Dispatcher {
	threshold := opts.DragThresholdPx
	if threshold <= 0 {
		threshold = DefaultDragThresholdPx
	}
	tweenTime := opts.HoverTweenTime
	if tweenTime <= 0 {
		tweenTime = 300 * time.Millisecond
	}
	return &Dispatcher{
		zones:     zones,
		timeline:  NewTimeline(tweenTime),
		hovered:   -1,
		threshold: threshold,
	}
}

// SetZones swaps the zone list, clearing any hover state and the opacity
// timeline: indices from the old list must not bleed onto whichever new zone
// lands at the same slot. The view calls this when the scene is rebuilt.
func (d *Dispatcher) SetZones(zones []scene.HitZone, now time.Time) []Event {
	var events []Event
	if d.hovered >= 0 {
		events = append(events, Event{Kind: EventHoverExit, Zone: d.zones[d.hovered], ZoneIdx: d.hovered})
	}
	d.zones = zones
	d.hovered = -1
	d.timeline.Reset()
	return events
}

// Frame raycasts against the zone list and emits the hover transitions for
// this frame. Moving straight from one zone to another emits the exit before
// the enter. Frames where the hovered zone is unchanged emit nothing.
func (d *Dispatcher) Frame(ray Ray, now time.Time) []Event {
	d.timeline.Advance(now)

	_, idx, ok := ray.Nearest(d.zones)
	if !ok {
		idx = -1
	}
	if idx == d.hovered {
		return nil
	}

	var events []Event
	if d.hovered >= 0 {
		events = append(events, Event{Kind: EventHoverExit, Zone: d.zones[d.hovered], ZoneIdx: d.hovered})
		d.timeline.To(d.hovered, RestOpacity, now)
	}
	if idx >= 0 {
		events = append(events, Event{Kind: EventHoverEnter, Zone: d.zones[idx], ZoneIdx: idx})
		d.timeline.To(idx, HoverOpacity, now)
	}
	d.hovered = idx
	return events
}

// Press records the pointer-down position. Click-versus-drag is decided
// against this anchor on release.
func (d *Dispatcher) Press(pos Vec2) {
	d.pressed = true
	d.pressPos = pos
	d.dragged = false
}

// Move feeds pointer motion between press and release. Once the pointer
// strays past the threshold the gesture is a pan and release will not click.
func (d *Dispatcher) Move(pos Vec2) {
	if !d.pressed || d.dragged {
		return
	}
	if pos.Dist(d.pressPos) > d.threshold {
		d.dragged = true
	}
}

// Release ends the gesture. A release within the drag threshold emits exactly
// one event: a click for the nearest zone the ray hits, or a click-outside
// when it hits none. A pan (threshold exceeded) emits nothing.
func (d *Dispatcher) Release(pos Vec2, ray Ray) []Event {
	if !d.pressed {
		return nil
	}
	d.pressed = false

	if d.dragged || pos.Dist(d.pressPos) > d.threshold {
		return nil
	}
	zone, idx, ok := ray.Nearest(d.zones)
	if !ok {
		return []Event{{Kind: EventClickOutside, ZoneIdx: -1}}
	}
	return []Event{{Kind: EventClick, Zone: zone, ZoneIdx: idx}}
}

// Cursor reports the cursor for the current hover state.
func (d *Dispatcher) Cursor() Cursor {
	if d.hovered >= 0 {
		return CursorPointer
	}
	return CursorDefault
}

// Hovered returns the hovered zone, if any.
func (d *Dispatcher) Hovered() (scene.HitZone, bool) {
	if d.hovered < 0 {
		return scene.HitZone{}, false
	}
	return d.zones[d.hovered], true
}

// Opacity exposes the highlight opacity for the zone at idx.
func (d *Dispatcher) Opacity(idx int) float64 {
	return d.timeline.Value(idx)
}
