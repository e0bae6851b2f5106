package internal

import (
	"time"

	"github.com/BrandonKowalski/labelkit/pkg/labelkit/constants"
)

// Direction is a vertical step through the picker rows. Page moves
// jump a screenful.
type Direction int

const (
	DirectionNone Direction = iota
	DirectionUp
	DirectionDown
	DirectionPageUp
	DirectionPageDown
)

// DirectionalInput tracks held navigation buttons and handles repeat timing.
type DirectionalInput struct {
	held           Direction
	lastRepeatTime time.Time
	repeatDelay    time.Duration
	repeatInterval time.Duration
	hasRepeated    bool
	now            func() time.Time
}

// NewDirectionalInput uses the default delay and interval.
func NewDirectionalInput() DirectionalInput {
	return NewDirectionalInputWithTiming(constants.DefaultRepeatDelay, constants.DefaultRepeatInterval)
}

func NewDirectionalInputWithTiming(delay, interval time.Duration) DirectionalInput {
	return DirectionalInput{
		repeatDelay:    delay,
		repeatInterval: interval,
		lastRepeatTime: time.Now(),
		now:            time.Now,
	}
}

// DirectionFor maps a navigation button, or returns DirectionNone.
func DirectionFor(button constants.VirtualButton) Direction {
	switch button {
	case constants.VirtualButtonUp:
		return DirectionUp
	case constants.VirtualButtonDown:
		return DirectionDown
	case constants.VirtualButtonL1, constants.VirtualButtonLeft:
		return DirectionPageUp
	case constants.VirtualButtonR1, constants.VirtualButtonRight:
		return DirectionPageDown
	}
	return DirectionNone
}

// SetHeld updates the held direction. Returns true if the button navigates.
// Pressing restarts the repeat delay; releasing only clears the direction
// it belongs to.
func (d *DirectionalInput) SetHeld(button constants.VirtualButton, held bool) bool {
	dir := DirectionFor(button)
	if dir == DirectionNone {
		return false
	}
	if held {
		d.held = dir
		d.hasRepeated = false
		d.lastRepeatTime = d.now()
	} else if d.held == dir {
		d.held = DirectionNone
		d.hasRepeated = false
	}
	return true
}

func (d *DirectionalInput) IsHeld() bool {
	return d.held != DirectionNone
}

// Update returns the direction to repeat this frame, or DirectionNone.
// The first repeat occurs after repeatDelay, later ones after repeatInterval.
func (d *DirectionalInput) Update() Direction {
	now := d.now()
	if !d.IsHeld() {
		d.lastRepeatTime = now
		return DirectionNone
	}

	threshold := d.repeatInterval
	if !d.hasRepeated {
		threshold = d.repeatDelay
	}

	if now.Sub(d.lastRepeatTime) >= threshold {
		d.lastRepeatTime = now
		d.hasRepeated = true
		return d.held
	}
	return DirectionNone
}

func (d *DirectionalInput) Reset() {
	d.held = DirectionNone
	d.hasRepeated = false
	d.lastRepeatTime = d.now()
}

func (d Direction) String() string {
	switch d {
	case DirectionUp:
		return "up"
	case DirectionDown:
		return "down"
	case DirectionPageUp:
		return "page-up"
	case DirectionPageDown:
		return "page-down"
	default:
		return ""
	}
}
