package internal

import (
	"fmt"

	"github.com/BrandonKowalski/labelkit/pkg/labelkit/constants"
	lk "github.com/BrandonKowalski/labelkit/pkg/labelkit/internal"
	evdev "github.com/holoplot/go-evdev"
	"go.uber.org/atomic"
)

// HardwareKeyConfig names an evdev device, such as a jog wheel or a foot
// switch, whose keys drive the picker alongside SDL input.
type HardwareKeyConfig struct {
	DevicePath string
}

// HardwareKeys reads an evdev device on its own goroutine and delivers
// mapped button presses on Events.
type HardwareKeys struct {
	device  *evdev.InputDevice
	events  chan Event
	running atomic.Bool
}

var hardwareKeyMap = map[evdev.EvCode]constants.VirtualButton{
	evdev.KEY_UP:       constants.VirtualButtonUp,
	evdev.KEY_DOWN:     constants.VirtualButtonDown,
	evdev.KEY_PAGEUP:   constants.VirtualButtonL1,
	evdev.KEY_PAGEDOWN: constants.VirtualButtonR1,
	evdev.KEY_ENTER:    constants.VirtualButtonA,
	evdev.KEY_ESC:      constants.VirtualButtonB,
}

// OpenHardwareKeys opens the device and starts reading from it.
func OpenHardwareKeys(cfg HardwareKeyConfig) (*HardwareKeys, error) {
	dev, err := evdev.Open(cfg.DevicePath)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", cfg.DevicePath, err)
	}

	name, _ := dev.Name()
	lk.GetInternalLogger().Info("Hardware keys attached", "device", cfg.DevicePath, "name", name)

	hk := &HardwareKeys{
		device: dev,
		events: make(chan Event, 16),
	}
	hk.running.Store(true)
	go hk.read()
	return hk, nil
}

// Events delivers presses; it is closed when the reader stops.
func (hk *HardwareKeys) Events() <-chan Event {
	return hk.events
}

func (hk *HardwareKeys) read() {
	defer close(hk.events)

	for hk.running.Load() {
		ev, err := hk.device.ReadOne()
		if err != nil {
			if hk.running.Load() {
				lk.GetInternalLogger().Error("Hardware key read failed", "error", err)
			}
			return
		}

		out, ok := TranslateHardwareEvent(ev)
		if !ok {
			continue
		}

		select {
		case hk.events <- out:
		default:
			lk.GetInternalLogger().Debug("Dropping hardware key event", "button", out.Button.GetName())
		}
	}
}

// TranslateHardwareEvent maps key presses and releases, and turns each
// wheel detent into an Up or Down press.
func TranslateHardwareEvent(ev *evdev.InputEvent) (Event, bool) {
	switch ev.Type {
	case evdev.EV_KEY:
		button, ok := hardwareKeyMap[ev.Code]
		if !ok {
			return Event{}, false
		}
		// value 2 is autorepeat
		return Event{Button: button, Pressed: ev.Value != 0, Repeat: ev.Value == 2}, true
	case evdev.EV_REL:
		if ev.Code != evdev.REL_WHEEL || ev.Value == 0 {
			return Event{}, false
		}
		if ev.Value > 0 {
			return Event{Button: constants.VirtualButtonUp, Pressed: true}, true
		}
		return Event{Button: constants.VirtualButtonDown, Pressed: true}, true
	}
	return Event{}, false
}

// Close stops the reader and releases the device.
func (hk *HardwareKeys) Close() {
	if !hk.running.CompareAndSwap(true, false) {
		return
	}
	if err := hk.device.Close(); err != nil {
		lk.GetInternalLogger().Warn("Closing hardware key device", "error", err)
	}
}
