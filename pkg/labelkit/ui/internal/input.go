package internal

import (
	"sync"

	"github.com/BrandonKowalski/labelkit/pkg/labelkit/constants"
	lk "github.com/BrandonKowalski/labelkit/pkg/labelkit/internal"
	"github.com/veandco/go-sdl2/sdl"
)

// Event is a button transition after physical-to-virtual mapping.
type Event struct {
	Button  constants.VirtualButton
	Pressed bool
	Repeat  bool
}

// InputProcessor maps keyboard and game controller events to virtual buttons.
type InputProcessor struct {
	keyboard   map[sdl.Keycode]constants.VirtualButton
	controller map[sdl.GameControllerButton]constants.VirtualButton
}

var defaultKeyboardMap = map[sdl.Keycode]constants.VirtualButton{
	sdl.K_UP:        constants.VirtualButtonUp,
	sdl.K_DOWN:      constants.VirtualButtonDown,
	sdl.K_LEFT:      constants.VirtualButtonLeft,
	sdl.K_RIGHT:     constants.VirtualButtonRight,
	sdl.K_RETURN:    constants.VirtualButtonA,
	sdl.K_a:         constants.VirtualButtonA,
	sdl.K_ESCAPE:    constants.VirtualButtonB,
	sdl.K_BACKSPACE: constants.VirtualButtonB,
	sdl.K_b:         constants.VirtualButtonB,
	sdl.K_x:         constants.VirtualButtonX,
	sdl.K_y:         constants.VirtualButtonY,
	sdl.K_PAGEUP:    constants.VirtualButtonL1,
	sdl.K_PAGEDOWN:  constants.VirtualButtonR1,
	sdl.K_SPACE:     constants.VirtualButtonStart,
	sdl.K_TAB:       constants.VirtualButtonSelect,
	sdl.K_m:         constants.VirtualButtonMenu,
}

var defaultControllerMap = map[sdl.GameControllerButton]constants.VirtualButton{
	sdl.CONTROLLER_BUTTON_DPAD_UP:       constants.VirtualButtonUp,
	sdl.CONTROLLER_BUTTON_DPAD_DOWN:     constants.VirtualButtonDown,
	sdl.CONTROLLER_BUTTON_DPAD_LEFT:     constants.VirtualButtonLeft,
	sdl.CONTROLLER_BUTTON_DPAD_RIGHT:    constants.VirtualButtonRight,
	sdl.CONTROLLER_BUTTON_A:             constants.VirtualButtonA,
	sdl.CONTROLLER_BUTTON_B:             constants.VirtualButtonB,
	sdl.CONTROLLER_BUTTON_X:             constants.VirtualButtonX,
	sdl.CONTROLLER_BUTTON_Y:             constants.VirtualButtonY,
	sdl.CONTROLLER_BUTTON_LEFTSHOULDER:  constants.VirtualButtonL1,
	sdl.CONTROLLER_BUTTON_RIGHTSHOULDER: constants.VirtualButtonR1,
	sdl.CONTROLLER_BUTTON_START:         constants.VirtualButtonStart,
	sdl.CONTROLLER_BUTTON_BACK:          constants.VirtualButtonSelect,
	sdl.CONTROLLER_BUTTON_GUIDE:         constants.VirtualButtonMenu,
}

var (
	processor     *InputProcessor
	processorOnce sync.Once
	controllers   []*sdl.GameController
)

// GetInputProcessor returns the shared processor with the default mappings.
func GetInputProcessor() *InputProcessor {
	processorOnce.Do(func() {
		processor = &InputProcessor{
			keyboard:   defaultKeyboardMap,
			controller: defaultControllerMap,
		}
	})
	return processor
}

// InitInputProcessor opens every attached game controller.
func InitInputProcessor() {
	GetInputProcessor()
	for i := 0; i < sdl.NumJoysticks(); i++ {
		if !sdl.IsGameController(i) {
			continue
		}
		if gc := sdl.GameControllerOpen(i); gc != nil {
			controllers = append(controllers, gc)
			lk.GetInternalLogger().Debug("Opened game controller", "index", i, "name", gc.Name())
		}
	}
}

func CloseAllControllers() {
	for _, gc := range controllers {
		gc.Close()
	}
	controllers = nil
}

// ProcessSDLEvent returns nil for events that carry no mapped button.
func (ip *InputProcessor) ProcessSDLEvent(event sdl.Event) *Event {
	switch e := event.(type) {
	case *sdl.KeyboardEvent:
		button, ok := ip.keyboard[e.Keysym.Sym]
		if !ok {
			return nil
		}
		return &Event{Button: button, Pressed: e.State == sdl.PRESSED, Repeat: e.Repeat != 0}
	case *sdl.ControllerButtonEvent:
		button, ok := ip.controller[sdl.GameControllerButton(e.Button)]
		if !ok {
			return nil
		}
		return &Event{Button: button, Pressed: e.State == sdl.PRESSED}
	}
	return nil
}

// MapKey resolves a keycode without an SDL event.
func (ip *InputProcessor) MapKey(key sdl.Keycode) (constants.VirtualButton, bool) {
	b, ok := ip.keyboard[key]
	return b, ok
}
