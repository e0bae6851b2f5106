package internal

import (
	"fmt"

	"github.com/BrandonKowalski/labelkit/pkg/labelkit/constants"
	lk "github.com/BrandonKowalski/labelkit/pkg/labelkit/internal"
	"github.com/veandco/go-sdl2/img"
	"github.com/veandco/go-sdl2/sdl"
	"github.com/veandco/go-sdl2/ttf"
)

var window *Window

// Init brings up SDL, the window, fonts and input. Hardware keys are read
// only when hwc names a device.
func Init(title string, showBackground bool, winOpts WindowOptions, hwc HardwareKeyConfig) error {
	if err := sdl.Init(sdl.INIT_VIDEO | sdl.INIT_GAMECONTROLLER | sdl.INIT_JOYSTICK); err != nil {
		return fmt.Errorf("sdl init: %w", err)
	}

	if err := img.Init(img.INIT_PNG | img.INIT_JPG); err != nil {
		lk.GetInternalLogger().Warn("SDL_image init incomplete", "error", err)
	}

	if err := ttf.Init(); err != nil {
		return fmt.Errorf("ttf init: %w", err)
	}

	InitInputProcessor()

	// Apply default window options if none specified
	if winOpts.IsZero() {
		winOpts = DefaultWindowOptions()
	}

	w, err := initWindow(title, showBackground, winOpts)
	if err != nil {
		return err
	}
	window = w

	if err := initFonts(DefaultFontSizes); err != nil {
		return err
	}

	if hwc.DevicePath != "" && !constants.IsDevMode() {
		window.startHardwareKeys(hwc)
	}

	return nil
}

// SDLCleanup releases everything Init acquired, in reverse order.
func SDLCleanup() {
	if window != nil {
		window.closeWindow()
		window = nil
	}
	CloseAllControllers()
	closeFonts()
	ttf.Quit()
	img.Quit()
	sdl.Quit()
}
