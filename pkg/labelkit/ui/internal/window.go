package internal

import (
	"fmt"
	"os"
	"strconv"

	"github.com/BrandonKowalski/labelkit/pkg/labelkit/constants"
	lk "github.com/BrandonKowalski/labelkit/pkg/labelkit/internal"
	"github.com/veandco/go-sdl2/img"
	"github.com/veandco/go-sdl2/sdl"
)

// Window wraps SDL window and renderer with additional state for the pickers.
type Window struct {
	Window            *sdl.Window
	Renderer          *sdl.Renderer
	Title             string
	Background        *sdl.Texture
	DisplayBackground bool
	HardwareKeys      *HardwareKeys
	hasVSync          bool
	lastPresentTime   uint64
}

func initWindow(title string, displayBackground bool, winOpts WindowOptions) (*Window, error) {
	displayMode, err := sdl.GetCurrentDisplayMode(0)
	if err != nil {
		lk.GetInternalLogger().Error("Failed to get display mode", "error", err)
		displayMode.W, displayMode.H = 1024, 768
	}

	return initWindowWithSize(title, displayMode.W, displayMode.H, displayBackground, winOpts)
}

func envDimension(name string, fallback int32) int32 {
	v := os.Getenv(name)
	if v == "" {
		return fallback
	}
	n, err := strconv.ParseInt(v, 10, 32)
	if err != nil || n <= 0 {
		lk.GetInternalLogger().Warn("Invalid window dimension; using default", "variable", name, "value", v, "error", err)
		return fallback
	}
	return int32(n)
}

func initWindowWithSize(title string, width, height int32, displayBackground bool, winOpts WindowOptions) (*Window, error) {
	x, y := int32(sdl.WINDOWPOS_UNDEFINED), int32(sdl.WINDOWPOS_UNDEFINED)

	if constants.IsDevMode() {
		winOpts.Borderless = false
		x, y = 50, 50
		width = envDimension(constants.WindowWidthEnvVar, 1024)
		height = envDimension(constants.WindowHeightEnvVar, 768)
	}

	lk.GetInternalLogger().Debug("Initializing SDL Window", "width", width, "height", height)

	sdlWindow, err := sdl.CreateWindow(title, x, y, width, height, winOpts.ToSDLFlags())
	if err != nil {
		return nil, fmt.Errorf("create window: %w", err)
	}

	renderer, err := sdl.CreateRenderer(sdlWindow, -1, sdl.RENDERER_ACCELERATED|sdl.RENDERER_PRESENTVSYNC)
	if err != nil {
		lk.GetInternalLogger().Warn("Accelerated renderer unavailable, falling back to software", "error", err)
		renderer, err = sdl.CreateRenderer(sdlWindow, -1, sdl.RENDERER_SOFTWARE)
		if err != nil {
			sdlWindow.Destroy()
			return nil, fmt.Errorf("create renderer: %w", err)
		}
	}

	renderer.SetLogicalSize(width, height)
	renderer.SetDrawBlendMode(sdl.BLENDMODE_BLEND)

	info, err := renderer.GetInfo()
	vsync := err == nil && info.Flags&sdl.RENDERER_PRESENTVSYNC != 0

	win := &Window{
		Window:            sdlWindow,
		Renderer:          renderer,
		Title:             title,
		DisplayBackground: displayBackground,
		hasVSync:          vsync,
	}

	if displayBackground {
		win.loadBackground()
	}

	return win, nil
}

func (window *Window) startHardwareKeys(hwc HardwareKeyConfig) {
	keys, err := OpenHardwareKeys(hwc)
	if err != nil {
		lk.GetInternalLogger().Error("Hardware keys unavailable", "device", hwc.DevicePath, "error", err)
		return
	}
	window.HardwareKeys = keys
}

func (window *Window) loadBackground() {
	path := os.Getenv(constants.BackgroundPathEnvVar)
	if path == "" {
		path = GetTheme().BackgroundImagePath
	}
	if path == "" {
		return
	}

	bgTexture, err := img.LoadTexture(window.Renderer, path)
	if err != nil {
		lk.GetInternalLogger().Warn("Failed to load background", "path", path, "error", err)
		return
	}
	window.Background = bgTexture
}

func (window *Window) closeWindow() {
	if window.HardwareKeys != nil {
		window.HardwareKeys.Close()
	}

	if window.Background != nil {
		window.Background.Destroy()
	}
	window.Renderer.Destroy()
	window.Window.Destroy()
}

func GetWindow() *Window {
	return window
}

func (window *Window) GetWidth() int32 {
	w, _, err := window.Renderer.GetOutputSize()
	if err != nil {
		w, _ = window.Window.GetSize()
	}
	return w
}

func (window *Window) GetHeight() int32 {
	_, h, err := window.Renderer.GetOutputSize()
	if err != nil {
		_, h = window.Window.GetSize()
	}
	return h
}

// Clear paints the background image, or the theme background color.
func (window *Window) Clear() {
	if window.Background != nil {
		window.Renderer.Copy(window.Background, nil, &sdl.Rect{X: 0, Y: 0, W: window.GetWidth(), H: window.GetHeight()})
		return
	}

	bg := GetTheme().BackgroundColor
	window.Renderer.SetDrawColor(bg.R, bg.G, bg.B, 255)
	window.Renderer.Clear()
}

// Present swaps the render buffer and enforces ~60fps frame timing
// when VSync is not available. Use this instead of renderer.Present().
func (w *Window) Present() {
	w.Renderer.Present()
	if !w.hasVSync {
		now := sdl.GetTicks64()
		if elapsed := now - w.lastPresentTime; elapsed < 16 {
			sdl.Delay(uint32(16 - elapsed))
		}
		w.lastPresentTime = sdl.GetTicks64()
	}
}
