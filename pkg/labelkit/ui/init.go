// Package ui hosts a LabelComboBox in a full-screen SDL picker, driven by
// keyboard, game controller or an evdev device such as a jog wheel.
package ui

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/BrandonKowalski/labelkit/pkg/labelkit"
	"github.com/BrandonKowalski/labelkit/pkg/labelkit/constants"
	lk "github.com/BrandonKowalski/labelkit/pkg/labelkit/internal"
	"github.com/BrandonKowalski/labelkit/pkg/labelkit/ui/internal"
)

// Options configures the SDL front-end.
type Options struct {
	WindowTitle          string                 // Window title displayed in windowed mode
	ShowBackground       bool                   // Whether to render the background image
	WindowOptions        internal.WindowOptions // SDL window flags (borderless, resizable, etc.)
	FontPath             string                 // TrueType font used for all text
	PrimaryThemeColorHex uint32                 // Custom accent color, 0 keeps the default
	HardwareKeysDevice   string                 // evdev device path; LABELKIT_HW_KEYS when empty
	Language             string                 // BCP 47 tag for fixed labels; taken from the environment when empty
	LogPath              string                 // Full path for log file including filename (creates parent directories)
}

// Init initializes the SDL subsystems, theming, and input handling.
// Must be called before LabelPicker.
func Init(options Options) error {
	if options.LogPath != "" {
		lk.SetLogPath(options.LogPath)
	}

	if os.Getenv(constants.DebugEnvVar) != "" {
		lk.SetInternalLogLevel(slog.LevelDebug)
	} else {
		lk.SetInternalLogLevel(slog.LevelError)
	}

	language := options.Language
	if language == "" {
		language = os.Getenv(constants.LanguageEnvVar)
	}
	if language == "" {
		language = lk.LanguageFromEnv()
	}
	if language != "" {
		if err := lk.SetLanguage(language); err != nil {
			lk.GetInternalLogger().Warn("Ignoring language", "language", language, "error", err)
		}
	}

	theme := internal.DefaultTheme(options.FontPath)
	if options.PrimaryThemeColorHex != 0 {
		theme.AccentColor = internal.HexToColor(options.PrimaryThemeColorHex)
	}
	internal.SetTheme(theme)

	hwc := internal.HardwareKeyConfig{DevicePath: options.HardwareKeysDevice}
	if hwc.DevicePath == "" {
		hwc.DevicePath = os.Getenv(constants.HardwareKeysEnvVar)
	}

	if err := internal.Init(options.WindowTitle, options.ShowBackground, options.WindowOptions, hwc); err != nil {
		internal.SDLCleanup()
		return labelkit.NewInfrastructureError("init", fmt.Errorf("sdl: %w", err))
	}
	return nil
}

// Close releases all SDL resources and shuts down the front-end.
// Must be called before program exit to prevent resource leaks.
func Close() {
	internal.SDLCleanup()
}

// GetWindow returns the underlying SDL window wrapper for advanced use cases.
func GetWindow() *internal.Window {
	return internal.GetWindow()
}
