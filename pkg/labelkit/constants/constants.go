// Package constants defines shared constants, types, and configuration values
// used throughout the labelkit front-ends.
package constants

import (
	"os"
	"time"
)

// Development is the environment variable value for development mode.
const Development = "DEV"

// Environment variables read by the front-ends.
const (
	EnvironmentEnvVar    = "ENVIRONMENT"       // "DEV" enables windowed development mode
	WindowWidthEnvVar    = "WINDOW_WIDTH"      // window width in development mode
	WindowHeightEnvVar   = "WINDOW_HEIGHT"     // window height in development mode
	BackgroundPathEnvVar = "BACKGROUND_PATH"   // custom background image path
	HardwareKeysEnvVar   = "LABELKIT_HW_KEYS"  // evdev device for jog wheel / foot switch input
	DebugEnvVar          = "LABELKIT_DEBUG"    // any value enables widget debug logging
	LanguageEnvVar       = "LABELKIT_LANGUAGE" // overrides LANG for fixed labels
)

// IsDevMode returns true if running in development mode (ENVIRONMENT=DEV).
func IsDevMode() bool {
	return os.Getenv(EnvironmentEnvVar) == Development
}

// VirtualButton represents an abstract input button, mapped from physical hardware.
type VirtualButton int

const (
	VirtualButtonUnassigned VirtualButton = iota
	VirtualButtonUp
	VirtualButtonDown
	VirtualButtonLeft
	VirtualButtonRight
	VirtualButtonA
	VirtualButtonB
	VirtualButtonX
	VirtualButtonY
	VirtualButtonL1
	VirtualButtonR1
	VirtualButtonStart
	VirtualButtonSelect
	VirtualButtonMenu
)

func (vb VirtualButton) GetName() string {
	switch vb {
	case VirtualButtonUnassigned:
		return "Unassigned"
	case VirtualButtonUp:
		return "Up"
	case VirtualButtonDown:
		return "Down"
	case VirtualButtonLeft:
		return "Left"
	case VirtualButtonRight:
		return "Right"
	case VirtualButtonA:
		return "A"
	case VirtualButtonB:
		return "B"
	case VirtualButtonX:
		return "X"
	case VirtualButtonY:
		return "Y"
	case VirtualButtonL1:
		return "L1"
	case VirtualButtonR1:
		return "R1"
	case VirtualButtonStart:
		return "Start"
	case VirtualButtonSelect:
		return "Select"
	case VirtualButtonMenu:
		return "Menu"
	default:
		return "Unknown"
	}
}

// Default timing and spacing constants.
const (
	DefaultInputDelay           = 20 * time.Millisecond // Debounce delay between input events
	DefaultRepeatDelay          = 300 * time.Millisecond
	DefaultRepeatInterval       = 50 * time.Millisecond
	DefaultTitleSpacing   int32 = 5  // Vertical spacing below title text
	DefaultRowHeight      int32 = 48 // Height of a picker row before scaling
	DefaultSwatchSize     int32 = 32 // Edge of a picker swatch before scaling
)
