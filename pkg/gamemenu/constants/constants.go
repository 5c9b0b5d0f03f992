// Package constants defines shared constants, types, and configuration values
// used throughout the gamemenu packages.
package constants

import (
	"os"
	"strings"
	"time"
)

// Development is the environment variable value for development mode.
const Development = "DEV"

// Environment variables read by the framework.
const (
	EnvironmentEnvVar  = "ENVIRONMENT"
	WindowWidthEnvVar  = "WINDOW_WIDTH"
	WindowHeightEnvVar = "WINDOW_HEIGHT"
	MappingPathEnvVar  = "INPUT_MAPPING_PATH"
	DebugEnvVar        = "MENU_DEBUG"
)

// IsDevMode returns true if running in development mode (ENVIRONMENT=DEV).
func IsDevMode() bool {
	return os.Getenv(EnvironmentEnvVar) == Development
}

// VirtualButton represents an abstract input button, mapped from physical hardware.
// Keyboards, controllers and raw evdev devices all report in this vocabulary.
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

var buttonNames = map[VirtualButton]string{
	VirtualButtonUnassigned: "Unassigned",
	VirtualButtonUp:         "Up",
	VirtualButtonDown:       "Down",
	VirtualButtonLeft:       "Left",
	VirtualButtonRight:      "Right",
	VirtualButtonA:          "A",
	VirtualButtonB:          "B",
	VirtualButtonX:          "X",
	VirtualButtonY:          "Y",
	VirtualButtonL1:         "L1",
	VirtualButtonR1:         "R1",
	VirtualButtonStart:      "Start",
	VirtualButtonSelect:     "Select",
	VirtualButtonMenu:       "Menu",
}

func (vb VirtualButton) GetName() string {
	if name, ok := buttonNames[vb]; ok {
		return name
	}
	return "Unknown"
}

// ParseVirtualButton resolves a button name as written in mapping files.
// Matching is case-insensitive.
func ParseVirtualButton(name string) (VirtualButton, bool) {
	for vb, n := range buttonNames {
		if vb != VirtualButtonUnassigned && strings.EqualFold(n, name) {
			return vb, true
		}
	}
	return VirtualButtonUnassigned, false
}

// Default layout constants, in viewport units.
const (
	DefaultEntryPadding = 25.0  // Vertical padding above and below each entry
	DefaultEnterShift   = 256.0 // Leftward displacement at full progress while entering
	DefaultExitShift    = 512.0 // Rightward displacement at full progress while exiting
	DefaultTitleTop     = 80.0  // Title baseline distance from the top edge
	DefaultTitleShift   = 100.0 // Upward title displacement at full progress
)

// Default timing constants.
const (
	DefaultTransitionOnTime  = 500 * time.Millisecond
	DefaultTransitionOffTime = 500 * time.Millisecond
	DefaultFadeRate          = 4.0 // Selection fade units per second
	DefaultAxisThreshold     = 16000
)
