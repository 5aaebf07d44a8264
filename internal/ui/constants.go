package ui

import "time"

// UI-wide constants to avoid magic numbers/strings scattered across the codebase.

// Icons (emojis/symbols)
const (
	IconSettings = "⚙"
	IconClear    = "×"
	IconSearch   = "🔍"
	IconCopy     = "📋"
	IconAdd      = "+"
	IconDrag     = "≡"
)

// Layout sizing
const (
	WindowWidth  float32 = 520
	WindowHeight float32 = 420

	SettingsWindowWidth  float32 = 640
	SettingsWindowHeight float32 = 480

	PresetButtonWidth  float32 = 150
	PresetButtonHeight float32 = 36

	PreviewMinHeight float32 = 90
	EditorMinHeight  float32 = 160
	ListMinWidth     float32 = 200

	ReorderRowHeight float32 = 28
	ReorderRowInset  float32 = 8
)

// Toast notification sizing and behavior
const (
	ToastWidth    float32 = 260
	ToastHeight   float32 = 70
	ToastMargin   float32 = 12
	ToastAutoHide         = 2 * time.Second
)

// Text fragments
const (
	TitleFormat = "%s v%s"
)
