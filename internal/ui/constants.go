package ui

// UI-wide constants to avoid magic numbers/strings scattered across the codebase.

// Icons (emojis/symbols)
const (
	IconSettings   = "⚙"
	IconDragHandle = "☰"
	IconAdd        = "+"
)

// Text fragments
const (
	DashPlaceholder = "—"
	ExportFileName  = "customers.pdf"
	ExportExtension = ".pdf"
)

// Layout sizing (CustomerRow / table)
const (
	RowMinWidth      float32 = 360
	RowMinHeight     float32 = 40
	HandleWidth      float32 = 24
	DeleteButtonSize float32 = 64

	DragOverlayWidth float32 = 280
)

// TouchActivationDistance replaces the pointer activation distance on mobile devices
const TouchActivationDistance float32 = 12

// Dialog sizing
const (
	AddDialogWidth       float32 = 360
	SettingsDialogWidth  float32 = 420
	SettingsDialogHeight float32 = 260
)
