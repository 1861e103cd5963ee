package domain

// MenuItemID identifies a tray menu entry
type MenuItemID string

const (
	MenuToggle      MenuItemID = "toggle"
	MenuPlay        MenuItemID = "play"
	MenuPause       MenuItemID = "pause"
	MenuNext        MenuItemID = "next"
	MenuReconnect   MenuItemID = "reconnect"
	MenuPreferences MenuItemID = "preferences"
	MenuQuit        MenuItemID = "quit"
)

// MenuItem describes one entry of the tray menu
type MenuItem struct {
	ID    MenuItemID
	Label string
	// Tooltip is the hover text shown by platforms that support it
	Tooltip string
	// Enabled is recomputed on every state transition; nil means always enabled
	Enabled func(PlaybackState) bool
	// Separator requests a separator before this item
	Separator bool
}

// Menu returns the tray menu in display order.
func Menu() []MenuItem {
	return []MenuItem{
		{ID: MenuToggle, Label: "Reconnect", Tooltip: "Primary action"},
		{
			ID:        MenuPlay,
			Label:     "Play",
			Tooltip:   "Resume playback",
			Enabled:   func(s PlaybackState) bool { return s == StatePaused },
			Separator: true,
		},
		{
			ID:      MenuPause,
			Label:   "Pause",
			Tooltip: "Pause playback",
			Enabled: func(s PlaybackState) bool { return s == StatePlaying },
		},
		{
			ID:      MenuNext,
			Label:   "Next",
			Tooltip: "Skip to the next song",
			Enabled: func(s PlaybackState) bool { return s == StatePlaying || s == StatePaused },
		},
		{ID: MenuReconnect, Label: "Reconnect", Tooltip: "Reconnect to the server", Separator: true},
		{ID: MenuPreferences, Label: "Preferences...", Tooltip: "Edit the server settings"},
		{ID: MenuQuit, Label: "Quit", Tooltip: "Quit traympd", Separator: true},
	}
}
