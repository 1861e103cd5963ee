package tray

import (
	"github.com/getlantern/systray"
)

// Backend is the native tray surface.
// This abstraction allows us to drive the presenter without a desktop session in tests.
type Backend interface {
	// Run blocks on the UI loop; it must be called from the main goroutine
	Run(onReady, onExit func())
	Quit()
	SetIcon(data []byte)
	SetTooltip(text string)
	AddItem(title, tooltip string) Item
	AddSeparator()
}

// Item is one menu entry
type Item interface {
	SetTitle(title string)
	Enable()
	Disable()
	// Clicked delivers one value per click
	Clicked() <-chan struct{}
}

// SystrayBackend is the real implementation using getlantern/systray
type SystrayBackend struct{}

// NewSystrayBackend returns the process-wide systray surface
func NewSystrayBackend() *SystrayBackend {
	return &SystrayBackend{}
}

func (SystrayBackend) Run(onReady, onExit func()) {
	systray.Run(onReady, onExit)
}

func (SystrayBackend) Quit() {
	systray.Quit()
}

func (SystrayBackend) SetIcon(data []byte) {
	systray.SetIcon(data)
}

func (SystrayBackend) SetTooltip(text string) {
	systray.SetTooltip(text)
}

func (SystrayBackend) AddItem(title, tooltip string) Item {
	return systrayItem{systray.AddMenuItem(title, tooltip)}
}

func (SystrayBackend) AddSeparator() {
	systray.AddSeparator()
}

type systrayItem struct {
	item *systray.MenuItem
}

func (i systrayItem) SetTitle(title string) {
	i.item.SetTitle(title)
}

func (i systrayItem) Enable() {
	i.item.Enable()
}

func (i systrayItem) Disable() {
	i.item.Disable()
}

func (i systrayItem) Clicked() <-chan struct{} {
	return i.item.ClickedCh
}
