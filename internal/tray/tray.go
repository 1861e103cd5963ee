// Package tray renders the player state on the system tray.
package tray

import (
	"fmt"
	"sync"

	"github.com/genricoloni/traympd/internal/domain"
	"go.uber.org/zap"
)

// IconSource provides the encoded tray icons
type IconSource interface {
	Get(id domain.IconID) ([]byte, bool)
	Size() int
}

// Notifier shows desktop notifications
type Notifier interface {
	Show(title, body string)
}

// PreferencesFile is the file opened by the Preferences menu entry
type PreferencesFile interface {
	Path() string
	EnsureExists() error
}

// Tray implements domain.Presenter on top of a Backend.
// Rendering calls made before Build are ignored.
type Tray struct {
	logger   *zap.Logger
	backend  Backend
	icons    IconSource
	notifier Notifier
	prefs    PreferencesFile
	openFile func(path string) error

	mu        sync.Mutex
	built     bool
	iconData  map[domain.IconID][]byte
	items     map[domain.MenuItemID]Item
	primary   func()
	handlers  map[domain.MenuItemID]func()
	done      chan struct{}
	closeOnce sync.Once
}

// Verify Tray implements domain.Presenter at compile time.
var _ domain.Presenter = (*Tray)(nil)

// NewTray creates the presenter
func NewTray(logger *zap.Logger, backend Backend, icons IconSource, notifier Notifier, prefs PreferencesFile) *Tray {
	return &Tray{
		logger:   logger,
		backend:  backend,
		icons:    icons,
		notifier: notifier,
		prefs:    prefs,
		openFile: openFile,
		items:    make(map[domain.MenuItemID]Item),
		handlers: make(map[domain.MenuItemID]func()),
		done:     make(chan struct{}),
	}
}

// Run blocks on the tray loop. onReady runs once the tray can be built.
func (t *Tray) Run(onReady, onExit func()) {
	t.backend.Run(onReady, onExit)
}

// Quit ends the tray loop
func (t *Tray) Quit() {
	t.backend.Quit()
}

// Build creates the menu and shows the Disconnected look.
// It must run inside the tray loop's ready callback.
func (t *Tray) Build() error {
	iconData := make(map[domain.IconID][]byte, len(domain.AllIcons()))
	for _, id := range domain.AllIcons() {
		png, ok := t.icons.Get(id)
		if !ok {
			return &domain.InitializationError{Component: "tray", Err: fmt.Errorf("missing icon %q", id)}
		}
		data, err := platformIcon(png, t.icons.Size())
		if err != nil {
			return &domain.InitializationError{Component: "tray", Err: err}
		}
		iconData[id] = data
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	if t.built {
		return nil
	}
	t.iconData = iconData

	t.backend.SetIcon(iconData[domain.IconDisconnected])
	t.backend.SetTooltip(domain.TooltipDisconnected)

	for _, entry := range domain.Menu() {
		if entry.Separator {
			t.backend.AddSeparator()
		}
		item := t.backend.AddItem(entry.Label, entry.Tooltip)
		if entry.Enabled != nil && !entry.Enabled(domain.StateUnset) {
			item.Disable()
		}
		t.items[entry.ID] = item
		go t.listen(entry.ID, item.Clicked())
	}

	t.built = true
	t.logger.Info("System tray is ready", zap.Int("items", len(t.items)))
	return nil
}

// Stop ends the click listeners
func (t *Tray) Stop() {
	t.closeOnce.Do(func() { close(t.done) })
}

// SetIcon shows the icon and retitles the primary action to match
func (t *Tray) SetIcon(id domain.IconID) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if !t.built {
		return
	}
	data, ok := t.iconData[id]
	if !ok {
		t.logger.Warn("Unknown tray icon", zap.String("icon", string(id)))
		return
	}
	t.backend.SetIcon(data)
	if toggle, ok := t.items[domain.MenuToggle]; ok {
		toggle.SetTitle(primaryLabel(id))
	}
}

// SetTooltip sets the hover text of the tray icon
func (t *Tray) SetTooltip(text string) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if !t.built {
		return
	}
	t.backend.SetTooltip(text)
}

// SetMenuItemEnabled enables or greys out a menu entry
func (t *Tray) SetMenuItemEnabled(id domain.MenuItemID, enabled bool) {
	t.mu.Lock()
	defer t.mu.Unlock()

	item, ok := t.items[id]
	if !ok {
		return
	}
	if enabled {
		item.Enable()
	} else {
		item.Disable()
	}
}

// Notify shows a desktop notification
func (t *Tray) Notify(title, body string) {
	t.notifier.Show(title, body)
}

// OnPrimaryAction registers the callback of the toggle entry
func (t *Tray) OnPrimaryAction(callback func()) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.primary = callback
}

// OnMenuCommand registers the callback of a menu entry
func (t *Tray) OnMenuCommand(id domain.MenuItemID, callback func()) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.handlers[id] = callback
}

func (t *Tray) listen(id domain.MenuItemID, clicks <-chan struct{}) {
	for {
		select {
		case <-t.done:
			return
		case _, ok := <-clicks:
			if !ok {
				return
			}
			t.dispatch(id)
		}
	}
}

// dispatch runs the handler of a clicked entry
func (t *Tray) dispatch(id domain.MenuItemID) {
	t.logger.Debug("Menu item clicked", zap.String("item", string(id)))

	switch id {
	case domain.MenuQuit:
		t.logger.Info("Quit item clicked, shutting down")
		t.backend.Quit()
		return
	case domain.MenuPreferences:
		go t.openPreferences()
		return
	}

	t.mu.Lock()
	callback := t.handlers[id]
	if id == domain.MenuToggle {
		callback = t.primary
	}
	t.mu.Unlock()

	if callback == nil {
		t.logger.Debug("No handler for menu item", zap.String("item", string(id)))
		return
	}
	callback()
}

// openPreferences opens the preferences file, creating it with defaults first
func (t *Tray) openPreferences() {
	if err := t.prefs.EnsureExists(); err != nil {
		t.logger.Error("Failed to create preferences file", zap.Error(err))
		return
	}
	if err := t.openFile(t.prefs.Path()); err != nil {
		t.logger.Error("Failed to open preferences file", zap.Error(err))
	}
}

// primaryLabel names the primary action shown next to icon
func primaryLabel(icon domain.IconID) string {
	switch icon {
	case domain.IconPause:
		return "Pause"
	case domain.IconPlay:
		return "Play"
	default:
		return "Reconnect"
	}
}
