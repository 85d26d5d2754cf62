// Package tray shows computation status in the system tray using
// getlantern/systray.
package tray

import (
	"github.com/getlantern/systray"
)

type menuItem struct {
	title    string
	callback func()
	item     *systray.MenuItem
}

// Tray manages the status icon and its menu while a computation runs.
type Tray struct {
	title   string
	items   []*menuItem
	readyCh chan struct{}
	quitCh  chan struct{}
}

// New creates a tray with the given title
func New(title string) *Tray {
	return &Tray{
		title:   title,
		readyCh: make(chan struct{}),
		quitCh:  make(chan struct{}),
	}
}

// AddMenuItem adds a menu item; its callback runs on click
func (t *Tray) AddMenuItem(title string, callback func()) {
	t.items = append(t.items, &menuItem{title: title, callback: callback})
}

// SetStatus updates the tooltip shown on hover
func (t *Tray) SetStatus(status string) {
	select {
	case <-t.readyCh:
		systray.SetTooltip(status)
	default:
		// Tray not up yet; the initial tooltip is set in setupMenu
	}
}

// Run starts the tray event loop (blocks until Stop)
func (t *Tray) Run() {
	systray.Run(t.setupMenu, func() {
		close(t.quitCh)
	})
}

// setupMenu is called when systray is ready
func (t *Tray) setupMenu() {
	systray.SetTitle(t.title)
	systray.SetTooltip(t.title)
	systray.SetIcon(getIcon())
	close(t.readyCh)

	for _, mi := range t.items {
		mi.item = systray.AddMenuItem(mi.title, "")
		if mi.callback != nil {
			go func(mi *menuItem) {
				for {
					select {
					case <-mi.item.ClickedCh:
						mi.callback()
					case <-t.quitCh:
						return
					}
				}
			}(mi)
		}
	}
}

// Stop stops the tray
func (t *Tray) Stop() {
	systray.Quit()
}

// getIcon returns a placeholder icon (valid 16x16 ICO)
func getIcon() []byte {
	icon := make([]byte, 1118)
	// ICO header
	copy(icon[0:6], []byte{0x00, 0x00, 0x01, 0x00, 0x01, 0x00})
	// Icon directory
	copy(icon[6:22], []byte{
		0x10, 0x10, 0x00, 0x00, 0x01, 0x00, 0x20, 0x00,
		0x48, 0x04, 0x00, 0x00,
		0x16, 0x00, 0x00, 0x00,
	})
	// DIB header
	copy(icon[22:62], []byte{
		0x28, 0x00, 0x00, 0x00,
		0x10, 0x00, 0x00, 0x00,
		0x20, 0x00, 0x00, 0x00,
		0x01, 0x00,
		0x20, 0x00,
		0x00, 0x00, 0x00, 0x00,
		0x00, 0x04, 0x00, 0x00,
		0x00, 0x00, 0x00, 0x00,
		0x00, 0x00, 0x00, 0x00,
		0x00, 0x00, 0x00, 0x00,
		0x00, 0x00, 0x00, 0x00,
	})
	// Pixels and mask stay zero for transparency
	return icon
}
