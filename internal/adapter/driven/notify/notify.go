// Package notify implements the Notifier port with desktop notifications.
package notify

import (
	"fmt"

	"github.com/gen2brain/beeep"

	"github.com/dessaya/mergebot/internal/domain/port/driven"
)

// Compile-time interface satisfaction checks.
var (
	_ driven.Notifier = (*Desktop)(nil)
	_ driven.Notifier = (*Nop)(nil)
)

// Desktop sends native desktop notifications via beeep (notify-send on
// Linux, the Notification Center on macOS, toasts on Windows).
type Desktop struct{}

// NewDesktop creates a Desktop notifier.
func NewDesktop() *Desktop {
	beeep.AppName = "Mergebot"
	return &Desktop{}
}

// Notify shows a desktop notification.
func (d *Desktop) Notify(title, message string) error {
	if err := beeep.Notify(title, message, ""); err != nil {
		return fmt.Errorf("desktop notification: %w", err)
	}
	return nil
}

// Nop discards all notifications. Used for --no-notify and in tests.
type Nop struct{}

// NewNop creates a Nop notifier.
func NewNop() *Nop {
	return &Nop{}
}

// Notify does nothing.
func (n *Nop) Notify(_, _ string) error {
	return nil
}
