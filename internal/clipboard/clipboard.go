// Package clipboard wraps system clipboard access for prompt delivery.
// Headless environments (no X11/Wayland on Linux, stripped-down containers)
// are reported as [ErrUnavailable] so the CLI can fall back to printing the
// prompt instead of failing the whole command.
package clipboard

import (
	"errors"
	"fmt"

	"github.com/atotto/clipboard"
)

// ErrUnavailable indicates no usable clipboard on this system.
var ErrUnavailable = errors.New("clipboard unavailable")

// Copy places text on the system clipboard.
func Copy(text string) error {
	if clipboard.Unsupported {
		return ErrUnavailable
	}
	if err := clipboard.WriteAll(text); err != nil {
		// xclip/xsel missing or no display server; same fallback either way.
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	return nil
}
