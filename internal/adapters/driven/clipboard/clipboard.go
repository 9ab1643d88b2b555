// Package clipboard adapts the system clipboard behind the driven port.
package clipboard

import (
	"github.com/atotto/clipboard"

	"github.com/fincal-labs/fincal-cli/internal/core/ports/driven"
)

// Ensure Writer implements the interface.
var _ driven.Clipboard = (*Writer)(nil)

// Writer writes text to the system clipboard.
type Writer struct{}

// New creates a clipboard writer.
func New() *Writer {
	return &Writer{}
}

// Write places text on the system clipboard. Fails on headless systems or
// when no clipboard utility is available; callers surface the failure and
// fall back to logging the payload.
func (w *Writer) Write(text string) error {
	return clipboard.WriteAll(text)
}
