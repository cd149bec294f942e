package logging

import (
	"strings"
	"sync"
)

// TextBuffer accumulates log lines for display in the GUI console.
// Clearing it never touches the log file.
type TextBuffer struct {
	mu sync.Mutex
	sb strings.Builder
}

// Append adds s to the end of the buffer.
func (b *TextBuffer) Append(s string) {
	b.mu.Lock()
	b.sb.WriteString(s)
	b.mu.Unlock()
}

// String returns the buffer contents.
func (b *TextBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.sb.String()
}

// Len returns the buffer size in bytes.
func (b *TextBuffer) Len() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.sb.Len()
}

// Clear empties the view buffer.
func (b *TextBuffer) Clear() {
	b.mu.Lock()
	b.sb.Reset()
	b.mu.Unlock()
}
