package watcher

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/tgdata/tgdfile"
)

// Event represents a file size change.
type Event struct {
	// Size is the new file size.
	Size int64
	// Truncated is true if the file was truncated (size decreased).
	Truncated bool
}

// Watcher watches a file for size changes using polling.
type Watcher interface {
	// Watch opens the file and sends events on the returned channel.
	// The channel is closed when the context is cancelled.
	// Returns an error if the file cannot be opened or sized initially.
	Watch(ctx context.Context) (<-chan Event, error)
}

// Config holds watcher configuration.
type Config struct {
	// Path is the file to watch.
	Path string
	// PollInterval is how often to check for changes.
	PollInterval time.Duration
}

// pollingWatcher implements Watcher by polling the size of a held
// descriptor, so the watch stays attached to the file even if the name
// is renamed away or removed.
type pollingWatcher struct {
	config Config
}

// NewWatcher creates a new polling-based size watcher.
func NewWatcher(config Config) Watcher {
	return &pollingWatcher{config: config}
}

// Watch opens the file and sends events on the returned channel.
func (w *pollingWatcher) Watch(ctx context.Context) (<-chan Event, error) {
	h, err := tgdfile.Open(w.config.Path, os.O_RDONLY)
	if err != nil {
		return nil, fmt.Errorf("accessing %s: %w", w.config.Path, err)
	}

	lastSize, err := h.Size()
	if err != nil {
		h.Close()
		return nil, fmt.Errorf("sizing %s: %w", w.config.Path, err)
	}

	events := make(chan Event)

	go func() {
		defer close(events)
		defer h.Close()

		ticker := time.NewTicker(w.config.PollInterval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				currentSize, err := h.Size()
				if err != nil {
					// I/O errors are usually transient; keep polling
					continue
				}

				if currentSize == lastSize {
					continue
				}

				evt := Event{Size: currentSize}
				if currentSize < lastSize {
					evt.Truncated = true
				}

				select {
				case events <- evt:
					lastSize = currentSize
				case <-ctx.Done():
					return
				}
			}
		}
	}()

	return events, nil
}
