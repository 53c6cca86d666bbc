// Package notifier provides a process-lifetime log of human-readable event
// messages. The log is advisory: it is not persisted and is lost on restart.
//
// The log is an injected component owned by the composition root, not a
// package-level global, so isolated instances can run side by side in tests.
package notifier

import "sync"

// defaultRecent is the number of messages returned when the caller does not
// care about the window size.
const defaultRecent = 10

// Log is an append-only, mutex-guarded list of event messages.
// It is safe for concurrent use. The zero value is not usable; create
// instances with NewLog.
type Log struct {
	mu       sync.Mutex
	messages []string
}

// NewLog creates an empty notification log.
func NewLog() *Log {
	return &Log{
		messages: make([]string, 0),
	}
}

// Append adds a message to the end of the log.
// Messages are never deduplicated or reordered.
func (l *Log) Append(message string) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.messages = append(l.messages, message)
}

// Recent returns the last n messages in insertion order: the oldest message of
// the window first, the most recent last. If fewer than n messages exist, all
// of them are returned. A non-positive n yields an empty slice.
func (l *Log) Recent(n int) []string {
	l.mu.Lock()
	defer l.mu.Unlock()

	if n <= 0 {
		return []string{}
	}
	start := len(l.messages) - n
	if start < 0 {
		start = 0
	}

	window := make([]string, len(l.messages)-start)
	copy(window, l.messages[start:])
	return window
}

// RecentDefault returns the last messages using the default window size of 10.
func (l *Log) RecentDefault() []string {
	return l.Recent(defaultRecent)
}
