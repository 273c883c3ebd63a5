package logbuffer

import (
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// DefaultCapacity matches what the admin log view expects to page through.
const DefaultCapacity = 100

type Entry struct {
	ID        string                 `json:"id"`
	Type      string                 `json:"type"`
	Message   string                 `json:"message"`
	Details   map[string]interface{} `json:"details"`
	Timestamp string                 `json:"timestamp"`
	Time      string                 `json:"time"`
}

// Buffer is a bounded, newest-first ring of diagnostic log entries served by
// the /api/logs endpoint. It is diagnostic only: entries are lost on restart
// and eviction is silent.
type Buffer struct {
	mu       sync.Mutex
	capacity int
	entries  []Entry
}

func New(capacity int) *Buffer {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	return &Buffer{capacity: capacity}
}

// Add prepends an entry, evicting the oldest once the buffer is full.
func (b *Buffer) Add(entryType, message string, details map[string]interface{}) {
	now := time.Now()
	entry := Entry{
		ID:        uuid.New().String(),
		Type:      entryType,
		Message:   message,
		Details:   details,
		Timestamp: now.UTC().Format(time.RFC3339),
		Time:      now.Format("15:04:05"),
	}

	b.mu.Lock()
	defer b.mu.Unlock()
	b.entries = append([]Entry{entry}, b.entries...)
	if len(b.entries) > b.capacity {
		b.entries = b.entries[:b.capacity]
	}
}

// Snapshot returns a newest-first copy of the buffer.
func (b *Buffer) Snapshot() []Entry {
	b.mu.Lock()
	defer b.mu.Unlock()
	out := make([]Entry, len(b.entries))
	copy(out, b.entries)
	return out
}

// Recent returns at most n of the newest entries.
func (b *Buffer) Recent(n int) []Entry {
	b.mu.Lock()
	defer b.mu.Unlock()
	if n > len(b.entries) {
		n = len(b.entries)
	}
	out := make([]Entry, n)
	copy(out, b.entries[:n])
	return out
}

func (b *Buffer) Len() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.entries)
}

// Hook mirrors logrus entries into a Buffer so the admin log view sees the
// same stream as stdout.
type Hook struct {
	Buffer *Buffer
}

func NewHook(buffer *Buffer) *Hook {
	return &Hook{Buffer: buffer}
}

func (h *Hook) Levels() []logrus.Level {
	return logrus.AllLevels
}

func (h *Hook) Fire(entry *logrus.Entry) error {
	var details map[string]interface{}
	if len(entry.Data) > 0 {
		details = make(map[string]interface{}, len(entry.Data))
		for k, v := range entry.Data {
			details[k] = v
		}
	}
	h.Buffer.Add(entryType(entry.Level), entry.Message, details)
	return nil
}

func entryType(level logrus.Level) string {
	switch level {
	case logrus.WarnLevel:
		return "warning"
	case logrus.ErrorLevel, logrus.FatalLevel, logrus.PanicLevel:
		return "error"
	default:
		return "info"
	}
}
