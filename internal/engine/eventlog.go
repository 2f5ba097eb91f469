package engine

import (
	"fmt"
	"sort"
	"strings"
)

// LogEntry is one recorded engine event.
type LogEntry struct {
	Seq      int
	Level    int
	Category string // level, stroke
	Key      string // event name within the category
	Value    string
}

// String formats the entry as a fixed-width log line.
//
//	[#007] L01 stroke   rejected     color_mismatch red
func (e LogEntry) String() string {
	return fmt.Sprintf("[#%03d] L%02d %-8s %-12s %s", e.Seq, e.Level, e.Category, e.Key, e.Value)
}

func (e LogEntry) matches(category, key string) bool {
	return (category == "" || e.Category == category) && (key == "" || e.Key == key)
}

// EventLog collects structured engine events in sequence order. A log made
// with NewCappedEventLog keeps only the most recent entries; sequence numbers
// keep counting across dropped ones.
type EventLog struct {
	entries []LogEntry
	seq     int
	limit   int // 0 = unbounded
}

// NewEventLog creates an unbounded log, suited to tests and short runs.
func NewEventLog() *EventLog {
	return &EventLog{}
}

// NewCappedEventLog creates a log that holds at most limit entries.
func NewCappedEventLog(limit int) *EventLog {
	return &EventLog{limit: max(limit, 1)}
}

// Add records a new entry, dropping the oldest one if the log is full.
func (el *EventLog) Add(level int, category, key, value string) {
	el.seq++
	el.entries = append(el.entries, LogEntry{
		Seq:      el.seq,
		Level:    level,
		Category: category,
		Key:      key,
		Value:    value,
	})
	if el.limit > 0 && len(el.entries) > el.limit {
		el.entries = el.entries[len(el.entries)-el.limit:]
	}
}

// Entries returns the retained entries, oldest first.
func (el *EventLog) Entries() []LogEntry {
	return el.entries
}

// Since returns the retained entries recorded after seq.
func (el *EventLog) Since(seq int) []LogEntry {
	i := sort.Search(len(el.entries), func(i int) bool { return el.entries[i].Seq > seq })
	if i == len(el.entries) {
		return nil
	}
	return el.entries[i:]
}

// Filter selects entries by category and key; an empty argument matches
// anything.
func (el *EventLog) Filter(category, key string) []LogEntry {
	var out []LogEntry
	for _, e := range el.entries {
		if e.matches(category, key) {
			out = append(out, e)
		}
	}
	return out
}

// Count is len(Filter(category, key)).
func (el *EventLog) Count(category, key string) int {
	n := 0
	for _, e := range el.entries {
		if e.matches(category, key) {
			n++
		}
	}
	return n
}

// LastOf returns the newest entry for category and key.
func (el *EventLog) LastOf(category, key string) (LogEntry, bool) {
	for i := len(el.entries) - 1; i >= 0; i-- {
		if el.entries[i].matches(category, key) {
			return el.entries[i], true
		}
	}
	return LogEntry{}, false
}

// HasEntry reports whether some entry for category and key has a value
// containing substr.
func (el *EventLog) HasEntry(category, key, substr string) bool {
	for _, e := range el.Filter(category, key) {
		if strings.Contains(e.Value, substr) {
			return true
		}
	}
	return false
}

// Format renders every retained entry, one per line.
func (el *EventLog) Format() string {
	lines := make([]string, 0, len(el.entries))
	for _, e := range el.entries {
		lines = append(lines, e.String())
	}
	if len(lines) == 0 {
		return ""
	}
	return strings.Join(lines, "\n") + "\n"
}
