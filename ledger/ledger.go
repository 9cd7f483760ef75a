// Package ledger keeps the persisted top-N high score list.
//
// Records are kept sorted by score descending; equal scores keep insertion order, so an
// earlier record outranks a later one with the same score. Persistence is best effort:
// a failing store never loses the in-memory ranking for the current process.
package ledger

import (
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/lixenwraith/apple-ten/constants"
)

// Clock supplies record timestamps
type Clock interface {
	Now() time.Time
}

// Entry is one persisted ranking record
// Time is kept as the stored string so legacy or foreign timestamp formats survive a round trip
type Entry struct {
	Name  string `json:"name"`
	Score int    `json:"score"`
	Time  string `json:"time"`
}

// Timestamp parses the record time, zero when unparseable
func (e Entry) Timestamp() time.Time {
	for _, layout := range []string{time.RFC3339Nano, time.RFC3339, "2006-01-02 15:04:05"} {
		if ts, err := time.Parse(layout, e.Time); err == nil {
			return ts
		}
	}
	return time.Time{}
}

// Ledger is the bounded, sorted ranking backed by a Store
type Ledger struct {
	store    Store
	clock    Clock
	key      string
	capacity int
	entries  []Entry
}

// Open creates a ledger and loads any persisted records
// A load failure leaves an empty, usable ledger and is returned for logging
func Open(store Store, clock Clock) (*Ledger, error) {
	l := &Ledger{
		store:    store,
		clock:    clock,
		key:      constants.RankingKey,
		capacity: constants.LedgerCapacity,
	}
	return l, l.Load()
}

// Load replaces the in-memory ranking with the stored one
func (l *Ledger) Load() error {
	l.entries = nil

	data, err := l.store.Get(l.key)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil
		}
		return fmt.Errorf("%w: load %s: %v", ErrStorageUnavailable, l.key, err)
	}

	var entries []Entry
	if err := json.Unmarshal(data, &entries); err != nil {
		return fmt.Errorf("%w: decode %s: %v", ErrStorageUnavailable, l.key, err)
	}
	for i := range entries {
		entries[i].Name = SanitizeName(entries[i].Name)
	}
	l.entries = entries
	l.normalize()
	return nil
}

// Record adds a score under the given name, keeps the top entries and persists them
// The returned entry is the one recorded; a non-nil error only reports a persistence failure
func (l *Ledger) Record(name string, score int) (Entry, error) {
	e := Entry{
		Name:  SanitizeName(name),
		Score: score,
		Time:  l.clock.Now().UTC().Format(time.RFC3339),
	}
	l.entries = append(l.entries, e)
	l.normalize()
	return e, l.save()
}

// TopN returns up to n entries in ranking order
func (l *Ledger) TopN(n int) []Entry {
	if n <= 0 || len(l.entries) == 0 {
		return []Entry{}
	}
	n = min(n, len(l.entries))
	out := make([]Entry, n)
	copy(out, l.entries[:n])
	return out
}

// Len returns the number of stored records
func (l *Ledger) Len() int { return len(l.entries) }

// Rank returns the 1-based position a new score would take, or 0 if it would not be kept
func (l *Ledger) Rank(score int) int {
	pos := 1
	for _, e := range l.entries {
		if e.Score >= score {
			pos++
		}
	}
	if pos > l.capacity {
		return 0
	}
	return pos
}

func (l *Ledger) normalize() {
	sort.SliceStable(l.entries, func(i, j int) bool {
		return l.entries[i].Score > l.entries[j].Score
	})
	if len(l.entries) > l.capacity {
		l.entries = l.entries[:l.capacity]
	}
}

func (l *Ledger) save() error {
	data, err := json.MarshalIndent(l.entries, "", "  ")
	if err != nil {
		return fmt.Errorf("%w: encode: %v", ErrStorageUnavailable, err)
	}
	if err := l.store.Set(l.key, data); err != nil {
		return fmt.Errorf("%w: save %s: %v", ErrStorageUnavailable, l.key, err)
	}
	return nil
}

// SanitizeName trims whitespace, substitutes the default name when empty and caps the length
func SanitizeName(name string) string {
	name = strings.TrimSpace(name)
	if name == "" {
		return constants.DefaultPlayerName
	}
	if utf8.RuneCountInString(name) > constants.MaxNameLength {
		name = string([]rune(name)[:constants.MaxNameLength])
	}
	return name
}
