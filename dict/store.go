package dict

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
)

// Result reports what a mutating operation did. The original dialog swallowed
// empty input silently; the explicit codes keep that behavior observable.
type Result int

const (
	// Saved means the dictionary changed and was flushed to disk.
	Saved Result = iota
	// AlreadyPresent means the value already existed under the key; nothing
	// was appended but the file was still flushed.
	AlreadyPresent
	// NoChange means the operation found nothing to do and skipped the flush.
	NoChange
	RejectedEmptyKey
	RejectedEmptyValue
)

func (r Result) String() string {
	switch r {
	case Saved:
		return "saved"
	case AlreadyPresent:
		return "already present"
	case NoChange:
		return "no change"
	case RejectedEmptyKey:
		return "empty key"
	case RejectedEmptyValue:
		return "empty value"
	}
	return "unknown"
}

// Row is one line of the flattened dictionary view. Position is 1-based and
// local to the row's key.
type Row struct {
	Position int
	Key      string
	Value    string
}

type editSession struct {
	key   string
	value string
}

// Store owns the in-memory dictionary, the backing file, and at most one
// edit session. It is driven from a single foreground command sequence and
// does no locking.
type Store struct {
	path string
	data *Dictionary
	edit *editSession
}

// Open loads the dictionary at path. A missing or unparsable file starts the
// store empty; Open itself never fails.
func Open(path string) *Store {
	s := &Store{path: path, data: NewDictionary()}
	s.Load()
	return s
}

// Load reads the backing file and replaces the in-memory dictionary with a
// key-folded copy of it. Read or parse failures are logged and treated as an
// empty file.
func (s *Store) Load() {
	loaded := NewDictionary()
	content, err := os.ReadFile(s.path)
	switch {
	case os.IsNotExist(err):
		// first run
	case err != nil:
		slog.Warn("reading dictionary file", "path", s.path, "err", err)
	case len(content) > 0:
		if err := json.Unmarshal(content, loaded); err != nil {
			slog.Warn("parsing dictionary file, starting empty", "path", s.path, "err", err)
			loaded = NewDictionary()
		}
	}
	s.data = foldKeys(loaded)
	s.edit = nil
}

// foldKeys lowercases every key. When two raw keys collide after folding,
// their sequences merge in first-seen order with duplicate values dropped.
func foldKeys(raw *Dictionary) *Dictionary {
	folded := NewDictionary()
	for _, key := range raw.order {
		lower := strings.ToLower(key)
		_, collision := folded.entries[lower]
		for _, value := range raw.entries[key] {
			if collision && folded.contains(lower, value) {
				continue
			}
			folded.append(lower, value)
		}
	}
	return folded
}

// Save overwrites the backing file with the full dictionary as indented JSON.
func (s *Store) Save() error {
	b, err := json.MarshalIndent(s.data, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding dictionary: %w", err)
	}
	if dir := filepath.Dir(s.path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("creating dictionary directory: %w", err)
		}
	}
	if err := os.WriteFile(s.path, b, 0644); err != nil {
		return fmt.Errorf("writing dictionary file: %w", err)
	}
	return nil
}

// AddOrUpdate commits the input fields. With an edit session active it first
// removes the session's old pair, so the commit may move a value to another
// key. A value already present under the key is not duplicated but the file
// is still flushed.
func (s *Store) AddOrUpdate(key, value string) (Result, error) {
	key = NormalizeKey(strings.TrimSpace(key))
	if key == "" {
		return RejectedEmptyKey, nil
	}
	value = NormalizeValue(value)
	if value == "" {
		return RejectedEmptyValue, nil
	}

	if s.edit != nil {
		s.data.removeValue(s.edit.key, s.edit.value)
		s.edit = nil
	}

	if s.data.contains(key, value) {
		return AlreadyPresent, s.Save()
	}
	s.data.append(key, value)
	return Saved, s.Save()
}

// BeginEdit records the pair being edited; the caller pre-fills the input
// fields with it. The pair is removed on the next AddOrUpdate.
func (s *Store) BeginEdit(key, value string) {
	s.edit = &editSession{key: key, value: value}
}

// CancelEdit drops the active edit session without touching the dictionary.
func (s *Store) CancelEdit() {
	s.edit = nil
}

func (s *Store) Editing() bool {
	return s.edit != nil
}

// Delete removes the first occurrence of value under key, dropping the key
// once its sequence is empty.
func (s *Store) Delete(key, value string) (Result, error) {
	if !s.data.removeValue(key, value) {
		return NoChange, nil
	}
	return Saved, s.Save()
}

// MoveUp swaps the entry at the 1-based position with the one above it.
// Position 1 and unknown positions are no-ops.
func (s *Store) MoveUp(key string, position int) (Result, error) {
	words := s.data.entries[key]
	if position <= 1 || position > len(words) {
		return NoChange, nil
	}
	words[position-2], words[position-1] = words[position-1], words[position-2]
	return Saved, s.Save()
}

// MoveDown swaps the entry at the 1-based position with the one below it.
// The last position and unknown positions are no-ops.
func (s *Store) MoveDown(key string, position int) (Result, error) {
	words := s.data.entries[key]
	if position < 1 || position >= len(words) {
		return NoChange, nil
	}
	words[position-1], words[position] = words[position], words[position-1]
	return Saved, s.Save()
}

// ListRows flattens the dictionary into redraw-ready rows: every key in
// dictionary order, every value in priority order, positions counted per key.
func (s *Store) ListRows() []Row {
	rows := make([]Row, 0, len(s.data.order))
	for _, key := range s.data.order {
		for i, value := range s.data.entries[key] {
			rows = append(rows, Row{Position: i + 1, Key: key, Value: value})
		}
	}
	return rows
}

func (s *Store) Keys() []string {
	return s.data.Keys()
}

func (s *Store) Entries(key string) []string {
	return s.data.Entries(key)
}

func (s *Store) Path() string {
	return s.path
}
