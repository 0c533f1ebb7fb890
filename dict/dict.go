package dict

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Dictionary maps a root key to its word entries in output-priority order.
// Key iteration order is first-seen order, kept in a separate slice so the
// on-disk file and the rows the user sees stay stable across edits.
type Dictionary struct {
	entries map[string][]string
	order   []string
}

func NewDictionary() *Dictionary {
	return &Dictionary{
		entries: make(map[string][]string),
		order:   []string{},
	}
}

func (d *Dictionary) Len() int {
	return len(d.order)
}

func (d *Dictionary) Keys() []string {
	keys := make([]string, len(d.order))
	copy(keys, d.order)
	return keys
}

// Entries returns a copy of the word sequence under key, nil if absent.
func (d *Dictionary) Entries(key string) []string {
	words, ok := d.entries[key]
	if !ok {
		return nil
	}
	out := make([]string, len(words))
	copy(out, words)
	return out
}

func (d *Dictionary) contains(key, value string) bool {
	for _, w := range d.entries[key] {
		if w == value {
			return true
		}
	}
	return false
}

func (d *Dictionary) append(key, value string) {
	if _, ok := d.entries[key]; !ok {
		d.order = append(d.order, key)
	}
	d.entries[key] = append(d.entries[key], value)
}

// removeValue deletes the first occurrence of value under key and drops the
// key entirely once its sequence is empty. Reports whether anything changed.
func (d *Dictionary) removeValue(key, value string) bool {
	words, ok := d.entries[key]
	if !ok {
		return false
	}
	for i, w := range words {
		if w == value {
			d.entries[key] = append(words[:i], words[i+1:]...)
			if len(d.entries[key]) == 0 {
				d.removeKey(key)
			}
			return true
		}
	}
	return false
}

func (d *Dictionary) removeKey(key string) {
	delete(d.entries, key)
	for i, k := range d.order {
		if k == key {
			d.order = append(d.order[:i], d.order[i+1:]...)
			return
		}
	}
}

// MarshalJSON emits one JSON object with keys in dictionary order.
func (d *Dictionary) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, key := range d.order {
		if i > 0 {
			buf.WriteByte(',')
		}
		k, err := json.Marshal(key)
		if err != nil {
			return nil, err
		}
		buf.Write(k)
		buf.WriteByte(':')
		v, err := json.Marshal(d.entries[key])
		if err != nil {
			return nil, err
		}
		buf.Write(v)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalJSON reads the object with a token decoder so file order survives.
// A bare string value is accepted as a one-element sequence for dictionaries
// written by older releases.
func (d *Dictionary) UnmarshalJSON(data []byte) error {
	d.entries = make(map[string][]string)
	d.order = []string{}

	dec := json.NewDecoder(bytes.NewReader(data))
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return fmt.Errorf("expected JSON object, got %v", tok)
	}
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return err
		}
		key := tok.(string)

		var raw json.RawMessage
		if err := dec.Decode(&raw); err != nil {
			return err
		}
		var words []string
		if err := json.Unmarshal(raw, &words); err != nil {
			var single string
			if err := json.Unmarshal(raw, &single); err != nil {
				return fmt.Errorf("key %q: value is neither array nor string", key)
			}
			words = []string{single}
		}
		if _, ok := d.entries[key]; !ok {
			d.order = append(d.order, key)
		}
		d.entries[key] = append(d.entries[key], words...)
	}
	return nil
}
