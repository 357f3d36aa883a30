// Package freq counts occurrences of string keys and ranks them.
package freq

import "sort"

// Entry is one row of a frequency table.
type Entry struct {
	Key   string `json:"key"`
	Count int    `json:"count"`
}

// Table is a ranked frequency table: descending by count, ties in the order
// the keys were first seen.
type Table struct {
	entries []Entry
	index   map[string]int
	total   int
}

// Count builds a Table from keys.
func Count(keys []string) Table {
	t := Table{index: make(map[string]int)}
	for _, k := range keys {
		if i, ok := t.index[k]; ok {
			t.entries[i].Count++
			continue
		}
		t.index[k] = len(t.entries)
		t.entries = append(t.entries, Entry{Key: k, Count: 1})
	}
	t.total = len(keys)

	sort.SliceStable(t.entries, func(i, j int) bool {
		return t.entries[i].Count > t.entries[j].Count
	})
	for i, e := range t.entries {
		t.index[e.Key] = i
	}
	return t
}

// Len returns the number of distinct keys.
func (t Table) Len() int { return len(t.entries) }

// Total returns the number of keys counted, duplicates included.
func (t Table) Total() int { return t.total }

// Count returns how often key occurred.
func (t Table) Count(key string) int {
	i, ok := t.index[key]
	if !ok {
		return 0
	}
	return t.entries[i].Count
}

// Top returns the n highest ranked entries. n <= 0 returns all of them.
func (t Table) Top(n int) []Entry {
	if n <= 0 || n > len(t.entries) {
		n = len(t.entries)
	}
	return cloneEntries(t.entries[:n])
}

// Entries returns every row in rank order.
func (t Table) Entries() []Entry {
	return cloneEntries(t.entries)
}

// Map returns the counts keyed by value.
func (t Table) Map() map[string]int {
	m := make(map[string]int, len(t.entries))
	for _, e := range t.entries {
		m[e.Key] = e.Count
	}
	return m
}

func cloneEntries(entries []Entry) []Entry {
	if len(entries) == 0 {
		return nil
	}
	dup := make([]Entry, len(entries))
	copy(dup, entries)
	return dup
}
