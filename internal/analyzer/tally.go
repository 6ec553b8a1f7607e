package analyzer

import "sort"

// Entry is a key/count pair produced by an aggregation pass.
type Entry struct {
	Key   string
	Count int
}

// PassStats summarizes the bookkeeping of one aggregation pass, for the run
// metrics.
type PassStats struct {
	Lines   int // lines consumed by the pass
	Matched int // lines that contributed to the tally (endpoint/suspicious passes)
	Skipped int // lines dropped for lacking an identifier token
}

// tally counts occurrences of keys while remembering the order in which keys
// first appeared, so that ranking ties break deterministically.
type tally struct {
	counts map[string]int
	order  []string // keys in first-seen order
}

func newTally() *tally {
	return &tally{counts: make(map[string]int)}
}

func (t *tally) add(key string) {
	if _, seen := t.counts[key]; !seen {
		t.order = append(t.order, key)
	}
	t.counts[key]++
}

// ranked returns all entries sorted by descending count. Equal counts keep
// first-seen order.
func (t *tally) ranked() []Entry {
	entries := make([]Entry, 0, len(t.order))
	for _, key := range t.order {
		entries = append(entries, Entry{Key: key, Count: t.counts[key]})
	}
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Count > entries[j].Count
	})
	return entries
}

// top returns the highest-count entry, or ok=false when the tally is empty.
// On a tie the key seen earliest wins.
func (t *tally) top() (Entry, bool) {
	if len(t.order) == 0 {
		return Entry{}, false
	}
	best := Entry{Key: t.order[0], Count: t.counts[t.order[0]]}
	for _, key := range t.order[1:] {
		if c := t.counts[key]; c > best.Count {
			best = Entry{Key: key, Count: c}
		}
	}
	return best, true
}
