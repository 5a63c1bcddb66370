package engine

import "time"

// TrayEntry is one activated tile waiting in the tray for its pair.
// A matched-out entry keeps occupying its slot until the clear delay
// elapses, but no longer participates in pair counting.
type TrayEntry struct {
	TrayID     int // unique per insertion, distinct from the tile id
	TileID     TileID
	Symbol     SymbolID
	InsertedAt time.Duration // virtual clock time of insertion
	MatchedOut bool
}

// Tray is the bounded holding area for activated tiles.
type Tray struct {
	limit   int
	nextID  int
	entries []TrayEntry
}

// NewTray creates an empty tray with the given capacity.
func NewTray(limit int) *Tray {
	return &Tray{limit: limit}
}

// Len returns how many slots are occupied, matched-out entries included.
func (t *Tray) Len() int {
	return len(t.entries)
}

// Limit returns the tray capacity.
func (t *Tray) Limit() int {
	return t.limit
}

// Full reports whether another insertion would exceed the capacity.
func (t *Tray) Full() bool {
	return len(t.entries) >= t.limit
}

// Insert appends a new entry. Returns false without mutating when the tray
// is already full; the session turns that rejection into a loss.
func (t *Tray) Insert(tile TileID, symbol SymbolID, at time.Duration) (TrayEntry, bool) {
	if t.Full() {
		return TrayEntry{}, false
	}
	t.nextID++
	e := TrayEntry{TrayID: t.nextID, TileID: tile, Symbol: symbol, InsertedAt: at}
	t.entries = append(t.entries, e)
	return e, true
}

// ResolvePair finds the first symbol (in tray order) held by two or more
// pending entries and marks exactly its first two entries matched-out.
// Only one pair resolves per call; further duplicates wait for the next
// call, which follows the next insertion.
func (t *Tray) ResolvePair() (pair [2]int, ok bool) {
	counts := make(map[SymbolID]int)
	for i := range t.entries {
		if t.entries[i].MatchedOut {
			continue
		}
		counts[t.entries[i].Symbol]++
	}

	for i := range t.entries {
		e := &t.entries[i]
		if e.MatchedOut || counts[e.Symbol] < 2 {
			continue
		}
		first := e.TrayID
		for j := i + 1; j < len(t.entries); j++ {
			o := &t.entries[j]
			if o.MatchedOut || o.Symbol != e.Symbol {
				continue
			}
			e.MatchedOut = true
			o.MatchedOut = true
			return [2]int{first, o.TrayID}, true
		}
	}
	return pair, false
}

// Drop removes the entries with the given tray ids, freeing their slots.
func (t *Tray) Drop(trayIDs [2]int) {
	kept := t.entries[:0]
	for _, e := range t.entries {
		if e.TrayID == trayIDs[0] || e.TrayID == trayIDs[1] {
			continue
		}
		kept = append(kept, e)
	}
	t.entries = kept
}

// Entries returns a copy of the tray contents in insertion order.
func (t *Tray) Entries() []TrayEntry {
	out := make([]TrayEntry, len(t.entries))
	copy(out, t.entries)
	return out
}

// clone deep-copies the tray for history snapshots.
func (t *Tray) clone() *Tray {
	c := &Tray{limit: t.limit, nextID: t.nextID, entries: make([]TrayEntry, len(t.entries))}
	copy(c.entries, t.entries)
	return c
}
