package watch

import (
	"ctfwatch/internal/models"
	"ctfwatch/internal/providers"
	"sync"
)

// WatchList is the deployment-wide set of events the team intends to play.
// Membership is keyed by external id; at most one entry per id. All methods
// are safe for concurrent use by command handlers and the sweep.
type WatchList struct {
	mu      sync.Mutex
	entries map[int]models.WatchEntry
	order   []int
	metrics providers.MetricsProviderInterface
}

func NewWatchList(metrics providers.MetricsProviderInterface) *WatchList {
	return &WatchList{
		entries: make(map[int]models.WatchEntry),
		metrics: metrics,
	}
}

// Add inserts a snapshot of the event unless its id is already present.
func (w *WatchList) Add(ev models.NormalizedEvent) models.AddResult {
	w.mu.Lock()
	defer w.mu.Unlock()

	if _, ok := w.entries[ev.ExternalID]; ok {
		return models.AlreadyPresent
	}
	w.entries[ev.ExternalID] = models.NewWatchEntry(ev)
	w.order = append(w.order, ev.ExternalID)
	w.metrics.SetWatchlistSize(len(w.entries))
	return models.Added
}

// Remove deletes the entry for the given id and returns it. The second
// return value is false when the id is not on the list.
func (w *WatchList) Remove(externalID int) (models.WatchEntry, bool) {
	w.mu.Lock()
	defer w.mu.Unlock()

	entry, ok := w.entries[externalID]
	if !ok {
		return models.WatchEntry{}, false
	}
	delete(w.entries, externalID)
	for i, id := range w.order {
		if id == externalID {
			w.order = append(w.order[:i], w.order[i+1:]...)
			break
		}
	}
	w.metrics.SetWatchlistSize(len(w.entries))
	return entry, true
}

// List returns a snapshot copy in insertion order. Callers may mutate the
// list while iterating the snapshot.
func (w *WatchList) List() []models.WatchEntry {
	w.mu.Lock()
	defer w.mu.Unlock()

	out := make([]models.WatchEntry, 0, len(w.order))
	for _, id := range w.order {
		out = append(out, w.entries[id])
	}
	return out
}

func (w *WatchList) Len() int {
	w.mu.Lock()
	defer w.mu.Unlock()
	return len(w.entries)
}

// Put replaces the whole list, preserving the given order. Used when
// restoring a persisted snapshot.
func (w *WatchList) Put(entries []models.WatchEntry) {
	w.mu.Lock()
	defer w.mu.Unlock()

	w.entries = make(map[int]models.WatchEntry, len(entries))
	w.order = w.order[:0]
	for _, e := range entries {
		if _, ok := w.entries[e.ExternalID]; ok {
			continue
		}
		w.entries[e.ExternalID] = e
		w.order = append(w.order, e.ExternalID)
	}
	w.metrics.SetWatchlistSize(len(w.entries))
}
