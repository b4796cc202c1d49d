package watch

import (
	"testing"
	"time"

	"ctfwatch/internal/models"
	"ctfwatch/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func watchEvent(id int, title string) models.NormalizedEvent {
	return models.NormalizedEvent{
		ExternalID: id,
		Title:      title,
		Start:      time.Date(2024, 6, 10, 9, 0, 0, 0, time.UTC),
		Finish:     time.Date(2024, 6, 11, 9, 0, 0, 0, time.UTC),
	}
}

func TestWatchList_AddThenDuplicate(t *testing.T) {
	wl := NewWatchList(&testutil.MockMetrics{})

	assert.Equal(t, models.Added, wl.Add(watchEvent(1, "Alpha")))
	assert.Equal(t, models.AlreadyPresent, wl.Add(watchEvent(1, "Alpha")))
	assert.Equal(t, 1, wl.Len())
}

func TestWatchList_RemoveExisting(t *testing.T) {
	wl := NewWatchList(&testutil.MockMetrics{})
	wl.Add(watchEvent(1, "Alpha"))

	entry, found := wl.Remove(1)

	assert.True(t, found)
	assert.Equal(t, "Alpha", entry.Title)
	assert.Equal(t, 0, wl.Len())
}

func TestWatchList_RemoveAbsent(t *testing.T) {
	wl := NewWatchList(&testutil.MockMetrics{})

	_, found := wl.Remove(99)

	assert.False(t, found)
}

func TestWatchList_ListInsertionOrder(t *testing.T) {
	wl := NewWatchList(&testutil.MockMetrics{})
	wl.Add(watchEvent(3, "Third"))
	wl.Add(watchEvent(1, "First"))
	wl.Add(watchEvent(2, "Second"))

	entries := wl.List()

	require.Len(t, entries, 3)
	assert.Equal(t, "Third", entries[0].Title)
	assert.Equal(t, "First", entries[1].Title)
	assert.Equal(t, "Second", entries[2].Title)
}

func TestWatchList_ListIsSnapshot(t *testing.T) {
	wl := NewWatchList(&testutil.MockMetrics{})
	wl.Add(watchEvent(1, "Alpha"))

	entries := wl.List()
	wl.Remove(1)

	require.Len(t, entries, 1)
	assert.Equal(t, 1, entries[0].ExternalID)
}

func TestWatchList_PutReplacesAndDedups(t *testing.T) {
	metrics := &testutil.MockMetrics{}
	wl := NewWatchList(metrics)
	wl.Add(watchEvent(9, "Old"))

	wl.Put([]models.WatchEntry{
		{ExternalID: 1, Title: "Alpha"},
		{ExternalID: 2, Title: "Beta"},
		{ExternalID: 1, Title: "Alpha again"},
	})

	entries := wl.List()
	require.Len(t, entries, 2)
	assert.Equal(t, "Alpha", entries[0].Title)
	assert.Equal(t, "Beta", entries[1].Title)
	assert.Equal(t, 2, metrics.WatchlistSize)
}

func TestWatchList_MetricsTrackSize(t *testing.T) {
	metrics := &testutil.MockMetrics{}
	wl := NewWatchList(metrics)

	wl.Add(watchEvent(1, "Alpha"))
	assert.Equal(t, 1, metrics.WatchlistSize)

	wl.Add(watchEvent(2, "Beta"))
	assert.Equal(t, 2, metrics.WatchlistSize)

	wl.Remove(1)
	assert.Equal(t, 1, metrics.WatchlistSize)
}
