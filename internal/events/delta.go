package events

import (
	"ctfwatch/internal/models"

	"github.com/RoaringBitmap/roaring/v2"
)

// Delta is the outcome of one baseline comparison. Updated is always the
// current batch verbatim: the newest batch replaces the baseline wholesale,
// since the source only ever lists future events.
type Delta struct {
	New     []models.NormalizedEvent
	Updated []models.NormalizedEvent
}

// HasNew reports whether the comparison found events absent from the
// baseline. An empty delta is a normal result, not an error.
func (d Delta) HasNew() bool {
	return len(d.New) > 0
}

// ComputeDelta returns the events of batch whose external id is not present
// in the baseline, preserving batch order.
func ComputeDelta(batch, baseline []models.NormalizedEvent) Delta {
	seen := roaring.New()
	for _, ev := range baseline {
		seen.Add(uint32(ev.ExternalID))
	}

	d := Delta{Updated: batch}
	for _, ev := range batch {
		if !seen.Contains(uint32(ev.ExternalID)) {
			d.New = append(d.New, ev)
		}
	}
	return d
}
