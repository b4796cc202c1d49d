package events

import (
	"testing"

	"ctfwatch/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func normalized(ids ...int) []models.NormalizedEvent {
	out := make([]models.NormalizedEvent, 0, len(ids))
	for _, id := range ids {
		out = append(out, models.NormalizedEvent{ExternalID: id})
	}
	return out
}

func TestComputeDelta_EmptyBaseline_AllNew(t *testing.T) {
	batch := normalized(1, 2, 3)

	d := ComputeDelta(batch, nil)

	assert.True(t, d.HasNew())
	assert.Equal(t, batch, d.New)
	assert.Equal(t, batch, d.Updated)
}

func TestComputeDelta_Idempotent(t *testing.T) {
	batch := normalized(1, 2, 3)

	first := ComputeDelta(batch, nil)
	second := ComputeDelta(batch, first.Updated)

	assert.False(t, second.HasNew())
	assert.Empty(t, second.New)
	assert.Equal(t, batch, second.Updated)
}

func TestComputeDelta_PartialOverlap(t *testing.T) {
	baseline := normalized(1, 2)
	batch := normalized(2, 3, 4)

	d := ComputeDelta(batch, baseline)

	require.Len(t, d.New, 2)
	assert.Equal(t, 3, d.New[0].ExternalID)
	assert.Equal(t, 4, d.New[1].ExternalID)
}

func TestComputeDelta_DisappearedEventsDropFromBaseline(t *testing.T) {
	baseline := normalized(1, 2, 3)
	batch := normalized(3)

	d := ComputeDelta(batch, baseline)

	// Wholesale replacement: ids 1 and 2 are forgotten.
	assert.Empty(t, d.New)
	assert.Equal(t, batch, d.Updated)
}

func TestComputeDelta_EmptyBatch(t *testing.T) {
	d := ComputeDelta(nil, normalized(1, 2))

	assert.False(t, d.HasNew())
	assert.Empty(t, d.Updated)
}
