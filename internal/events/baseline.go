package events

import (
	"ctfwatch/internal/models"
	"ctfwatch/internal/providers"
	"ctfwatch/internal/storage"
	"ctfwatch/internal/structures"
)

// BaselineStore persists the last-seen event batch. An unreadable baseline
// (first run, corrupted file) degrades to an empty one so a delta batch is
// never aborted by storage problems.
type BaselineStore struct {
	snapshots *storage.SnapshotStore
	path      string
	logger    providers.Logger
}

func NewBaselineStore(conf *structures.Config, snapshots *storage.SnapshotStore, logger providers.Logger) *BaselineStore {
	return &BaselineStore{
		snapshots: snapshots,
		path:      conf.Baseline.FilePath,
		logger:    logger,
	}
}

func (b *BaselineStore) Load() []models.NormalizedEvent {
	var baseline []models.NormalizedEvent
	found, err := b.snapshots.Load(b.path, &baseline)
	if err != nil {
		b.logger.Warnf(providers.TypeApp, "Baseline unreadable, treating as empty: %s", err)
		return nil
	}
	if !found {
		return nil
	}
	return baseline
}

func (b *BaselineStore) Replace(evs []models.NormalizedEvent) error {
	return b.snapshots.Save(b.path, evs)
}
