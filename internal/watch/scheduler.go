package watch

import (
	"ctfwatch/internal/models"
	"ctfwatch/internal/providers"
	"ctfwatch/internal/storage"
	"ctfwatch/internal/structures"
	"ctfwatch/internal/watch/interfaces"
	"sync"
	"time"

	"github.com/roylee0704/gron"
)

// Scheduler owns the recurring sweep trigger and the watch-list snapshot
// file. Sweeps never overlap: each tick runs to completion under opsMu.
type Scheduler struct {
	config    *structures.Config
	logger    providers.Logger
	list      *WatchList
	sweeper   *Sweeper
	snapshots *storage.SnapshotStore
	cron      *gron.Cron
	opsMu     sync.Mutex
}

func (s *Scheduler) Init() {
	s.cron = gron.New()

	s.cron.AddFunc(gron.Every(s.config.Watch.SweepInterval), func() {
		s.opsMu.Lock()
		defer s.opsMu.Unlock()

		s.sweeper.SweepOnce(time.Now())

		err := s.snapshots.Save(s.config.Watch.FilePath, s.list.List())
		if err != nil {
			s.logger.Errorf(providers.TypeSweep, "Error while persisting watch list: %s", err)
		}
	})

	s.cron.Start()
}

func (s *Scheduler) Stop() {
	if s.cron != nil {
		s.cron.Stop()
	}
}

func (s *Scheduler) Restore() error {
	var entries []models.WatchEntry
	found, err := s.snapshots.Load(s.config.Watch.FilePath, &entries)
	if err != nil {
		return err
	}
	if !found {
		return nil
	}
	s.list.Put(entries)
	s.logger.Infof(providers.TypeApp, "Restored %d watch list entries", len(entries))
	return nil
}

func (s *Scheduler) Persist() error {
	s.opsMu.Lock()
	defer s.opsMu.Unlock()

	s.logger.Infof(providers.TypeApp, "Persisting watch list to file...")
	err := s.snapshots.Save(s.config.Watch.FilePath, s.list.List())
	if err != nil {
		s.logger.Errorf(providers.TypeApp, "Error while persisting watch list: %s", err)
		return err
	}
	return nil
}

func NewScheduler(config *structures.Config, logger providers.Logger, list *WatchList, sweeper *Sweeper, snapshots *storage.SnapshotStore) interfaces.SchedulerInterface {
	return &Scheduler{
		config:    config,
		logger:    logger,
		list:      list,
		sweeper:   sweeper,
		snapshots: snapshots,
	}
}
