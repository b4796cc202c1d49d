package watch

import (
	"ctfwatch/internal/notify"
	"ctfwatch/internal/providers"
	"fmt"
	"time"
)

// Notification kinds emitted by a sweep.
const (
	KindStarted  = "started"
	KindSoon     = "soon"
	KindTomorrow = "tomorrow"
)

// Sweeper holds the per-tick reminder logic, separated from the timer so
// tests can drive it with a fixed clock.
type Sweeper struct {
	list     *WatchList
	notifier notify.Notifier
	logger   providers.Logger
	metrics  providers.MetricsProviderInterface
}

func NewSweeper(list *WatchList, notifier notify.Notifier, logger providers.Logger, metrics providers.MetricsProviderInterface) *Sweeper {
	return &Sweeper{
		list:     list,
		notifier: notifier,
		logger:   logger,
		metrics:  metrics,
	}
}

// SweepOnce walks a snapshot of the watch list and classifies every entry by
// whole days until its start date. Entries whose start date has passed are
// removed; entries exactly 5, 3 or 1 days out produce a reminder. Each run
// covers one tick, so under a 24h trigger every threshold fires at most once.
func (s *Sweeper) SweepOnce(now time.Time) {
	begin := time.Now()
	today := dateOf(now)

	entries := s.list.List()
	if len(entries) == 0 {
		s.logger.Infof(providers.TypeSweep, "No events on the watch list")
		return
	}

	s.logger.Infof(providers.TypeSweep, "Sweeping %d watched events at %s", len(entries), today.Format("2006-01-02"))

	for _, entry := range entries {
		startDate := dateOf(entry.Start)

		if today.After(startDate) {
			s.list.Remove(entry.ExternalID)
			s.emit(KindStarted, fmt.Sprintf("CTF '%s' removed from the watch list: it has already started.", entry.Title))
			continue
		}

		switch daysUntil(today, startDate) {
		case 5, 3:
			s.emit(KindSoon, fmt.Sprintf("CTF '%s' starts in a few days! Remember to register the team.", entry.Title))
		case 1:
			s.emit(KindTomorrow, fmt.Sprintf("CTF '%s' starts tomorrow! Remember to register the team.", entry.Title))
		}
	}

	s.metrics.ObserveSweepDuration(time.Since(begin))
}

func (s *Sweeper) emit(kind, text string) {
	s.logger.Infof(providers.TypeSweep, "Notify [%s]: %s", kind, text)
	s.metrics.IncNotifications(kind)
	s.notifier.Notify(text)
}

// dateOf truncates a timestamp to its UTC calendar date.
func dateOf(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func daysUntil(today, start time.Time) int {
	return int(start.Sub(today).Hours() / 24)
}
