package services

import (
	"context"

	"ctfwatch/internal/ctftime"
	"ctfwatch/internal/events"
	"ctfwatch/internal/models"
	"ctfwatch/internal/providers"
)

// detailWindowDays is the lookup horizon used when resolving a single event
// by id; the source caps a single page at 100 days.
const detailWindowDays = 100

type EventServiceInterface interface {
	Upcoming(ctx context.Context, days int) ([]models.NormalizedEvent, error)
	NewEvents(ctx context.Context, days int) (events.Delta, error)
	Details(ctx context.Context, externalID int) (models.NormalizedEvent, bool, error)
	Project(evs []models.NormalizedEvent) ([]map[string]any, error)
	TopTeams(ctx context.Context, year int) ([]models.TopTeam, error)
	Team(ctx context.Context, teamID string) (*models.Team, error)
}

type EventService struct {
	client     ctftime.ClientInterface
	normalizer *events.Normalizer
	baseline   *events.BaselineStore
	logger     providers.Logger
	metrics    providers.MetricsProviderInterface
}

func NewEventService(client ctftime.ClientInterface, normalizer *events.Normalizer, baseline *events.BaselineStore, logger providers.Logger, metrics providers.MetricsProviderInterface) EventServiceInterface {
	return &EventService{
		client:     client,
		normalizer: normalizer,
		baseline:   baseline,
		logger:     logger,
		metrics:    metrics,
	}
}

// Upcoming fetches and normalizes the next `days` days of events.
func (es *EventService) Upcoming(ctx context.Context, days int) ([]models.NormalizedEvent, error) {
	raws, err := es.client.FetchEvents(ctx, days)
	if err != nil {
		return nil, err
	}
	es.metrics.AddEventsFetched(len(raws))

	batch, malformed := es.normalizer.Normalize(raws)
	if malformed > 0 {
		es.logger.Warnf(providers.TypeSource, "Skipped %d malformed records (no organizer)", malformed)
	}
	es.logger.Infof(providers.TypeApp, "After cleaning, %d interesting events remain", len(batch))
	return batch, nil
}

// NewEvents compares the current batch against the persisted baseline and
// replaces the baseline with the batch. An empty delta is a normal outcome.
func (es *EventService) NewEvents(ctx context.Context, days int) (events.Delta, error) {
	batch, err := es.Upcoming(ctx, days)
	if err != nil {
		return events.Delta{}, err
	}

	delta := events.ComputeDelta(batch, es.baseline.Load())
	es.metrics.AddNewEvents(len(delta.New))

	if err := es.baseline.Replace(delta.Updated); err != nil {
		// The delta itself is still valid; the next run will just re-flag.
		es.logger.Errorf(providers.TypeApp, "Failed to persist baseline: %s", err)
	}
	es.metrics.SetBaselineSize(len(delta.Updated))

	return delta, nil
}

func (es *EventService) Details(ctx context.Context, externalID int) (models.NormalizedEvent, bool, error) {
	batch, err := es.Upcoming(ctx, detailWindowDays)
	if err != nil {
		return models.NormalizedEvent{}, false, err
	}
	for _, ev := range batch {
		if ev.ExternalID == externalID {
			return ev, true, nil
		}
	}
	return models.NormalizedEvent{}, false, nil
}

func (es *EventService) Project(evs []models.NormalizedEvent) ([]map[string]any, error) {
	return es.normalizer.Project(evs)
}

func (es *EventService) TopTeams(ctx context.Context, year int) ([]models.TopTeam, error) {
	return es.client.FetchTopTeams(ctx, year)
}

func (es *EventService) Team(ctx context.Context, teamID string) (*models.Team, error) {
	return es.client.FetchTeam(ctx, teamID)
}
