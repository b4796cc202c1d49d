package events

import (
	"ctfwatch/internal/models"
	"ctfwatch/internal/structures"
	"strings"

	json "github.com/goccy/go-json"
)

// Normalizer turns raw source records into canonical events and applies the
// configured inclusion filters. It is a pure transform; malformed records are
// skipped, never fatal for the batch.
type Normalizer struct {
	restrictions []string
	allowed      map[string]struct{}
	drop         map[string]struct{}
}

func NewNormalizer(conf *structures.Config) *Normalizer {
	n := &Normalizer{
		restrictions: conf.Filter.Restrictions,
		allowed:      make(map[string]struct{}, len(conf.Filter.Restrictions)),
		drop:         make(map[string]struct{}, len(conf.Filter.DropFields)),
	}
	for _, r := range conf.Filter.Restrictions {
		n.allowed[r] = struct{}{}
	}
	for _, f := range conf.Filter.DropFields {
		n.drop[f] = struct{}{}
	}
	return n
}

// Normalize converts a raw batch in input order. The second return value is
// the number of records skipped because they had no organizer entry.
func (n *Normalizer) Normalize(raws []models.RawEvent) ([]models.NormalizedEvent, int) {
	out := make([]models.NormalizedEvent, 0, len(raws))
	malformed := 0

	for _, raw := range raws {
		if len(raw.Organizers) == 0 || raw.Organizers[0].Name == "" {
			malformed++
			continue
		}
		if raw.OnSite {
			continue
		}
		if _, ok := n.allowed[raw.Restrictions]; !ok {
			continue
		}

		flags := make(map[string]bool, len(n.restrictions))
		for _, r := range n.restrictions {
			flags[strings.ToLower(r)] = raw.Restrictions == r
		}

		out = append(out, models.NormalizedEvent{
			ExternalID:       raw.ID,
			Title:            raw.Title,
			Start:            raw.Start.UTC(),
			Finish:           raw.Finish.UTC(),
			DurationHours:    raw.Duration.Hours + raw.Duration.Days*24,
			OrganizerName:    raw.Organizers[0].Name,
			Restriction:      raw.Restrictions,
			RestrictionFlags: flags,
			Description:      raw.Description,
			URL:              raw.URL,
		})
	}

	return out, malformed
}

// Project renders events as field maps with the configured drop fields
// removed. Cosmetic only: identity and filtering never depend on it.
func (n *Normalizer) Project(evs []models.NormalizedEvent) ([]map[string]any, error) {
	out := make([]map[string]any, 0, len(evs))
	for _, ev := range evs {
		raw, err := json.Marshal(ev)
		if err != nil {
			return nil, err
		}
		var fields map[string]any
		if err := json.Unmarshal(raw, &fields); err != nil {
			return nil, err
		}
		for f := range n.drop {
			delete(fields, f)
		}
		out = append(out, fields)
	}
	return out, nil
}
