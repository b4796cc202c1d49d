package models

import "time"

// RawEvent mirrors one record of the CTFtime /api/v1/events/ response.
type RawEvent struct {
	ID            int            `json:"id"`
	CTFID         int            `json:"ctf_id"`
	Title         string         `json:"title"`
	Start         time.Time      `json:"start"`
	Finish        time.Time      `json:"finish"`
	Duration      EventDuration  `json:"duration"`
	Organizers    []RawOrganizer `json:"organizers"`
	OnSite        bool           `json:"onsite"`
	Restrictions  string         `json:"restrictions"`
	Description   string         `json:"description"`
	URL           string         `json:"url"`
	CTFTimeURL    string         `json:"ctftime_url"`
	Format        string         `json:"format"`
	FormatID      int            `json:"format_id"`
	Weight        float64        `json:"weight"`
	Logo          string         `json:"logo"`
	LiveFeed      string         `json:"live_feed"`
	Location      string         `json:"location"`
	Participants  int            `json:"participants"`
	PublicVotable bool           `json:"public_votable"`
	IsVotableNow  bool           `json:"is_votable_now"`
}

type EventDuration struct {
	Hours int `json:"hours"`
	Days  int `json:"days"`
}

type RawOrganizer struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// NormalizedEvent is the canonical event form. Identity is ExternalID;
// instances are treated as immutable after construction.
type NormalizedEvent struct {
	ExternalID       int             `json:"external_id"`
	Title            string          `json:"title"`
	Start            time.Time       `json:"start"`
	Finish           time.Time       `json:"finish"`
	DurationHours    int             `json:"duration_hours"`
	OrganizerName    string          `json:"organizer_name"`
	Restriction      string          `json:"restriction"`
	RestrictionFlags map[string]bool `json:"restriction_flags"`
	Description      string          `json:"description"`
	URL              string          `json:"url"`
}

// WatchEntry is a snapshot of a NormalizedEvent taken when the user opted in.
type WatchEntry struct {
	ExternalID    int       `json:"external_id"`
	Title         string    `json:"title"`
	Start         time.Time `json:"start"`
	Finish        time.Time `json:"finish"`
	OrganizerName string    `json:"organizer_name"`
	URL           string    `json:"url"`
}

func NewWatchEntry(ev NormalizedEvent) WatchEntry {
	return WatchEntry{
		ExternalID:    ev.ExternalID,
		Title:         ev.Title,
		Start:         ev.Start,
		Finish:        ev.Finish,
		OrganizerName: ev.OrganizerName,
		URL:           ev.URL,
	}
}

type AddResult int

const (
	Added AddResult = iota
	AlreadyPresent
)
