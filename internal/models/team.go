package models

import "github.com/spf13/cast"

// Team mirrors the CTFtime /api/v1/teams/{id}/ response. Rating is keyed by
// year as the API returns it (string keys); absent years have no entry.
type Team struct {
	ID           int                   `json:"id"`
	Name         string                `json:"name"`
	PrimaryAlias string                `json:"primary_alias"`
	Country      string                `json:"country"`
	Academic     bool                  `json:"academic"`
	Aliases      []string              `json:"aliases"`
	Logo         string                `json:"logo"`
	Rating       map[string]YearRating `json:"rating"`
}

type YearRating struct {
	RatingPlace     int     `json:"rating_place"`
	RatingPoints    float64 `json:"rating_points"`
	OrganizerPoints float64 `json:"organizer_points"`
	CountryPlace    int     `json:"country_place"`
}

// RankForYear returns the team's rating place for the given year, or false
// when the team has no rating entry for that year.
func (t *Team) RankForYear(year int) (int, bool) {
	r, ok := t.Rating[cast.ToString(year)]
	if !ok {
		return 0, false
	}
	return r.RatingPlace, true
}

// TopTeam is one row of the /api/v1/top/ leaderboard.
type TopTeam struct {
	TeamID   int     `json:"team_id"`
	TeamName string  `json:"team_name"`
	Points   float64 `json:"points"`
}
