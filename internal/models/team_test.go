package models

import (
	"testing"

	json "github.com/goccy/go-json"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRankForYear_PresentYear(t *testing.T) {
	team := &Team{
		Rating: map[string]YearRating{
			"2023": {RatingPlace: 42},
		},
	}

	place, ok := team.RankForYear(2023)

	assert.True(t, ok)
	assert.Equal(t, 42, place)
}

func TestRankForYear_AbsentYear(t *testing.T) {
	team := &Team{
		Rating: map[string]YearRating{
			"2023": {RatingPlace: 42},
		},
	}

	place, ok := team.RankForYear(2022)

	assert.False(t, ok)
	assert.Equal(t, 0, place)
}

func TestRankForYear_NilRating(t *testing.T) {
	team := &Team{}

	_, ok := team.RankForYear(2024)

	assert.False(t, ok)
}

func TestTeam_DecodeFromSourcePayload(t *testing.T) {
	payload := `{
		"id": 216659,
		"name": "0xECE",
		"primary_alias": "0xECE",
		"country": "FR",
		"academic": true,
		"aliases": [],
		"rating": {
			"2023": {"rating_place": 42, "rating_points": 12.5},
			"2024": {"rating_place": 17}
		}
	}`

	var team Team
	require.NoError(t, json.Unmarshal([]byte(payload), &team))

	assert.Equal(t, 216659, team.ID)
	assert.Equal(t, "0xECE", team.Name)

	place, ok := team.RankForYear(2024)
	assert.True(t, ok)
	assert.Equal(t, 17, place)

	_, ok = team.RankForYear(2021)
	assert.False(t, ok)
}
