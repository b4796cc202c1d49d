package controllers

import (
	"errors"
	"net/http"
	"time"

	"ctfwatch/internal/ctftime"
	"ctfwatch/internal/models"
	"ctfwatch/internal/providers"
	"ctfwatch/internal/services"
	"ctfwatch/internal/watch"

	json "github.com/goccy/go-json"
	"github.com/spf13/cast"
)

const (
	maxRequestBodySize = 1 << 20 // 1 MB

	defaultWindowDays = 14
	maxWindowDays     = 100
)

type ApiController struct {
	logger    providers.Logger
	service   services.EventServiceInterface
	watchlist *watch.WatchList
	cache     providers.CacheProviderInterface
}

func NewApiController(logger providers.Logger, service services.EventServiceInterface, watchlist *watch.WatchList, cache providers.CacheProviderInterface) *ApiController {
	return &ApiController{
		logger:    logger,
		service:   service,
		watchlist: watchlist,
		cache:     cache,
	}
}

func getDays(r *http.Request) (int, bool) {
	raw := r.URL.Query().Get("days")
	if raw == "" {
		return defaultWindowDays, true
	}
	days, err := cast.ToIntE(raw)
	if err != nil || days < 1 || days > maxWindowDays {
		return 0, false
	}
	return days, true
}

func (ac *ApiController) writeJSON(w http.ResponseWriter, status int, v any) {
	gson, err := json.Marshal(v)
	if err != nil {
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(gson)
}

func (ac *ApiController) writeError(w http.ResponseWriter, err error) {
	if errors.Is(err, ctftime.ErrSourceUnavailable) {
		ac.logger.Errorf(providers.TypeSource, "Source failure: %s", err)
		http.Error(w, "Source Unavailable", http.StatusBadGateway)
		return
	}
	ac.logger.Errorf(providers.TypeApp, "Request failed: %s", err)
	http.Error(w, "Internal Server Error", http.StatusInternalServerError)
}

func (ac *ApiController) serveFromCacheOrCompute(w http.ResponseWriter, cacheKey string, compute func() (any, error)) {
	if data, ok := ac.cache.Get(cacheKey); ok {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write(data)
		return
	}

	result, err := compute()
	if err != nil {
		ac.writeError(w, err)
		return
	}

	gson, err := json.Marshal(result)
	if err != nil {
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	ac.cache.Set(cacheKey, gson)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(gson)
}

// GetEvents lists upcoming events inside the requested day window.
func (ac *ApiController) GetEvents(w http.ResponseWriter, r *http.Request) {
	days, ok := getDays(r)
	if !ok {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}

	ac.serveFromCacheOrCompute(w, "events:"+cast.ToString(days), func() (any, error) {
		evs, err := ac.service.Upcoming(r.Context(), days)
		if err != nil {
			return nil, err
		}
		return ac.service.Project(evs)
	})
}

// GetNewEvents reports events not seen in the previous run and advances the
// baseline; never cached because it mutates persisted state.
func (ac *ApiController) GetNewEvents(w http.ResponseWriter, r *http.Request) {
	days, ok := getDays(r)
	if !ok {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}

	delta, err := ac.service.NewEvents(r.Context(), days)
	if err != nil {
		ac.writeError(w, err)
		return
	}

	if !delta.HasNew() {
		ac.writeJSON(w, http.StatusOK, map[string]any{
			"status":  "no_new_events",
			"message": "You have already found all the interesting CTFs for the given time period.",
		})
		return
	}

	projected, err := ac.service.Project(delta.New)
	if err != nil {
		ac.writeError(w, err)
		return
	}
	ac.writeJSON(w, http.StatusOK, map[string]any{
		"status": "ok",
		"events": projected,
	})
}

func (ac *ApiController) GetEvent(w http.ResponseWriter, r *http.Request) {
	id, err := cast.ToIntE(r.URL.Query().Get("id"))
	if err != nil {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}

	ev, found, err := ac.service.Details(r.Context(), id)
	if err != nil {
		ac.writeError(w, err)
		return
	}
	if !found {
		http.Error(w, "Not Found", http.StatusNotFound)
		return
	}
	ac.writeJSON(w, http.StatusOK, ev)
}

func (ac *ApiController) GetWatchlist(w http.ResponseWriter, r *http.Request) {
	ac.writeJSON(w, http.StatusOK, ac.watchlist.List())
}

// AddToWatchlist resolves the event by id against the source, then adds a
// snapshot of it. Duplicates are a normal outcome, not an error.
func (ac *ApiController) AddToWatchlist(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxRequestBodySize)
	var payload struct {
		ID int `json:"id"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil || payload.ID == 0 {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}

	ev, found, err := ac.service.Details(r.Context(), payload.ID)
	if err != nil {
		ac.writeError(w, err)
		return
	}
	if !found {
		http.Error(w, "Not Found", http.StatusNotFound)
		return
	}

	if ac.watchlist.Add(ev) == models.AlreadyPresent {
		ac.writeJSON(w, http.StatusOK, map[string]any{"status": "already_present", "title": ev.Title})
		return
	}
	ac.writeJSON(w, http.StatusCreated, map[string]any{"status": "added", "title": ev.Title})
}

func (ac *ApiController) RemoveFromWatchlist(w http.ResponseWriter, r *http.Request) {
	id, err := cast.ToIntE(r.URL.Query().Get("id"))
	if err != nil {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}

	entry, found := ac.watchlist.Remove(id)
	if !found {
		http.Error(w, "Not Found", http.StatusNotFound)
		return
	}
	ac.writeJSON(w, http.StatusOK, map[string]any{"status": "removed", "title": entry.Title})
}

func (ac *ApiController) GetTopTeams(w http.ResponseWriter, r *http.Request) {
	year := time.Now().UTC().Year()
	if raw := r.URL.Query().Get("year"); raw != "" {
		parsed, err := cast.ToIntE(raw)
		if err != nil {
			http.Error(w, "Bad Request", http.StatusBadRequest)
			return
		}
		year = parsed
	}

	ac.serveFromCacheOrCompute(w, "top:"+cast.ToString(year), func() (any, error) {
		teams, err := ac.service.TopTeams(r.Context(), year)
		if err != nil {
			return nil, err
		}
		return map[string]any{"year": year, "teams": teams}, nil
	})
}

type teamRankRow struct {
	Year  int  `json:"year"`
	Place *int `json:"place"`
}

// GetTeam renders a team's rating place over the last three years; years
// without a rating are reported with a null place.
func (ac *ApiController) GetTeam(w http.ResponseWriter, r *http.Request) {
	teamID := r.URL.Query().Get("id")
	if teamID == "" {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}

	team, err := ac.service.Team(r.Context(), teamID)
	if err != nil {
		ac.writeError(w, err)
		return
	}

	currentYear := time.Now().UTC().Year()
	ranks := make([]teamRankRow, 0, 3)
	for year := currentYear - 2; year <= currentYear; year++ {
		row := teamRankRow{Year: year}
		if place, ok := team.RankForYear(year); ok {
			row.Place = &place
		}
		ranks = append(ranks, row)
	}

	ac.writeJSON(w, http.StatusOK, map[string]any{
		"id":    team.ID,
		"name":  team.Name,
		"ranks": ranks,
	})
}
