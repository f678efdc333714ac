// Package handlers wires the HTTP surface to the tracker.
package handlers

import (
	"encoding/json"
	"log/slog"
	nethttp "net/http"
	"sort"
	"strings"
	"time"

	"nba-worm-tracker/internal/datausage"
	"nba-worm-tracker/internal/domain"
	"nba-worm-tracker/internal/providers"
	"nba-worm-tracker/internal/standings"
	"nba-worm-tracker/internal/teams"
	"nba-worm-tracker/internal/tracker"
)

// Handler routes HTTP requests to the tracker and its supporting services.
type Handler struct {
	tracker   *tracker.Tracker
	standings providers.StandingsProvider
	usage     *datausage.Counter
	logger    *slog.Logger
	now       func() time.Time
}

// NewHandler constructs a Handler with defaults.
func NewHandler(t *tracker.Tracker, standingsProvider providers.StandingsProvider, usage *datausage.Counter, logger *slog.Logger) *Handler {
	return &Handler{
		tracker:   t,
		standings: standingsProvider,
		usage:     usage,
		logger:    logger,
		now:       time.Now,
	}
}

func (h *Handler) ServeHTTP(w nethttp.ResponseWriter, r *nethttp.Request) {
	switch r.URL.Path {
	case "/health":
		h.Health(w, r)
	case "/ready":
		h.Ready(w, r)
	case "/state":
		h.State(w, r)
	case "/state/stream":
		h.Stream(w, r)
	case "/status":
		h.Status(w, r)
	case "/teams":
		h.Teams(w, r)
	case "/team":
		h.SelectTeam(w, r)
	case "/refresh":
		h.Refresh(w, r)
	case "/standings":
		h.Standings(w, r)
	case "/datausage":
		h.DataUsage(w, r)
	case "/datausage/reset":
		h.ResetDataUsage(w, r)
	default:
		writeError(w, r, nethttp.StatusNotFound, "not found", h.logger)
	}
}

// Health reports the service health.
func (h *Handler) Health(w nethttp.ResponseWriter, r *nethttp.Request) {
	if r.Method != nethttp.MethodGet {
		writeError(w, r, nethttp.StatusMethodNotAllowed, "method not allowed", h.logger)
		return
	}
	writeJSON(w, nethttp.StatusOK, map[string]string{"status": "ok"}, h.logger)
}

// Ready reports readiness for traffic. The service is not ready while
// the tracker sits in an error state.
func (h *Handler) Ready(w nethttp.ResponseWriter, r *nethttp.Request) {
	if r.Method != nethttp.MethodGet {
		writeError(w, r, nethttp.StatusMethodNotAllowed, "method not allowed", h.logger)
		return
	}
	state := h.tracker.State()
	if state.Kind == domain.KindError {
		msg := state.Message
		if msg == "" {
			msg = "not ready"
		}
		writeError(w, r, nethttp.StatusServiceUnavailable, msg, h.logger)
		return
	}
	writeJSON(w, nethttp.StatusOK, map[string]string{"status": "ready"}, h.logger)
}

// State returns the last published game state.
func (h *Handler) State(w nethttp.ResponseWriter, r *nethttp.Request) {
	if r.Method != nethttp.MethodGet {
		writeError(w, r, nethttp.StatusMethodNotAllowed, "method not allowed", h.logger)
		return
	}
	writeJSON(w, nethttp.StatusOK, h.tracker.State(), h.logger)
}

// statusResponse is the /status payload.
type statusResponse struct {
	Team           string    `json:"team"`
	State          string    `json:"state"`
	Polling        bool      `json:"polling"`
	LastUpdate     time.Time `json:"lastUpdate"`
	LiveTeams      []string  `json:"liveTeams"`
	DataUsageBytes int64     `json:"dataUsageBytes"`
}

// Status reports operational details about the tracker itself.
func (h *Handler) Status(w nethttp.ResponseWriter, r *nethttp.Request) {
	if r.Method != nethttp.MethodGet {
		writeError(w, r, nethttp.StatusMethodNotAllowed, "method not allowed", h.logger)
		return
	}
	live := h.tracker.LiveTeams()
	sort.Strings(live)
	writeJSON(w, nethttp.StatusOK, statusResponse{
		Team:           h.tracker.Team(),
		State:          string(h.tracker.State().Kind),
		Polling:        h.tracker.IsPolling(),
		LastUpdate:     h.tracker.LastUpdate(),
		LiveTeams:      live,
		DataUsageBytes: h.usage.Bytes(),
	}, h.logger)
}

// Teams returns the team picklist.
func (h *Handler) Teams(w nethttp.ResponseWriter, r *nethttp.Request) {
	if r.Method != nethttp.MethodGet {
		writeError(w, r, nethttp.StatusMethodNotAllowed, "method not allowed", h.logger)
		return
	}
	writeJSON(w, nethttp.StatusOK, teams.All, h.logger)
}

// SelectTeam switches the tracked team.
func (h *Handler) SelectTeam(w nethttp.ResponseWriter, r *nethttp.Request) {
	if r.Method != nethttp.MethodPost {
		writeError(w, r, nethttp.StatusMethodNotAllowed, "method not allowed", h.logger)
		return
	}
	var req struct {
		Team string `json:"team"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, r, nethttp.StatusBadRequest, "invalid request body", h.logger)
		return
	}
	tricode := strings.ToUpper(strings.TrimSpace(req.Team))
	team, ok := teams.ByTricode(tricode)
	if !ok {
		writeError(w, r, nethttp.StatusBadRequest, "unknown team: "+req.Team, h.logger)
		return
	}

	h.tracker.SelectTeam(r.Context(), team.Tricode)
	writeJSON(w, nethttp.StatusOK, map[string]string{"team": team.Tricode}, h.logger)
}

// Refresh forces a fetch cycle, mirroring a pull-to-refresh.
func (h *Handler) Refresh(w nethttp.ResponseWriter, r *nethttp.Request) {
	if r.Method != nethttp.MethodPost {
		writeError(w, r, nethttp.StatusMethodNotAllowed, "method not allowed", h.logger)
		return
	}
	h.tracker.Refresh(r.Context())
	writeJSON(w, nethttp.StatusOK, h.tracker.State(), h.logger)
}

// Standings returns conference standings built from the season records.
func (h *Handler) Standings(w nethttp.ResponseWriter, r *nethttp.Request) {
	if r.Method != nethttp.MethodGet {
		writeError(w, r, nethttp.StatusMethodNotAllowed, "method not allowed", h.logger)
		return
	}
	records, err := h.standings.FetchStandings(r.Context())
	if err != nil {
		logger := loggerFromContext(r, h.logger)
		if logger != nil {
			logger.Warn("standings fetch failed", "error", err)
		}
		writeError(w, r, nethttp.StatusBadGateway, "standings unavailable", h.logger)
		return
	}
	writeJSON(w, nethttp.StatusOK, standings.Build(records), h.logger)
}

// DataUsage reports the accumulated wire byte count.
func (h *Handler) DataUsage(w nethttp.ResponseWriter, r *nethttp.Request) {
	if r.Method != nethttp.MethodGet {
		writeError(w, r, nethttp.StatusMethodNotAllowed, "method not allowed", h.logger)
		return
	}
	writeJSON(w, nethttp.StatusOK, map[string]int64{"bytes": h.usage.Bytes()}, h.logger)
}

// ResetDataUsage zeroes the data usage counter.
func (h *Handler) ResetDataUsage(w nethttp.ResponseWriter, r *nethttp.Request) {
	if r.Method != nethttp.MethodPost {
		writeError(w, r, nethttp.StatusMethodNotAllowed, "method not allowed", h.logger)
		return
	}
	h.usage.Reset()
	writeJSON(w, nethttp.StatusOK, map[string]int64{"bytes": 0}, h.logger)
}
