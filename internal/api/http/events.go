package http

import (
	"context"
	"net/http"

	"github.com/goccy/go-json"

	syncx "github.com/mind-engage/mindengage-advisor/internal/sync"
)

type EventLister interface {
	Since(ctx context.Context, after int64, limit int) ([]syncx.Event, error)
}

type eventView struct {
	Seq       int64           `json:"seq"`
	SiteID    string          `json:"site_id"`
	Type      string          `json:"type"`
	Key       string          `json:"key"`
	Data      json.RawMessage `json:"data"`
	CreatedAt int64           `json:"created_at"`
}

// GET /events?after=&limit=
// Pages through the advisor event log, oldest first. Pass the last seq seen
// as after to continue.
func EventsHandler(log EventLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		after := int64(parseIntDefault(q.Get("after"), 0))
		limit := parseIntDefault(q.Get("limit"), 100)
		if limit <= 0 || limit > 500 {
			limit = 100
		}
		evs, err := log.Since(r.Context(), after, limit)
		if err != nil {
			respondServiceError(w, r, err)
			return
		}
		out := make([]eventView, 0, len(evs))
		next := after
		for _, e := range evs {
			data := json.RawMessage(e.DataJSON)
			if !json.Valid(data) {
				data = json.RawMessage("null")
			}
			out = append(out, eventView{Seq: e.Seq, SiteID: e.SiteID, Type: e.Type, Key: e.Key, Data: data, CreatedAt: e.CreatedAt})
			next = e.Seq
		}
		respondJSON(w, http.StatusOK, map[string]any{"events": out, "next": next})
	}
}
