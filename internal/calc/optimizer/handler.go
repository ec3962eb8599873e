package optimizer

import (
	"encoding/json"
	"net/http"

	"Davenport/internal/catalog"
)

type Handler struct {
	Materials catalog.MaterialCatalog
	Gears     catalog.GearCatalog
}

type request struct {
	CycleRate      int             `json:"cycle_rate_cpm"`
	SlackThreshold float64         `json:"slack_threshold,omitempty"`
	Positions      []PositionInput `json:"positions"`
}

func (h *Handler) Calc(w http.ResponseWriter, r *http.Request) {
	var req request
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	indexTime, ok := h.Gears.IndexTime(req.CycleRate)
	if !ok {
		http.Error(w, "Unsupported cycle rate", http.StatusBadRequest)
		return
	}
	opt := New(h.Materials)
	if req.SlackThreshold > 0 {
		opt.SlackThreshold = req.SlackThreshold
	}
	res, err := opt.Optimize(req.Positions, indexTime)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(res)
}
