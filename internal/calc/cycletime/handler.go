package cycletime

import (
	"encoding/json"
	"net/http"

	"Davenport/internal/catalog"
)

type Handler struct {
	Gears catalog.GearCatalog
}

type request struct {
	CycleRate  int         `json:"cycle_rate_cpm"`
	Operations []Operation `json:"operations"`
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
	res, err := Estimate(req.Operations, indexTime)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(res)
}
