package camselect

import (
	"encoding/json"
	"net/http"

	"Davenport/internal/catalog"
)

type Handler struct {
	Cams catalog.CamCatalog
}

type request struct {
	RiseNeeded float64         `json:"rise_needed_in"`
	Kind       catalog.CamKind `json:"kind,omitempty"` // empty = whole inventory
}

type failure struct {
	Error     string           `json:"error"`
	Best      *catalog.CamSpec `json:"closest_cam,omitempty"`
	BestBlock float64          `json:"closest_block_setting,omitempty"`
}

func (h *Handler) Calc(w http.ResponseWriter, r *http.Request) {
	var req request
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	candidates := h.Cams.All()
	if req.Kind != "" {
		candidates = h.Cams.OfKind(req.Kind)
	}
	sel, err := Select(req.RiseNeeded, candidates)
	if err != nil {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		if nce, ok := err.(*NoCompatibleCamError); ok {
			json.NewEncoder(w).Encode(failure{Error: nce.Error(), Best: nce.Best, BestBlock: nce.BestBlock})
			return
		}
		json.NewEncoder(w).Encode(failure{Error: err.Error()})
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(sel)
}
