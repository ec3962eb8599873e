// Package setups stores and recalls saved job setups per user.
package setups

import (
	"Davenport/internal/auth"
	"Davenport/internal/repo"
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
)

type SetupsHandler struct {
	Repo repo.Repository
}

type SaveRequest struct {
	Name    string          `json:"name"`
	Machine string          `json:"machine"`
	Payload json.RawMessage `json:"payload"`
}

const MaxPayloadSize = 1 << 20 // 1MB

func (h *SetupsHandler) Save(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.UserID(r.Context())
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, MaxPayloadSize)
	var req SaveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	if req.Name == "" {
		http.Error(w, "Setup name required", http.StatusBadRequest)
		return
	}

	id, err := h.Repo.SaveSetup(r.Context(), repo.Setup{
		UserID:  userID,
		Name:    req.Name,
		Machine: req.Machine,
		Payload: req.Payload,
	})
	if err != nil {
		http.Error(w, "DB error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(map[string]int{"id": id})
}

func (h *SetupsHandler) List(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.UserID(r.Context())
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	setups, err := h.Repo.ListSetups(r.Context(), userID)
	if err != nil {
		http.Error(w, "DB error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(setups)
}

func (h *SetupsHandler) Get(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.UserID(r.Context())
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "Invalid setup id", http.StatusBadRequest)
		return
	}

	setup, err := h.Repo.GetSetup(r.Context(), userID, id)
	if err == repo.ErrNotFound {
		http.Error(w, "Setup not found", http.StatusNotFound)
		return
	}
	if err != nil {
		http.Error(w, "DB error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(setup)
}

func (h *SetupsHandler) Delete(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.UserID(r.Context())
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "Invalid setup id", http.StatusBadRequest)
		return
	}

	switch err := h.Repo.DeleteSetup(r.Context(), userID, id); err {
	case nil:
		w.WriteHeader(http.StatusNoContent)
	case repo.ErrNotFound:
		http.Error(w, "Setup not found", http.StatusNotFound)
	default:
		http.Error(w, "DB error", http.StatusInternalServerError)
	}
}
