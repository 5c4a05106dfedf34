package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/google/uuid"

	"github.com/ayusman/formcheck/internal/analysis"
	"github.com/ayusman/formcheck/internal/config"
	"github.com/ayusman/formcheck/internal/store"
)

// TuningHandler handles HTTP requests for per-exercise analyzer tuning.
type TuningHandler struct {
	cfg     config.Config
	tunings *store.TuningRepository
}

// NewTuningHandler creates a new TuningHandler with the given store
// repository.
func NewTuningHandler(cfg config.Config, tunings *store.TuningRepository) *TuningHandler {
	return &TuningHandler{cfg: cfg, tunings: tunings}
}

// ServeHTTP implements the http.Handler interface and routes requests to
// appropriate methods.
func (h *TuningHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	// Expected paths: /api/tuning or /api/tuning/{exercise}
	path := strings.TrimPrefix(r.URL.Path, "/api/tuning")
	path = strings.TrimPrefix(path, "/")

	if path == "" {
		switch r.Method {
		case http.MethodGet:
			h.list(w, r)
		default:
			http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		}
		return
	}

	exercise, err := analysis.ParseExercise(path)
	if err != nil {
		writeError(w, http.StatusNotFound, "Unknown exercise")
		return
	}

	switch r.Method {
	case http.MethodGet:
		h.get(w, r, exercise)
	case http.MethodPut:
		h.update(w, r, exercise)
	case http.MethodDelete:
		h.delete(w, r, exercise)
	default:
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
	}
}

type updateTuningRequest struct {
	Stride           int     `json:"stride"`
	MaxFrames        int     `json:"max_frames"`
	MinFrames        int     `json:"min_frames"`
	MinDetectionConf float64 `json:"min_detection_conf"`
}

type tuningResponse struct {
	Exercise         string  `json:"exercise"`
	Stride           int     `json:"stride"`
	MaxFrames        int     `json:"max_frames"`
	MinFrames        int     `json:"min_frames"`
	MinDetectionConf float64 `json:"min_detection_conf"`
	Source           string  `json:"source"`
}

type listTuningsResponse struct {
	Tunings []tuningResponse `json:"tunings"`
}

// defaultResponse builds the effective tuning for an exercise with no stored
// override.
func (h *TuningHandler) defaultResponse(exercise analysis.Exercise) tuningResponse {
	return tuningResponse{
		Exercise:         exercise.String(),
		Stride:           h.cfg.Sampling.Stride,
		MaxFrames:        h.cfg.Sampling.MaxFrames,
		MinFrames:        h.cfg.Sampling.MinFrames,
		MinDetectionConf: h.cfg.MediaPipe.MinDetectionConf,
		Source:           "default",
	}
}

func toTuningResponse(t *store.Tuning) tuningResponse {
	return tuningResponse{
		Exercise:         t.Exercise,
		Stride:           t.Stride,
		MaxFrames:        t.MaxFrames,
		MinFrames:        t.MinFrames,
		MinDetectionConf: t.MinDetectionConf,
		Source:           "stored",
	}
}

// list handles GET /api/tuning and returns the effective tuning for every
// supported exercise.
func (h *TuningHandler) list(w http.ResponseWriter, r *http.Request) {
	stored, err := h.tunings.List()
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to list tunings")
		return
	}

	byExercise := make(map[string]*store.Tuning, len(stored))
	for _, t := range stored {
		byExercise[t.Exercise] = t
	}

	response := listTuningsResponse{Tunings: make([]tuningResponse, 0, 3)}
	for _, ex := range []analysis.Exercise{analysis.Squat, analysis.Pushup, analysis.Lunge} {
		if t, ok := byExercise[ex.String()]; ok {
			response.Tunings = append(response.Tunings, toTuningResponse(t))
		} else {
			response.Tunings = append(response.Tunings, h.defaultResponse(ex))
		}
	}

	writeJSON(w, http.StatusOK, response)
}

// get handles GET /api/tuning/{exercise} and returns the effective tuning,
// falling back to the configured defaults when no override is stored.
func (h *TuningHandler) get(w http.ResponseWriter, r *http.Request, exercise analysis.Exercise) {
	tuning, err := h.tunings.Get(exercise.String())
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			writeJSON(w, http.StatusOK, h.defaultResponse(exercise))
			return
		}
		writeError(w, http.StatusInternalServerError, "Failed to get tuning")
		return
	}

	writeJSON(w, http.StatusOK, toTuningResponse(tuning))
}

// update handles PUT /api/tuning/{exercise} and stores an override.
func (h *TuningHandler) update(w http.ResponseWriter, r *http.Request, exercise analysis.Exercise) {
	var req updateTuningRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	if req.Stride < 1 {
		writeError(w, http.StatusBadRequest, "stride must be at least 1")
		return
	}
	if req.MinFrames < 1 {
		writeError(w, http.StatusBadRequest, "min_frames must be at least 1")
		return
	}
	if req.MaxFrames < req.MinFrames {
		writeError(w, http.StatusBadRequest, "max_frames must be at least min_frames")
		return
	}
	if req.MinDetectionConf <= 0 || req.MinDetectionConf > 1 {
		writeError(w, http.StatusBadRequest, "min_detection_conf must be in (0, 1]")
		return
	}

	tuning := &store.Tuning{
		ID:               uuid.New().String(),
		Exercise:         exercise.String(),
		Stride:           req.Stride,
		MaxFrames:        req.MaxFrames,
		MinFrames:        req.MinFrames,
		MinDetectionConf: req.MinDetectionConf,
	}

	if err := h.tunings.Upsert(tuning); err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to save tuning")
		return
	}

	writeJSON(w, http.StatusOK, toTuningResponse(tuning))
}

// delete handles DELETE /api/tuning/{exercise} and removes an override so
// the defaults apply again.
func (h *TuningHandler) delete(w http.ResponseWriter, r *http.Request, exercise analysis.Exercise) {
	err := h.tunings.Delete(exercise.String())
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			writeError(w, http.StatusNotFound, "No tuning override stored")
			return
		}
		writeError(w, http.StatusInternalServerError, "Failed to delete tuning")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
