// Package api provides HTTP API handlers for the FormCheck analysis service.
package api

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"github.com/ayusman/formcheck/internal/analysis"
	"github.com/ayusman/formcheck/internal/config"
	"github.com/ayusman/formcheck/internal/pose"
	"github.com/ayusman/formcheck/internal/store"
)

// allowedExtensions lists the video container formats accepted for upload.
var allowedExtensions = map[string]bool{
	".mp4":  true,
	".avi":  true,
	".mov":  true,
	".mkv":  true,
	".webm": true,
}

// AnalyzeHandler handles POST requests to /api/analyze: a multipart upload
// with a video file and an exercise name, answered with a scored assessment.
type AnalyzeHandler struct {
	cfg     config.Config
	tunings *store.TuningRepository

	// Injection points so handler behavior can be exercised without a
	// Python sidecar or a video decoder.
	newDetector func(ex analysis.Exercise, tuning *store.Tuning) (pose.Detector, error)
	openStream  func(path string, det pose.Detector, stride int) (analyzeStream, error)
}

// analyzeStream is the frame source consumed by one analysis request.
type analyzeStream interface {
	pose.Stream
	Close() error
}

// NewAnalyzeHandler creates a new AnalyzeHandler. The tuning repository may
// be nil, in which case the configured sampling defaults always apply.
func NewAnalyzeHandler(cfg config.Config, tunings *store.TuningRepository) *AnalyzeHandler {
	h := &AnalyzeHandler{
		cfg:     cfg,
		tunings: tunings,
	}
	h.newDetector = h.mediaPipeDetector
	h.openStream = func(path string, det pose.Detector, stride int) (analyzeStream, error) {
		return pose.OpenVideo(path, det, stride)
	}
	return h
}

func (h *AnalyzeHandler) mediaPipeDetector(ex analysis.Exercise, tuning *store.Tuning) (pose.Detector, error) {
	dc := pose.DefaultConfig()
	dc.PythonPath = h.cfg.MediaPipe.Python
	dc.ScriptPath = h.cfg.MediaPipe.Script
	if h.cfg.MediaPipe.MinDetectionConf > 0 {
		dc.MinDetectionConf = h.cfg.MediaPipe.MinDetectionConf
	}
	if h.cfg.MediaPipe.MinTrackingConf > 0 {
		dc.MinTrackingConf = h.cfg.MediaPipe.MinTrackingConf
	}
	if tuning != nil && tuning.MinDetectionConf > 0 {
		dc.MinDetectionConf = tuning.MinDetectionConf
	}
	return pose.NewMediaPipeDetector(dc)
}

type analyzeResponse struct {
	ID string `json:"id"`
	*analysis.Result
}

// ServeHTTP implements the http.Handler interface.
func (h *AnalyzeHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	maxBytes := h.cfg.MaxUploadMB << 20
	if maxBytes <= 0 {
		maxBytes = config.Default().MaxUploadMB << 20
	}
	r.Body = http.MaxBytesReader(w, r.Body, maxBytes)

	if err := r.ParseMultipartForm(32 << 20); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid multipart form")
		return
	}
	defer r.MultipartForm.RemoveAll()

	// Validate the exercise before touching the upload: an unsupported
	// exercise must fail fast without spawning a detector.
	exercise, err := analysis.ParseExercise(r.FormValue("exercise"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "Unsupported exercise. Use one of: squat, pushup, lunge")
		return
	}

	file, header, err := r.FormFile("video")
	if err != nil {
		writeError(w, http.StatusBadRequest, "Video file is required")
		return
	}
	defer file.Close()

	ext := strings.ToLower(filepath.Ext(header.Filename))
	if !allowedExtensions[ext] {
		writeError(w, http.StatusBadRequest, "Unsupported video format. Use mp4, avi, mov, mkv, or webm")
		return
	}

	tmp, err := os.CreateTemp("", "formcheck-*"+ext)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to store upload")
		return
	}
	tmpPath := tmp.Name()
	defer os.Remove(tmpPath)

	if _, err := io.Copy(tmp, file); err != nil {
		tmp.Close()
		writeError(w, http.StatusInternalServerError, "Failed to store upload")
		return
	}
	tmp.Close()

	cfg, tuning := h.samplingFor(exercise)

	det, err := h.newDetector(exercise, tuning)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Pose detection service unavailable")
		return
	}
	defer det.Close()

	stream, err := h.openStream(tmpPath, det, cfg.Stride)
	if err != nil {
		if errors.Is(err, pose.ErrCouldNotOpenVideo) {
			writeError(w, http.StatusUnprocessableEntity, "Could not decode the uploaded video")
			return
		}
		writeError(w, http.StatusInternalServerError, "Failed to open video")
		return
	}
	defer stream.Close()

	result, err := analysis.Analyze(stream, exercise, cfg)
	if err != nil {
		switch {
		case errors.Is(err, analysis.ErrInsufficientFrames):
			writeError(w, http.StatusUnprocessableEntity, err.Error())
		case errors.Is(err, analysis.ErrUnsupportedExercise):
			writeError(w, http.StatusBadRequest, "Unsupported exercise. Use one of: squat, pushup, lunge")
		default:
			writeError(w, http.StatusInternalServerError, "Analysis failed")
		}
		return
	}

	writeJSON(w, http.StatusOK, analyzeResponse{
		ID:     uuid.New().String(),
		Result: result,
	})
}

// samplingFor resolves the effective sampling policy for an exercise: the
// configured defaults, overridden by a stored tuning when one exists.
func (h *AnalyzeHandler) samplingFor(ex analysis.Exercise) (analysis.Config, *store.Tuning) {
	cfg := analysis.Config{
		Stride:    h.cfg.Sampling.Stride,
		MaxFrames: h.cfg.Sampling.MaxFrames,
		MinFrames: h.cfg.Sampling.MinFrames,
	}

	if h.tunings == nil {
		return cfg, nil
	}

	tuning, err := h.tunings.Get(ex.String())
	if err != nil {
		return cfg, nil
	}

	if tuning.Stride > 0 {
		cfg.Stride = tuning.Stride
	}
	if tuning.MaxFrames > 0 {
		cfg.MaxFrames = tuning.MaxFrames
	}
	if tuning.MinFrames > 0 {
		cfg.MinFrames = tuning.MinFrames
	}

	return cfg, tuning
}

type errorResponse struct {
	Error string `json:"error"`
}

// writeJSON writes a JSON response with the given status code.
func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if data != nil {
		json.NewEncoder(w).Encode(data)
	}
}

// writeError writes a JSON error response.
func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, errorResponse{Error: message})
}
