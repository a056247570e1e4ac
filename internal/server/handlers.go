package server

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/maauso/jobboard-api/internal/job"
)

// pageParam is the query parameter selecting the page of GET /jobs.
const pageParam = "p"

// Handlers contains the HTTP handlers for the API.
type Handlers struct {
	jobs   job.Repository
	logger *slog.Logger
}

// NewHandlers creates a new Handlers instance.
func NewHandlers(jobs job.Repository, logger *slog.Logger) *Handlers {
	if logger == nil {
		logger = slog.Default()
	}
	return &Handlers{
		jobs:   jobs,
		logger: logger,
	}
}

// Health handles GET /health requests.
func (h *Handlers) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, HealthResponse{Status: "ok"})
}

// ListJobs handles GET /jobs requests.
func (h *Handlers) ListJobs(w http.ResponseWriter, r *http.Request) {
	page := parsePage(r.URL.Query().Get(pageParam))

	jobs, err := h.jobs.List(r.Context(), page)
	if err != nil {
		h.logger.Error("failed to list jobs",
			slog.Int("page", page),
			slog.String("error", err.Error()),
		)
		writeError(w, http.StatusInternalServerError, "error retrieving jobs", CodeJobListFailed)
		return
	}

	writeJSON(w, http.StatusOK, jobs)
}

// GetJob handles GET /jobs/{id} requests.
func (h *Handlers) GetJob(w http.ResponseWriter, r *http.Request) {
	jobID, ok := h.pathID(w, r)
	if !ok {
		return
	}

	doc, err := h.jobs.FindByID(r.Context(), jobID)
	if err != nil {
		if errors.Is(err, job.ErrJobNotFound) {
			writeError(w, http.StatusNotFound, "job not found", CodeJobNotFound)
			return
		}
		h.logger.Error("failed to get job",
			slog.String("job_id", jobID.Hex()),
			slog.String("error", err.Error()),
		)
		writeError(w, http.StatusInternalServerError, "error retrieving the job", CodeJobFetchFailed)
		return
	}

	writeJSON(w, http.StatusOK, doc)
}

// CreateJob handles POST /jobs requests.
// The body is stored as-is; its fields are not validated.
func (h *Handlers) CreateJob(w http.ResponseWriter, r *http.Request) {
	doc, ok := h.decodeDocument(w, r)
	if !ok {
		return
	}

	res, err := h.jobs.Insert(r.Context(), doc)
	if err != nil {
		h.logger.Error("failed to create job",
			slog.String("error", err.Error()),
		)
		writeError(w, http.StatusInternalServerError, "could not create new job", CodeJobCreate)
		return
	}

	attrs := []any{slog.Int("fields", len(doc))}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		attrs = append(attrs, slog.String("job_id", oid.Hex()))
	}
	h.logger.Info("job created", attrs...)

	writeJSON(w, http.StatusCreated, res)
}

// DeleteJob handles DELETE /jobs/{id} requests.
func (h *Handlers) DeleteJob(w http.ResponseWriter, r *http.Request) {
	jobID, ok := h.pathID(w, r)
	if !ok {
		return
	}

	if err := h.jobs.Delete(r.Context(), jobID); err != nil {
		if errors.Is(err, job.ErrJobNotFound) {
			writeError(w, http.StatusNotFound, "job not found", CodeJobNotFound)
			return
		}
		h.logger.Error("failed to delete job",
			slog.String("job_id", jobID.Hex()),
			slog.String("error", err.Error()),
		)
		writeError(w, http.StatusInternalServerError, "error deleting the job", CodeJobDelete)
		return
	}

	h.logger.Info("job deleted", slog.String("job_id", jobID.Hex()))
	writeJSON(w, http.StatusOK, MessageResponse{Message: "job deleted successfully"})
}

// UpdateJob handles PATCH /jobs/{id} requests.
// A missing job and an update that changed nothing both answer 404.
func (h *Handlers) UpdateJob(w http.ResponseWriter, r *http.Request) {
	jobID, ok := h.pathID(w, r)
	if !ok {
		return
	}

	updates, ok := h.decodeDocument(w, r)
	if !ok {
		return
	}

	err := h.jobs.Update(r.Context(), jobID, updates)
	switch {
	case err == nil:
		h.logger.Info("job updated",
			slog.String("job_id", jobID.Hex()),
			slog.Int("fields", len(updates)),
		)
		writeJSON(w, http.StatusOK, MessageResponse{Message: "job updated successfully"})
	case errors.Is(err, job.ErrJobNotFound), errors.Is(err, job.ErrJobNotModified):
		h.logger.Debug("update had no effect",
			slog.String("job_id", jobID.Hex()),
			slog.String("reason", err.Error()),
		)
		writeError(w, http.StatusNotFound, "job not found or no changes made", CodeJobNotFound)
	default:
		h.logger.Error("failed to update job",
			slog.String("job_id", jobID.Hex()),
			slog.String("error", err.Error()),
		)
		writeError(w, http.StatusInternalServerError, "error updating the job", CodeJobUpdate)
	}
}

// pathID extracts and validates the {id} path value.
// On failure it writes a 400 response and returns false.
func (h *Handlers) pathID(w http.ResponseWriter, r *http.Request) (primitive.ObjectID, bool) {
	raw := r.PathValue("id")
	jobID, err := job.ParseID(raw)
	if err != nil {
		h.logger.Debug("rejected job ID", slog.String("job_id", raw))
		writeError(w, http.StatusBadRequest, "invalid job ID format", CodeInvalidJobID)
		return primitive.NilObjectID, false
	}
	return jobID, true
}

// decodeDocument reads a JSON object from the request body.
// Numbers are kept as json.Number so integers survive without float rounding.
func (h *Handlers) decodeDocument(w http.ResponseWriter, r *http.Request) (job.Document, bool) {
	var doc job.Document
	dec := json.NewDecoder(r.Body)
	dec.UseNumber()
	if err := dec.Decode(&doc); err != nil {
		h.logger.Warn("failed to decode request body",
			slog.String("error", err.Error()),
		)
		writeError(w, http.StatusBadRequest, "invalid JSON body", CodeInvalidJSON)
		return nil, false
	}
	if doc == nil {
		doc = job.Document{}
	}
	return doc, true
}

// parsePage converts the page query value, falling back to 0.
func parsePage(raw string) int {
	page, err := strconv.Atoi(raw)
	if err != nil || page < 0 {
		return 0
	}
	return page
}

// writeJSON writes a JSON response.
func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		slog.Error("failed to encode JSON response", slog.String("error", err.Error()))
	}
}

// writeError writes an error response in the standard format.
func writeError(w http.ResponseWriter, status int, message, code string) {
	writeJSON(w, status, ErrorResponse{
		Error: message,
		Code:  code,
	})
}
