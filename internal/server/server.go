// Package server is the HTTP backend for the checklist: plain CRUD over the
// KV store, no derived state. All aggregation happens client-side.
package server

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/alexanderramin/trekops/internal/domain"
	"github.com/alexanderramin/trekops/internal/seed"
)

const staffKey = "staff:database"

// validateInputType rejects input type strings outside the accepted set.
// Empty means unset and passes; the client treats those as plain text.
func validateInputType(it domain.InputType) error {
	if it == "" || domain.ValidInputTypes[it] {
		return nil
	}
	return fmt.Errorf("unknown input type %q", it)
}

func trekKey(id string) string { return "trek:" + id }

func taskKey(trekID, taskID string) string { return "task:" + trekID + ":" + taskID }

func taskPrefix(trekID string) string { return "task:" + trekID + ":" }

// Server serves the trek, task, and staff endpoints over a KV store.
type Server struct {
	kv     *KV
	logger *slog.Logger
}

func NewServer(kv *KV, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	return &Server{kv: kv, logger: logger}
}

// Routes builds the request mux.
func (s *Server) Routes() *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /treks", s.listTreks)
	mux.HandleFunc("POST /treks", s.createTrek)
	mux.HandleFunc("GET /treks/{id}", s.getTrek)
	mux.HandleFunc("PUT /treks/{id}", s.updateTrek)
	mux.HandleFunc("DELETE /treks/{id}", s.deleteTrek)

	mux.HandleFunc("GET /treks/{trekId}/tasks", s.listTasks)
	mux.HandleFunc("PUT /treks/{trekId}/tasks/{taskId}", s.updateTask)
	mux.HandleFunc("POST /treks/{trekId}/tasks/bulk", s.bulkUpsertTasks)

	mux.HandleFunc("GET /staff", s.getStaff)
	mux.HandleFunc("PUT /staff", s.putStaff)

	return mux
}

func (s *Server) listTreks(w http.ResponseWriter, r *http.Request) {
	values, err := s.kv.List(r.Context(), "trek:")
	if err != nil {
		s.internalError(w, r, "listing treks", err)
		return
	}
	treks := make([]domain.Trek, 0, len(values))
	for _, value := range values {
		var trek domain.Trek
		if err := json.Unmarshal(value, &trek); err != nil {
			s.internalError(w, r, "decoding trek record", err)
			return
		}
		treks = append(treks, trek)
	}
	writeJSON(w, http.StatusOK, treks)
}

func (s *Server) createTrek(w http.ResponseWriter, r *http.Request) {
	var trek domain.Trek
	if err := json.NewDecoder(r.Body).Decode(&trek); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}
	if trek.Name == "" {
		writeError(w, http.StatusBadRequest, "trek name is required", "")
		return
	}
	if trek.ID == "" {
		trek.ID = uuid.NewString()
	}
	now := time.Now().UTC()
	trek.CreatedAt = now
	trek.UpdatedAt = now

	if err := s.setJSON(r, trekKey(trek.ID), trek); err != nil {
		s.internalError(w, r, "storing trek", err)
		return
	}
	writeJSON(w, http.StatusCreated, trek)
}

func (s *Server) getTrek(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	value, ok, err := s.kv.Get(r.Context(), trekKey(id))
	if err != nil {
		s.internalError(w, r, "reading trek", err)
		return
	}
	if !ok {
		writeError(w, http.StatusNotFound, "trek not found", "no record for id "+id)
		return
	}
	writeRaw(w, http.StatusOK, value)
}

func (s *Server) updateTrek(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	value, ok, err := s.kv.Get(r.Context(), trekKey(id))
	if err != nil {
		s.internalError(w, r, "reading trek", err)
		return
	}
	if !ok {
		writeError(w, http.StatusNotFound, "trek not found", "no record for id "+id)
		return
	}
	var existing domain.Trek
	if err := json.Unmarshal(value, &existing); err != nil {
		s.internalError(w, r, "decoding trek record", err)
		return
	}

	var trek domain.Trek
	if err := json.NewDecoder(r.Body).Decode(&trek); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}
	trek.ID = id
	trek.CreatedAt = existing.CreatedAt
	trek.UpdatedAt = time.Now().UTC()

	if err := s.setJSON(r, trekKey(id), trek); err != nil {
		s.internalError(w, r, "storing trek", err)
		return
	}
	writeJSON(w, http.StatusOK, trek)
}

// deleteTrek removes the trek and every task under it.
func (s *Server) deleteTrek(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	_, ok, err := s.kv.Get(r.Context(), trekKey(id))
	if err != nil {
		s.internalError(w, r, "reading trek", err)
		return
	}
	if !ok {
		writeError(w, http.StatusNotFound, "trek not found", "no record for id "+id)
		return
	}
	if err := s.kv.Delete(r.Context(), trekKey(id)); err != nil {
		s.internalError(w, r, "deleting trek", err)
		return
	}
	if err := s.kv.DeletePrefix(r.Context(), taskPrefix(id)); err != nil {
		s.internalError(w, r, "deleting trek tasks", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) listTasks(w http.ResponseWriter, r *http.Request) {
	trekID := r.PathValue("trekId")
	values, err := s.kv.List(r.Context(), taskPrefix(trekID))
	if err != nil {
		s.internalError(w, r, "listing tasks", err)
		return
	}
	tasks := make([]domain.Task, 0, len(values))
	for _, value := range values {
		var task domain.Task
		if err := json.Unmarshal(value, &task); err != nil {
			s.internalError(w, r, "decoding task record", err)
			return
		}
		tasks = append(tasks, task)
	}
	domain.SortTasks(tasks)
	writeJSON(w, http.StatusOK, tasks)
}

// updateTask overlays the request body onto the stored record: only the
// JSON fields present in the body change.
func (s *Server) updateTask(w http.ResponseWriter, r *http.Request) {
	trekID := r.PathValue("trekId")
	taskID := r.PathValue("taskId")

	value, ok, err := s.kv.Get(r.Context(), taskKey(trekID, taskID))
	if err != nil {
		s.internalError(w, r, "reading task", err)
		return
	}
	if !ok {
		writeError(w, http.StatusNotFound, "task not found", "no record for id "+taskID)
		return
	}

	var patch map[string]json.RawMessage
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal(value, &fields); err != nil {
		s.internalError(w, r, "decoding task record", err)
		return
	}
	for k, v := range patch {
		fields[k] = v
	}
	// Path segments win over whatever the body claims.
	fields["id"], _ = json.Marshal(taskID)

	merged, err := json.Marshal(fields)
	if err != nil {
		s.internalError(w, r, "encoding task record", err)
		return
	}
	var task domain.Task
	if err := json.Unmarshal(merged, &task); err != nil {
		writeError(w, http.StatusBadRequest, "merged task is invalid", err.Error())
		return
	}
	if err := validateInputType(task.InputType); err != nil {
		writeError(w, http.StatusBadRequest, "merged task is invalid", err.Error())
		return
	}

	if err := s.kv.Set(r.Context(), taskKey(trekID, taskID), merged); err != nil {
		s.internalError(w, r, "storing task", err)
		return
	}
	writeJSON(w, http.StatusOK, task)
}

func (s *Server) bulkUpsertTasks(w http.ResponseWriter, r *http.Request) {
	trekID := r.PathValue("trekId")

	var tasks []domain.Task
	if err := json.NewDecoder(r.Body).Decode(&tasks); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}
	for _, task := range tasks {
		if task.ID == "" {
			writeError(w, http.StatusBadRequest, "task id is required", "every task in a bulk upsert needs an id")
			return
		}
		if err := validateInputType(task.InputType); err != nil {
			writeError(w, http.StatusBadRequest, "task "+task.ID+" is invalid", err.Error())
			return
		}
	}
	for _, task := range tasks {
		if err := s.setJSON(r, taskKey(trekID, task.ID), task); err != nil {
			s.internalError(w, r, "storing task", err)
			return
		}
	}
	s.logger.Info("bulk task upsert", "trek_id", trekID, "count", len(tasks))
	w.WriteHeader(http.StatusNoContent)
}

// getStaff returns the staff directory, seeding the default one on first
// read.
func (s *Server) getStaff(w http.ResponseWriter, r *http.Request) {
	value, ok, err := s.kv.Get(r.Context(), staffKey)
	if err != nil {
		s.internalError(w, r, "reading staff directory", err)
		return
	}
	if ok {
		writeRaw(w, http.StatusOK, value)
		return
	}

	staff := seed.DefaultStaff()
	if err := s.setJSON(r, staffKey, staff); err != nil {
		s.internalError(w, r, "seeding staff directory", err)
		return
	}
	s.logger.Info("seeded default staff directory")
	writeJSON(w, http.StatusOK, staff)
}

func (s *Server) putStaff(w http.ResponseWriter, r *http.Request) {
	var staff domain.StaffDirectory
	if err := json.NewDecoder(r.Body).Decode(&staff); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}
	if err := s.setJSON(r, staffKey, staff); err != nil {
		s.internalError(w, r, "storing staff directory", err)
		return
	}
	writeJSON(w, http.StatusOK, staff)
}

func (s *Server) setJSON(r *http.Request, key string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encoding %q: %w", key, err)
	}
	return s.kv.Set(r.Context(), key, data)
}

func (s *Server) internalError(w http.ResponseWriter, r *http.Request, action string, err error) {
	s.logger.Error("request failed", "method", r.Method, "path", r.URL.Path, "action", action, "error", err)
	writeError(w, http.StatusInternalServerError, "internal error", action)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeRaw(w http.ResponseWriter, status int, body []byte) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	w.Write(body)
}

func writeError(w http.ResponseWriter, status int, msg, details string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	body := map[string]string{"error": msg}
	if details != "" {
		body["details"] = details
	}
	json.NewEncoder(w).Encode(body)
}
