// Package eventapitest provides a mock event API server for testing.
// It implements the event endpoints the application consumes:
// GET /event, POST /event/create, PATCH /event/update/{id} and
// DELETE /event/delete/{id}.
package eventapitest

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sort"
	"strings"
	"sync"

	"github.com/google/uuid"
)

// Record is the wire form of an event as the API stores and returns it.
type Record struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	Start       string `json:"start"`
	End         string `json:"end"`
	Color       string `json:"color,omitempty"`
}

// Server is a mock event API server for testing.
type Server struct {
	*httptest.Server
	mu     sync.RWMutex
	events map[string]Record

	// failStatus, when non-zero, is returned for the next request instead
	// of handling it. It resets after one use.
	failStatus int
}

// NewServer creates a started mock event API server.
func NewServer() *Server {
	s := &Server{
		events: make(map[string]Record),
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/", s.handleRequest)

	s.Server = httptest.NewServer(mux)
	return s
}

// Seed stores records directly, assigning ids to any without one.
func (s *Server) Seed(records ...Record) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, r := range records {
		if r.ID == "" {
			r.ID = uuid.NewString()
		}
		s.events[r.ID] = r
	}
}

// Records returns the stored records ordered by id.
func (s *Server) Records() []Record {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]Record, 0, len(s.events))
	for _, r := range s.events {
		out = append(out, r)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// FailNext makes the server answer the next request with the given status.
func (s *Server) FailNext(status int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.failStatus = status
}

func (s *Server) handleRequest(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	if s.failStatus != 0 {
		status := s.failStatus
		s.failStatus = 0
		s.mu.Unlock()
		http.Error(w, http.StatusText(status), status)
		return
	}
	s.mu.Unlock()

	path := strings.Trim(r.URL.Path, "/")
	parts := strings.Split(path, "/")

	switch {
	case path == "event" && r.Method == http.MethodGet:
		s.listEvents(w)
	case path == "event/create" && r.Method == http.MethodPost:
		s.createEvent(w, r)
	case len(parts) == 3 && parts[0] == "event" && parts[1] == "update" && r.Method == http.MethodPatch:
		s.updateEvent(w, r, parts[2])
	case len(parts) == 3 && parts[0] == "event" && parts[1] == "delete" && r.Method == http.MethodDelete:
		s.deleteEvent(w, parts[2])
	default:
		http.Error(w, "unsupported endpoint", http.StatusNotFound)
	}
}

func (s *Server) listEvents(w http.ResponseWriter) {
	writeJSON(w, http.StatusOK, s.Records())
}

func (s *Server) createEvent(w http.ResponseWriter, r *http.Request) {
	var rec Record
	if err := json.NewDecoder(r.Body).Decode(&rec); err != nil {
		http.Error(w, "invalid JSON", http.StatusBadRequest)
		return
	}
	if rec.Title == "" {
		http.Error(w, "title is required", http.StatusBadRequest)
		return
	}

	rec.ID = uuid.NewString()

	s.mu.Lock()
	s.events[rec.ID] = rec
	s.mu.Unlock()

	writeJSON(w, http.StatusCreated, rec)
}

func (s *Server) updateEvent(w http.ResponseWriter, r *http.Request, id string) {
	var rec Record
	if err := json.NewDecoder(r.Body).Decode(&rec); err != nil {
		http.Error(w, "invalid JSON", http.StatusBadRequest)
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.events[id]; !ok {
		http.Error(w, "event not found", http.StatusNotFound)
		return
	}

	rec.ID = id
	s.events[id] = rec
	writeJSON(w, http.StatusOK, rec)
}

func (s *Server) deleteEvent(w http.ResponseWriter, id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.events[id]; !ok {
		http.Error(w, "event not found", http.StatusNotFound)
		return
	}

	delete(s.events, id)
	w.WriteHeader(http.StatusNoContent)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
