package httpapi

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/bnema/assistant-shell/internal/domain"
)

type errorResponse struct {
	Error string `json:"error"`
}

// WindowResponse is one entry of GET /windows.
type WindowResponse struct {
	ID      string `json:"id"`
	Kind    string `json:"kind"`
	Project string `json:"project,omitempty"`
	Title   string `json:"title"`
	Route   string `json:"route"`
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleSync(w http.ResponseWriter, r *http.Request) {
	var req domain.SyncRequest
	if err := decodeBody(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	if err := s.deps.Sync.Apply(r.Context(), req); err != nil {
		s.writeDomainError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleAction(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Action string `json:"action"`
		Data   string `json:"data"`
	}
	if err := decodeBody(w, r, &body); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	kind, err := domain.ParseActionKind(body.Action)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	if err := s.deps.Publisher.Publish(r.Context(), domain.NewActionMessage(kind, body.Data)); err != nil {
		s.writeDomainError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusAccepted)
}

func (s *Server) handleCompletion(w http.ResponseWriter, r *http.Request) {
	if s.deps.Completions == nil {
		writeError(w, http.StatusNotImplemented, domain.ErrNoCompleter)
		return
	}

	var req domain.CompletionRequest
	if err := decodeBody(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	completion, err := s.deps.Completions.Generate(r.Context(), req)
	if err != nil {
		s.writeDomainError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, completion)
}

func (s *Server) handleWindows(w http.ResponseWriter, _ *http.Request) {
	handles := s.deps.Windows.List()
	windows := make([]WindowResponse, 0, len(handles))
	for _, handle := range handles {
		project, _ := handle.Window.Project()
		windows = append(windows, WindowResponse{
			ID:      handle.ID,
			Kind:    handle.Window.Type().String(),
			Project: project,
			Title:   handle.Window.Title(),
			Route:   handle.Route,
		})
	}
	writeJSON(w, http.StatusOK, windows)
}

func (s *Server) writeDomainError(w http.ResponseWriter, r *http.Request, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, domain.ErrInvalidSyncPath),
		errors.Is(err, domain.ErrInvalidPayload),
		errors.Is(err, domain.ErrUnknownAction):
		status = http.StatusBadRequest
	case errors.Is(err, domain.ErrUnhandledAction),
		errors.Is(err, domain.ErrNoCompleter):
		status = http.StatusNotImplemented
	}

	if status >= http.StatusInternalServerError {
		s.logger.Error().Err(err).Str("path", r.URL.Path).Msg("request failed")
	}
	writeError(w, status, err)
}

func decodeBody(w http.ResponseWriter, r *http.Request, dst any) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return fmt.Errorf("decode request body: %w", err)
	}
	return nil
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

func writeError(w http.ResponseWriter, status int, err error) {
	writeJSON(w, status, errorResponse{Error: err.Error()})
}
