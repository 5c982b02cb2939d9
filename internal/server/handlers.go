package server

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/hyperjump/youyaku/internal/models"
	"github.com/hyperjump/youyaku/internal/report"
	"github.com/hyperjump/youyaku/internal/sample"
)

func (s *Server) handleSummarize(w http.ResponseWriter, r *http.Request) {
	var req models.SummarizeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Text == "" {
		s.respondError(w, http.StatusBadRequest, "text is required")
		return
	}
	switch req.Mode {
	case "", models.ModeReport, models.ModePipeline, models.ModeBoth:
	default:
		s.respondError(w, http.StatusBadRequest, "invalid mode")
		return
	}
	s.logger.Debug("summarize request",
		zap.String("title", req.Title),
		zap.String("mode", string(req.Mode)),
		zap.Int("text_len", len(req.Text)))

	resp, err := s.service.Summarize(r.Context(), req.Title, req.Text, req.Mode)
	if err != nil {
		var buildErr *report.BuildError
		if errors.As(err, &buildErr) {
			s.respondError(w, http.StatusUnprocessableEntity, buildErr.Error())
			return
		}
		s.logger.Error("summarize failed", zap.Error(err))
		s.respondError(w, http.StatusInternalServerError, err.Error())
		return
	}
	s.respondJSON(w, http.StatusCreated, resp)
}

func (s *Server) handleGetSummary(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	sum, err := s.service.GetSummary(r.Context(), id)
	if err != nil {
		s.respondError(w, http.StatusNotFound, "summary not found")
		return
	}
	s.respondJSON(w, http.StatusOK, sum)
}

func (s *Server) handleGetCase(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	c, err := s.service.GetCase(r.Context(), id)
	if err != nil {
		s.respondError(w, http.StatusNotFound, "case not found")
		return
	}
	s.respondJSON(w, http.StatusOK, c)
}

func (s *Server) handleListSummaries(w http.ResponseWriter, r *http.Request) {
	offset, ok := s.queryInt(w, r, "offset")
	if !ok {
		return
	}
	limit, ok := s.queryInt(w, r, "limit")
	if !ok {
		return
	}
	sums, err := s.service.ListSummaries(r.Context(), offset, limit)
	if err != nil {
		s.logger.Error("list summaries failed", zap.Error(err))
		s.respondError(w, http.StatusInternalServerError, err.Error())
		return
	}
	if sums == nil {
		sums = []*models.Summary{}
	}
	s.respondJSON(w, http.StatusOK, map[string]interface{}{"summaries": sums})
}

func (s *Server) handleSearch(w http.ResponseWriter, r *http.Request) {
	var query models.SearchQuery
	if err := json.NewDecoder(r.Body).Decode(&query); err != nil {
		s.respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if query.Query == "" {
		s.respondError(w, http.StatusBadRequest, "query is required")
		return
	}
	s.logger.Debug("search request", zap.String("query", query.Query), zap.Int("limit", query.Limit))
	resp, err := s.service.Search(r.Context(), &query)
	if err != nil {
		s.logger.Error("search failed", zap.Error(err))
		s.respondError(w, http.StatusInternalServerError, err.Error())
		return
	}
	s.respondJSON(w, http.StatusOK, resp)
}

func (s *Server) handleStatus(w http.ResponseWriter, r *http.Request) {
	status, err := s.service.Status(r.Context())
	if err != nil {
		s.logger.Error("status failed", zap.Error(err))
		s.respondError(w, http.StatusInternalServerError, err.Error())
		return
	}
	s.respondJSON(w, http.StatusOK, status)
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// handleDemoSummary renders the extraction report for the embedded sample
// case. The body is computed fresh per request but is identical across
// requests and across GET and POST.
func (s *Server) handleDemoSummary(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(report.BuildString(sample.CaseText(), report.Options{})))
}

// queryInt parses an optional non-negative integer query parameter. A missing
// parameter is 0. On a bad value it writes a 400 response and returns ok=false.
func (s *Server) queryInt(w http.ResponseWriter, r *http.Request, name string) (int, bool) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return 0, true
	}
	v, err := strconv.Atoi(raw)
	if err != nil || v < 0 {
		s.respondError(w, http.StatusBadRequest, "invalid "+name)
		return 0, false
	}
	return v, true
}

func (s *Server) respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(data)
}

func (s *Server) respondError(w http.ResponseWriter, status int, message string) {
	s.respondJSON(w, status, map[string]string{"error": message})
}
