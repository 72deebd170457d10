package api

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/google/uuid"

	"github.com/MikeSquared-Agency/scribe/internal/processor"
	"github.com/MikeSquared-Agency/scribe/internal/whatsapp"
)

// analyzeChat handles POST /api/v1/chats/analyze: the full pipeline over an
// uploaded export.
func (s *Server) analyzeChat(w http.ResponseWriter, r *http.Request) {
	uploadsTotal.WithLabelValues("analyze").Inc()

	filename, content, err := s.readChatUpload(w, r)
	if err != nil {
		var ue *uploadError
		if errors.As(err, &ue) {
			writeError(w, ue.status, ue.msg)
			return
		}
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	result, err := s.proc.ProcessUpload(r.Context(), filename, content)
	if err != nil {
		switch {
		case errors.Is(err, processor.ErrNoMessages):
			emptyParsesTotal.Inc()
			writeError(w, http.StatusBadRequest,
				"No valid messages found in the file. Please ensure this is a WhatsApp chat export.")
		case errors.Is(err, processor.ErrAnalysisUnavailable):
			writeError(w, http.StatusInternalServerError,
				"AI analyzer not configured. Please set ANTHROPIC_API_KEY")
		default:
			analysesTotal.WithLabelValues("error").Inc()
			writeError(w, http.StatusInternalServerError, "Analysis failed: "+err.Error())
		}
		return
	}
	analysesTotal.WithLabelValues("ok").Inc()

	resp := map[string]any{
		"success": true,
		"metadata": map[string]any{
			"participants":  result.Parsed.Participants,
			"message_count": result.Parsed.MessageCount,
			"date_range":    result.Parsed.DateRange,
		},
		"analysis": result.Analysis,
	}
	if result.ChatID != uuid.Nil {
		resp["chat_id"] = result.ChatID.String()
	}

	writeJSON(w, http.StatusOK, resp)
}

// parseChat handles POST /api/v1/chats/parse: structure extraction without
// AI analysis, useful for quick metadata checks.
func (s *Server) parseChat(w http.ResponseWriter, r *http.Request) {
	uploadsTotal.WithLabelValues("parse").Inc()

	_, content, err := s.readChatUpload(w, r)
	if err != nil {
		var ue *uploadError
		if errors.As(err, &ue) {
			writeError(w, ue.status, ue.msg)
			return
		}
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	parsed := whatsapp.Parse(content).Result()
	if parsed.MessageCount == 0 {
		emptyParsesTotal.Inc()
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"data":    parsed,
	})
}

// listChats handles GET /api/v1/chats: recent persisted analyses.
func (s *Server) listChats(w http.ResponseWriter, r *http.Request) {
	if s.store == nil {
		writeError(w, http.StatusServiceUnavailable, "Persistence not configured")
		return
	}

	limit := 20
	if v := r.URL.Query().Get("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 || n > 100 {
			writeError(w, http.StatusBadRequest, "Invalid limit")
			return
		}
		limit = n
	}

	records, err := s.store.ListRecent(r.Context(), limit)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to list chats")
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"chats":   records,
		"count":   len(records),
	})
}
