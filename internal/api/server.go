package api

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/MikeSquared-Agency/scribe/internal/processor"
	"github.com/MikeSquared-Agency/scribe/internal/store"
)

type Server struct {
	router         *chi.Mux
	port           int
	proc           *processor.Processor
	store          *store.Store
	maxUploadBytes int64
}

func NewServer(port int, proc *processor.Processor, st *store.Store, maxUploadBytes int64) *Server {
	router := chi.NewRouter()
	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)

	s := &Server{
		router:         router,
		port:           port,
		proc:           proc,
		store:          st,
		maxUploadBytes: maxUploadBytes,
	}

	router.Get("/health", s.health)
	router.Get("/api/v1/scribe/status", s.status)
	router.Handle("/metrics", promhttp.Handler())

	router.Route("/api/v1/chats", func(r chi.Router) {
		r.Post("/analyze", s.analyzeChat)
		r.Post("/parse", s.parseChat)
		r.Get("/", s.listChats)
	})

	return s
}

func (s *Server) Start() error {
	addr := fmt.Sprintf(":%d", s.port)
	slog.Info("API server starting", "addr", addr)
	return http.ListenAndServe(addr, s.router)
}

func (s *Server) health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) status(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"agent":       "scribe",
		"status":      "ready",
		"persistence": s.store != nil,
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]any{"success": false, "error": msg})
}
