// Package api is the HTTP layer of the service.
package api

import (
	"encoding/json"
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/mauricio-alvarez/pokeserve/internal/model"
	"github.com/mauricio-alvarez/pokeserve/internal/search"
	"github.com/mauricio-alvarez/pokeserve/internal/store"
)

const serviceName = "pokemon-api"

// Server routes requests to the search service and the image tree. Every
// request is wrapped with timing and one log line on entry and exit.
type Server struct {
	search   *search.Service
	store    store.Store
	imageDir string
	mux      *http.ServeMux
	log      *zap.Logger
}

// NewServer creates the HTTP server around process-wide handles.
func NewServer(svc *search.Service, st store.Store, imageDir string, logger *zap.Logger) *Server {
	s := &Server{
		search:   svc,
		store:    st,
		imageDir: imageDir,
		mux:      http.NewServeMux(),
		log:      logger,
	}
	s.routes()
	return s
}

func (s *Server) routes() {
	s.mux.HandleFunc("POST /poke/search", s.handleSearch)
	s.mux.HandleFunc("GET /image-alt/{name}", s.handleImageAlt)
	s.mux.Handle("GET /images/", http.StripPrefix("/images/", http.FileServer(http.Dir(s.imageDir))))
	s.mux.HandleFunc("GET /health", s.handleHealth)
	s.mux.HandleFunc("GET /{$}", s.handleRoot)
}

// statusRecorder captures the status code for the exit log line.
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	// CORS, open to any origin
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
	w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

	if r.Method == http.MethodOptions {
		w.WriteHeader(http.StatusOK)
		return
	}

	s.log.Info("incoming request",
		zap.String("method", r.Method),
		zap.String("path", r.URL.Path),
		zap.String("remote", r.RemoteAddr))

	rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
	s.mux.ServeHTTP(rec, r)

	elapsed := float64(time.Since(start).Microseconds()) / 1000.0
	s.log.Info("request completed",
		zap.String("method", r.Method),
		zap.String("path", r.URL.Path),
		zap.Int("status", rec.status),
		zap.Float64("duration_ms", elapsed))
}

func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, &model.ErrorResponse{Detail: msg, Code: status})
}
