package api

import (
	"context"
	"encoding/json"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/mauricio-alvarez/pokeserve/internal/model"
)

func (s *Server) handleSearch(w http.ResponseWriter, r *http.Request) {
	var req model.SearchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if strings.TrimSpace(req.PokemonName) == "" {
		writeError(w, http.StatusBadRequest, "Pokemon_Name is required")
		return
	}

	result, err := s.search.Search(r.Context(), req.PokemonName)
	if err != nil {
		s.log.Error("search failed", zap.String("name", req.PokemonName), zap.Error(err))
		writeError(w, http.StatusInternalServerError, "Internal Server Error")
		return
	}

	writeJSON(w, http.StatusOK, result)
}

// handleImageAlt serves the fallback image {name}.png. This is the only
// endpoint with an explicit not-found path.
func (s *Server) handleImageAlt(w http.ResponseWriter, r *http.Request) {
	name := strings.ToLower(r.PathValue("name"))
	path := filepath.Join(s.imageDir, name+".png")

	if _, err := os.Stat(path); err != nil {
		writeJSON(w, http.StatusNotFound, &model.ErrorResponse{Detail: "Image not found"})
		return
	}

	w.Header().Set("Content-Type", "image/png")
	http.ServeFile(w, r, path)
}

// handleHealth always answers 200; store failures are reported in the
// payload, never as an HTTP error.
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	resp := model.HealthResponse{
		Status:    "healthy",
		Service:   serviceName,
		Database:  "connected",
		Timestamp: float64(time.Now().UnixMilli()) / 1000.0,
	}

	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()
	if err := s.store.Ping(ctx); err != nil {
		s.log.Error("health check failed", zap.Error(err))
		resp.Status = "unhealthy"
		resp.Database = "disconnected"
		resp.Error = err.Error()
	}

	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleRoot(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"message": "Pokemon API",
		"version": "1.0.0",
		"endpoints": map[string]string{
			"search":    "/poke/search",
			"image-alt": "/image-alt/{name}",
			"images":    "/images/{path}",
			"health":    "/health",
		},
	})
}
