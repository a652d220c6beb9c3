// Package search composes the remote creature lookup, the stats store
// row, and the derived image URL into one result.
package search

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/mauricio-alvarez/pokeserve/internal/model"
	"github.com/mauricio-alvarez/pokeserve/internal/pokeapi"
	"github.com/mauricio-alvarez/pokeserve/internal/store"
)

// Fetcher retrieves the canonical creature document from the remote API.
type Fetcher interface {
	Fetch(ctx context.Context, name string) (*pokeapi.Pokemon, error)
}

// Service orchestrates one search: remote fetch, then stats lookup, then
// image URL derivation, strictly in that order with no caching.
type Service struct {
	store        store.Store
	fetcher      Fetcher
	imageBaseURL string
	log          *zap.Logger
}

// New creates the search service around process-wide handles.
func New(st store.Store, f Fetcher, imageBaseURL string, logger *zap.Logger) *Service {
	return &Service{
		store:        st,
		fetcher:      f,
		imageBaseURL: strings.TrimRight(imageBaseURL, "/"),
		log:          logger,
	}
}

// Search looks up one creature by name. A remote failure aborts the
// search; a missing stats row does not, the result just carries an empty
// stats sequence.
func (s *Service) Search(ctx context.Context, name string) (*model.SearchResult, error) {
	lower := strings.ToLower(name)

	p, err := s.fetcher.Fetch(ctx, lower)
	if err != nil {
		return nil, err
	}

	stats, err := s.store.StatsByName(ctx, lower)
	if err != nil {
		return nil, err
	}

	result := &model.SearchResult{
		Name:  p.Name,
		Stats: stats,
		Image: s.ImageURL(name),
	}
	s.log.Info("search completed",
		zap.String("name", p.Name),
		zap.Int("stats", len(stats)))
	return result, nil
}

// ImageURL derives the predictable image location for a name. Pure
// formatting; the file is not checked for existence.
func (s *Service) ImageURL(name string) string {
	return fmt.Sprintf("%s/images/%s/0.jpg", s.imageBaseURL, strings.ToLower(name))
}
