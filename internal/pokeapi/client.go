// Package pokeapi is a minimal client for the public PokeAPI.
package pokeapi

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"go.uber.org/zap"
)

// Pokemon is the slice of the remote document this service consumes.
// Name is the canonical lowercase name as PokeAPI knows it.
type Pokemon struct {
	ID     int    `json:"id"`
	Name   string `json:"name"`
	Height int    `json:"height"`
	Weight int    `json:"weight"`
}

// Client issues lookups against a PokeAPI-compatible endpoint.
type Client struct {
	baseURL string
	http    *http.Client
	log     *zap.Logger
}

// New creates a client. The http.Client carries no explicit timeout; a
// slow remote stalls the request, which is the documented behavior of
// this service.
func New(baseURL string, logger *zap.Logger) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{},
		log:     logger,
	}
}

// Fetch retrieves the creature document for the given name. The name is
// lowercased before templating the URL. Non-2xx responses and malformed
// bodies are returned as errors for the HTTP layer to surface.
func (c *Client) Fetch(ctx context.Context, name string) (*Pokemon, error) {
	url := fmt.Sprintf("%s/pokemon/%s", c.baseURL, strings.ToLower(name))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("pokeapi: build request: %w", err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("pokeapi: fetch %s: %w", name, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("pokeapi: HTTP %d: %s", resp.StatusCode, string(body))
	}

	var p Pokemon
	if err := json.NewDecoder(resp.Body).Decode(&p); err != nil {
		return nil, fmt.Errorf("pokeapi: decode response: %w", err)
	}

	c.log.Info("fetched creature", zap.String("name", p.Name), zap.Int("id", p.ID))
	return &p, nil
}
