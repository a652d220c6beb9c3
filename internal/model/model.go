package model

// SearchRequest is the body of POST /poke/search. The field name is part
// of the public contract and cannot change.
type SearchRequest struct {
	PokemonName string `json:"Pokemon_Name"`
}

// SearchResult is the combined lookup result returned to the client.
// Stats is either empty (no matching row) or exactly six values in the
// order HP, Attack, Defense, Sp. Atk, Sp. Def, Speed.
type SearchResult struct {
	Name  string `json:"name"`
	Stats []int  `json:"stats"`
	Image string `json:"image"`
}

// HealthResponse is returned by GET /health. The endpoint itself always
// answers 200; Status carries the actual state.
type HealthResponse struct {
	Status    string  `json:"status"`
	Service   string  `json:"service"`
	Database  string  `json:"database"`
	Timestamp float64 `json:"timestamp"`
	Error     string  `json:"error,omitempty"`
}

// ErrorResponse is returned on error.
type ErrorResponse struct {
	Detail string `json:"detail"`
	Code   int    `json:"code,omitempty"`
}
