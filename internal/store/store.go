// Package store provides access to the relational stats table. Two
// backends are supported: MySQL for the managed store and SQLite for
// local development.
package store

import "context"

// Store is a read-only handle on the stats table.
type Store interface {
	// StatsByName returns the six base stats for the first row whose
	// name matches case-insensitively, or an empty slice when no row
	// matches. Additional matches are ignored.
	StatsByName(ctx context.Context, name string) ([]int, error)

	// Ping reports store reachability for the health endpoint.
	Ping(ctx context.Context) error

	Close() error
}

const statsQuery = `
	SELECT hp, attack, defense, sp_atk, sp_def, speed
	FROM stats
	WHERE LOWER(name) = LOWER(?)
	LIMIT 1`
