package store

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	_ "modernc.org/sqlite"
)

func seedStats(t *testing.T, path string) {
	t.Helper()

	db, err := sql.Open("sqlite", path)
	require.NoError(t, err)
	defer db.Close()

	_, err = db.Exec(`
		CREATE TABLE IF NOT EXISTS stats (
			name    TEXT PRIMARY KEY,
			hp      INTEGER NOT NULL,
			attack  INTEGER NOT NULL,
			defense INTEGER NOT NULL,
			sp_atk  INTEGER NOT NULL,
			sp_def  INTEGER NOT NULL,
			speed   INTEGER NOT NULL
		)
	`)
	require.NoError(t, err)

	_, err = db.Exec(
		`INSERT INTO stats (name, hp, attack, defense, sp_atk, sp_def, speed) VALUES
			('pikachu', 35, 55, 40, 50, 50, 90),
			('bulbasaur', 45, 49, 49, 65, 65, 45)`,
	)
	require.NoError(t, err)
}

func TestSQLiteStore(t *testing.T) {
	path := filepath.Join(t.TempDir(), "stats.db")
	seedStats(t, path)

	st, err := NewSQLite(path, zap.NewNop())
	require.NoError(t, err)
	defer st.Close()

	ctx := context.Background()

	t.Run("returns six stats in fixed order", func(t *testing.T) {
		stats, err := st.StatsByName(ctx, "pikachu")
		require.NoError(t, err)
		assert.Equal(t, []int{35, 55, 40, 50, 50, 90}, stats)
	})

	t.Run("match is case-insensitive", func(t *testing.T) {
		stats, err := st.StatsByName(ctx, "PiKaChU")
		require.NoError(t, err)
		assert.Len(t, stats, 6)
	})

	t.Run("no match yields empty slice, not an error", func(t *testing.T) {
		stats, err := st.StatsByName(ctx, "missingno")
		require.NoError(t, err)
		assert.Empty(t, stats)
	})

	t.Run("ping succeeds while open", func(t *testing.T) {
		assert.NoError(t, st.Ping(ctx))
	})
}
