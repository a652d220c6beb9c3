package monitor

import (
	"database/sql"
	"fmt"
	"time"

	_ "modernc.org/sqlite"
)

// History persists probe samples so that the trend graphs can plot real
// collected data instead of synthetic series.
type History struct {
	db *sql.DB
}

// OpenHistory opens (and creates if needed) the sample history database.
func OpenHistory(path string) (*History, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("history: open: %w", err)
	}

	db.SetMaxOpenConns(1)
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("history: set WAL: %w", err)
	}

	if _, err := db.Exec(`
		CREATE TABLE IF NOT EXISTS probe_history (
			id          INTEGER PRIMARY KEY AUTOINCREMENT,
			endpoint    TEXT NOT NULL,
			status_code INTEGER NOT NULL,
			latency_ms  REAL NOT NULL,
			success     INTEGER NOT NULL,
			probed_at   INTEGER NOT NULL
		)
	`); err != nil {
		db.Close()
		return nil, fmt.Errorf("history: create table: %w", err)
	}
	if _, err := db.Exec(`CREATE INDEX IF NOT EXISTS idx_probe_endpoint_at ON probe_history(endpoint, probed_at)`); err != nil {
		db.Close()
		return nil, fmt.Errorf("history: create index: %w", err)
	}

	return &History{db: db}, nil
}

// Append records one sample.
func (h *History) Append(s Sample) error {
	success := 0
	if s.Success {
		success = 1
	}
	_, err := h.db.Exec(
		`INSERT INTO probe_history (endpoint, status_code, latency_ms, success, probed_at)
		 VALUES (?, ?, ?, ?, ?)`,
		s.Endpoint, s.StatusCode, s.LatencyMS, success, s.Timestamp.Unix(),
	)
	if err != nil {
		return fmt.Errorf("history: append: %w", err)
	}
	return nil
}

// DailyAverages returns one value per calendar day with recorded samples
// inside the window, oldest first, with MM/DD labels. For "latency" the
// value is the mean latency; otherwise it is the availability percentage
// over 2xx/5xx-classified probes for that day.
func (h *History) DailyAverages(endpoint, metric string, days int) ([]float64, []string, error) {
	since := time.Now().AddDate(0, 0, -days).Unix()

	query := `
		SELECT date(probed_at, 'unixepoch') AS day,
		       AVG(latency_ms),
		       SUM(CASE WHEN status_code = 200 THEN 1 ELSE 0 END),
		       SUM(CASE WHEN status_code >= 500 THEN 1 ELSE 0 END)
		FROM probe_history
		WHERE endpoint = ? AND probed_at >= ?
		GROUP BY day
		ORDER BY day`

	rows, err := h.db.Query(query, endpoint, since)
	if err != nil {
		return nil, nil, fmt.Errorf("history: daily averages: %w", err)
	}
	defer rows.Close()

	var data []float64
	var labels []string
	for rows.Next() {
		var day string
		var avgLatency float64
		var successes, errors int
		if err := rows.Scan(&day, &avgLatency, &successes, &errors); err != nil {
			return nil, nil, fmt.Errorf("history: scan row: %w", err)
		}

		if metric == "latency" {
			data = append(data, avgLatency)
		} else {
			relevant := successes + errors
			if relevant == 0 {
				continue
			}
			data = append(data, float64(successes)/float64(relevant)*100)
		}

		if d, err := time.Parse("2006-01-02", day); err == nil {
			labels = append(labels, d.Format("01/02"))
		} else {
			labels = append(labels, day)
		}
	}
	return data, labels, rows.Err()
}

// Close closes the history database.
func (h *History) Close() error {
	return h.db.Close()
}
