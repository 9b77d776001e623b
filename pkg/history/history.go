// Package history persists the per-run Row sequence to Postgres, one
// snappy-compressed JSON blob per run, so completed runs can be diffed or
// replayed without keeping every Reporter in memory.
package history

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"hash/crc32"

	"github.com/golang/snappy"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/SirJonasM/fpga-router/pkg/router"
)

// Store persists and retrieves run histories in Postgres.
type Store struct {
	pool *pgxpool.Pool
}

// Open connects to databaseURL and returns a ready Store. Callers own the
// pool's lifetime and should call Store.Close when done.
func Open(ctx context.Context, databaseURL string) (*Store, error) {
	pool, err := pgxpool.New(ctx, databaseURL)
	if err != nil {
		return nil, fmt.Errorf("connect history store: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping history store: %w", err)
	}
	return &Store{pool: pool}, nil
}

// Close releases the underlying connection pool.
func (s *Store) Close() {
	s.pool.Close()
}

// SaveRun compresses rows and inserts them under runID, overwriting any
// prior save for the same id.
func (s *Store) SaveRun(ctx context.Context, runID string, rows []router.Row) error {
	raw, err := json.Marshal(rows)
	if err != nil {
		return fmt.Errorf("marshal run %s: %w", runID, err)
	}
	compressed := snappy.Encode(nil, raw)
	checksum := crc32.ChecksumIEEE(compressed)

	query := `
		INSERT INTO run_history (run_id, rows_compressed, checksum, row_count)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (run_id) DO UPDATE SET
			rows_compressed = EXCLUDED.rows_compressed,
			checksum = EXCLUDED.checksum,
			row_count = EXCLUDED.row_count
	`
	if _, err := s.pool.Exec(ctx, query, runID, compressed, checksum, len(rows)); err != nil {
		return fmt.Errorf("save run %s: %w", runID, err)
	}
	return nil
}

// LoadRun retrieves and decompresses the row history for runID.
func (s *Store) LoadRun(ctx context.Context, runID string) ([]router.Row, error) {
	query := `SELECT rows_compressed, checksum FROM run_history WHERE run_id = $1`

	var compressed []byte
	var checksum uint32
	err := s.pool.QueryRow(ctx, query, runID).Scan(&compressed, &checksum)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("run not found: %s", runID)
	}
	if err != nil {
		return nil, fmt.Errorf("load run %s: %w", runID, err)
	}
	if crc32.ChecksumIEEE(compressed) != checksum {
		return nil, fmt.Errorf("run %s failed checksum verification", runID)
	}

	raw, err := snappy.Decode(nil, compressed)
	if err != nil {
		return nil, fmt.Errorf("decompress run %s: %w", runID, err)
	}

	var rows []router.Row
	if err := json.Unmarshal(raw, &rows); err != nil {
		return nil, fmt.Errorf("unmarshal run %s: %w", runID, err)
	}
	return rows, nil
}
