// Package store provides PostgreSQL access to the candidate pool.
package store

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/campushq/talent-match/internal/types"
)

// DB wraps a PostgreSQL connection pool
type DB struct {
	pool *pgxpool.Pool
}

// Connect establishes a connection pool to the database
func Connect(ctx context.Context, databaseURL string) (*DB, error) {
	pool, err := pgxpool.New(ctx, databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	// Verify connection
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &DB{pool: pool}, nil
}

// Close closes the connection pool
func (db *DB) Close() {
	if db.pool != nil {
		db.pool.Close()
	}
}

const candidateColumns = `id, name, skills, gpa, degree, university,
	graduation_year, location, repo_count, interests, cultural_fitness`

// ListCandidates returns the full candidate pool.
func (db *DB) ListCandidates(ctx context.Context) ([]types.CandidateProfile, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT `+candidateColumns+` FROM candidates ORDER BY created_at`)
	if err != nil {
		return nil, fmt.Errorf("failed to list candidates: %w", err)
	}
	defer rows.Close()

	return scanCandidates(rows)
}

// GetCandidatesByIDs returns the candidates for a vector-search hit list,
// preserving the order of ids. Unknown ids are skipped rather than erroring,
// since the embedding store can lag behind candidate deletions.
func (db *DB) GetCandidatesByIDs(ctx context.Context, ids []string) ([]types.CandidateProfile, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	rows, err := db.pool.Query(ctx,
		`SELECT `+candidateColumns+` FROM candidates WHERE id = ANY($1)`, ids)
	if err != nil {
		return nil, fmt.Errorf("failed to get candidates: %w", err)
	}
	defer rows.Close()

	candidates, err := scanCandidates(rows)
	if err != nil {
		return nil, err
	}

	byID := make(map[string]types.CandidateProfile, len(candidates))
	for _, c := range candidates {
		byID[c.ID] = c
	}

	ordered := make([]types.CandidateProfile, 0, len(ids))
	for _, id := range ids {
		if c, ok := byID[id]; ok {
			ordered = append(ordered, c)
		}
	}
	return ordered, nil
}

// scanCandidates reads candidate rows, decoding the cultural-fitness JSONB
// column when present.
func scanCandidates(rows pgx.Rows) ([]types.CandidateProfile, error) {
	var candidates []types.CandidateProfile
	for rows.Next() {
		var c types.CandidateProfile
		var fitnessJSON []byte
		err := rows.Scan(&c.ID, &c.Name, &c.Skills, &c.GPA, &c.Degree,
			&c.University, &c.GraduationYear, &c.Location, &c.RepoCount,
			&c.Interests, &fitnessJSON)
		if err != nil {
			return nil, fmt.Errorf("failed to scan candidate: %w", err)
		}
		if len(fitnessJSON) > 0 {
			var fitness types.CulturalFitness
			if err := json.Unmarshal(fitnessJSON, &fitness); err == nil {
				c.CulturalFitness = &fitness
			}
		}
		candidates = append(candidates, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read candidates: %w", err)
	}
	return candidates, nil
}
