package postgres

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/resumerank/backend/pkg/analysis"
)

// AnalysisRepository persists analysis records. Records are append-only: the
// repository exposes no update or delete path.
type AnalysisRepository struct {
	pool *pgxpool.Pool
}

func NewAnalysisRepository(pool *pgxpool.Pool) (*AnalysisRepository, error) {
	r := &AnalysisRepository{pool: pool}
	if err := r.ensureSchema(context.Background()); err != nil {
		return nil, err
	}
	return r, nil
}

func (r *AnalysisRepository) ensureSchema(ctx context.Context) error {
	// owner_id carries no FK on purpose: the leaderboard must keep working
	// when a user vanishes, dropping the orphaned rows at read time.
	_, err := r.pool.Exec(ctx, `
CREATE TABLE IF NOT EXISTS analyses (
	id UUID PRIMARY KEY,
	owner_id UUID NOT NULL,
	match_percent INTEGER NOT NULL,
	missing_keywords JSONB NOT NULL,
	suggestions TEXT NOT NULL,
	summary TEXT NOT NULL,
	created_at TIMESTAMPTZ NOT NULL
);
CREATE INDEX IF NOT EXISTS analyses_owner_id_idx ON analyses (owner_id);
`)
	return err
}

func (r *AnalysisRepository) Create(ctx context.Context, a analysis.Analysis) (analysis.Analysis, error) {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	if a.CreatedAt.IsZero() {
		a.CreatedAt = time.Now().UTC()
	}
	if a.MissingKeywords == nil {
		a.MissingKeywords = []string{}
	}
	keywordsJSON, err := json.Marshal(a.MissingKeywords)
	if err != nil {
		return analysis.Analysis{}, err
	}
	_, err = r.pool.Exec(ctx, `
INSERT INTO analyses (id, owner_id, match_percent, missing_keywords, suggestions, summary, created_at)
VALUES ($1, $2, $3, $4, $5, $6, $7)
`, a.ID, a.OwnerID, a.MatchPercent, keywordsJSON, a.Suggestions, a.Summary, a.CreatedAt)
	if err != nil {
		return analysis.Analysis{}, err
	}
	return a, nil
}

func (r *AnalysisRepository) ListAll(ctx context.Context) ([]analysis.Analysis, error) {
	rows, err := r.pool.Query(ctx, `
SELECT id, owner_id, match_percent, missing_keywords, suggestions, summary, created_at
FROM analyses
`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []analysis.Analysis
	for rows.Next() {
		var a analysis.Analysis
		var keywordsBytes []byte
		var created time.Time
		if err := rows.Scan(&a.ID, &a.OwnerID, &a.MatchPercent, &keywordsBytes, &a.Suggestions, &a.Summary, &created); err != nil {
			return nil, err
		}
		if err := json.Unmarshal(keywordsBytes, &a.MissingKeywords); err != nil {
			a.MissingKeywords = []string{}
		}
		a.CreatedAt = created.UTC()
		items = append(items, a)
	}
	return items, rows.Err()
}
