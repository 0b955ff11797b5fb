package analysis

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Analysis is the persisted outcome of one resume-vs-job-description
// evaluation. Records are append-only: created once by the orchestrator and
// never updated or deleted.
type Analysis struct {
	ID              uuid.UUID `json:"id"`
	OwnerID         uuid.UUID `json:"ownerId"`
	MatchPercent    int       `json:"matchPercent"`
	MissingKeywords []string  `json:"missingKeywords"`
	Suggestions     string    `json:"suggestions"`
	Summary         string    `json:"summary"`
	CreatedAt       time.Time `json:"createdAt"`
}

// Repository is the persistence port for analyses.
type Repository interface {
	Create(ctx context.Context, a Analysis) (Analysis, error)
	ListAll(ctx context.Context) ([]Analysis, error)
}
