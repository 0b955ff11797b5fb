// Package leaderboard derives per-user rankings from persisted analyses.
package leaderboard

import (
	"context"
	"math"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/resumerank/backend/pkg/analysis"
	"github.com/resumerank/backend/pkg/auth"
)

// Entry is one ranking row. Entries are recomputed from the full analysis set
// on every request and never stored.
type Entry struct {
	UserName      string    `json:"userName"`
	Score         float64   `json:"score"`
	TotalAnalyses int       `json:"totalAnalyses"`
	LastAnalysis  time.Time `json:"lastAnalysis"`
}

// DefaultLimit bounds the leaderboard size.
const DefaultLimit = 50

// UseCase computes the leaderboard.
type UseCase interface {
	TopEntries(ctx context.Context, limit int) ([]Entry, error)
}

type service struct {
	analyses analysis.Repository
	users    auth.UserRepository
}

func NewService(analyses analysis.Repository, users auth.UserRepository) UseCase {
	return &service{analyses: analyses, users: users}
}

type ownerGroup struct {
	owner         uuid.UUID
	bestScore     int
	totalAnalyses int
	lastAnalysis  time.Time
}

// TopEntries groups all analyses by owner, ranks owners by best score with
// recency breaking ties, truncates to limit and resolves display names.
// Owners that no longer resolve to a user are dropped; a vanished user must
// never abort the whole computation.
func (s *service) TopEntries(ctx context.Context, limit int) ([]Entry, error) {
	if limit <= 0 || limit > DefaultLimit {
		limit = DefaultLimit
	}

	records, err := s.analyses.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	byOwner := make(map[uuid.UUID]*ownerGroup)
	groups := make([]*ownerGroup, 0)
	for _, rec := range records {
		g, ok := byOwner[rec.OwnerID]
		if !ok {
			g = &ownerGroup{owner: rec.OwnerID}
			byOwner[rec.OwnerID] = g
			groups = append(groups, g)
		}
		if g.totalAnalyses == 0 || rec.MatchPercent > g.bestScore {
			g.bestScore = rec.MatchPercent
		}
		if rec.CreatedAt.After(g.lastAnalysis) {
			g.lastAnalysis = rec.CreatedAt
		}
		g.totalAnalyses++
	}

	sort.SliceStable(groups, func(i, j int) bool {
		if groups[i].bestScore != groups[j].bestScore {
			return groups[i].bestScore > groups[j].bestScore
		}
		return groups[i].lastAnalysis.After(groups[j].lastAnalysis)
	})
	if len(groups) > limit {
		groups = groups[:limit]
	}

	entries := make([]Entry, 0, len(groups))
	for _, g := range groups {
		user, err := s.users.GetByID(ctx, g.owner)
		if err != nil {
			continue
		}
		entries = append(entries, Entry{
			UserName:      user.Name,
			Score:         math.Round(float64(g.bestScore)*100) / 100,
			TotalAnalyses: g.totalAnalyses,
			LastAnalysis:  g.lastAnalysis,
		})
	}
	return entries, nil
}
