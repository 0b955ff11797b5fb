package leaderboard

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/resumerank/backend/pkg/analysis"
	"github.com/resumerank/backend/pkg/auth"
)

type memAnalyses struct {
	records []analysis.Analysis
	err     error
}

func (m *memAnalyses) Create(_ context.Context, a analysis.Analysis) (analysis.Analysis, error) {
	m.records = append(m.records, a)
	return a, nil
}

func (m *memAnalyses) ListAll(_ context.Context) ([]analysis.Analysis, error) {
	return m.records, m.err
}

type memUsers struct {
	users map[uuid.UUID]auth.User
}

func (m *memUsers) Create(_ context.Context, u auth.User) error {
	m.users[u.ID] = u
	return nil
}

func (m *memUsers) GetByEmail(_ context.Context, _ string) (auth.User, error) {
	return auth.User{}, auth.ErrNotFound
}

func (m *memUsers) GetByID(_ context.Context, id uuid.UUID) (auth.User, error) {
	u, ok := m.users[id]
	if !ok {
		return auth.User{}, auth.ErrNotFound
	}
	return u, nil
}

func record(owner uuid.UUID, percent int, created time.Time) analysis.Analysis {
	return analysis.Analysis{
		ID:           uuid.New(),
		OwnerID:      owner,
		MatchPercent: percent,
		CreatedAt:    created,
	}
}

func TestTopEntriesRanksByBestScoreThenRecency(t *testing.T) {
	alice := uuid.New()
	bob := uuid.New()
	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	analyses := &memAnalyses{records: []analysis.Analysis{
		record(alice, 90, base),
		record(bob, 90, base.Add(-time.Hour)),
		record(bob, 90, base.Add(time.Hour)),
	}}
	users := &memUsers{users: map[uuid.UUID]auth.User{
		alice: {ID: alice, Name: "Alice"},
		bob:   {ID: bob, Name: "Bob"},
	}}

	entries, err := NewService(analyses, users).TopEntries(context.Background(), 50)

	require.NoError(t, err)
	require.Len(t, entries, 2)
	// Equal best scores: the more recent analysis wins.
	assert.Equal(t, "Bob", entries[0].UserName)
	assert.Equal(t, 2, entries[0].TotalAnalyses)
	assert.Equal(t, base.Add(time.Hour), entries[0].LastAnalysis)
	assert.Equal(t, "Alice", entries[1].UserName)
}

func TestTopEntriesAggregatesPerOwner(t *testing.T) {
	owner := uuid.New()
	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	analyses := &memAnalyses{records: []analysis.Analysis{
		record(owner, 40, base),
		record(owner, 85, base.Add(time.Minute)),
		record(owner, 60, base.Add(2*time.Minute)),
	}}
	users := &memUsers{users: map[uuid.UUID]auth.User{owner: {ID: owner, Name: "Carol"}}}

	entries, err := NewService(analyses, users).TopEntries(context.Background(), 50)

	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, 85.0, entries[0].Score)
	assert.Equal(t, 3, entries[0].TotalAnalyses)
	assert.Equal(t, base.Add(2*time.Minute), entries[0].LastAnalysis)
}

func TestTopEntriesDropsVanishedUsers(t *testing.T) {
	known := uuid.New()
	ghost := uuid.New()
	base := time.Now().UTC()

	analyses := &memAnalyses{records: []analysis.Analysis{
		record(ghost, 99, base),
		record(known, 50, base),
	}}
	users := &memUsers{users: map[uuid.UUID]auth.User{known: {ID: known, Name: "Dave"}}}

	entries, err := NewService(analyses, users).TopEntries(context.Background(), 50)

	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "Dave", entries[0].UserName)
}

func TestTopEntriesTruncatesToLimit(t *testing.T) {
	base := time.Now().UTC()
	analyses := &memAnalyses{}
	users := &memUsers{users: map[uuid.UUID]auth.User{}}
	for i := 0; i < 10; i++ {
		owner := uuid.New()
		users.users[owner] = auth.User{ID: owner, Name: "user"}
		analyses.records = append(analyses.records, record(owner, i, base))
	}

	entries, err := NewService(analyses, users).TopEntries(context.Background(), 3)

	require.NoError(t, err)
	assert.Len(t, entries, 3)
	assert.Equal(t, 9.0, entries[0].Score)
}

func TestTopEntriesEmptySet(t *testing.T) {
	entries, err := NewService(&memAnalyses{}, &memUsers{users: map[uuid.UUID]auth.User{}}).
		TopEntries(context.Background(), 50)

	require.NoError(t, err)
	assert.Empty(t, entries)
	assert.NotNil(t, entries)
}

func TestTopEntriesPropagatesStorageError(t *testing.T) {
	analyses := &memAnalyses{err: errors.New("db down")}
	_, err := NewService(analyses, &memUsers{users: map[uuid.UUID]auth.User{}}).
		TopEntries(context.Background(), 50)

	require.Error(t, err)
}
