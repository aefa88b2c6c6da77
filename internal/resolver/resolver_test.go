package resolver_test

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/vmunix/arrhub/internal/arr"
	"github.com/vmunix/arrhub/internal/arr/mocks"
	"github.com/vmunix/arrhub/internal/resolver"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newMovieMock(t *testing.T) *mocks.MockService {
	ctrl := gomock.NewController(t)
	svc := mocks.NewMockService(ctrl)
	svc.EXPECT().Catalog().Return(arr.CatalogMovie).AnyTimes()
	return svc
}

func int64Ptr(n int64) *int64 { return &n }
func intPtr(n int) *int       { return &n }

func TestResolve_ByID(t *testing.T) {
	svc := newMovieMock(t)
	svc.EXPECT().
		GetByID(gomock.Any(), int64(7)).
		Return(&arr.Record{ID: 7, Title: "The Matrix", Year: 1999, TmdbID: 603, SizeOnDisk: 100}, nil)

	res := resolver.New(svc, testLogger())
	rec, err := res.Resolve(context.Background(), resolver.Identity{ID: int64Ptr(7)})

	require.NoError(t, err)
	assert.Equal(t, int64(7), rec.ID)
	assert.Equal(t, int64(603), rec.ExternalID)
	assert.True(t, rec.OnDisk)
}

func TestResolve_ByID_NotFound(t *testing.T) {
	svc := newMovieMock(t)
	svc.EXPECT().GetByID(gomock.Any(), int64(999)).Return(nil, arr.ErrNotFound)

	res := resolver.New(svc, testLogger())
	_, err := res.Resolve(context.Background(), resolver.Identity{ID: int64Ptr(999)})

	assert.ErrorIs(t, err, arr.ErrNotFound)
}

func TestResolve_ByExternalID(t *testing.T) {
	svc := newMovieMock(t)
	svc.EXPECT().ListAll(gomock.Any()).Return([]arr.Record{
		{ID: 1, Title: "Heat", TmdbID: 949},
		{ID: 2, Title: "The Matrix", TmdbID: 603},
	}, nil)

	res := resolver.New(svc, testLogger())
	rec, err := res.Resolve(context.Background(), resolver.Identity{ExternalID: int64Ptr(603)})

	require.NoError(t, err)
	assert.Equal(t, int64(2), rec.ID)
}

func TestResolve_ByExternalID_NoMatch(t *testing.T) {
	svc := newMovieMock(t)
	svc.EXPECT().ListAll(gomock.Any()).Return([]arr.Record{{ID: 1, TmdbID: 949}}, nil)

	res := resolver.New(svc, testLogger())
	_, err := res.Resolve(context.Background(), resolver.Identity{ExternalID: int64Ptr(603)})

	assert.ErrorIs(t, err, arr.ErrNotFound)
}

// Internal id outranks external id and title when several are supplied.
func TestResolve_SpecificityOrder(t *testing.T) {
	svc := newMovieMock(t)
	svc.EXPECT().
		GetByID(gomock.Any(), int64(5)).
		Return(&arr.Record{ID: 5, Title: "Heat"}, nil)

	res := resolver.New(svc, testLogger())
	rec, err := res.Resolve(context.Background(), resolver.Identity{
		ID:         int64Ptr(5),
		ExternalID: int64Ptr(603),
		Title:      "The Matrix",
	})

	require.NoError(t, err)
	assert.Equal(t, "Heat", rec.Title)
}

// The worked scoring example: "matrix" is a substring of both normalized
// candidates (+50 each); the year bonus applies only to the 1999 entry.
func TestResolve_ScoringExample(t *testing.T) {
	svc := newMovieMock(t)
	svc.EXPECT().Lookup(gomock.Any(), "Matrix").Return([]arr.Record{
		{ID: 10, Title: "The Matrix", Year: 1999, TmdbID: 603},
		{ID: 11, Title: "The Matrix Reloaded", Year: 2003, TmdbID: 604},
	}, nil)

	res := resolver.New(svc, testLogger())
	rec, err := res.Resolve(context.Background(), resolver.Identity{Title: "Matrix", Year: intPtr(1999)})

	require.NoError(t, err)
	assert.Equal(t, "The Matrix", rec.Title)
}

func TestResolve_ExactMatchBeatsSubstring(t *testing.T) {
	svc := newMovieMock(t)
	svc.EXPECT().Lookup(gomock.Any(), "The Matrix").Return([]arr.Record{
		{ID: 11, Title: "The Matrix Reloaded", Year: 2003},
		{ID: 10, Title: "The Matrix", Year: 1999},
	}, nil)

	res := resolver.New(svc, testLogger())
	rec, err := res.Resolve(context.Background(), resolver.Identity{Title: "The Matrix"})

	require.NoError(t, err)
	assert.Equal(t, int64(10), rec.ID)
}

// Equal scores keep the first candidate in input order, every time.
func TestResolve_TieKeepsFirstSeen(t *testing.T) {
	candidates := []arr.Record{
		{ID: 20, Title: "Dune Messiah", Year: 2026},
		{ID: 21, Title: "Dune Awakening", Year: 2026},
	}

	for range 5 {
		svc := newMovieMock(t)
		svc.EXPECT().Lookup(gomock.Any(), "Dune").Return(candidates, nil)

		res := resolver.New(svc, testLogger())
		rec, err := res.Resolve(context.Background(), resolver.Identity{Title: "Dune"})

		require.NoError(t, err)
		assert.Equal(t, int64(20), rec.ID)
	}
}

// Lookup-only suggestions without an internal id are not resolvable.
func TestResolve_SkipsCandidatesWithoutInternalID(t *testing.T) {
	svc := newMovieMock(t)
	svc.EXPECT().Lookup(gomock.Any(), "Dune").Return([]arr.Record{
		{ID: 0, Title: "Dune", Year: 2021, TmdbID: 438631},
		{ID: 30, Title: "Dune Part Two", Year: 2024, TmdbID: 693134},
	}, nil)

	res := resolver.New(svc, testLogger())
	rec, err := res.Resolve(context.Background(), resolver.Identity{Title: "Dune"})

	require.NoError(t, err)
	assert.Equal(t, int64(30), rec.ID)
}

func TestResolve_NoLibraryCandidates(t *testing.T) {
	svc := newMovieMock(t)
	svc.EXPECT().Lookup(gomock.Any(), "Dune").Return([]arr.Record{
		{ID: 0, Title: "Dune", Year: 2021},
	}, nil)

	res := resolver.New(svc, testLogger())
	_, err := res.Resolve(context.Background(), resolver.Identity{Title: "Dune"})

	assert.ErrorIs(t, err, arr.ErrNotFound)
}

// A failed backend call must surface as unavailable, never as not-found.
func TestResolve_BackendFailureIsNotNotFound(t *testing.T) {
	svc := newMovieMock(t)
	svc.EXPECT().
		Lookup(gomock.Any(), "Dune").
		Return(nil, &arr.UnavailableError{Backend: "movie", Status: 503})

	res := resolver.New(svc, testLogger())
	_, err := res.Resolve(context.Background(), resolver.Identity{Title: "Dune"})

	require.Error(t, err)
	assert.True(t, arr.IsUnavailable(err))
	assert.NotErrorIs(t, err, arr.ErrNotFound)
}

// An empty identity is rejected before any backend call; the mock has no
// expectations, so any call would fail the test.
func TestResolve_AmbiguousInput(t *testing.T) {
	svc := newMovieMock(t)

	res := resolver.New(svc, testLogger())
	_, err := res.Resolve(context.Background(), resolver.Identity{})

	assert.ErrorIs(t, err, resolver.ErrAmbiguous)
}
