package acquire_test

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/vmunix/arrhub/internal/acquire"
	"github.com/vmunix/arrhub/internal/arr"
	"github.com/vmunix/arrhub/internal/arr/mocks"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

var testDefaults = acquire.Defaults{
	RootFolderPath:   "/movies",
	QualityProfileID: 4,
}

func newMovieMock(t *testing.T) *mocks.MockService {
	ctrl := gomock.NewController(t)
	svc := mocks.NewMockService(ctrl)
	svc.EXPECT().Catalog().Return(arr.CatalogMovie).AnyTimes()
	return svc
}

func TestRequest_AlreadyOnDisk(t *testing.T) {
	svc := newMovieMock(t)
	svc.EXPECT().ListAll(gomock.Any()).Return([]arr.Record{
		{ID: 1, Title: "The Matrix", TmdbID: 603, SizeOnDisk: 4_500_000_000},
	}, nil)
	// No Create expectation: issuing one would fail the test.

	c := acquire.New(svc, testDefaults, testLogger())
	result, err := c.Request(context.Background(), 603)

	require.NoError(t, err)
	assert.True(t, result.AlreadyPresent)
	assert.True(t, result.HasFile)
	assert.False(t, result.Created)
}

// Present without a file is assumed already enqueued; no re-trigger.
func TestRequest_AlreadyQueued(t *testing.T) {
	svc := newMovieMock(t)
	svc.EXPECT().ListAll(gomock.Any()).Return([]arr.Record{
		{ID: 1, Title: "The Matrix", TmdbID: 603, SizeOnDisk: 0},
	}, nil)

	c := acquire.New(svc, testDefaults, testLogger())
	result, err := c.Request(context.Background(), 603)

	require.NoError(t, err)
	assert.True(t, result.AlreadyPresent)
	assert.False(t, result.HasFile)
	assert.False(t, result.Created)
}

func TestRequest_CreatesWhenMissing(t *testing.T) {
	svc := newMovieMock(t)
	svc.EXPECT().ListAll(gomock.Any()).Return([]arr.Record{
		{ID: 1, TmdbID: 949},
	}, nil)

	var got arr.AddRequest
	svc.EXPECT().
		Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, req arr.AddRequest) (*arr.Record, error) {
			got = req
			return &arr.Record{ID: 2, Title: "The Matrix", TmdbID: 603}, nil
		})

	c := acquire.New(svc, testDefaults, testLogger())
	result, err := c.Request(context.Background(), 603)

	require.NoError(t, err)
	assert.True(t, result.Created)
	assert.False(t, result.AlreadyPresent)

	assert.Equal(t, int64(603), got.ExternalID)
	assert.Equal(t, "/movies", got.RootFolderPath)
	assert.Equal(t, int64(4), got.QualityProfileID)
	assert.True(t, got.Monitored)
	assert.True(t, got.SearchOnAdd)
}

// Two requests in a row issue exactly one create: the second call sees the
// first's listing entry and short-circuits.
func TestRequest_Idempotent(t *testing.T) {
	svc := newMovieMock(t)

	gomock.InOrder(
		svc.EXPECT().ListAll(gomock.Any()).Return([]arr.Record{}, nil),
		svc.EXPECT().
			Create(gomock.Any(), gomock.Any()).
			Return(&arr.Record{ID: 9, Title: "The Matrix", TmdbID: 603}, nil),
		svc.EXPECT().ListAll(gomock.Any()).Return([]arr.Record{
			{ID: 9, Title: "The Matrix", TmdbID: 603},
		}, nil),
	)

	c := acquire.New(svc, testDefaults, testLogger())

	first, err := c.Request(context.Background(), 603)
	require.NoError(t, err)
	assert.True(t, first.Created)

	second, err := c.Request(context.Background(), 603)
	require.NoError(t, err)
	assert.True(t, second.AlreadyPresent)
	assert.False(t, second.Created)
}

func TestRequest_ListingFailureSurfaces(t *testing.T) {
	svc := newMovieMock(t)
	svc.EXPECT().ListAll(gomock.Any()).
		Return(nil, &arr.UnavailableError{Backend: "movie", Status: 502})

	c := acquire.New(svc, testDefaults, testLogger())
	_, err := c.Request(context.Background(), 603)

	assert.True(t, arr.IsUnavailable(err))
}

func TestRequest_CreateFailureSurfaces(t *testing.T) {
	svc := newMovieMock(t)
	svc.EXPECT().ListAll(gomock.Any()).Return(nil, nil)
	svc.EXPECT().Create(gomock.Any(), gomock.Any()).
		Return(nil, &arr.UnavailableError{Backend: "movie", Status: 400, Message: "invalid profile"})

	c := acquire.New(svc, testDefaults, testLogger())
	_, err := c.Request(context.Background(), 603)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid profile")
}
