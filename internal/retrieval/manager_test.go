package retrieval

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"

	"go-booking-cache/internal/cache"
	"go-booking-cache/internal/config"
	"go-booking-cache/internal/interfaces/mock"
	"go-booking-cache/internal/models"
	"go-booking-cache/internal/remote"
	"go-booking-cache/internal/store/memory"
	"go-booking-cache/internal/timepolicy"
)

const testNow = 1_700_000_000

func fixedPolicy() *timepolicy.Policy {
	return timepolicy.New(func() time.Time { return time.Unix(testNow, 0) })
}

func bookingExpiringAt(reference string, expiry int64) models.BookingRecord {
	return models.BookingRecord{
		ShipReference: reference,
		ShipToken:     "token-" + reference,
		ExpiryTime:    models.Timestamp(expiry),
		Duration:      2430,
		Segments: []models.Segment{
			{ID: 1, OriginAndDestinationPair: models.OriginAndDestinationPair{
				Origin:      models.Location{Code: "AAA"},
				Destination: models.Location{Code: "BBB"},
			}},
		},
	}
}

type managerFixture struct {
	cache   *mock.MockBookingCache
	remote  *mock.MockRemoteSource
	manager *Manager
}

func newManagerFixture(t *testing.T) *managerFixture {
	ctrl := gomock.NewController(t)
	bookingCache := mock.NewMockBookingCache(ctrl)
	remoteSource := mock.NewMockRemoteSource(ctrl)

	return &managerFixture{
		cache:   bookingCache,
		remote:  remoteSource,
		manager: NewManager(bookingCache, remoteSource, fixedPolicy(), zap.NewNop()),
	}
}

func TestGetBooking_FreshCacheSkipsFetch(t *testing.T) {
	f := newManagerFixture(t)
	cached := bookingExpiringAt("CACHED", testNow+3600)

	f.cache.EXPECT().Load(gomock.Any()).Return(&cached, true, nil)
	f.remote.EXPECT().Fetch(gomock.Any()).Times(0)
	f.cache.EXPECT().Save(gomock.Any(), gomock.Any()).Times(0)

	result, err := f.manager.GetBooking(context.Background(), false)
	require.NoError(t, err)

	assert.Equal(t, models.SourceCache, result.Source)
	assert.False(t, result.IsExpired)
	assert.Equal(t, cached, result.Data)
}

func TestGetBooking_CacheExpiringNowIsStillFresh(t *testing.T) {
	f := newManagerFixture(t)
	cached := bookingExpiringAt("EDGE", testNow)

	f.cache.EXPECT().Load(gomock.Any()).Return(&cached, true, nil)

	result, err := f.manager.GetBooking(context.Background(), false)
	require.NoError(t, err)
	assert.Equal(t, models.SourceCache, result.Source)
}

func TestGetBooking_ExpiredCacheFetchesOnce(t *testing.T) {
	f := newManagerFixture(t)
	stale := bookingExpiringAt("STALE", testNow-1)
	fresh := bookingExpiringAt("FRESH", testNow+600)

	gomock.InOrder(
		f.cache.EXPECT().Load(gomock.Any()).Return(&stale, true, nil),
		f.remote.EXPECT().Fetch(gomock.Any()).Return(fresh, nil).Times(1),
		f.cache.EXPECT().Save(gomock.Any(), fresh).Return(nil).Times(1),
	)

	result, err := f.manager.GetBooking(context.Background(), false)
	require.NoError(t, err)

	assert.Equal(t, models.SourceService, result.Source)
	assert.False(t, result.IsExpired)
	assert.Equal(t, "FRESH", result.Data.ShipReference)
}

func TestGetBooking_EmptyCacheFetchesOnce(t *testing.T) {
	f := newManagerFixture(t)
	fresh := bookingExpiringAt("FRESH", testNow+600)

	f.cache.EXPECT().Load(gomock.Any()).Return(nil, false, nil)
	f.remote.EXPECT().Fetch(gomock.Any()).Return(fresh, nil).Times(1)
	f.cache.EXPECT().Save(gomock.Any(), fresh).Return(nil)

	result, err := f.manager.GetBooking(context.Background(), false)
	require.NoError(t, err)

	assert.Equal(t, models.SourceService, result.Source)
	assert.Equal(t, fresh, result.Data)
}

func TestGetBooking_ForcedSkipsLoad(t *testing.T) {
	f := newManagerFixture(t)
	fresh := bookingExpiringAt("FORCED", testNow+600)

	f.cache.EXPECT().Load(gomock.Any()).Times(0)
	f.remote.EXPECT().Fetch(gomock.Any()).Return(fresh, nil).Times(1)
	f.cache.EXPECT().Save(gomock.Any(), fresh).Return(nil).Times(1)

	result, err := f.manager.GetBooking(context.Background(), true)
	require.NoError(t, err)
	assert.Equal(t, models.SourceService, result.Source)
}

func TestRefreshBooking_AlwaysFetches(t *testing.T) {
	f := newManagerFixture(t)
	fresh := bookingExpiringAt("REFRESHED", testNow+600)

	f.cache.EXPECT().Load(gomock.Any()).Times(0)
	f.remote.EXPECT().Fetch(gomock.Any()).Return(fresh, nil)
	f.cache.EXPECT().Save(gomock.Any(), fresh).Return(nil)

	result, err := f.manager.RefreshBooking(context.Background())
	require.NoError(t, err)
	assert.Equal(t, models.SourceService, result.Source)
	assert.Equal(t, "REFRESHED", result.Data.ShipReference)
}

func TestGetBooking_LoadErrorFallsBackToRemote(t *testing.T) {
	tests := []struct {
		name    string
		loadErr error
	}{
		{"storage read", fmt.Errorf("%w: %w", cache.ErrStorageRead, errors.New("disk gone"))},
		{"deserialization", fmt.Errorf("%w: %w", cache.ErrDeserialization, errors.New("bad json"))},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newManagerFixture(t)
			fresh := bookingExpiringAt("FRESH", testNow+600)

			f.cache.EXPECT().Load(gomock.Any()).Return(nil, false, tt.loadErr)
			f.remote.EXPECT().Fetch(gomock.Any()).Return(fresh, nil)
			f.cache.EXPECT().Save(gomock.Any(), fresh).Return(nil)

			result, err := f.manager.GetBooking(context.Background(), false)
			require.NoError(t, err)
			assert.Equal(t, models.SourceService, result.Source)
		})
	}
}

func TestGetBooking_SaveErrorDoesNotAffectResult(t *testing.T) {
	f := newManagerFixture(t)
	fresh := bookingExpiringAt("FRESH", testNow+600)

	f.cache.EXPECT().Load(gomock.Any()).Return(nil, false, nil)
	f.remote.EXPECT().Fetch(gomock.Any()).Return(fresh, nil)
	f.cache.EXPECT().Save(gomock.Any(), fresh).
		Return(fmt.Errorf("%w: %w", cache.ErrStorageWrite, errors.New("quota exceeded")))

	result, err := f.manager.GetBooking(context.Background(), false)
	require.NoError(t, err)

	assert.Equal(t, fresh, result.Data)
	assert.Equal(t, models.SourceService, result.Source)
	assert.False(t, result.IsExpired)
}

func TestGetBooking_FetchErrorPropagates(t *testing.T) {
	f := newManagerFixture(t)
	fetchErr := fmt.Errorf("%w: connection refused", remote.ErrFetch)

	f.cache.EXPECT().Load(gomock.Any()).Return(nil, false, nil)
	f.remote.EXPECT().Fetch(gomock.Any()).Return(models.BookingRecord{}, fetchErr)
	f.cache.EXPECT().Save(gomock.Any(), gomock.Any()).Times(0)

	result, err := f.manager.GetBooking(context.Background(), false)
	assert.Nil(t, result)
	assert.ErrorIs(t, err, remote.ErrFetch)
}

func TestGetBooking_FetchedExpiredRecordIsFlaggedAndSaved(t *testing.T) {
	f := newManagerFixture(t)
	expired := bookingExpiringAt("OLD", testNow-3600)

	f.cache.EXPECT().Load(gomock.Any()).Return(nil, false, nil)
	f.remote.EXPECT().Fetch(gomock.Any()).Return(expired, nil)
	f.cache.EXPECT().Save(gomock.Any(), expired).Return(nil).Times(1)

	result, err := f.manager.GetBooking(context.Background(), false)
	require.NoError(t, err)

	assert.Equal(t, models.SourceService, result.Source)
	assert.True(t, result.IsExpired)
	assert.Equal(t, expired, result.Data)
}

func TestClearCache(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		f := newManagerFixture(t)
		f.cache.EXPECT().Clear(gomock.Any()).Return(nil)

		assert.NoError(t, f.manager.ClearCache(context.Background()))
	})

	t.Run("failure propagates", func(t *testing.T) {
		f := newManagerFixture(t)
		clearErr := fmt.Errorf("%w: %w", cache.ErrClear, errors.New("read-only"))
		f.cache.EXPECT().Clear(gomock.Any()).Return(clearErr)

		err := f.manager.ClearCache(context.Background())
		assert.ErrorIs(t, err, cache.ErrClear)
	})
}

func TestManager_EndToEndWithMemoryStore(t *testing.T) {
	store, err := memory.NewBigCacheStore(&config.MemoryConfig{Size: 1}, 0, zap.NewNop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })

	ctrl := gomock.NewController(t)
	remoteSource := mock.NewMockRemoteSource(ctrl)
	fresh := bookingExpiringAt("E2E", testNow+600)

	bookingCache := cache.NewBookingCache(store, zap.NewNop())
	manager := NewManager(bookingCache, remoteSource, fixedPolicy(), zap.NewNop())
	ctx := context.Background()

	// Only the first read reaches the remote source
	remoteSource.EXPECT().Fetch(gomock.Any()).Return(fresh, nil).Times(1)

	first, err := manager.GetBooking(ctx, false)
	require.NoError(t, err)
	assert.Equal(t, models.SourceService, first.Source)

	second, err := manager.GetBooking(ctx, false)
	require.NoError(t, err)
	assert.Equal(t, models.SourceCache, second.Source)
	assert.Equal(t, first.Data, second.Data)

	require.NoError(t, manager.ClearCache(ctx))
	_, found, err := bookingCache.Load(ctx)
	require.NoError(t, err)
	assert.False(t, found)
}

func TestNewManager_NilPolicyUsesWallClock(t *testing.T) {
	manager := NewManager(nil, nil, nil, zap.NewNop())
	require.NotNil(t, manager.policy)
	assert.True(t, manager.policy.IsExpired(models.Timestamp(1)))
}
