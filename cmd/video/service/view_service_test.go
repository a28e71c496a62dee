package service

import (
	"context"
	"testing"

	"vidtube.com/cmd/model"
	"vidtube.com/pkg/errno"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type viewFixture struct {
	svc     *ViewService
	videos  *fakeVideoRepo
	views   *fakeViewRepo
	history *fakeWatchHistoryRepo
	cache   *fakeInfoCache
}

func newViewFixture(recordRepeat bool) *viewFixture {
	videos := newFakeVideoRepo()
	history := &fakeWatchHistoryRepo{}
	views := newFakeViewRepo(videos, history)
	cache := newFakeInfoCache()
	return &viewFixture{
		svc:     NewViewService(views, history, videos, cache, recordRepeat),
		videos:  videos,
		views:   views,
		history: history,
		cache:   cache,
	}
}

func TestRecordViewCountsOnce(t *testing.T) {
	ctx := context.Background()
	fx := newViewFixture(false)
	require.NoError(t, fx.videos.Create(ctx, &model.Video{VideoId: 1, UserId: 9}))

	counted, err := fx.svc.RecordView(ctx, 1, 7)
	require.NoError(t, err)
	assert.True(t, counted)

	// Repeat views by the same viewer move nothing.
	for i := 0; i < 5; i++ {
		counted, err = fx.svc.RecordView(ctx, 1, 7)
		require.NoError(t, err)
		assert.False(t, counted)
	}

	video, err := fx.videos.FindById(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, int64(1), video.VisitCount)
	assert.Equal(t, 1, fx.history.countFor(7, 1))
}

func TestRecordViewDistinctViewers(t *testing.T) {
	ctx := context.Background()
	fx := newViewFixture(false)
	require.NoError(t, fx.videos.Create(ctx, &model.Video{VideoId: 1, UserId: 9}))

	for viewerId := int64(1); viewerId <= 4; viewerId++ {
		counted, err := fx.svc.RecordView(ctx, 1, viewerId)
		require.NoError(t, err)
		assert.True(t, counted)
	}

	video, err := fx.videos.FindById(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, int64(4), video.VisitCount)
}

func TestRecordViewMissingVideo(t *testing.T) {
	ctx := context.Background()
	fx := newViewFixture(false)

	_, err := fx.svc.RecordView(ctx, 999, 7)
	require.Error(t, err)
	assert.EqualValues(t, errno.NotFoundErrCode, errno.ConvertErr(err).ErrCode)
}

func TestRecordViewAnonymousViewer(t *testing.T) {
	ctx := context.Background()
	fx := newViewFixture(false)
	require.NoError(t, fx.videos.Create(ctx, &model.Video{VideoId: 1, UserId: 9}))

	counted, err := fx.svc.RecordView(ctx, 1, 0)
	require.NoError(t, err)
	assert.False(t, counted)

	video, err := fx.videos.FindById(ctx, 1)
	require.NoError(t, err)
	assert.Zero(t, video.VisitCount)
	assert.Zero(t, fx.history.countFor(0, 1))
}

// A failed first view must leave the counter, the dedup claim and the watch
// history untouched, so the next attempt can still count.
func TestRecordViewFailureLeavesNoPartialState(t *testing.T) {
	ctx := context.Background()
	fx := newViewFixture(false)
	require.NoError(t, fx.videos.Create(ctx, &model.Video{VideoId: 1, UserId: 9}))

	fx.views.failNext = errors.New("deadlock")
	_, err := fx.svc.RecordView(ctx, 1, 7)
	require.Error(t, err)

	video, err := fx.videos.FindById(ctx, 1)
	require.NoError(t, err)
	assert.Zero(t, video.VisitCount)
	assert.Zero(t, fx.history.countFor(7, 1))

	// The retry wins cleanly.
	counted, err := fx.svc.RecordView(ctx, 1, 7)
	require.NoError(t, err)
	assert.True(t, counted)

	video, err = fx.videos.FindById(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, int64(1), video.VisitCount)
	assert.Equal(t, 1, fx.history.countFor(7, 1))
}

func TestRecordViewRepeatHistoryPolicy(t *testing.T) {
	ctx := context.Background()
	fx := newViewFixture(true)
	require.NoError(t, fx.videos.Create(ctx, &model.Video{VideoId: 1, UserId: 9}))

	for i := 0; i < 3; i++ {
		_, err := fx.svc.RecordView(ctx, 1, 7)
		require.NoError(t, err)
	}

	// The counter still dedups, but every visit lands in the history.
	video, err := fx.videos.FindById(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, int64(1), video.VisitCount)
	assert.Equal(t, 3, fx.history.countFor(7, 1))
}

func TestRecordViewInvalidatesInfoCache(t *testing.T) {
	ctx := context.Background()
	fx := newViewFixture(false)
	video := &model.Video{VideoId: 1, UserId: 9}
	require.NoError(t, fx.videos.Create(ctx, video))
	require.NoError(t, fx.cache.Set(ctx, video))

	_, err := fx.svc.RecordView(ctx, 1, 7)
	require.NoError(t, err)
	_, ok, err := fx.cache.Get(ctx, 1)
	require.NoError(t, err)
	assert.False(t, ok)

	// The second call is a no-op and leaves the cache alone.
	invalidationsBefore := fx.cache.invalidations
	_, err = fx.svc.RecordView(ctx, 1, 7)
	require.NoError(t, err)
	assert.Equal(t, invalidationsBefore, fx.cache.invalidations)
}
