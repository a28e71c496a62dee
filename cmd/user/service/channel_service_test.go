package service

import (
	"context"
	"sync"
	"testing"

	"vidtube.com/cmd/model"
	"vidtube.com/pkg/errno"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeUserRepo struct {
	mu    sync.Mutex
	users map[int64]*model.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[int64]*model.User)}
}

func (f *fakeUserRepo) Create(ctx context.Context, user *model.User) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.users[user.UserId] = user
	return nil
}

func (f *fakeUserRepo) FindById(ctx context.Context, userId int64) (*model.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.users[userId], nil
}

func (f *fakeUserRepo) FindByUserName(ctx context.Context, userName string) (*model.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, user := range f.users {
		if user.UserName == userName {
			return user, nil
		}
	}
	return nil, nil
}

func (f *fakeUserRepo) Exists(ctx context.Context, userId int64) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	_, ok := f.users[userId]
	return ok, nil
}

func (f *fakeUserRepo) Updates(ctx context.Context, userId int64, updates map[string]interface{}) error {
	return nil
}

func (f *fakeUserRepo) FindSummaries(ctx context.Context, userIds []int64) (map[int64]*model.UserSummary, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make(map[int64]*model.UserSummary, len(userIds))
	for _, id := range userIds {
		if user, ok := f.users[id]; ok {
			out[id] = user.Summary()
		}
	}
	return out, nil
}

type fakeSubscriptionProvider struct {
	subscribers map[int64]int64
	subscribed  map[int64]int64
	edges       map[[2]int64]bool
}

func (f *fakeSubscriptionProvider) IsSubscribed(ctx context.Context, subscriberId, channelId int64) (bool, error) {
	return f.edges[[2]int64{subscriberId, channelId}], nil
}

func (f *fakeSubscriptionProvider) CountSubscribers(ctx context.Context, channelId int64) (int64, error) {
	return f.subscribers[channelId], nil
}

func (f *fakeSubscriptionProvider) CountSubscribed(ctx context.Context, subscriberId int64) (int64, error) {
	return f.subscribed[subscriberId], nil
}

type fakeVideoStatsProvider struct {
	videos map[int64]*model.Video
}

func (f *fakeVideoStatsProvider) CountByOwner(ctx context.Context, userId int64) (int64, error) {
	var count int64
	for _, v := range f.videos {
		if v.UserId == userId {
			count++
		}
	}
	return count, nil
}

func (f *fakeVideoStatsProvider) SumVisitCountByOwner(ctx context.Context, userId int64) (int64, error) {
	var sum int64
	for _, v := range f.videos {
		if v.UserId == userId {
			sum += v.VisitCount
		}
	}
	return sum, nil
}

func (f *fakeVideoStatsProvider) FindByIds(ctx context.Context, videoIds []int64) ([]*model.Video, error) {
	out := make([]*model.Video, 0, len(videoIds))
	for _, id := range videoIds {
		if v, ok := f.videos[id]; ok {
			out = append(out, v)
		}
	}
	return out, nil
}

type fakeWatchHistoryProvider struct {
	entries []*model.WatchHistory
}

func (f *fakeWatchHistoryProvider) ListByUser(ctx context.Context, userId, pageNum, pageSize int64) ([]*model.WatchHistory, int64, error) {
	matched := make([]*model.WatchHistory, 0)
	for _, e := range f.entries {
		if e.UserId == userId {
			matched = append(matched, e)
		}
	}
	return matched, int64(len(matched)), nil
}

type channelFixture struct {
	svc     *ChannelService
	users   *fakeUserRepo
	subs    *fakeSubscriptionProvider
	videos  *fakeVideoStatsProvider
	history *fakeWatchHistoryProvider
}

func newChannelServiceForTest() *channelFixture {
	users := newFakeUserRepo()
	users.users[1] = &model.User{UserId: 1, UserName: "alice", FullName: "Alice"}
	users.users[9] = &model.User{UserId: 9, UserName: "creator", FullName: "The Creator"}
	subs := &fakeSubscriptionProvider{
		subscribers: map[int64]int64{9: 120},
		subscribed:  map[int64]int64{9: 3},
		edges:       map[[2]int64]bool{{1, 9}: true},
	}
	videos := &fakeVideoStatsProvider{videos: map[int64]*model.Video{
		100: {VideoId: 100, UserId: 9, Title: "a", VisitCount: 40},
		200: {VideoId: 200, UserId: 9, Title: "b", VisitCount: 60},
	}}
	history := &fakeWatchHistoryProvider{}
	return &channelFixture{
		svc:     NewChannelService(users, subs, videos, history),
		users:   users,
		subs:    subs,
		videos:  videos,
		history: history,
	}
}

func TestChannelProfile(t *testing.T) {
	ctx := context.Background()
	f := newChannelServiceForTest()

	profile, err := f.svc.Profile(ctx, "creator", 1)
	require.NoError(t, err)
	assert.Equal(t, int64(9), profile.User.UserId)
	assert.Equal(t, int64(120), profile.SubscriberCount)
	assert.Equal(t, int64(3), profile.SubscribedCount)
	assert.True(t, profile.IsSubscribed)

	t.Run("AnonymousViewer", func(t *testing.T) {
		profile, err := f.svc.Profile(ctx, "creator", 0)
		require.NoError(t, err)
		assert.False(t, profile.IsSubscribed)
	})

	t.Run("UnknownChannel", func(t *testing.T) {
		_, err := f.svc.Profile(ctx, "nobody", 1)
		require.Error(t, err)
		assert.EqualValues(t, errno.NotFoundErrCode, errno.ConvertErr(err).ErrCode)
	})
}

func TestChannelStats(t *testing.T) {
	ctx := context.Background()
	f := newChannelServiceForTest()

	stats, err := f.svc.Stats(ctx, 9)
	require.NoError(t, err)
	assert.Equal(t, int64(2), stats.TotalVideos)
	assert.Equal(t, int64(100), stats.TotalViews)
	assert.Equal(t, int64(120), stats.TotalSubscribers)

	_, err = f.svc.Stats(ctx, 999)
	require.Error(t, err)
	assert.EqualValues(t, errno.NotFoundErrCode, errno.ConvertErr(err).ErrCode)
}

func TestWatchHistoryJoinsVideos(t *testing.T) {
	ctx := context.Background()
	f := newChannelServiceForTest()
	f.history.entries = []*model.WatchHistory{
		{WatchHistoryId: 1, UserId: 1, VideoId: 100},
		{WatchHistoryId: 2, UserId: 1, VideoId: 777}, // deleted since
	}

	items, total, err := f.svc.WatchHistory(ctx, 1, 1, 10)
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)
	require.Len(t, items, 2)

	assert.Equal(t, int64(100), items[0].Video.VideoId)
	assert.Equal(t, "creator", items[0].Owner.UserName)

	// The deleted video keeps its history row but has no details.
	assert.Nil(t, items[1].Video)
	assert.Nil(t, items[1].Owner)
}

func TestUserCreate(t *testing.T) {
	ctx := context.Background()
	f := newChannelServiceForTest()
	svc := NewUserService(f.users)

	user, err := svc.Create(ctx, "carol", "Carol", "carol@example.com", "", "")
	require.NoError(t, err)
	assert.NotZero(t, user.UserId)

	t.Run("DuplicateUserName", func(t *testing.T) {
		_, err := svc.Create(ctx, "carol", "Carol Again", "carol2@example.com", "", "")
		require.Error(t, err)
		assert.EqualValues(t, errno.ParamErrCode, errno.ConvertErr(err).ErrCode)
	})

	t.Run("MissingFields", func(t *testing.T) {
		_, err := svc.Create(ctx, "", "Nameless", "x@example.com", "", "")
		require.Error(t, err)
		assert.EqualValues(t, errno.ParamErrCode, errno.ConvertErr(err).ErrCode)
	})
}
