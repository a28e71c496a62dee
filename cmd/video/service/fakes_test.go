package service

import (
	"context"
	"sort"
	"strings"
	"sync"

	interaction "vidtube.com/cmd/interaction/service"
	"vidtube.com/cmd/model"
)

type fakeVideoRepo struct {
	mu     sync.Mutex
	videos map[int64]*model.Video
}

func newFakeVideoRepo() *fakeVideoRepo {
	return &fakeVideoRepo{videos: make(map[int64]*model.Video)}
}

func (f *fakeVideoRepo) Create(ctx context.Context, video *model.Video) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.videos[video.VideoId] = video
	return nil
}

func (f *fakeVideoRepo) FindById(ctx context.Context, videoId int64) (*model.Video, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.videos[videoId], nil
}

func (f *fakeVideoRepo) FindByIds(ctx context.Context, videoIds []int64) ([]*model.Video, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]*model.Video, 0, len(videoIds))
	for _, id := range videoIds {
		if v, ok := f.videos[id]; ok {
			out = append(out, v)
		}
	}
	return out, nil
}

func (f *fakeVideoRepo) Exists(ctx context.Context, videoId int64) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	_, ok := f.videos[videoId]
	return ok, nil
}

func (f *fakeVideoRepo) Updates(ctx context.Context, videoId int64, fields map[string]interface{}) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	video, ok := f.videos[videoId]
	if !ok {
		return nil
	}
	for field, value := range fields {
		switch field {
		case "title":
			video.Title = value.(string)
		case "description":
			video.Description = value.(string)
		case "cover_url":
			video.CoverUrl = value.(string)
		case "is_published":
			video.IsPublished = value.(bool)
		}
	}
	return nil
}

func (f *fakeVideoRepo) DeleteCascade(ctx context.Context, videoId int64) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.videos, videoId)
	return nil
}

func (f *fakeVideoRepo) Search(ctx context.Context, keyword, sortField, sortDirection string, ownerId, pageNum, pageSize int64) ([]*model.Video, int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	matched := make([]*model.Video, 0)
	for _, v := range f.videos {
		if ownerId != 0 && v.UserId != ownerId {
			continue
		}
		if keyword != "" &&
			!strings.Contains(strings.ToLower(v.Title), strings.ToLower(keyword)) &&
			!strings.Contains(strings.ToLower(v.Description), strings.ToLower(keyword)) {
			continue
		}
		matched = append(matched, v)
	}
	desc := sortDirection != "asc"
	sort.SliceStable(matched, func(i, j int) bool {
		var less bool
		switch sortField {
		case "visit_count":
			if matched[i].VisitCount == matched[j].VisitCount {
				less = matched[i].VideoId < matched[j].VideoId
			} else {
				less = matched[i].VisitCount < matched[j].VisitCount
			}
		case "title":
			if matched[i].Title == matched[j].Title {
				less = matched[i].VideoId < matched[j].VideoId
			} else {
				less = matched[i].Title < matched[j].Title
			}
		default:
			if matched[i].CreatedAt.Equal(matched[j].CreatedAt) {
				less = matched[i].VideoId < matched[j].VideoId
			} else {
				less = matched[i].CreatedAt.Before(matched[j].CreatedAt)
			}
		}
		if desc {
			return !less
		}
		return less
	})
	total := int64(len(matched))
	start := (pageNum - 1) * pageSize
	if start > total {
		start = total
	}
	end := start + pageSize
	if end > total {
		end = total
	}
	return matched[start:end], total, nil
}

type viewKey struct {
	videoId  int64
	viewerId int64
}

type fakeViewRepo struct {
	mu      sync.Mutex
	views   map[viewKey]bool
	videos  *fakeVideoRepo
	history *fakeWatchHistoryRepo
	// failNext makes the next winning claim roll back with this error.
	failNext error
}

func newFakeViewRepo(videos *fakeVideoRepo, history *fakeWatchHistoryRepo) *fakeViewRepo {
	return &fakeViewRepo{views: make(map[viewKey]bool), videos: videos, history: history}
}

func (f *fakeViewRepo) RecordFirstView(ctx context.Context, videoId, viewerId int64) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	key := viewKey{videoId, viewerId}
	if f.views[key] {
		return false, nil
	}
	if f.failNext != nil {
		err := f.failNext
		f.failNext = nil
		return false, err
	}
	f.views[key] = true
	if video, ok := f.videos.videos[videoId]; ok {
		video.VisitCount++
	}
	f.history.append(viewerId, videoId)
	return true, nil
}

type fakeWatchHistoryRepo struct {
	mu      sync.Mutex
	entries []*model.WatchHistory
}

func (f *fakeWatchHistoryRepo) Append(ctx context.Context, userId, videoId int64) error {
	f.append(userId, videoId)
	return nil
}

func (f *fakeWatchHistoryRepo) append(userId, videoId int64) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.entries = append(f.entries, &model.WatchHistory{UserId: userId, VideoId: videoId})
}

func (f *fakeWatchHistoryRepo) countFor(userId, videoId int64) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	count := 0
	for _, e := range f.entries {
		if e.UserId == userId && e.VideoId == videoId {
			count++
		}
	}
	return count
}

type fakeInfoCache struct {
	mu            sync.Mutex
	videos        map[int64]*model.Video
	invalidations int
}

func newFakeInfoCache() *fakeInfoCache {
	return &fakeInfoCache{videos: make(map[int64]*model.Video)}
}

func (f *fakeInfoCache) Get(ctx context.Context, videoId int64) (*model.Video, bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	v, ok := f.videos[videoId]
	return v, ok, nil
}

func (f *fakeInfoCache) Set(ctx context.Context, video *model.Video) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.videos[video.VideoId] = video
	return nil
}

func (f *fakeInfoCache) Invalidate(ctx context.Context, videoId int64) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.videos, videoId)
	f.invalidations++
	return nil
}

type fakeUserProvider struct {
	users map[int64]*model.UserSummary
}

func (f *fakeUserProvider) FindSummaries(ctx context.Context, userIds []int64) (map[int64]*model.UserSummary, error) {
	out := make(map[int64]*model.UserSummary, len(userIds))
	for _, id := range userIds {
		if u, ok := f.users[id]; ok {
			out[id] = u
		}
	}
	return out, nil
}

type fakeCommentProvider struct {
	comments map[int64][]*interaction.CommentInfo
}

func (f *fakeCommentProvider) List(ctx context.Context, kind model.ParentKind, parentId, pageNum, pageSize int64) ([]*interaction.CommentInfo, int64, error) {
	infos := f.comments[parentId]
	return infos, int64(len(infos)), nil
}

type fakeLikeProvider struct {
	counts map[int64]int64
	liked  map[int64]bool
}

func (f *fakeLikeProvider) LikeCount(ctx context.Context, kind model.TargetKind, targetId int64) (int64, error) {
	return f.counts[targetId], nil
}

func (f *fakeLikeProvider) IsLiked(ctx context.Context, userId int64, kind model.TargetKind, targetId int64) (bool, error) {
	return f.liked[targetId], nil
}
