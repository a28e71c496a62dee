package service

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"vidtube.com/cmd/model"
)

type likeKey struct {
	userId   int64
	kind     model.TargetKind
	targetId int64
}

// fakeLikeRepo is a map-backed stand-in whose conditional writes are atomic
// under its mutex, matching the guarantee the real store gets from the
// unique index.
type fakeLikeRepo struct {
	mu    sync.Mutex
	rows  map[likeKey]int64
	order int64
}

func newFakeLikeRepo() *fakeLikeRepo {
	return &fakeLikeRepo{rows: make(map[likeKey]int64)}
}

func (f *fakeLikeRepo) InsertIfAbsent(ctx context.Context, userId int64, kind model.TargetKind, targetId int64) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	key := likeKey{userId, kind, targetId}
	if _, ok := f.rows[key]; ok {
		return false, nil
	}
	f.order++
	f.rows[key] = f.order
	return true, nil
}

func (f *fakeLikeRepo) DeleteIfPresent(ctx context.Context, userId int64, kind model.TargetKind, targetId int64) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	key := likeKey{userId, kind, targetId}
	if _, ok := f.rows[key]; !ok {
		return false, nil
	}
	delete(f.rows, key)
	return true, nil
}

func (f *fakeLikeRepo) IsLiked(ctx context.Context, userId int64, kind model.TargetKind, targetId int64) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	_, ok := f.rows[likeKey{userId, kind, targetId}]
	return ok, nil
}

func (f *fakeLikeRepo) CountByTarget(ctx context.Context, kind model.TargetKind, targetId int64) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var count int64
	for key := range f.rows {
		if key.kind == kind && key.targetId == targetId {
			count++
		}
	}
	return count, nil
}

func (f *fakeLikeRepo) ListTargetIdsLikedBy(ctx context.Context, userId int64, kind model.TargetKind, pageNum, pageSize int64) ([]int64, int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	type entry struct {
		targetId int64
		order    int64
	}
	entries := make([]entry, 0)
	for key, order := range f.rows {
		if key.userId == userId && key.kind == kind {
			entries = append(entries, entry{key.targetId, order})
		}
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].order > entries[j].order })
	total := int64(len(entries))
	start := (pageNum - 1) * pageSize
	if start > total {
		start = total
	}
	end := start + pageSize
	if end > total {
		end = total
	}
	ids := make([]int64, 0, end-start)
	for _, e := range entries[start:end] {
		ids = append(ids, e.targetId)
	}
	return ids, total, nil
}

// fakeTargetChecker knows a fixed set of live targets.
type fakeTargetChecker struct {
	targets map[model.TargetKind]map[int64]bool
	parents map[model.ParentKind]map[int64]bool
}

func newFakeTargetChecker() *fakeTargetChecker {
	return &fakeTargetChecker{
		targets: make(map[model.TargetKind]map[int64]bool),
		parents: make(map[model.ParentKind]map[int64]bool),
	}
}

func (f *fakeTargetChecker) addTarget(kind model.TargetKind, id int64) {
	if f.targets[kind] == nil {
		f.targets[kind] = make(map[int64]bool)
	}
	f.targets[kind][id] = true
}

func (f *fakeTargetChecker) addParent(kind model.ParentKind, id int64) {
	if f.parents[kind] == nil {
		f.parents[kind] = make(map[int64]bool)
	}
	f.parents[kind][id] = true
}

func (f *fakeTargetChecker) TargetExists(ctx context.Context, kind model.TargetKind, id int64) (bool, error) {
	return f.targets[kind][id], nil
}

func (f *fakeTargetChecker) ParentExists(ctx context.Context, kind model.ParentKind, id int64) (bool, error) {
	return f.parents[kind][id], nil
}

type fakeVideoProvider struct {
	videos map[int64]*model.Video
}

func (f *fakeVideoProvider) FindByIds(ctx context.Context, videoIds []int64) ([]*model.Video, error) {
	out := make([]*model.Video, 0, len(videoIds))
	for _, id := range videoIds {
		if v, ok := f.videos[id]; ok {
			out = append(out, v)
		}
	}
	return out, nil
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

// fakeCountCache records hits and invalidations.
type fakeCountCache struct {
	mu            sync.Mutex
	counts        map[string]int64
	invalidations int
}

func newFakeCountCache() *fakeCountCache {
	return &fakeCountCache{counts: make(map[string]int64)}
}

func cacheKey(kind model.TargetKind, targetId int64) string {
	return fmt.Sprintf("%s:%d", kind, targetId)
}

func (f *fakeCountCache) GetLikeCount(ctx context.Context, kind model.TargetKind, targetId int64) (int64, bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	count, ok := f.counts[cacheKey(kind, targetId)]
	return count, ok, nil
}

func (f *fakeCountCache) SetLikeCount(ctx context.Context, kind model.TargetKind, targetId, count int64) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.counts[cacheKey(kind, targetId)] = count
	return nil
}

func (f *fakeCountCache) InvalidateLikeCount(ctx context.Context, kind model.TargetKind, targetId int64) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.counts, cacheKey(kind, targetId))
	f.invalidations++
	return nil
}

// fakeCommentRepo backs the comment service tests.
type fakeCommentRepo struct {
	mu       sync.Mutex
	comments map[int64]*model.Comment
	// likes mirrors the reaction rows a cascade should remove:
	// targetId -> number of likes on that comment.
	commentLikes map[int64]int
}

func newFakeCommentRepo() *fakeCommentRepo {
	return &fakeCommentRepo{
		comments:     make(map[int64]*model.Comment),
		commentLikes: make(map[int64]int),
	}
}

func (f *fakeCommentRepo) Create(ctx context.Context, comment *model.Comment) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.comments[comment.CommentId] = comment
	return nil
}

func (f *fakeCommentRepo) FindById(ctx context.Context, commentId int64) (*model.Comment, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.comments[commentId], nil
}

func (f *fakeCommentRepo) UpdateContent(ctx context.Context, commentId int64, content string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if c, ok := f.comments[commentId]; ok {
		c.Content = content
	}
	return nil
}

func (f *fakeCommentRepo) DeleteWithLikes(ctx context.Context, commentId int64, likeKind model.TargetKind) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.comments, commentId)
	delete(f.commentLikes, commentId)
	return nil
}

func (f *fakeCommentRepo) ListByParent(ctx context.Context, kind model.ParentKind, parentId, pageNum, pageSize int64) ([]*model.Comment, int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	matched := make([]*model.Comment, 0)
	for _, c := range f.comments {
		if c.ParentKind == kind && c.ParentId == parentId {
			matched = append(matched, c)
		}
	}
	sort.Slice(matched, func(i, j int) bool {
		return matched[i].CreatedAt.After(matched[j].CreatedAt)
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
