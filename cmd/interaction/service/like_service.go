package service

import (
	"context"

	"github.com/cloudwego/hertz/pkg/common/hlog"
	"github.com/pkg/errors"

	"vidtube.com/cmd/model"
	"vidtube.com/pkg/constants"
	"vidtube.com/pkg/errno"
	"vidtube.com/pkg/utils"
)

// LikeRepo is the storage surface the toggle engine needs. The conditional
// insert/delete pair must be atomic against the unique (user, kind, target)
// index; the engine never does a separate read-then-write.
type LikeRepo interface {
	InsertIfAbsent(ctx context.Context, userId int64, kind model.TargetKind, targetId int64) (bool, error)
	DeleteIfPresent(ctx context.Context, userId int64, kind model.TargetKind, targetId int64) (bool, error)
	IsLiked(ctx context.Context, userId int64, kind model.TargetKind, targetId int64) (bool, error)
	CountByTarget(ctx context.Context, kind model.TargetKind, targetId int64) (int64, error)
	ListTargetIdsLikedBy(ctx context.Context, userId int64, kind model.TargetKind, pageNum, pageSize int64) ([]int64, int64, error)
}

type TargetChecker interface {
	TargetExists(ctx context.Context, kind model.TargetKind, id int64) (bool, error)
}

type VideoProvider interface {
	FindByIds(ctx context.Context, videoIds []int64) ([]*model.Video, error)
}

type UserProvider interface {
	FindSummaries(ctx context.Context, userIds []int64) (map[int64]*model.UserSummary, error)
}

// CountCache is the optional hot counter layer; a nil cache disables it.
type CountCache interface {
	GetLikeCount(ctx context.Context, kind model.TargetKind, targetId int64) (int64, bool, error)
	SetLikeCount(ctx context.Context, kind model.TargetKind, targetId, count int64) error
	InvalidateLikeCount(ctx context.Context, kind model.TargetKind, targetId int64) error
}

type LikeService struct {
	likes   LikeRepo
	targets TargetChecker
	videos  VideoProvider
	users   UserProvider
	cache   CountCache
}

func NewLikeService(likes LikeRepo, targets TargetChecker, videos VideoProvider, users UserProvider, cache CountCache) *LikeService {
	return &LikeService{likes: likes, targets: targets, videos: videos, users: users, cache: cache}
}

// Toggle flips the actor's like on the target. Returns the resulting state:
// true when the call created the like, false when it removed it.
//
// The flip is built from two atomic conditionals instead of a read plus a
// write, so two concurrent togglers can never both insert. When a toggler
// keeps losing the race (row appears after its delete and disappears before
// its insert) the loop gives up with ConflictErr, which callers treat as a
// retryable no-op.
func (s *LikeService) Toggle(ctx context.Context, userId int64, kind model.TargetKind, targetId int64) (bool, error) {
	if !kind.Valid() {
		return false, errno.ParamErr.WithMessage("unknown like target kind")
	}
	exists, err := s.targets.TargetExists(ctx, kind, targetId)
	if err != nil {
		return false, errors.WithMessage(err, "check like target failed")
	}
	if !exists {
		return false, errno.NotFoundErr.WithMessage("like target does not exist")
	}

	for i := 0; i < constants.ToggleMaxRetries; i++ {
		deleted, err := s.likes.DeleteIfPresent(ctx, userId, kind, targetId)
		if err != nil {
			return false, errors.WithMessage(err, "toggle like delete failed")
		}
		if deleted {
			s.invalidateCount(ctx, kind, targetId)
			return false, nil
		}
		inserted, err := s.likes.InsertIfAbsent(ctx, userId, kind, targetId)
		if err != nil {
			return false, errors.WithMessage(err, "toggle like insert failed")
		}
		if inserted {
			s.invalidateCount(ctx, kind, targetId)
			return true, nil
		}
		// Both conditionals lost: a concurrent toggle slipped in between.
	}
	return false, errno.ConflictErr
}

func (s *LikeService) invalidateCount(ctx context.Context, kind model.TargetKind, targetId int64) {
	if s.cache == nil {
		return
	}
	if err := s.cache.InvalidateLikeCount(ctx, kind, targetId); err != nil {
		hlog.CtxWarnf(ctx, "invalidate like count cache failed: %v", err)
	}
}

func (s *LikeService) IsLiked(ctx context.Context, userId int64, kind model.TargetKind, targetId int64) (bool, error) {
	return s.likes.IsLiked(ctx, userId, kind, targetId)
}

// LikeCount reads through the counter cache, falling back to the store.
func (s *LikeService) LikeCount(ctx context.Context, kind model.TargetKind, targetId int64) (int64, error) {
	if s.cache != nil {
		count, ok, err := s.cache.GetLikeCount(ctx, kind, targetId)
		if err != nil {
			hlog.CtxWarnf(ctx, "like count cache read failed: %v", err)
		} else if ok {
			return count, nil
		}
	}
	count, err := s.likes.CountByTarget(ctx, kind, targetId)
	if err != nil {
		return 0, errors.WithMessage(err, "count likes failed")
	}
	if s.cache != nil {
		if err := s.cache.SetLikeCount(ctx, kind, targetId, count); err != nil {
			hlog.CtxWarnf(ctx, "like count cache write failed: %v", err)
		}
	}
	return count, nil
}

// LikedVideo is one entry of the liked-videos feed.
type LikedVideo struct {
	Video *model.Video       `json:"video"`
	Owner *model.UserSummary `json:"owner"`
}

// LikedVideos pages the viewer's liked videos, newest like first, with the
// video and owner summaries joined in.
func (s *LikeService) LikedVideos(ctx context.Context, userId, pageNum, pageSize int64) ([]*LikedVideo, int64, error) {
	pageNum, pageSize = utils.NormalizePage(pageNum, pageSize)
	videoIds, total, err := s.likes.ListTargetIdsLikedBy(ctx, userId, model.TargetVideo, pageNum, pageSize)
	if err != nil {
		return nil, 0, errors.WithMessage(err, "list liked video ids failed")
	}
	if len(videoIds) == 0 {
		return []*LikedVideo{}, total, nil
	}

	videos, err := s.videos.FindByIds(ctx, videoIds)
	if err != nil {
		return nil, 0, errors.WithMessage(err, "load liked videos failed")
	}
	byId := make(map[int64]*model.Video, len(videos))
	ownerIds := make([]int64, 0, len(videos))
	for _, v := range videos {
		byId[v.VideoId] = v
		ownerIds = append(ownerIds, v.UserId)
	}
	owners, err := s.users.FindSummaries(ctx, ownerIds)
	if err != nil {
		return nil, 0, errors.WithMessage(err, "load video owners failed")
	}

	// Keep the like order; a liked video may have been deleted since.
	feed := make([]*LikedVideo, 0, len(videoIds))
	for _, id := range videoIds {
		video, ok := byId[id]
		if !ok {
			continue
		}
		feed = append(feed, &LikedVideo{Video: video, Owner: owners[video.UserId]})
	}
	return feed, total, nil
}
