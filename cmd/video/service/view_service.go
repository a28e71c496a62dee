package service

import (
	"context"

	"github.com/cloudwego/hertz/pkg/common/hlog"
	"github.com/pkg/errors"

	"vidtube.com/pkg/errno"
)

type ViewRepo interface {
	RecordFirstView(ctx context.Context, videoId, viewerId int64) (bool, error)
}

type WatchHistoryRepo interface {
	Append(ctx context.Context, userId, videoId int64) error
}

// ViewService counts unique viewers and maintains watch history. The dedup
// law: N calls by the same viewer move the counter by exactly 1.
type ViewService struct {
	views   ViewRepo
	history WatchHistoryRepo
	videos  VideoRepo
	cache   InfoCache
	// recordRepeat switches watch history from first-view-only to an
	// append on every call.
	recordRepeat bool
}

func NewViewService(views ViewRepo, history WatchHistoryRepo, videos VideoRepo, cache InfoCache, recordRepeatWatchHistory bool) *ViewService {
	return &ViewService{
		views:        views,
		history:      history,
		videos:       videos,
		cache:        cache,
		recordRepeat: recordRepeatWatchHistory,
	}
}

// RecordView marks the viewer as counted for the video. The first call per
// (video, viewer) increments the visit counter and appends to the viewer's
// watch history; later calls return counted=false and mutate nothing.
func (s *ViewService) RecordView(ctx context.Context, videoId, viewerId int64) (bool, error) {
	// Anonymous viewers have no identity to dedup on and no history.
	if viewerId == 0 {
		return false, nil
	}
	exists, err := s.videos.Exists(ctx, videoId)
	if err != nil {
		return false, errors.WithMessage(err, "check video failed")
	}
	if !exists {
		return false, errno.VideoNotExistErr
	}

	counted, err := s.views.RecordFirstView(ctx, videoId, viewerId)
	if err != nil {
		return false, err
	}
	if counted {
		if s.cache != nil {
			if err := s.cache.Invalidate(ctx, videoId); err != nil {
				hlog.CtxWarnf(ctx, "invalidate video cache after view failed: %v", err)
			}
		}
	} else if s.recordRepeat {
		if err := s.history.Append(ctx, viewerId, videoId); err != nil {
			return counted, errors.WithMessage(err, "append watch history failed")
		}
	}
	return counted, nil
}
