package service

import (
	"context"
	"strings"

	"github.com/cloudwego/hertz/pkg/common/hlog"
	"github.com/pkg/errors"

	interaction "vidtube.com/cmd/interaction/service"
	"vidtube.com/cmd/model"
	"vidtube.com/pkg/errno"
	"vidtube.com/pkg/utils"
)

type VideoRepo interface {
	Create(ctx context.Context, video *model.Video) error
	FindById(ctx context.Context, videoId int64) (*model.Video, error)
	FindByIds(ctx context.Context, videoIds []int64) ([]*model.Video, error)
	Exists(ctx context.Context, videoId int64) (bool, error)
	Updates(ctx context.Context, videoId int64, fields map[string]interface{}) error
	DeleteCascade(ctx context.Context, videoId int64) error
	Search(ctx context.Context, keyword, sortField, sortDirection string, ownerId, pageNum, pageSize int64) ([]*model.Video, int64, error)
}

type UserProvider interface {
	FindSummaries(ctx context.Context, userIds []int64) (map[int64]*model.UserSummary, error)
}

type CommentProvider interface {
	List(ctx context.Context, kind model.ParentKind, parentId, pageNum, pageSize int64) ([]*interaction.CommentInfo, int64, error)
}

type LikeProvider interface {
	LikeCount(ctx context.Context, kind model.TargetKind, targetId int64) (int64, error)
	IsLiked(ctx context.Context, userId int64, kind model.TargetKind, targetId int64) (bool, error)
}

type ViewTracker interface {
	RecordView(ctx context.Context, videoId, viewerId int64) (bool, error)
}

// InfoCache is the optional redis layer over video rows; nil disables it.
type InfoCache interface {
	Get(ctx context.Context, videoId int64) (*model.Video, bool, error)
	Set(ctx context.Context, video *model.Video) error
	Invalidate(ctx context.Context, videoId int64) error
}

type VideoService struct {
	videos   VideoRepo
	users    UserProvider
	comments CommentProvider
	likes    LikeProvider
	tracker  ViewTracker
	cache    InfoCache
}

func NewVideoService(videos VideoRepo, users UserProvider, comments CommentProvider, likes LikeProvider, tracker ViewTracker, cache InfoCache) *VideoService {
	return &VideoService{videos: videos, users: users, comments: comments, likes: likes, tracker: tracker, cache: cache}
}

type PublishVideoParam struct {
	UserId      int64
	Title       string
	Description string
	// VideoUrl and CoverUrl come from the media storage collaborator;
	// only the references are kept here.
	VideoUrl string
	CoverUrl string
	Duration int64
}

func (s *VideoService) Publish(ctx context.Context, param *PublishVideoParam) (*model.Video, error) {
	if strings.TrimSpace(param.Title) == "" {
		return nil, errno.ParamErr.WithMessage("Title is required")
	}
	if param.VideoUrl == "" {
		return nil, errno.ParamErr.WithMessage("Video file reference is required")
	}
	video := &model.Video{
		VideoId:     utils.GenerateID(),
		UserId:      param.UserId,
		Title:       param.Title,
		Description: param.Description,
		VideoUrl:    param.VideoUrl,
		CoverUrl:    param.CoverUrl,
		Duration:    param.Duration,
		IsPublished: true,
	}
	if err := s.videos.Create(ctx, video); err != nil {
		return nil, errors.WithMessage(err, "create video failed")
	}
	return video, nil
}

type UpdateVideoParam struct {
	Title       string
	Description string
	CoverUrl    string
}

func (s *VideoService) Update(ctx context.Context, videoId, actorId int64, param *UpdateVideoParam) (*model.Video, error) {
	if param.Title == "" && param.Description == "" && param.CoverUrl == "" {
		return nil, errno.ParamErr.WithMessage("At least one field is required")
	}
	video, err := s.ownedVideo(ctx, videoId, actorId)
	if err != nil {
		return nil, err
	}

	fields := map[string]interface{}{}
	if param.Title != "" {
		fields["title"] = param.Title
		video.Title = param.Title
	}
	if param.Description != "" {
		fields["description"] = param.Description
		video.Description = param.Description
	}
	if param.CoverUrl != "" {
		fields["cover_url"] = param.CoverUrl
		video.CoverUrl = param.CoverUrl
	}
	if err := s.videos.Updates(ctx, videoId, fields); err != nil {
		return nil, errors.WithMessage(err, "update video failed")
	}
	s.invalidate(ctx, videoId)
	return video, nil
}

func (s *VideoService) Delete(ctx context.Context, videoId, actorId int64) error {
	if _, err := s.ownedVideo(ctx, videoId, actorId); err != nil {
		return err
	}
	if err := s.videos.DeleteCascade(ctx, videoId); err != nil {
		return errors.WithMessage(err, "delete video failed")
	}
	s.invalidate(ctx, videoId)
	return nil
}

// TogglePublish flips the published state and returns the new value.
func (s *VideoService) TogglePublish(ctx context.Context, videoId, actorId int64) (bool, error) {
	video, err := s.ownedVideo(ctx, videoId, actorId)
	if err != nil {
		return false, err
	}
	next := !video.IsPublished
	if err := s.videos.Updates(ctx, videoId, map[string]interface{}{"is_published": next}); err != nil {
		return false, errors.WithMessage(err, "toggle publish failed")
	}
	s.invalidate(ctx, videoId)
	return next, nil
}

// ownedVideo loads the video and enforces existence before ownership.
func (s *VideoService) ownedVideo(ctx context.Context, videoId, actorId int64) (*model.Video, error) {
	video, err := s.videos.FindById(ctx, videoId)
	if err != nil {
		return nil, errors.WithMessage(err, "find video failed")
	}
	if video == nil {
		return nil, errno.VideoNotExistErr
	}
	if video.UserId != actorId {
		return nil, errno.AuthorizationFailedErr
	}
	return video, nil
}

func (s *VideoService) invalidate(ctx context.Context, videoId int64) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Invalidate(ctx, videoId); err != nil {
		hlog.CtxWarnf(ctx, "invalidate video cache failed: %v", err)
	}
}

// loadVideo reads through the info cache.
func (s *VideoService) loadVideo(ctx context.Context, videoId int64) (*model.Video, error) {
	if s.cache != nil {
		video, ok, err := s.cache.Get(ctx, videoId)
		if err != nil {
			hlog.CtxWarnf(ctx, "video cache read failed: %v", err)
		} else if ok {
			return video, nil
		}
	}
	video, err := s.videos.FindById(ctx, videoId)
	if err != nil {
		return nil, errors.WithMessage(err, "find video failed")
	}
	if video == nil {
		return nil, errno.VideoNotExistErr
	}
	if s.cache != nil {
		if err := s.cache.Set(ctx, video); err != nil {
			hlog.CtxWarnf(ctx, "video cache write failed: %v", err)
		}
	}
	return video, nil
}

// VideoDetail is the read-shaped video page: the video, its owner, the
// viewer's reaction state and the first page of the comment thread.
type VideoDetail struct {
	Video        *model.Video               `json:"video"`
	Owner        *model.UserSummary         `json:"owner"`
	LikeCount    int64                      `json:"like_count"`
	IsLiked      bool                       `json:"is_liked"`
	ViewCounted  bool                       `json:"view_counted"`
	Comments     []*interaction.CommentInfo `json:"comments"`
	CommentTotal int64                      `json:"comment_total"`
}

// Detail records the viewer's visit and assembles the video page. The view
// side effect runs first so the returned counter reflects this fetch.
func (s *VideoService) Detail(ctx context.Context, videoId, viewerId, commentPageNum, commentPageSize int64) (*VideoDetail, error) {
	counted, err := s.tracker.RecordView(ctx, videoId, viewerId)
	if err != nil {
		return nil, err
	}

	video, err := s.loadVideo(ctx, videoId)
	if err != nil {
		return nil, err
	}
	owners, err := s.users.FindSummaries(ctx, []int64{video.UserId})
	if err != nil {
		return nil, errors.WithMessage(err, "load video owner failed")
	}
	comments, commentTotal, err := s.comments.List(ctx, model.ParentVideo, videoId, commentPageNum, commentPageSize)
	if err != nil {
		return nil, err
	}
	likeCount, err := s.likes.LikeCount(ctx, model.TargetVideo, videoId)
	if err != nil {
		return nil, err
	}
	liked, err := s.likes.IsLiked(ctx, viewerId, model.TargetVideo, videoId)
	if err != nil {
		return nil, err
	}

	return &VideoDetail{
		Video:        video,
		Owner:        owners[video.UserId],
		LikeCount:    likeCount,
		IsLiked:      liked,
		ViewCounted:  counted,
		Comments:     comments,
		CommentTotal: commentTotal,
	}, nil
}

// VideoWithOwner is one search result row.
type VideoWithOwner struct {
	Video *model.Video       `json:"video"`
	Owner *model.UserSummary `json:"owner"`
}

type SearchVideoParam struct {
	Keyword       string
	SortField     string
	SortDirection string
	OwnerId       int64
	PageNum       int64
	PageSize      int64
}

// Search pages videos with owner summaries joined in. Zero matches is an
// empty result, not an error.
func (s *VideoService) Search(ctx context.Context, param *SearchVideoParam) ([]*VideoWithOwner, int64, error) {
	pageNum, pageSize := utils.NormalizePage(param.PageNum, param.PageSize)
	videos, total, err := s.videos.Search(ctx, param.Keyword, param.SortField, param.SortDirection, param.OwnerId, pageNum, pageSize)
	if err != nil {
		return nil, 0, errors.WithMessage(err, "search videos failed")
	}
	if len(videos) == 0 {
		return []*VideoWithOwner{}, total, nil
	}

	ownerIds := make([]int64, 0, len(videos))
	for _, v := range videos {
		ownerIds = append(ownerIds, v.UserId)
	}
	owners, err := s.users.FindSummaries(ctx, ownerIds)
	if err != nil {
		return nil, 0, errors.WithMessage(err, "load video owners failed")
	}
	results := make([]*VideoWithOwner, 0, len(videos))
	for _, v := range videos {
		results = append(results, &VideoWithOwner{Video: v, Owner: owners[v.UserId]})
	}
	return results, total, nil
}
