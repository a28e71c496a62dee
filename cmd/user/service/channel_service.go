package service

import (
	"context"

	"vidtube.com/cmd/model"
	"vidtube.com/pkg/errno"
	"vidtube.com/pkg/utils"
)

type SubscriptionProvider interface {
	IsSubscribed(ctx context.Context, subscriberId, channelId int64) (bool, error)
	CountSubscribers(ctx context.Context, channelId int64) (int64, error)
	CountSubscribed(ctx context.Context, subscriberId int64) (int64, error)
}

type VideoStatsProvider interface {
	CountByOwner(ctx context.Context, userId int64) (int64, error)
	SumVisitCountByOwner(ctx context.Context, userId int64) (int64, error)
	FindByIds(ctx context.Context, videoIds []int64) ([]*model.Video, error)
}

type WatchHistoryProvider interface {
	ListByUser(ctx context.Context, userId, pageNum, pageSize int64) ([]*model.WatchHistory, int64, error)
}

type ChannelService struct {
	users   UserRepo
	subs    SubscriptionProvider
	videos  VideoStatsProvider
	history WatchHistoryProvider
}

func NewChannelService(users UserRepo, subs SubscriptionProvider, videos VideoStatsProvider, history WatchHistoryProvider) *ChannelService {
	return &ChannelService{users: users, subs: subs, videos: videos, history: history}
}

type ChannelProfile struct {
	User            *model.User `json:"user"`
	SubscriberCount int64       `json:"subscriber_count"`
	SubscribedCount int64       `json:"subscribed_count"`
	IsSubscribed    bool        `json:"is_subscribed"`
}

type ChannelStats struct {
	TotalVideos      int64 `json:"total_videos"`
	TotalViews       int64 `json:"total_views"`
	TotalSubscribers int64 `json:"total_subscribers"`
}

type WatchHistoryItem struct {
	History *model.WatchHistory `json:"history"`
	Video   *model.Video        `json:"video"`
	Owner   *model.UserSummary  `json:"owner"`
}

// Profile resolves a channel by username and reports it from the viewer's
// perspective. A viewerId of zero means an anonymous viewer.
func (s *ChannelService) Profile(ctx context.Context, channelUserName string, viewerId int64) (*ChannelProfile, error) {
	user, err := s.users.FindByUserName(ctx, channelUserName)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, errno.UserNotExistErr.WithMessage("Channel not found")
	}
	subscriberCount, err := s.subs.CountSubscribers(ctx, user.UserId)
	if err != nil {
		return nil, err
	}
	subscribedCount, err := s.subs.CountSubscribed(ctx, user.UserId)
	if err != nil {
		return nil, err
	}
	isSubscribed := false
	if viewerId != 0 {
		isSubscribed, err = s.subs.IsSubscribed(ctx, viewerId, user.UserId)
		if err != nil {
			return nil, err
		}
	}
	return &ChannelProfile{
		User:            user,
		SubscriberCount: subscriberCount,
		SubscribedCount: subscribedCount,
		IsSubscribed:    isSubscribed,
	}, nil
}

func (s *ChannelService) Stats(ctx context.Context, channelId int64) (*ChannelStats, error) {
	exists, err := s.users.Exists(ctx, channelId)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, errno.UserNotExistErr.WithMessage("Channel not found")
	}
	totalVideos, err := s.videos.CountByOwner(ctx, channelId)
	if err != nil {
		return nil, err
	}
	totalViews, err := s.videos.SumVisitCountByOwner(ctx, channelId)
	if err != nil {
		return nil, err
	}
	totalSubscribers, err := s.subs.CountSubscribers(ctx, channelId)
	if err != nil {
		return nil, err
	}
	return &ChannelStats{
		TotalVideos:      totalVideos,
		TotalViews:       totalViews,
		TotalSubscribers: totalSubscribers,
	}, nil
}

// WatchHistory pages a user's watch history, newest first, with video and
// owner details joined. Entries for deleted videos keep their history row
// but come back without a video.
func (s *ChannelService) WatchHistory(ctx context.Context, userId, pageNum, pageSize int64) ([]*WatchHistoryItem, int64, error) {
	exists, err := s.users.Exists(ctx, userId)
	if err != nil {
		return nil, 0, err
	}
	if !exists {
		return nil, 0, errno.UserNotExistErr
	}
	pageNum, pageSize = utils.NormalizePage(pageNum, pageSize)
	entries, total, err := s.history.ListByUser(ctx, userId, pageNum, pageSize)
	if err != nil {
		return nil, 0, err
	}
	videoIds := make([]int64, 0, len(entries))
	for _, entry := range entries {
		videoIds = append(videoIds, entry.VideoId)
	}
	items := make([]*WatchHistoryItem, 0, len(entries))
	if len(videoIds) == 0 {
		return items, total, nil
	}
	videos, err := s.videos.FindByIds(ctx, videoIds)
	if err != nil {
		return nil, 0, err
	}
	videoById := make(map[int64]*model.Video, len(videos))
	ownerIds := make([]int64, 0, len(videos))
	for _, video := range videos {
		videoById[video.VideoId] = video
		ownerIds = append(ownerIds, video.UserId)
	}
	owners, err := s.users.FindSummaries(ctx, ownerIds)
	if err != nil {
		return nil, 0, err
	}
	for _, entry := range entries {
		item := &WatchHistoryItem{History: entry}
		if video, ok := videoById[entry.VideoId]; ok {
			item.Video = video
			item.Owner = owners[video.UserId]
		}
		items = append(items, item)
	}
	return items, total, nil
}
