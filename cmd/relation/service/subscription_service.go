package service

import (
	"context"

	"github.com/pkg/errors"

	"vidtube.com/cmd/model"
	"vidtube.com/pkg/constants"
	"vidtube.com/pkg/errno"
	"vidtube.com/pkg/utils"
)

type SubscriptionRepo interface {
	InsertIfAbsent(ctx context.Context, subscriberId, channelId int64) (bool, error)
	DeleteIfPresent(ctx context.Context, subscriberId, channelId int64) (bool, error)
	IsSubscribed(ctx context.Context, subscriberId, channelId int64) (bool, error)
	CountSubscribers(ctx context.Context, channelId int64) (int64, error)
	CountSubscribed(ctx context.Context, subscriberId int64) (int64, error)
	ListChannelIdsBySubscriber(ctx context.Context, subscriberId, pageNum, pageSize int64) ([]int64, int64, error)
}

type UserRepo interface {
	Exists(ctx context.Context, userId int64) (bool, error)
	FindSummaries(ctx context.Context, userIds []int64) (map[int64]*model.UserSummary, error)
}

type SubscriptionService struct {
	subs  SubscriptionRepo
	users UserRepo
	// allowSelf is a deliberate configuration decision, not an implicit
	// data-model property.
	allowSelf bool
}

func NewSubscriptionService(subs SubscriptionRepo, users UserRepo, allowSelfSubscription bool) *SubscriptionService {
	return &SubscriptionService{subs: subs, users: users, allowSelf: allowSelfSubscription}
}

// Toggle flips the subscriber->channel edge and returns the resulting
// state. Same atomic conditional scheme as the like toggle.
func (s *SubscriptionService) Toggle(ctx context.Context, subscriberId, channelId int64) (bool, error) {
	if !s.allowSelf && subscriberId == channelId {
		return false, errno.ParamErr.WithMessage("Subscribing to your own channel is not allowed")
	}
	exists, err := s.users.Exists(ctx, channelId)
	if err != nil {
		return false, errors.WithMessage(err, "check channel failed")
	}
	if !exists {
		return false, errno.UserNotExistErr.WithMessage("Channel not found")
	}

	for i := 0; i < constants.ToggleMaxRetries; i++ {
		deleted, err := s.subs.DeleteIfPresent(ctx, subscriberId, channelId)
		if err != nil {
			return false, errors.WithMessage(err, "toggle subscription delete failed")
		}
		if deleted {
			return false, nil
		}
		inserted, err := s.subs.InsertIfAbsent(ctx, subscriberId, channelId)
		if err != nil {
			return false, errors.WithMessage(err, "toggle subscription insert failed")
		}
		if inserted {
			return true, nil
		}
	}
	return false, errno.ConflictErr
}

func (s *SubscriptionService) IsSubscribed(ctx context.Context, subscriberId, channelId int64) (bool, error) {
	return s.subs.IsSubscribed(ctx, subscriberId, channelId)
}

func (s *SubscriptionService) CountSubscribers(ctx context.Context, channelId int64) (int64, error) {
	exists, err := s.users.Exists(ctx, channelId)
	if err != nil {
		return 0, errors.WithMessage(err, "check channel failed")
	}
	if !exists {
		return 0, errno.UserNotExistErr.WithMessage("Channel not found")
	}
	return s.subs.CountSubscribers(ctx, channelId)
}

// SubscribedChannels pages the channel summaries a user subscribes to.
func (s *SubscriptionService) SubscribedChannels(ctx context.Context, subscriberId, pageNum, pageSize int64) ([]*model.UserSummary, int64, error) {
	pageNum, pageSize = utils.NormalizePage(pageNum, pageSize)
	channelIds, total, err := s.subs.ListChannelIdsBySubscriber(ctx, subscriberId, pageNum, pageSize)
	if err != nil {
		return nil, 0, errors.WithMessage(err, "list subscribed channels failed")
	}
	if len(channelIds) == 0 {
		return []*model.UserSummary{}, total, nil
	}
	summaries, err := s.users.FindSummaries(ctx, channelIds)
	if err != nil {
		return nil, 0, errors.WithMessage(err, "load channel summaries failed")
	}
	channels := make([]*model.UserSummary, 0, len(channelIds))
	for _, id := range channelIds {
		if summary, ok := summaries[id]; ok {
			channels = append(channels, summary)
		}
	}
	return channels, total, nil
}
