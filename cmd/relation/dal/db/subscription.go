package db

import (
	"context"

	"vidtube.com/cmd/model"
	"vidtube.com/pkg/utils"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type SubscriptionDB struct {
	db *gorm.DB
}

func NewSubscriptionDB(db *gorm.DB) *SubscriptionDB {
	return &SubscriptionDB{db: db}
}

// InsertIfAbsent creates the edge unless it already exists; the unique
// (subscriber, channel) index makes this a single atomic statement.
func (s *SubscriptionDB) InsertIfAbsent(ctx context.Context, subscriberId, channelId int64) (bool, error) {
	sub := &model.Subscription{
		SubscriptionId: utils.GenerateID(),
		SubscriberId:   subscriberId,
		ChannelId:      channelId,
	}
	result := s.db.WithContext(ctx).Clauses(clause.OnConflict{DoNothing: true}).Create(sub)
	if result.Error != nil {
		return false, errors.Wrap(result.Error, "insert subscription failed")
	}
	return result.RowsAffected > 0, nil
}

func (s *SubscriptionDB) DeleteIfPresent(ctx context.Context, subscriberId, channelId int64) (bool, error) {
	result := s.db.WithContext(ctx).
		Where("subscriber_id = ? And channel_id = ?", subscriberId, channelId).
		Delete(&model.Subscription{})
	if result.Error != nil {
		return false, errors.Wrap(result.Error, "delete subscription failed")
	}
	return result.RowsAffected > 0, nil
}

func (s *SubscriptionDB) IsSubscribed(ctx context.Context, subscriberId, channelId int64) (bool, error) {
	var count int64
	if err := s.db.WithContext(ctx).Model(&model.Subscription{}).
		Where("subscriber_id = ? And channel_id = ?", subscriberId, channelId).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// CountSubscribers counts edges pointing at the channel.
func (s *SubscriptionDB) CountSubscribers(ctx context.Context, channelId int64) (count int64, err error) {
	if err := s.db.WithContext(ctx).Model(&model.Subscription{}).
		Where("channel_id = ?", channelId).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// CountSubscribed counts edges leaving the subscriber.
func (s *SubscriptionDB) CountSubscribed(ctx context.Context, subscriberId int64) (count int64, err error) {
	if err := s.db.WithContext(ctx).Model(&model.Subscription{}).
		Where("subscriber_id = ?", subscriberId).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// ListChannelIdsBySubscriber returns the channels a user subscribes to,
// newest subscription first.
func (s *SubscriptionDB) ListChannelIdsBySubscriber(ctx context.Context, subscriberId, pageNum, pageSize int64) ([]int64, int64, error) {
	var total int64
	query := s.db.WithContext(ctx).Model(&model.Subscription{}).
		Where("subscriber_id = ?", subscriberId)
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	list := make([]int64, 0)
	if err := query.Order("created_at desc").
		Offset(int(pageNum-1) * int(pageSize)).Limit(int(pageSize)).
		Pluck("channel_id", &list).Error; err != nil {
		return nil, 0, err
	}
	return list, total, nil
}
