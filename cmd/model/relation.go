package model

import "time"

// Subscription is a directed edge subscriber -> channel. The unique pair
// index enforces at most one edge per ordered pair.
type Subscription struct {
	SubscriptionId int64     `json:"subscription_id" gorm:"primaryKey"`
	SubscriberId   int64     `json:"subscriber_id" gorm:"uniqueIndex:idx_sub_channel"`
	ChannelId      int64     `json:"channel_id" gorm:"uniqueIndex:idx_sub_channel;index"`
	CreatedAt      time.Time `json:"created_at" gorm:"autoCreateTime"`
}
