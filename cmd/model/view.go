package model

import "time"

// View records that a viewer has been counted for a video, once. The
// (video_id, viewer_id) unique index is the dedup key behind the visit
// counter. Views are never deleted.
type View struct {
	ViewId    int64     `json:"view_id" gorm:"primaryKey"`
	VideoId   int64     `json:"video_id" gorm:"uniqueIndex:idx_video_viewer"`
	ViewerId  int64     `json:"viewer_id" gorm:"uniqueIndex:idx_video_viewer;index"`
	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`
}

// WatchHistory is one entry of a user's watch sequence, most recent last.
// Entries reference videos weakly and may dangle after a video delete.
type WatchHistory struct {
	WatchHistoryId int64     `json:"watch_history_id" gorm:"primaryKey"`
	UserId         int64     `json:"user_id" gorm:"index"`
	VideoId        int64     `json:"video_id"`
	WatchedAt      time.Time `json:"watched_at" gorm:"autoCreateTime"`
}
