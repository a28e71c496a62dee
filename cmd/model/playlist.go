package model

import "time"

type Playlist struct {
	PlaylistId  int64     `json:"playlist_id" gorm:"primaryKey"`
	UserId      int64     `json:"user_id" gorm:"index"`
	Name        string    `json:"name" gorm:"size:128"`
	Description string    `json:"description" gorm:"size:512"`
	CoverUrl    string    `json:"cover_url" gorm:"size:512"`
	CreatedAt   time.Time `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt   time.Time `json:"updated_at" gorm:"autoUpdateTime"`
}

// PlaylistVideo is one membership row. Position preserves append order;
// the unique pair index keeps a video from appearing twice in a playlist.
type PlaylistVideo struct {
	PlaylistVideoId int64     `json:"playlist_video_id" gorm:"primaryKey"`
	PlaylistId      int64     `json:"playlist_id" gorm:"uniqueIndex:idx_playlist_video"`
	VideoId         int64     `json:"video_id" gorm:"uniqueIndex:idx_playlist_video"`
	Position        int64     `json:"position"`
	CreatedAt       time.Time `json:"created_at" gorm:"autoCreateTime"`
}
