package model

import "time"

type Video struct {
	VideoId     int64     `json:"video_id" gorm:"primaryKey"`
	UserId      int64     `json:"user_id" gorm:"index"`
	VideoUrl    string    `json:"video_url" gorm:"size:512"`
	CoverUrl    string    `json:"cover_url" gorm:"size:512"`
	Title       string    `json:"title" gorm:"size:256;index"`
	Description string    `json:"description" gorm:"type:text"`
	Duration    int64     `json:"duration"`
	VisitCount  int64     `json:"visit_count"`
	IsPublished bool      `json:"is_published"`
	CreatedAt   time.Time `json:"created_at" gorm:"autoCreateTime;index"`
	UpdatedAt   time.Time `json:"updated_at" gorm:"autoUpdateTime"`
}

type Post struct {
	PostId    int64     `json:"post_id" gorm:"primaryKey"`
	UserId    int64     `json:"user_id" gorm:"index"`
	Content   string    `json:"content" gorm:"type:text"`
	ImageUrl  string    `json:"image_url" gorm:"size:512"`
	VideoId   int64     `json:"video_id"`
	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime;index"`
	UpdatedAt time.Time `json:"updated_at" gorm:"autoUpdateTime"`
}
