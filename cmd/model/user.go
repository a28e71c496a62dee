package model

import "time"

type User struct {
	UserId    int64     `json:"user_id" gorm:"primaryKey"`
	UserName  string    `json:"user_name" gorm:"size:64;uniqueIndex"`
	FullName  string    `json:"full_name" gorm:"size:128"`
	Email     string    `json:"email" gorm:"size:128"`
	AvatarUrl string    `json:"avatar_url" gorm:"size:256"`
	CoverUrl  string    `json:"cover_url" gorm:"size:256"`
	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt time.Time `json:"updated_at" gorm:"autoUpdateTime"`
}

// UserSummary is the denormalized author shape joined into read views.
type UserSummary struct {
	UserId    int64  `json:"user_id"`
	UserName  string `json:"user_name"`
	FullName  string `json:"full_name"`
	AvatarUrl string `json:"avatar_url"`
}

func (u *User) Summary() *UserSummary {
	return &UserSummary{
		UserId:    u.UserId,
		UserName:  u.UserName,
		FullName:  u.FullName,
		AvatarUrl: u.AvatarUrl,
	}
}
