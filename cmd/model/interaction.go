package model

import "time"

// TargetKind tags which entity a Like applies to. Exactly one kind is set
// per row, there are no nullable reference columns.
type TargetKind string

const (
	TargetVideo       TargetKind = "video"
	TargetPost        TargetKind = "post"
	TargetComment     TargetKind = "comment"
	TargetPostComment TargetKind = "post_comment"
)

func (k TargetKind) Valid() bool {
	switch k {
	case TargetVideo, TargetPost, TargetComment, TargetPostComment:
		return true
	}
	return false
}

// ParentKind tags which entity a Comment belongs to.
type ParentKind string

const (
	ParentVideo ParentKind = "video"
	ParentPost  ParentKind = "post"
)

func (k ParentKind) Valid() bool {
	return k == ParentVideo || k == ParentPost
}

// LikeTargetKind maps a comment's parent kind to the like target kind used
// for likes placed on that comment.
func (k ParentKind) LikeTargetKind() TargetKind {
	if k == ParentPost {
		return TargetPostComment
	}
	return TargetComment
}

// Like holds one user's reaction on one target. The unique index over
// (user_id, target_kind, target_id) is the invariant the toggle engine
// leans on: the conditional insert against it is what makes concurrent
// toggles safe.
type Like struct {
	LikeId     int64      `json:"like_id" gorm:"primaryKey"`
	UserId     int64      `json:"user_id" gorm:"uniqueIndex:idx_user_target"`
	TargetKind TargetKind `json:"target_kind" gorm:"size:16;uniqueIndex:idx_user_target"`
	TargetId   int64      `json:"target_id" gorm:"uniqueIndex:idx_user_target;index"`
	CreatedAt  time.Time  `json:"created_at" gorm:"autoCreateTime"`
}

type Comment struct {
	CommentId  int64      `json:"comment_id" gorm:"primaryKey"`
	UserId     int64      `json:"user_id" gorm:"index"`
	ParentKind ParentKind `json:"parent_kind" gorm:"size:8;index:idx_parent"`
	ParentId   int64      `json:"parent_id" gorm:"index:idx_parent"`
	Content    string     `json:"content" gorm:"type:text"`
	CreatedAt  time.Time  `json:"created_at" gorm:"autoCreateTime;index"`
	UpdatedAt  time.Time  `json:"updated_at" gorm:"autoUpdateTime"`
}
