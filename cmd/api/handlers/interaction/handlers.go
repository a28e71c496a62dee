package handlers

import (
	"vidtube.com/cmd/interaction/service"
)

var (
	likeService    *service.LikeService
	commentService *service.CommentService
)

// Init wires the handler package to its services. Must run before the
// router serves traffic.
func Init(likes *service.LikeService, comments *service.CommentService) {
	likeService = likes
	commentService = comments
}

type ToggleLikeParam struct {
	TargetKind string `form:"target_kind" json:"target_kind"`
	TargetId   int64  `form:"target_id" json:"target_id"`
}

type LikeStatusParam struct {
	TargetKind string `query:"target_kind"`
	TargetId   int64  `query:"target_id"`
}

type LikedVideosParam struct {
	PageNum  int64 `query:"page_num"`
	PageSize int64 `query:"page_size"`
}

type CreateCommentParam struct {
	ParentKind string `form:"parent_kind" json:"parent_kind"`
	ParentId   int64  `form:"parent_id" json:"parent_id"`
	Content    string `form:"content" json:"content"`
}

type UpdateCommentParam struct {
	CommentId int64  `form:"comment_id" json:"comment_id"`
	Content   string `form:"content" json:"content"`
}

type DeleteCommentParam struct {
	CommentId int64 `form:"comment_id" json:"comment_id"`
}

type ListCommentParam struct {
	ParentKind string `query:"parent_kind"`
	ParentId   int64  `query:"parent_id"`
	PageNum    int64  `query:"page_num"`
	PageSize   int64  `query:"page_size"`
}
