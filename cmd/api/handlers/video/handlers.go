package handlers

import (
	"vidtube.com/cmd/video/service"
)

var videoService *service.VideoService

func Init(videos *service.VideoService) {
	videoService = videos
}

type PublishVideoParam struct {
	Title       string `form:"title" json:"title"`
	Description string `form:"description" json:"description"`
	VideoUrl    string `form:"video_url" json:"video_url"`
	CoverUrl    string `form:"cover_url" json:"cover_url"`
	Duration    int64  `form:"duration" json:"duration"`
}

type UpdateVideoParam struct {
	VideoId     int64  `form:"video_id" json:"video_id"`
	Title       string `form:"title" json:"title"`
	Description string `form:"description" json:"description"`
	CoverUrl    string `form:"cover_url" json:"cover_url"`
}

type VideoIdParam struct {
	VideoId int64 `form:"video_id" json:"video_id"`
}

type VideoDetailParam struct {
	VideoId  int64 `query:"video_id"`
	PageNum  int64 `query:"page_num"`
	PageSize int64 `query:"page_size"`
}

type SearchVideoParam struct {
	Keyword       string `query:"keyword"`
	SortField     string `query:"sort_field"`
	SortDirection string `query:"sort_direction"`
	OwnerId       int64  `query:"owner_id"`
	PageNum       int64  `query:"page_num"`
	PageSize      int64  `query:"page_size"`
}
