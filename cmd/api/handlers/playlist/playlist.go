package handlers

import (
	"context"

	"vidtube.com/cmd/api/handlers/common"
	"vidtube.com/cmd/playlist/service"
	"vidtube.com/pkg/errno"
	"vidtube.com/pkg/utils"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/common/hlog"
)

var playlistService *service.PlaylistService

func Init(playlists *service.PlaylistService) {
	playlistService = playlists
}

type CreatePlaylistParam struct {
	Name        string `form:"name" json:"name"`
	Description string `form:"description" json:"description"`
}

type UpdatePlaylistParam struct {
	PlaylistId  int64  `form:"playlist_id" json:"playlist_id"`
	Name        string `form:"name" json:"name"`
	Description string `form:"description" json:"description"`
}

type PlaylistIdParam struct {
	PlaylistId int64 `form:"playlist_id" json:"playlist_id" query:"playlist_id"`
}

type PlaylistVideosParam struct {
	PlaylistId int64   `form:"playlist_id" json:"playlist_id"`
	VideoIds   []int64 `form:"video_ids" json:"video_ids"`
}

type ListPlaylistsParam struct {
	UserId   int64 `query:"user_id"`
	PageNum  int64 `query:"page_num"`
	PageSize int64 `query:"page_size"`
}

func CreatePlaylist(ctx context.Context, c *app.RequestContext) {
	var param CreatePlaylistParam
	if err := c.BindAndValidate(&param); err != nil {
		hlog.Info(err)
		common.SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	userId := common.ActorId(c)
	playlist, err := playlistService.Create(ctx, userId, param.Name, param.Description)
	if err != nil {
		common.SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	common.SendResponse(c, errno.Success, playlist)
}

func GetPlaylist(ctx context.Context, c *app.RequestContext) {
	var param PlaylistIdParam
	if err := c.BindAndValidate(&param); err != nil {
		hlog.Info(err)
		common.SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	detail, err := playlistService.Get(ctx, param.PlaylistId)
	if err != nil {
		common.SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	common.SendResponse(c, errno.Success, detail)
}

func UpdatePlaylist(ctx context.Context, c *app.RequestContext) {
	var param UpdatePlaylistParam
	if err := c.BindAndValidate(&param); err != nil {
		hlog.Info(err)
		common.SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	userId := common.ActorId(c)
	playlist, err := playlistService.Update(ctx, userId, param.PlaylistId, param.Name, param.Description)
	if err != nil {
		common.SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	common.SendResponse(c, errno.Success, playlist)
}

func DeletePlaylist(ctx context.Context, c *app.RequestContext) {
	var param PlaylistIdParam
	if err := c.BindAndValidate(&param); err != nil {
		hlog.Info(err)
		common.SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	userId := common.ActorId(c)
	if err := playlistService.Delete(ctx, userId, param.PlaylistId); err != nil {
		common.SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	common.SendResponse(c, errno.Success, nil)
}

func AddPlaylistVideos(ctx context.Context, c *app.RequestContext) {
	var param PlaylistVideosParam
	if err := c.BindAndValidate(&param); err != nil {
		hlog.Info(err)
		common.SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	userId := common.ActorId(c)
	if err := playlistService.AddVideos(ctx, userId, param.PlaylistId, param.VideoIds); err != nil {
		common.SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	common.SendResponse(c, errno.Success, nil)
}

func RemovePlaylistVideos(ctx context.Context, c *app.RequestContext) {
	var param PlaylistVideosParam
	if err := c.BindAndValidate(&param); err != nil {
		hlog.Info(err)
		common.SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	userId := common.ActorId(c)
	if err := playlistService.RemoveVideos(ctx, userId, param.PlaylistId, param.VideoIds); err != nil {
		common.SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	common.SendResponse(c, errno.Success, nil)
}

func ListPlaylists(ctx context.Context, c *app.RequestContext) {
	var param ListPlaylistsParam
	if err := c.BindAndValidate(&param); err != nil {
		hlog.Info(err)
		common.SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	userId := param.UserId
	if userId == 0 {
		userId = common.ActorId(c)
	}
	pageNum, pageSize := utils.NormalizePage(param.PageNum, param.PageSize)
	playlists, total, err := playlistService.List(ctx, userId, pageNum, pageSize)
	if err != nil {
		common.SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	common.SendResponse(c, errno.Success, common.PageData{
		Items:      playlists,
		PageNum:    pageNum,
		PageSize:   pageSize,
		TotalCount: total,
	})
}
