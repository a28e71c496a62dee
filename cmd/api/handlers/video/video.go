package handlers

import (
	"context"

	"vidtube.com/cmd/api/handlers/common"
	"vidtube.com/cmd/video/service"
	"vidtube.com/pkg/errno"
	"vidtube.com/pkg/utils"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/common/hlog"
)

func PublishVideo(ctx context.Context, c *app.RequestContext) {
	var param PublishVideoParam
	if err := c.BindAndValidate(&param); err != nil {
		hlog.Info(err)
		common.SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	userId := common.ActorId(c)
	video, err := videoService.Publish(ctx, &service.PublishVideoParam{
		UserId:      userId,
		Title:       param.Title,
		Description: param.Description,
		VideoUrl:    param.VideoUrl,
		CoverUrl:    param.CoverUrl,
		Duration:    param.Duration,
	})
	if err != nil {
		common.SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	common.SendResponse(c, errno.Success, video)
}

func UpdateVideo(ctx context.Context, c *app.RequestContext) {
	var param UpdateVideoParam
	if err := c.BindAndValidate(&param); err != nil {
		hlog.Info(err)
		common.SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	userId := common.ActorId(c)
	video, err := videoService.Update(ctx, param.VideoId, userId, &service.UpdateVideoParam{
		Title:       param.Title,
		Description: param.Description,
		CoverUrl:    param.CoverUrl,
	})
	if err != nil {
		common.SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	common.SendResponse(c, errno.Success, video)
}

func DeleteVideo(ctx context.Context, c *app.RequestContext) {
	var param VideoIdParam
	if err := c.BindAndValidate(&param); err != nil {
		hlog.Info(err)
		common.SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	userId := common.ActorId(c)
	if err := videoService.Delete(ctx, param.VideoId, userId); err != nil {
		common.SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	common.SendResponse(c, errno.Success, nil)
}

func TogglePublish(ctx context.Context, c *app.RequestContext) {
	var param VideoIdParam
	if err := c.BindAndValidate(&param); err != nil {
		hlog.Info(err)
		common.SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	userId := common.ActorId(c)
	published, err := videoService.TogglePublish(ctx, param.VideoId, userId)
	if err != nil {
		common.SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	common.SendResponse(c, errno.Success, map[string]interface{}{"is_published": published})
}

// VideoDetail returns the denormalized video page and records the view
// for authenticated callers.
func VideoDetail(ctx context.Context, c *app.RequestContext) {
	var param VideoDetailParam
	if err := c.BindAndValidate(&param); err != nil {
		hlog.Info(err)
		common.SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	viewerId := common.ActorId(c)
	detail, err := videoService.Detail(ctx, param.VideoId, viewerId, param.PageNum, param.PageSize)
	if err != nil {
		common.SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	common.SendResponse(c, errno.Success, detail)
}

func SearchVideos(ctx context.Context, c *app.RequestContext) {
	var param SearchVideoParam
	if err := c.BindAndValidate(&param); err != nil {
		hlog.Info(err)
		common.SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	pageNum, pageSize := utils.NormalizePage(param.PageNum, param.PageSize)
	videos, total, err := videoService.Search(ctx, &service.SearchVideoParam{
		Keyword:       param.Keyword,
		SortField:     param.SortField,
		SortDirection: param.SortDirection,
		OwnerId:       param.OwnerId,
		PageNum:       pageNum,
		PageSize:      pageSize,
	})
	if err != nil {
		common.SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	common.SendResponse(c, errno.Success, common.PageData{
		Items:      videos,
		PageNum:    pageNum,
		PageSize:   pageSize,
		TotalCount: total,
	})
}
