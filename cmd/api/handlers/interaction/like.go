package handlers

import (
	"context"

	"vidtube.com/cmd/api/handlers/common"
	"vidtube.com/cmd/model"
	"vidtube.com/pkg/errno"
	"vidtube.com/pkg/utils"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/common/hlog"
)

func ToggleLike(ctx context.Context, c *app.RequestContext) {
	var param ToggleLikeParam
	if err := c.BindAndValidate(&param); err != nil {
		hlog.Info(err)
		common.SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	userId := common.ActorId(c)
	liked, err := likeService.Toggle(ctx, userId, model.TargetKind(param.TargetKind), param.TargetId)
	if err != nil {
		common.SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	common.SendResponse(c, errno.Success, map[string]interface{}{"liked": liked})
}

func LikeStatus(ctx context.Context, c *app.RequestContext) {
	var param LikeStatusParam
	if err := c.BindAndValidate(&param); err != nil {
		hlog.Info(err)
		common.SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	userId := common.ActorId(c)
	liked, err := likeService.IsLiked(ctx, userId, model.TargetKind(param.TargetKind), param.TargetId)
	if err != nil {
		common.SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	count, err := likeService.LikeCount(ctx, model.TargetKind(param.TargetKind), param.TargetId)
	if err != nil {
		common.SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	common.SendResponse(c, errno.Success, map[string]interface{}{
		"liked":      liked,
		"like_count": count,
	})
}

func LikedVideos(ctx context.Context, c *app.RequestContext) {
	var param LikedVideosParam
	if err := c.BindAndValidate(&param); err != nil {
		hlog.Info(err)
		common.SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	userId := common.ActorId(c)
	pageNum, pageSize := utils.NormalizePage(param.PageNum, param.PageSize)
	videos, total, err := likeService.LikedVideos(ctx, userId, pageNum, pageSize)
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
