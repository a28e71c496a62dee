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

func CreateComment(ctx context.Context, c *app.RequestContext) {
	var param CreateCommentParam
	if err := c.BindAndValidate(&param); err != nil {
		hlog.Info(err)
		common.SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	userId := common.ActorId(c)
	comment, err := commentService.Create(ctx, userId, model.ParentKind(param.ParentKind), param.ParentId, param.Content)
	if err != nil {
		common.SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	common.SendResponse(c, errno.Success, comment)
}

func UpdateComment(ctx context.Context, c *app.RequestContext) {
	var param UpdateCommentParam
	if err := c.BindAndValidate(&param); err != nil {
		hlog.Info(err)
		common.SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	userId := common.ActorId(c)
	comment, err := commentService.Update(ctx, param.CommentId, userId, param.Content)
	if err != nil {
		common.SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	common.SendResponse(c, errno.Success, comment)
}

func DeleteComment(ctx context.Context, c *app.RequestContext) {
	var param DeleteCommentParam
	if err := c.BindAndValidate(&param); err != nil {
		hlog.Info(err)
		common.SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	userId := common.ActorId(c)
	if err := commentService.Delete(ctx, param.CommentId, userId); err != nil {
		common.SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	common.SendResponse(c, errno.Success, nil)
}

func ListComments(ctx context.Context, c *app.RequestContext) {
	var param ListCommentParam
	if err := c.BindAndValidate(&param); err != nil {
		hlog.Info(err)
		common.SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	pageNum, pageSize := utils.NormalizePage(param.PageNum, param.PageSize)
	comments, total, err := commentService.List(ctx, model.ParentKind(param.ParentKind), param.ParentId, pageNum, pageSize)
	if err != nil {
		common.SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	common.SendResponse(c, errno.Success, common.PageData{
		Items:      comments,
		PageNum:    pageNum,
		PageSize:   pageSize,
		TotalCount: total,
	})
}
