package handlers

import (
	"context"

	"vidtube.com/cmd/api/handlers/common"
	"vidtube.com/cmd/post/service"
	"vidtube.com/pkg/errno"
	"vidtube.com/pkg/utils"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/common/hlog"
)

var postService *service.PostService

func Init(posts *service.PostService) {
	postService = posts
}

type CreatePostParam struct {
	Content  string `form:"content" json:"content"`
	ImageUrl string `form:"image_url" json:"image_url"`
	VideoId  int64  `form:"video_id" json:"video_id"`
}

type UpdatePostParam struct {
	PostId  int64  `form:"post_id" json:"post_id"`
	Content string `form:"content" json:"content"`
}

type PostIdParam struct {
	PostId int64 `form:"post_id" json:"post_id" query:"post_id"`
}

type ListPostsParam struct {
	UserId   int64 `query:"user_id"`
	PageNum  int64 `query:"page_num"`
	PageSize int64 `query:"page_size"`
}

func CreatePost(ctx context.Context, c *app.RequestContext) {
	var param CreatePostParam
	if err := c.BindAndValidate(&param); err != nil {
		hlog.Info(err)
		common.SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	userId := common.ActorId(c)
	post, err := postService.Create(ctx, userId, param.Content, param.ImageUrl, param.VideoId)
	if err != nil {
		common.SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	common.SendResponse(c, errno.Success, post)
}

func GetPost(ctx context.Context, c *app.RequestContext) {
	var param PostIdParam
	if err := c.BindAndValidate(&param); err != nil {
		hlog.Info(err)
		common.SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	info, err := postService.Get(ctx, param.PostId)
	if err != nil {
		common.SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	common.SendResponse(c, errno.Success, info)
}

func UpdatePost(ctx context.Context, c *app.RequestContext) {
	var param UpdatePostParam
	if err := c.BindAndValidate(&param); err != nil {
		hlog.Info(err)
		common.SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	userId := common.ActorId(c)
	post, err := postService.Update(ctx, userId, param.PostId, param.Content)
	if err != nil {
		common.SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	common.SendResponse(c, errno.Success, post)
}

func DeletePost(ctx context.Context, c *app.RequestContext) {
	var param PostIdParam
	if err := c.BindAndValidate(&param); err != nil {
		hlog.Info(err)
		common.SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	userId := common.ActorId(c)
	if err := postService.Delete(ctx, userId, param.PostId); err != nil {
		common.SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	common.SendResponse(c, errno.Success, nil)
}

func ListPosts(ctx context.Context, c *app.RequestContext) {
	var param ListPostsParam
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
	posts, total, err := postService.List(ctx, userId, pageNum, pageSize)
	if err != nil {
		common.SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	common.SendResponse(c, errno.Success, common.PageData{
		Items:      posts,
		PageNum:    pageNum,
		PageSize:   pageSize,
		TotalCount: total,
	})
}
