package handlers

import (
	"context"

	"vidtube.com/cmd/api/handlers/common"
	"vidtube.com/cmd/user/service"
	"vidtube.com/pkg/errno"
	"vidtube.com/pkg/utils"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/common/hlog"
)

var (
	userService    *service.UserService
	channelService *service.ChannelService
)

func Init(users *service.UserService, channels *service.ChannelService) {
	userService = users
	channelService = channels
}

type CreateUserParam struct {
	UserName  string `form:"user_name" json:"user_name"`
	FullName  string `form:"full_name" json:"full_name"`
	Email     string `form:"email" json:"email"`
	AvatarUrl string `form:"avatar_url" json:"avatar_url"`
	CoverUrl  string `form:"cover_url" json:"cover_url"`
}

type UpdateUserParam struct {
	FullName  string `form:"full_name" json:"full_name"`
	Email     string `form:"email" json:"email"`
	AvatarUrl string `form:"avatar_url" json:"avatar_url"`
	CoverUrl  string `form:"cover_url" json:"cover_url"`
}

type ChannelProfileParam struct {
	UserName string `path:"user_name"`
}

type ChannelStatsParam struct {
	ChannelId int64 `query:"channel_id"`
}

type WatchHistoryParam struct {
	PageNum  int64 `query:"page_num"`
	PageSize int64 `query:"page_size"`
}

func CreateUser(ctx context.Context, c *app.RequestContext) {
	var param CreateUserParam
	if err := c.BindAndValidate(&param); err != nil {
		hlog.Info(err)
		common.SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	user, err := userService.Create(ctx, param.UserName, param.FullName, param.Email, param.AvatarUrl, param.CoverUrl)
	if err != nil {
		common.SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	common.SendResponse(c, errno.Success, user)
}

func GetUser(ctx context.Context, c *app.RequestContext) {
	userId := common.ActorId(c)
	user, err := userService.Get(ctx, userId)
	if err != nil {
		common.SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	common.SendResponse(c, errno.Success, user)
}

func UpdateUser(ctx context.Context, c *app.RequestContext) {
	var param UpdateUserParam
	if err := c.BindAndValidate(&param); err != nil {
		hlog.Info(err)
		common.SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	userId := common.ActorId(c)
	user, err := userService.Update(ctx, userId, param.FullName, param.Email, param.AvatarUrl, param.CoverUrl)
	if err != nil {
		common.SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	common.SendResponse(c, errno.Success, user)
}

// ChannelProfile is viewable anonymously; the subscription flag is only
// meaningful for authenticated viewers.
func ChannelProfile(ctx context.Context, c *app.RequestContext) {
	var param ChannelProfileParam
	if err := c.BindAndValidate(&param); err != nil {
		hlog.Info(err)
		common.SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	viewerId := common.ActorId(c)
	profile, err := channelService.Profile(ctx, param.UserName, viewerId)
	if err != nil {
		common.SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	common.SendResponse(c, errno.Success, profile)
}

func ChannelStats(ctx context.Context, c *app.RequestContext) {
	var param ChannelStatsParam
	if err := c.BindAndValidate(&param); err != nil {
		hlog.Info(err)
		common.SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	channelId := param.ChannelId
	if channelId == 0 {
		channelId = common.ActorId(c)
	}
	stats, err := channelService.Stats(ctx, channelId)
	if err != nil {
		common.SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	common.SendResponse(c, errno.Success, stats)
}

func WatchHistory(ctx context.Context, c *app.RequestContext) {
	var param WatchHistoryParam
	if err := c.BindAndValidate(&param); err != nil {
		hlog.Info(err)
		common.SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	userId := common.ActorId(c)
	pageNum, pageSize := utils.NormalizePage(param.PageNum, param.PageSize)
	items, total, err := channelService.WatchHistory(ctx, userId, pageNum, pageSize)
	if err != nil {
		common.SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	common.SendResponse(c, errno.Success, common.PageData{
		Items:      items,
		PageNum:    pageNum,
		PageSize:   pageSize,
		TotalCount: total,
	})
}
