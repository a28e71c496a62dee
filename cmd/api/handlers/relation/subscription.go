package handlers

import (
	"context"

	"vidtube.com/cmd/api/handlers/common"
	"vidtube.com/cmd/relation/service"
	"vidtube.com/pkg/errno"
	"vidtube.com/pkg/utils"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/common/hlog"
)

var subscriptionService *service.SubscriptionService

func Init(subs *service.SubscriptionService) {
	subscriptionService = subs
}

type ToggleSubscriptionParam struct {
	ChannelId int64 `form:"channel_id" json:"channel_id"`
}

type SubscriptionStatusParam struct {
	ChannelId int64 `query:"channel_id"`
}

type SubscribedChannelsParam struct {
	PageNum  int64 `query:"page_num"`
	PageSize int64 `query:"page_size"`
}

func ToggleSubscription(ctx context.Context, c *app.RequestContext) {
	var param ToggleSubscriptionParam
	if err := c.BindAndValidate(&param); err != nil {
		hlog.Info(err)
		common.SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	userId := common.ActorId(c)
	subscribed, err := subscriptionService.Toggle(ctx, userId, param.ChannelId)
	if err != nil {
		common.SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	common.SendResponse(c, errno.Success, map[string]interface{}{"subscribed": subscribed})
}

func SubscriptionStatus(ctx context.Context, c *app.RequestContext) {
	var param SubscriptionStatusParam
	if err := c.BindAndValidate(&param); err != nil {
		hlog.Info(err)
		common.SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	userId := common.ActorId(c)
	subscribed, err := subscriptionService.IsSubscribed(ctx, userId, param.ChannelId)
	if err != nil {
		common.SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	count, err := subscriptionService.CountSubscribers(ctx, param.ChannelId)
	if err != nil {
		common.SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	common.SendResponse(c, errno.Success, map[string]interface{}{
		"subscribed":       subscribed,
		"subscriber_count": count,
	})
}

func SubscribedChannels(ctx context.Context, c *app.RequestContext) {
	var param SubscribedChannelsParam
	if err := c.BindAndValidate(&param); err != nil {
		hlog.Info(err)
		common.SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	userId := common.ActorId(c)
	pageNum, pageSize := utils.NormalizePage(param.PageNum, param.PageSize)
	channels, total, err := subscriptionService.SubscribedChannels(ctx, userId, pageNum, pageSize)
	if err != nil {
		common.SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	common.SendResponse(c, errno.Success, common.PageData{
		Items:      channels,
		PageNum:    pageNum,
		PageSize:   pageSize,
		TotalCount: total,
	})
}
