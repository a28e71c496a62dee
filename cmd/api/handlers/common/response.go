package common

import (
	"vidtube.com/pkg/errno"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/protocol/consts"
)

type Response struct {
	Code    int64       `json:"code"`
	Message string      `json:"message"`
	Data    interface{} `json:"data"`
}

// PageData wraps a paged item list with its page metadata.
type PageData struct {
	Items      interface{} `json:"items"`
	PageNum    int64       `json:"page_num"`
	PageSize   int64       `json:"page_size"`
	TotalCount int64       `json:"total_count"`
}

// SendResponse pack response
func SendResponse(c *app.RequestContext, err error, data interface{}) {
	Err := errno.ConvertErr(err)
	c.JSON(consts.StatusOK, Response{
		Code:    Err.ErrCode,
		Message: Err.ErrMsg,
		Data:    data,
	})
}

// ActorId returns the authenticated user id set by the auth middleware,
// or zero when the request is anonymous.
func ActorId(c *app.RequestContext) int64 {
	v, ok := c.Get("user_id")
	if !ok {
		return 0
	}
	id, ok := v.(int64)
	if !ok {
		return 0
	}
	return id
}
