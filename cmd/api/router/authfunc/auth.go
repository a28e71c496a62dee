package authfunc

import (
	"context"
	"strconv"

	"vidtube.com/cmd/api/handlers/common"
	"vidtube.com/pkg/errno"

	"github.com/cloudwego/hertz/pkg/app"
)

// Auth requires an authenticated caller. Authentication itself happens
// upstream; the gateway forwards the verified identity in X-User-Id.
func Auth() app.HandlerFunc {
	return func(ctx context.Context, c *app.RequestContext) {
		userId, ok := identity(c)
		if !ok {
			common.SendResponse(c, errno.AuthorizationFailedErr, nil)
			c.Abort()
			return
		}
		c.Set("user_id", userId)
		c.Next(ctx)
	}
}

// OptionalAuth picks up the caller identity when present but lets
// anonymous requests through.
func OptionalAuth() app.HandlerFunc {
	return func(ctx context.Context, c *app.RequestContext) {
		if userId, ok := identity(c); ok {
			c.Set("user_id", userId)
		}
		c.Next(ctx)
	}
}

func identity(c *app.RequestContext) (int64, bool) {
	raw := string(c.GetHeader("X-User-Id"))
	if raw == "" {
		return 0, false
	}
	userId, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || userId <= 0 {
		return 0, false
	}
	return userId, true
}
