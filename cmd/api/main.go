package main

import (
	"context"
	"fmt"

	interactionhandlers "vidtube.com/cmd/api/handlers/interaction"
	playlisthandlers "vidtube.com/cmd/api/handlers/playlist"
	posthandlers "vidtube.com/cmd/api/handlers/post"
	relationhandlers "vidtube.com/cmd/api/handlers/relation"
	userhandlers "vidtube.com/cmd/api/handlers/user"
	videohandlers "vidtube.com/cmd/api/handlers/video"
	interactiondb "vidtube.com/cmd/interaction/dal/db"
	interactionredis "vidtube.com/cmd/interaction/infras/redis"
	interactionservice "vidtube.com/cmd/interaction/service"
	playlistdb "vidtube.com/cmd/playlist/dal/db"
	playlistservice "vidtube.com/cmd/playlist/service"
	postdb "vidtube.com/cmd/post/dal/db"
	postservice "vidtube.com/cmd/post/service"
	relationdb "vidtube.com/cmd/relation/dal/db"
	relationservice "vidtube.com/cmd/relation/service"
	userdb "vidtube.com/cmd/user/dal/db"
	userservice "vidtube.com/cmd/user/service"
	videodb "vidtube.com/cmd/video/dal/db"
	videoredis "vidtube.com/cmd/video/infras/redis"
	videoservice "vidtube.com/cmd/video/service"
	"vidtube.com/config"
	"vidtube.com/pkg/database"
	"vidtube.com/pkg/errno"
	"vidtube.com/pkg/utils"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/app/middlewares/server/recovery"
	"github.com/cloudwego/hertz/pkg/app/server"
	"github.com/cloudwego/hertz/pkg/common/hlog"
	"github.com/cloudwego/hertz/pkg/protocol/consts"
	"github.com/hertz-contrib/cors"
	"github.com/sirupsen/logrus"
)

func Init() {
	config.Init()
	if err := utils.InitSnowflake(config.ConfigInfo.Snowflake.WorkerID); err != nil {
		logrus.Fatalf("Failed to init snowflake node: %v", err)
	}

	db, err := database.Open()
	if err != nil {
		logrus.Fatalf("Failed to connect to mysql: %v", err)
	}

	users := userdb.NewUserDB(db)
	videos := videodb.NewVideoDB(db)
	views := videodb.NewViewDB(db)
	watchHistory := videodb.NewWatchHistoryDB(db)
	likes := interactiondb.NewLikeDB(db)
	comments := interactiondb.NewCommentDB(db)
	targets := interactiondb.NewTargetDB(db)
	subscriptions := relationdb.NewSubscriptionDB(db)
	playlists := playlistdb.NewPlaylistDB(db)
	posts := postdb.NewPostDB(db)

	likeCountCache := interactionredis.NewCountCache(interactionredis.NewClient())
	videoInfoCache := videoredis.NewVideoInfoCache(videoredis.NewClient())

	likeService := interactionservice.NewLikeService(likes, targets, videos, users, likeCountCache)
	commentService := interactionservice.NewCommentService(comments, targets, users)
	subscriptionService := relationservice.NewSubscriptionService(
		subscriptions, users, config.ConfigInfo.Policy.AllowSelfSubscription)
	viewService := videoservice.NewViewService(
		views, watchHistory, videos, videoInfoCache,
		config.ConfigInfo.Policy.RecordRepeatWatchHistory)
	videoService := videoservice.NewVideoService(
		videos, users, commentService, likeService, viewService, videoInfoCache)
	playlistService := playlistservice.NewPlaylistService(playlists, videos, users)
	postService := postservice.NewPostService(posts, users)
	userService := userservice.NewUserService(users)
	channelService := userservice.NewChannelService(users, subscriptions, videos, watchHistory)

	interactionhandlers.Init(likeService, commentService)
	relationhandlers.Init(subscriptionService)
	videohandlers.Init(videoService)
	playlisthandlers.Init(playlistService)
	posthandlers.Init(postService)
	userhandlers.Init(userService, channelService)
}

func main() {
	Init()
	r := server.New(
		server.WithHostPorts(config.ConfigInfo.Server.Addr),
		server.WithHandleMethodNotAllowed(true),
	)

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:8870", "http://localhost:8888"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowCredentials: true,
		MaxAge:           12 * 3600,
	}))

	r.Use(recovery.Recovery(recovery.WithRecoveryHandler(
		func(ctx context.Context, c *app.RequestContext, err interface{}, stack []byte) {
			hlog.SystemLogger().CtxErrorf(ctx, "[Recovery] err=%v\nstack=%s", err, stack)
			c.JSON(consts.StatusInternalServerError, map[string]interface{}{
				"code":    errno.ServiceErrCode,
				"message": fmt.Sprintf("[Recovery] err=%v", err),
			})
		})))

	register(r)
	r.Spin()
}
