package main

import (
	interaction "vidtube.com/cmd/api/handlers/interaction"
	playlist "vidtube.com/cmd/api/handlers/playlist"
	post "vidtube.com/cmd/api/handlers/post"
	relation "vidtube.com/cmd/api/handlers/relation"
	user "vidtube.com/cmd/api/handlers/user"
	video "vidtube.com/cmd/api/handlers/video"
	"vidtube.com/cmd/api/router/authfunc"

	"github.com/cloudwego/hertz/pkg/app/server"
)

func register(r *server.Hertz) {
	v1 := r.Group("/v1")

	likes := v1.Group("/like", authfunc.Auth())
	likes.POST("/toggle", interaction.ToggleLike)
	likes.GET("/status", interaction.LikeStatus)
	likes.GET("/videos", interaction.LikedVideos)

	comments := v1.Group("/comment")
	comments.GET("/list", interaction.ListComments)
	comments.POST("/create", authfunc.Auth(), interaction.CreateComment)
	comments.POST("/update", authfunc.Auth(), interaction.UpdateComment)
	comments.POST("/delete", authfunc.Auth(), interaction.DeleteComment)

	subs := v1.Group("/subscription", authfunc.Auth())
	subs.POST("/toggle", relation.ToggleSubscription)
	subs.GET("/status", relation.SubscriptionStatus)
	subs.GET("/channels", relation.SubscribedChannels)

	videos := v1.Group("/video")
	videos.GET("/detail", authfunc.OptionalAuth(), video.VideoDetail)
	videos.GET("/search", video.SearchVideos)
	videos.POST("/publish", authfunc.Auth(), video.PublishVideo)
	videos.POST("/update", authfunc.Auth(), video.UpdateVideo)
	videos.POST("/delete", authfunc.Auth(), video.DeleteVideo)
	videos.POST("/toggle-publish", authfunc.Auth(), video.TogglePublish)

	playlists := v1.Group("/playlist")
	playlists.GET("/detail", playlist.GetPlaylist)
	playlists.GET("/list", authfunc.OptionalAuth(), playlist.ListPlaylists)
	playlists.POST("/create", authfunc.Auth(), playlist.CreatePlaylist)
	playlists.POST("/update", authfunc.Auth(), playlist.UpdatePlaylist)
	playlists.POST("/delete", authfunc.Auth(), playlist.DeletePlaylist)
	playlists.POST("/videos/add", authfunc.Auth(), playlist.AddPlaylistVideos)
	playlists.POST("/videos/remove", authfunc.Auth(), playlist.RemovePlaylistVideos)

	posts := v1.Group("/post")
	posts.GET("/detail", post.GetPost)
	posts.GET("/list", authfunc.OptionalAuth(), post.ListPosts)
	posts.POST("/create", authfunc.Auth(), post.CreatePost)
	posts.POST("/update", authfunc.Auth(), post.UpdatePost)
	posts.POST("/delete", authfunc.Auth(), post.DeletePost)

	users := v1.Group("/user")
	users.POST("/create", user.CreateUser)
	users.GET("/info", authfunc.Auth(), user.GetUser)
	users.POST("/update", authfunc.Auth(), user.UpdateUser)
	users.GET("/history", authfunc.Auth(), user.WatchHistory)

	channels := v1.Group("/channel")
	channels.GET("/stats", authfunc.OptionalAuth(), user.ChannelStats)
	channels.GET("/:user_name", authfunc.OptionalAuth(), user.ChannelProfile)
}
