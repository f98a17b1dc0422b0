package main

import (
	"context"

	adminhandlers "StikTube.com/cmd/api/handlers/admin"
	channelhandlers "StikTube.com/cmd/api/handlers/channel"
	interactionhandlers "StikTube.com/cmd/api/handlers/interaction"
	relationhandlers "StikTube.com/cmd/api/handlers/relation"
	userhandlers "StikTube.com/cmd/api/handlers/user"
	videohandlers "StikTube.com/cmd/api/handlers/video"
	"StikTube.com/cmd/api/router/authfunc"
	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/app/server"
	"github.com/cloudwego/hertz/pkg/protocol/consts"
)

func register(r *server.Hertz) {
	r.GET("/ping", func(ctx context.Context, c *app.RequestContext) {
		c.JSON(consts.StatusOK, map[string]string{"message": "pong"})
	})

	api := r.Group("/api")

	auth := api.Group("/auth")
	auth.POST("/login", userhandlers.LoginUser)
	auth.GET("/refresh_token", userhandlers.RefreshToken)
	auth.POST("/logout", append(authfunc.Auth(), userhandlers.Logout)...)

	me := api.Group("/me", authfunc.Auth()...)
	me.GET("", userhandlers.GetUserInfo)
	me.PATCH("", userhandlers.UpdateUser)
	me.POST("/password", userhandlers.ChangePassword)
	me.POST("/avatar", userhandlers.UploadAvatar)

	api.GET("/feed", videohandlers.FeedList)
	api.GET("/shorts", videohandlers.Shorts)
	api.GET("/search", videohandlers.Search)
	api.GET("/watch/:videoId", append(authfunc.Optional(), videohandlers.Watch)...)
	api.GET("/utils/youtube-id", videohandlers.YoutubeIdPreview)

	videos := api.Group("/videos")
	videos.GET("", videohandlers.VideoList)
	videos.GET("/:videoId/comments", interactionhandlers.CommentList)
	videos.POST("", append(authfunc.Auth(), videohandlers.Publish)...)
	videos.PATCH("/:videoId", append(authfunc.Auth(), videohandlers.UpdateVideo)...)
	videos.DELETE("/:videoId", append(authfunc.Auth(), videohandlers.DeleteVideo)...)
	videos.POST("/:videoId/like", append(authfunc.Auth(), interactionhandlers.LikeAction)...)
	videos.POST("/:videoId/comments", append(authfunc.Auth(), interactionhandlers.CommentCreate)...)
	api.DELETE("/comments/:commentId", append(authfunc.Auth(), interactionhandlers.CommentDelete)...)

	channels := api.Group("/channels")
	channels.POST("", append(authfunc.Auth(), channelhandlers.CreateChannel)...)
	channels.GET("/:channelId", append(authfunc.Optional(), channelhandlers.ChannelPage)...)
	channels.POST("/:channelId/subscribe", append(authfunc.Auth(), relationhandlers.Subscribe)...)
	channels.POST("/:channelId/image", append(authfunc.Auth(), channelhandlers.UploadChannelImage)...)
	api.GET("/studio", append(authfunc.Auth(), channelhandlers.Studio)...)

	admin := api.Group("/admin", authfunc.Admin()...)
	admin.GET("/panel", adminhandlers.AdminPanel)
	admin.POST("/subscribers", adminhandlers.AdjustSubscribers)
	admin.POST("/subscriptions", adminhandlers.CreateSubscription)
	admin.DELETE("/subscriptions/:subscriptionId", adminhandlers.DeleteSubscription)
}
