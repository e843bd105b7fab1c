package server

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	httpHandler "streamtube/interfaces/http"
	"streamtube/interfaces/middleware"
)

func InitiateRouter(
	authHandler httpHandler.IAuthHandler,
	videoHandler httpHandler.IVideoHandler,
	channelHandler httpHandler.IChannelHandler,
	commentHandler httpHandler.ICommentHandler,
	playlistHandler httpHandler.IPlaylistHandler,
	userDataHandler httpHandler.IUserDataHandler,
	secretKey string,
) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:5173", "http://localhost:4173", "http://localhost:3000"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Requested-With"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	router.POST("/login", authHandler.Login)
	router.POST("/register", authHandler.Register)
	router.GET("/healthz", func(ctx *gin.Context) {
		ctx.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// Browsing works signed out.
	router.GET("/videos", videoHandler.ListVideos)
	router.GET("/videos/trending", videoHandler.TrendingVideos)
	router.GET("/videos/:videoId", videoHandler.GetVideo)
	router.GET("/videos/:videoId/related", videoHandler.RelatedVideos)
	router.GET("/videos/:videoId/comments", commentHandler.ListComments)
	router.GET("/categories", videoHandler.Categories)
	router.GET("/channels", channelHandler.ListChannels)
	router.GET("/channels/:channelId", channelHandler.GetChannel)
	router.GET("/channels/:channelId/videos", channelHandler.ChannelVideos)

	api := router.Group("api")
	api.Use(middleware.Auth(secretKey))

	api.POST("/logout", authHandler.Logout)

	api.POST("/videos/upload", videoHandler.UploadVideo)
	api.GET("/catalog/videos", videoHandler.CatalogVideos)
	api.POST("/videos/:videoId/like", videoHandler.LikeVideo)
	api.DELETE("/videos/:videoId/like", videoHandler.UnlikeVideo)
	api.POST("/videos/:videoId/dislike", videoHandler.DislikeVideo)

	api.POST("/channels/:channelId/subscribe", channelHandler.Subscribe)
	api.DELETE("/channels/:channelId/subscribe", channelHandler.Unsubscribe)

	api.POST("/comments", commentHandler.AddComment)

	api.GET("/playlists", playlistHandler.ListPlaylists)
	api.POST("/playlists", playlistHandler.CreatePlaylist)
	api.POST("/playlists/:playlistId/videos", playlistHandler.AddToPlaylist)

	api.GET("/me/history", userDataHandler.WatchHistory)
	api.GET("/me/liked", userDataHandler.LikedVideos)
	api.GET("/me/subscriptions", userDataHandler.Subscriptions)
	api.GET("/me/feed", userDataHandler.SubscriptionFeed)

	return router
}
