package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"streamtube/domain/model"
	"streamtube/usecase"
)

type IUserDataHandler interface {
	WatchHistory(ctx *gin.Context)
	LikedVideos(ctx *gin.Context)
	Subscriptions(ctx *gin.Context)
	SubscriptionFeed(ctx *gin.Context)
}

// UserDataHandler exposes the per-user derived views: the id lists resolved
// against the catalog, in list order.
type UserDataHandler struct {
	storeUsecase usecase.IStoreUsecase
}

func NewUserDataHandler(storeUsecase usecase.IStoreUsecase) IUserDataHandler {
	return &UserDataHandler{storeUsecase: storeUsecase}
}

// WatchHistory handles GET /api/me/history, most recent first.
func (h *UserDataHandler) WatchHistory(ctx *gin.Context) {
	videos := usecase.VideosByIDs(h.storeUsecase.Videos(), h.storeUsecase.WatchHistory())
	ctx.JSON(http.StatusOK, gin.H{"success": true, "data": videos})
}

// LikedVideos handles GET /api/me/liked.
func (h *UserDataHandler) LikedVideos(ctx *gin.Context) {
	videos := usecase.VideosByIDs(h.storeUsecase.Videos(), h.storeUsecase.LikedVideos())
	ctx.JSON(http.StatusOK, gin.H{"success": true, "data": videos})
}

// Subscriptions handles GET /api/me/subscriptions.
func (h *UserDataHandler) Subscriptions(ctx *gin.Context) {
	subscribed := h.storeUsecase.Subscriptions()
	channels := []model.Channel{}
	for _, id := range subscribed {
		if channel, ok := h.storeUsecase.ChannelByID(id); ok {
			channels = append(channels, channel)
		}
	}
	ctx.JSON(http.StatusOK, gin.H{"success": true, "data": channels})
}

// SubscriptionFeed handles GET /api/me/feed.
func (h *UserDataHandler) SubscriptionFeed(ctx *gin.Context) {
	feed := usecase.SubscriptionFeed(h.storeUsecase.Videos(), h.storeUsecase.Subscriptions())
	ctx.JSON(http.StatusOK, gin.H{"success": true, "data": feed})
}
