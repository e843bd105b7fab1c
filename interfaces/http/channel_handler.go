package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"streamtube/usecase"
)

type IChannelHandler interface {
	ListChannels(ctx *gin.Context)
	GetChannel(ctx *gin.Context)
	ChannelVideos(ctx *gin.Context)
	Subscribe(ctx *gin.Context)
	Unsubscribe(ctx *gin.Context)
}

type ChannelHandler struct {
	storeUsecase usecase.IStoreUsecase
	syncUsecase  usecase.ISyncUsecase
}

func NewChannelHandler(storeUsecase usecase.IStoreUsecase, syncUsecase usecase.ISyncUsecase) IChannelHandler {
	return &ChannelHandler{storeUsecase: storeUsecase, syncUsecase: syncUsecase}
}

// ListChannels handles GET /channels.
func (h *ChannelHandler) ListChannels(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, gin.H{"success": true, "data": h.storeUsecase.Channels()})
}

// GetChannel handles GET /channels/:channelId.
func (h *ChannelHandler) GetChannel(ctx *gin.Context) {
	channel, ok := h.storeUsecase.ChannelByID(ctx.Param("channelId"))
	if !ok {
		ctx.JSON(http.StatusNotFound, gin.H{"error": "channel not found"})
		return
	}
	subscribed := usecase.IsSubscribed(h.storeUsecase.Subscriptions(), channel.ID)
	ctx.JSON(http.StatusOK, gin.H{"success": true, "data": channel, "subscribed": subscribed})
}

// ChannelVideos handles GET /channels/:channelId/videos.
func (h *ChannelHandler) ChannelVideos(ctx *gin.Context) {
	videos := usecase.VideosByChannel(h.storeUsecase.Videos(), ctx.Param("channelId"))
	ctx.JSON(http.StatusOK, gin.H{"success": true, "data": videos})
}

// Subscribe handles POST /api/channels/:channelId/subscribe.
func (h *ChannelHandler) Subscribe(ctx *gin.Context) {
	channelID := ctx.Param("channelId")
	h.storeUsecase.Subscribe(channelID)
	synced := h.syncUsecase.SubscribeDb(ctx.Request.Context(), channelID)
	ctx.JSON(http.StatusOK, gin.H{"success": true, "synced": synced})
}

// Unsubscribe handles DELETE /api/channels/:channelId/subscribe.
func (h *ChannelHandler) Unsubscribe(ctx *gin.Context) {
	channelID := ctx.Param("channelId")
	h.storeUsecase.Unsubscribe(channelID)
	synced := h.syncUsecase.UnsubscribeDb(ctx.Request.Context(), channelID)
	ctx.JSON(http.StatusOK, gin.H{"success": true, "synced": synced})
}
