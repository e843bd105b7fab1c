package http

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"streamtube/domain/dto"
	"streamtube/domain/model"
	"streamtube/domain/repository"
	"streamtube/infrastructure/logger"
	"streamtube/infrastructure/utils"
	"streamtube/usecase"
)

const defaultRelatedLimit = 10

type IVideoHandler interface {
	ListVideos(ctx *gin.Context)
	TrendingVideos(ctx *gin.Context)
	GetVideo(ctx *gin.Context)
	RelatedVideos(ctx *gin.Context)
	UploadVideo(ctx *gin.Context)
	LikeVideo(ctx *gin.Context)
	UnlikeVideo(ctx *gin.Context)
	DislikeVideo(ctx *gin.Context)
	Categories(ctx *gin.Context)
	CatalogVideos(ctx *gin.Context)
}

type VideoHandler struct {
	storeUsecase usecase.IStoreUsecase
	syncUsecase  usecase.ISyncUsecase
	catalog      repository.ICatalog // optional
}

func NewVideoHandler(storeUsecase usecase.IStoreUsecase, syncUsecase usecase.ISyncUsecase, catalog repository.ICatalog) IVideoHandler {
	return &VideoHandler{
		storeUsecase: storeUsecase,
		syncUsecase:  syncUsecase,
		catalog:      catalog,
	}
}

// ListVideos handles GET /videos?category=&q=. A non-empty q searches title,
// description and tags; otherwise the category filter applies.
func (h *VideoHandler) ListVideos(ctx *gin.Context) {
	videos := h.storeUsecase.Videos()

	if q := ctx.Query("q"); q != "" {
		h.storeUsecase.SetSearchQuery(q)
		ctx.JSON(http.StatusOK, gin.H{"success": true, "data": usecase.SearchVideos(videos, q)})
		return
	}

	category := ctx.Query("category")
	if category != "" {
		h.storeUsecase.SetSelectedCategory(category)
	}
	ctx.JSON(http.StatusOK, gin.H{"success": true, "data": usecase.FilterByCategory(videos, category)})
}

// TrendingVideos handles GET /videos/trending.
func (h *VideoHandler) TrendingVideos(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, gin.H{"success": true, "data": usecase.TrendingVideos(h.storeUsecase.Videos())})
}

// GetVideo handles GET /videos/:videoId. A successful lookup counts a view
// and records the watch locally; the remote write-through is best effort.
func (h *VideoHandler) GetVideo(ctx *gin.Context) {
	videoID := ctx.Param("videoId")
	video, ok := h.storeUsecase.VideoByID(videoID)
	if !ok {
		ctx.JSON(http.StatusNotFound, gin.H{"error": "video not found"})
		return
	}

	h.storeUsecase.UpdateVideoViews(videoID)
	h.storeUsecase.AddToWatchHistory(videoID)
	synced := h.syncUsecase.AddToWatchHistoryDb(ctx.Request.Context(), videoID)

	video.Views++
	liked := usecase.IsLiked(h.storeUsecase.LikedVideos(), videoID)
	ctx.JSON(http.StatusOK, gin.H{"success": true, "data": video, "liked": liked, "synced": synced})
}

// RelatedVideos handles GET /videos/:videoId/related?limit=.
func (h *VideoHandler) RelatedVideos(ctx *gin.Context) {
	limit := defaultRelatedLimit
	if raw := ctx.Query("limit"); raw != "" {
		if val, err := strconv.Atoi(raw); err == nil && val > 0 {
			limit = val
		}
	}
	related := usecase.RelatedVideos(h.storeUsecase.Videos(), ctx.Param("videoId"), limit)
	ctx.JSON(http.StatusOK, gin.H{"success": true, "data": related})
}

// UploadVideo handles POST /api/videos/upload.
func (h *VideoHandler) UploadVideo(ctx *gin.Context) {
	var req dto.UploadVideoRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		logger.GetLogger().WithField("error", err).Error(ErrorUnmarshal)
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if msg := validateUpload(req); msg != "" {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": msg})
		return
	}

	userID := ctx.GetString("user_id")
	username := ctx.GetString("username")
	channel := h.channelForUser(userID, username)

	video := model.Video{
		ID:            utils.NewID(),
		Title:         strings.TrimSpace(req.Title),
		Description:   strings.TrimSpace(req.Description),
		ThumbnailURL:  req.ThumbnailURL,
		VideoURL:      req.VideoURL,
		Duration:      req.Duration,
		CreatedAt:     utils.GetCurrentTime(),
		ChannelID:     channel.ID,
		ChannelName:   channel.Name,
		ChannelAvatar: channel.Avatar,
		Tags:          req.Tags,
		Category:      req.Category,
	}
	h.storeUsecase.AddVideo(video)

	if h.catalog != nil {
		if err := h.catalog.SaveVideo(ctx.Request.Context(), video); err != nil {
			logger.GetLogger().WithField("error", err).WithField("video_id", video.ID).Warn("Upload not mirrored to catalog")
		}
		if err := h.catalog.SaveChannel(ctx.Request.Context(), channel); err != nil {
			logger.GetLogger().WithField("error", err).WithField("channel_id", channel.ID).Warn("Channel snapshot not mirrored to catalog")
		}
	}

	ctx.JSON(http.StatusCreated, gin.H{"success": true, "data": video})
}

// CatalogVideos handles GET /api/catalog/videos?limit=&offset=, listing the
// remotely mirrored uploads.
func (h *VideoHandler) CatalogVideos(ctx *gin.Context) {
	if h.catalog == nil {
		ctx.JSON(http.StatusServiceUnavailable, gin.H{"error": "catalog not configured"})
		return
	}
	limit := 20
	if raw := ctx.Query("limit"); raw != "" {
		if val, err := strconv.Atoi(raw); err == nil && val > 0 && val <= 100 {
			limit = val
		}
	}
	offset := 0
	if raw := ctx.Query("offset"); raw != "" {
		if val, err := strconv.Atoi(raw); err == nil && val >= 0 {
			offset = val
		}
	}
	videos, total, err := h.catalog.ListVideos(ctx.Request.Context(), limit, offset)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "catalog unavailable"})
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"success": true, "data": videos, "total": total})
}

// LikeVideo handles POST /api/videos/:videoId/like.
func (h *VideoHandler) LikeVideo(ctx *gin.Context) {
	videoID := ctx.Param("videoId")
	h.storeUsecase.LikeVideo(videoID)
	synced := h.syncUsecase.LikeVideoDb(ctx.Request.Context(), videoID)
	ctx.JSON(http.StatusOK, gin.H{"success": true, "synced": synced})
}

// UnlikeVideo handles DELETE /api/videos/:videoId/like. The liked list only
// lives remotely once synced, so this is a pure write-through.
func (h *VideoHandler) UnlikeVideo(ctx *gin.Context) {
	videoID := ctx.Param("videoId")
	synced := h.syncUsecase.UnlikeVideoDb(ctx.Request.Context(), videoID)
	ctx.JSON(http.StatusOK, gin.H{"success": true, "synced": synced})
}

// DislikeVideo handles POST /api/videos/:videoId/dislike. Dislikes stay local.
func (h *VideoHandler) DislikeVideo(ctx *gin.Context) {
	h.storeUsecase.DislikeVideo(ctx.Param("videoId"))
	ctx.JSON(http.StatusOK, gin.H{"success": true})
}

// Categories handles GET /categories.
func (h *VideoHandler) Categories(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, gin.H{"success": true, "data": model.Categories})
}

func (h *VideoHandler) channelForUser(userID, username string) model.Channel {
	for _, c := range h.storeUsecase.Channels() {
		if c.UserID == userID {
			return c
		}
	}
	return model.Channel{ID: "channel-" + userID, Name: username}
}

func validateUpload(req dto.UploadVideoRequest) string {
	title := strings.TrimSpace(req.Title)
	if len(title) < 3 || len(title) > 100 {
		return "title must be 3-100 characters"
	}
	description := strings.TrimSpace(req.Description)
	if len(description) < 10 || len(description) > 5000 {
		return "description must be 10-5000 characters"
	}
	if !model.ValidCategory(req.Category) {
		return "unknown category"
	}
	if len(req.Tags) > model.MaxTags {
		return "too many tags"
	}
	return ""
}
