package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"streamtube/domain/dto"
	"streamtube/domain/model"
	"streamtube/infrastructure/logger"
	"streamtube/infrastructure/utils"
	"streamtube/usecase"
)

type IPlaylistHandler interface {
	ListPlaylists(ctx *gin.Context)
	CreatePlaylist(ctx *gin.Context)
	AddToPlaylist(ctx *gin.Context)
}

type PlaylistHandler struct {
	storeUsecase usecase.IStoreUsecase
}

func NewPlaylistHandler(storeUsecase usecase.IStoreUsecase) IPlaylistHandler {
	return &PlaylistHandler{storeUsecase: storeUsecase}
}

// ListPlaylists handles GET /api/playlists.
func (h *PlaylistHandler) ListPlaylists(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, gin.H{"success": true, "data": h.storeUsecase.Playlists()})
}

// CreatePlaylist handles POST /api/playlists.
func (h *PlaylistHandler) CreatePlaylist(ctx *gin.Context) {
	var req dto.CreatePlaylistRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		logger.GetLogger().WithField("error", err).Error(ErrorUnmarshal)
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	playlist := model.Playlist{
		ID:          utils.NewID(),
		Title:       req.Title,
		Description: req.Description,
		VideoIDs:    []string{},
		UserID:      ctx.GetString("user_id"),
		IsPublic:    req.IsPublic,
		CreatedAt:   utils.GetCurrentTime(),
	}
	h.storeUsecase.CreatePlaylist(playlist)

	ctx.JSON(http.StatusCreated, gin.H{"success": true, "data": playlist})
}

// AddToPlaylist handles POST /api/playlists/:playlistId/videos. Duplicates
// are allowed: a playlist is an ordered multiset.
func (h *PlaylistHandler) AddToPlaylist(ctx *gin.Context) {
	var req dto.AddToPlaylistRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		logger.GetLogger().WithField("error", err).Error(ErrorUnmarshal)
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if _, ok := h.storeUsecase.VideoByID(req.VideoID); !ok {
		ctx.JSON(http.StatusNotFound, gin.H{"error": "video not found"})
		return
	}

	h.storeUsecase.AddToPlaylist(ctx.Param("playlistId"), req.VideoID)
	ctx.JSON(http.StatusOK, gin.H{"success": true})
}
