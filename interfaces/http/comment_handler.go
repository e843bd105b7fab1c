package http

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"streamtube/domain/dto"
	"streamtube/domain/model"
	"streamtube/domain/repository"
	"streamtube/infrastructure/logger"
	"streamtube/infrastructure/utils"
	"streamtube/usecase"
)

const archiveFetchLimit = 200

type ICommentHandler interface {
	ListComments(ctx *gin.Context)
	AddComment(ctx *gin.Context)
}

type CommentHandler struct {
	storeUsecase usecase.IStoreUsecase
	archive      repository.ICommentArchive // optional
}

func NewCommentHandler(storeUsecase usecase.IStoreUsecase, archive repository.ICommentArchive) ICommentHandler {
	return &CommentHandler{storeUsecase: storeUsecase, archive: archive}
}

// ListComments handles GET /videos/:videoId/comments. Archived comments are
// merged in behind the in-memory ones, deduplicated by id.
func (h *CommentHandler) ListComments(ctx *gin.Context) {
	videoID := ctx.Param("videoId")
	comments := usecase.CommentsForVideo(h.storeUsecase.Comments(), videoID)

	if h.archive != nil {
		archived, err := h.archive.ListByVideo(ctx.Request.Context(), videoID, archiveFetchLimit)
		if err != nil {
			logger.GetLogger().WithField("error", err).WithField("video_id", videoID).Warn("Comment archive unavailable")
		} else {
			seen := make(map[string]struct{}, len(comments))
			for _, c := range comments {
				seen[c.ID] = struct{}{}
			}
			for _, c := range archived {
				if _, ok := seen[c.ID]; !ok {
					comments = append(comments, c)
				}
			}
		}
	}

	ctx.JSON(http.StatusOK, gin.H{"success": true, "data": comments})
}

// AddComment handles POST /api/comments.
func (h *CommentHandler) AddComment(ctx *gin.Context) {
	var req dto.AddCommentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		logger.GetLogger().WithField("error", err).Error(ErrorUnmarshal)
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	content := strings.TrimSpace(req.Content)
	if len(content) < model.MinCommentLength || len(content) > model.MaxCommentLength {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "comment must be 1-2000 characters"})
		return
	}
	if _, ok := h.storeUsecase.VideoByID(req.VideoID); !ok {
		ctx.JSON(http.StatusNotFound, gin.H{"error": "video not found"})
		return
	}

	comment := model.Comment{
		ID:        utils.NewID(),
		VideoID:   req.VideoID,
		UserID:    ctx.GetString("user_id"),
		Username:  ctx.GetString("username"),
		Content:   content,
		CreatedAt: utils.GetCurrentTime(),
	}
	h.storeUsecase.AddComment(comment)

	if h.archive != nil {
		if err := h.archive.Save(ctx.Request.Context(), comment); err != nil {
			logger.GetLogger().WithField("error", err).WithField("comment_id", comment.ID).Warn("Comment not archived")
		}
	}

	ctx.JSON(http.StatusCreated, gin.H{"success": true, "data": comment})
}
