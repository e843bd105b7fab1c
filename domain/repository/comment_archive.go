package repository

import (
	"context"

	"streamtube/domain/model"
)

// ICommentArchive stores submitted comments, reply trees included.
// Implementations clamp reply nesting to model.MaxReplyDepth in both
// directions.
type ICommentArchive interface {
	Save(ctx context.Context, comment model.Comment) error
	ListByVideo(ctx context.Context, videoID string, limit int) ([]model.Comment, error)
}
