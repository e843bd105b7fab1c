package repository

import (
	"context"

	"streamtube/domain/model"
)

// ICatalog persists uploaded videos and their channel snapshots to the
// remote catalog. Writes are best-effort: the local store is already the
// source of truth for the running client.
type ICatalog interface {
	SaveVideo(ctx context.Context, video model.Video) error
	SaveChannel(ctx context.Context, channel model.Channel) error
	ListVideos(ctx context.Context, limit, offset int) ([]model.Video, int64, error)
}
