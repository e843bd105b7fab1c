package persistence

import (
	"context"

	"streamtube/domain/model"
	"streamtube/domain/repository"
	"streamtube/infrastructure/logger"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

// CommentArchiveRepository stores comment trees in MongoDB. The document
// model fits the recursive reply shape; nesting is clamped on both write and
// read so a hostile document cannot blow up deserialization.
type CommentArchiveRepository struct {
	collection *mongo.Collection
}

func NewCommentArchiveRepository(client *mongo.Client, database string) repository.ICommentArchive {
	return &CommentArchiveRepository{
		collection: client.Database(database).Collection("comments"),
	}
}

func (r *CommentArchiveRepository) Save(ctx context.Context, comment model.Comment) error {
	comment.ClampReplies(model.MaxReplyDepth)
	_, err := r.collection.ReplaceOne(
		ctx,
		bson.M{"id": comment.ID},
		comment,
		options.Replace().SetUpsert(true),
	)
	if err != nil {
		logger.GetLogger().WithField("error", err).WithField("comment_id", comment.ID).Error("Failed to archive comment")
	}
	return err
}

func (r *CommentArchiveRepository) ListByVideo(ctx context.Context, videoID string, limit int) ([]model.Comment, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "createdat", Value: -1}}).
		SetLimit(int64(limit))
	cursor, err := r.collection.Find(ctx, bson.M{"videoid": videoID}, opts)
	if err != nil {
		logger.GetLogger().WithField("error", err).WithField("video_id", videoID).Error("Failed to list archived comments")
		return nil, err
	}
	defer cursor.Close(ctx)

	var comments []model.Comment
	if err := cursor.All(ctx, &comments); err != nil {
		logger.GetLogger().WithField("error", err).Error("Failed to decode archived comments")
		return nil, err
	}
	for i := range comments {
		comments[i].ClampReplies(model.MaxReplyDepth)
	}
	return comments, nil
}
