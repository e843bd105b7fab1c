package pubsub

import (
	"context"

	"cloud.google.com/go/pubsub"
	"streamtube/domain/repository"
	"streamtube/infrastructure/logger"
)

// NewPubSub creates a Pub/Sub client for the configured project.
func NewPubSub(ctx context.Context, projectID string) (*pubsub.Client, error) {
	client, err := pubsub.NewClient(ctx, projectID)
	if err != nil {
		return nil, err
	}
	return client, nil
}

// ActivityPublisher publishes user-activity events to a Pub/Sub topic.
type ActivityPublisher struct {
	client *pubsub.Client
	topic  string
}

func NewActivityPublisher(client *pubsub.Client, topic string) repository.IActivity {
	return &ActivityPublisher{client: client, topic: topic}
}

func (p *ActivityPublisher) Publish(ctx context.Context, payload []byte) error {
	topic := p.client.Topic(p.topic)

	exists, err := topic.Exists(ctx)
	if err != nil {
		return err
	}
	if !exists {
		logger.GetLogger().WithField("topic", p.topic).Info("Topic doesn't exist - creating it")
		if _, err := p.client.CreateTopic(ctx, p.topic); err != nil {
			return err
		}
	}

	serverID, err := topic.Publish(ctx, &pubsub.Message{Data: payload}).Get(ctx)
	if err != nil {
		logger.GetLogger().WithField("error", err).Error("Error while publishing activity event")
		return err
	}
	logger.GetLogger().WithField("serverId", serverID).Debug("Activity event published")
	return nil
}
