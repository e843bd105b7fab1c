package servicebus

import (
	"context"

	"github.com/Azure/azure-sdk-for-go/sdk/azidentity"
	"github.com/Azure/azure-sdk-for-go/sdk/messaging/azservicebus"
	"streamtube/domain/repository"
	"streamtube/infrastructure/logger"
)

// NewServiceBus creates an Azure Service Bus client for the given namespace
// using the default credential chain.
func NewServiceBus(namespace string) (*azservicebus.Client, error) {
	credential, err := azidentity.NewDefaultAzureCredential(nil)
	if err != nil {
		return nil, err
	}
	client, err := azservicebus.NewClient(namespace, credential, nil)
	if err != nil {
		return nil, err
	}
	return client, nil
}

// ActivityBus publishes user-activity events to a Service Bus queue. It is
// the Azure counterpart of the Pub/Sub publisher.
type ActivityBus struct {
	client *azservicebus.Client
	queue  string
}

func NewActivityBus(client *azservicebus.Client, queue string) repository.IActivity {
	return &ActivityBus{client: client, queue: queue}
}

func (b *ActivityBus) Publish(ctx context.Context, payload []byte) error {
	sender, err := b.client.NewSender(b.queue, nil)
	if err != nil {
		logger.GetLogger().WithField("error", err).Error("Error while making new sender service bus.")
		return err
	}
	defer func() {
		if err := sender.Close(context.Background()); err != nil {
			logger.GetLogger().WithField("error", err).Error("Error while closing sender.")
		}
	}()

	if err := sender.SendMessage(ctx, &azservicebus.Message{Body: payload}, nil); err != nil {
		logger.GetLogger().WithField("error", err).Error("Error while sending activity event.")
		return err
	}
	return nil
}
