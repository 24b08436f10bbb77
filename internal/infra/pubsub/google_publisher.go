package pubsub

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"cropsat/internal/domain/service"

	"cloud.google.com/go/pubsub/v2"
	pubsubpb "cloud.google.com/go/pubsub/v2/apiv1/pubsubpb"
	"github.com/pkg/errors"
)

// googlePubSubPublisher implements JobPublisher using Google Cloud Pub/Sub.
// Attempt counting and backoff are delegated to the push subscription's
// retry policy and dead-letter configuration.
type googlePubSubPublisher struct {
	client    *pubsub.Client
	publisher *pubsub.Publisher
	logger    *slog.Logger
}

// NewGooglePubSubPublisher creates a new Google Pub/Sub publisher
func NewGooglePubSubPublisher(ctx context.Context, projectID, topicID string, logger *slog.Logger) (service.JobPublisher, error) {
	client, err := pubsub.NewClient(ctx, projectID)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	// Check if topic exists using TopicAdminClient
	topicPath := fmt.Sprintf("projects/%s/topics/%s", projectID, topicID)
	_, err = client.TopicAdminClient.GetTopic(ctx, &pubsubpb.GetTopicRequest{
		Topic: topicPath,
	})
	if err != nil {
		client.Close()

		return nil, errors.Wrapf(err, "failed to get topic %s", topicID)
	}

	publisher := client.Publisher(topicID)

	logger.Info("Google Pub/Sub publisher initialized",
		slog.String("project_id", projectID),
		slog.String("topic_id", topicID),
	)

	return &googlePubSubPublisher{
		client:    client,
		publisher: publisher,
		logger:    logger,
	}, nil
}

// PublishFetchJob publishes a fetch job to Google Pub/Sub
func (p *googlePubSubPublisher) PublishFetchJob(ctx context.Context, job *service.FetchJob) error {
	// Serialize the job to JSON
	data, err := json.Marshal(job)
	if err != nil {
		return errors.WithStack(err)
	}

	// Create Pub/Sub message with attributes for filtering and tracing
	attributes := map[string]string{
		"coordinate_id": job.CoordinateID,
		"farm_id":       job.FarmID,
	}
	if job.RequestID != "" {
		attributes["request_id"] = job.RequestID
	}

	msg := &pubsub.Message{
		Data:       data,
		Attributes: attributes,
	}

	p.logger.Info("[GooglePubSub] Publishing fetch job",
		slog.String("coordinate_id", job.CoordinateID),
		slog.String("farm_id", job.FarmID),
	)

	// Publish message
	result := p.publisher.Publish(ctx, msg)

	// Wait for publish result
	serverID, err := result.Get(ctx)
	if err != nil {
		return errors.WithStack(err)
	}

	p.logger.Info("[GooglePubSub] Fetch job published successfully",
		slog.String("coordinate_id", job.CoordinateID),
		slog.String("server_id", serverID),
	)

	return nil
}

// Close releases Pub/Sub client resources
func (p *googlePubSubPublisher) Close() error {
	if p.publisher != nil {
		p.publisher.Stop()
	}
	if p.client != nil {
		return errors.WithStack(p.client.Close())
	}

	return nil
}
