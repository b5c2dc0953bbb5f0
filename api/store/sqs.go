package store

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/service/sqs"
	"github.com/ye-russell/art-platform/api/models"
)

const m = "api/store/sqs"

type sqsStore struct {
	Client          *sqs.Client
	CleanupQueueURL string
}

// QueueStore queues asset-cleanup work for deleted artworks.
type QueueStore interface {
	SendAssetCleanup(ctx context.Context, message models.AssetCleanupMessage) error
}

func NewQueueStore(sqsClient *sqs.Client, cleanupQueueURL string) QueueStore {
	return &sqsStore{Client: sqsClient, CleanupQueueURL: cleanupQueueURL}
}

func (s *sqsStore) SendAssetCleanup(ctx context.Context, message models.AssetCleanupMessage) error {
	body, err := json.Marshal(message)
	if err != nil {
		return fmt.Errorf("%s: unable to marshal %v: %w", m, message, err)
	}
	bodyStr := string(body)
	request := sqs.SendMessageInput{QueueUrl: &s.CleanupQueueURL, MessageBody: &bodyStr}
	if _, err = s.Client.SendMessage(ctx, &request); err != nil {
		return fmt.Errorf("%s: unable to add %s to the asset cleanup queue: %w", m, bodyStr, err)
	}
	return nil
}
