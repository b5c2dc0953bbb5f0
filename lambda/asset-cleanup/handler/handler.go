package handler

import (
	"context"
	"encoding/json"

	"github.com/aws/aws-lambda-go/events"
	log "github.com/sirupsen/logrus"
	"github.com/ye-russell/art-platform/api/models"
	"github.com/ye-russell/art-platform/api/store"
)

// ObjectStore is created once per process by main.
var ObjectStore store.ObjectStore

// AssetCleanupHandler deletes the S3 objects of artworks that have been
// removed from the platform. Failures are reported per record so SQS only
// redrives the messages that actually failed.
func AssetCleanupHandler(ctx context.Context, event events.SQSEvent) (events.SQSEventResponse, error) {
	response := events.SQSEventResponse{
		BatchItemFailures: []events.SQSBatchItemFailure{},
	}
	for _, r := range event.Records {
		logger := log.WithFields(log.Fields{
			"messageId": r.MessageId,
		})
		logger.WithFields(log.Fields{"body": r.Body}).Info("received message")
		cleanupMessage := models.AssetCleanupMessage{}
		if err := json.Unmarshal([]byte(r.Body), &cleanupMessage); err != nil {
			response.BatchItemFailures = append(response.BatchItemFailures, events.SQSBatchItemFailure{ItemIdentifier: r.MessageId})
			logger.Errorf("could not unmarshal message: %v", err)
			continue
		}
		if err := ObjectStore.DeleteObject(ctx, cleanupMessage.Bucket, cleanupMessage.Key); err != nil {
			response.BatchItemFailures = append(response.BatchItemFailures, events.SQSBatchItemFailure{ItemIdentifier: r.MessageId})
			logger.Errorf("could not delete object %s:%s: %v", cleanupMessage.Bucket, cleanupMessage.Key, err)
			continue
		}
		logger.WithFields(log.Fields{
			"artworkId": cleanupMessage.ArtworkId,
			"key":       cleanupMessage.Key,
		}).Info("deleted orphaned asset")
	}
	return response, nil
}
