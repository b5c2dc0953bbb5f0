package main

import (
	"context"
	"os"

	"github.com/aws/aws-lambda-go/lambda"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/cognitoidentityprovider"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/sqs"
	log "github.com/sirupsen/logrus"
	"github.com/ye-russell/art-platform/api/store"
	"github.com/ye-russell/art-platform/lambda/service/handler"
)

func init() {
	handler.PlatformConfig = store.ConfigFromEnv()

	region := os.Getenv("REGION")
	cfg, err := config.LoadDefaultConfig(context.Background(), config.WithRegion(region))
	if err != nil {
		log.Fatalf("AWS configuration error: %v\n", err)
	}

	handler.DynamoClient = dynamodb.NewFromConfig(cfg)
	handler.S3Client = s3.NewFromConfig(cfg)
	handler.SQSClient = sqs.NewFromConfig(cfg)
	handler.CognitoClient = cognitoidentityprovider.NewFromConfig(cfg)
}

func main() {
	lambda.Start(handler.ArtPlatformHandler)
}
