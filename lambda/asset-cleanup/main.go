package main

import (
	"context"
	"os"

	"github.com/aws/aws-lambda-go/lambda"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	log "github.com/sirupsen/logrus"
	"github.com/ye-russell/art-platform/api/store"
	"github.com/ye-russell/art-platform/lambda/asset-cleanup/handler"
)

func init() {
	region := os.Getenv("REGION")
	cfg, err := config.LoadDefaultConfig(context.Background(), config.WithRegion(region))
	if err != nil {
		log.Fatalf("AWS configuration error: %v\n", err)
	}
	handler.ObjectStore = store.NewObjectStore(s3.NewFromConfig(cfg))
}

func main() {
	lambda.Start(handler.AssetCleanupHandler)
}
