package store

import (
	"os"
	"strconv"

	log "github.com/sirupsen/logrus"
)

const (
	ArtistsTableEnvKey         = "ARTISTS_TABLE"
	ArtworksTableEnvKey        = "ARTWORKS_TABLE"
	AssetsBucketEnvKey         = "ASSETS_BUCKET"
	UserPoolIdEnvKey           = "USER_POOL_ID"
	AssetCleanupQueueURLEnvKey = "ASSET_CLEANUP_QUEUE_URL"
	ExposeInternalErrorsEnvKey = "EXPOSE_INTERNAL_ERRORS"
)

func init() {
	log.SetFormatter(&log.JSONFormatter{})
	if level, ok := os.LookupEnv("LOG_LEVEL"); !ok {
		log.SetLevel(log.InfoLevel)
	} else {
		if ll, err := log.ParseLevel(level); err == nil {
			log.SetLevel(ll)
		} else {
			log.SetLevel(log.InfoLevel)
			log.Warnf("could not set log level to %q: %v", level, err)
		}
	}
}

// Config collects the environment the platform stacks export for the API
// lambda. AssetCleanupQueueURL is optional; when empty, artwork deletes leave
// their S3 objects in place.
type Config struct {
	ArtistsTable         string
	ArtworksTable        string
	AssetsBucket         string
	UserPoolId           string
	AssetCleanupQueueURL string
	ExposeInternalErrors bool
}

func ConfigFromEnv() *Config {
	return &Config{
		ArtistsTable:         os.Getenv(ArtistsTableEnvKey),
		ArtworksTable:        os.Getenv(ArtworksTableEnvKey),
		AssetsBucket:         os.Getenv(AssetsBucketEnvKey),
		UserPoolId:           os.Getenv(UserPoolIdEnvKey),
		AssetCleanupQueueURL: os.Getenv(AssetCleanupQueueURLEnvKey),
		ExposeInternalErrors: getEnvAsBool(ExposeInternalErrorsEnvKey, false),
	}
}

func getEnvAsBool(varName string, defaultValue bool) bool {
	value, set := os.LookupEnv(varName)
	if !set {
		return defaultValue
	}
	b, err := strconv.ParseBool(value)
	if err != nil {
		log.Warnf("could not parse %s value %q as bool: %v", varName, value, err)
		return defaultValue
	}
	return b
}
