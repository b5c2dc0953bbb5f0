package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/ssm"
	log "github.com/sirupsen/logrus"
)

// WebConfig is the JSON document the frontend fetches at startup to find the
// API and the Cognito user pool.
type WebConfig struct {
	ApiEndpoint         string `json:"apiEndpoint"`
	Region              string `json:"region"`
	UserPoolId          string `json:"userPoolId"`
	UserPoolWebClientId string `json:"userPoolWebClientId"`
	OauthDomain         string `json:"oauthDomain"`
}

// Each config field reads from an environment variable first and falls back
// to the SSM parameter the deployment wrote.
var fields = []struct {
	envKey    string
	paramName string
	assign    func(*WebConfig, string)
}{
	{"API_ENDPOINT", "api-endpoint", func(c *WebConfig, v string) { c.ApiEndpoint = v }},
	{"REGION", "region", func(c *WebConfig, v string) { c.Region = v }},
	{"USER_POOL_ID", "user-pool-id", func(c *WebConfig, v string) { c.UserPoolId = v }},
	{"USER_POOL_WEB_CLIENT_ID", "user-pool-web-client-id", func(c *WebConfig, v string) { c.UserPoolWebClientId = v }},
	{"OAUTH_DOMAIN", "oauth-domain", func(c *WebConfig, v string) { c.OauthDomain = v }},
}

func main() {
	out := flag.String("out", "config.json", "path the config file is written to")
	paramPrefix := flag.String("param-prefix", "/art-platform", "SSM parameter prefix holding deployment outputs")
	uploadBucket := flag.String("upload-bucket", "", "web bucket to upload the config to; skipped when empty")
	uploadKey := flag.String("upload-key", "assets/config/config.json", "object key for the uploaded config")
	flag.Parse()

	ctx := context.Background()
	cfg, err := config.LoadDefaultConfig(ctx)
	if err != nil {
		log.Fatalf("AWS configuration error: %v", err)
	}
	ssmClient := ssm.NewFromConfig(cfg)

	var webConfig WebConfig
	for _, f := range fields {
		value, err := resolve(ctx, ssmClient, f.envKey, *paramPrefix+"/"+f.paramName)
		if err != nil {
			log.Warnf("could not resolve %s: %v", f.paramName, err)
		}
		f.assign(&webConfig, value)
	}

	body, err := json.MarshalIndent(&webConfig, "", "  ")
	if err != nil {
		log.Fatalf("could not marshal config: %v", err)
	}
	if err := os.WriteFile(*out, body, 0644); err != nil {
		log.Fatalf("could not write %s: %v", *out, err)
	}
	log.Infof("wrote %s", *out)

	if *uploadBucket == "" {
		return
	}
	s3Client := s3.NewFromConfig(cfg)
	_, err = s3Client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:       aws.String(*uploadBucket),
		Key:          aws.String(*uploadKey),
		Body:         strings.NewReader(string(body)),
		ContentType:  aws.String("application/json"),
		CacheControl: aws.String("no-cache"),
	})
	if err != nil {
		log.Fatalf("could not upload config to %s:%s: %v", *uploadBucket, *uploadKey, err)
	}
	log.Infof("uploaded config to %s", fmt.Sprintf("s3://%s/%s", *uploadBucket, *uploadKey))
}

// resolve prefers the environment value so local runs work without SSM access.
func resolve(ctx context.Context, client *ssm.Client, envKey, paramName string) (string, error) {
	if value, set := os.LookupEnv(envKey); set {
		return value, nil
	}
	out, err := client.GetParameter(ctx, &ssm.GetParameterInput{Name: aws.String(paramName)})
	if err != nil {
		return "", err
	}
	if out.Parameter == nil || out.Parameter.Value == nil {
		return "", fmt.Errorf("parameter %s has no value", paramName)
	}
	return *out.Parameter.Value, nil
}
