package database

import (
	"context"

	appconfig "crm_assistencia/internal/infrastructure/config"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/rs/zerolog/log"
)

// localCredential is accepted by DynamoDB Local, which ignores signatures.
const localCredential = "local"

// ConnectDynamoDB builds the client used by the sale payment repository.
func ConnectDynamoDB(ctx context.Context, cfg appconfig.DynamoDBConfig) (*dynamodb.Client, error) {
	awsCfg, err := LoadAWSConfig(ctx, cfg)
	if err != nil {
		log.Error().Err(err).Str("region", cfg.Region).Msg("[database][dynamodb] failed to load aws config")
		return nil, err
	}
	client := dynamodb.NewFromConfig(awsCfg, func(o *dynamodb.Options) {
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
		}
	})
	log.Info().Str("region", awsCfg.Region).Str("endpoint", cfg.Endpoint).Msg("[database][dynamodb] client ready")
	return client, nil
}

// LoadAWSConfig resolves region and credentials. Static keys win; without
// them a local endpoint gets placeholder keys and AWS gets the default chain.
func LoadAWSConfig(ctx context.Context, cfg appconfig.DynamoDBConfig) (aws.Config, error) {
	opts := []func(*awsconfig.LoadOptions) error{awsconfig.WithRegion(cfg.Region)}

	switch {
	case cfg.AccessKeyID != "" && cfg.SecretAccessKey != "":
		opts = append(opts, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.AccessKeyID, cfg.SecretAccessKey, ""),
		))
	case cfg.Endpoint != "":
		opts = append(opts, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(localCredential, localCredential, ""),
		))
	}
	return awsconfig.LoadDefaultConfig(ctx, opts...)
}
