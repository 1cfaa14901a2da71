package database

import (
	"context"
	"errors"
	"fmt"
	"log"

	appconfig "taskilo_billing/internal/config"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// StatusIndex is the orders GSI keyed by order status.
const StatusIndex = "status-index"

// ConnectDynamoDB creates a DynamoDB client from the service config.
//
// Local DynamoDB does not validate credentials, but the AWS SDK requires
// them, so AWS_ACCESS_KEY_ID / AWS_SECRET_ACCESS_KEY default to "local".
// DYNAMODB_ENDPOINT (e.g. http://dynamodb:8000) overrides the service endpoint.
func ConnectDynamoDB(ctx context.Context, cfg appconfig.Config) (*dynamodb.Client, error) {
	awsCfg, err := NewDynamoDBConfig(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("create dynamodb config: %w", err)
	}
	client := dynamodb.NewFromConfig(awsCfg, func(o *dynamodb.Options) {
		if cfg.DynamoDBEndpoint != "" {
			o.BaseEndpoint = aws.String(cfg.DynamoDBEndpoint)
		}
	})
	log.Printf("[billing][dynamodb] client ready region=%s endpoint=%q", cfg.AWSRegion, cfg.DynamoDBEndpoint)
	return client, nil
}

func NewDynamoDBConfig(ctx context.Context, cfg appconfig.Config) (aws.Config, error) {
	creds := credentials.NewStaticCredentialsProvider(cfg.AWSAccessKeyID, cfg.AWSSecretAccessKey, "")
	return config.LoadDefaultConfig(ctx,
		config.WithRegion(cfg.AWSRegion),
		config.WithCredentialsProvider(creds),
	)
}

// EnsureTables creates the orders and billing events tables when they are
// missing. Only used against local endpoints; production tables are
// provisioned outside the service.
func EnsureTables(ctx context.Context, ddb *dynamodb.Client, ordersTable, eventsTable string) error {
	orders := &dynamodb.CreateTableInput{
		TableName:   aws.String(ordersTable),
		BillingMode: types.BillingModePayPerRequest,
		AttributeDefinitions: []types.AttributeDefinition{
			{AttributeName: aws.String("id"), AttributeType: types.ScalarAttributeTypeS},
			{AttributeName: aws.String("status"), AttributeType: types.ScalarAttributeTypeS},
		},
		KeySchema: []types.KeySchemaElement{
			{AttributeName: aws.String("id"), KeyType: types.KeyTypeHash},
		},
		GlobalSecondaryIndexes: []types.GlobalSecondaryIndex{{
			IndexName: aws.String(StatusIndex),
			KeySchema: []types.KeySchemaElement{
				{AttributeName: aws.String("status"), KeyType: types.KeyTypeHash},
			},
			Projection: &types.Projection{ProjectionType: types.ProjectionTypeAll},
		}},
	}
	events := &dynamodb.CreateTableInput{
		TableName:   aws.String(eventsTable),
		BillingMode: types.BillingModePayPerRequest,
		AttributeDefinitions: []types.AttributeDefinition{
			{AttributeName: aws.String("event_key"), AttributeType: types.ScalarAttributeTypeS},
		},
		KeySchema: []types.KeySchemaElement{
			{AttributeName: aws.String("event_key"), KeyType: types.KeyTypeHash},
		},
	}

	for _, in := range []*dynamodb.CreateTableInput{orders, events} {
		_, err := ddb.CreateTable(ctx, in)
		var inUse *types.ResourceInUseException
		switch {
		case err == nil:
			log.Printf("[billing][dynamodb] table created name=%s", aws.ToString(in.TableName))
		case errors.As(err, &inUse):
		default:
			return fmt.Errorf("create table %s: %w", aws.ToString(in.TableName), err)
		}
	}

	_, err := ddb.UpdateTimeToLive(ctx, &dynamodb.UpdateTimeToLiveInput{
		TableName: aws.String(eventsTable),
		TimeToLiveSpecification: &types.TimeToLiveSpecification{
			AttributeName: aws.String("expires_at"),
			Enabled:       aws.Bool(true),
		},
	})
	if err != nil {
		// DynamoDB Local rejects a repeated TTL update; the table is usable either way.
		log.Printf("[billing][dynamodb] ttl update skipped table=%s err=%v", eventsTable, err)
	}
	return nil
}
