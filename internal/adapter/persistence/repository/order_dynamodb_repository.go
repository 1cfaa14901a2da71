package repository

import (
	"context"
	"errors"
	"strconv"

	"taskilo_billing/internal/domain/entities"
	"taskilo_billing/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	DefaultOrdersTableName = "orders"
	DefaultEventsTableName = "billing_events"
	ordersStatusIndex      = "status-index"
)

// OrderDynamoRepository persists orders (time tracking embedded) in DynamoDB.
//
// Table requirements:
//   - orders: PK id (string), GSI status-index (PK: status)
//   - billing_events: PK event_key (string), TTL attribute expires_at
//
// Every write is conditional on the stored version, so concurrent writers
// for the same order serialize and the loser gets ErrVersionConflict.
type OrderDynamoRepository struct {
	ddb         *dynamodb.Client
	ordersTable string
	eventsTable string
}

var _ interfaces.IOrderRepository = (*OrderDynamoRepository)(nil)

func NewOrderDynamoRepository(ddb *dynamodb.Client, ordersTable, eventsTable string) *OrderDynamoRepository {
	if ordersTable == "" {
		ordersTable = DefaultOrdersTableName
	}
	if eventsTable == "" {
		eventsTable = DefaultEventsTableName
	}
	return &OrderDynamoRepository{ddb: ddb, ordersTable: ordersTable, eventsTable: eventsTable}
}

func (r *OrderDynamoRepository) Create(ctx context.Context, o entities.Order) (entities.Order, error) {
	av, err := attributevalue.MarshalMap(toOrderItem(o))
	if err != nil {
		return entities.Order{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.ordersTable),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.Order{}, interfaces.ErrOrderAlreadyExists
		}
		return entities.Order{}, err
	}
	return o, nil
}

func (r *OrderDynamoRepository) GetByID(ctx context.Context, id string) (entities.Order, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.ordersTable),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Order{}, err
	}
	if len(out.Item) == 0 {
		return entities.Order{}, nil
	}

	var it orderItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Order{}, err
	}
	return fromOrderItem(it), nil
}

func (r *OrderDynamoRepository) Save(ctx context.Context, o entities.Order, expectedVersion int64) (entities.Order, error) {
	o = stampVersion(o, expectedVersion)
	av, err := attributevalue.MarshalMap(toOrderItem(o))
	if err != nil {
		return entities.Order{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.ordersTable),
		Item:                av,
		ConditionExpression: aws.String("#version = :expected"),
		ExpressionAttributeNames: map[string]string{
			"#version": "version",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":expected": &types.AttributeValueMemberN{Value: strconv.FormatInt(expectedVersion, 10)},
		},
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.Order{}, interfaces.ErrVersionConflict
		}
		return entities.Order{}, err
	}
	return o, nil
}

// SaveReconciliation writes the order and the event audit record in one
// DynamoDB transaction. Without an event key it is a plain Save.
func (r *OrderDynamoRepository) SaveReconciliation(ctx context.Context, o entities.Order, expectedVersion int64, ev entities.ProcessedEvent) (entities.Order, error) {
	if ev.Key == "" {
		return r.Save(ctx, o, expectedVersion)
	}

	o = stampVersion(o, expectedVersion)
	orderAV, err := attributevalue.MarshalMap(toOrderItem(o))
	if err != nil {
		return entities.Order{}, err
	}
	eventAV, err := attributevalue.MarshalMap(toProcessedEventItem(ev))
	if err != nil {
		return entities.Order{}, err
	}

	_, err = r.ddb.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{
		TransactItems: []types.TransactWriteItem{
			{
				Put: &types.Put{
					TableName:           aws.String(r.ordersTable),
					Item:                orderAV,
					ConditionExpression: aws.String("#version = :expected"),
					ExpressionAttributeNames: map[string]string{
						"#version": "version",
					},
					ExpressionAttributeValues: map[string]types.AttributeValue{
						":expected": &types.AttributeValueMemberN{Value: strconv.FormatInt(expectedVersion, 10)},
					},
				},
			},
			{
				Put: &types.Put{
					TableName:           aws.String(r.eventsTable),
					Item:                eventAV,
					ConditionExpression: aws.String("attribute_not_exists(#key)"),
					ExpressionAttributeNames: map[string]string{
						"#key": "event_key",
					},
				},
			},
		},
	})
	if err != nil {
		return entities.Order{}, classifyTransactionError(err)
	}
	return o, nil
}

func (r *OrderDynamoRepository) ListByStatus(ctx context.Context, status entities.OrderStatus) ([]entities.Order, error) {
	p := dynamodb.NewQueryPaginator(r.ddb, &dynamodb.QueryInput{
		TableName:              aws.String(r.ordersTable),
		IndexName:              aws.String(ordersStatusIndex),
		KeyConditionExpression: aws.String("#status = :status"),
		ExpressionAttributeNames: map[string]string{
			"#status": "status",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":status": &types.AttributeValueMemberS{Value: string(status)},
		},
	})

	orders := make([]entities.Order, 0)
	for p.HasMorePages() {
		page, err := p.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		for _, raw := range page.Items {
			var it orderItem
			if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
				return nil, err
			}
			orders = append(orders, fromOrderItem(it))
		}
	}
	return orders, nil
}

// classifyTransactionError maps DynamoDB transaction failures onto the
// repository contract. Cancellation reasons follow TransactItems order:
// index 0 is the order put, index 1 the event record.
func classifyTransactionError(err error) error {
	var tce *types.TransactionCanceledException
	if errors.As(err, &tce) {
		reasons := tce.CancellationReasons
		if len(reasons) > 1 && aws.ToString(reasons[1].Code) == "ConditionalCheckFailed" {
			return interfaces.ErrEventAlreadyProcessed
		}
		for _, reason := range reasons {
			switch aws.ToString(reason.Code) {
			case "ConditionalCheckFailed", "TransactionConflict":
				return interfaces.ErrVersionConflict
			}
		}
		return err
	}
	var conflict *types.TransactionConflictException
	if errors.As(err, &conflict) {
		return interfaces.ErrVersionConflict
	}
	return err
}

func stampVersion(o entities.Order, expectedVersion int64) entities.Order {
	o.Version = expectedVersion + 1
	o.UpdatedAt = nowUTC()
	return o
}
