package repository

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"wondershop/internal/domain/entities"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/cenkalti/backoff/v4"
)

const (
	defaultCountersTableName = "counters"
	defaultRetryBudget       = 10 * time.Second
)

// ErrLedgerContention is returned when a ledger transaction kept losing the
// counter race until the retry budget ran out.
var ErrLedgerContention = errors.New("order ledger append kept conflicting")

// DynamoAPI is the subset of *dynamodb.Client used by the repositories.
type DynamoAPI interface {
	GetItem(ctx context.Context, in *dynamodb.GetItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error)
	PutItem(ctx context.Context, in *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error)
	UpdateItem(ctx context.Context, in *dynamodb.UpdateItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.UpdateItemOutput, error)
	DeleteItem(ctx context.Context, in *dynamodb.DeleteItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.DeleteItemOutput, error)
	Scan(ctx context.Context, in *dynamodb.ScanInput, optFns ...func(*dynamodb.Options)) (*dynamodb.ScanOutput, error)
	TransactWriteItems(ctx context.Context, in *dynamodb.TransactWriteItemsInput, optFns ...func(*dynamodb.Options)) (*dynamodb.TransactWriteItemsOutput, error)
}

var _ DynamoAPI = (*dynamodb.Client)(nil)

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func numberAttr(v int64) *types.AttributeValueMemberN {
	return &types.AttributeValueMemberN{Value: strconv.FormatInt(v, 10)}
}

func idKey(id int64) map[string]types.AttributeValue {
	return map[string]types.AttributeValue{"id": numberAttr(id)}
}

func counterKey(name string) map[string]types.AttributeValue {
	return map[string]types.AttributeValue{"name": &types.AttributeValueMemberS{Value: name}}
}

// scanAll pages through a full table scan.
func scanAll(ctx context.Context, ddb DynamoAPI, table string) ([]map[string]types.AttributeValue, error) {
	var (
		items []map[string]types.AttributeValue
		start map[string]types.AttributeValue
	)
	for {
		out, err := ddb.Scan(ctx, &dynamodb.ScanInput{
			TableName:         &table,
			ExclusiveStartKey: start,
			ConsistentRead:    aws.Bool(true),
		})
		if err != nil {
			return nil, err
		}
		items = append(items, out.Items...)
		if len(out.LastEvaluatedKey) == 0 {
			return items, nil
		}
		start = out.LastEvaluatedKey
	}
}

// retryOnConflict runs op until it succeeds, fails with anything other than a
// cancelled transaction, the budget is spent or ctx is done. Waits grow
// exponentially with jitter.
func retryOnConflict(ctx context.Context, budget time.Duration, op func() error) error {
	if budget <= 0 {
		budget = defaultRetryBudget
	}
	b := backoff.NewExponentialBackOff()
	b.InitialInterval = 2 * time.Millisecond
	b.MaxInterval = 100 * time.Millisecond
	b.MaxElapsedTime = budget

	err := backoff.Retry(func() error {
		err := op()
		if err == nil || isTransactionConflict(err) {
			return err
		}
		return backoff.Permanent(err)
	}, backoff.WithContext(b, ctx))
	if isTransactionConflict(err) {
		return fmt.Errorf("%w: %w", ErrLedgerContention, err)
	}
	return err
}

func isTransactionConflict(err error) bool {
	var tce *types.TransactionCanceledException
	return errors.As(err, &tce)
}

// ledgerLength reads the order counter, which equals the number of orders.
func ledgerLength(ctx context.Context, ddb DynamoAPI, countersTable string) (int64, error) {
	out, err := ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName:      aws.String(countersTable),
		Key:            counterKey(orderIDCounter),
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return 0, err
	}
	n, ok := out.Item["value"].(*types.AttributeValueMemberN)
	if !ok {
		return 0, nil
	}
	return strconv.ParseInt(n.Value, 10, 64)
}

// ledgerWrites builds the counter compare-and-swap and the order put for an
// order whose ID is length+1. Both must go into the same transaction.
func ledgerWrites(countersTable, ordersTable string, o entities.Order, length int64) ([]types.TransactWriteItem, error) {
	av, err := attributevalue.MarshalMap(toOrderItem(o))
	if err != nil {
		return nil, err
	}

	counter := counterKey(orderIDCounter)
	counter["value"] = numberAttr(o.ID)

	return []types.TransactWriteItem{
		{
			Put: &types.Put{
				TableName:           aws.String(countersTable),
				Item:                counter,
				ConditionExpression: aws.String("attribute_not_exists(#value) OR #value = :length"),
				ExpressionAttributeNames: map[string]string{
					"#value": "value",
				},
				ExpressionAttributeValues: map[string]types.AttributeValue{
					":length": numberAttr(length),
				},
			},
		},
		{
			Put: &types.Put{
				TableName:           aws.String(ordersTable),
				Item:                av,
				ConditionExpression: aws.String("attribute_not_exists(#id)"),
				ExpressionAttributeNames: map[string]string{
					"#id": "id",
				},
			},
		},
	}, nil
}
