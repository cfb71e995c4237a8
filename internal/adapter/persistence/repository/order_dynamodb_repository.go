package repository

import (
	"context"
	"sort"
	"time"

	"wondershop/internal/domain/entities"
	"wondershop/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
)

const (
	defaultOrdersTableName = "orders"
	orderIDCounter         = "order_id"
)

type orderItem struct {
	ID          int64  `dynamodbav:"id"`
	ProductID   int64  `dynamodbav:"product_id"`
	ProductName string `dynamodbav:"product_name"`
	Quantity    int    `dynamodbav:"quantity"`
	BuyerID     string `dynamodbav:"buyer_id"`
	CreatedAt   string `dynamodbav:"created_at"`
}

// OrderDynamoRepository is the DynamoDB order ledger.
//
// Table requirements:
//   - orders: PK id (number)
//   - counters: PK name (string), holds the ledger length
//
// Append writes the counter bump and the order in one transaction guarded by
// the counter value it read, so ids stay gap-free under concurrent appends.
// A lost race is retried with jittered backoff until retryBudget is spent.
type OrderDynamoRepository struct {
	ddb           DynamoAPI
	tableName     string
	countersTable string
	retryBudget   time.Duration
}

var _ interfaces.IOrderLedger = (*OrderDynamoRepository)(nil)

func NewOrderDynamoRepository(ddb DynamoAPI) *OrderDynamoRepository {
	return &OrderDynamoRepository{
		ddb:           ddb,
		tableName:     getenvDefault("ORDERS_TABLE", defaultOrdersTableName),
		countersTable: getenvDefault("COUNTERS_TABLE", defaultCountersTableName),
		retryBudget:   defaultRetryBudget,
	}
}

func (r *OrderDynamoRepository) Append(ctx context.Context, o entities.Order) (entities.Order, error) {
	err := retryOnConflict(ctx, r.retryBudget, func() error {
		length, err := ledgerLength(ctx, r.ddb, r.countersTable)
		if err != nil {
			return err
		}
		o.ID = length + 1
		writes, err := ledgerWrites(r.countersTable, r.tableName, o, length)
		if err != nil {
			return err
		}
		_, err = r.ddb.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{TransactItems: writes})
		return err
	})
	if err != nil {
		return entities.Order{}, err
	}
	return o, nil
}

func (r *OrderDynamoRepository) List(ctx context.Context) ([]entities.Order, error) {
	raw, err := scanAll(ctx, r.ddb, r.tableName)
	if err != nil {
		return nil, err
	}

	orders := make([]entities.Order, 0, len(raw))
	for _, av := range raw {
		var it orderItem
		if err := attributevalue.UnmarshalMap(av, &it); err != nil {
			return nil, err
		}
		orders = append(orders, fromOrderItem(it))
	}
	sort.Slice(orders, func(i, j int) bool { return orders[i].ID < orders[j].ID })
	return orders, nil
}

func toOrderItem(o entities.Order) orderItem {
	return orderItem{
		ID:          o.ID,
		ProductID:   o.ProductID,
		ProductName: o.ProductName,
		Quantity:    o.Quantity,
		BuyerID:     o.BuyerID,
		CreatedAt:   o.CreatedAt.UTC().Format(time.RFC3339Nano),
	}
}

func fromOrderItem(it orderItem) entities.Order {
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	return entities.Order{
		ID:          it.ID,
		ProductID:   it.ProductID,
		ProductName: it.ProductName,
		Quantity:    it.Quantity,
		BuyerID:     it.BuyerID,
		CreatedAt:   createdAt,
	}
}
