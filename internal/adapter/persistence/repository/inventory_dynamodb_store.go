package repository

import (
	"context"
	"fmt"
	"time"

	"wondershop/internal/domain/entities"
	"wondershop/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// InventoryDynamoStore commits a purchase as a single TransactWriteItems call:
// the guarded stock decrement, the order counter compare-and-swap and the
// order put either all land or none do.
//
// Every commit moves the shared order counter, so commits serialize on it and
// the quantity read before the transaction is exact whenever it succeeds.
type InventoryDynamoStore struct {
	ddb           DynamoAPI
	products      *ProductDynamoRepository
	ordersTable   string
	countersTable string
	retryBudget   time.Duration
}

var _ interfaces.IInventoryStore = (*InventoryDynamoStore)(nil)

func NewInventoryDynamoStore(ddb DynamoAPI) *InventoryDynamoStore {
	return &InventoryDynamoStore{
		ddb:           ddb,
		products:      NewProductDynamoRepository(ddb),
		ordersTable:   getenvDefault("ORDERS_TABLE", defaultOrdersTableName),
		countersTable: getenvDefault("COUNTERS_TABLE", defaultCountersTableName),
		retryBudget:   defaultRetryBudget,
	}
}

func (s *InventoryDynamoStore) Commit(ctx context.Context, productID int64, quantity int, order entities.Order) (entities.Order, entities.Product, error) {
	var left entities.Product
	err := retryOnConflict(ctx, s.retryBudget, func() error {
		p, err := s.products.GetByID(ctx, productID)
		if err != nil {
			return err
		}
		if p.ID == 0 {
			return fmt.Errorf("%w: product %d", entities.ErrNotFound, productID)
		}
		if quantity > p.Quantity {
			return fmt.Errorf("%w: product %d has %d, requested %d",
				entities.ErrInsufficientStock, productID, p.Quantity, quantity)
		}

		length, err := ledgerLength(ctx, s.ddb, s.countersTable)
		if err != nil {
			return err
		}
		order.ID = length + 1
		order.ProductID = productID
		order.ProductName = p.Name
		order.Quantity = quantity

		writes, err := ledgerWrites(s.countersTable, s.ordersTable, order, length)
		if err != nil {
			return err
		}
		items := append([]types.TransactWriteItem{s.decrement(productID, quantity)}, writes...)
		if _, err := s.ddb.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{TransactItems: items}); err != nil {
			return err
		}

		p.Quantity -= quantity
		left = p
		return nil
	})
	if err != nil {
		return entities.Order{}, entities.Product{}, err
	}
	return order, left, nil
}

func (s *InventoryDynamoStore) decrement(productID int64, quantity int) types.TransactWriteItem {
	return types.TransactWriteItem{
		Update: &types.Update{
			TableName:           aws.String(s.products.tableName),
			Key:                 idKey(productID),
			ConditionExpression: aws.String("attribute_exists(#id) AND #quantity >= :q"),
			UpdateExpression:    aws.String("SET #quantity = #quantity - :q"),
			ExpressionAttributeNames: map[string]string{
				"#id":       "id",
				"#quantity": "quantity",
			},
			ExpressionAttributeValues: map[string]types.AttributeValue{
				":q": numberAttr(int64(quantity)),
			},
		},
	}
}
