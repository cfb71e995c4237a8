package repository

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strconv"

	"wondershop/internal/domain/entities"
	"wondershop/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultProductsTableName = "products"
	productIDCounter         = "product_id"
)

type productItem struct {
	ID       int64  `dynamodbav:"id"`
	Name     string `dynamodbav:"name"`
	Quantity int    `dynamodbav:"quantity"`
	PhotoRef string `dynamodbav:"photo_ref,omitempty"`
}

// ProductDynamoRepository persists the catalog in DynamoDB.
//
// Table requirements:
//   - products: PK id (number)
//   - counters: PK name (string), holds the product id high-water mark
//
// Ids come from an atomic counter, so they are never reused after a delete.
// Quantity is only decremented by InventoryDynamoStore.
type ProductDynamoRepository struct {
	ddb           DynamoAPI
	tableName     string
	countersTable string
}

var _ interfaces.ICatalogRepository = (*ProductDynamoRepository)(nil)

func NewProductDynamoRepository(ddb DynamoAPI) *ProductDynamoRepository {
	return &ProductDynamoRepository{
		ddb:           ddb,
		tableName:     getenvDefault("PRODUCTS_TABLE", defaultProductsTableName),
		countersTable: getenvDefault("COUNTERS_TABLE", defaultCountersTableName),
	}
}

func (r *ProductDynamoRepository) Create(ctx context.Context, p entities.Product) (entities.Product, error) {
	id, err := r.nextID(ctx)
	if err != nil {
		return entities.Product{}, err
	}
	p.ID = id

	av, err := attributevalue.MarshalMap(toProductItem(p))
	if err != nil {
		return entities.Product{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		return entities.Product{}, err
	}
	return p, nil
}

func (r *ProductDynamoRepository) nextID(ctx context.Context) (int64, error) {
	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName:        aws.String(r.countersTable),
		Key:              counterKey(productIDCounter),
		UpdateExpression: aws.String("ADD #value :one"),
		ExpressionAttributeNames: map[string]string{
			"#value": "value",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":one": numberAttr(1),
		},
		ReturnValues: types.ReturnValueUpdatedNew,
	})
	if err != nil {
		return 0, err
	}

	n, ok := out.Attributes["value"].(*types.AttributeValueMemberN)
	if !ok {
		return 0, errors.New("product id counter returned no value")
	}
	return strconv.ParseInt(n.Value, 10, 64)
}

func (r *ProductDynamoRepository) GetByID(ctx context.Context, id int64) (entities.Product, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName:      aws.String(r.tableName),
		Key:            idKey(id),
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Product{}, err
	}
	if len(out.Item) == 0 {
		return entities.Product{}, nil
	}

	var it productItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Product{}, err
	}
	return fromProductItem(it), nil
}

func (r *ProductDynamoRepository) List(ctx context.Context) ([]entities.Product, error) {
	raw, err := scanAll(ctx, r.ddb, r.tableName)
	if err != nil {
		return nil, err
	}

	items := make([]entities.Product, 0, len(raw))
	for _, av := range raw {
		var it productItem
		if err := attributevalue.UnmarshalMap(av, &it); err != nil {
			return nil, err
		}
		items = append(items, fromProductItem(it))
	}
	// Ids are assigned in creation order.
	sort.Slice(items, func(i, j int) bool { return items[i].ID < items[j].ID })
	return items, nil
}

func (r *ProductDynamoRepository) Delete(ctx context.Context, id int64) error {
	_, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName:           aws.String(r.tableName),
		Key:                 idKey(id),
		ConditionExpression: aws.String("attribute_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return fmt.Errorf("%w: product %d", entities.ErrNotFound, id)
		}
		return err
	}
	return nil
}

func toProductItem(p entities.Product) productItem {
	return productItem{
		ID:       p.ID,
		Name:     p.Name,
		Quantity: p.Quantity,
		PhotoRef: p.PhotoRef,
	}
}

func fromProductItem(it productItem) entities.Product {
	return entities.Product{
		ID:       it.ID,
		Name:     it.Name,
		Quantity: it.Quantity,
		PhotoRef: it.PhotoRef,
	}
}
