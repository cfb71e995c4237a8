package repository

import (
	"context"
	"errors"
	"testing"

	"wondershop/internal/domain/entities"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func productAttrs(id, qty, name string) map[string]types.AttributeValue {
	return map[string]types.AttributeValue{
		"id":       &types.AttributeValueMemberN{Value: id},
		"name":     &types.AttributeValueMemberS{Value: name},
		"quantity": &types.AttributeValueMemberN{Value: qty},
	}
}

func TestProductDynamoRepository_Create(t *testing.T) {
	var put *dynamodb.PutItemInput
	ddb := &fakeDynamo{
		updateItem: func(in *dynamodb.UpdateItemInput) (*dynamodb.UpdateItemOutput, error) {
			assert.Equal(t, "counters", *in.TableName)
			return &dynamodb.UpdateItemOutput{Attributes: map[string]types.AttributeValue{
				"value": &types.AttributeValueMemberN{Value: "7"},
			}}, nil
		},
		putItem: func(in *dynamodb.PutItemInput) (*dynamodb.PutItemOutput, error) {
			put = in
			return &dynamodb.PutItemOutput{}, nil
		},
	}
	repo := NewProductDynamoRepository(ddb)

	p, err := repo.Create(context.Background(), entities.Product{Name: "Lamp", Quantity: 3})
	require.NoError(t, err)
	assert.Equal(t, int64(7), p.ID)

	require.NotNil(t, put)
	assert.Equal(t, "products", *put.TableName)
	assert.Equal(t, "attribute_not_exists(#id)", *put.ConditionExpression)
	assert.Equal(t, &types.AttributeValueMemberN{Value: "7"}, put.Item["id"])
}

func TestProductDynamoRepository_CreateCounterError(t *testing.T) {
	boom := errors.New("throttled")
	ddb := &fakeDynamo{
		updateItem: func(*dynamodb.UpdateItemInput) (*dynamodb.UpdateItemOutput, error) {
			return nil, boom
		},
	}
	_, err := NewProductDynamoRepository(ddb).Create(context.Background(), entities.Product{Name: "Lamp", Quantity: 1})
	assert.ErrorIs(t, err, boom)
}

func TestProductDynamoRepository_GetByID(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		ddb := &fakeDynamo{getItem: func(*dynamodb.GetItemInput) (*dynamodb.GetItemOutput, error) {
			return &dynamodb.GetItemOutput{Item: productAttrs("2", "5", "Mug")}, nil
		}}
		p, err := NewProductDynamoRepository(ddb).GetByID(context.Background(), 2)
		require.NoError(t, err)
		assert.Equal(t, entities.Product{ID: 2, Name: "Mug", Quantity: 5}, p)
	})

	t.Run("missing returns zero product", func(t *testing.T) {
		ddb := &fakeDynamo{getItem: func(*dynamodb.GetItemInput) (*dynamodb.GetItemOutput, error) {
			return &dynamodb.GetItemOutput{}, nil
		}}
		p, err := NewProductDynamoRepository(ddb).GetByID(context.Background(), 9)
		require.NoError(t, err)
		assert.Equal(t, entities.Product{}, p)
	})
}

func TestProductDynamoRepository_ListPagesAndSorts(t *testing.T) {
	calls := 0
	ddb := &fakeDynamo{scan: func(in *dynamodb.ScanInput) (*dynamodb.ScanOutput, error) {
		calls++
		if in.ExclusiveStartKey == nil {
			return &dynamodb.ScanOutput{
				Items:            []map[string]types.AttributeValue{productAttrs("3", "1", "C")},
				LastEvaluatedKey: idKey(3),
			}, nil
		}
		return &dynamodb.ScanOutput{
			Items: []map[string]types.AttributeValue{productAttrs("1", "1", "A"), productAttrs("2", "0", "B")},
		}, nil
	}}

	items, err := NewProductDynamoRepository(ddb).List(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, calls)
	require.Len(t, items, 3)
	assert.Equal(t, []int64{1, 2, 3}, []int64{items[0].ID, items[1].ID, items[2].ID})
}

func TestProductDynamoRepository_Delete(t *testing.T) {
	t.Run("ok", func(t *testing.T) {
		ddb := &fakeDynamo{deleteItem: func(*dynamodb.DeleteItemInput) (*dynamodb.DeleteItemOutput, error) {
			return &dynamodb.DeleteItemOutput{}, nil
		}}
		assert.NoError(t, NewProductDynamoRepository(ddb).Delete(context.Background(), 1))
	})

	t.Run("missing", func(t *testing.T) {
		ddb := &fakeDynamo{deleteItem: func(*dynamodb.DeleteItemInput) (*dynamodb.DeleteItemOutput, error) {
			return nil, &types.ConditionalCheckFailedException{}
		}}
		err := NewProductDynamoRepository(ddb).Delete(context.Background(), 1)
		assert.ErrorIs(t, err, entities.ErrNotFound)
	})
}
