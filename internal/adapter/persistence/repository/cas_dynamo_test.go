package repository

import (
	"context"
	"strconv"
	"sync"
	"time"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// casDynamo is an in-memory DynamoDB that evaluates the condition
// expressions the repositories issue, so concurrent callers race the way
// they would against a real table.
type casDynamo struct {
	fakeDynamo

	mu      sync.Mutex
	latency time.Duration
	tables  map[string]map[string]map[string]types.AttributeValue
}

func newCASDynamo(latency time.Duration) *casDynamo {
	return &casDynamo{
		latency: latency,
		tables:  make(map[string]map[string]map[string]types.AttributeValue),
	}
}

func itemKey(key map[string]types.AttributeValue) string {
	if v, ok := key["id"].(*types.AttributeValueMemberN); ok {
		return "id#" + v.Value
	}
	if v, ok := key["name"].(*types.AttributeValueMemberS); ok {
		return "name#" + v.Value
	}
	return ""
}

func (c *casDynamo) seed(table string, item map[string]types.AttributeValue) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.table(table)[itemKey(item)] = item
}

func (c *casDynamo) table(name string) map[string]map[string]types.AttributeValue {
	t, ok := c.tables[name]
	if !ok {
		t = make(map[string]map[string]types.AttributeValue)
		c.tables[name] = t
	}
	return t
}

func (c *casDynamo) items(table string) []map[string]types.AttributeValue {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]map[string]types.AttributeValue, 0, len(c.tables[table]))
	for _, it := range c.tables[table] {
		out = append(out, it)
	}
	return out
}

func (c *casDynamo) GetItem(_ context.Context, in *dynamodb.GetItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error) {
	time.Sleep(c.latency)
	c.mu.Lock()
	defer c.mu.Unlock()

	it, ok := c.table(*in.TableName)[itemKey(in.Key)]
	if !ok {
		return &dynamodb.GetItemOutput{}, nil
	}
	cp := make(map[string]types.AttributeValue, len(it))
	for k, v := range it {
		cp[k] = v
	}
	return &dynamodb.GetItemOutput{Item: cp}, nil
}

func (c *casDynamo) TransactWriteItems(_ context.Context, in *dynamodb.TransactWriteItemsInput, _ ...func(*dynamodb.Options)) (*dynamodb.TransactWriteItemsOutput, error) {
	time.Sleep(c.latency)
	c.mu.Lock()
	defer c.mu.Unlock()

	for _, ti := range in.TransactItems {
		if !c.holds(ti) {
			return nil, &types.TransactionCanceledException{}
		}
	}
	for _, ti := range in.TransactItems {
		c.apply(ti)
	}
	return &dynamodb.TransactWriteItemsOutput{}, nil
}

func numberOf(av types.AttributeValue) int64 {
	n, ok := av.(*types.AttributeValueMemberN)
	if !ok {
		return -1
	}
	v, _ := strconv.ParseInt(n.Value, 10, 64)
	return v
}

func (c *casDynamo) holds(ti types.TransactWriteItem) bool {
	switch {
	case ti.Put != nil:
		existing, exists := c.table(*ti.Put.TableName)[itemKey(ti.Put.Item)]
		switch *ti.Put.ConditionExpression {
		case "attribute_not_exists(#id)":
			return !exists
		case "attribute_not_exists(#value) OR #value = :length":
			if !exists || existing["value"] == nil {
				return true
			}
			return numberOf(existing["value"]) == numberOf(ti.Put.ExpressionAttributeValues[":length"])
		}
	case ti.Update != nil:
		existing, exists := c.table(*ti.Update.TableName)[itemKey(ti.Update.Key)]
		if *ti.Update.ConditionExpression == "attribute_exists(#id) AND #quantity >= :q" {
			return exists && numberOf(existing["quantity"]) >= numberOf(ti.Update.ExpressionAttributeValues[":q"])
		}
	}
	return false
}

func (c *casDynamo) apply(ti types.TransactWriteItem) {
	switch {
	case ti.Put != nil:
		c.table(*ti.Put.TableName)[itemKey(ti.Put.Item)] = ti.Put.Item
	case ti.Update != nil:
		t := c.table(*ti.Update.TableName)
		k := itemKey(ti.Update.Key)
		it := make(map[string]types.AttributeValue, len(t[k]))
		for name, v := range t[k] {
			it[name] = v
		}
		left := numberOf(it["quantity"]) - numberOf(ti.Update.ExpressionAttributeValues[":q"])
		it["quantity"] = numberAttr(left)
		t[k] = it
	}
}
