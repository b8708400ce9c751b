package repository

import (
	"context"
	"fmt"
	"reflect"
	"sort"
	"strconv"
	"strings"
	"sync"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

type item = map[string]types.AttributeValue

type fakeTable struct {
	keys  []tableKey
	items map[string]item
}

// fakeDynamo is an in-memory stand-in for the DynamoDB operations used by
// the repositories. It understands exactly the expression shapes they emit.
type fakeDynamo struct {
	mu     sync.Mutex
	tables map[string]*fakeTable

	transactCalls int
	// beforeCommit runs inside TransactWriteItems before conditions are checked.
	beforeCommit func()
}

var _ dynamoDBAPI = (*fakeDynamo)(nil)

func newFakeDynamo(tables DynamoTables) *fakeDynamo {
	f := &fakeDynamo{tables: map[string]*fakeTable{}}
	for name, keys := range tableDefinitions(tables.withDefaults()) {
		f.tables[name] = &fakeTable{keys: keys, items: map[string]item{}}
	}
	return f
}

func (f *fakeDynamo) table(name string) (*fakeTable, error) {
	t, ok := f.tables[name]
	if !ok {
		return nil, &types.ResourceNotFoundException{Message: aws.String("table " + name + " not found")}
	}
	return t, nil
}

func attrString(av types.AttributeValue) string {
	switch v := av.(type) {
	case *types.AttributeValueMemberS:
		return v.Value
	case *types.AttributeValueMemberN:
		return v.Value
	}
	return fmt.Sprintf("%v", av)
}

func (t *fakeTable) keyOf(it item) string {
	parts := make([]string, 0, len(t.keys))
	for _, k := range t.keys {
		parts = append(parts, attrString(it[k.name]))
	}
	return strings.Join(parts, "|")
}

func (f *fakeDynamo) GetItem(_ context.Context, in *dynamodb.GetItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	t, err := f.table(aws.ToString(in.TableName))
	if err != nil {
		return nil, err
	}
	return &dynamodb.GetItemOutput{Item: t.items[t.keyOf(in.Key)]}, nil
}

func (f *fakeDynamo) Query(_ context.Context, in *dynamodb.QueryInput, _ ...func(*dynamodb.Options)) (*dynamodb.QueryOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	t, err := f.table(aws.ToString(in.TableName))
	if err != nil {
		return nil, err
	}
	hash := t.keys[0].name
	want := attrString(in.ExpressionAttributeValues[":wo"])
	after, hasAfter := in.ExpressionAttributeValues[":after"]

	var out []item
	for _, it := range t.items {
		if attrString(it[hash]) != want {
			continue
		}
		if hasAfter {
			sk, _ := strconv.ParseInt(attrString(it[t.keys[1].name]), 10, 64)
			floor, _ := strconv.ParseInt(attrString(after), 10, 64)
			if sk <= floor {
				continue
			}
		}
		out = append(out, it)
	}
	sort.Slice(out, func(i, j int) bool {
		a, _ := strconv.ParseInt(attrString(out[i][t.keys[1].name]), 10, 64)
		b, _ := strconv.ParseInt(attrString(out[j][t.keys[1].name]), 10, 64)
		return a < b
	})
	if in.Limit != nil && int(*in.Limit) < len(out) {
		out = out[:*in.Limit]
	}
	return &dynamodb.QueryOutput{Items: out}, nil
}

func (f *fakeDynamo) Scan(_ context.Context, in *dynamodb.ScanInput, _ ...func(*dynamodb.Options)) (*dynamodb.ScanOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	t, err := f.table(aws.ToString(in.TableName))
	if err != nil {
		return nil, err
	}
	out := make([]item, 0, len(t.items))
	for _, it := range t.items {
		out = append(out, it)
	}
	return &dynamodb.ScanOutput{Items: out}, nil
}

func (f *fakeDynamo) TransactWriteItems(_ context.Context, in *dynamodb.TransactWriteItemsInput, _ ...func(*dynamodb.Options)) (*dynamodb.TransactWriteItemsOutput, error) {
	if f.beforeCommit != nil {
		f.beforeCommit()
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.transactCalls++

	reasons := make([]types.CancellationReason, len(in.TransactItems))
	failed := false
	for i, w := range in.TransactItems {
		reasons[i] = types.CancellationReason{Code: aws.String("None")}
		table, key, cond, names, values := f.describeWrite(w)
		t, err := f.table(table)
		if err != nil {
			return nil, err
		}
		if cond == "" {
			continue
		}
		if !evalCondition(t.items[t.keyOf(key)], cond, names, values) {
			reasons[i] = types.CancellationReason{Code: aws.String("ConditionalCheckFailed")}
			failed = true
		}
	}
	if failed {
		return nil, &types.TransactionCanceledException{
			Message:             aws.String("Transaction cancelled"),
			CancellationReasons: reasons,
		}
	}

	for _, w := range in.TransactItems {
		switch {
		case w.Put != nil:
			t := f.tables[aws.ToString(w.Put.TableName)]
			t.items[t.keyOf(w.Put.Item)] = w.Put.Item
		case w.Update != nil:
			t := f.tables[aws.ToString(w.Update.TableName)]
			k := t.keyOf(w.Update.Key)
			updated := item{}
			for name, v := range t.items[k] {
				updated[name] = v
			}
			for name, v := range w.Update.Key {
				updated[name] = v
			}
			set := strings.TrimPrefix(aws.ToString(w.Update.UpdateExpression), "SET ")
			for _, assignment := range strings.Split(set, ", ") {
				lhs, rhs, _ := strings.Cut(assignment, " = ")
				updated[w.Update.ExpressionAttributeNames[lhs]] = w.Update.ExpressionAttributeValues[rhs]
			}
			t.items[k] = updated
		}
	}
	return &dynamodb.TransactWriteItemsOutput{}, nil
}

func (f *fakeDynamo) describeWrite(w types.TransactWriteItem) (string, item, string, map[string]string, map[string]types.AttributeValue) {
	if w.Put != nil {
		return aws.ToString(w.Put.TableName), w.Put.Item, aws.ToString(w.Put.ConditionExpression),
			w.Put.ExpressionAttributeNames, w.Put.ExpressionAttributeValues
	}
	return aws.ToString(w.Update.TableName), w.Update.Key, aws.ToString(w.Update.ConditionExpression),
		w.Update.ExpressionAttributeNames, w.Update.ExpressionAttributeValues
}

// evalCondition supports clauses joined by AND of the forms
// attribute_exists(#n), attribute_not_exists(#n) and #n = :v.
func evalCondition(current item, cond string, names map[string]string, values map[string]types.AttributeValue) bool {
	for _, clause := range strings.Split(cond, " AND ") {
		clause = strings.TrimSpace(clause)
		switch {
		case strings.HasPrefix(clause, "attribute_not_exists("):
			name := names[strings.TrimSuffix(strings.TrimPrefix(clause, "attribute_not_exists("), ")")]
			if _, ok := current[name]; ok {
				return false
			}
		case strings.HasPrefix(clause, "attribute_exists("):
			name := names[strings.TrimSuffix(strings.TrimPrefix(clause, "attribute_exists("), ")")]
			if _, ok := current[name]; !ok {
				return false
			}
		default:
			lhs, rhs, _ := strings.Cut(clause, " = ")
			got, ok := current[names[lhs]]
			if !ok || !reflect.DeepEqual(got, values[rhs]) {
				return false
			}
		}
	}
	return true
}

func (f *fakeDynamo) DescribeTable(_ context.Context, in *dynamodb.DescribeTableInput, _ ...func(*dynamodb.Options)) (*dynamodb.DescribeTableOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, err := f.table(aws.ToString(in.TableName)); err != nil {
		return nil, err
	}
	return &dynamodb.DescribeTableOutput{Table: &types.TableDescription{TableName: in.TableName}}, nil
}

func (f *fakeDynamo) CreateTable(_ context.Context, in *dynamodb.CreateTableInput, _ ...func(*dynamodb.Options)) (*dynamodb.CreateTableOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	name := aws.ToString(in.TableName)
	if _, ok := f.tables[name]; ok {
		return nil, &types.ResourceInUseException{Message: aws.String("table exists")}
	}
	var keys []tableKey
	for _, k := range in.KeySchema {
		attr := types.ScalarAttributeTypeS
		for _, d := range in.AttributeDefinitions {
			if aws.ToString(d.AttributeName) == aws.ToString(k.AttributeName) {
				attr = d.AttributeType
			}
		}
		keys = append(keys, tableKey{name: aws.ToString(k.AttributeName), attr: attr, keyType: k.KeyType})
	}
	f.tables[name] = &fakeTable{keys: keys, items: map[string]item{}}
	return &dynamodb.CreateTableOutput{}, nil
}
