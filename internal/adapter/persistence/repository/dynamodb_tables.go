package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

type tableKey struct {
	name    string
	attr    types.ScalarAttributeType
	keyType types.KeyType
}

// tableDefinitions returns the key schema of every table, pay per request.
func tableDefinitions(t DynamoTables) map[string][]tableKey {
	return map[string][]tableKey{
		t.WorkOrders:       {{"id", types.ScalarAttributeTypeS, types.KeyTypeHash}},
		t.WorkOrderNumbers: {{"order_number", types.ScalarAttributeTypeS, types.KeyTypeHash}},
		t.Stages: {
			{"work_order_id", types.ScalarAttributeTypeS, types.KeyTypeHash},
			{"sequence_index", types.ScalarAttributeTypeN, types.KeyTypeRange},
		},
		t.StatusEvents: {
			{"work_order_id", types.ScalarAttributeTypeS, types.KeyTypeHash},
			{"sequence", types.ScalarAttributeTypeN, types.KeyTypeRange},
		},
		t.QualityVerdicts: {{"work_order_id", types.ScalarAttributeTypeS, types.KeyTypeHash}},
		t.StageTemplates:  {{"id", types.ScalarAttributeTypeS, types.KeyTypeHash}},
	}
}

// EnsureTables creates the missing tables of the store. Existing tables are
// left untouched. It returns the names of the tables it created.
func EnsureTables(ctx context.Context, ddb dynamoDBAPI, tables DynamoTables) ([]string, error) {
	var created []string
	for name, keys := range tableDefinitions(tables.withDefaults()) {
		_, err := ddb.DescribeTable(ctx, &dynamodb.DescribeTableInput{TableName: aws.String(name)})
		if err == nil {
			continue
		}
		var notFound *types.ResourceNotFoundException
		if !errors.As(err, &notFound) {
			return created, fmt.Errorf("describe table %s: %w", name, err)
		}

		in := &dynamodb.CreateTableInput{
			TableName:   aws.String(name),
			BillingMode: types.BillingModePayPerRequest,
		}
		for _, k := range keys {
			in.AttributeDefinitions = append(in.AttributeDefinitions, types.AttributeDefinition{
				AttributeName: aws.String(k.name),
				AttributeType: k.attr,
			})
			in.KeySchema = append(in.KeySchema, types.KeySchemaElement{
				AttributeName: aws.String(k.name),
				KeyType:       k.keyType,
			})
		}
		if _, err := ddb.CreateTable(ctx, in); err != nil {
			var inUse *types.ResourceInUseException
			if errors.As(err, &inUse) {
				continue
			}
			return created, fmt.Errorf("create table %s: %w", name, err)
		}
		created = append(created, name)
	}
	return created, nil
}
