package repository

import (
	"context"
	"fmt"
	"sort"

	"mecanica_workorder/internal/domain/entities"
	"mecanica_workorder/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// StageTemplateDynamoRepository reads the stage catalog from DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//
// The catalog is small, so List is a full scan sorted in memory.
type StageTemplateDynamoRepository struct {
	ddb       dynamoDBAPI
	tableName string
}

var _ interfaces.IStageTemplateRepository = (*StageTemplateDynamoRepository)(nil)

func NewStageTemplateDynamoRepository(ddb dynamoDBAPI, tables DynamoTables) *StageTemplateDynamoRepository {
	return &StageTemplateDynamoRepository{
		ddb:       ddb,
		tableName: tables.withDefaults().StageTemplates,
	}
}

func (r *StageTemplateDynamoRepository) List(ctx context.Context) ([]entities.StageTemplate, error) {
	var (
		templates []entities.StageTemplate
		start     map[string]types.AttributeValue
	)
	for {
		out, err := r.ddb.Scan(ctx, &dynamodb.ScanInput{
			TableName:         aws.String(r.tableName),
			ConsistentRead:    aws.Bool(true),
			ExclusiveStartKey: start,
		})
		if err != nil {
			return nil, fmt.Errorf("list stage templates: %w", err)
		}
		var items []stageTemplateItem
		if err := attributevalue.UnmarshalListOfMaps(out.Items, &items); err != nil {
			return nil, err
		}
		for _, it := range items {
			templates = append(templates, entities.StageTemplate{
				ID:            it.ID,
				Name:          it.Name,
				Description:   it.Description,
				SequenceIndex: it.SequenceIndex,
			})
		}
		if len(out.LastEvaluatedKey) == 0 {
			break
		}
		start = out.LastEvaluatedKey
	}
	sort.Slice(templates, func(i, j int) bool {
		return templates[i].SequenceIndex < templates[j].SequenceIndex
	})
	return templates, nil
}

// Seed writes all templates in one transaction, failing if any id exists.
func (r *StageTemplateDynamoRepository) Seed(ctx context.Context, templates []entities.StageTemplate) error {
	if len(templates) == 0 {
		return nil
	}
	if len(templates) > maxTransactItems {
		return fmt.Errorf("seed stage templates: %d templates exceed the limit of %d", len(templates), maxTransactItems)
	}
	writes := make([]types.TransactWriteItem, 0, len(templates))
	for _, t := range templates {
		av, err := attributevalue.MarshalMap(stageTemplateItem{
			ID:            t.ID,
			Name:          t.Name,
			Description:   t.Description,
			SequenceIndex: t.SequenceIndex,
		})
		if err != nil {
			return err
		}
		writes = append(writes, types.TransactWriteItem{Put: &types.Put{
			TableName:                aws.String(r.tableName),
			Item:                     av,
			ConditionExpression:      aws.String("attribute_not_exists(#id)"),
			ExpressionAttributeNames: map[string]string{"#id": "id"},
		}})
	}
	if _, err := r.ddb.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{TransactItems: writes}); err != nil {
		return classifyDynamoError("seed stage templates", err)
	}
	return nil
}
