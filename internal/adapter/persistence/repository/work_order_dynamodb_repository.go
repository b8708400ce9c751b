package repository

import (
	"context"
	"fmt"
	"strconv"

	"mecanica_workorder/internal/domain/entities"
	"mecanica_workorder/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// DynamoTables names the tables of the work order store.
type DynamoTables struct {
	WorkOrders       string
	WorkOrderNumbers string
	Stages           string
	StatusEvents     string
	QualityVerdicts  string
	StageTemplates   string
}

func DefaultDynamoTables() DynamoTables {
	return DynamoTables{
		WorkOrders:       "work_orders",
		WorkOrderNumbers: "work_order_numbers",
		Stages:           "work_order_stages",
		StatusEvents:     "status_events",
		QualityVerdicts:  "quality_verdicts",
		StageTemplates:   "stage_templates",
	}
}

func (t DynamoTables) withDefaults() DynamoTables {
	d := DefaultDynamoTables()
	if t.WorkOrders == "" {
		t.WorkOrders = d.WorkOrders
	}
	if t.WorkOrderNumbers == "" {
		t.WorkOrderNumbers = d.WorkOrderNumbers
	}
	if t.Stages == "" {
		t.Stages = d.Stages
	}
	if t.StatusEvents == "" {
		t.StatusEvents = d.StatusEvents
	}
	if t.QualityVerdicts == "" {
		t.QualityVerdicts = d.QualityVerdicts
	}
	if t.StageTemplates == "" {
		t.StageTemplates = d.StageTemplates
	}
	return t
}

// WorkOrderDynamoRepository persists the work order aggregate in DynamoDB.
//
// Table requirements:
//   - work_orders: PK id (S)
//   - work_order_numbers: PK order_number (S)
//   - work_order_stages: PK work_order_id (S), SK sequence_index (N)
//   - status_events: PK work_order_id (S), SK sequence (N)
//   - quality_verdicts: PK work_order_id (S)
//
// Reads are strongly consistent. Writes made inside WithinTx are buffered and
// committed by a single TransactWriteItems call; the work order item is
// conditioned on the version that was read, so two transactions on the same
// order cannot both commit.
type WorkOrderDynamoRepository struct {
	dynamoReader
}

var _ interfaces.IWorkOrderRepository = (*WorkOrderDynamoRepository)(nil)

func NewWorkOrderDynamoRepository(ddb dynamoDBAPI, tables DynamoTables) *WorkOrderDynamoRepository {
	return &WorkOrderDynamoRepository{dynamoReader: dynamoReader{ddb: ddb, tables: tables.withDefaults()}}
}

func (r *WorkOrderDynamoRepository) WithinTx(ctx context.Context, fn func(ctx context.Context, tx interfaces.IWorkOrderTx) error) error {
	tx := &dynamoTx{dynamoReader: r.dynamoReader}
	if err := fn(ctx, tx); err != nil {
		return err
	}
	if len(tx.writes) == 0 {
		return nil
	}
	if len(tx.writes) > maxTransactItems {
		return fmt.Errorf("commit work order transaction: %d writes exceed the limit of %d", len(tx.writes), maxTransactItems)
	}
	_, err := r.ddb.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{
		TransactItems: tx.writes,
	})
	if err != nil {
		return classifyDynamoError("commit work order transaction", err)
	}
	return nil
}

type dynamoReader struct {
	ddb    dynamoDBAPI
	tables DynamoTables
}

func (r dynamoReader) GetWorkOrder(ctx context.Context, id string) (entities.WorkOrder, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName:      aws.String(r.tables.WorkOrders),
		Key:            stringKey("id", id),
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.WorkOrder{}, fmt.Errorf("get work order: %w", err)
	}
	if len(out.Item) == 0 {
		return entities.WorkOrder{}, nil
	}
	var it workOrderItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.WorkOrder{}, err
	}
	return fromWorkOrderItem(it), nil
}

func (r dynamoReader) GetWorkOrderByNumber(ctx context.Context, orderNumber string) (entities.WorkOrder, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName:      aws.String(r.tables.WorkOrderNumbers),
		Key:            stringKey("order_number", orderNumber),
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.WorkOrder{}, fmt.Errorf("get work order number: %w", err)
	}
	if len(out.Item) == 0 {
		return entities.WorkOrder{}, nil
	}
	var it workOrderNumberItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.WorkOrder{}, err
	}
	return r.GetWorkOrder(ctx, it.WorkOrderID)
}

func (r dynamoReader) ListStages(ctx context.Context, workOrderID string) ([]entities.WorkOrderStage, error) {
	var (
		stages []entities.WorkOrderStage
		start  map[string]types.AttributeValue
	)
	for {
		out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
			TableName:                aws.String(r.tables.Stages),
			KeyConditionExpression:   aws.String("#wo = :wo"),
			ExpressionAttributeNames: map[string]string{"#wo": "work_order_id"},
			ExpressionAttributeValues: map[string]types.AttributeValue{
				":wo": &types.AttributeValueMemberS{Value: workOrderID},
			},
			ConsistentRead:    aws.Bool(true),
			ScanIndexForward:  aws.Bool(true),
			ExclusiveStartKey: start,
		})
		if err != nil {
			return nil, fmt.Errorf("list stages: %w", err)
		}
		var items []stageItem
		if err := attributevalue.UnmarshalListOfMaps(out.Items, &items); err != nil {
			return nil, err
		}
		for _, it := range items {
			stages = append(stages, fromStageItem(it))
		}
		if len(out.LastEvaluatedKey) == 0 {
			return stages, nil
		}
		start = out.LastEvaluatedKey
	}
}

func (r dynamoReader) GetQualityVerdict(ctx context.Context, workOrderID string) (entities.QualityVerdict, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName:      aws.String(r.tables.QualityVerdicts),
		Key:            stringKey("work_order_id", workOrderID),
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.QualityVerdict{}, fmt.Errorf("get quality verdict: %w", err)
	}
	if len(out.Item) == 0 {
		return entities.QualityVerdict{}, nil
	}
	var it qualityVerdictItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.QualityVerdict{}, err
	}
	return fromQualityVerdictItem(it), nil
}

func (r dynamoReader) ListStatusEvents(ctx context.Context, workOrderID string, afterSequence int64, limit int) ([]entities.StatusEvent, error) {
	in := &dynamodb.QueryInput{
		TableName:              aws.String(r.tables.StatusEvents),
		KeyConditionExpression: aws.String("#wo = :wo AND #seq > :after"),
		ExpressionAttributeNames: map[string]string{
			"#wo":  "work_order_id",
			"#seq": "sequence",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":wo":    &types.AttributeValueMemberS{Value: workOrderID},
			":after": numberAttr(afterSequence),
		},
		ConsistentRead:   aws.Bool(true),
		ScanIndexForward: aws.Bool(true),
	}
	if limit > 0 {
		in.Limit = aws.Int32(int32(limit))
	}
	out, err := r.ddb.Query(ctx, in)
	if err != nil {
		return nil, fmt.Errorf("list status events: %w", err)
	}
	var items []statusEventItem
	if err := attributevalue.UnmarshalListOfMaps(out.Items, &items); err != nil {
		return nil, err
	}
	events := make([]entities.StatusEvent, 0, len(items))
	for _, it := range items {
		events = append(events, fromStatusEventItem(it))
	}
	return events, nil
}

// dynamoTx reads straight from the tables and buffers its writes until the
// enclosing WithinTx commits them. Reads do not see buffered writes.
type dynamoTx struct {
	dynamoReader
	writes []types.TransactWriteItem
}

var _ interfaces.IWorkOrderTx = (*dynamoTx)(nil)

func (t *dynamoTx) put(table string, item any, condition string, names map[string]string, values map[string]types.AttributeValue) error {
	av, err := attributevalue.MarshalMap(item)
	if err != nil {
		return err
	}
	put := &types.Put{
		TableName: aws.String(table),
		Item:      av,
	}
	if condition != "" {
		put.ConditionExpression = aws.String(condition)
		put.ExpressionAttributeNames = names
		if len(values) > 0 {
			put.ExpressionAttributeValues = values
		}
	}
	t.writes = append(t.writes, types.TransactWriteItem{Put: put})
	return nil
}

func (t *dynamoTx) CreateWorkOrder(_ context.Context, wo entities.WorkOrder) error {
	if err := t.put(t.tables.WorkOrders, toWorkOrderItem(wo),
		"attribute_not_exists(#id)", map[string]string{"#id": "id"}, nil); err != nil {
		return err
	}
	return t.put(t.tables.WorkOrderNumbers, workOrderNumberItem{OrderNumber: wo.OrderNumber, WorkOrderID: wo.ID},
		"attribute_not_exists(#number)", map[string]string{"#number": "order_number"}, nil)
}

func (t *dynamoTx) UpdateWorkOrder(_ context.Context, wo entities.WorkOrder, expectedVersion int64) error {
	return t.put(t.tables.WorkOrders, toWorkOrderItem(wo),
		"attribute_exists(#id) AND #version = :expected",
		map[string]string{"#id": "id", "#version": "version"},
		map[string]types.AttributeValue{":expected": numberAttr(expectedVersion)})
}

func (t *dynamoTx) CreateStages(_ context.Context, stages []entities.WorkOrderStage) error {
	for _, st := range stages {
		if err := t.put(t.tables.Stages, toStageItem(st),
			"attribute_not_exists(#wo)", map[string]string{"#wo": "work_order_id"}, nil); err != nil {
			return err
		}
	}
	return nil
}

func (t *dynamoTx) CompleteStage(_ context.Context, stage entities.WorkOrderStage) error {
	it := toStageItem(stage)
	t.writes = append(t.writes, types.TransactWriteItem{Update: &types.Update{
		TableName: aws.String(t.tables.Stages),
		Key: map[string]types.AttributeValue{
			"work_order_id":  &types.AttributeValueMemberS{Value: stage.WorkOrderID},
			"sequence_index": &types.AttributeValueMemberN{Value: strconv.Itoa(stage.SequenceIndex)},
		},
		UpdateExpression:    aws.String("SET #done = :done, #completed_at = :completed_at, #completed_by = :completed_by, #comment = :comment"),
		ConditionExpression: aws.String("#id = :id AND #done = :open"),
		ExpressionAttributeNames: map[string]string{
			"#id":           "id",
			"#done":         "is_completed",
			"#completed_at": "completed_at",
			"#completed_by": "completed_by",
			"#comment":      "comment",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":id":           &types.AttributeValueMemberS{Value: stage.ID},
			":done":         &types.AttributeValueMemberBOOL{Value: true},
			":open":         &types.AttributeValueMemberBOOL{Value: false},
			":completed_at": &types.AttributeValueMemberS{Value: it.CompletedAt},
			":completed_by": &types.AttributeValueMemberS{Value: it.CompletedBy},
			":comment":      &types.AttributeValueMemberS{Value: it.Comment},
		},
	}})
	return nil
}

func (t *dynamoTx) PutQualityVerdict(_ context.Context, v entities.QualityVerdict) error {
	return t.put(t.tables.QualityVerdicts, toQualityVerdictItem(v), "", nil, nil)
}

func (t *dynamoTx) AppendStatusEvent(_ context.Context, e entities.StatusEvent) error {
	return t.put(t.tables.StatusEvents, toStatusEventItem(e),
		"attribute_not_exists(#wo)", map[string]string{"#wo": "work_order_id"}, nil)
}
