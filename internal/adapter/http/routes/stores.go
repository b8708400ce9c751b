package routes

import (
	"context"
	"fmt"
	"time"

	"mecanica_workorder/internal/adapter/persistence/gormstore"
	"mecanica_workorder/internal/adapter/persistence/repository"
	"mecanica_workorder/internal/infrastructure/config"
	"mecanica_workorder/internal/infrastructure/database"
	"mecanica_workorder/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"go.uber.org/zap"
)

const tableActiveTimeout = 2 * time.Minute

type stores struct {
	workOrders interfaces.IWorkOrderRepository
	templates  interfaces.IStageTemplateRepository
}

// openStores connects the configured store and prepares its schema.
func openStores(ctx context.Context, cfg config.Config, logger *zap.Logger) (stores, error) {
	if cfg.StoreDriver == config.DriverDynamoDB {
		return openDynamoStores(ctx, cfg, logger)
	}

	db, err := database.ConnectGorm(ctx, cfg, logger)
	if err != nil {
		return stores{}, err
	}
	workOrders := gormstore.NewWorkOrderStore(db)
	if err := workOrders.AutoMigrate(); err != nil {
		return stores{}, fmt.Errorf("migrate %s: %w", cfg.StoreDriver, err)
	}
	return stores{
		workOrders: workOrders,
		templates:  gormstore.NewStageTemplateStore(db),
	}, nil
}

func openDynamoStores(ctx context.Context, cfg config.Config, logger *zap.Logger) (stores, error) {
	ddb, err := database.ConnectDynamoDB(ctx, cfg)
	if err != nil {
		return stores{}, fmt.Errorf("connect dynamodb: %w", err)
	}

	tables := repository.DynamoTables{
		WorkOrders:       cfg.Tables.WorkOrders,
		WorkOrderNumbers: cfg.Tables.WorkOrderNumbers,
		Stages:           cfg.Tables.Stages,
		StatusEvents:     cfg.Tables.StatusEvents,
		QualityVerdicts:  cfg.Tables.QualityVerdicts,
		StageTemplates:   cfg.Tables.StageTemplates,
	}
	created, err := repository.EnsureTables(ctx, ddb, tables)
	if err != nil {
		return stores{}, err
	}
	waiter := dynamodb.NewTableExistsWaiter(ddb)
	for _, name := range created {
		if err := waiter.Wait(ctx, &dynamodb.DescribeTableInput{TableName: aws.String(name)}, tableActiveTimeout); err != nil {
			return stores{}, fmt.Errorf("wait for table %s: %w", name, err)
		}
		logger.Info("dynamodb table created", zap.String("table", name))
	}

	return stores{
		workOrders: repository.NewWorkOrderDynamoRepository(ddb, tables),
		templates:  repository.NewStageTemplateDynamoRepository(ddb, tables),
	}, nil
}
