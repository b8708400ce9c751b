package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Store drivers.
const (
	DriverDynamoDB = "dynamodb"
	DriverPostgres = "postgres"
	DriverMySQL    = "mysql"
	DriverSQLite   = "sqlite"
)

// DefaultStageCatalogSeed is loaded into an empty stage catalog at startup.
const DefaultStageCatalogSeed = "Diagnóstico:Inspeção inicial do veículo;" +
	"Desmontagem:Remoção das peças afetadas;" +
	"Reparo:Execução do serviço;" +
	"Montagem:Reinstalação e ajustes;" +
	"Teste de rodagem:Validação final com o veículo em movimento"

// Config is the process configuration, read from the environment (and a
// .env file when present).
type Config struct {
	HTTPPort int

	StoreDriver string
	DatabaseDSN string

	AWSRegion          string
	AWSAccessKeyID     string
	AWSSecretAccessKey string
	DynamoDBEndpoint   string
	Tables             Tables

	SlackWebhookURL string
	NotifyTimeout   time.Duration

	LifecycleMaxAttempts int

	LogLevel  string
	LogFormat string

	StageCatalogSeed string
}

type Tables struct {
	WorkOrders       string
	WorkOrderNumbers string
	Stages           string
	StatusEvents     string
	QualityVerdicts  string
	StageTemplates   string
}

// Load reads the configuration from the environment, applying defaults.
func Load() (Config, error) {
	cfg := Config{
		StoreDriver: strings.ToLower(getenvDefault("STORE_DRIVER", DriverSQLite)),
		DatabaseDSN: os.Getenv("DATABASE_DSN"),

		AWSRegion:          getenvDefault("AWS_REGION", "us-east-1"),
		AWSAccessKeyID:     getenvDefault("AWS_ACCESS_KEY_ID", "local"),
		AWSSecretAccessKey: getenvDefault("AWS_SECRET_ACCESS_KEY", "local"),
		DynamoDBEndpoint:   os.Getenv("DYNAMODB_ENDPOINT"),
		Tables: Tables{
			WorkOrders:       getenvDefault("WORK_ORDERS_TABLE", "work_orders"),
			WorkOrderNumbers: getenvDefault("WORK_ORDER_NUMBERS_TABLE", "work_order_numbers"),
			Stages:           getenvDefault("WORK_ORDER_STAGES_TABLE", "work_order_stages"),
			StatusEvents:     getenvDefault("STATUS_EVENTS_TABLE", "status_events"),
			QualityVerdicts:  getenvDefault("QUALITY_VERDICTS_TABLE", "quality_verdicts"),
			StageTemplates:   getenvDefault("STAGE_TEMPLATES_TABLE", "stage_templates"),
		},

		SlackWebhookURL: strings.TrimSpace(os.Getenv("SLACK_WEBHOOK_URL")),

		LogLevel:  getenvDefault("LOG_LEVEL", "info"),
		LogFormat: getenvDefault("LOG_FORMAT", "json"),

		StageCatalogSeed: getenvDefault("STAGE_CATALOG_SEED", DefaultStageCatalogSeed),
	}

	var err error
	if cfg.HTTPPort, err = getenvInt("HTTP_PORT", 8080); err != nil {
		return Config{}, err
	}
	notifySeconds, err := getenvInt("NOTIFY_TIMEOUT_SECONDS", 5)
	if err != nil {
		return Config{}, err
	}
	cfg.NotifyTimeout = time.Duration(notifySeconds) * time.Second
	if cfg.LifecycleMaxAttempts, err = getenvInt("LIFECYCLE_MAX_ATTEMPTS", 3); err != nil {
		return Config{}, err
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks the values Load cannot default.
func (c Config) Validate() error {
	switch c.StoreDriver {
	case DriverDynamoDB, DriverSQLite:
	case DriverPostgres, DriverMySQL:
		if c.DatabaseDSN == "" {
			return fmt.Errorf("config: DATABASE_DSN is required for store driver %q", c.StoreDriver)
		}
	default:
		return fmt.Errorf("config: unsupported STORE_DRIVER %q", c.StoreDriver)
	}
	if c.HTTPPort <= 0 || c.HTTPPort > 65535 {
		return fmt.Errorf("config: HTTP_PORT out of range: %d", c.HTTPPort)
	}
	if c.LifecycleMaxAttempts < 1 {
		return fmt.Errorf("config: LIFECYCLE_MAX_ATTEMPTS must be at least 1, got %d", c.LifecycleMaxAttempts)
	}
	if c.NotifyTimeout <= 0 {
		return fmt.Errorf("config: NOTIFY_TIMEOUT_SECONDS must be positive")
	}
	return nil
}

// SQLiteDSN is the DSN used for the sqlite driver when DATABASE_DSN is unset.
func (c Config) SQLiteDSN() string {
	if c.DatabaseDSN != "" {
		return c.DatabaseDSN
	}
	return "file:workorders.db?_pragma=busy_timeout(5000)&_pragma=foreign_keys(1)"
}

func getenvDefault(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return def
}

func getenvInt(key string, def int) (int, error) {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("config: %s must be an integer: %w", key, err)
	}
	return n, nil
}
