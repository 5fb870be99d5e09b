package types

type RunMode string

const (
	// ModeLocal runs the API server and applies migrations on start
	ModeLocal RunMode = "local"
	// ModeAPI is the mode for running just the API server
	ModeAPI RunMode = "api"
	// ModeAWSLambdaAPI is the mode for running the API server in AWS Lambda
	ModeAWSLambdaAPI RunMode = "aws_lambda_api"
)

type LogLevel string

const (
	LogLevelDebug LogLevel = "debug"
	LogLevelInfo  LogLevel = "info"
	LogLevelWarn  LogLevel = "warn"
	LogLevelError LogLevel = "error"
)

// DatabaseDriver names the database/sql driver used by the store.
type DatabaseDriver string

const (
	DriverPostgres DatabaseDriver = "postgres"
	DriverSQLite   DatabaseDriver = "sqlite3"
)
