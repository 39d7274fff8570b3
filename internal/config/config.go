package config

import (
	"os"
	"strings"

	"mdshare/internal/domain"
)

// AppConfig implements the domain.Config interface
type AppConfig struct {
	ServerPort          string
	LogLevel            string
	Offline             bool
	AWSRegion           string
	UserPoolID          string
	ClientID            string
	TableName           string
	LocalDynamoEndpoint string
	LocalUserID         string
	AllowedOrigins      []string
}

// NewConfig creates a new configuration instance from the environment with
// default values.
func NewConfig() domain.Config {
	return &AppConfig{
		// Cloud Run (and many PaaS) provide the listening port via PORT.
		// Keep SERVER_PORT for local/dev compatibility.
		ServerPort:          getEnvOrDefault("PORT", getEnvOrDefault("SERVER_PORT", "8080")),
		LogLevel:            getEnvOrDefault("LOG_LEVEL", "info"),
		Offline:             getEnvBoolOrDefault("IS_OFFLINE", false),
		AWSRegion:           getEnvOrDefault("AWS_REGION", "ap-northeast-1"),
		UserPoolID:          getEnvOrDefault("COGNITO_USER_POOL_ID", ""),
		ClientID:            getEnvOrDefault("COGNITO_CLIENT_ID", ""),
		TableName:           getEnvOrDefault("DYNAMO_TABLE_NAME", ""),
		LocalDynamoEndpoint: getEnvOrDefault("LOCAL_DYNAMO_ENDPOINT", ""),
		LocalUserID:         getEnvOrDefault("LOCAL_USER_ID", ""),
		AllowedOrigins:      getEnvListOrDefault("ALLOWED_ORIGINS", []string{"http://localhost:5173", "http://localhost:3000"}),
	}
}

// GetServerPort returns the server port
func (c *AppConfig) GetServerPort() string {
	return c.ServerPort
}

// GetLogLevel returns the logging level
func (c *AppConfig) GetLogLevel() string {
	return c.LogLevel
}

// IsOffline reports whether the server runs with the local mock identity
// and the in-memory store.
func (c *AppConfig) IsOffline() bool {
	return c.Offline
}

// GetAWSRegion returns the AWS region
func (c *AppConfig) GetAWSRegion() string {
	return c.AWSRegion
}

// GetUserPoolID returns the Cognito user pool ID
func (c *AppConfig) GetUserPoolID() string {
	return c.UserPoolID
}

// GetClientID returns the Cognito app client ID
func (c *AppConfig) GetClientID() string {
	return c.ClientID
}

// GetTableName returns the DynamoDB table name
func (c *AppConfig) GetTableName() string {
	return c.TableName
}

// GetLocalDynamoEndpoint returns the local DynamoDB endpoint override
func (c *AppConfig) GetLocalDynamoEndpoint() string {
	return c.LocalDynamoEndpoint
}

// GetLocalUserID returns the fixed identity used in offline mode
func (c *AppConfig) GetLocalUserID() string {
	return c.LocalUserID
}

// GetAllowedOrigins returns the CORS allowed origins
func (c *AppConfig) GetAllowedOrigins() []string {
	return c.AllowedOrigins
}

// Helper functions for environment variable handling
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvBoolOrDefault(key string, defaultValue bool) bool {
	switch strings.ToLower(os.Getenv(key)) {
	case "true", "1", "yes":
		return true
	case "false", "0", "no":
		return false
	default:
		return defaultValue
	}
}

func getEnvListOrDefault(key string, defaultValue []string) []string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	parts := strings.Split(value, ",")
	origins := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			origins = append(origins, trimmed)
		}
	}
	return origins
}
