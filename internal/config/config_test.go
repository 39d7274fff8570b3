package config

import "testing"

func TestNewConfig_Defaults(t *testing.T) {
	t.Setenv("PORT", "")
	t.Setenv("SERVER_PORT", "")
	t.Setenv("LOG_LEVEL", "")
	t.Setenv("IS_OFFLINE", "")
	t.Setenv("AWS_REGION", "")
	t.Setenv("COGNITO_USER_POOL_ID", "")
	t.Setenv("COGNITO_CLIENT_ID", "")
	t.Setenv("DYNAMO_TABLE_NAME", "")
	t.Setenv("LOCAL_DYNAMO_ENDPOINT", "")
	t.Setenv("LOCAL_USER_ID", "")
	t.Setenv("ALLOWED_ORIGINS", "")

	cfg := NewConfig()

	if cfg.GetServerPort() != "8080" {
		t.Fatalf("expected default server port 8080, got %s", cfg.GetServerPort())
	}
	if cfg.GetLogLevel() != "info" {
		t.Fatalf("expected default log level info, got %s", cfg.GetLogLevel())
	}
	if cfg.IsOffline() {
		t.Fatal("expected offline mode off by default")
	}
	if cfg.GetAWSRegion() != "ap-northeast-1" {
		t.Fatalf("expected default region ap-northeast-1, got %s", cfg.GetAWSRegion())
	}
	if cfg.GetTableName() != "" {
		t.Fatalf("expected empty table name, got %s", cfg.GetTableName())
	}
	if len(cfg.GetAllowedOrigins()) == 0 {
		t.Fatal("expected default allowed origins")
	}
}

func TestNewConfig_Overrides(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("SERVER_PORT", "7070")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("IS_OFFLINE", "true")
	t.Setenv("AWS_REGION", "us-west-2")
	t.Setenv("COGNITO_USER_POOL_ID", "us-west-2_pool")
	t.Setenv("COGNITO_CLIENT_ID", "client-1")
	t.Setenv("DYNAMO_TABLE_NAME", "documents")
	t.Setenv("LOCAL_DYNAMO_ENDPOINT", "http://localhost:8000")
	t.Setenv("LOCAL_USER_ID", "dev-user")
	t.Setenv("ALLOWED_ORIGINS", "https://app.example.com, https://staging.example.com")

	cfg := NewConfig()

	if cfg.GetServerPort() != "9090" {
		t.Fatalf("expected server port 9090, got %s", cfg.GetServerPort())
	}
	if cfg.GetLogLevel() != "debug" {
		t.Fatalf("expected log level debug, got %s", cfg.GetLogLevel())
	}
	if !cfg.IsOffline() {
		t.Fatal("expected offline mode on")
	}
	if cfg.GetAWSRegion() != "us-west-2" {
		t.Fatalf("expected region us-west-2, got %s", cfg.GetAWSRegion())
	}
	if cfg.GetUserPoolID() != "us-west-2_pool" {
		t.Fatalf("expected pool us-west-2_pool, got %s", cfg.GetUserPoolID())
	}
	if cfg.GetClientID() != "client-1" {
		t.Fatalf("expected client client-1, got %s", cfg.GetClientID())
	}
	if cfg.GetTableName() != "documents" {
		t.Fatalf("expected table documents, got %s", cfg.GetTableName())
	}
	if cfg.GetLocalDynamoEndpoint() != "http://localhost:8000" {
		t.Fatalf("expected local endpoint, got %s", cfg.GetLocalDynamoEndpoint())
	}
	if cfg.GetLocalUserID() != "dev-user" {
		t.Fatalf("expected local user dev-user, got %s", cfg.GetLocalUserID())
	}

	origins := cfg.GetAllowedOrigins()
	if len(origins) != 2 || origins[0] != "https://app.example.com" || origins[1] != "https://staging.example.com" {
		t.Fatalf("unexpected allowed origins: %v", origins)
	}
}

func TestNewConfig_OfflineFlagParsing(t *testing.T) {
	tests := []struct {
		value string
		want  bool
	}{
		{"true", true},
		{"1", true},
		{"yes", true},
		{"false", false},
		{"0", false},
		{"garbage", false},
	}

	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			t.Setenv("IS_OFFLINE", tt.value)
			if got := NewConfig().IsOffline(); got != tt.want {
				t.Fatalf("IS_OFFLINE=%q: expected %v, got %v", tt.value, tt.want, got)
			}
		})
	}
}
