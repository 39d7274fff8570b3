package config

import (
	"context"
	"fmt"

	"mdshare/internal/auth"
	"mdshare/internal/domain"
	"mdshare/internal/repository"
	"mdshare/internal/service"
	"mdshare/pkg/logger"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
)

// Container holds all application dependencies
type Container struct {
	Config           domain.Config
	Logger           domain.Logger
	DocumentStore    domain.DocumentStore
	IdentityResolver domain.IdentityResolver
	DocumentService  domain.DocumentService
}

// NewContainer creates a new dependency injection container. The identity
// resolver strategy and the store backend are chosen here, once, from the
// offline flag; nothing downstream branches on it again.
func NewContainer(ctx context.Context) (*Container, error) {
	config := NewConfig()
	appLogger := logger.NewLogger(config.GetLogLevel())

	store, err := newDocumentStore(ctx, config, appLogger)
	if err != nil {
		return nil, fmt.Errorf("initialize document store: %w", err)
	}

	resolver := newIdentityResolver(config, appLogger)
	documentService := service.NewDocumentService(store, appLogger)

	return &Container{
		Config:           config,
		Logger:           appLogger,
		DocumentStore:    store,
		IdentityResolver: resolver,
		DocumentService:  documentService,
	}, nil
}

// newDocumentStore picks the store backend. Offline mode without a local
// DynamoDB endpoint runs fully in memory with sample fixtures; with an
// endpoint it talks to local DynamoDB using throwaway credentials.
func newDocumentStore(ctx context.Context, config domain.Config, appLogger domain.Logger) (domain.DocumentStore, error) {
	if config.IsOffline() && config.GetLocalDynamoEndpoint() == "" {
		appLogger.Info("Using in-memory document store with sample data")
		store, err := repository.NewMemoryStore()
		if err != nil {
			return nil, err
		}
		if err := store.Load(repository.SampleDocuments(localUserID(config))); err != nil {
			return nil, err
		}
		return store, nil
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(config.GetAWSRegion()))
	if err != nil {
		return nil, fmt.Errorf("load aws config: %w", err)
	}

	var optFns []func(*dynamodb.Options)
	if config.IsOffline() {
		appLogger.Info("Using local DynamoDB", "endpoint", config.GetLocalDynamoEndpoint())
		optFns = append(optFns, func(o *dynamodb.Options) {
			o.BaseEndpoint = aws.String(config.GetLocalDynamoEndpoint())
			o.Credentials = credentials.NewStaticCredentialsProvider("local", "local", "")
		})
	}

	client := dynamodb.NewFromConfig(awsCfg, optFns...)
	return repository.NewDynamoStore(client, config.GetTableName(), appLogger), nil
}

// newIdentityResolver picks the identity strategy: fixed local identity in
// offline mode, Cognito JWT verification otherwise.
func newIdentityResolver(config domain.Config, appLogger domain.Logger) domain.IdentityResolver {
	if config.IsOffline() {
		appLogger.Info("Using local mock identity", "userId", localUserID(config))
		return auth.NewStaticResolver(config.GetLocalUserID())
	}

	appLogger.Info("Using Cognito JWT identity", "userPool", config.GetUserPoolID())
	issuer := auth.CognitoIssuerURL(config.GetAWSRegion(), config.GetUserPoolID())
	keys := auth.NewKeySet(auth.CognitoJWKSURL(config.GetAWSRegion(), config.GetUserPoolID()), appLogger)
	return auth.NewCognitoResolver(issuer, config.GetClientID(), keys, appLogger)
}

func localUserID(config domain.Config) string {
	if id := config.GetLocalUserID(); id != "" {
		return id
	}
	return auth.DefaultLocalUserID
}
