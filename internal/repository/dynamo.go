// Package repository provides the DocumentStore backends: DynamoDB for
// deployments and an in-memory store for offline mode and tests.
package repository

import (
	"context"
	"errors"
	"fmt"

	"mdshare/internal/domain"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// SlugIndexName is the global secondary index keyed by slug alone, used for
// public lookups where the owner is unknown.
const SlugIndexName = "SlugIndex"

// DynamoStore implements domain.DocumentStore against a table keyed by
// userId (hash) and slug (range).
type DynamoStore struct {
	client    *dynamodb.Client
	tableName string
	logger    domain.Logger
}

// NewDynamoStore creates a new DynamoDB-backed document store.
func NewDynamoStore(client *dynamodb.Client, tableName string, logger domain.Logger) *DynamoStore {
	return &DynamoStore{
		client:    client,
		tableName: tableName,
		logger:    logger,
	}
}

// Put writes a new document. The condition guards against a slug collision
// on the composite key; the service never reuses slugs, so a failure here is
// a store-level anomaly rather than an expected path.
func (s *DynamoStore) Put(ctx context.Context, doc *domain.Document) error {
	item, err := attributevalue.MarshalMap(doc)
	if err != nil {
		return fmt.Errorf("marshal document: %w", err)
	}

	_, err = s.client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(s.tableName),
		Item:                item,
		ConditionExpression: aws.String("attribute_not_exists(slug)"),
	})
	if err != nil {
		return fmt.Errorf("put document: %w", err)
	}
	return nil
}

// GetByOwnerAndSlug reads a document by its composite primary key.
func (s *DynamoStore) GetByOwnerAndSlug(ctx context.Context, ownerID, slug string) (*domain.Document, error) {
	out, err := s.client.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(s.tableName),
		Key:       documentKey(ownerID, slug),
	})
	if err != nil {
		return nil, fmt.Errorf("get document: %w", err)
	}
	if len(out.Item) == 0 {
		return nil, domain.ErrDocumentNotFound
	}

	var doc domain.Document
	if err := attributevalue.UnmarshalMap(out.Item, &doc); err != nil {
		return nil, fmt.Errorf("unmarshal document: %w", err)
	}
	return &doc, nil
}

// GetBySlug reads a document through the slug secondary index.
func (s *DynamoStore) GetBySlug(ctx context.Context, slug string) (*domain.Document, error) {
	out, err := s.client.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(s.tableName),
		IndexName:              aws.String(SlugIndexName),
		KeyConditionExpression: aws.String("slug = :s"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":s": &types.AttributeValueMemberS{Value: slug},
		},
		Limit: aws.Int32(1),
	})
	if err != nil {
		return nil, fmt.Errorf("query slug index: %w", err)
	}
	if len(out.Items) == 0 {
		return nil, domain.ErrDocumentNotFound
	}

	var doc domain.Document
	if err := attributevalue.UnmarshalMap(out.Items[0], &doc); err != nil {
		return nil, fmt.Errorf("unmarshal document: %w", err)
	}
	return &doc, nil
}

// ListByOwner returns all documents owned by ownerID. The result is never
// nil; an owner with no documents gets an empty slice.
func (s *DynamoStore) ListByOwner(ctx context.Context, ownerID string) ([]*domain.Document, error) {
	docs := make([]*domain.Document, 0)

	paginator := dynamodb.NewQueryPaginator(s.client, &dynamodb.QueryInput{
		TableName:              aws.String(s.tableName),
		KeyConditionExpression: aws.String("userId = :uid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":uid": &types.AttributeValueMemberS{Value: ownerID},
		},
	})
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, fmt.Errorf("query documents: %w", err)
		}
		for _, item := range page.Items {
			var doc domain.Document
			if err := attributevalue.UnmarshalMap(item, &doc); err != nil {
				return nil, fmt.Errorf("unmarshal document: %w", err)
			}
			docs = append(docs, &doc)
		}
	}
	return docs, nil
}

// Update rewrites an existing record in full. UpdateItem would silently
// upsert a missing record, so the whole item is put back with an existence
// condition instead.
func (s *DynamoStore) Update(ctx context.Context, doc *domain.Document) error {
	item, err := attributevalue.MarshalMap(doc)
	if err != nil {
		return fmt.Errorf("marshal document: %w", err)
	}

	_, err = s.client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(s.tableName),
		Item:                item,
		ConditionExpression: aws.String("attribute_exists(slug)"),
	})
	if err != nil {
		if isConditionalCheckFailed(err) {
			return domain.ErrDocumentNotFound
		}
		return fmt.Errorf("update document: %w", err)
	}
	return nil
}

// Delete removes a record by its composite key.
func (s *DynamoStore) Delete(ctx context.Context, ownerID, slug string) error {
	_, err := s.client.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName:           aws.String(s.tableName),
		Key:                 documentKey(ownerID, slug),
		ConditionExpression: aws.String("attribute_exists(slug)"),
	})
	if err != nil {
		if isConditionalCheckFailed(err) {
			return domain.ErrDocumentNotFound
		}
		return fmt.Errorf("delete document: %w", err)
	}
	return nil
}

func documentKey(ownerID, slug string) map[string]types.AttributeValue {
	return map[string]types.AttributeValue{
		"userId": &types.AttributeValueMemberS{Value: ownerID},
		"slug":   &types.AttributeValueMemberS{Value: slug},
	}
}

func isConditionalCheckFailed(err error) bool {
	var ccf *types.ConditionalCheckFailedException
	return errors.As(err, &ccf)
}
