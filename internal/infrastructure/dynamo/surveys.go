package dynamo

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/virtual-visits-api/internal/domain"
)

// SurveyRepo stores post-call survey results. PK: survey_id (ULID).
type SurveyRepo struct {
	client    *dynamodb.Client
	tableName string
}

func NewSurveyRepo(client *dynamodb.Client, tableName string) *SurveyRepo {
	return &SurveyRepo{client: client, tableName: tableName}
}

func (r *SurveyRepo) Put(ctx context.Context, s *domain.SurveyResult) error {
	item, err := attributevalue.MarshalMap(s)
	if err != nil {
		return fmt.Errorf("marshal survey result: %w", err)
	}
	_, err = r.client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      item,
	})
	return err
}
