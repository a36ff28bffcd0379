package dynamo

import (
	"context"
	"errors"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/virtual-visits-api/internal/domain"
)

// OTPRepo stores OTP records, one per subject. PK: subject_id.
//
// Replace overwrites unconditionally — issuance always replaces the prior
// generation. Save is conditional on the revision that was read, so two
// concurrent validation attempts can never both apply their write; the loser
// gets domain.ErrRevisionConflict and must re-read.
type OTPRepo struct {
	client    *dynamodb.Client
	tableName string
}

func NewOTPRepo(client *dynamodb.Client, tableName string) *OTPRepo {
	return &OTPRepo{client: client, tableName: tableName}
}

func (r *OTPRepo) Get(ctx context.Context, subjectID string) (*domain.OTPRecord, error) {
	out, err := r.client.GetItem(ctx, &dynamodb.GetItemInput{
		TableName:      aws.String(r.tableName),
		Key:            strKey("subject_id", subjectID),
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return nil, err
	}
	if out.Item == nil {
		return nil, fmt.Errorf("otp record not found: %w", domain.ErrNotFound)
	}
	var rec domain.OTPRecord
	if err := attributevalue.UnmarshalMap(out.Item, &rec); err != nil {
		return nil, err
	}
	return &rec, nil
}

// Replace writes rec over whatever record exists for the subject. Used by
// issuance: a new generation wholesale-invalidates the previous one.
func (r *OTPRepo) Replace(ctx context.Context, rec *domain.OTPRecord) error {
	item, err := attributevalue.MarshalMap(rec)
	if err != nil {
		return fmt.Errorf("marshal otp record: %w", err)
	}
	_, err = r.client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      item,
	})
	return err
}

// Save persists a mutated record conditionally: the write only applies if the
// stored revision still equals rec.Revision (the value read before deciding).
// The stored copy carries rec.Revision+1. A lost race surfaces as
// domain.ErrRevisionConflict so the caller can re-run its read-decide-write
// cycle.
func (r *OTPRepo) Save(ctx context.Context, rec *domain.OTPRecord) error {
	next := *rec
	next.Revision = rec.Revision + 1
	item, err := attributevalue.MarshalMap(&next)
	if err != nil {
		return fmt.Errorf("marshal otp record: %w", err)
	}
	_, err = r.client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                item,
		ConditionExpression: aws.String("revision = :prev"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":prev": &types.AttributeValueMemberN{Value: fmt.Sprintf("%d", rec.Revision)},
		},
	})
	if err != nil {
		var ccf *types.ConditionalCheckFailedException
		if errors.As(err, &ccf) {
			return fmt.Errorf("otp record changed underneath us: %w", domain.ErrRevisionConflict)
		}
		return err
	}
	rec.Revision = next.Revision
	return nil
}
