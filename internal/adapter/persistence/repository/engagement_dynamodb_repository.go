package repository

import (
	"context"
	"errors"
	"time"

	"snapbook/internal/domain/entities"
	"snapbook/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultEngagementsTableName = "engagements"

type engagementItem struct {
	ID                string `dynamodbav:"id"`
	QuoteID           string `dynamodbav:"quote_id"`
	CustomerID        string `dynamodbav:"customer_id,omitempty"`
	ProviderID        string `dynamodbav:"provider_id,omitempty"`
	ServiceType       string `dynamodbav:"service_type"`
	GuaranteedCeiling int    `dynamodbav:"guaranteed_ceiling"`
	ScheduledFor      string `dynamodbav:"scheduled_for"`
	Description       string `dynamodbav:"description,omitempty"`
	ArrivalPhotoRef   string `dynamodbav:"arrival_photo_ref,omitempty"`
	ScopeVerified     bool   `dynamodbav:"scope_verified"`
	Status            string `dynamodbav:"status"`
	CreatedAt         string `dynamodbav:"created_at"`
}

// EngagementDynamoRepository persists Engagement entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)

type EngagementDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IEngagementRepository = (*EngagementDynamoRepository)(nil)

func NewEngagementDynamoRepository(ddb *dynamodb.Client) *EngagementDynamoRepository {
	return &EngagementDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("ENGAGEMENTS_TABLE", defaultEngagementsTableName),
	}
}

func (r *EngagementDynamoRepository) Create(ctx context.Context, e entities.Engagement) (entities.Engagement, error) {
	it := toEngagementItem(e)
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.Engagement{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		return entities.Engagement{}, err
	}
	return e, nil
}

func (r *EngagementDynamoRepository) GetByID(ctx context.Context, id string) (entities.Engagement, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Engagement{}, err
	}
	if len(out.Item) == 0 {
		return entities.Engagement{}, nil
	}

	var it engagementItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Engagement{}, err
	}
	return fromEngagementItem(it), nil
}

func (r *EngagementDynamoRepository) SetArrivalPhoto(ctx context.Context, id string, photoRef string, scopeVerified bool) (entities.Engagement, error) {
	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression: aws.String("attribute_exists(#id)"),
		UpdateExpression:    aws.String("SET #arrival_photo_ref = :photo_ref, #scope_verified = :scope_verified"),
		ExpressionAttributeNames: map[string]string{
			"#id":                "id",
			"#arrival_photo_ref": "arrival_photo_ref",
			"#scope_verified":    "scope_verified",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":photo_ref":      &types.AttributeValueMemberS{Value: photoRef},
			":scope_verified": &types.AttributeValueMemberBOOL{Value: scopeVerified},
		},
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.Engagement{}, nil
		}
		return entities.Engagement{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.Engagement{}, nil
	}

	var it engagementItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Engagement{}, err
	}
	return fromEngagementItem(it), nil
}

// Delete removes an engagement. Used only to roll back after a lost booking
// race; deleting a missing row is not an error.
func (r *EngagementDynamoRepository) Delete(ctx context.Context, id string) error {
	_, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
	})
	return err
}

func toEngagementItem(e entities.Engagement) engagementItem {
	return engagementItem{
		ID:                e.ID,
		QuoteID:           e.QuoteID,
		CustomerID:        e.CustomerID,
		ProviderID:        e.ProviderID,
		ServiceType:       string(e.ServiceType),
		GuaranteedCeiling: e.GuaranteedCeiling,
		ScheduledFor:      e.ScheduledFor.UTC().Format(time.RFC3339Nano),
		Description:       e.Description,
		ArrivalPhotoRef:   e.ArrivalPhotoRef,
		ScopeVerified:     e.ScopeVerified,
		Status:            string(e.Status),
		CreatedAt:         e.CreatedAt.UTC().Format(time.RFC3339Nano),
	}
}

func fromEngagementItem(it engagementItem) entities.Engagement {
	scheduledFor, _ := time.Parse(time.RFC3339Nano, it.ScheduledFor)
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	return entities.Engagement{
		ID:                it.ID,
		QuoteID:           it.QuoteID,
		CustomerID:        it.CustomerID,
		ProviderID:        it.ProviderID,
		ServiceType:       entities.ServiceType(it.ServiceType),
		GuaranteedCeiling: it.GuaranteedCeiling,
		ScheduledFor:      scheduledFor,
		Description:       it.Description,
		ArrivalPhotoRef:   it.ArrivalPhotoRef,
		ScopeVerified:     it.ScopeVerified,
		Status:            entities.EngagementStatus(it.Status),
		CreatedAt:         createdAt,
	}
}
