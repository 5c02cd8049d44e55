package repository

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"snapbook/internal/domain/entities"
	"snapbook/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultQuotesTableName = "snap_quotes"

type quoteItem struct {
	ID              string   `dynamodbav:"id"`
	CustomerID      string   `dynamodbav:"customer_id,omitempty"`
	ImageRefs       []string `dynamodbav:"image_refs,omitempty"`
	ServiceType     string   `dynamodbav:"service_type"`
	Confidence      string   `dynamodbav:"confidence"`
	Analysis        string   `dynamodbav:"analysis"`
	BaseEstimate    int      `dynamodbav:"base_estimate"`
	CeilingPrice    int      `dynamodbav:"ceiling_price"`
	Adjustments     string   `dynamodbav:"adjustments,omitempty"`
	Status          string   `dynamodbav:"status"`
	EngagementID    string   `dynamodbav:"engagement_id,omitempty"`
	ArrivalPhotoRef string   `dynamodbav:"arrival_photo_ref,omitempty"`
	CreatedAt       string   `dynamodbav:"created_at"`
	UpdatedAt       string   `dynamodbav:"updated_at"`
}

// analysisBlob is the JSON form of the vision analysis stored with a quote.
// The details map is kept verbatim; the typed variant is re-derived on load.
type analysisBlob struct {
	ServiceType      string         `json:"service_type"`
	ScopeDescription string         `json:"scope_description"`
	EstimatedHours   float64        `json:"estimated_hours"`
	Confidence       string         `json:"confidence"`
	Details          map[string]any `json:"details,omitempty"`
}

// QuoteDynamoRepository persists Quote entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//
// The quoted -> booked transition is a conditional update on status so that
// two concurrent bookings of the same quote resolve to exactly one winner at
// the storage layer.

type QuoteDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IQuoteRepository = (*QuoteDynamoRepository)(nil)

func NewQuoteDynamoRepository(ddb *dynamodb.Client) *QuoteDynamoRepository {
	return &QuoteDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("QUOTES_TABLE", defaultQuotesTableName),
	}
}

func (r *QuoteDynamoRepository) Create(ctx context.Context, q entities.Quote) (entities.Quote, error) {
	it, err := toQuoteItem(q)
	if err != nil {
		return entities.Quote{}, err
	}
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.Quote{}, err
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
		return entities.Quote{}, err
	}
	return q, nil
}

func (r *QuoteDynamoRepository) GetByID(ctx context.Context, id string) (entities.Quote, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Quote{}, err
	}
	if len(out.Item) == 0 {
		return entities.Quote{}, nil
	}

	var it quoteItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Quote{}, err
	}
	return fromQuoteItem(it)
}

// Book flips the quote to booked and records the winning engagement. The
// write only succeeds while the quote is still quoted; on a lost race the
// current row is returned so the caller can tell conflict from not-found.
func (r *QuoteDynamoRepository) Book(ctx context.Context, id string, engagementID string) (entities.Quote, error) {
	now := time.Now().UTC().Format(time.RFC3339Nano)

	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression: aws.String("attribute_exists(#id) AND #status = :quoted"),
		UpdateExpression:    aws.String("SET #status = :booked, #engagement_id = :engagement_id, #updated_at = :updated_at"),
		ExpressionAttributeNames: map[string]string{
			"#id":            "id",
			"#status":        "status",
			"#engagement_id": "engagement_id",
			"#updated_at":    "updated_at",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":quoted":        &types.AttributeValueMemberS{Value: string(entities.QuoteStatusQuoted)},
			":booked":        &types.AttributeValueMemberS{Value: string(entities.QuoteStatusBooked)},
			":engagement_id": &types.AttributeValueMemberS{Value: engagementID},
			":updated_at":    &types.AttributeValueMemberS{Value: now},
		},
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			// Either the quote does not exist or another booking won. One
			// read tells the caller which.
			return r.GetByID(ctx, id)
		}
		return entities.Quote{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.Quote{}, nil
	}

	var it quoteItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Quote{}, err
	}
	return fromQuoteItem(it)
}

// AttachArrivalEvidence records the provider's on-site photo on the quote.
// The conditional write requires an engagement reference, so evidence can
// only land on quotes that were actually booked.
func (r *QuoteDynamoRepository) AttachArrivalEvidence(ctx context.Context, id string, photoRef string) (entities.Quote, error) {
	now := time.Now().UTC().Format(time.RFC3339Nano)

	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression: aws.String("attribute_exists(#id) AND attribute_exists(#engagement_id)"),
		UpdateExpression:    aws.String("SET #arrival_photo_ref = :photo_ref, #updated_at = :updated_at"),
		ExpressionAttributeNames: map[string]string{
			"#id":                "id",
			"#engagement_id":     "engagement_id",
			"#arrival_photo_ref": "arrival_photo_ref",
			"#updated_at":        "updated_at",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":photo_ref":  &types.AttributeValueMemberS{Value: photoRef},
			":updated_at": &types.AttributeValueMemberS{Value: now},
		},
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.Quote{}, nil
		}
		return entities.Quote{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.Quote{}, nil
	}

	var it quoteItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Quote{}, err
	}
	return fromQuoteItem(it)
}

func toQuoteItem(q entities.Quote) (quoteItem, error) {
	analysis, err := json.Marshal(analysisBlob{
		ServiceType:      string(q.Analysis.ServiceType),
		ScopeDescription: q.Analysis.ScopeDescription,
		EstimatedHours:   q.Analysis.EstimatedHours,
		Confidence:       string(q.Analysis.Confidence),
		Details:          q.Analysis.DetailsMap,
	})
	if err != nil {
		return quoteItem{}, err
	}

	var adjustments string
	if len(q.Adjustments) > 0 {
		raw, err := json.Marshal(q.Adjustments)
		if err != nil {
			return quoteItem{}, err
		}
		adjustments = string(raw)
	}

	return quoteItem{
		ID:              q.ID,
		CustomerID:      q.CustomerID,
		ImageRefs:       q.ImageRefs,
		ServiceType:     string(q.ServiceType),
		Confidence:      string(q.Confidence),
		Analysis:        string(analysis),
		BaseEstimate:    q.BaseEstimate,
		CeilingPrice:    q.CeilingPrice,
		Adjustments:     adjustments,
		Status:          string(q.Status),
		EngagementID:    q.EngagementID,
		ArrivalPhotoRef: q.ArrivalPhotoRef,
		CreatedAt:       q.CreatedAt.UTC().Format(time.RFC3339Nano),
		UpdatedAt:       q.UpdatedAt.UTC().Format(time.RFC3339Nano),
	}, nil
}

func fromQuoteItem(it quoteItem) (entities.Quote, error) {
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	updatedAt, _ := time.Parse(time.RFC3339Nano, it.UpdatedAt)

	var blob analysisBlob
	if it.Analysis != "" {
		if err := json.Unmarshal([]byte(it.Analysis), &blob); err != nil {
			return entities.Quote{}, err
		}
	}

	var adjustments []entities.Adjustment
	if it.Adjustments != "" {
		if err := json.Unmarshal([]byte(it.Adjustments), &adjustments); err != nil {
			return entities.Quote{}, err
		}
	}

	serviceType := entities.ServiceType(blob.ServiceType)
	analysis := entities.VisionAnalysis{
		ServiceType:      serviceType,
		ScopeDescription: blob.ScopeDescription,
		EstimatedHours:   blob.EstimatedHours,
		Confidence:       entities.ParseConfidence(blob.Confidence),
		Details:          entities.DetailsFromMap(serviceType, blob.Details, blob.EstimatedHours, blob.ScopeDescription),
		DetailsMap:       blob.Details,
	}

	return entities.Quote{
		ID:              it.ID,
		CustomerID:      it.CustomerID,
		ImageRefs:       it.ImageRefs,
		ServiceType:     entities.ServiceType(it.ServiceType),
		Confidence:      entities.ConfidenceTier(it.Confidence),
		Analysis:        analysis,
		BaseEstimate:    it.BaseEstimate,
		CeilingPrice:    it.CeilingPrice,
		Adjustments:     adjustments,
		Status:          entities.QuoteStatus(it.Status),
		EngagementID:    it.EngagementID,
		ArrivalPhotoRef: it.ArrivalPhotoRef,
		CreatedAt:       createdAt,
		UpdatedAt:       updatedAt,
	}, nil
}
