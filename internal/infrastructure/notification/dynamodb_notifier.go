package notification

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/google/uuid"

	"snapbook/internal/usecase/interfaces"
)

// DynamoDBNotifier writes outbound notification events to a DynamoDB table
// that the (external) delivery workers drain. Publishing only persists the
// event; delivery is somebody else's problem.
type DynamoDBNotifier struct {
	client    *dynamodb.Client
	tableName string
}

var _ interfaces.INotifier = (*DynamoDBNotifier)(nil)

func NewDynamoDBNotifier(client *dynamodb.Client) *DynamoDBNotifier {
	table := os.Getenv("NOTIFICATIONS_TABLE")
	if table == "" {
		table = "notifications"
	}
	return &DynamoDBNotifier{client: client, tableName: table}
}

type notificationItem struct {
	ID          string            `dynamodbav:"id"`
	Type        string            `dynamodbav:"type"`
	RecipientID string            `dynamodbav:"recipient_id"`
	Title       string            `dynamodbav:"title"`
	Body        string            `dynamodbav:"body"`
	Data        map[string]string `dynamodbav:"data,omitempty"`
	CreatedAt   string            `dynamodbav:"created_at"`
}

func (n *DynamoDBNotifier) Publish(ctx context.Context, event interfaces.NotificationEvent) error {
	item := notificationItem{
		ID:          uuid.NewString(),
		Type:        event.Type,
		RecipientID: event.RecipientID,
		Title:       event.Title,
		Body:        event.Body,
		Data:        event.Data,
		CreatedAt:   time.Now().UTC().Format(time.RFC3339Nano),
	}

	av, err := attributevalue.MarshalMap(item)
	if err != nil {
		return err
	}

	_, err = n.client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(n.tableName),
		Item:      av,
	})
	if err != nil {
		return err
	}

	log.Printf("[notification][infra] published type=%s recipient=%s", event.Type, event.RecipientID)
	return nil
}
