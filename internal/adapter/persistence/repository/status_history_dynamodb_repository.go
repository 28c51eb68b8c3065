package repository

import (
	"context"
	"time"

	"leasing_offers/internal/domain/entities"
	"leasing_offers/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/google/uuid"
)

type historyItem struct {
	OfferID    string `dynamodbav:"offer_id"`
	SK         string `dynamodbav:"sk"`
	ID         string `dynamodbav:"id"`
	From       string `dynamodbav:"from_status"`
	To         string `dynamodbav:"to_status"`
	Reason     string `dynamodbav:"reason,omitempty"`
	AcceptedAt string `dynamodbav:"accepted_at"`
}

// StatusHistoryDynamoRepository reads and appends the status history log.
//
// Table requirements:
//   - PK: offer_id (string)
//   - SK: sk (string), "<accepted_at>#<id>"
type StatusHistoryDynamoRepository struct {
	ddb       DynamoAPI
	tableName string
}

var _ interfaces.IStatusHistoryRepository = (*StatusHistoryDynamoRepository)(nil)

func NewStatusHistoryDynamoRepository(ddb DynamoAPI, tableName string) *StatusHistoryDynamoRepository {
	return &StatusHistoryDynamoRepository{
		ddb:       ddb,
		tableName: tableOrDefault(tableName, defaultStatusHistoryTableName),
	}
}

func (r *StatusHistoryDynamoRepository) Append(ctx context.Context, e entities.StatusHistoryEntry) (entities.StatusHistoryEntry, error) {
	if e.ID == "" {
		e.ID = uuid.NewString()
	}
	if e.AcceptedAt.IsZero() {
		e.AcceptedAt = time.Now().UTC()
	}

	av, err := attributevalue.MarshalMap(toHistoryItem(e))
	if err != nil {
		return entities.StatusHistoryEntry{}, err
	}
	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#sk)"),
		ExpressionAttributeNames: map[string]string{
			"#sk": "sk",
		},
	})
	if err != nil {
		return entities.StatusHistoryEntry{}, err
	}
	return e, nil
}

// ListByOfferID returns the entries oldest first.
func (r *StatusHistoryDynamoRepository) ListByOfferID(ctx context.Context, offerID string) ([]entities.StatusHistoryEntry, error) {
	p := dynamodb.NewQueryPaginator(r.ddb, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		KeyConditionExpression: aws.String("#offer_id = :offer_id"),
		ExpressionAttributeNames: map[string]string{
			"#offer_id": "offer_id",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":offer_id": &types.AttributeValueMemberS{Value: offerID},
		},
		ScanIndexForward: aws.Bool(true),
		ConsistentRead:   aws.Bool(true),
	})

	entries := make([]entities.StatusHistoryEntry, 0)
	for p.HasMorePages() {
		page, err := p.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		var items []historyItem
		if err := attributevalue.UnmarshalListOfMaps(page.Items, &items); err != nil {
			return nil, err
		}
		for _, it := range items {
			entries = append(entries, fromHistoryItem(it))
		}
	}
	return entries, nil
}

func toHistoryItem(e entities.StatusHistoryEntry) historyItem {
	accepted := e.AcceptedAt.UTC()
	return historyItem{
		OfferID:    e.OfferID,
		SK:         accepted.Format(sortableTime) + "#" + e.ID,
		ID:         e.ID,
		From:       string(e.From),
		To:         string(e.To),
		Reason:     e.Reason,
		AcceptedAt: formatTime(accepted),
	}
}

func fromHistoryItem(it historyItem) entities.StatusHistoryEntry {
	return entities.StatusHistoryEntry{
		ID:         it.ID,
		OfferID:    it.OfferID,
		From:       entities.WorkflowStatus(it.From),
		To:         entities.WorkflowStatus(it.To),
		Reason:     it.Reason,
		AcceptedAt: parseTime(it.AcceptedAt),
	}
}
