package repository

import (
	"context"
	"errors"
	"time"

	"leasing_offers/internal/domain/entities"
	"leasing_offers/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultCommissionsTableName = "commissions"
	commissionsOfferIDIndex     = "offer_id-index"
)

type commissionItem struct {
	ID           string `dynamodbav:"id"`
	OfferID      string `dynamodbav:"offer_id"`
	AmbassadorID string `dynamodbav:"ambassador_id"`
	LevelID      string `dynamodbav:"level_id"`
	Base         string `dynamodbav:"base"`
	Rate         string `dynamodbav:"rate"`
	Amount       string `dynamodbav:"amount"`
	Status       string `dynamodbav:"status"`
	CreatedAt    string `dynamodbav:"created_at"`
	SettledAt    string `dynamodbav:"settled_at,omitempty"`
}

// CommissionDynamoRepository persists CommissionRecord entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: offer_id-index with PK offer_id (string)
type CommissionDynamoRepository struct {
	ddb       DynamoAPI
	tableName string
}

var _ interfaces.ICommissionRepository = (*CommissionDynamoRepository)(nil)

func NewCommissionDynamoRepository(ddb DynamoAPI, tableName string) *CommissionDynamoRepository {
	return &CommissionDynamoRepository{
		ddb:       ddb,
		tableName: tableOrDefault(tableName, defaultCommissionsTableName),
	}
}

func (r *CommissionDynamoRepository) Create(ctx context.Context, c entities.CommissionRecord) (entities.CommissionRecord, error) {
	av, err := attributevalue.MarshalMap(toCommissionItem(c))
	if err != nil {
		return entities.CommissionRecord{}, err
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
		var ccf *types.ConditionalCheckFailedException
		if errors.As(err, &ccf) {
			return entities.CommissionRecord{}, interfaces.ErrCommissionExists
		}
		return entities.CommissionRecord{}, err
	}
	return c, nil
}

func (r *CommissionDynamoRepository) GetByID(ctx context.Context, id string) (entities.CommissionRecord, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName:      aws.String(r.tableName),
		Key:            idKey(id),
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.CommissionRecord{}, err
	}
	if len(out.Item) == 0 {
		return entities.CommissionRecord{}, nil
	}

	var it commissionItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.CommissionRecord{}, err
	}
	return fromCommissionItem(it), nil
}

func (r *CommissionDynamoRepository) ListByOfferID(ctx context.Context, offerID string) ([]entities.CommissionRecord, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(commissionsOfferIDIndex),
		KeyConditionExpression: aws.String("#offer_id = :offer_id"),
		ExpressionAttributeNames: map[string]string{
			"#offer_id": "offer_id",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":offer_id": &types.AttributeValueMemberS{Value: offerID},
		},
	})
	if err != nil {
		return nil, err
	}

	var items []commissionItem
	if err := attributevalue.UnmarshalListOfMaps(out.Items, &items); err != nil {
		return nil, err
	}
	records := make([]entities.CommissionRecord, 0, len(items))
	for _, it := range items {
		records = append(records, fromCommissionItem(it))
	}
	return records, nil
}

func (r *CommissionDynamoRepository) MarkPaid(ctx context.Context, id string, settledAt time.Time) (entities.CommissionRecord, error) {
	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName:           aws.String(r.tableName),
		Key:                 idKey(id),
		UpdateExpression:    aws.String("SET #status = :paid, #settled_at = :settled_at"),
		ConditionExpression: aws.String("attribute_exists(#id) AND #status = :pending"),
		ExpressionAttributeNames: map[string]string{
			"#id":         "id",
			"#status":     "status",
			"#settled_at": "settled_at",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":paid":       &types.AttributeValueMemberS{Value: string(entities.CommissionStatusPaid)},
			":pending":    &types.AttributeValueMemberS{Value: string(entities.CommissionStatusPending)},
			":settled_at": &types.AttributeValueMemberS{Value: formatTime(settledAt)},
		},
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		var ccf *types.ConditionalCheckFailedException
		if errors.As(err, &ccf) {
			return entities.CommissionRecord{}, nil
		}
		return entities.CommissionRecord{}, err
	}

	var it commissionItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.CommissionRecord{}, err
	}
	return fromCommissionItem(it), nil
}

func toCommissionItem(c entities.CommissionRecord) commissionItem {
	it := commissionItem{
		ID:           c.ID,
		OfferID:      c.OfferID,
		AmbassadorID: c.AmbassadorID,
		LevelID:      c.LevelID,
		Base:         decimalToString(c.Base),
		Rate:         decimalToString(c.Rate),
		Amount:       decimalToString(c.Amount),
		Status:       string(c.Status),
		CreatedAt:    formatTime(c.CreatedAt),
	}
	if c.SettledAt != nil {
		it.SettledAt = formatTime(*c.SettledAt)
	}
	return it
}

func fromCommissionItem(it commissionItem) entities.CommissionRecord {
	c := entities.CommissionRecord{
		ID:           it.ID,
		OfferID:      it.OfferID,
		AmbassadorID: it.AmbassadorID,
		LevelID:      it.LevelID,
		Base:         parseDecimal(it.Base),
		Rate:         parseDecimal(it.Rate),
		Amount:       parseDecimal(it.Amount),
		Status:       entities.CommissionStatus(it.Status),
		CreatedAt:    parseTime(it.CreatedAt),
	}
	if it.SettledAt != "" {
		t := parseTime(it.SettledAt)
		c.SettledAt = &t
	}
	return c
}
