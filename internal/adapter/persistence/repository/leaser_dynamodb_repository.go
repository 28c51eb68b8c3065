package repository

import (
	"context"
	"strconv"
	"time"

	"leasing_offers/internal/domain/entities"
	"leasing_offers/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/shopspring/decimal"
)

const defaultLeasersTableName = "leasers"

type bracketItem struct {
	Min string `dynamodbav:"min"`
	Max string `dynamodbav:"max"`
	// months -> coefficient
	Coefficients map[string]string `dynamodbav:"coefficients"`
}

type leaserItem struct {
	ID              string        `dynamodbav:"id"`
	DefaultDuration int           `dynamodbav:"default_duration"`
	Brackets        []bracketItem `dynamodbav:"brackets"`
	UpdatedAt       string        `dynamodbav:"updated_at"`
}

// LeaserDynamoRepository stores one coefficient table per leaser.
//
// Table requirements:
//   - PK: id (string), the leaser id
type LeaserDynamoRepository struct {
	ddb       DynamoAPI
	tableName string
}

var _ interfaces.ILeaserRepository = (*LeaserDynamoRepository)(nil)

func NewLeaserDynamoRepository(ddb DynamoAPI, tableName string) *LeaserDynamoRepository {
	return &LeaserDynamoRepository{
		ddb:       ddb,
		tableName: tableOrDefault(tableName, defaultLeasersTableName),
	}
}

func (r *LeaserDynamoRepository) GetCoefficientTable(ctx context.Context, leaserID string) (entities.CoefficientTable, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key:       idKey(leaserID),
	})
	if err != nil {
		return entities.CoefficientTable{}, err
	}
	if len(out.Item) == 0 {
		return entities.CoefficientTable{}, nil
	}

	var it leaserItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.CoefficientTable{}, err
	}
	return fromLeaserItem(it), nil
}

// PutCoefficientTable replaces the leaser's table.
func (r *LeaserDynamoRepository) PutCoefficientTable(ctx context.Context, t entities.CoefficientTable) (entities.CoefficientTable, error) {
	av, err := attributevalue.MarshalMap(toLeaserItem(t, time.Now()))
	if err != nil {
		return entities.CoefficientTable{}, err
	}
	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      av,
	})
	if err != nil {
		return entities.CoefficientTable{}, err
	}
	return t, nil
}

func toLeaserItem(t entities.CoefficientTable, now time.Time) leaserItem {
	it := leaserItem{
		ID:              t.LeaserID,
		DefaultDuration: t.DefaultDuration,
		Brackets:        make([]bracketItem, 0, len(t.Brackets)),
		UpdatedAt:       formatTime(now),
	}
	for _, b := range t.Brackets {
		coefs := make(map[string]string, len(b.Coefficients))
		for months, c := range b.Coefficients {
			coefs[strconv.Itoa(months)] = decimalToString(c)
		}
		it.Brackets = append(it.Brackets, bracketItem{
			Min:          decimalToString(b.Min),
			Max:          decimalToString(b.Max),
			Coefficients: coefs,
		})
	}
	return it
}

func fromLeaserItem(it leaserItem) entities.CoefficientTable {
	t := entities.CoefficientTable{
		LeaserID:        it.ID,
		DefaultDuration: it.DefaultDuration,
		Brackets:        make([]entities.CoefficientBracket, 0, len(it.Brackets)),
	}
	for _, b := range it.Brackets {
		coefs := make(map[int]decimal.Decimal, len(b.Coefficients))
		for k, v := range b.Coefficients {
			months, err := strconv.Atoi(k)
			if err != nil {
				continue
			}
			coefs[months] = parseDecimal(v)
		}
		t.Brackets = append(t.Brackets, entities.CoefficientBracket{
			Min:          parseDecimal(b.Min),
			Max:          parseDecimal(b.Max),
			Coefficients: coefs,
		})
	}
	return t
}
