package repository

import (
	"context"

	"leasing_offers/internal/domain/entities"
	"leasing_offers/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
)

const defaultAmbassadorsTableName = "ambassadors"

type commissionRateItem struct {
	Min  string `dynamodbav:"min"`
	Max  string `dynamodbav:"max"`
	Rate string `dynamodbav:"rate"`
}

type commissionLevelItem struct {
	ID    string               `dynamodbav:"id"`
	Name  string               `dynamodbav:"name"`
	Rates []commissionRateItem `dynamodbav:"rates"`
}

type ambassadorItem struct {
	ID              string               `dynamodbav:"id"`
	Name            string               `dynamodbav:"name"`
	CommissionLevel *commissionLevelItem `dynamodbav:"commission_level"`
}

// AmbassadorDynamoRepository reads ambassadors and their embedded commission level.
//
// Table requirements:
//   - PK: id (string)
type AmbassadorDynamoRepository struct {
	ddb       DynamoAPI
	tableName string
}

var _ interfaces.IAmbassadorRepository = (*AmbassadorDynamoRepository)(nil)

func NewAmbassadorDynamoRepository(ddb DynamoAPI, tableName string) *AmbassadorDynamoRepository {
	return &AmbassadorDynamoRepository{
		ddb:       ddb,
		tableName: tableOrDefault(tableName, defaultAmbassadorsTableName),
	}
}

func (r *AmbassadorDynamoRepository) GetCommissionLevel(ctx context.Context, ambassadorID string) (entities.CommissionLevel, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key:       idKey(ambassadorID),
	})
	if err != nil {
		return entities.CommissionLevel{}, err
	}
	if len(out.Item) == 0 {
		return entities.CommissionLevel{}, nil
	}

	var it ambassadorItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.CommissionLevel{}, err
	}
	if it.CommissionLevel == nil {
		return entities.CommissionLevel{}, nil
	}

	level := entities.CommissionLevel{
		ID:    it.CommissionLevel.ID,
		Name:  it.CommissionLevel.Name,
		Rates: make([]entities.CommissionRate, 0, len(it.CommissionLevel.Rates)),
	}
	for _, rate := range it.CommissionLevel.Rates {
		level.Rates = append(level.Rates, entities.CommissionRate{
			Min:  parseDecimal(rate.Min),
			Max:  parseDecimal(rate.Max),
			Rate: parseDecimal(rate.Rate),
		})
	}
	return level, nil
}
