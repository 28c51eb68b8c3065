package repository

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/shopspring/decimal"
)

// DynamoAPI is the subset of *dynamodb.Client used by the repositories.
type DynamoAPI interface {
	GetItem(ctx context.Context, params *dynamodb.GetItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error)
	PutItem(ctx context.Context, params *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error)
	UpdateItem(ctx context.Context, params *dynamodb.UpdateItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.UpdateItemOutput, error)
	DeleteItem(ctx context.Context, params *dynamodb.DeleteItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.DeleteItemOutput, error)
	Query(ctx context.Context, params *dynamodb.QueryInput, optFns ...func(*dynamodb.Options)) (*dynamodb.QueryOutput, error)
	TransactWriteItems(ctx context.Context, params *dynamodb.TransactWriteItemsInput, optFns ...func(*dynamodb.Options)) (*dynamodb.TransactWriteItemsOutput, error)
}

var _ DynamoAPI = (*dynamodb.Client)(nil)

// sortableTime is fixed-width so that sort keys compare like timestamps.
const sortableTime = "2006-01-02T15:04:05.000000000Z07:00"

func tableOrDefault(name, def string) string {
	if v := strings.TrimSpace(name); v != "" {
		return v
	}
	return def
}

func idKey(id string) map[string]types.AttributeValue {
	return map[string]types.AttributeValue{
		"id": &types.AttributeValueMemberS{Value: id},
	}
}

func decimalToString(d decimal.Decimal) string {
	return d.String()
}

// parseDecimal is lenient: stored figures that cannot be parsed read as zero.
func parseDecimal(s string) decimal.Decimal {
	d, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		return decimal.Zero
	}
	return d
}

func formatTime(t time.Time) string {
	return t.UTC().Format(time.RFC3339Nano)
}

func parseTime(s string) time.Time {
	t, _ := time.Parse(time.RFC3339Nano, s)
	return t
}

// updateBuilder assembles SET/REMOVE update expressions with placeholder names
// derived from attribute names.
type updateBuilder struct {
	sets    []string
	removes []string
	names   map[string]string
	values  map[string]types.AttributeValue
}

func newUpdateBuilder() *updateBuilder {
	return &updateBuilder{
		names:  map[string]string{},
		values: map[string]types.AttributeValue{},
	}
}

func (b *updateBuilder) name(attr string) string {
	b.names["#"+attr] = attr
	return "#" + attr
}

func (b *updateBuilder) value(key string, v types.AttributeValue) string {
	b.values[":"+key] = v
	return ":" + key
}

func (b *updateBuilder) set(attr string, v types.AttributeValue) {
	b.sets = append(b.sets, fmt.Sprintf("%s = %s", b.name(attr), b.value(attr, v)))
}

func (b *updateBuilder) setString(attr, v string) {
	b.set(attr, &types.AttributeValueMemberS{Value: v})
}

func (b *updateBuilder) setExpr(expr string) {
	b.sets = append(b.sets, expr)
}

func (b *updateBuilder) remove(attr string) {
	b.removes = append(b.removes, b.name(attr))
}

func (b *updateBuilder) expression() string {
	var parts []string
	if len(b.sets) > 0 {
		parts = append(parts, "SET "+strings.Join(b.sets, ", "))
	}
	if len(b.removes) > 0 {
		parts = append(parts, "REMOVE "+strings.Join(b.removes, ", "))
	}
	return strings.Join(parts, " ")
}
