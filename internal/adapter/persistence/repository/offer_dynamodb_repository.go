package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"leasing_offers/internal/domain/entities"
	"leasing_offers/internal/domain/workflow"
	"leasing_offers/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/google/uuid"
)

// errConditionNotMet means the item exists but the write condition failed.
var errConditionNotMet = errors.New("condition not met")

const (
	defaultOffersTableName        = "offers"
	defaultStatusHistoryTableName = "offer_status_history"
)

type offerItem struct {
	ID           string `dynamodbav:"id"`
	ClientID     string `dynamodbav:"client_id"`
	ClientName   string `dynamodbav:"client_name"`
	ClientEmail  string `dynamodbav:"client_email"`
	LeaserID     string `dynamodbav:"leaser_id"`
	AmbassadorID string `dynamodbav:"ambassador_id,omitempty"`

	WorkflowStatus string `dynamodbav:"workflow_status"`

	Coefficient          string `dynamodbav:"coefficient"`
	ManualFinancedAmount string `dynamodbav:"manual_financed_amount"`
	FinancedAmount       string `dynamodbav:"financed_amount"`
	TotalMonthlyPayment  string `dynamodbav:"total_monthly_payment"`
	TotalPurchasePrice   string `dynamodbav:"total_purchase_price"`
	MarginPercentage     string `dynamodbav:"margin_percentage"`

	InternalScore string `dynamodbav:"internal_score,omitempty"`
	LeaserScore   string `dynamodbav:"leaser_score,omitempty"`

	CreatedAt string `dynamodbav:"created_at"`
	UpdatedAt string `dynamodbav:"updated_at"`
}

// OfferDynamoRepository persists Offer aggregates in DynamoDB.
//
// Table requirements:
//   - offers: PK id (string)
//   - offer_status_history: PK offer_id (string), SK sk (string)
//
// The equipment attribute is decoded separately because older items carry it
// in several shapes; every write stores the current list-of-maps shape.
type OfferDynamoRepository struct {
	ddb          DynamoAPI
	tableName    string
	historyTable string
}

var _ interfaces.IOfferRepository = (*OfferDynamoRepository)(nil)

func NewOfferDynamoRepository(ddb DynamoAPI, tableName, historyTable string) *OfferDynamoRepository {
	return &OfferDynamoRepository{
		ddb:          ddb,
		tableName:    tableOrDefault(tableName, defaultOffersTableName),
		historyTable: tableOrDefault(historyTable, defaultStatusHistoryTableName),
	}
}

func (r *OfferDynamoRepository) Create(ctx context.Context, o entities.Offer) (entities.Offer, error) {
	av, err := marshalOffer(o)
	if err != nil {
		return entities.Offer{}, err
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
		return entities.Offer{}, err
	}
	return o, nil
}

func (r *OfferDynamoRepository) GetByID(ctx context.Context, id string) (entities.Offer, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName:      aws.String(r.tableName),
		Key:            idKey(id),
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Offer{}, err
	}
	if len(out.Item) == 0 {
		return entities.Offer{}, nil
	}
	return unmarshalOffer(out.Item)
}

// Update applies patch. A patch that touches the equipment only applies while
// the stored status is editable.
func (r *OfferDynamoRepository) Update(ctx context.Context, id string, patch entities.OfferPatch) (entities.Offer, error) {
	b := newUpdateBuilder()
	if err := applyOfferPatch(b, patch); err != nil {
		return entities.Offer{}, err
	}
	cond := ""
	if patch.Equipment != nil {
		cond = editableCondition(b)
	}
	o, err := r.update(ctx, id, b, cond)
	if errors.Is(err, errConditionNotMet) {
		return entities.Offer{}, interfaces.ErrOfferNotEditable
	}
	return o, err
}

// InsertEquipmentLines appends to the stored list without rewriting it. Items
// still holding a legacy equipment shape cannot be appended to, so they are
// rewritten once in full.
func (r *OfferDynamoRepository) InsertEquipmentLines(ctx context.Context, offerID string, lines []entities.EquipmentLine, totals entities.Totals) (entities.Offer, error) {
	encoded, err := encodeEquipment(lines)
	if err != nil {
		return entities.Offer{}, err
	}

	b := newUpdateBuilder()
	eq := b.name("equipment")
	b.setExpr(fmt.Sprintf("%s = list_append(if_not_exists(%s, %s), %s)",
		eq, eq,
		b.value("empty", &types.AttributeValueMemberL{Value: []types.AttributeValue{}}),
		b.value("lines", encoded),
	))
	applyTotals(b, totals)
	cond := fmt.Sprintf("%s AND (attribute_not_exists(%s) OR attribute_type(%s, %s))",
		editableCondition(b), eq, eq, b.value("list_type", &types.AttributeValueMemberS{Value: "L"}))

	o, err := r.update(ctx, offerID, b, cond)
	if err == nil && o.ID != "" {
		return o, nil
	}
	if err != nil && !errors.Is(err, errConditionNotMet) {
		return entities.Offer{}, err
	}

	current, err := r.GetByID(ctx, offerID)
	if err != nil || current.ID == "" {
		return entities.Offer{}, err
	}
	if !workflow.IsEditableStatus(current.WorkflowStatus) {
		return entities.Offer{}, interfaces.ErrOfferNotEditable
	}
	all := append(append([]entities.EquipmentLine{}, current.Equipment...), lines...)
	return r.Update(ctx, offerID, entities.OfferPatch{Equipment: &all, Totals: &totals})
}

// TransitionStatus moves the offer only if its stored status still equals
// t.From, and appends the history entry in the same transaction.
func (r *OfferDynamoRepository) TransitionStatus(ctx context.Context, t entities.StatusTransition) (entities.Offer, entities.StatusHistoryEntry, error) {
	entry := entities.StatusHistoryEntry{
		ID:         uuid.NewString(),
		OfferID:    t.OfferID,
		From:       t.From,
		To:         t.To,
		Reason:     t.Reason,
		AcceptedAt: time.Now().UTC(),
	}

	b := newUpdateBuilder()
	b.setString("workflow_status", string(t.To))
	if err := applyOfferPatch(b, t.Patch); err != nil {
		return entities.Offer{}, entities.StatusHistoryEntry{}, err
	}
	b.setString("updated_at", formatTime(entry.AcceptedAt))
	cond := fmt.Sprintf("attribute_exists(%s) AND %s = %s",
		b.name("id"), b.name("workflow_status"),
		b.value("expected_status", &types.AttributeValueMemberS{Value: string(t.From)}))

	historyAV, err := attributevalue.MarshalMap(toHistoryItem(entry))
	if err != nil {
		return entities.Offer{}, entities.StatusHistoryEntry{}, err
	}

	_, err = r.ddb.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{
		TransactItems: []types.TransactWriteItem{
			{
				Update: &types.Update{
					TableName:                           aws.String(r.tableName),
					Key:                                 idKey(t.OfferID),
					UpdateExpression:                    aws.String(b.expression()),
					ConditionExpression:                 aws.String(cond),
					ExpressionAttributeNames:            b.names,
					ExpressionAttributeValues:           b.values,
					ReturnValuesOnConditionCheckFailure: types.ReturnValuesOnConditionCheckFailureAllOld,
				},
			},
			{
				Put: &types.Put{
					TableName:           aws.String(r.historyTable),
					Item:                historyAV,
					ConditionExpression: aws.String("attribute_not_exists(#sk)"),
					ExpressionAttributeNames: map[string]string{
						"#sk": "sk",
					},
				},
			},
		},
	})
	if err != nil {
		var tce *types.TransactionCanceledException
		if errors.As(err, &tce) && len(tce.CancellationReasons) > 0 {
			reason := tce.CancellationReasons[0]
			if aws.ToString(reason.Code) == "ConditionalCheckFailed" {
				if len(reason.Item) == 0 {
					return entities.Offer{}, entities.StatusHistoryEntry{}, nil
				}
				return entities.Offer{}, entities.StatusHistoryEntry{}, interfaces.ErrStatusConflict
			}
		}
		return entities.Offer{}, entities.StatusHistoryEntry{}, err
	}

	o, err := r.GetByID(ctx, t.OfferID)
	if err != nil {
		return entities.Offer{}, entities.StatusHistoryEntry{}, err
	}
	return o, entry, nil
}

func (r *OfferDynamoRepository) Delete(ctx context.Context, id string) (bool, error) {
	out, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName:    aws.String(r.tableName),
		Key:          idKey(id),
		ReturnValues: types.ReturnValueAllOld,
	})
	if err != nil {
		return false, err
	}
	return len(out.Attributes) > 0, nil
}

// update runs b against an existing offer. A missing offer yields a zero-value
// Offer; an existing one failing extraCond yields errConditionNotMet.
func (r *OfferDynamoRepository) update(ctx context.Context, id string, b *updateBuilder, extraCond string) (entities.Offer, error) {
	b.setString("updated_at", formatTime(time.Now()))

	cond := "attribute_exists(" + b.name("id") + ")"
	if extraCond != "" {
		cond += " AND (" + extraCond + ")"
	}

	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName:                 aws.String(r.tableName),
		Key:                       idKey(id),
		UpdateExpression:          aws.String(b.expression()),
		ConditionExpression:       aws.String(cond),
		ExpressionAttributeNames:  b.names,
		ExpressionAttributeValues: b.values,
		ReturnValues:              types.ReturnValueAllNew,

		ReturnValuesOnConditionCheckFailure: types.ReturnValuesOnConditionCheckFailureAllOld,
	})
	if err != nil {
		var ccf *types.ConditionalCheckFailedException
		if errors.As(err, &ccf) {
			if len(ccf.Item) > 0 {
				return entities.Offer{}, errConditionNotMet
			}
			return entities.Offer{}, nil
		}
		return entities.Offer{}, err
	}
	return unmarshalOffer(out.Attributes)
}

// editableCondition restricts a write to offers whose stored status still
// allows equipment changes.
func editableCondition(b *updateBuilder) string {
	statuses := workflow.EditableStatuses()
	refs := make([]string, len(statuses))
	for i, s := range statuses {
		refs[i] = b.value(fmt.Sprintf("editable_%d", i), &types.AttributeValueMemberS{Value: string(s)})
	}
	return fmt.Sprintf("%s IN (%s)", b.name("workflow_status"), strings.Join(refs, ", "))
}

func applyOfferPatch(b *updateBuilder, p entities.OfferPatch) error {
	if p.LeaserID != nil {
		b.setString("leaser_id", *p.LeaserID)
	}
	if p.Equipment != nil {
		av, err := encodeEquipment(*p.Equipment)
		if err != nil {
			return err
		}
		b.set("equipment", av)
	}
	if p.Coefficient != nil {
		b.setString("coefficient", decimalToString(*p.Coefficient))
	}
	if p.Totals != nil {
		applyTotals(b, *p.Totals)
	}
	applyScore(b, "internal_score", p.InternalScore)
	applyScore(b, "leaser_score", p.LeaserScore)
	return nil
}

func applyTotals(b *updateBuilder, t entities.Totals) {
	b.setString("total_purchase_price", decimalToString(t.TotalPurchasePrice))
	b.setString("total_monthly_payment", decimalToString(t.TotalMonthlyPayment))
	b.setString("margin_percentage", decimalToString(t.MarginPercentage))
	b.setString("financed_amount", decimalToString(t.FinancedAmount))
}

func applyScore(b *updateBuilder, attr string, p entities.ScorePatch) {
	if !p.Set {
		return
	}
	if p.Value == nil {
		b.remove(attr)
		return
	}
	b.setString(attr, string(*p.Value))
}

func marshalOffer(o entities.Offer) (map[string]types.AttributeValue, error) {
	av, err := attributevalue.MarshalMap(toOfferItem(o))
	if err != nil {
		return nil, err
	}
	eq, err := encodeEquipment(o.Equipment)
	if err != nil {
		return nil, err
	}
	av["equipment"] = eq
	return av, nil
}

func unmarshalOffer(av map[string]types.AttributeValue) (entities.Offer, error) {
	var it offerItem
	if err := attributevalue.UnmarshalMap(av, &it); err != nil {
		return entities.Offer{}, err
	}
	equipment, err := decodeEquipment(av["equipment"])
	if err != nil {
		return entities.Offer{}, fmt.Errorf("offer %s: %w", it.ID, err)
	}
	o := fromOfferItem(it)
	o.Equipment = equipment
	return o, nil
}

func toOfferItem(o entities.Offer) offerItem {
	it := offerItem{
		ID:                   o.ID,
		ClientID:             o.ClientID,
		ClientName:           o.ClientName,
		ClientEmail:          o.ClientEmail,
		LeaserID:             o.LeaserID,
		AmbassadorID:         o.AmbassadorID,
		WorkflowStatus:       string(o.WorkflowStatus),
		Coefficient:          decimalToString(o.Coefficient),
		ManualFinancedAmount: decimalToString(o.ManualFinancedAmount),
		FinancedAmount:       decimalToString(o.FinancedAmount),
		TotalMonthlyPayment:  decimalToString(o.TotalMonthlyPayment),
		TotalPurchasePrice:   decimalToString(o.TotalPurchasePrice),
		MarginPercentage:     decimalToString(o.MarginPercentage),
		CreatedAt:            formatTime(o.CreatedAt),
		UpdatedAt:            formatTime(o.UpdatedAt),
	}
	if o.InternalScore != nil {
		it.InternalScore = string(*o.InternalScore)
	}
	if o.LeaserScore != nil {
		it.LeaserScore = string(*o.LeaserScore)
	}
	return it
}

func fromOfferItem(it offerItem) entities.Offer {
	return entities.Offer{
		ID:                   it.ID,
		ClientID:             it.ClientID,
		ClientName:           it.ClientName,
		ClientEmail:          it.ClientEmail,
		LeaserID:             it.LeaserID,
		AmbassadorID:         it.AmbassadorID,
		WorkflowStatus:       entities.WorkflowStatus(it.WorkflowStatus),
		Coefficient:          parseDecimal(it.Coefficient),
		ManualFinancedAmount: parseDecimal(it.ManualFinancedAmount),
		FinancedAmount:       parseDecimal(it.FinancedAmount),
		TotalMonthlyPayment:  parseDecimal(it.TotalMonthlyPayment),
		TotalPurchasePrice:   parseDecimal(it.TotalPurchasePrice),
		MarginPercentage:     parseDecimal(it.MarginPercentage),
		InternalScore:        scoreFromItem(it.InternalScore),
		LeaserScore:          scoreFromItem(it.LeaserScore),
		CreatedAt:            parseTime(it.CreatedAt),
		UpdatedAt:            parseTime(it.UpdatedAt),
	}
}

func scoreFromItem(s string) *entities.Score {
	score := entities.Score(s)
	if !score.Valid() {
		return nil
	}
	return &score
}
