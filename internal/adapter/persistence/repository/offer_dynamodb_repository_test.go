package repository

import (
	"context"
	"errors"
	"strings"
	"testing"

	"leasing_offers/internal/domain/entities"
	"leasing_offers/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func storedOffer(id string, status entities.WorkflowStatus) map[string]types.AttributeValue {
	return map[string]types.AttributeValue{
		"id":                    &types.AttributeValueMemberS{Value: id},
		"client_id":             &types.AttributeValueMemberS{Value: "c1"},
		"leaser_id":             &types.AttributeValueMemberS{Value: "grenke"},
		"workflow_status":       &types.AttributeValueMemberS{Value: string(status)},
		"coefficient":           &types.AttributeValueMemberS{Value: "3.27"},
		"total_monthly_payment": &types.AttributeValueMemberS{Value: "89.24"},
		"internal_score":        &types.AttributeValueMemberS{Value: "A"},
		"equipment":             &types.AttributeValueMemberS{Value: "Laptop (2x)"},
		"created_at":            &types.AttributeValueMemberS{Value: "2026-01-02T10:00:00Z"},
	}
}

func TestOfferRepository_GetByID_NormalisesLegacyItem(t *testing.T) {
	f := &fakeDynamo{getItem: func(in *dynamodb.GetItemInput) (*dynamodb.GetItemOutput, error) {
		assert.True(t, aws.ToBool(in.ConsistentRead))
		return &dynamodb.GetItemOutput{Item: storedOffer("o1", entities.StatusSent)}, nil
	}}
	repo := NewOfferDynamoRepository(f, "", "")

	o, err := repo.GetByID(context.Background(), "o1")
	require.NoError(t, err)
	assert.Equal(t, "o1", o.ID)
	assert.Equal(t, entities.StatusSent, o.WorkflowStatus)
	assert.True(t, o.Coefficient.Equal(decimal.RequireFromString("3.27")))
	require.NotNil(t, o.InternalScore)
	assert.Equal(t, entities.ScoreA, *o.InternalScore)
	assert.Nil(t, o.LeaserScore)
	require.Len(t, o.Equipment, 1)
	assert.Equal(t, 2, o.Equipment[0].Quantity)
}

func TestOfferRepository_GetByID_NotFound(t *testing.T) {
	f := &fakeDynamo{getItem: func(*dynamodb.GetItemInput) (*dynamodb.GetItemOutput, error) {
		return &dynamodb.GetItemOutput{}, nil
	}}

	o, err := NewOfferDynamoRepository(f, "", "").GetByID(context.Background(), "missing")
	require.NoError(t, err)
	assert.Empty(t, o.ID)
}

func TestOfferRepository_Update_ClearsScoreAndReturnsNewState(t *testing.T) {
	f := &fakeDynamo{updateItem: func(in *dynamodb.UpdateItemInput) (*dynamodb.UpdateItemOutput, error) {
		return &dynamodb.UpdateItemOutput{Attributes: storedOffer("o1", entities.StatusDraft)}, nil
	}}
	repo := NewOfferDynamoRepository(f, "", "")

	coef := decimal.RequireFromString("3.1")
	_, err := repo.Update(context.Background(), "o1", entities.OfferPatch{
		Coefficient:   &coef,
		InternalScore: entities.ScorePatch{Set: true},
	})
	require.NoError(t, err)
	require.Len(t, f.updates, 1)

	in := f.updates[0]
	expr := aws.ToString(in.UpdateExpression)
	assert.Contains(t, expr, "#coefficient = :coefficient")
	assert.Contains(t, expr, "#updated_at = :updated_at")
	assert.Contains(t, expr, "REMOVE #internal_score")
	assert.NotContains(t, expr, "leaser_score")
	assert.Equal(t, "attribute_exists(#id)", aws.ToString(in.ConditionExpression))
	assert.Equal(t, types.ReturnValueAllNew, in.ReturnValues)
}

func TestOfferRepository_Update_MissingOfferIsZeroValue(t *testing.T) {
	f := &fakeDynamo{updateItem: func(*dynamodb.UpdateItemInput) (*dynamodb.UpdateItemOutput, error) {
		return nil, &types.ConditionalCheckFailedException{}
	}}

	o, err := NewOfferDynamoRepository(f, "", "").Update(context.Background(), "o1", entities.OfferPatch{})
	require.NoError(t, err)
	assert.Empty(t, o.ID)
}

func TestOfferRepository_Update_EquipmentRequiresEditableStatus(t *testing.T) {
	f := &fakeDynamo{updateItem: func(*dynamodb.UpdateItemInput) (*dynamodb.UpdateItemOutput, error) {
		return &dynamodb.UpdateItemOutput{Attributes: storedOffer("o1", entities.StatusDraft)}, nil
	}}
	repo := NewOfferDynamoRepository(f, "", "")

	lines := []entities.EquipmentLine{{ID: "l1", Title: "Laptop", Quantity: 1, PricingMode: entities.PricingModeMargin}}
	_, err := repo.Update(context.Background(), "o1", entities.OfferPatch{Equipment: &lines, Totals: &entities.Totals{}})
	require.NoError(t, err)
	require.Len(t, f.updates, 1)

	in := f.updates[0]
	cond := aws.ToString(in.ConditionExpression)
	assert.True(t, strings.HasPrefix(cond, "attribute_exists(#id) AND (#workflow_status IN (:editable_0, "), cond)
	assert.Equal(t, "workflow_status", in.ExpressionAttributeNames["#workflow_status"])
	assert.Equal(t, &types.AttributeValueMemberS{Value: "draft"}, in.ExpressionAttributeValues[":editable_0"])
	assert.Contains(t, in.ExpressionAttributeValues, ":editable_7")
	assert.NotContains(t, in.ExpressionAttributeValues, ":editable_8")
	assert.Equal(t, types.ReturnValuesOnConditionCheckFailureAllOld, in.ReturnValuesOnConditionCheckFailure)
}

func TestOfferRepository_Update_FrozenOfferIsNotEditable(t *testing.T) {
	f := &fakeDynamo{updateItem: func(*dynamodb.UpdateItemInput) (*dynamodb.UpdateItemOutput, error) {
		return nil, &types.ConditionalCheckFailedException{Item: storedOffer("o1", entities.StatusLeaserApproved)}
	}}

	lines := []entities.EquipmentLine{}
	_, err := NewOfferDynamoRepository(f, "", "").Update(context.Background(), "o1", entities.OfferPatch{Equipment: &lines})
	assert.ErrorIs(t, err, interfaces.ErrOfferNotEditable)
}

func TestOfferRepository_InsertEquipmentLines_FrozenOfferIsNotEditable(t *testing.T) {
	f := &fakeDynamo{
		updateItem: func(*dynamodb.UpdateItemInput) (*dynamodb.UpdateItemOutput, error) {
			return nil, &types.ConditionalCheckFailedException{Item: storedOffer("o1", entities.StatusLeaserApproved)}
		},
		getItem: func(*dynamodb.GetItemInput) (*dynamodb.GetItemOutput, error) {
			return &dynamodb.GetItemOutput{Item: storedOffer("o1", entities.StatusLeaserApproved)}, nil
		},
	}

	_, err := NewOfferDynamoRepository(f, "", "").InsertEquipmentLines(context.Background(), "o1",
		[]entities.EquipmentLine{{ID: "n1", Title: "Dock", Quantity: 1, PricingMode: entities.PricingModeMargin}},
		entities.Totals{})
	assert.ErrorIs(t, err, interfaces.ErrOfferNotEditable)
	assert.Len(t, f.updates, 1)
}

func TestOfferRepository_InsertEquipmentLines_AppendsToList(t *testing.T) {
	f := &fakeDynamo{updateItem: func(*dynamodb.UpdateItemInput) (*dynamodb.UpdateItemOutput, error) {
		return &dynamodb.UpdateItemOutput{Attributes: storedOffer("o1", entities.StatusDraft)}, nil
	}}
	repo := NewOfferDynamoRepository(f, "", "")

	_, err := repo.InsertEquipmentLines(context.Background(), "o1",
		[]entities.EquipmentLine{{ID: "n1", Title: "Dock", Quantity: 1, PricingMode: entities.PricingModeMargin}},
		entities.Totals{TotalMonthlyPayment: decimal.RequireFromString("10")})
	require.NoError(t, err)
	require.Len(t, f.updates, 1)

	in := f.updates[0]
	assert.Contains(t, aws.ToString(in.UpdateExpression), "list_append(if_not_exists(#equipment, :empty), :lines)")
	assert.Contains(t, aws.ToString(in.UpdateExpression), "#total_monthly_payment = :total_monthly_payment")
	assert.Contains(t, aws.ToString(in.ConditionExpression), "attribute_type(#equipment, :list_type)")
	assert.Contains(t, aws.ToString(in.ConditionExpression), "#workflow_status IN (")
}

func TestOfferRepository_InsertEquipmentLines_RewritesLegacyShape(t *testing.T) {
	calls := 0
	f := &fakeDynamo{
		updateItem: func(*dynamodb.UpdateItemInput) (*dynamodb.UpdateItemOutput, error) {
			calls++
			if calls == 1 {
				return nil, &types.ConditionalCheckFailedException{}
			}
			return &dynamodb.UpdateItemOutput{Attributes: storedOffer("o1", entities.StatusDraft)}, nil
		},
		getItem: func(*dynamodb.GetItemInput) (*dynamodb.GetItemOutput, error) {
			return &dynamodb.GetItemOutput{Item: storedOffer("o1", entities.StatusDraft)}, nil
		},
	}
	repo := NewOfferDynamoRepository(f, "", "")

	o, err := repo.InsertEquipmentLines(context.Background(), "o1",
		[]entities.EquipmentLine{{ID: "n1", Title: "Dock", Quantity: 1, PricingMode: entities.PricingModeMargin}},
		entities.Totals{})
	require.NoError(t, err)
	assert.Equal(t, "o1", o.ID)
	require.Len(t, f.updates, 2)

	rewrite := f.updates[1]
	assert.Contains(t, aws.ToString(rewrite.UpdateExpression), "#equipment = :equipment")
	list, ok := rewrite.ExpressionAttributeValues[":equipment"].(*types.AttributeValueMemberL)
	require.True(t, ok)
	assert.Len(t, list.Value, 2)
}

func TestOfferRepository_TransitionStatus_Success(t *testing.T) {
	f := &fakeDynamo{getItem: func(*dynamodb.GetItemInput) (*dynamodb.GetItemOutput, error) {
		return &dynamodb.GetItemOutput{Item: storedOffer("o1", entities.StatusInternalApproved)}, nil
	}}
	repo := NewOfferDynamoRepository(f, "", "")

	score := entities.ScoreA
	o, entry, err := repo.TransitionStatus(context.Background(), entities.StatusTransition{
		OfferID: "o1",
		From:    entities.StatusSent,
		To:      entities.StatusInternalApproved,
		Reason:  "looks good",
		Patch:   entities.OfferPatch{InternalScore: entities.ScorePatch{Set: true, Value: &score}},
	})
	require.NoError(t, err)
	assert.Equal(t, entities.StatusInternalApproved, o.WorkflowStatus)
	assert.Equal(t, entities.StatusSent, entry.From)
	assert.Equal(t, entities.StatusInternalApproved, entry.To)
	assert.NotEmpty(t, entry.ID)
	assert.False(t, entry.AcceptedAt.IsZero())

	require.Len(t, f.transacts, 1)
	items := f.transacts[0].TransactItems
	require.Len(t, items, 2)

	upd := items[0].Update
	require.NotNil(t, upd)
	assert.Contains(t, aws.ToString(upd.ConditionExpression), "#workflow_status = :expected_status")
	assert.Equal(t, &types.AttributeValueMemberS{Value: "sent"}, upd.ExpressionAttributeValues[":expected_status"])
	assert.Equal(t, &types.AttributeValueMemberS{Value: "internal_approved"}, upd.ExpressionAttributeValues[":workflow_status"])
	assert.Equal(t, &types.AttributeValueMemberS{Value: "A"}, upd.ExpressionAttributeValues[":internal_score"])
	assert.Equal(t, types.ReturnValuesOnConditionCheckFailureAllOld, upd.ReturnValuesOnConditionCheckFailure)

	put := items[1].Put
	require.NotNil(t, put)
	assert.Equal(t, &types.AttributeValueMemberS{Value: "o1"}, put.Item["offer_id"])
	sk := put.Item["sk"].(*types.AttributeValueMemberS).Value
	assert.True(t, strings.HasSuffix(sk, "#"+entry.ID))
}

func TestOfferRepository_TransitionStatus_StaleStatusIsConflict(t *testing.T) {
	f := &fakeDynamo{transact: func(*dynamodb.TransactWriteItemsInput) (*dynamodb.TransactWriteItemsOutput, error) {
		return nil, &types.TransactionCanceledException{CancellationReasons: []types.CancellationReason{
			{Code: aws.String("ConditionalCheckFailed"), Item: storedOffer("o1", entities.StatusInternalReview)},
			{Code: aws.String("None")},
		}}
	}}

	_, _, err := NewOfferDynamoRepository(f, "", "").TransitionStatus(context.Background(), entities.StatusTransition{
		OfferID: "o1", From: entities.StatusSent, To: entities.StatusInternalReview,
	})
	assert.ErrorIs(t, err, interfaces.ErrStatusConflict)
}

func TestOfferRepository_TransitionStatus_MissingOfferIsZeroValue(t *testing.T) {
	f := &fakeDynamo{transact: func(*dynamodb.TransactWriteItemsInput) (*dynamodb.TransactWriteItemsOutput, error) {
		return nil, &types.TransactionCanceledException{CancellationReasons: []types.CancellationReason{
			{Code: aws.String("ConditionalCheckFailed")},
			{Code: aws.String("None")},
		}}
	}}

	o, entry, err := NewOfferDynamoRepository(f, "", "").TransitionStatus(context.Background(), entities.StatusTransition{
		OfferID: "missing", From: entities.StatusDraft, To: entities.StatusSent,
	})
	require.NoError(t, err)
	assert.Empty(t, o.ID)
	assert.Empty(t, entry.ID)
}

func TestOfferRepository_TransitionStatus_OtherErrorsPropagate(t *testing.T) {
	boom := errors.New("throttled")
	f := &fakeDynamo{transact: func(*dynamodb.TransactWriteItemsInput) (*dynamodb.TransactWriteItemsOutput, error) {
		return nil, boom
	}}

	_, _, err := NewOfferDynamoRepository(f, "", "").TransitionStatus(context.Background(), entities.StatusTransition{
		OfferID: "o1", From: entities.StatusDraft, To: entities.StatusSent,
	})
	assert.ErrorIs(t, err, boom)
}

func TestOfferRepository_Delete(t *testing.T) {
	f := &fakeDynamo{deleteItem: func(in *dynamodb.DeleteItemInput) (*dynamodb.DeleteItemOutput, error) {
		if in.Key["id"].(*types.AttributeValueMemberS).Value == "o1" {
			return &dynamodb.DeleteItemOutput{Attributes: storedOffer("o1", entities.StatusDraft)}, nil
		}
		return &dynamodb.DeleteItemOutput{}, nil
	}}
	repo := NewOfferDynamoRepository(f, "", "")

	existed, err := repo.Delete(context.Background(), "o1")
	require.NoError(t, err)
	assert.True(t, existed)

	existed, err = repo.Delete(context.Background(), "o2")
	require.NoError(t, err)
	assert.False(t, existed)
}
