package repository

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"leasing_offers/internal/domain/entities"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// equipmentItem is the current storage shape of an equipment line.
type equipmentItem struct {
	ID             string `dynamodbav:"id"`
	Title          string `dynamodbav:"title"`
	PurchasePrice  string `dynamodbav:"purchase_price"`
	Quantity       int    `dynamodbav:"quantity"`
	Margin         string `dynamodbav:"margin"`
	MonthlyPayment string `dynamodbav:"monthly_payment"`
	PricingMode    string `dynamodbav:"pricing_mode"`

	MarginAdjustment string `dynamodbav:"margin_adjustment,omitempty"`
}

func encodeEquipment(lines []entities.EquipmentLine) (types.AttributeValue, error) {
	items := make([]equipmentItem, 0, len(lines))
	for _, l := range lines {
		it := equipmentItem{
			ID:             l.ID,
			Title:          l.Title,
			PurchasePrice:  decimalToString(l.PurchasePrice),
			Quantity:       l.Quantity,
			Margin:         decimalToString(l.Margin),
			MonthlyPayment: decimalToString(l.MonthlyPayment),
			PricingMode:    string(l.PricingMode),
		}
		if !l.MarginAdjustment.IsZero() {
			it.MarginAdjustment = decimalToString(l.MarginAdjustment)
		}
		items = append(items, it)
	}
	return attributevalue.Marshal(items)
}

// decodeEquipment normalises every shape the equipment attribute has been
// stored in:
//
//   - a list of maps, current or legacy (camelCase keys, numbers as N, boolean
//     override flag)
//   - a JSON document stored as a string
//   - a plain-text list such as "Laptop (2x)\nScreen"
//
// Lines without an id get one, so they can be addressed after the next write.
func decodeEquipment(av types.AttributeValue) ([]entities.EquipmentLine, error) {
	switch v := av.(type) {
	case nil, *types.AttributeValueMemberNULL:
		return nil, nil
	case *types.AttributeValueMemberL:
		lines := make([]entities.EquipmentLine, 0, len(v.Value))
		for i, el := range v.Value {
			m, ok := el.(*types.AttributeValueMemberM)
			if !ok {
				return nil, fmt.Errorf("equipment[%d]: expected a map", i)
			}
			raw := map[string]any{}
			err := attributevalue.UnmarshalMapWithOptions(m.Value, &raw, func(o *attributevalue.DecoderOptions) {
				o.UseNumber = true
			})
			if err != nil {
				return nil, fmt.Errorf("equipment[%d]: %w", i, err)
			}
			lines = append(lines, lineFromMap(raw))
		}
		return lines, nil
	case *types.AttributeValueMemberS:
		return decodeEquipmentText(v.Value)
	default:
		return nil, fmt.Errorf("equipment: unsupported attribute type %T", av)
	}
}

func decodeEquipmentText(s string) ([]entities.EquipmentLine, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	if strings.HasPrefix(s, "[") || strings.HasPrefix(s, "{") {
		dec := json.NewDecoder(strings.NewReader(s))
		dec.UseNumber()
		var raw []map[string]any
		if strings.HasPrefix(s, "{") {
			var one map[string]any
			if err := dec.Decode(&one); err != nil {
				return nil, fmt.Errorf("equipment json: %w", err)
			}
			raw = append(raw, one)
		} else if err := dec.Decode(&raw); err != nil {
			return nil, fmt.Errorf("equipment json: %w", err)
		}
		lines := make([]entities.EquipmentLine, 0, len(raw))
		for _, m := range raw {
			lines = append(lines, lineFromMap(m))
		}
		return lines, nil
	}
	return parseEquipmentList(s), nil
}

var quantitySuffix = regexp.MustCompile(`^(.*?)\s*\((\d+)\s*[xX]\)$`)

// parseEquipmentList reads "Title (2x)" entries separated by new lines, or by
// commas when the text is a single line.
func parseEquipmentList(s string) []entities.EquipmentLine {
	parts := strings.Split(s, "\n")
	if len(parts) == 1 {
		parts = strings.Split(s, ",")
	}
	lines := make([]entities.EquipmentLine, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		title, qty := p, 1
		if m := quantitySuffix.FindStringSubmatch(p); m != nil {
			title = strings.TrimSpace(m[1])
			if n, err := strconv.Atoi(m[2]); err == nil && n > 0 {
				qty = n
			}
		}
		lines = append(lines, entities.EquipmentLine{
			ID:          uuid.NewString(),
			Title:       title,
			Quantity:    qty,
			PricingMode: entities.PricingModeMargin,
		})
	}
	return lines
}

func lineFromMap(m map[string]any) entities.EquipmentLine {
	line := entities.EquipmentLine{
		ID:             anyString(m, "id"),
		Title:          anyString(m, "title", "name", "designation"),
		PurchasePrice:  anyDecimal(m, "purchase_price", "purchasePrice", "price"),
		Quantity:       anyInt(m, "quantity", "qty"),
		Margin:         anyDecimal(m, "margin"),
		MonthlyPayment: anyDecimal(m, "monthly_payment", "monthlyPayment"),
		PricingMode:    entities.PricingMode(anyString(m, "pricing_mode")),
	}
	if line.ID == "" {
		line.ID = uuid.NewString()
	}
	if line.Quantity < 1 {
		line.Quantity = 1
	}
	if !line.PricingMode.Valid() {
		line.PricingMode = entities.PricingModeMargin
		if anyBool(m, "monthly_payment_override", "monthlyPaymentOverride", "is_target_monthly", "isTargetMonthly") {
			line.PricingMode = entities.PricingModeTargetMonthly
		}
	}
	if line.PricingMode == entities.PricingModeTargetMonthly {
		line.MarginAdjustment = anyDecimal(m, "margin_adjustment")
	}
	return line
}

func lookup(m map[string]any, keys ...string) (any, bool) {
	for _, k := range keys {
		if v, ok := m[k]; ok && v != nil {
			return v, true
		}
	}
	return nil, false
}

func anyString(m map[string]any, keys ...string) string {
	v, ok := lookup(m, keys...)
	if !ok {
		return ""
	}
	switch t := v.(type) {
	case string:
		return strings.TrimSpace(t)
	case fmt.Stringer:
		return t.String()
	default:
		return fmt.Sprint(t)
	}
}

func anyDecimal(m map[string]any, keys ...string) decimal.Decimal {
	v, ok := lookup(m, keys...)
	if !ok {
		return decimal.Zero
	}
	switch t := v.(type) {
	case string:
		return parseDecimal(t)
	case json.Number:
		return parseDecimal(t.String())
	case attributevalue.Number:
		return parseDecimal(string(t))
	case float64:
		return decimal.NewFromFloat(t)
	case int:
		return decimal.NewFromInt(int64(t))
	}
	return decimal.Zero
}

func anyInt(m map[string]any, keys ...string) int {
	d := anyDecimal(m, keys...)
	return int(d.IntPart())
}

func anyBool(m map[string]any, keys ...string) bool {
	v, ok := lookup(m, keys...)
	if !ok {
		return false
	}
	switch t := v.(type) {
	case bool:
		return t
	case string:
		b, _ := strconv.ParseBool(t)
		return b
	}
	return false
}
