package models

import (
	"encoding/json"
	"fmt"

	"github.com/shopspring/decimal"
)

// ValueKind tags the runtime type of a condition value or fact.
type ValueKind int

const (
	ValueKindNumber ValueKind = iota
	ValueKindText
	ValueKindBool
)

// ConditionValue is the tagged variant holding a rule condition's comparison
// value or a document fact. Source values are JSON-ish (number, string or
// boolean); resolving them into a closed variant keeps the matcher from
// inspecting runtime types ad hoc.
type ConditionValue struct {
	kind   ValueKind
	number decimal.Decimal
	text   string
	boolv  bool
}

func NumberValue(d decimal.Decimal) ConditionValue {
	return ConditionValue{kind: ValueKindNumber, number: d}
}

func TextValue(s string) ConditionValue {
	return ConditionValue{kind: ValueKindText, text: s}
}

func BoolValue(b bool) ConditionValue {
	return ConditionValue{kind: ValueKindBool, boolv: b}
}

func (v ConditionValue) Kind() ValueKind {
	return v.kind
}

func (v ConditionValue) Number() decimal.Decimal {
	return v.number
}

func (v ConditionValue) Text() string {
	return v.text
}

func (v ConditionValue) Bool() bool {
	return v.boolv
}

// AsText renders the value for equality comparison against text facts.
func (v ConditionValue) AsText() string {
	switch v.kind {
	case ValueKindNumber:
		return v.number.String()
	case ValueKindBool:
		return fmt.Sprintf("%t", v.boolv)
	default:
		return v.text
	}
}

// AsNumber coerces the value to a decimal when possible.
func (v ConditionValue) AsNumber() (decimal.Decimal, bool) {
	switch v.kind {
	case ValueKindNumber:
		return v.number, true
	case ValueKindText:
		d, err := decimal.NewFromString(v.text)
		if err != nil {
			return decimal.Zero, false
		}
		return d, true
	default:
		return decimal.Zero, false
	}
}

func (v ConditionValue) MarshalJSON() ([]byte, error) {
	switch v.kind {
	case ValueKindNumber:
		return []byte(v.number.String()), nil
	case ValueKindBool:
		return json.Marshal(v.boolv)
	default:
		return json.Marshal(v.text)
	}
}

func (v *ConditionValue) UnmarshalJSON(data []byte) error {
	var raw any
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	switch val := raw.(type) {
	case bool:
		*v = BoolValue(val)
	case string:
		*v = TextValue(val)
	case float64:
		// go through the string form to keep the source precision
		d, err := decimal.NewFromString(string(json.RawMessage(data)))
		if err != nil {
			d = decimal.NewFromFloat(val)
		}
		*v = NumberValue(d)
	case nil:
		*v = TextValue("")
	default:
		return fmt.Errorf("type %T not supported as condition value", raw)
	}

	return nil
}

// Facts is the fact set a document exposes to the rule matcher.
type Facts map[string]ConditionValue

// Well-known fact fields shared by the commitment documents.
const (
	FactMontant               = "montant"
	FactObjet                 = "objet"
	FactSourceFinancement     = "sourceFinancement"
	FactFournisseurEnregistre = "fournisseurEnregistre"
	FactModePaiement          = "modePaiement"
	FactExercice              = "exercice"
)
