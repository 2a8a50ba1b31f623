package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/exp/slices"
)

// FieldType is the declared type of a fact field. It drives which operators
// a condition on that field may use.
type FieldType string

const (
	FieldTypeNumber  FieldType = "number"
	FieldTypeSelect  FieldType = "select"
	FieldTypeBoolean FieldType = "boolean"
	FieldTypeText    FieldType = "text"
)

// Operator is a condition comparison operator.
type Operator string

const (
	OperatorEq          Operator = "=="
	OperatorNeq         Operator = "!="
	OperatorGt          Operator = ">"
	OperatorLt          Operator = "<"
	OperatorGte         Operator = ">="
	OperatorLte         Operator = "<="
	OperatorContient    Operator = "contient"
	OperatorCommencePar Operator = "commence_par"
)

// AllowedOperators lists the operators permitted per field type, in order.
// The first entry is the downgrade target when a stored operator is no longer
// valid for the field's current type.
var AllowedOperators = map[FieldType][]Operator{
	FieldTypeNumber:  {OperatorEq, OperatorNeq, OperatorGt, OperatorLt, OperatorGte, OperatorLte},
	FieldTypeSelect:  {OperatorEq, OperatorNeq},
	FieldTypeBoolean: {OperatorEq, OperatorNeq},
	FieldTypeText:    {OperatorEq, OperatorNeq, OperatorContient, OperatorCommencePar},
}

// FieldTypeTable declares the fact field types per operation type, so the
// matcher resolves dynamic values against a static table.
type FieldTypeTable map[OperationType]map[string]FieldType

func defaultFieldTypes() map[string]FieldType {
	return map[string]FieldType{
		FactMontant:               FieldTypeNumber,
		FactObjet:                 FieldTypeText,
		FactSourceFinancement:     FieldTypeSelect,
		FactFournisseurEnregistre: FieldTypeBoolean,
		FactExercice:              FieldTypeNumber,
	}
}

// DefaultFieldTypeTable covers the six commitment operations. Payment
// additionally declares its payment mode.
func DefaultFieldTypeTable() FieldTypeTable {
	table := FieldTypeTable{}
	for _, op := range AllOperationTypes {
		table[op] = defaultFieldTypes()
	}
	table[OperationPayment][FactModePaiement] = FieldTypeSelect

	return table
}

// FieldTypeFor resolves a field's declared type, defaulting to text.
func (t FieldTypeTable) FieldTypeFor(op OperationType, champ string) FieldType {
	if fields, ok := t[op]; ok {
		if ft, ok := fields[champ]; ok {
			return ft
		}
	}
	return FieldTypeText
}

// Condition is one predicate of an accounting rule. A rule matches when all
// its conditions evaluate true against the document's facts.
type Condition struct {
	Champ     string         `json:"champ" validate:"required"`
	Operateur Operator       `json:"operateur" validate:"required"`
	Valeur    ConditionValue `json:"valeur"`
}

// Evaluate applies the condition to the fact set. When the stored operator is
// not allowed for the field's current type the first allowed operator is used
// instead of failing; downgraded reports that this leniency was applied.
func (c Condition) Evaluate(facts Facts, fieldType FieldType) (matched bool, downgraded bool) {
	fact, ok := facts[c.Champ]
	if !ok {
		return false, false
	}

	op := c.Operateur
	allowed := AllowedOperators[fieldType]
	if !slices.Contains(allowed, op) {
		op = allowed[0]
		downgraded = true
	}

	switch fieldType {
	case FieldTypeNumber:
		factNum, okFact := fact.AsNumber()
		condNum, okCond := c.Valeur.AsNumber()
		if !okFact || !okCond {
			return false, downgraded
		}
		return evaluateNumber(op, factNum, condNum), downgraded
	case FieldTypeSelect, FieldTypeBoolean:
		if op == OperatorNeq {
			return fact.AsText() != c.Valeur.AsText(), downgraded
		}
		return fact.AsText() == c.Valeur.AsText(), downgraded
	default:
		return evaluateText(op, fact.AsText(), c.Valeur.AsText()), downgraded
	}
}

func evaluateNumber(op Operator, fact, cond decimal.Decimal) bool {
	switch op {
	case OperatorEq:
		return fact.Equal(cond)
	case OperatorNeq:
		return !fact.Equal(cond)
	case OperatorGt:
		return fact.GreaterThan(cond)
	case OperatorLt:
		return fact.LessThan(cond)
	case OperatorGte:
		return fact.GreaterThanOrEqual(cond)
	case OperatorLte:
		return fact.LessThanOrEqual(cond)
	default:
		return false
	}
}

func evaluateText(op Operator, fact, cond string) bool {
	switch op {
	case OperatorEq:
		return fact == cond
	case OperatorNeq:
		return fact != cond
	case OperatorContient:
		return strings.Contains(fact, cond)
	case OperatorCommencePar:
		return strings.HasPrefix(fact, cond)
	default:
		return false
	}
}

// Conditions is stored as a JSONB column.
type Conditions []Condition

func (cs *Conditions) Scan(src interface{}) error {
	var raw []byte
	switch src := src.(type) {
	case string:
		raw = []byte(src)
	case []byte:
		raw = src
	case nil:
		*cs = nil
		return nil
	default:
		return fmt.Errorf("type %T not supported by Scan", src)
	}

	return json.Unmarshal(raw, cs)
}

func (cs Conditions) Value() (driver.Value, error) {
	if cs == nil {
		return json.Marshal(Conditions{})
	}
	return json.Marshal(cs)
}

// AccountingRule declares, for one operation type, which accounts to debit
// and credit when its conditions all hold. Rules are evaluated in ascending
// Ordre; the first match wins. A rule with zero conditions matches
// unconditionally and acts as the catch-all.
type AccountingRule struct {
	ID            string         `json:"id"`
	TypeOperation OperationType  `json:"typeOperation"`
	Libelle       string         `json:"libelle"`
	Conditions    Conditions     `json:"conditions"`
	CompteDebit   string         `json:"compteDebitId"`
	CompteCredit  string         `json:"compteCreditId"`
	Actif         bool           `json:"actif"`
	Ordre         int            `json:"ordre"`

	// Validity window: Permanente, or [DateDebut, DateFin].
	Permanente bool       `json:"permanente"`
	DateDebut  *time.Time `json:"dateDebut,omitempty"`
	DateFin    *time.Time `json:"dateFin,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// IsValidAt reports whether the rule applies on the given date.
func (r AccountingRule) IsValidAt(asOf time.Time) bool {
	if r.Permanente {
		return true
	}

	if r.DateDebut != nil && asOf.Before(*r.DateDebut) {
		return false
	}

	if r.DateFin != nil && asOf.After(*r.DateFin) {
		return false
	}

	return r.DateDebut != nil || r.DateFin != nil
}

// MatchesFacts evaluates every condition against the facts; all must hold.
// downgradedChamps collects the fields whose stored operator had to be
// downgraded, so callers can surface the configuration smell.
func (r AccountingRule) MatchesFacts(facts Facts, fieldTypes FieldTypeTable) (matched bool, downgradedChamps []string) {
	for _, cond := range r.Conditions {
		ok, downgraded := cond.Evaluate(facts, fieldTypes.FieldTypeFor(r.TypeOperation, cond.Champ))
		if downgraded {
			downgradedChamps = append(downgradedChamps, cond.Champ)
		}
		if !ok {
			return false, downgradedChamps
		}
	}

	return true, downgradedChamps
}

type CreateAccountingRuleIn struct {
	TypeOperation OperationType
	Libelle       string
	Conditions    Conditions
	CompteDebit   string
	CompteCredit  string
	Ordre         int
	Permanente    bool
	DateDebut     *time.Time
	DateFin       *time.Time
}

type RuleFilterOptions struct {
	TypeOperation OperationType
	ActiveOnly    bool
	Limit         int
}
