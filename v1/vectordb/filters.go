package vectordb

import "time"

// FieldType tells adapters where a filtered field lives.
type FieldType int

const (
	// InternalField is a system-managed field stored at the top of the payload.
	InternalField FieldType = iota
	// UserField is a user-defined field stored under the "custom" object of the payload.
	UserField
)

// FilterCondition is implemented by every condition type. Adapters switch on
// the concrete type to render their native filter syntax.
type FilterCondition interface {
	IsFilterCondition()
}

// FilterSet combines conditions: Must (AND), Should (OR) and MustNot (NOT).
// The three clauses are ANDed together.
type FilterSet struct {
	Must    *ConditionSet `json:"must,omitempty"`
	Should  *ConditionSet `json:"should,omitempty"`
	MustNot *ConditionSet `json:"mustNot,omitempty"`
}

// ConditionSet is the list of conditions of one clause.
type ConditionSet struct {
	Conditions []FilterCondition `json:"conditions,omitempty"`
}

// MatchCondition: field == value. Value is a string, bool or number.
type MatchCondition struct {
	Field     string
	Value     any
	FieldType FieldType
}

func (c *MatchCondition) IsFilterCondition() {}

// MatchAnyCondition: field in [values].
type MatchAnyCondition struct {
	Field     string
	Values    []any
	FieldType FieldType
}

func (c *MatchAnyCondition) IsFilterCondition() {}

// MatchExceptCondition: field not in [values].
type MatchExceptCondition struct {
	Field     string
	Values    []any
	FieldType FieldType
}

func (c *MatchExceptCondition) IsFilterCondition() {}

// NumericRange bounds; nil bounds are open.
type NumericRange struct {
	Gt  *float64
	Gte *float64
	Lt  *float64
	Lte *float64
}

// TimeRange bounds; nil bounds are open.
type TimeRange struct {
	Gt  *time.Time
	Gte *time.Time
	Lt  *time.Time
	Lte *time.Time
}

// NumericRangeCondition filters a numeric field by range.
type NumericRangeCondition struct {
	Field     string
	Range     NumericRange
	FieldType FieldType
}

func (c *NumericRangeCondition) IsFilterCondition() {}

// TimeRangeCondition filters a timestamp field by range. Adapters compare
// against Unix seconds, so timestamps must be stored that way.
type TimeRangeCondition struct {
	Field     string
	Range     TimeRange
	FieldType FieldType
}

func (c *TimeRangeCondition) IsFilterCondition() {}

// IsNullCondition matches entries whose field is null.
type IsNullCondition struct {
	Field     string
	FieldType FieldType
}

func (c *IsNullCondition) IsFilterCondition() {}

// IsEmptyCondition matches entries whose field is null or the empty string.
type IsEmptyCondition struct {
	Field     string
	FieldType FieldType
}

func (c *IsEmptyCondition) IsFilterCondition() {}
