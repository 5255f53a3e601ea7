package vectordb

import "fmt"

// NewFilterSet builds a FilterSet from clause options.
//
//	vectordb.NewFilterSet(
//	    vectordb.Must(vectordb.NewMatch("status", "published")),
//	    vectordb.Should(vectordb.NewUserMatch("tag", "ml"), vectordb.NewUserMatch("tag", "ai")),
//	)
func NewFilterSet(clauses ...func(*FilterSet)) *FilterSet {
	fs := &FilterSet{}
	for _, clause := range clauses {
		clause(fs)
	}
	return fs
}

// Must sets the AND clause.
func Must(conditions ...FilterCondition) func(*FilterSet) {
	return func(fs *FilterSet) { fs.Must = &ConditionSet{Conditions: conditions} }
}

// Should sets the OR clause.
func Should(conditions ...FilterCondition) func(*FilterSet) {
	return func(fs *FilterSet) { fs.Should = &ConditionSet{Conditions: conditions} }
}

// MustNot sets the NOT clause.
func MustNot(conditions ...FilterCondition) func(*FilterSet) {
	return func(fs *FilterSet) { fs.MustNot = &ConditionSet{Conditions: conditions} }
}

// NewMatch matches field == value on a top-level field.
func NewMatch(field string, value any) *MatchCondition {
	return &MatchCondition{Field: field, Value: value, FieldType: InternalField}
}

// NewUserMatch is NewMatch on a user-defined field.
func NewUserMatch(field string, value any) *MatchCondition {
	return &MatchCondition{Field: field, Value: value, FieldType: UserField}
}

// NewMatchAny panics if values mix strings, numbers and booleans.
func NewMatchAny(field string, values ...any) *MatchAnyCondition {
	validateHomogeneousTypes(values)
	return &MatchAnyCondition{Field: field, Values: values, FieldType: InternalField}
}

// NewUserMatchAny is NewMatchAny on a user-defined field.
func NewUserMatchAny(field string, values ...any) *MatchAnyCondition {
	validateHomogeneousTypes(values)
	return &MatchAnyCondition{Field: field, Values: values, FieldType: UserField}
}

// NewMatchExcept matches fields whose value is none of values.
func NewMatchExcept(field string, values ...any) *MatchExceptCondition {
	validateHomogeneousTypes(values)
	return &MatchExceptCondition{Field: field, Values: values, FieldType: InternalField}
}

// NewUserMatchExcept is NewMatchExcept on a user-defined field.
func NewUserMatchExcept(field string, values ...any) *MatchExceptCondition {
	validateHomogeneousTypes(values)
	return &MatchExceptCondition{Field: field, Values: values, FieldType: UserField}
}

// NewNumericRange matches fields within the bounds set in r.
func NewNumericRange(field string, r NumericRange) *NumericRangeCondition {
	return &NumericRangeCondition{Field: field, Range: r, FieldType: InternalField}
}

// NewUserNumericRange is NewNumericRange on a user-defined field.
func NewUserNumericRange(field string, r NumericRange) *NumericRangeCondition {
	return &NumericRangeCondition{Field: field, Range: r, FieldType: UserField}
}

// NewTimeRange matches timestamps within the bounds set in r.
func NewTimeRange(field string, r TimeRange) *TimeRangeCondition {
	return &TimeRangeCondition{Field: field, Range: r, FieldType: InternalField}
}

// NewUserTimeRange is NewTimeRange on a user-defined field.
func NewUserTimeRange(field string, r TimeRange) *TimeRangeCondition {
	return &TimeRangeCondition{Field: field, Range: r, FieldType: UserField}
}

// NewIsNull matches entries where field is null.
func NewIsNull(field string) *IsNullCondition {
	return &IsNullCondition{Field: field, FieldType: InternalField}
}

// NewUserIsNull is NewIsNull on a user-defined field.
func NewUserIsNull(field string) *IsNullCondition {
	return &IsNullCondition{Field: field, FieldType: UserField}
}

// NewIsEmpty matches entries where field is null or empty.
func NewIsEmpty(field string) *IsEmptyCondition {
	return &IsEmptyCondition{Field: field, FieldType: InternalField}
}

// NewUserIsEmpty is NewIsEmpty on a user-defined field.
func NewUserIsEmpty(field string) *IsEmptyCondition {
	return &IsEmptyCondition{Field: field, FieldType: UserField}
}

// validateHomogeneousTypes panics on mixed value kinds; mixing them is a
// programming error at the call site.
func validateHomogeneousTypes(values []any) {
	if len(values) <= 1 {
		return
	}

	expected := kindOf(values[0])
	if expected == "" {
		panic(fmt.Sprintf("vectordb: unsupported value type: %T", values[0]))
	}
	for i, v := range values[1:] {
		actual := kindOf(v)
		if actual == "" {
			panic(fmt.Sprintf("vectordb: unsupported value type at index %d: %T", i+1, v))
		}
		if actual != expected {
			panic(fmt.Sprintf("vectordb: mixed types not allowed: expected %s but got %s at index %d", expected, actual, i+1))
		}
	}
}

func kindOf(value any) string {
	switch value.(type) {
	case string:
		return "string"
	case int, int32, int64, float32, float64:
		return "numeric"
	case bool:
		return "boolean"
	}
	return ""
}
