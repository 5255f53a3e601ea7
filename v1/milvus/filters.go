package milvus

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"
	"time"

	"github.com/Aleph-Alpha/milvus/v1/vectordb"
)

// FieldResolver maps a filter field to the expression that addresses it.
type FieldResolver func(field string, fieldType vectordb.FieldType) string

// DefaultFieldResolver addresses internal fields by name and user fields
// under the "custom" JSON field: custom["field"].
func DefaultFieldResolver(field string, fieldType vectordb.FieldType) string {
	if fieldType == vectordb.UserField {
		return "custom[" + strconv.Quote(field) + "]"
	}
	return field
}

// JSONFieldResolver addresses every field inside the JSON field column:
// column["field"] for internal fields and column["custom"]["field"] for user fields.
func JSONFieldResolver(column string) FieldResolver {
	return func(field string, fieldType vectordb.FieldType) string {
		if fieldType == vectordb.UserField {
			return column + `["custom"][` + strconv.Quote(field) + "]"
		}
		return column + "[" + strconv.Quote(field) + "]"
	}
}

// RenderFilter renders a FilterSet as a Milvus boolean expression.
//
//	must:     a and b
//	should:   (a or b)
//	must not: not (a or b)
//
// The three clauses are joined with "and". A nil or empty set renders as "".
// A nil resolver uses DefaultFieldResolver.
func RenderFilter(fs *vectordb.FilterSet, resolve FieldResolver) (string, error) {
	if fs == nil {
		return "", nil
	}
	if resolve == nil {
		resolve = DefaultFieldResolver
	}

	var clauses []string

	if fs.Must != nil {
		parts, err := renderConditions(fs.Must.Conditions, resolve)
		if err != nil {
			return "", err
		}
		clauses = append(clauses, parts...)
	}

	if fs.Should != nil {
		parts, err := renderConditions(fs.Should.Conditions, resolve)
		if err != nil {
			return "", err
		}
		if len(parts) > 0 {
			clauses = append(clauses, "("+strings.Join(parts, " or ")+")")
		}
	}

	if fs.MustNot != nil {
		parts, err := renderConditions(fs.MustNot.Conditions, resolve)
		if err != nil {
			return "", err
		}
		if len(parts) > 0 {
			clauses = append(clauses, "not ("+strings.Join(parts, " or ")+")")
		}
	}

	return strings.Join(clauses, " and "), nil
}

func renderConditions(conds []vectordb.FilterCondition, resolve FieldResolver) ([]string, error) {
	parts := make([]string, 0, len(conds))
	for _, cond := range conds {
		expr, err := renderCondition(cond, resolve)
		if err != nil {
			return nil, err
		}
		if expr != "" {
			parts = append(parts, expr)
		}
	}
	return parts, nil
}

func renderCondition(cond vectordb.FilterCondition, resolve FieldResolver) (string, error) {
	if isNilCondition(cond) {
		return "", fmt.Errorf("milvus: nil filter condition")
	}

	switch c := cond.(type) {
	case *vectordb.MatchCondition:
		v, err := literal(c.Value)
		if err != nil {
			return "", fmt.Errorf("milvus: filter on %q: %w", c.Field, err)
		}
		return resolve(c.Field, c.FieldType) + " == " + v, nil

	case *vectordb.MatchAnyCondition:
		list, err := literalList(c.Values)
		if err != nil {
			return "", fmt.Errorf("milvus: filter on %q: %w", c.Field, err)
		}
		return resolve(c.Field, c.FieldType) + " in " + list, nil

	case *vectordb.MatchExceptCondition:
		list, err := literalList(c.Values)
		if err != nil {
			return "", fmt.Errorf("milvus: filter on %q: %w", c.Field, err)
		}
		return resolve(c.Field, c.FieldType) + " not in " + list, nil

	case *vectordb.NumericRangeCondition:
		return renderRange(resolve(c.Field, c.FieldType), []bound{
			{">", c.Range.Gt}, {">=", c.Range.Gte}, {"<", c.Range.Lt}, {"<=", c.Range.Lte},
		}), nil

	case *vectordb.TimeRangeCondition:
		return renderRange(resolve(c.Field, c.FieldType), []bound{
			{">", unixSeconds(c.Range.Gt)}, {">=", unixSeconds(c.Range.Gte)},
			{"<", unixSeconds(c.Range.Lt)}, {"<=", unixSeconds(c.Range.Lte)},
		}), nil

	case *vectordb.IsNullCondition:
		return resolve(c.Field, c.FieldType) + " is null", nil

	case *vectordb.IsEmptyCondition:
		f := resolve(c.Field, c.FieldType)
		return "(" + f + ` is null or ` + f + ` == "")`, nil

	}
	return "", fmt.Errorf("milvus: unsupported filter condition %T", cond)
}

// isNilCondition also catches typed nil pointers such as (*vectordb.MatchCondition)(nil).
func isNilCondition(cond vectordb.FilterCondition) bool {
	if cond == nil {
		return true
	}
	v := reflect.ValueOf(cond)
	return v.Kind() == reflect.Pointer && v.IsNil()
}

type bound struct {
	op    string
	value *float64
}

func renderRange(field string, bounds []bound) string {
	var parts []string
	for _, b := range bounds {
		if b.value != nil {
			parts = append(parts, field+" "+b.op+" "+strconv.FormatFloat(*b.value, 'f', -1, 64))
		}
	}
	switch len(parts) {
	case 0:
		return ""
	case 1:
		return parts[0]
	}
	return "(" + strings.Join(parts, " and ") + ")"
}

func unixSeconds(t *time.Time) *float64 {
	if t == nil {
		return nil
	}
	s := float64(t.Unix())
	return &s
}

func literal(v any) (string, error) {
	switch x := v.(type) {
	case string:
		return strconv.Quote(x), nil
	case bool:
		return strconv.FormatBool(x), nil
	case int:
		return strconv.Itoa(x), nil
	case int32:
		return strconv.FormatInt(int64(x), 10), nil
	case int64:
		return strconv.FormatInt(x, 10), nil
	case float32:
		return strconv.FormatFloat(float64(x), 'f', -1, 32), nil
	case float64:
		return strconv.FormatFloat(x, 'f', -1, 64), nil
	}
	return "", fmt.Errorf("unsupported value type %T", v)
}

func literalList(values []any) (string, error) {
	items := make([]string, 0, len(values))
	for _, v := range values {
		s, err := literal(v)
		if err != nil {
			return "", err
		}
		items = append(items, s)
	}
	return "[" + strings.Join(items, ", ") + "]", nil
}
