package milvus

import "reflect"

// Payload is the JSON object sent to the server. It is built fresh for each
// call and not touched again once handed to the transport.
type Payload map[string]any

// builder assembles a Payload for one operation. The first missing required
// argument is kept and reported by build; later calls are no-ops.
type builder struct {
	op      operation
	payload Payload
	err     error
}

func newBuilder(op operation) *builder {
	return &builder{op: op, payload: Payload{}}
}

// required emits value under p's wire key or records a MissingArgumentError.
func (b *builder) required(p param, value any) *builder {
	if b.err != nil {
		return b
	}
	v, ok := presentValue(value)
	if !ok {
		b.err = &MissingArgumentError{Operation: b.op.path(), Argument: p.name}
		return b
	}
	b.payload[p.wire] = v
	return b
}

// optional emits value only if it is present.
func (b *builder) optional(p param, value any) *builder {
	if b.err != nil {
		return b
	}
	if v, ok := presentValue(value); ok {
		b.payload[p.wire] = v
	}
	return b
}

// supplied is required for values the server accepts empty. Only nil
// (including typed nil maps, slices and pointers) is missing.
func (b *builder) supplied(p param, value any) *builder {
	if b.err != nil {
		return b
	}
	if isNil(value) {
		b.err = &MissingArgumentError{Operation: b.op.path(), Argument: p.name}
		return b
	}
	b.payload[p.wire] = value
	return b
}

// nested emits the payload of child under p's wire key. Errors of the child
// are propagated.
func (b *builder) nested(p param, child *builder) *builder {
	if b.err != nil {
		return b
	}
	if child.err != nil {
		b.err = child.err
		return b
	}
	b.payload[p.wire] = child.payload
	return b
}

// nestedList emits the payloads of children as a list. An empty list counts
// as a missing argument.
func (b *builder) nestedList(p param, children []*builder) *builder {
	if b.err != nil {
		return b
	}
	if len(children) == 0 {
		b.err = &MissingArgumentError{Operation: b.op.path(), Argument: p.name}
		return b
	}
	items := make([]Payload, 0, len(children))
	for _, child := range children {
		if child.err != nil {
			b.err = child.err
			return b
		}
		items = append(items, child.payload)
	}
	b.payload[p.wire] = items
	return b
}

func (b *builder) build() (Payload, error) {
	if b.err != nil {
		return nil, b.err
	}
	return b.payload, nil
}

// present reports whether v carries something to send. nil, the empty
// string, nil pointers and empty slices, arrays and maps are absent.
// Non-nil pointers are judged by what they point to, so a pointer to 0 or
// false is present. Plain booleans and numbers are always present.
func present(v any) bool {
	_, ok := presentValue(v)
	return ok
}

// presentValue applies present and returns the value to emit, with
// pointers dereferenced.
func presentValue(v any) (any, bool) {
	if v == nil {
		return nil, false
	}
	rv := reflect.ValueOf(v)
	for rv.Kind() == reflect.Pointer || rv.Kind() == reflect.Interface {
		if rv.IsNil() {
			return nil, false
		}
		rv = rv.Elem()
	}
	switch rv.Kind() {
	case reflect.String, reflect.Slice, reflect.Map, reflect.Array:
		if rv.Len() == 0 {
			return nil, false
		}
	case reflect.Invalid:
		return nil, false
	}
	return rv.Interface(), true
}

// Ptr returns a pointer to v. Handy for optional numeric arguments:
//
//	milvus.QueryRequest{Limit: milvus.Ptr(10), Offset: milvus.Ptr(0)}
func Ptr[T any](v T) *T {
	return &v
}

func isNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Map, reflect.Slice, reflect.Pointer, reflect.Interface:
		return rv.IsNil()
	}
	return false
}
