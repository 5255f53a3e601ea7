package milvus

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/tidwall/gjson"
)

// ResultKind tells the two successful response shapes apart.
type ResultKind int

const (
	// KindBody means the server returned a JSON body.
	KindBody ResultKind = iota
	// KindAcknowledged means the server returned an empty body.
	KindAcknowledged
)

func (k ResultKind) String() string {
	switch k {
	case KindBody:
		return "body"
	case KindAcknowledged:
		return "acknowledged"
	}
	return fmt.Sprintf("ResultKind(%d)", int(k))
}

// Result is the outcome of a successful operation: either the response body
// verbatim, or an acknowledgement when the server had nothing to return.
// Both mean success.
type Result struct {
	kind ResultKind
	body []byte
}

func acknowledged() *Result {
	return &Result{kind: KindAcknowledged}
}

// Kind returns the result shape.
func (r *Result) Kind() ResultKind { return r.kind }

// Acknowledged reports whether the server replied with an empty body.
func (r *Result) Acknowledged() bool { return r.kind == KindAcknowledged }

// Body returns the raw response bytes exactly as received, nil when acknowledged.
func (r *Result) Body() []byte { return r.body }

// Decode unmarshals the body into v. It does nothing for an acknowledged result.
func (r *Result) Decode(v any) error {
	if r.kind == KindAcknowledged {
		return nil
	}
	if err := json.Unmarshal(r.body, v); err != nil {
		return fmt.Errorf("%w: %v", ErrMalformedResponse, err)
	}
	return nil
}

// Map decodes the body into a generic map. Returns nil for an acknowledged
// result or a body that is not an object.
func (r *Result) Map() map[string]any {
	if r.kind == KindAcknowledged {
		return nil
	}
	var m map[string]any
	if err := json.Unmarshal(r.body, &m); err != nil {
		return nil
	}
	return m
}

// Get looks up a gjson path in the body, e.g. "data.0.id" or "data.#".
func (r *Result) Get(path string) gjson.Result {
	if r.kind == KindAcknowledged {
		return gjson.Result{}
	}
	return gjson.GetBytes(r.body, path)
}

// Data returns the "data" member of the response envelope.
func (r *Result) Data() gjson.Result {
	return r.Get("data")
}

// normalize turns a raw response into a Result or an error.
func normalize(resp *Response) (*Result, error) {
	body := bytes.TrimSpace(resp.Body)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, serverError(resp.StatusCode, resp.Body)
	}

	if len(body) == 0 {
		return acknowledged(), nil
	}

	if !gjson.ValidBytes(body) {
		return nil, fmt.Errorf("%w: %d bytes of invalid JSON", ErrMalformedResponse, len(body))
	}

	if isEmptyDocument(gjson.ParseBytes(body)) {
		return acknowledged(), nil
	}

	if code := gjson.GetBytes(body, "code"); code.Exists() && !isSuccessCode(code) {
		return nil, serverError(resp.StatusCode, resp.Body)
	}

	return &Result{kind: KindBody, body: resp.Body}, nil
}

// isEmptyDocument reports whether doc is an object or array without members,
// regardless of the whitespace inside it.
func isEmptyDocument(doc gjson.Result) bool {
	if !doc.IsObject() && !doc.IsArray() {
		return false
	}
	empty := true
	doc.ForEach(func(_, _ gjson.Result) bool {
		empty = false
		return false
	})
	return empty
}

// isSuccessCode accepts 0 and 200, the two codes Milvus uses for success.
func isSuccessCode(code gjson.Result) bool {
	if code.Type != gjson.Number {
		return false
	}
	c := code.Int()
	return c == 0 || c == 200
}

func serverError(status int, body []byte) *ServerError {
	e := &ServerError{StatusCode: status, Body: body}
	if gjson.ValidBytes(body) {
		e.Code = gjson.GetBytes(body, "code").Int()
		e.Message = gjson.GetBytes(body, "message").String()
	}
	return e
}
