package milvus

import (
	"context"
	"encoding/json"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
)

// recordingTransport records every call and answers with a fixed response.
type recordingTransport struct {
	mu     sync.Mutex
	calls  []recordedCall
	status int
	body   string
	err    error
}

type recordedCall struct {
	path    string
	payload Payload
}

func newRecorder(body string) *recordingTransport {
	return &recordingTransport{status: 200, body: body}
}

func (r *recordingTransport) Post(_ context.Context, path string, payload Payload) (*Response, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls = append(r.calls, recordedCall{path: path, payload: payload})
	if r.err != nil {
		return nil, r.err
	}
	return &Response{StatusCode: r.status, Body: []byte(r.body)}, nil
}

func (r *recordingTransport) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.calls)
}

func (r *recordingTransport) last(t *testing.T) recordedCall {
	t.Helper()
	r.mu.Lock()
	defer r.mu.Unlock()
	require.NotEmpty(t, r.calls, "no transport call recorded")
	return r.calls[len(r.calls)-1]
}

// wire returns the last payload as it would be sent, decoded back into
// plain JSON values.
func (r *recordingTransport) wire(t *testing.T) map[string]any {
	t.Helper()
	data, err := json.Marshal(r.last(t).payload)
	require.NoError(t, err)
	var out map[string]any
	require.NoError(t, json.Unmarshal(data, &out))
	return out
}

func newTestClient(t *testing.T, tr Transport, opts ...Option) *Client {
	t.Helper()
	c, err := New(FromEndpoint("http://milvus.test:19530"), append([]Option{WithTransport(tr)}, opts...)...)
	require.NoError(t, err)
	return c
}

func keys(m map[string]any) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	return out
}
