package milvus

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorHelpers(t *testing.T) {
	missing := &MissingArgumentError{Operation: "entities/search", Argument: "anns_field"}
	assert.True(t, IsMissingArgumentError(missing))
	assert.False(t, IsTransportError(missing))
	assert.Equal(t, `milvus: entities/search: missing required argument "anns_field"`, missing.Error())

	transport := &TransportError{Path: "entities/search", Attempts: 2, Err: context.Canceled}
	assert.True(t, IsTransportError(transport))
	assert.True(t, errors.Is(transport, context.Canceled))
	assert.False(t, IsTimeout(transport))

	server := &ServerError{StatusCode: 200, Code: 1100, Message: "collection not found"}
	assert.True(t, IsServerError(fmt.Errorf("wrapped: %w", server)))
	assert.Contains(t, server.Error(), "collection not found")
	assert.Equal(t, "milvus: server error (status 502, code 0)", (&ServerError{StatusCode: 502}).Error())

	assert.True(t, IsMalformedResponseError(fmt.Errorf("%w: x", ErrMalformedResponse)))
	assert.True(t, IsTimeout(fmt.Errorf("op: %w", context.DeadlineExceeded)))
	assert.False(t, IsTimeout(nil))
}
