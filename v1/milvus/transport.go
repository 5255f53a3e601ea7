package milvus

import (
	"context"
	"net/http"
)

//go:generate mockgen -source=transport.go -destination=mock_transport_test.go -package=milvus

// Transport delivers a payload to {resource}/{action} with a POST request.
// Implementations must be safe for concurrent use and must return errors
// from the network or the context without translating them into a response.
type Transport interface {
	Post(ctx context.Context, path string, payload Payload) (*Response, error)
}

// Response is the raw HTTP reply handed to the normalizer.
type Response struct {
	StatusCode int
	Header     http.Header
	Body       []byte
}
