package milvus

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/fx"
	"go.uber.org/fx/fxtest"

	"github.com/Aleph-Alpha/milvus/v1/observability"
)

func TestFXModuleChecksConnectionOnStart(t *testing.T) {
	tr := newRecorder(`{"code":0,"data":[]}`)
	obs := &capturingObserver{}
	recorder := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(recorder))

	var client *Client
	app := fxtest.New(t,
		fx.Supply(FromEndpoint("http://milvus.test:19530")),
		fx.Provide(
			func() Transport { return tr },
			func() observability.Observer { return obs },
			func() trace.TracerProvider { return tp },
		),
		FXModule,
		fx.Populate(&client),
	)

	app.RequireStart()
	require.NotNil(t, client)
	assert.Equal(t, "collections/list", tr.last(t).path)
	assert.Len(t, obs.ops, 1)
	assert.Len(t, recorder.Ended(), 1)
	app.RequireStop()
}

func TestFXModuleFailsStartWhenServerUnavailable(t *testing.T) {
	tr := newRecorder(`{"code":1800,"message":"unauthenticated"}`)

	app := fx.New(
		fx.NopLogger,
		fx.Supply(FromEndpoint("http://milvus.test:19530")),
		fx.Provide(func() Transport { return tr }),
		FXModule,
	)

	err := app.Start(context.Background())
	assert.True(t, IsServerError(err))
}

func TestFXModuleSkipsCheckWhenDisabled(t *testing.T) {
	tr := newRecorder("")

	app := fxtest.New(t,
		fx.Supply(FromEndpoint("http://milvus.test:19530").WithConnectionCheck(false)),
		fx.Provide(func() Transport { return tr }),
		FXModule,
	)

	app.RequireStart()
	assert.Equal(t, 0, tr.count())
	app.RequireStop()
}
