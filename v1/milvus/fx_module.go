package milvus

import (
	"context"

	"go.opentelemetry.io/otel/trace"
	"go.uber.org/fx"

	"github.com/Aleph-Alpha/milvus/v1/logger"
	"github.com/Aleph-Alpha/milvus/v1/observability"
)

// FXModule provides a *Client built from a *milvus.Config in the container
// and registers its lifecycle hooks. Logger, Observer, Transport and
// TracerProvider are picked up when present.
//
//	app := fx.New(
//	    logger.FXModule,
//	    fx.Provide(milvus.NewConfig),
//	    milvus.FXModule,
//	    fx.Invoke(func(c *milvus.Client) { ... }),
//	)
var FXModule = fx.Module("milvus",
	fx.Provide(NewClientWithDI),
	fx.Invoke(RegisterMilvusLifecycle),
)

// MilvusParams groups the dependencies of NewClientWithDI.
type MilvusParams struct {
	fx.In

	Config         *Config
	Logger         logger.Logger          `optional:"true"`
	Observer       observability.Observer `optional:"true"`
	Transport      Transport              `optional:"true"`
	TracerProvider trace.TracerProvider   `optional:"true"`
}

// NewClientWithDI builds a Client from injected dependencies.
func NewClientWithDI(p MilvusParams) (*Client, error) {
	var opts []Option
	if p.Logger != nil {
		opts = append(opts, WithLogger(p.Logger))
	}
	if p.Observer != nil {
		opts = append(opts, WithObserver(p.Observer))
	}
	if p.Transport != nil {
		opts = append(opts, WithTransport(p.Transport))
	}
	if p.TracerProvider != nil {
		opts = append(opts, WithTracerProvider(p.TracerProvider))
	}
	return New(p.Config, opts...)
}

// RegisterMilvusLifecycle pings the server on start when
// Config.CheckConnection is set and closes the client on stop.
func RegisterMilvusLifecycle(lc fx.Lifecycle, client *Client) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			if !client.Config().CheckConnection {
				return nil
			}
			if err := client.Ping(ctx); err != nil {
				client.caller.logError(ctx, "milvus connection check failed", err, map[string]interface{}{
					"endpoint": client.Config().Endpoint,
				})
				return err
			}
			client.caller.info(ctx, "milvus connection established", nil, map[string]interface{}{
				"endpoint": client.Config().Endpoint,
			})
			return nil
		},
		OnStop: func(ctx context.Context) error {
			client.caller.info(ctx, "closing milvus client", nil, nil)
			return client.Close()
		},
	})
}
