// Package container wires the service together with samber/do. Each
// XxxPackage function registers one concern; the entrypoints compose the
// subset they need.
package container

import (
	"context"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill-redisstream/pkg/redisstream"
	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humachi"
	"github.com/go-chi/chi/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"github.com/samber/do"
	"go.uber.org/zap"

	"github.com/serroba/golinks/internal/admin"
	"github.com/serroba/golinks/internal/analytics"
	analyticsstore "github.com/serroba/golinks/internal/analytics/store"
	"github.com/serroba/golinks/internal/handlers"
	"github.com/serroba/golinks/internal/health"
	"github.com/serroba/golinks/internal/links"
	"github.com/serroba/golinks/internal/messaging"
	"github.com/serroba/golinks/internal/middleware"
	"github.com/serroba/golinks/internal/store"
)

// LoggerPackage provides the shared zap logger.
func LoggerPackage(injector *do.Injector) {
	do.Provide(injector, func(i *do.Injector) (*zap.Logger, error) {
		options := do.MustInvoke[*Options](i)

		if options.LogFormat == "json" {
			return zap.NewProduction()
		}

		return zap.NewDevelopment()
	})
}

// RedisPackage provides the Redis client backing the link store and the
// analytics stream.
func RedisPackage(injector *do.Injector) {
	do.Provide(injector, func(i *do.Injector) (*redis.Client, error) {
		options := do.MustInvoke[*Options](i)

		return redis.NewClient(&redis.Options{
			Addr: options.RedisAddr,
		}), nil
	})
}

// RegistryPackage provides the link store and the registry service.
func RegistryPackage(injector *do.Injector) {
	do.Provide(injector, func(i *do.Injector) (links.Store, error) {
		return store.NewRedisStore(do.MustInvoke[*redis.Client](i)), nil
	})

	do.Provide(injector, func(i *do.Injector) (*links.Service, error) {
		return links.NewService(
			do.MustInvoke[links.Store](i),
			links.ZeroStats{},
			do.MustInvoke[*zap.Logger](i),
		), nil
	})
}

// PublisherGroupPackage provides the analytics event publisher and the
// typed publish function used by the redirect path.
func PublisherGroupPackage(injector *do.Injector) {
	do.Provide(injector, func(i *do.Injector) (*messaging.PublisherGroup, error) {
		publisher, err := redisstream.NewPublisher(
			redisstream.PublisherConfig{
				Client: do.MustInvoke[*redis.Client](i),
			},
			watermill.NewStdLogger(false, false),
		)
		if err != nil {
			return nil, err
		}

		return messaging.NewPublisherGroup(publisher), nil
	})

	do.Provide(injector, func(i *do.Injector) (messaging.Publish[analytics.LinkVisitedEvent], error) {
		group := do.MustInvoke[*messaging.PublisherGroup](i)

		return messaging.NewPublishFunc[analytics.LinkVisitedEvent](
			group.Publisher(), analytics.TopicLinkVisited,
		), nil
	})
}

// PostgresPackage provides the pgx pool for the analytics event store.
func PostgresPackage(injector *do.Injector) {
	do.Provide(injector, func(i *do.Injector) (*pgxpool.Pool, error) {
		options := do.MustInvoke[*Options](i)

		return pgxpool.New(context.Background(), options.PostgresURL)
	})
}

// ConsumerGroupPackage provides the analytics consumer group: a redis
// stream subscriber feeding the configured event store.
func ConsumerGroupPackage(injector *do.Injector) {
	do.Provide(injector, func(i *do.Injector) (analytics.Store, error) {
		options := do.MustInvoke[*Options](i)
		logger := do.MustInvoke[*zap.Logger](i)

		if options.PostgresURL == "" {
			return analyticsstore.NewNoop(logger), nil
		}

		return analyticsstore.NewPostgres(do.MustInvoke[*pgxpool.Pool](i)), nil
	})

	do.Provide(injector, func(i *do.Injector) (*messaging.ConsumerGroup, error) {
		logger := do.MustInvoke[*zap.Logger](i)

		subscriber, err := redisstream.NewSubscriber(
			redisstream.SubscriberConfig{
				Client:        do.MustInvoke[*redis.Client](i),
				ConsumerGroup: "analytics",
			},
			watermill.NewStdLogger(false, false),
		)
		if err != nil {
			return nil, err
		}

		group := messaging.NewConsumerGroup(subscriber, logger)
		group.Add(analytics.NewConsumer(
			subscriber,
			do.MustInvoke[analytics.Store](i),
			logger,
		))

		return group, nil
	})
}

// HTTPPackage provides the chi mux and the huma API with all routes and
// middleware registered.
func HTTPPackage(injector *do.Injector) {
	do.Provide(injector, func(_ *do.Injector) (*chi.Mux, error) {
		router := chi.NewMux()
		router.Use(middleware.CORS)
		admin.Register(router)

		return router, nil
	})

	do.Provide(injector, func(i *do.Injector) (huma.API, error) {
		options := do.MustInvoke[*Options](i)
		router := do.MustInvoke[*chi.Mux](i)
		logger := do.MustInvoke[*zap.Logger](i)

		api := humachi.New(router, huma.DefaultConfig("Go Links", "1.0.0"))
		api.UseMiddleware(
			middleware.RequestMeta(api),
			middleware.RequireBearer(api, options.AuthToken),
		)

		linkHandler := handlers.NewLinkHandler(
			do.MustInvoke[*links.Service](i),
			do.MustInvoke[messaging.Publish[analytics.LinkVisitedEvent]](i),
			logger,
		)
		handlers.RegisterRoutes(api, linkHandler)

		healthHandler := health.NewHandler(
			health.NewRedisChecker(do.MustInvoke[*redis.Client](i)),
		)
		health.RegisterRoutes(api, healthHandler)

		return api, nil
	})
}
