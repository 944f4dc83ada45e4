package main

import (
	"context"
	"log/slog"
	"os"

	"storefront/config"
	"storefront/internal/delivery"
	"storefront/internal/delivery/http"
	"storefront/internal/delivery/http/middleware"
	"storefront/internal/delivery/http/router/handler"
	"storefront/internal/domain/repository"
	"storefront/internal/domain/service"
	"storefront/internal/infra/auth"
	"storefront/internal/infra/location"
	logs "storefront/internal/infra/log"
	"storefront/internal/infra/persistence/postgres"
	"storefront/internal/infra/storage"
	"storefront/internal/usecase"
	"storefront/internal/usecase/impl"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle
	fx.Shutdowner

	Deliveries []delivery.Delivery `group:"deliveries"`
}

// collectionParams gathers what every shared collection needs. Likes receive
// the counters seen in fetched rows.
type collectionParams struct {
	fx.In

	Config   *config.Config
	Catalog  repository.CatalogRepository
	Location usecase.LocationUsecase
	Likes    usecase.LikesUsecase
	Logger   *slog.Logger
}

type lifecycleParams struct {
	fx.In
	fx.Lifecycle

	Location  usecase.LocationUsecase
	Favorites usecase.FavoritesUsecase
	Likes     usecase.LikesUsecase
	Follows   usecase.FollowsUsecase
	Offers    usecase.OfferCollection
	Events    usecase.EventCollection
	Commerces usecase.CommerceCollection
	Logger    *slog.Logger
}

func main() {
	fx.New(
		injectInfra(),
		injectRepo(),
		injectService(),
		injectUsecase(),
		injectDelivery(),
		injectMiddleware(),
		injectHandler(),
		fx.Invoke(
			registerCoreLifecycle,
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
		postgres.New,
		storage.New,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewCatalogRepository,
			postgres.NewEngagementRepository,
			postgres.NewCounterRepository,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				location.NewStaticDeviceProvider,
				fx.As(new(service.DeviceLocationProvider)),
			),
			location.NewNominatimGeocoder,
			fx.Annotate(
				auth.NewSessionAuth,
				fx.As(new(service.AuthProvider), new(usecase.SessionUsecase)),
			),
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewLocationService,
			impl.NewFavoritesService,
			impl.NewLikesService,
			impl.NewFollowsService,
			newCollectionServiceParams,
			impl.NewOfferCollection,
			impl.NewEventCollection,
			impl.NewCommerceCollection,
		),
	)
}

func newCollectionServiceParams(params collectionParams) impl.CollectionServiceParams {
	return impl.CollectionServiceParams{
		Config:   params.Config,
		Catalog:  params.Catalog,
		Location: params.Location,
		Likes:    params.Likes,
		Logger:   params.Logger,
	}
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewErrorMiddleware,
			middleware.NewSessionMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewCatalogHandler,
			handler.NewMapHandler,
			handler.NewLocationHandler,
			handler.NewSessionHandler,
			handler.NewEngagementHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				http.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

// registerCoreLifecycle loads the persisted location and attaches the
// engagement managers to auth changes on start, and detaches everything on stop.
func registerCoreLifecycle(params lifecycleParams) {
	managers := []usecase.EngagementManager{params.Favorites, params.Likes, params.Follows}

	params.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			if err := params.Location.Init(ctx); err != nil {
				return errors.Wrap(err, "init location resolver")
			}

			for _, manager := range managers {
				if err := manager.Start(ctx); err != nil {
					return errors.Wrap(err, "start engagement manager")
				}
			}

			return nil
		},
		OnStop: func(context.Context) error {
			for _, manager := range managers {
				manager.Stop()
			}
			params.Offers.Close()
			params.Events.Close()
			params.Commerces.Close()
			params.Location.Close()

			params.Logger.Info("Storefront core stopped")

			return nil
		},
	})
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))

				// Trigger graceful shutdown to execute all OnStop hooks
				if shutdownErr := params.Shutdown(); shutdownErr != nil {
					slog.Error("Failed to shutdown gracefully", slog.Any("error", shutdownErr))
					os.Exit(1)
				}
			}
		}()
	}
}
