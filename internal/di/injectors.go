//go:build wireinject
// +build wireinject

package di

import (
	wire "github.com/google/wire"

	"ctfwatch/internal"
	"ctfwatch/internal/controllers"
	"ctfwatch/internal/ctftime"
	"ctfwatch/internal/events"
	"ctfwatch/internal/notify"
	"ctfwatch/internal/providers"
	"ctfwatch/internal/services"
	"ctfwatch/internal/storage"
	"ctfwatch/internal/structures"
	"ctfwatch/internal/watch"
)

func InitApp(cfg *structures.CliFlags) (*internal.App, error) {

	wire.Build(
		providers.NewConfigProvider,
		providers.NewLogProvider,
		providers.NewMetricsProvider,
		providers.NewInstrumentedCacheProvider,

		storage.NewZstdCompressor,
		storage.NewSnapshotStore,
		ctftime.NewClient,
		events.NewNormalizer,
		events.NewBaselineStore,
		notify.NewNotifier,
		watch.NewWatchList,
		watch.NewSweeper,
		watch.NewScheduler,
		services.NewEventService,
		controllers.NewApiController,
		controllers.NewHealthController,
		internal.InitRoutes,
		internal.NewApp,
	)

	return nil, nil
}
