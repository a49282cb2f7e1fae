//go:build wireinject
// +build wireinject

package di

import (
	wire "github.com/google/wire"

	"datecalc/internal"
	"datecalc/internal/controllers"
	"datecalc/internal/history"
	"datecalc/internal/providers"
	"datecalc/internal/services"
	"datecalc/internal/structures"
)

func InitApp(cfg *structures.CliFlags) (*internal.App, error) {

	wire.Build(
		providers.NewConfigProvider,
		providers.NewLogProvider,
		providers.NewMetricsProvider,
		providers.NewInstrumentedCacheProvider,

		services.NewCalculatorService,
		history.NewZstdCompressor,
		history.NewFileManager,
		history.NewHistoryArchive,
		history.NewScheduler,
		controllers.NewApiController,
		controllers.NewHealthController,
		internal.InitRoutes,
		internal.NewApp,
	)

	return nil, nil
}
