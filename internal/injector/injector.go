//go:build wireinject
// +build wireinject

// The build tag makes sure the stub is not built in the final build.

package injector

import (
	"github.com/google/wire"
	"github.com/spf13/afero"

	"github.com/scenekit/scenekit/internal/core/observability/log"
	"github.com/scenekit/scenekit/internal/core/save"
	"github.com/scenekit/scenekit/internal/core/save/config"
	"github.com/scenekit/scenekit/internal/core/save/manager"
	"github.com/scenekit/scenekit/internal/core/save/store"
)

func ProvideLogger() *log.Logger {
	wire.Build(log.Provide)
	return log.New(log.LevelDebug)
}

func ProvideSaveManager(cfg config.Config) *manager.Manager {
	wire.Build(
		log.Provide,
		wire.Bind(new(log.Log), new(*log.Logger)),
		provideFs,
		providePipeline,
		store.New,
		manager.New,
	)
	return nil
}

func provideFs() afero.Fs {
	return afero.NewOsFs()
}

func providePipeline(cfg config.Config, logger log.Log) *save.Pipeline {
	return save.NewPipeline(cfg.Format, logger)
}
