package injector

import (
	"github.com/google/wire"

	"github.com/zeusync/arena/internal/arena"
	"github.com/zeusync/arena/internal/config"
	"github.com/zeusync/arena/internal/core/observability/log"
	"github.com/zeusync/arena/internal/server"
)

// App is everything cmd/arena needs to run.
type App struct {
	Config config.Config
	Logger *log.Logger
	World  *arena.World
	Debug  *server.Server
}

var ProviderSet = wire.NewSet(
	ProvideLogger,
	ProvideWorld,
	ProvideDebugServer,
	wire.Struct(new(App), "*"),
)

func ProvideLogger(cfg config.Config) (*log.Logger, error) {
	level, err := log.ParseLevel(cfg.Log.Level)
	if err != nil {
		return nil, err
	}
	return log.New(log.Options{Level: level, Encoding: cfg.Log.Encoding})
}

func ProvideWorld(cfg config.Config, logger *log.Logger) (*arena.World, error) {
	return arena.NewWorld(cfg, logger)
}

func ProvideDebugServer(cfg config.Config, world *arena.World, logger *log.Logger) (*server.Server, error) {
	sc := server.DefaultConfig()
	sc.ListenAddr = cfg.Debug.Addr
	return server.NewServer(sc, world, logger)
}
