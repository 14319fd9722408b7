package injector

import (
	"os"

	"github.com/google/wire"

	"github.com/zeusync/duckpond/internal/config"
	"github.com/zeusync/duckpond/internal/core/behavior"
	"github.com/zeusync/duckpond/internal/core/events/bus"
	"github.com/zeusync/duckpond/internal/core/observability/log"
)

// Pond is the wired object graph used by cmd/pond.
type Pond struct {
	Config   *config.Config
	Logger   *log.Logger
	Bus      bus.EventBus
	Registry behavior.Registry
	Sink     behavior.Sink
}

var ProviderSet = wire.NewSet(
	ProvideLogger,
	bus.New,
	behavior.NewDefaultRegistry,
	ProvideSink,
	wire.Struct(new(Pond), "*"),
)

func ProvideLogger(cfg *config.Config) *log.Logger {
	return log.NewWithOptions(log.Options{
		Level:    cfg.LogLevel(),
		Encoding: cfg.Log.Format,
		Output:   os.Stderr,
	})
}

// ProvideSink routes effects to stdout, or through the bus when output.mode is "bus".
// In bus mode every effect is logged by a subscriber and also printed.
func ProvideSink(cfg *config.Config, b bus.EventBus, logger *log.Logger) (behavior.Sink, error) {
	if cfg.Output.Mode != config.OutputBus {
		return behavior.NewWriterSink(os.Stdout), nil
	}

	screen := behavior.NewWriterSink(os.Stdout)
	_, err := b.Subscribe(bus.EffectEvent, func(e bus.Event) error {
		msg, _ := e.Data().(string)
		logger.Debug("effect", log.String("source", e.Source()), log.String("effect", msg))
		screen.Emit(msg)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return behavior.NewBusSink(b, "pond", logger), nil
}
