package injector

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zeusync/duckpond/internal/config"
	"github.com/zeusync/duckpond/internal/core/behavior"
	"github.com/zeusync/duckpond/internal/core/events/bus"
)

func testConfig(mode string) *config.Config {
	return &config.Config{
		Log:    config.LogConfig{Level: "error", Format: "json"},
		Output: config.OutputConfig{Mode: mode},
	}
}

func TestInitializePondStdout(t *testing.T) {
	p, err := InitializePond(testConfig(config.OutputStdout))
	require.NoError(t, err)
	assert.IsType(t, &behavior.WriterSink{}, p.Sink)
	assert.Zero(t, p.Bus.Subscribers(bus.EffectEvent))
	assert.NotEmpty(t, p.Registry.QuackNames())
}

func TestInitializePondBus(t *testing.T) {
	p, err := InitializePond(testConfig(config.OutputBus))
	require.NoError(t, err)
	assert.IsType(t, &behavior.BusSink{}, p.Sink)
	assert.Equal(t, 1, p.Bus.Subscribers(bus.EffectEvent))
}
