package injector

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zeusync/arena/internal/config"
)

func TestInitializeApp(t *testing.T) {
	cfg := config.Default()
	cfg.Placement.Seed = "injector"
	cfg.Log.Level = "error"

	app, err := InitializeApp(cfg)
	require.NoError(t, err)
	assert.NotNil(t, app.World)
	assert.NotNil(t, app.Debug)
	assert.Equal(t, cfg, app.Config)

	_, ok := app.World.FindBody("player")
	assert.True(t, ok)
}

func TestInitializeAppRejectsBadLogLevel(t *testing.T) {
	cfg := config.Default()
	cfg.Log.Level = "loud"

	_, err := InitializeApp(cfg)
	assert.Error(t, err)
}
