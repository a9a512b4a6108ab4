package cli

import (
	"context"
	"io"
	"log/slog"
	"net"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MikeSquared-Agency/cers/internal/config"
	"github.com/MikeSquared-Agency/cers/internal/scoring"
	"github.com/MikeSquared-Agency/cers/internal/store"
)

func testEngine() (*scoring.Engine, *slog.Logger) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return scoring.NewEngine(store.DefaultCatalog(), logger), logger
}

func TestServeReturnsErrorWhenPortInUse(t *testing.T) {
	ln, err := net.Listen("tcp", ":0")
	require.NoError(t, err)
	defer ln.Close()

	cfg := &config.Config{Server: config.ServerConfig{
		Port:        ln.Addr().(*net.TCPAddr).Port,
		MetricsPort: 0,
	}}
	engine, logger := testEngine()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	err = serve(ctx, cfg, engine, logger)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "api server")
}

func TestServeStopsCleanlyOnCancel(t *testing.T) {
	cfg := &config.Config{Server: config.ServerConfig{Port: 0, MetricsPort: 0}}
	engine, logger := testEngine()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	assert.NoError(t, serve(ctx, cfg, engine, logger))
}
