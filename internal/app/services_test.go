package app

import (
	"context"
	"io"
	"path/filepath"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/boxkeep/internal/adapters/out/memory"
	"github.com/bnema/boxkeep/internal/adapters/out/sqlite"
	"github.com/bnema/boxkeep/internal/domain"
)

func testConfig(t *testing.T, driver string) Config {
	t.Helper()
	var cfg Config
	cfg.DataDir = t.TempDir()
	cfg.Storage.Driver = driver
	cfg.Storage.Path = filepath.Join(cfg.DataDir, "state", "boxkeep.db")
	cfg.AuthorizedUsers = []string{"admin"}
	// Never dialed: client construction is lazy.
	cfg.Runtime.Host = "tcp://127.0.0.1:1"
	return cfg
}

func TestOpenStore(t *testing.T) {
	ctx := context.Background()

	st, err := openStore(ctx, testConfig(t, DriverMemory))
	require.NoError(t, err)
	assert.IsType(t, &memory.Store{}, st)
	require.NoError(t, st.Close())

	st, err = openStore(ctx, testConfig(t, DriverSQLite))
	require.NoError(t, err)
	assert.IsType(t, &sqlite.Store{}, st)
	require.NoError(t, st.Close())

	_, err = openStore(ctx, testConfig(t, "postgres"))
	assert.Error(t, err)
}

func TestNewKernel(t *testing.T) {
	cfg := testConfig(t, DriverSQLite)

	k, err := NewKernel(context.Background(), cfg, log.New(io.Discard))
	require.NoError(t, err)
	require.NotNil(t, k.Bindings())
	require.NotNil(t, k.Health())

	// Guard rejections never reach the runtime.
	_, err = k.Bindings().Create(context.Background(), "stranger", "", "", "box")
	assert.ErrorIs(t, err, domain.ErrUnauthorized)

	views, err := k.Bindings().List(context.Background(), domain.ListOptions{IncludeDestroyed: true})
	require.NoError(t, err)
	assert.Empty(t, views)

	require.NoError(t, k.Close())
}

func TestKernel_CloseNil(t *testing.T) {
	var k *Kernel
	assert.NoError(t, k.Close())
}
