package persistence

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/eltonkaiton/mombasa-admin/internal/config"
)

func TestMigrationNamesAreEmbedded(t *testing.T) {
	names, err := migrationNames()
	require.NoError(t, err)
	assert.Equal(t, []string{"0001_admin_audit_log.sql"}, names)
}

func TestUnconfiguredStoresSkip(t *testing.T) {
	logger := zap.NewNop()

	pg, err := NewPostgres(context.Background(), config.PostgresConfig{}, logger)
	require.NoError(t, err)
	assert.False(t, pg.Configured())
	assert.Error(t, pg.Ping(context.Background()))
	assert.NoError(t, RunMigrations(context.Background(), pg.PoolHandle(), logger))

	rdb := NewRedis(config.RedisConfig{}, logger)
	assert.False(t, rdb.Configured())
	assert.Error(t, rdb.Ping(context.Background()))
	rdb.Close()
}

func TestUnconfiguredRedisWarnsOnce(t *testing.T) {
	core, logs := observer.New(zapcore.WarnLevel)

	r := NewRedis(config.RedisConfig{}, zap.New(core))
	assert.False(t, r.Configured())
	assert.Equal(t, 1, logs.FilterMessage("REDIS_ADDR not provided; sessions are kept in memory").Len())
}
