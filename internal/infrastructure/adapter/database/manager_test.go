package database

import (
	"context"
	"testing"
	"time"

	timeadapter "github.com/upendo-clinic/donation-ledger/internal/infrastructure/adapter/time"
	coremocks "github.com/upendo-clinic/donation-ledger/mocks/port/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestManagerWithTimeout(t *testing.T) {
	mockLogger := coremocks.NewMockLogger(t)
	mockLogger.EXPECT().Debug(mock.Anything, mock.Anything).Maybe()
	mockLogger.EXPECT().Info(mock.Anything, mock.Anything).Maybe()
	mockLogger.EXPECT().Warn(mock.Anything, mock.Anything).Maybe()
	mockLogger.EXPECT().Error(mock.Anything, mock.Anything).Maybe()

	cfg := validTestConfig()
	cfg.QueryTimeout = 5 * time.Second
	manager := NewManager(cfg, mockLogger, timeadapter.NewRealTimeProvider())

	before := time.Now()
	ctx, cancel := manager.WithTimeout(context.Background())
	defer cancel()

	deadline, ok := ctx.Deadline()
	require.True(t, ok)
	assert.WithinDuration(t, before.Add(cfg.QueryTimeout), deadline, time.Second)

	cancel()
	assert.ErrorIs(t, ctx.Err(), context.Canceled)
}
