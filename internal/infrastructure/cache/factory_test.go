package cache

import (
	"testing"
	"time"

	"github.com/erp/ledger/internal/infrastructure/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

func TestStoreFactory(t *testing.T) {
	ledgerCfg := config.LedgerConfig{SessionLinkTTL: time.Hour, WizardTTL: time.Hour, UndoWindow: 5 * time.Second}

	t.Run("redis disabled uses memory", func(t *testing.T) {
		stores, err := NewStoreFactory(config.RedisConfig{}, ledgerCfg, WithLogger(zaptest.NewLogger(t))).CreateStores()
		require.NoError(t, err)
		defer stores.Close()

		assert.IsType(t, &InMemorySessionLinkStore{}, stores.Sessions)
		assert.IsType(t, &InMemoryWizardStore{}, stores.Wizards)
		assert.IsType(t, &InMemoryUndoStore{}, stores.Undo)
		assert.Nil(t, stores.Redis)
	})

	// port 1 refuses connections
	unreachable := config.RedisConfig{Enabled: true, Host: "127.0.0.1", Port: 1}

	t.Run("unreachable redis falls back", func(t *testing.T) {
		stores, err := NewStoreFactory(unreachable, ledgerCfg).CreateStores()
		require.NoError(t, err)
		defer stores.Close()
		assert.IsType(t, &InMemorySessionLinkStore{}, stores.Sessions)
	})

	t.Run("unreachable redis without fallback fails", func(t *testing.T) {
		_, err := NewStoreFactory(unreachable, ledgerCfg, WithInMemoryFallback(false)).CreateStores()
		assert.Error(t, err)
	})
}
