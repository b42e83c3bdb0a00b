package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestRead(t *testing.T) {
	t.Run("ok", func(t *testing.T) {
		t.Parallel()

		config, err := Read("./testdata")
		require.NoError(t, err)
		require.NotNil(t, config)

		require.Equal(t, "127.0.0.1", config.Network.Address)
		require.Equal(t, uint32(6101), config.Network.Port)
		require.Equal(t, "info", config.LogLevel)
		require.Equal(t, "/tmp/marketplace/store", config.Store.Dir)
		require.Equal(t, "0x00000000000000000000000000000000000000f0", config.Marketplace.Operator)
		require.Equal(t, "enablement", config.Marketplace.Eligibility)
		require.False(t, config.Marketplace.WriteOnceSettings)
		require.Equal(t, int32(18), config.Marketplace.CurrencyDecimals)

		require.Equal(t, "", config.Royalty.Endpoint)
		require.Equal(t, 3, config.Royalty.Retries)
		require.Equal(t, 2*time.Second, config.Royalty.Timeout)
		require.Equal(t, 30*time.Second, config.Royalty.CacheTTL)
		require.Len(t, config.Royalty.Static, 1)
		require.Equal(t, uint8(10), config.Royalty.Static[0].Rate)
	})

	t.Run("file path", func(t *testing.T) {
		t.Parallel()

		config, err := Read("./testdata/config.yml")
		require.NoError(t, err)
		require.Equal(t, uint32(6101), config.Network.Port)
	})

	t.Run("empty path", func(t *testing.T) {
		t.Parallel()

		config, err := Read("")
		require.EqualError(t, err, "path to the configuration file is empty")
		require.Nil(t, config)
	})

	t.Run("missing path", func(t *testing.T) {
		t.Parallel()

		config, err := Read("./testdata/missing")
		require.Error(t, err)
		require.Contains(t, err.Error(), "failed to read the status of the configuration path")
		require.Nil(t, config)
	})

	t.Run("unknown key", func(t *testing.T) {
		t.Parallel()

		config, err := Read("./testdata/bad")
		require.Error(t, err)
		require.Contains(t, err.Error(), "unable to unmarshal config file")
		require.Nil(t, config)
	})
}
