package payments

import (
	"context"
	"math/big"
	"testing"

	"github.com/copa-europe-marketplace/internal/store"
	"github.com/dgraph-io/badger/v4"
	"github.com/ethereum/go-ethereum/common"
	"github.com/hyperledger-labs/orion-server/pkg/logger"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
)

func newTestLedger(t *testing.T) *Ledger {
	lg, err := logger.New(&logger.Config{
		Level:         "info",
		OutputPath:    []string{"stdout"},
		ErrOutputPath: []string{"stderr"},
		Encoding:      "console",
		Name:          "marketplace-test",
	})
	require.NoError(t, err)

	s, err := store.Open("", lg)
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	return NewLedger(s, lg)
}

func TestLedger(t *testing.T) {
	l := newTestLedger(t)
	ctx := context.Background()
	bob := common.HexToAddress("0x00000000000000000000000000000000000000b0")

	t.Run("success: pay accumulates", func(t *testing.T) {
		require.NoError(t, l.Pay(ctx, bob, big.NewInt(5)))
		require.NoError(t, l.Pay(ctx, bob, big.NewInt(7)))

		balance, err := l.BalanceOf(ctx, bob)
		require.NoError(t, err)
		require.Equal(t, "12", balance.String())
	})

	t.Run("success: unknown holder has zero balance", func(t *testing.T) {
		balance, err := l.BalanceOf(ctx, common.HexToAddress("0x01"))
		require.NoError(t, err)
		require.Equal(t, "0", balance.String())
	})

	t.Run("error: invalid payments", func(t *testing.T) {
		require.Error(t, l.Pay(ctx, bob, big.NewInt(0)))
		require.Error(t, l.Pay(ctx, bob, big.NewInt(-1)))
		require.Error(t, l.Pay(ctx, common.Address{}, big.NewInt(1)))
	})

	t.Run("success: payments of an aborted transaction are discarded", func(t *testing.T) {
		err := store.Update(ctx, l.store, func(ctx context.Context, _ *badger.Txn) error {
			require.NoError(t, l.Pay(ctx, bob, big.NewInt(100)))

			balance, err := l.BalanceOf(ctx, bob)
			require.NoError(t, err)
			require.Equal(t, "112", balance.String())
			return errors.New("abort")
		})
		require.Error(t, err)

		balance, err := l.BalanceOf(ctx, bob)
		require.NoError(t, err)
		require.Equal(t, "12", balance.String())
	})
}
