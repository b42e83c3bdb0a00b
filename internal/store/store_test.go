package store

import (
	"context"
	"testing"

	"github.com/dgraph-io/badger/v4"
	"github.com/hyperledger-labs/orion-server/pkg/logger"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
	"github.com/timshannon/badgerhold/v4"
)

type testRecord struct {
	Key   string
	Value int
}

func newTestStore(t *testing.T) *badgerhold.Store {
	lg, err := logger.New(&logger.Config{
		Level:         "info",
		OutputPath:    []string{"stdout"},
		ErrOutputPath: []string{"stderr"},
		Encoding:      "console",
		Name:          "marketplace-test",
	})
	require.NoError(t, err)

	s, err := Open("", lg)
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func TestUpdate(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	t.Run("success: commit", func(t *testing.T) {
		err := Update(ctx, s, func(ctx context.Context, txn *badger.Txn) error {
			return s.TxUpsert(txn, "a", &testRecord{Key: "a", Value: 1})
		})
		require.NoError(t, err)

		rec := testRecord{}
		require.NoError(t, s.Get("a", &rec))
		require.Equal(t, 1, rec.Value)
	})

	t.Run("error: discard on failure", func(t *testing.T) {
		err := Update(ctx, s, func(ctx context.Context, txn *badger.Txn) error {
			if err := s.TxUpsert(txn, "b", &testRecord{Key: "b", Value: 2}); err != nil {
				return err
			}
			return errors.New("abort")
		})
		require.EqualError(t, err, "abort")

		rec := testRecord{}
		require.ErrorIs(t, s.Get("b", &rec), badgerhold.ErrNotFound)
	})

	t.Run("success: nested update joins the outer transaction", func(t *testing.T) {
		err := Update(ctx, s, func(ctx context.Context, outer *badger.Txn) error {
			inner := Update(ctx, s, func(_ context.Context, txn *badger.Txn) error {
				require.Same(t, outer, txn)
				return s.TxUpsert(txn, "c", &testRecord{Key: "c", Value: 3})
			})
			require.NoError(t, inner)

			rec := testRecord{}
			require.ErrorIs(t, s.Get("c", &rec), badgerhold.ErrNotFound, "not visible before commit")
			return errors.New("abort outer")
		})
		require.Error(t, err)

		rec := testRecord{}
		require.ErrorIs(t, s.Get("c", &rec), badgerhold.ErrNotFound)
	})

	t.Run("success: view sees the carried transaction", func(t *testing.T) {
		err := Update(ctx, s, func(ctx context.Context, txn *badger.Txn) error {
			if err := s.TxUpsert(txn, "d", &testRecord{Key: "d", Value: 4}); err != nil {
				return err
			}
			return View(ctx, s, func(txn *badger.Txn) error {
				rec := testRecord{}
				if err := s.TxGet(txn, "d", &rec); err != nil {
					return err
				}
				require.Equal(t, 4, rec.Value)
				return nil
			})
		})
		require.NoError(t, err)
	})
}

func TestUpdate_Conflict(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	require.NoError(t, s.Upsert("k", &testRecord{Key: "k", Value: 1}))

	attempts := 0
	var hooked []int
	err := Update(ctx, s, func(ctx context.Context, txn *badger.Txn) error {
		attempts++
		attempt := attempts

		rec := testRecord{}
		if err := s.TxGet(txn, "k", &rec); err != nil {
			return err
		}
		if attempt == 1 {
			// a concurrent writer commits after this transaction read the record
			require.NoError(t, Update(context.Background(), s, func(_ context.Context, other *badger.Txn) error {
				return s.TxUpsert(other, "k", &testRecord{Key: "k", Value: 10})
			}))
		}
		AfterCommit(ctx, func() { hooked = append(hooked, attempt) })
		rec.Value++
		return s.TxUpsert(txn, "k", &rec)
	})
	require.NoError(t, err)
	require.Equal(t, 2, attempts)
	require.Equal(t, []int{2}, hooked, "hooks of the conflicted attempt are dropped")

	rec := testRecord{}
	require.NoError(t, s.Get("k", &rec))
	require.Equal(t, 11, rec.Value)
}

func TestAfterCommit(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	t.Run("success: joined hooks run after the owner commits", func(t *testing.T) {
		var order []string
		err := Update(ctx, s, func(ctx context.Context, outer *badger.Txn) error {
			err := Update(ctx, s, func(ctx context.Context, txn *badger.Txn) error {
				AfterCommit(ctx, func() {
					rec := testRecord{}
					require.NoError(t, s.Get("e", &rec), "committed before the hook runs")
					order = append(order, "inner")
				})
				return s.TxUpsert(txn, "e", &testRecord{Key: "e", Value: 5})
			})
			if err != nil {
				return err
			}
			order = append(order, "outer")
			return nil
		})
		require.NoError(t, err)
		require.Equal(t, []string{"outer", "inner"}, order)
	})

	t.Run("success: hooks of a failed transaction never run", func(t *testing.T) {
		ran := false
		err := Update(ctx, s, func(ctx context.Context, txn *badger.Txn) error {
			AfterCommit(ctx, func() { ran = true })
			return errors.New("abort")
		})
		require.EqualError(t, err, "abort")
		require.False(t, ran)
	})

	t.Run("success: no transaction runs the hook at once", func(t *testing.T) {
		ran := false
		AfterCommit(ctx, func() { ran = true })
		require.True(t, ran)
	})

	t.Run("success: detached context", func(t *testing.T) {
		err := Update(ctx, s, func(ctx context.Context, txn *badger.Txn) error {
			detached := Detach(ctx)
			_, ok := TxFromContext(detached)
			require.False(t, ok)

			ran := false
			AfterCommit(detached, func() { ran = true })
			require.True(t, ran)
			return nil
		})
		require.NoError(t, err)
	})
}
