// Copyright IBM Corp. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package market

import (
	"context"
	"math/big"
	"sync"
	"testing"

	"github.com/copa-europe-marketplace/internal/common"
	"github.com/copa-europe-marketplace/internal/royalty"
	"github.com/copa-europe-marketplace/internal/store"
	"github.com/copa-europe-marketplace/pkg/config"
	ethcommon "github.com/ethereum/go-ethereum/common"
	"github.com/hyperledger-labs/orion-server/pkg/logger"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	operator  = ethcommon.HexToAddress("0x00000000000000000000000000000000000000f0")
	app       = ethcommon.HexToAddress("0x00000000000000000000000000000000000000aa")
	otherApp  = ethcommon.HexToAddress("0x00000000000000000000000000000000000000ab")
	alice     = ethcommon.HexToAddress("0x00000000000000000000000000000000000000a0")
	bob       = ethcommon.HexToAddress("0x00000000000000000000000000000000000000b0")
	charlie   = ethcommon.HexToAddress("0x00000000000000000000000000000000000000c0")
	custodian = ethcommon.HexToAddress("0x00000000000000000000000000000000000000c1")
	creator   = ethcommon.HexToAddress("0x00000000000000000000000000000000000000a1")
)

type release struct {
	Asset    AssetRef
	To       ethcommon.Address
	Quantity *big.Int
}

type fakeCustody struct {
	releases []release
	err      error
	hook     func(ctx context.Context) error
}

func (c *fakeCustody) Release(ctx context.Context, asset AssetRef, to ethcommon.Address, quantity *big.Int) error {
	if c.hook != nil {
		if err := c.hook(ctx); err != nil {
			return err
		}
	}
	if c.err != nil {
		return c.err
	}
	c.releases = append(c.releases, release{Asset: asset, To: to, Quantity: quantity})
	return nil
}

type payout struct {
	To     ethcommon.Address
	Amount *big.Int
}

type fakePayments struct {
	payouts []payout
	failTo  ethcommon.Address
}

func (p *fakePayments) Pay(_ context.Context, to ethcommon.Address, amount *big.Int) error {
	if to == p.failTo {
		return errors.New("recipient rejected the payment")
	}
	p.payouts = append(p.payouts, payout{To: to, Amount: amount})
	return nil
}

func (p *fakePayments) total() *big.Int {
	sum := new(big.Int)
	for _, po := range p.payouts {
		sum.Add(sum, po.Amount)
	}
	return sum
}

type recordingSink struct {
	mu     sync.Mutex
	events []Event
	onEmit func(ev Event)
}

func (s *recordingSink) Emit(_ context.Context, ev Event) {
	if s.onEmit != nil {
		s.onEmit(ev)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.events = append(s.events, ev)
}

func (s *recordingSink) names() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	var names []string
	for _, ev := range s.events {
		names = append(names, ev.EventName())
	}
	return names
}

type testEnv struct {
	conf     *config.Configuration
	lg       *logger.SugarLogger
	custody  *fakeCustody
	payments *fakePayments
	sink     *recordingSink
	manager  *Manager
}

func testLogger(t *testing.T, level string) *logger.SugarLogger {
	c := &logger.Config{
		Level:         level,
		OutputPath:    []string{"stdout"},
		ErrOutputPath: []string{"stderr"},
		Encoding:      "console",
		Name:          "marketplace-test",
	}
	lg, err := logger.New(c)
	require.NoError(t, err)
	return lg
}

func newTestEnv(t *testing.T, conf config.MarketplaceConf, oracle royalty.Oracle) *testEnv {
	if conf.Operator == "" {
		conf.Operator = operator.Hex()
	}
	env := &testEnv{
		conf:     &config.Configuration{LogLevel: "info", Marketplace: conf},
		lg:       testLogger(t, "info"),
		custody:  &fakeCustody{},
		payments: &fakePayments{},
		sink:     &recordingSink{},
	}

	s, err := store.Open("", env.lg)
	require.NoError(t, err)

	env.manager, err = NewManager(env.conf, s, Collaborators{
		Custody:  env.custody,
		Payments: env.payments,
		Royalty:  oracle,
		Events:   env.sink,
	}, env.lg)
	require.NoError(t, err)
	t.Cleanup(func() { _ = env.manager.Close() })
	return env
}

// registerApp makes app eligible under either policy.
func (e *testEnv) registerApp(t *testing.T, a ethcommon.Address, feeRate, gratitudeRate uint8) {
	ctx := context.Background()
	require.NoError(t, e.manager.SetAppEnabled(ctx, operator, a, true))
	require.NoError(t, e.manager.SetAppActive(ctx, a, true))
	require.NoError(t, e.manager.SetFeeRate(ctx, a, feeRate))
	require.NoError(t, e.manager.SetGratitudeRate(ctx, a, gratitudeRate))
}

func (e *testEnv) deposit(t *testing.T, asset AssetRef, seller ethcommon.Address, a ethcommon.Address, quantity, price int64) ethcommon.Hash {
	listingId, err := e.manager.Deposit(context.Background(), &DepositRequest{
		Operator: seller,
		From:     seller,
		Asset:    asset,
		Quantity: big.NewInt(quantity),
		Config:   ListingConfig{Seller: seller, Application: a, UnitPrice: big.NewInt(price)},
	})
	require.NoError(t, err)
	return listingId
}

func assetOf(unit int64) AssetRef {
	return AssetRef{Custodian: custodian, UnitID: big.NewInt(unit)}
}

func TestNewManager(t *testing.T) {
	lg := testLogger(t, "info")

	t.Run("success", func(t *testing.T) {
		env := newTestEnv(t, config.MarketplaceConf{WriteOnceSettings: true}, nil)

		stat, err := env.manager.GetStatus()
		require.NoError(t, err)
		require.Equal(t, "connected: {operator: "+operator.Hex()+", eligibility: enablement, writeOnceSettings: true}", stat)
	})

	t.Run("error: bad operator", func(t *testing.T) {
		s, err := store.Open("", lg)
		require.NoError(t, err)
		defer s.Close()

		conf := &config.Configuration{Marketplace: config.MarketplaceConf{Operator: "not-an-address"}}
		m, err := NewManager(conf, s, Collaborators{Custody: &fakeCustody{}, Payments: &fakePayments{}}, lg)
		require.Error(t, err)
		require.Contains(t, err.Error(), "bad config")
		require.Nil(t, m)
	})

	t.Run("error: bad eligibility", func(t *testing.T) {
		s, err := store.Open("", lg)
		require.NoError(t, err)
		defer s.Close()

		conf := &config.Configuration{Marketplace: config.MarketplaceConf{Operator: operator.Hex(), Eligibility: "vibes"}}
		m, err := NewManager(conf, s, Collaborators{Custody: &fakeCustody{}, Payments: &fakePayments{}}, lg)
		require.EqualError(t, err, "bad config: unknown eligibility policy: 'vibes'")
		require.Nil(t, m)
	})

	t.Run("error: missing collaborators", func(t *testing.T) {
		s, err := store.Open("", lg)
		require.NoError(t, err)
		defer s.Close()

		conf := &config.Configuration{Marketplace: config.MarketplaceConf{Operator: operator.Hex()}}
		m, err := NewManager(conf, s, Collaborators{Custody: &fakeCustody{}}, lg)
		require.EqualError(t, err, "custody and payments collaborators are required")
		require.Nil(t, m)
	})

	t.Run("error: closed store", func(t *testing.T) {
		env := newTestEnv(t, config.MarketplaceConf{}, nil)
		require.NoError(t, env.manager.Close())

		_, err := env.manager.GetStatus()
		require.EqualError(t, err, "store is closed")
	})
}

func TestManager_AppConfig(t *testing.T) {
	ctx := context.Background()

	t.Run("success: defaults", func(t *testing.T) {
		env := newTestEnv(t, config.MarketplaceConf{}, nil)

		conf, err := env.manager.GetAppConfig(ctx, app)
		require.NoError(t, err)
		require.Equal(t, &AppConfig{Application: app}, conf)

		approved, err := env.manager.GetSellerApproval(ctx, app, alice)
		require.NoError(t, err)
		require.False(t, approved)
	})

	t.Run("success: setters", func(t *testing.T) {
		env := newTestEnv(t, config.MarketplaceConf{}, nil)

		env.registerApp(t, app, 5, 10)
		require.NoError(t, env.manager.SetSellerApprovalRequired(ctx, app, true))
		require.NoError(t, env.manager.SetSellerApproval(ctx, app, alice, true))

		conf, err := env.manager.GetAppConfig(ctx, app)
		require.NoError(t, err)
		require.Equal(t, &AppConfig{
			Application:            app,
			Enabled:                true,
			Active:                 true,
			FeeRate:                5,
			GratitudeRate:          10,
			SellerApprovalRequired: true,
		}, conf)

		approved, err := env.manager.GetSellerApproval(ctx, app, alice)
		require.NoError(t, err)
		require.True(t, approved)

		// approvals are scoped to the application that issued them
		approved, err = env.manager.GetSellerApproval(ctx, otherApp, alice)
		require.NoError(t, err)
		require.False(t, approved)

		require.Equal(t, []string{
			"AppConfigChanged", "AppConfigChanged", "AppConfigChanged", "AppConfigChanged", "AppConfigChanged", "SellerApprovalChanged",
		}, env.sink.names())
	})

	t.Run("success: settings can change freely by default", func(t *testing.T) {
		env := newTestEnv(t, config.MarketplaceConf{}, nil)

		require.NoError(t, env.manager.SetFeeRate(ctx, app, 5))
		require.NoError(t, env.manager.SetFeeRate(ctx, app, 7))
		require.NoError(t, env.manager.SetSellerApprovalRequired(ctx, app, true))
		require.NoError(t, env.manager.SetSellerApprovalRequired(ctx, app, false))

		conf, err := env.manager.GetAppConfig(ctx, app)
		require.NoError(t, err)
		require.Equal(t, uint8(7), conf.FeeRate)
		require.False(t, conf.SellerApprovalRequired)
	})

	t.Run("error: write-once settings", func(t *testing.T) {
		env := newTestEnv(t, config.MarketplaceConf{WriteOnceSettings: true}, nil)

		require.NoError(t, env.manager.SetFeeRate(ctx, app, 5))
		err := env.manager.SetFeeRate(ctx, app, 7)
		require.True(t, common.IsReason(err, common.ReasonSettingLocked), "%v", err)

		require.NoError(t, env.manager.SetSellerApprovalRequired(ctx, app, true))
		err = env.manager.SetSellerApprovalRequired(ctx, app, false)
		require.True(t, common.IsReason(err, common.ReasonSettingLocked), "%v", err)

		conf, err := env.manager.GetAppConfig(ctx, app)
		require.NoError(t, err)
		require.Equal(t, uint8(5), conf.FeeRate)
		require.True(t, conf.SellerApprovalRequired)

		// other settings are not locked
		require.NoError(t, env.manager.SetGratitudeRate(ctx, app, 1))
		require.NoError(t, env.manager.SetGratitudeRate(ctx, app, 2))
	})

	t.Run("error: only the operator enables", func(t *testing.T) {
		env := newTestEnv(t, config.MarketplaceConf{}, nil)

		err := env.manager.SetAppEnabled(ctx, app, app, true)
		require.True(t, common.IsReason(err, common.ReasonNotPlatformOperator), "%v", err)
		require.Equal(t, common.KindAuthorization, common.KindOf(err))

		conf, err := env.manager.GetAppConfig(ctx, app)
		require.NoError(t, err)
		require.False(t, conf.Enabled)
		require.Empty(t, env.sink.names())
	})

	t.Run("error: zero addresses", func(t *testing.T) {
		env := newTestEnv(t, config.MarketplaceConf{}, nil)

		err := env.manager.SetAppActive(ctx, ethcommon.Address{}, true)
		require.True(t, common.IsReason(err, common.ReasonInvalidAddress), "%v", err)
		err = env.manager.SetSellerApproval(ctx, app, ethcommon.Address{}, true)
		require.True(t, common.IsReason(err, common.ReasonInvalidAddress), "%v", err)
	})
}

func TestManager_Eligibility(t *testing.T) {
	ctx := context.Background()

	for _, tt := range []struct {
		name     string
		policy   string
		enabled  bool
		active   bool
		feeRate  uint8
		eligible bool
	}{
		{name: "enablement: enabled and active", policy: "enablement", enabled: true, active: true, eligible: true},
		{name: "enablement: not enabled", policy: "enablement", active: true, feeRate: 5},
		{name: "enablement: not active", policy: "enablement", enabled: true, feeRate: 5},
		{name: "fee-rate: registered and active", policy: "fee-rate", active: true, feeRate: 5, eligible: true},
		{name: "fee-rate: enablement is ignored", policy: "fee-rate", enabled: true, active: true},
		{name: "fee-rate: not active", policy: "fee-rate", feeRate: 5},
	} {
		t.Run(tt.name, func(t *testing.T) {
			env := newTestEnv(t, config.MarketplaceConf{Eligibility: tt.policy}, nil)
			require.NoError(t, env.manager.SetAppEnabled(ctx, operator, app, tt.enabled))
			require.NoError(t, env.manager.SetAppActive(ctx, app, tt.active))
			require.NoError(t, env.manager.SetFeeRate(ctx, app, tt.feeRate))

			_, err := env.manager.Deposit(ctx, &DepositRequest{
				Operator: alice,
				From:     alice,
				Asset:    assetOf(1),
				Quantity: big.NewInt(1),
				Config:   ListingConfig{Seller: alice, Application: app, UnitPrice: big.NewInt(100)},
			})
			if tt.eligible {
				require.NoError(t, err)
				return
			}
			require.True(t, common.IsReason(err, common.ReasonAppNotEligible), "%v", err)
			require.Equal(t, common.KindConfig, common.KindOf(err))
		})
	}
}

func TestManager_Reentrancy(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t, config.MarketplaceConf{}, nil)
	env.registerApp(t, app, 0, 0)
	listingId := env.deposit(t, assetOf(1), alice, app, 2, 100)

	var reentrantErr error
	env.custody.hook = func(ctx context.Context) error {
		_, reentrantErr = env.manager.Purchase(ctx, &PurchaseRequest{
			Buyer: charlie, ListingID: listingId, Quantity: big.NewInt(1), Payment: big.NewInt(100),
		})
		return reentrantErr
	}

	_, err := env.manager.Purchase(ctx, &PurchaseRequest{
		Buyer: bob, ListingID: listingId, Quantity: big.NewInt(1), Payment: big.NewInt(100),
	})
	require.Error(t, err)
	require.Equal(t, common.KindExternalTransfer, common.KindOf(err))
	require.True(t, common.IsReason(reentrantErr, common.ReasonReentrantCall), "%v", reentrantErr)
	require.True(t, errors.Is(err, reentrantErr))

	listing, err := env.manager.GetListing(ctx, listingId)
	require.NoError(t, err)
	assert.Equal(t, "2", listing.Stock.String())
	assert.Empty(t, env.custody.releases)
}
