// Copyright IBM Corp. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package server

import (
	"fmt"
	"net"
	"net/http"

	"github.com/copa-europe-marketplace/internal/escrow"
	"github.com/copa-europe-marketplace/internal/httphandlers"
	"github.com/copa-europe-marketplace/internal/market"
	"github.com/copa-europe-marketplace/internal/payments"
	"github.com/copa-europe-marketplace/internal/royalty"
	"github.com/copa-europe-marketplace/internal/store"
	"github.com/copa-europe-marketplace/pkg/config"
	"github.com/copa-europe-marketplace/pkg/constants"
	"github.com/ethereum/go-ethereum/common"
	"github.com/hyperledger-labs/orion-server/pkg/logger"
	"github.com/pkg/errors"
)

type MarketplaceServer struct {
	lg      *logger.SugarLogger
	manager *market.Manager
	handler http.Handler
	listen  net.Listener
	server  *http.Server
	conf    *config.Configuration
}

func NewMarketplaceServer(conf *config.Configuration, lg *logger.SugarLogger) (*MarketplaceServer, error) {
	oracle, err := newRoyaltyOracle(conf.Royalty, lg)
	if err != nil {
		return nil, errors.Wrap(err, "error while creating the royalty oracle")
	}

	s, err := store.Open(conf.Store.Dir, lg)
	if err != nil {
		return nil, errors.Wrap(err, "error while opening the marketplace store")
	}

	custody := escrow.New(s, lg)
	ledger := payments.NewLedger(s, lg)
	manager, err := market.NewManager(conf, s, market.Collaborators{
		Custody:  custody,
		Payments: ledger,
		Royalty:  oracle,
	}, lg)
	if err != nil {
		_ = s.Close()
		return nil, errors.Wrap(err, "error while creating the marketplace manager object")
	}
	custody.SetReceiver(manager)

	mux := http.NewServeMux()

	listingHandler := httphandlers.NewListingHandler(manager, lg)
	custodyHandler := httphandlers.NewCustodyHandler(custody, ledger, conf.Marketplace.CurrencyDecimals, lg)
	mux.Handle(constants.StatusEndpoint, httphandlers.NewStatusHandler(manager, lg))
	mux.Handle(constants.MarketplaceAppsSubTree, httphandlers.NewAppHandler(manager, lg))
	mux.Handle(constants.MarketplaceListingsEndpoint, listingHandler)
	mux.Handle(constants.MarketplaceListingsSubTree, listingHandler)
	mux.Handle(constants.CustodySubTree, custodyHandler)
	mux.Handle(constants.PaymentsSubTree, custodyHandler)

	netConf := conf.Network
	addr := fmt.Sprintf("%s:%d", netConf.Address, netConf.Port)

	netListener, err := net.Listen("tcp", addr)
	if err != nil {
		lg.Errorf("Failed to create a tcp listener on: %s, error: %s", addr, err)
		_ = manager.Close()
		return nil, errors.Wrapf(err, "error while creating a tcp listener on: %s", addr)
	}

	server := &http.Server{
		Handler: mux,
	}

	return &MarketplaceServer{
		manager: manager,
		handler: mux,
		listen:  netListener,
		server:  server,
		conf:    conf,
		lg:      lg,
	}, nil
}

// newRoyaltyOracle prefers a remote oracle, cached for CacheTTL, over the static rules.
func newRoyaltyOracle(conf config.RoyaltyConf, lg *logger.SugarLogger) (royalty.Oracle, error) {
	if conf.Endpoint != "" {
		lg.Infof("Royalties are resolved by: %s", conf.Endpoint)
		return royalty.NewCachedOracle(royalty.NewHTTPOracle(conf.Endpoint, conf.Retries, conf.Timeout, lg), conf.CacheTTL), nil
	}

	if len(conf.Static) == 0 {
		lg.Info("Royalties are disabled")
		return royalty.NoRoyalties{}, nil
	}

	rules := make(map[common.Address]royalty.Rule, len(conf.Static))
	for _, r := range conf.Static {
		custodian, err := market.ParseAddress(r.Custodian, "royalty custodian")
		if err != nil {
			return nil, err
		}
		recipient, err := market.ParseAddress(r.Recipient, "royalty recipient")
		if err != nil {
			return nil, err
		}
		if _, exists := rules[custodian]; exists {
			return nil, errors.Errorf("duplicate royalty rule for custodian: %s", custodian.Hex())
		}
		rules[custodian] = royalty.Rule{Recipient: recipient, Rate: r.Rate}
	}
	lg.Infof("Static royalties for %d custodians", len(rules))
	return royalty.NewStaticOracle(rules), nil
}

// Start starts the server
func (s *MarketplaceServer) Start() error {
	if _, err := s.manager.GetStatus(); err != nil {
		return errors.Wrap(err, "marketplace is not ready")
	}

	s.lg.Info("Server starting")

	go s.serveRequests(s.listen)

	return nil
}

func (s *MarketplaceServer) serveRequests(l net.Listener) {
	s.lg.Infof("Starting to serve requests on: %s", s.listen.Addr().String())

	err := s.server.Serve(l)
	if err == http.ErrServerClosed {
		s.lg.Infof("Server stopped: %s", err)
	} else {
		s.lg.Panicf("server stopped unexpectedly, %v", err)
	}

	s.lg.Infof("Finished serving requests on: %s", s.listen.Addr().String())
}

// Stop stops the server
func (s *MarketplaceServer) Stop() error {
	if s == nil || s.listen == nil || s.server == nil {
		return nil
	}

	var errR error

	s.lg.Infof("Stopping the server listening on: %s\n", s.listen.Addr().String())
	if err := s.server.Close(); err != nil {
		s.lg.Errorf("Failure while closing the http server: %s", err)
		errR = err
	}

	if err := s.manager.Close(); err != nil {
		s.lg.Errorf("Failure while closing the database: %s", err)
		errR = err
	}
	return errR
}

// Port returns port number server allocated to run on
func (s *MarketplaceServer) Port() (port string, err error) {
	_, port, err = net.SplitHostPort(s.listen.Addr().String())
	return
}
